package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"hive-match.backend/internal/domain/entities"
	domainerrors "hive-match.backend/internal/domain/errors"
	"hive-match.backend/internal/usecases"
)

func newMatchRouter(decisionRepo *decisionRepoStub, profileRepo *profileRepoStub, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewMatchHandler(usecases.NewMatchUsecase(decisionRepo, profileRepo, nil))

	r := gin.New()
	r.POST("/profiles/:id/decision", injectUser(userID), h.Decide)
	r.GET("/matches", injectUser(userID), h.ListMatches)
	r.GET("/matches/liked-count", injectUser(userID), h.LikedCount)
	return r
}

func TestMatchHandler_Decide(t *testing.T) {
	actor := uuid.New()
	recipient := uuid.New()

	profileRepo := &profileRepoStub{
		getByUserIDFn: func(_ context.Context, id uuid.UUID) (*entities.Profile, error) {
			if id == recipient {
				return &entities.Profile{UserID: recipient, VerificationStatus: entities.VerificationVerified}, nil
			}
			return nil, domainerrors.ErrNotFound
		},
	}
	decisionRepo := &decisionRepoStub{
		hasLikedFn: func(_ context.Context, a, b uuid.UUID) (bool, error) {
			return a == recipient && b == actor, nil
		},
	}
	r := newMatchRouter(decisionRepo, profileRepo, actor)

	req := httptest.NewRequest(http.MethodPost, "/profiles/"+recipient.String()+"/decision", strings.NewReader(`{"liked":true}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"mutualMatch":true`)

	// Deciding on yourself is rejected.
	req = httptest.NewRequest(http.MethodPost, "/profiles/"+actor.String()+"/decision", strings.NewReader(`{"liked":true}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown profile.
	req = httptest.NewRequest(http.MethodPost, "/profiles/"+uuid.NewString()+"/decision", strings.NewReader(`{"liked":true}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMatchHandler_ListMatches(t *testing.T) {
	userID := uuid.New()
	matchID := uuid.New()

	decisionRepo := &decisionRepoStub{
		listMutualFn: func(context.Context, uuid.UUID) ([]uuid.UUID, error) {
			return []uuid.UUID{matchID}, nil
		},
	}
	profileRepo := &profileRepoStub{
		getByUserIDFn: func(_ context.Context, id uuid.UUID) (*entities.Profile, error) {
			return &entities.Profile{UserID: id, DisplayName: "Bilal", VerificationStatus: entities.VerificationVerified}, nil
		},
	}
	r := newMatchRouter(decisionRepo, profileRepo, userID)

	req := httptest.NewRequest(http.MethodGet, "/matches", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Bilal")
}

func TestMatchHandler_LikedCount(t *testing.T) {
	userID := uuid.New()
	decisionRepo := &decisionRepoStub{
		countReceived: func(context.Context, uuid.UUID) (int64, error) {
			return 4, nil
		},
	}
	r := newMatchRouter(decisionRepo, &profileRepoStub{}, userID)

	req := httptest.NewRequest(http.MethodGet, "/matches/liked-count", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"count":4`)
}
