package main

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"hive-match.backend/internal/config"
	"hive-match.backend/internal/domain/entities"
)

type grantRuntimeFake struct {
	granted []uuid.UUID
	revoked []uuid.UUID
	grants  []*entities.AdminGrant
}

func (f *grantRuntimeFake) Grant(_ context.Context, grant *entities.AdminGrant) error {
	f.granted = append(f.granted, grant.UserID)
	return nil
}

func (f *grantRuntimeFake) Revoke(_ context.Context, userID uuid.UUID) error {
	f.revoked = append(f.revoked, userID)
	return nil
}

func (f *grantRuntimeFake) List(context.Context) ([]*entities.AdminGrant, error) {
	return f.grants, nil
}

func fakeDeps(fake *grantRuntimeFake, out io.Writer) grantDeps {
	return grantDeps{
		loadEnv: func() error { return nil },
		loadCfg: config.Load,
		prepare: func(*config.Config) (grantRuntime, io.Closer, error) {
			return fake, nopCloser{}, nil
		},
		now: time.Now,
		out: out,
	}
}

func TestRunAdminGrant_Grant(t *testing.T) {
	fake := &grantRuntimeFake{}
	var out bytes.Buffer
	userID := uuid.New()

	err := runAdminGrant([]string{"-action", "grant", "-user-id", userID.String(), "-note", "ops"}, fakeDeps(fake, &out))
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{userID}, fake.granted)
	require.Contains(t, out.String(), "granted admin to "+userID.String())
}

func TestRunAdminGrant_Revoke(t *testing.T) {
	fake := &grantRuntimeFake{}
	var out bytes.Buffer
	userID := uuid.New()

	err := runAdminGrant([]string{"-action", "revoke", "-user-id", userID.String()}, fakeDeps(fake, &out))
	require.NoError(t, err)
	require.Equal(t, []uuid.UUID{userID}, fake.revoked)
}

func TestRunAdminGrant_List(t *testing.T) {
	userID := uuid.New()
	fake := &grantRuntimeFake{grants: []*entities.AdminGrant{{UserID: userID, CreatedAt: time.Now()}}}
	var out bytes.Buffer

	err := runAdminGrant([]string{"-action", "list"}, fakeDeps(fake, &out))
	require.NoError(t, err)
	require.Contains(t, out.String(), userID.String())
}

func TestRunAdminGrant_Validation(t *testing.T) {
	fake := &grantRuntimeFake{}
	var out bytes.Buffer

	err := runAdminGrant([]string{"-action", "grant"}, fakeDeps(fake, &out))
	require.Error(t, err)

	err = runAdminGrant([]string{"-action", "grant", "-user-id", "not-a-uuid"}, fakeDeps(fake, &out))
	require.Error(t, err)

	err = runAdminGrant([]string{"-action", "destroy"}, fakeDeps(fake, &out))
	require.Error(t, err)
	require.Empty(t, fake.granted)
}
