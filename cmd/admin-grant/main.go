package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/volatiletech/null/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hive-match.backend/internal/config"
	"hive-match.backend/internal/domain/entities"
	"hive-match.backend/internal/infrastructure/repositories"
)

// admin-grant manages the admin_grants table from the operator's shell.
// Membership rows here are the only source of admin authority.

var openGrantDB = func(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{PrepareStmt: false})
}

var openGrantSQLDB = func(db *gorm.DB) (io.Closer, error) {
	return db.DB()
}

type grantRuntime interface {
	Grant(ctx context.Context, grant *entities.AdminGrant) error
	Revoke(ctx context.Context, userID uuid.UUID) error
	List(ctx context.Context) ([]*entities.AdminGrant, error)
}

type grantDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	prepare func(cfg *config.Config) (grantRuntime, io.Closer, error)
	now     func() time.Time
	out     io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func defaultGrantDeps() grantDeps {
	return grantDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		prepare: func(cfg *config.Config) (grantRuntime, io.Closer, error) {
			db, err := openGrantDB(cfg.Database.URL())
			if err != nil {
				return nil, nil, fmt.Errorf("failed to connect db: %w", err)
			}
			sqlDB, err := openGrantSQLDB(db)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to init sql db: %w", err)
			}
			return repositories.NewAdminRepository(db), sqlDB, nil
		},
		now: time.Now,
		out: os.Stdout,
	}
}

func parseGrantUserID(userID string) (uuid.UUID, error) {
	if userID == "" {
		return uuid.Nil, fmt.Errorf("--user-id is required")
	}
	return uuid.Parse(userID)
}

func runAdminGrant(args []string, deps grantDeps) error {
	if deps.loadEnv == nil {
		deps.loadEnv = func() error { return godotenv.Load() }
	}
	if deps.loadCfg == nil {
		deps.loadCfg = config.Load
	}
	if deps.now == nil {
		deps.now = time.Now
	}
	if deps.prepare == nil {
		def := defaultGrantDeps()
		deps.prepare = def.prepare
	}
	if deps.out == nil {
		deps.out = os.Stdout
	}

	fs := flag.NewFlagSet("admin-grant", flag.ContinueOnError)
	actionFlag := fs.String("action", "list", "grant, revoke or list")
	userIDFlag := fs.String("user-id", "", "target user UUID (required for grant/revoke)")
	noteFlag := fs.String("note", "", "why this grant exists (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := deps.loadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := deps.loadCfg()
	runtime, closer, err := deps.prepare(cfg)
	if err != nil {
		return err
	}
	if closer == nil {
		closer = nopCloser{}
	}
	defer closer.Close()

	ctx := context.Background()

	switch *actionFlag {
	case "grant":
		userID, err := parseGrantUserID(*userIDFlag)
		if err != nil {
			return err
		}
		grant := &entities.AdminGrant{
			UserID:    userID,
			Note:      null.NewString(*noteFlag, *noteFlag != ""),
			CreatedAt: deps.now(),
		}
		if err := runtime.Grant(ctx, grant); err != nil {
			return fmt.Errorf("failed granting admin to %s: %w", userID, err)
		}
		_, _ = fmt.Fprintf(deps.out, "granted admin to %s\n", userID.String())
		return nil

	case "revoke":
		userID, err := parseGrantUserID(*userIDFlag)
		if err != nil {
			return err
		}
		if err := runtime.Revoke(ctx, userID); err != nil {
			return fmt.Errorf("failed revoking admin from %s: %w", userID, err)
		}
		_, _ = fmt.Fprintf(deps.out, "revoked admin from %s\n", userID.String())
		return nil

	case "list":
		grants, err := runtime.List(ctx)
		if err != nil {
			return fmt.Errorf("failed listing admin grants: %w", err)
		}
		if len(grants) == 0 {
			_, _ = fmt.Fprintln(deps.out, "no admin grants")
			return nil
		}
		for _, g := range grants {
			_, _ = fmt.Fprintf(deps.out, "%s  granted=%s  note=%s\n",
				g.UserID.String(), g.CreatedAt.Format(time.RFC3339), g.Note.String)
		}
		return nil

	default:
		return fmt.Errorf("unknown action %q (want grant, revoke or list)", *actionFlag)
	}
}

func main() {
	if err := runAdminGrant(os.Args[1:], defaultGrantDeps()); err != nil {
		log.Fatal(err)
	}
}
