package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE profiles (
		user_id TEXT PRIMARY KEY,
		display_name TEXT NOT NULL,
		age INTEGER NOT NULL,
		gender TEXT NOT NULL,
		city TEXT NOT NULL,
		country TEXT NOT NULL,
		religion TEXT NOT NULL,
		sect TEXT,
		bio TEXT,
		photo_url TEXT,
		verification_status TEXT NOT NULL DEFAULT 'pending',
		rejection_reason TEXT,
		verified_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createAdminGrantTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE admin_grants (
		user_id TEXT PRIMARY KEY,
		note TEXT,
		created_at DATETIME
	);`)
}

func createDecisionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE decisions (
		actor_id TEXT NOT NULL,
		recipient_id TEXT NOT NULL,
		liked BOOLEAN NOT NULL,
		created_at DATETIME,
		updated_at DATETIME,
		PRIMARY KEY (actor_id, recipient_id)
	);`)
}

func createAuditLogTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE audit_logs (
		id TEXT PRIMARY KEY,
		actor_id TEXT NOT NULL,
		action TEXT NOT NULL,
		target_id TEXT,
		allowed BOOLEAN NOT NULL,
		detail TEXT,
		created_at DATETIME
	);`)
}
