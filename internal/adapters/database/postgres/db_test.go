package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// schema mirrors the postgres tables in sqlite types.
const schema = `
CREATE TABLE users (
	id TEXT PRIMARY KEY,
	created_at DATETIME,
	updated_at DATETIME,
	email TEXT NOT NULL UNIQUE,
	full_name TEXT,
	role TEXT NOT NULL DEFAULT 'user',
	is_club_leader BOOLEAN DEFAULT false
);
CREATE TABLE clubs (
	id TEXT PRIMARY KEY,
	created_at DATETIME,
	updated_at DATETIME,
	deleted_at DATETIME,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	category TEXT,
	logo_url TEXT,
	contact_name TEXT,
	contact_email TEXT NOT NULL,
	website_link TEXT,
	instagram_link TEXT,
	discord_link TEXT,
	calendar_link TEXT,
	other_social_links TEXT,
	owner_email TEXT NOT NULL,
	is_active BOOLEAN NOT NULL
);
CREATE INDEX idx_clubs_deleted_at ON clubs (deleted_at);
CREATE INDEX idx_clubs_owner_email ON clubs (owner_email);
`

// newTestDB opens an in-memory database whose clock advances one second per
// read, so timestamp ordering is deterministic.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
		NowFunc: func() time.Time {
			now = now.Add(time.Second)
			return now
		},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Exec(schema).Error)
	return db
}
