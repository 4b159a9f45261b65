// Package archive persists an append-only audit log of generation attempts
// in PostgreSQL. The archive is optional infrastructure: when no database is
// configured a nil *GenerationArchive is used and every Record call is a
// no-op, so the in-memory store remains the source of truth either way.
package archive

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"phishforge/internal/models"
)

//go:embed migrations
var embedMigrations embed.FS

// Connect opens a PostgreSQL connection pool using the provided DSN.
// It verifies the connection with a ping before returning.
func Connect(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("database open: %w", err)
	}
	db.SetMaxOpenConns(25)

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping: %w", err)
	}

	slog.Info("archive database connected")
	return db, nil
}

// Migrate runs all pending goose migrations from the embedded SQL files.
// Migrations are embedded at compile time so no external files are needed
// at runtime.
func Migrate(db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	slog.Info("archive migrations applied")
	return nil
}

// GenerationArchive writes generation attempts to the audit table.
type GenerationArchive struct {
	db *sql.DB
}

// NewGenerationArchive wraps an open database pool. Call Migrate first.
func NewGenerationArchive(db *sql.DB) *GenerationArchive {
	return &GenerationArchive{db: db}
}

// Record inserts one generation attempt. Failures are logged, never
// propagated: the archive must not affect generation outcomes.
func (a *GenerationArchive) Record(ctx context.Context, entry models.HistoryEntry) {
	if a == nil || a.db == nil {
		return
	}

	_, err := a.db.ExecContext(ctx, `
		INSERT INTO generation_log
			(created_at, template_id, scenario_type, target_industry,
			 urgency_level, tone_style, language, phishing_tactic,
			 advanced_mode, success, error, generation_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		entry.Timestamp,
		sql.NullString{String: entry.TemplateID, Valid: entry.TemplateID != ""},
		entry.Request.ScenarioType,
		entry.Request.TargetIndustry,
		entry.Request.UrgencyLevel,
		entry.Request.ToneStyle,
		entry.Request.Language,
		entry.Request.PhishingTactic,
		entry.Request.AdvancedMode,
		entry.Success,
		sql.NullString{String: entry.Error, Valid: entry.Error != ""},
		entry.GenerationTime,
	)
	if err != nil {
		slog.Warn("archive record failed", "error", err)
	}
}

// Count returns the number of archived attempts. Used by tests and health
// reporting.
func (a *GenerationArchive) Count(ctx context.Context) (int, error) {
	if a == nil || a.db == nil {
		return 0, nil
	}
	var n int
	if err := a.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM generation_log").Scan(&n); err != nil {
		return 0, fmt.Errorf("archive count: %w", err)
	}
	return n, nil
}
