package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/iavo-ui/internal/model"
)

const createAuditTable = `CREATE TABLE IF NOT EXISTS profile_update_audit (
	id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
	creator_id VARCHAR(255) NOT NULL,
	name VARCHAR(255) NOT NULL,
	tier VARCHAR(255) NOT NULL,
	outcome VARCHAR(16) NOT NULL,
	backend_status SMALLINT NOT NULL,
	submitted_at DATETIME NOT NULL,
	INDEX idx_profile_update_audit_creator (creator_id, submitted_at)
)`

// AuditRepo persists profile submit attempts in profile_update_audit. It
// satisfies queue.Recorder.
type AuditRepo struct{ DB *sql.DB }

func NewAuditRepo(db *sql.DB) *AuditRepo { return &AuditRepo{DB: db} }

// EnsureSchema creates the audit table when missing.
func (r *AuditRepo) EnsureSchema(ctx context.Context) error {
	if r.DB == nil {
		return ErrNotConfigured
	}
	_, err := r.DB.ExecContext(ctx, createAuditTable)
	return err
}

// Record inserts one audit row.
func (r *AuditRepo) Record(ctx context.Context, ev model.ProfileUpdateEvent) error {
	if r.DB == nil {
		return ErrNotConfigured
	}
	at := ev.SubmittedAt
	if at.IsZero() {
		at = time.Now()
	}
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO profile_update_audit (creator_id, name, tier, outcome, backend_status, submitted_at) VALUES (?,?,?,?,?,?)",
		ev.CreatorID, ev.Name, ev.Tier, ev.Outcome, ev.BackendStatus, at.UTC())
	return err
}

// ListByCreator returns the latest attempts for a creator, newest first.
func (r *AuditRepo) ListByCreator(ctx context.Context, creatorID string, limit int) ([]model.ProfileUpdateEvent, error) {
	if r.DB == nil {
		return nil, ErrNotConfigured
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.DB.QueryContext(ctx,
		"SELECT creator_id, name, tier, outcome, backend_status, submitted_at FROM profile_update_audit WHERE creator_id=? ORDER BY submitted_at DESC, id DESC LIMIT ?",
		creatorID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ProfileUpdateEvent
	for rows.Next() {
		var ev model.ProfileUpdateEvent
		if err := rows.Scan(&ev.CreatorID, &ev.Name, &ev.Tier, &ev.Outcome, &ev.BackendStatus, &ev.SubmittedAt); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
