package handler

import (
	"context"
	"encoding/json"

	"github.com/iliyamo/iavo-ui/internal/model"
)

// HealthReader fetches the backend status object.
type HealthReader interface {
	Health(ctx context.Context) (model.HealthStatus, error)
}

// ProfileUpdater sends a profile form to the backend.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, form model.ProfileForm) (json.RawMessage, error)
}

// AuditPublisher receives one event per profile submit attempt.
type AuditPublisher interface {
	PublishProfileUpdate(ctx context.Context, ev model.ProfileUpdateEvent) error
}
