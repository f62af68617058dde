package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/iavo-ui/internal/backend"
	"github.com/iliyamo/iavo-ui/internal/model"
	"github.com/iliyamo/iavo-ui/internal/view"
)

// auditTimeout bounds a detached audit publish.
const auditTimeout = 5 * time.Second

// ProfileHandler serves the profile update form.
type ProfileHandler struct {
	Backend ProfileUpdater
	Audit   AuditPublisher // nil disables auditing
}

func NewProfileHandler(b ProfileUpdater, audit AuditPublisher) *ProfileHandler {
	if b == nil {
		panic("nil backend passed to NewProfileHandler")
	}
	return &ProfileHandler{Backend: b, Audit: audit}
}

// Form handles GET /profile with all fields empty.
func (h *ProfileHandler) Form(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageProfile, view.ProfileData{})
}

// Submit handles POST /profile. An incomplete form is sent back untouched
// and never reaches the backend. Otherwise the snapshot is posted once and
// the page shows the pretty-printed answer or the fixed error literal.
func (h *ProfileHandler) Submit(c echo.Context) error {
	var form model.ProfileForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, view.PageProfile, view.ProfileData{})
	}
	if !form.Complete() {
		return c.Render(http.StatusBadRequest, view.PageProfile, view.ProfileData{Form: form})
	}

	data := view.ProfileData{Form: form}
	ev := model.ProfileUpdateEvent{
		CreatorID:   form.CreatorID,
		Name:        form.Name,
		Tier:        form.Tier,
		Outcome:     model.OutcomeUpdated,
		SubmittedAt: time.Now().UTC(),
	}

	raw, err := h.Backend.UpdateProfile(c.Request().Context(), form)
	if err != nil {
		c.Logger().Errorf("Error updating profile: %v", err)
		data.Response = model.ErrUpdatingProfile
		ev.Outcome = model.OutcomeFailed
		ev.BackendStatus = backend.StatusCode(err)
	} else {
		data.Response = model.PrettyJSON(raw)
		ev.BackendStatus = http.StatusOK
	}

	h.publish(c, ev)
	return c.Render(http.StatusOK, view.PageProfile, data)
}

// publish hands ev to the audit publisher without holding up the page.
func (h *ProfileHandler) publish(c echo.Context, ev model.ProfileUpdateEvent) {
	if h.Audit == nil {
		return
	}
	logger := c.Logger()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()
		if err := h.Audit.PublishProfileUpdate(ctx, ev); err != nil {
			logger.Warnf("audit publish for creator %s failed: %v", ev.CreatorID, err)
		}
	}()
}
