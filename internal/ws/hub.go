package ws

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/app"
	"storefront/internal/i18n"
	"storefront/internal/shell"
	"storefront/internal/views"

	"github.com/c-pro/geche"
	"github.com/google/uuid"
)

type HubConfig struct {
	SessionTTL         time.Duration
	TransitionDuration time.Duration
}

// Hub keeps track of live browser sessions. A session expires when it has
// not seen an event for SessionTTL.
type Hub struct {
	renderer   *views.Renderer
	transition time.Duration
	sessions   geche.Geche[string, *app.App]
}

func NewHub(ctx context.Context, renderer *views.Renderer, config HubConfig) *Hub {
	return &Hub{
		renderer:   renderer,
		transition: config.TransitionDuration,
		sessions:   geche.NewMapTTLCache[string, *app.App](ctx, config.SessionTTL, time.Minute),
	}
}

// Open starts a fresh session with the initial shell state.
func (h *Hub) Open(lang i18n.Language, animator shell.Animator) *app.App {
	a := app.New(app.Config{
		ID:                 uuid.NewString(),
		Language:           lang,
		Renderer:           h.renderer,
		Animator:           animator,
		TransitionDuration: h.transition,
	})
	h.sessions.Set(a.ID(), a)
	slog.Info("session opened", "session_id", a.ID(), "language", lang)
	return a
}

func (h *Hub) Close(id string) {
	_ = h.sessions.Del(id)
	slog.Info("session closed", "session_id", id)
}

// Touch extends the lifetime of a live session. A closed or expired
// session stays gone.
func (h *Hub) Touch(a *app.App) {
	h.sessions.SetIfPresent(a.ID(), a)
}

func (h *Hub) Get(id string) (*app.App, bool) {
	a, err := h.sessions.Get(id)
	if err != nil {
		return nil, false
	}
	return a, true
}

func (h *Hub) Len() int {
	return h.sessions.Len()
}
