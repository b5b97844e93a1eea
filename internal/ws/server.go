package ws

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/internal/i18n"

	"github.com/gorilla/websocket"
)

type Server struct {
	ctx             context.Context
	hub             *Hub
	defaultLanguage i18n.Language
	upgrader        *websocket.Upgrader
}

// NewServer serves websocket sessions until ctx is done.
func NewServer(ctx context.Context, hub *Hub, defaultLanguage i18n.Language) *Server {
	return &Server{
		ctx:             ctx,
		hub:             hub,
		defaultLanguage: defaultLanguage,
		upgrader:        &websocket.Upgrader{},
	}
}

// Language picks the session language from the "lang" query parameter,
// falling back to the Accept-Language header.
func (s *Server) Language(r *http.Request) i18n.Language {
	if lang, err := i18n.ParseLanguage(r.URL.Query().Get("lang")); err == nil {
		return lang
	}
	return i18n.Match(r.Header.Get("Accept-Language"), s.defaultLanguage)
}

func (s *Server) HandleConnections(w http.ResponseWriter, r *http.Request) {
	lang := s.Language(r)

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("error upgrading to websocket", "error", err)
		return
	}

	conn := NewConnection(s.hub, ws, lang)
	err = conn.Handle(s.ctx)
	if err != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		slog.Warn("websocket session ended", "session_id", conn.SessionID(), "error", err)
	}
}
