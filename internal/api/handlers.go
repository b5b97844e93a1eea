package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"storefront/internal/export"
	"storefront/internal/i18n"
	"storefront/internal/models"
	"storefront/internal/shell"
	"storefront/internal/views"
	"storefront/internal/ws"
)

type API struct {
	hub             *ws.Hub
	renderer        *views.Renderer
	defaultLanguage i18n.Language
}

func New(hub *ws.Hub, renderer *views.Renderer, defaultLanguage i18n.Language) *API {
	return &API{hub: hub, renderer: renderer, defaultLanguage: defaultLanguage}
}

func (a *API) language(r *http.Request) i18n.Language {
	if lang, err := i18n.ParseLanguage(r.URL.Query().Get("lang")); err == nil {
		return lang
	}
	return i18n.Match(r.Header.Get("Accept-Language"), a.defaultLanguage)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// IndexHandler serves the app page in its initial state.
func (a *API) IndexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	page := views.Page{State: shell.Initial(a.language(r))}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := a.renderer.Document(w, page); err != nil {
		slog.Error("failed to render page", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (a *API) PhrasesHandler(w http.ResponseWriter, r *http.Request) {
	lang, err := i18n.ParseLanguage(r.PathValue("language"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, i18n.For(lang))
}

func (a *API) SalesExportHandler(w http.ResponseWriter, r *http.Request) {
	p := i18n.For(a.language(r))

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="sales.xlsx"`)
	if err := export.WriteSales(w, a.renderer.Profile().SalesData, p); err != nil {
		slog.Error("failed to export sales", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

type SessionsResponse struct {
	Active int `json:"active"`
}

func (a *API) SessionsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SessionsResponse{Active: a.hub.Len()})
}

type SessionResponse struct {
	ID           string               `json:"id"`
	State        shell.State          `json:"state"`
	ChatMessages []models.ChatMessage `json:"chatMessages,omitempty"`
}

var errSessionNotFound = errors.New("session not found")

func (a *API) SessionHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := a.hub.Get(r.PathValue("id"))
	if !ok {
		http.Error(w, errSessionNotFound.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, SessionResponse{
		ID:           session.ID(),
		State:        session.Snapshot(),
		ChatMessages: session.ChatMessages(),
	})
}
