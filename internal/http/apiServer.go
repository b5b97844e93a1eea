package http

import (
	"context"
	"log"
	"net/http"
	"sync"

	"storefront/internal/api"
	"storefront/internal/ws"
	"storefront/static"
)

type APIServer struct {
	server *http.Server
	wg     sync.WaitGroup
}

func NewAPIServer(apiHandlers *api.API, wsServer *ws.Server, addr string) *APIServer {
	mux := http.NewServeMux()

	// Page and assets
	mux.HandleFunc("GET /", apiHandlers.IndexHandler)
	mux.Handle("GET /static/", http.StripPrefix("/static", NewFileServerHandler(static.Content)))

	// API endpoints
	mux.HandleFunc("GET /api/phrases/{language}", apiHandlers.PhrasesHandler)
	mux.HandleFunc("GET /api/sales.xlsx", apiHandlers.SalesExportHandler)
	mux.HandleFunc("GET /api/sessions", apiHandlers.SessionsHandler)
	mux.HandleFunc("GET /api/sessions/{id}", apiHandlers.SessionHandler)

	// WebSocket endpoint
	mux.HandleFunc("GET /ws", wsServer.HandleConnections)

	if addr == "" {
		addr = ":8080"
	}

	return &APIServer{
		server: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
	}
}

func (s *APIServer) Start() error {
	log.Printf("Server started on %s", s.server.Addr)
	s.wg.Add(1)
	defer s.wg.Done()

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *APIServer) Shutdown(ctx context.Context) error {
	defer s.wg.Wait()
	return s.server.Shutdown(ctx)
}
