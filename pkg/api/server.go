package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/civboard/pkg/api/handlers"
	"github.com/cbodonnell/civboard/pkg/api/middleware"
	"github.com/cbodonnell/civboard/pkg/log"
	"github.com/cbodonnell/civboard/pkg/state"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port        int
	TLS         *TLSConfig
	AllowOrigin string
	Manager     state.BoardManager
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewHandler(opts.Manager, opts.AllowOrigin),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewHandler routes the board API over manager.
func NewHandler(manager state.BoardManager, allowOrigin string) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/boards", handlers.HandleListBoards(manager)).Methods(http.MethodGet)
	r.HandleFunc("/boards", handlers.HandleCreateBoard(manager)).Methods(http.MethodPost)
	r.HandleFunc("/boards/import", handlers.HandleImportBoard(manager)).Methods(http.MethodPost)

	b := r.PathPrefix("/boards/{id}").Subrouter()
	b.HandleFunc("", handlers.HandleGetBoard(manager)).Methods(http.MethodGet)
	b.HandleFunc("", handlers.HandleDeleteBoard(manager)).Methods(http.MethodDelete)
	b.HandleFunc("/snapshot", handlers.HandleGetSnapshot(manager)).Methods(http.MethodGet)
	b.HandleFunc("/size", handlers.HandleSetSize(manager)).Methods(http.MethodPut)
	b.HandleFunc("/reset-tiles", handlers.HandleResetTiles(manager)).Methods(http.MethodPost)
	b.HandleFunc("/reset-size", handlers.HandleResetSize(manager)).Methods(http.MethodPost)

	t := b.PathPrefix("/tiles/{q}/{r}").Subrouter()
	t.HandleFunc("", handlers.HandleGetTile(manager)).Methods(http.MethodGet)
	t.HandleFunc("/terrain", handlers.HandleSetTerrain(manager)).Methods(http.MethodPut)
	t.HandleFunc("/hills", handlers.HandleSetHills(manager)).Methods(http.MethodPut)
	t.HandleFunc("/feature", handlers.HandleSetFeature(manager)).Methods(http.MethodPut)
	t.HandleFunc("/feature", handlers.HandleRemoveFeature(manager)).Methods(http.MethodDelete)
	t.HandleFunc("/rivers/{edge}", handlers.HandleFlipRiver(manager)).Methods(http.MethodPost)
	t.HandleFunc("/improvement", handlers.HandlePlaceImprovement(manager)).Methods(http.MethodPut)
	t.HandleFunc("/improvement", handlers.HandleRemoveImprovement(manager)).Methods(http.MethodDelete)

	cors := middleware.NewCORSMiddleware(allowOrigin)
	return cors(middleware.Logging(r))
}

// Start starts the APIServer
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
