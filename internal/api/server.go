// Package api implements the settlement engine's HTTP control surface,
// the four endpoints the connector drives: account setup and teardown,
// outgoing settlements, and the peer message channel.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/interledger-go/iroha-settlement/internal/model"
	"go.uber.org/zap"
)

// Server holds the handler dependencies.
type Server struct {
	logger      *zap.Logger
	store       Store
	settler     Settler
	messenger   PeerMessenger
	selfAccount model.LedgerAccountID
}

// NewServer builds the control surface for the engine's ledger identity.
func NewServer(store Store, settler Settler, messenger PeerMessenger, selfAccount model.LedgerAccountID, logger *zap.Logger) *Server {
	return &Server{
		logger:      logger.Named("api"),
		store:       store,
		settler:     settler,
		messenger:   messenger,
		selfAccount: selfAccount,
	}
}

// Router wires the endpoints.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Post("/accounts", s.handleCreateAccount)
	r.Delete("/accounts/{id}", s.handleDeleteAccount)
	r.Post("/accounts/{id}/settlements", s.handleSettlement)
	r.Post("/accounts/{id}/messages", s.handleMessage)

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(started)),
		)
	})
}
