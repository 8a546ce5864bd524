package server

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/sharansub/screensaway/internal/handler"
	"github.com/sharansub/screensaway/internal/session"
)

type Server struct {
	handler *handler.Handler
	logger  *zap.Logger
	server  *http.Server
}

func NewServer(h *handler.Handler, sessions session.Store, logger *zap.Logger, addr string) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h, sessions)

	return &Server{
		handler: h,
		logger:  logger,
		server: &http.Server{
			Addr:    addr,
			Handler: handler.RequestLogger(logger)(mux),
		},
	}
}

func (s *Server) Start() error {
	s.logger.Info("server starting", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
