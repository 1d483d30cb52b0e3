package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"citygis/internal/api/handlers/http/admin"
	"citygis/internal/api/handlers/http/public"
	"citygis/internal/api/handlers/http/system"
	"citygis/internal/config"
	"citygis/internal/metrics"
	"citygis/internal/middleware"
	"citygis/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, docStore, spatialStore system.Pinger) *Server {
	publicHandler := public.NewHandler(logger, svc, svc)
	adminHandler := admin.NewHandler(logger, svc)
	systemHandler := system.NewHandler(logger, docStore, spatialStore)

	r := InitRouter(cfg, publicHandler, adminHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, publicHandler *public.Handler, adminHandler *admin.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// PUBLIC
		api.Route("/incidents", func(ir chi.Router) {
			ir.Use(middleware.Limit(10, 20, 5*time.Minute, logger))
			ir.Post("/", publicHandler.ReportIncident)
			ir.Get("/", publicHandler.ListIncidents)
			ir.Get("/map", publicHandler.MapIncidents)
			ir.Get("/nearby", publicHandler.NearbyIncidents)
			ir.Get("/{id}", publicHandler.GetIncident)
		})

		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKey(cfg.APIKey, logger))
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Route("/incidents/{id}", func(rr chi.Router) {
				rr.Put("/status", adminHandler.UpdateIncidentStatus)
				rr.Delete("/", adminHandler.DeleteIncident)
			})
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
		api.Get("/status", systemHandler.SystemStatus)
	})

	r.Handle("/metrics", metrics.Handler())

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
