package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	handlers "github.com/fin-tools/calc-atlas/pkg/handlers/calculator"
	calcatlasmiddleware "github.com/fin-tools/calc-atlas/pkg/server/middleware"
	"github.com/fin-tools/calc-atlas/pkg/services/calc"
	"github.com/fin-tools/calc-atlas/pkg/store/cache"
	"github.com/fin-tools/calc-atlas/pkg/store/history"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router *chi.Mux
	logger *zerolog.Logger
	server *http.Server

	shutdownTimeout time.Duration
}

type Dependencies struct {
	Registry calc.Registry
	History  history.Store
	Cache    cache.Repository
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	calcHandler := handlers.NewHandler(
		config.Dependencies.Registry,
		config.Dependencies.History,
		config.Dependencies.Cache,
	)

	router := chi.NewRouter()

	router.Use(calcatlasmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/calculators", calcHandler.ListCalculators)
		r.Post("/calculators/loan", calcHandler.CalculateLoan)
		r.Post("/calculators/mortgage", calcHandler.CalculateMortgage)
		r.Post("/calculators/investment", calcHandler.CalculateInvestment)
		r.Get("/calculators/{name}/history", calcHandler.GetHistory)
	})

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

// Router exposes the configured mux, mainly for tests.
func (w *WebAPI) Router() http.Handler {
	return w.router
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
