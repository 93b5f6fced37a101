package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpLayer "property-plan/http"
	"property-plan/service"
)

func serveCmd(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the plan HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := root.cfg
			if addr == "" {
				addr = cfg.Server.Addr
			}

			planService, cleanup, err := newPlanService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			planHandler := httpLayer.NewPlanHandler(planService)
			termComparisonHandler := httpLayer.NewTermComparisonHandler(service.NewTermComparisonService())

			rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
			defer rateLimiter.Stop()

			server := &http.Server{
				Addr:         addr,
				Handler:      httpLayer.NewRouter(planHandler, termComparisonHandler, rateLimiter),
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
				IdleTimeout:  cfg.Server.IdleTimeout,
			}

			serverErr := make(chan error, 1)
			go func() {
				log.Printf("API listening on %s", addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err := <-serverErr:
				return err
			case <-quit:
				log.Println("Shutting down server...")
			case <-cmd.Context().Done():
				log.Println("Shutting down server...")
			}

			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				log.Printf("Error during server shutdown: %v", err)
			}

			log.Println("Server exited")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return cmd
}
