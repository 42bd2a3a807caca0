package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Se02246/OrderMaster/internal/config"
	"github.com/Se02246/OrderMaster/internal/form"
	appHTTP "github.com/Se02246/OrderMaster/internal/handler/http"
	"github.com/Se02246/OrderMaster/internal/handler/web"
	"github.com/Se02246/OrderMaster/internal/pkg/database"
	"github.com/Se02246/OrderMaster/internal/query"
	"github.com/Se02246/OrderMaster/internal/repository/postgresql"
	apartmentService "github.com/Se02246/OrderMaster/internal/service/apartment"
	employeeService "github.com/Se02246/OrderMaster/internal/service/employee"
	statsService "github.com/Se02246/OrderMaster/internal/service/stats"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ordermaster",
		Short: "Dashboard for scheduling apartment-cleaning jobs",
	}

	rootCmd.AddCommand(serveCmd(), migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Apply migrations and run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			if err := db.Migrate(); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			server := &http.Server{
				Addr:         fmt.Sprintf(":%d", cfg.App.Port),
				Handler:      buildRouter(cfg, db),
				ReadTimeout:  5 * time.Second,
				WriteTimeout: 10 * time.Second,
				IdleTimeout:  120 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				slog.Info("Server listening", "port", cfg.App.Port, "env", cfg.App.Env)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return fmt.Errorf("server error: %w", err)
			case <-quit:
			}

			slog.Info("Shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown error: %w", err)
			}
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			if err := db.Migrate(); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			fmt.Println("Migrations applied.")
			return nil
		},
	}
}

func buildRouter(cfg *config.Config, db *database.DB) *chi.Mux {
	apartmentRepo := postgresql.NewApartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	statsRepo := postgresql.NewStatsRepository(db)

	apartmentSvc := apartmentService.NewApartmentService(apartmentRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	statsSvc := statsService.NewStatsService(statsRepo, cfg.Stats.DefaultWindowMonths)

	caches := query.NewStore(cfg.Cache.TTL)
	sessions := form.NewSessions(cfg.Cache.FormSessionTTL)

	apartmentHandler := appHTTP.NewApartmentHandler(apartmentSvc, caches)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, caches)
	statsHandler := appHTTP.NewStatsHandler(statsSvc, caches)
	dashboardHandler := appHTTP.NewDashboardHandler(statsSvc, caches)

	pages := web.NewPageHandler(
		apartmentSvc,
		employeeSvc,
		statsSvc,
		caches,
		sessions,
		cfg.Stats.DefaultWindowMonths,
		cfg.Features.InlineEmployeeCreate,
	)

	return appHTTP.NewRouter(cfg, apartmentHandler, employeeHandler, statsHandler, dashboardHandler, pages)
}
