package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go-folio/internal/config"
	"go-folio/internal/handler/http"
	"go-folio/internal/logger"
	"go-folio/internal/server"
	"go-folio/internal/service"
	"go-folio/internal/store"
	"go-folio/migrations"
	"go-folio/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("folio-server")

	root := &cobra.Command{
		Use:   "folio-server",
		Short: "Portfolio site backend",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.AddCommand(serveCmd(log), migrateCmd(log), seedCmd(log))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// serveCmd runs pending migrations and serves the REST API until a shutdown
// signal arrives.
func serveCmd(log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API server",
		Run: func(cmd *cobra.Command, _ []string) {
			cfg := loadConfig(log)
			db := connect(cmd.Context(), cfg, log)
			defer db.Close()

			if err := migrations.Migrate(db.DB); err != nil {
				log.Fatal().Err(err).Msg("error applying migrations")
			}

			repositories := store.NewRepositories(db, log)
			services := service.NewServices(repositories, *cfg, log)
			handler := http.NewHandler(services, cfg.Server, log)

			srv, err := server.NewServer(handler, cfg.Server, log)
			if err != nil {
				log.Fatal().Err(err).Msg("error creating server")
			}
			srv.RunServer()
		},
	}
}

// migrateCmd applies pending migrations and exits.
func migrateCmd(log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Run: func(cmd *cobra.Command, _ []string) {
			cfg := loadConfig(log)
			db := connect(cmd.Context(), cfg, log)
			defer db.Close()

			if err := migrations.Migrate(db.DB); err != nil {
				log.Fatal().Err(err).Msg("error applying migrations")
			}
			log.Info().Msg("migrations applied")
		},
	}
}

// seedCmd creates the dashboard account. The password hash has to be computed
// at runtime, so this cannot live in a migration.
func seedCmd(log *logger.Logger) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the admin dashboard account",
		Run: func(cmd *cobra.Command, _ []string) {
			cfg := loadConfig(log)
			db := connect(cmd.Context(), cfg, log)
			defer db.Close()

			if err := migrations.Migrate(db.DB); err != nil {
				log.Fatal().Err(err).Msg("error applying migrations")
			}

			repositories := store.NewRepositories(db, log)
			services := service.NewServices(repositories, *cfg, log)

			user, err := services.AuthService.RegisterUser(cmd.Context(), models.Credentials{
				Username: username,
				Password: password,
			})
			if err != nil {
				log.Fatal().Err(err).Msg("error creating admin account")
			}
			log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("admin account created")
		},
	}

	cmd.Flags().StringVar(&username, "username", "admin", "admin account name")
	cmd.Flags().StringVar(&password, "password", "", "admin account password")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func loadConfig(log *logger.Logger) *config.StructuredConfig {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log.Debug().Any("config", cfg).Msg("received configs")
	return cfg
}

func connect(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) *store.DB {
	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	return db
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
