package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/camden-git/pvtheatresbackend/config"
	"github.com/camden-git/pvtheatresbackend/database"
	"github.com/camden-git/pvtheatresbackend/logger"
)

var (
	envFiles []string
	cfg      *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "pvtheatres",
	Short: "Archive of the police reports of the Parisian theatres, 1770-1789.",
	Long: `pvtheatres serves and maintains the archive of the police reports written
by the commissioners of the Paris theatres. Configuration is read from the
environment and from .env files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(envFiles...); err != nil {
			return err
		}
		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = &loaded
		if _, err := logger.Init(cfg.LogLevel); err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.L().Sync()
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the archive tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer closeDatabase(db)

		if err := database.AutoMigrateModels(db); err != nil {
			return err
		}
		logger.L().Info("database schema is up to date")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed <file.json>",
	Short: "Load theatres and their rooms from a reference file",
	Long: `Loads the theatres and the rooms they occupied from a JSON document of the form
{"theatres": [{"name": "...", "rooms": [{"name": "...", "occupation_dates": "..."}]}]}.
Records already present are left untouched, so the command can be rerun safely.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open seed file: %w", err)
		}
		defer f.Close()

		data, err := database.DecodeReferenceData(f)
		if err != nil {
			return err
		}

		db, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer closeDatabase(db)

		if err := database.AutoMigrateModels(db); err != nil {
			return err
		}
		result, err := database.SeedReferenceData(cmd.Context(), db, data)
		if err != nil {
			return err
		}
		logger.L().Info("reference data loaded",
			zap.String("file", args[0]),
			zap.Int("theatres_created", result.TheatresCreated),
			zap.Int("rooms_created", result.RoomsCreated),
		)
		return nil
	},
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.InitGormDB(database.Options{
		SQLitePath:      cfg.DatabasePath,
		PostgresDSN:     cfg.DatabaseDSN,
		ReadReplicaDSNs: cfg.ReadReplicaDSNs,
		LogLevel:        database.ParseLogLevel(cfg.DBLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return db, nil
}

func closeDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Sugar().Warnw("Error closing database", "error", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "Environment files to load before reading the configuration")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(userCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
