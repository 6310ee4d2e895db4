package database

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	applog "github.com/camden-git/pvtheatresbackend/logger"
	"github.com/camden-git/pvtheatresbackend/models"
)

// Options selects the storage engine and its tuning.
// PostgresDSN takes precedence over SQLitePath when both are set.
type Options struct {
	SQLitePath      string
	PostgresDSN     string
	ReadReplicaDSNs []string
	LogLevel        logger.LogLevel
	SlowThreshold   time.Duration
}

// SQLiteDSN appends the connection parameters every sqlite connection needs:
// enforced foreign keys (cascades and SET NULL depend on them), WAL and a busy timeout.
func SQLiteDSN(path string) string {
	params := url.Values{}
	params.Add("_foreign_keys", "on")
	params.Add("_journal_mode", "WAL")
	params.Add("_busy_timeout", "5000")

	if strings.Contains(path, "?") {
		return path + "&" + params.Encode()
	}
	return path + "?" + params.Encode()
}

func (o Options) dialectors() (readwrite gorm.Dialector, readonly []gorm.Dialector, err error) {
	if o.PostgresDSN != "" {
		readwrite = postgres.Open(o.PostgresDSN)
		for _, dsn := range o.ReadReplicaDSNs {
			readonly = append(readonly, postgres.Open(dsn))
		}
		return readwrite, readonly, nil
	}
	if o.SQLitePath == "" {
		return nil, nil, errors.New("no database configured: set a sqlite path or a postgres DSN")
	}
	if len(o.ReadReplicaDSNs) > 0 {
		applog.Sugar().Warnf("read replicas are only supported with postgres; ignoring %d replica DSNs", len(o.ReadReplicaDSNs))
	}
	return sqlite.Open(SQLiteDSN(o.SQLitePath)), nil, nil
}

// ParseLogLevel maps DB_LOG_LEVEL values onto gorm log levels.
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// InitGormDB initializes and returns a GORM database instance
func InitGormDB(opts Options) (*gorm.DB, error) {
	readwrite, readonly, err := opts.dialectors()
	if err != nil {
		return nil, err
	}

	slow := opts.SlowThreshold
	if slow == 0 {
		slow = time.Second
	}
	logLevel := opts.LogLevel
	if logLevel == 0 {
		logLevel = logger.Warn
	}
	gormLogger := logger.New(
		zap.NewStdLog(applog.L()),
		logger.Config{
			SlowThreshold:             slow,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(readwrite, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database using GORM: %w", err)
	}

	if len(readonly) > 0 {
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: readonly,
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, fmt.Errorf("failed to register read replicas: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	applog.Sugar().Infow("GORM database initialized", "dialect", db.Dialector.Name(), "replicas", len(readonly))
	return db, nil
}

// AutoMigrateModels creates or updates every archive table.
func AutoMigrateModels(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Theatre{},
		&models.Room{},
		&models.Source{},
		&models.Object{},
		&models.Person{},
		&models.Address{},
		&models.Residence{},
		&models.ProcesVerbal{},
		&models.User{},
		&models.Authorship{},
	)
	if err != nil {
		return fmt.Errorf("GORM AutoMigrate failed: %w", err)
	}
	applog.Sugar().Info("GORM AutoMigrate completed successfully.")
	return nil
}
