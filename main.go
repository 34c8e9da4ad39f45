package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/budget-rule/backend/internal/authz"
	"github.com/budget-rule/backend/internal/budget"
	"github.com/budget-rule/backend/internal/config"
	v1 "github.com/budget-rule/backend/internal/controllers/v1"
	"github.com/budget-rule/backend/internal/currency"
	"github.com/budget-rule/backend/internal/models"
	"github.com/budget-rule/backend/internal/router"
	"github.com/budget-rule/backend/internal/store"
	"github.com/budget-rule/backend/internal/store/mongostore"
	"github.com/budget-rule/backend/internal/store/sqlstore"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	ctx := context.Background()

	s, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer func() {
		if err := s.Close(ctx); err != nil {
			log.Error().Err(err).Msg("closing store")
		}
	}()

	pref, err := currency.NewPreference(cfg.DefaultCurrency)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	verifier := authz.Verifier{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.JWTIssuer,
	}

	r, teardown, err := router.Config(cfg.URL())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	co := v1.Controller{
		Service:  budget.NewService(s),
		Currency: pref,
	}
	router.AttachRoutes(co, verifier, r.Group("/"))

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// openStore connects to the configured storage backend.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.StoreBackend == config.BackendMongoDB {
		return mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	}

	// Create data directory
	err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), os.ModePerm)
	if err != nil {
		return nil, err
	}

	err = models.Connect(cfg.SQLitePath + "?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}

	log.Info().Str("path", cfg.SQLitePath).Msg("connected to SQLite")
	return sqlstore.New(models.DB), nil
}
