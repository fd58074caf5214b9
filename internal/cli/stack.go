package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"slimtrack/internal/app"
	"slimtrack/internal/backend"
	"slimtrack/internal/config"
	"slimtrack/internal/domain"
	"slimtrack/internal/log"
)

// stack is the wired application for one command invocation.
type stack struct {
	cfg         *config.Config
	logger      *log.Logger
	categorizer *domain.Categorizer
	store       *app.RecordStore
	records     *app.RecordService
	charts      *app.ChartsService
	suggestions *app.SuggestionService
}

func (o *options) config() (*config.Config, error) {
	config.LoadEnvFile()
	cfg := config.Load()
	if o.backend != "" {
		cfg.Backend = strings.ToLower(o.backend)
	}
	if o.dbPath != "" {
		cfg.DBPath = o.dbPath
	}
	if o.rules != "" {
		cfg.RulesFile = o.rules
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// withStack loads configuration, opens and initialises the store, runs fn
// and releases the store. A store that cannot be initialised is fatal.
func (o *options) withStack(ctx context.Context, logOut io.Writer, fn func(*stack) error) error {
	cfg, err := o.config()
	if err != nil {
		return err
	}
	rules, err := config.LoadRules(cfg.RulesFile)
	if err != nil {
		return err
	}

	logger := log.New(log.Config{
		Level:     log.ParseLevel(cfg.LogLevel),
		Format:    cfg.LogFormat,
		Output:    logOut,
		Component: log.ComponentCLI,
	})

	res, err := backend.NewFactory(logger).Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Close(); err != nil {
			logger.Warn("closing store", log.FieldError, err)
		}
	}()

	store := app.NewRecordStore(res.Repo, logger)
	if err := store.Init(ctx); err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}

	return fn(&stack{
		cfg:         cfg,
		logger:      logger,
		categorizer: rules.Categorizer,
		store:       store,
		records:     app.NewRecordService(store, rules.Bounds),
		charts:      app.NewChartsService(store, rules.Categorizer),
		suggestions: app.NewSuggestionService(store, rules.Categorizer),
	})
}
