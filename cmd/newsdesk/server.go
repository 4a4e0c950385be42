package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/newsdesk/newsdesk/pkg/config"
	"github.com/newsdesk/newsdesk/pkg/llm"
	"github.com/newsdesk/newsdesk/pkg/repository"
	"github.com/newsdesk/newsdesk/pkg/scheduler"
	"github.com/newsdesk/newsdesk/server"
)

type serverCmd struct {
	Config string `short:"c" long:"config" env:"NEWSDESK_CONFIG" default:"newsdesk.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`
}

// runServer starts the backend and the history cleanup, both stop when ctx is done or one fails
func runServer(ctx context.Context, cmd serverCmd, debug bool) error {
	cfg, err := config.Load(cmd.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Listen != "" {
		cfg.Server.Listen = cmd.Listen
	}
	if cfg.LLM.APIKey != "" {
		setupLog(debug, true, cfg.LLM.APIKey)
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	srv := server.New(&serverConfig{cfg: cfg}, server.NewRepositoryAdapter(repos), llm.NewRewriter(cfg.LLM), revision, debug)
	sched := scheduler.NewScheduler(scheduler.Params{
		History:         repos.History,
		Retention:       cfg.History.Retention,
		CleanupInterval: cfg.History.CleanupInterval,
	})

	log.Printf("[INFO] llm model %s at %s", cfg.LLM.Model, cfg.LLM.Endpoint)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error { return sched.Run(gctx) })
	if err := g.Wait(); err != nil {
		return err
	}
	log.Print("[INFO] shutdown complete")
	return nil
}

// serverConfig exposes the loaded configuration to the server
type serverConfig struct {
	cfg *config.Config
}

func (c *serverConfig) GetServerConfig() (listen string, timeout time.Duration) {
	return c.cfg.Server.Listen, c.cfg.Server.Timeout
}

func (c *serverConfig) GetDefaultUser() string { return c.cfg.Server.DefaultUser }

func (c *serverConfig) GetHistoryLimit() int { return c.cfg.History.MaxItems }
