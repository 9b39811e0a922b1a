// Copyright 2025 BestBox Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command bestbox is the agent orchestration server.
//
// Usage:
//
//	bestbox serve --config bestbox.yaml
//	bestbox validate --config bestbox.yaml
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

	"github.com/alecthomas/kong"

	"github.com/bestbox/bestbox"
	"github.com/bestbox/bestbox/pkg/adapters"
	"github.com/bestbox/bestbox/pkg/audit"
	"github.com/bestbox/bestbox/pkg/auth"
	"github.com/bestbox/bestbox/pkg/checkpoint"
	"github.com/bestbox/bestbox/pkg/config"
	"github.com/bestbox/bestbox/pkg/contextmgr"
	"github.com/bestbox/bestbox/pkg/embedder"
	"github.com/bestbox/bestbox/pkg/llm"
	"github.com/bestbox/bestbox/pkg/logger"
	"github.com/bestbox/bestbox/pkg/protocol"
	"github.com/bestbox/bestbox/pkg/reranker"
	"github.com/bestbox/bestbox/pkg/retriever"
	"github.com/bestbox/bestbox/pkg/runtime"
	"github.com/bestbox/bestbox/pkg/scheduler"
	"github.com/bestbox/bestbox/pkg/server"
	"github.com/bestbox/bestbox/pkg/session"
	"github.com/bestbox/bestbox/pkg/storage"
	"github.com/bestbox/bestbox/pkg/tools"
	"github.com/bestbox/bestbox/pkg/vectorstore"
)

// CLI defines the command-line interface.
type CLI struct {
	Version  VersionCmd  `cmd:"" help:"Show version information."`
	Serve    ServeCmd    `cmd:"" help:"Start the BestBox server."`
	Validate ValidateCmd `cmd:"" help:"Validate a configuration file."`

	Config    string `short:"c" help:"Path to config file." type:"path" default:"bestbox.yaml"`
	LogLevel  string `help:"Log level (debug, info, warn, error)." default:""`
	LogFormat string `help:"Log format (text or json)." default:""`
}

// VersionCmd shows version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(bestbox.GetVersion())
	return nil
}

// ValidateCmd parses the config file and reports problems.
type ValidateCmd struct{}

func (c *ValidateCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	fmt.Printf("%s is valid (server %s, model %s)\n", cli.Config, cfg.Server.Address(), cfg.LLM.Model)
	return nil
}

// ServeCmd starts the HTTP server.
type ServeCmd struct {
	Port int `help:"Override the listen port." default:"0"`
}

func (c *ServeCmd) Run(cli *CLI) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		slog.Info("Shutting down...")
		cancel()
	}()

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if c.Port != 0 {
		cfg.Server.Port = c.Port
	}
	if cli.LogLevel != "" {
		cfg.Logging.Level = cli.LogLevel
	}
	if cli.LogFormat != "" {
		cfg.Logging.Format = cli.LogFormat
	}
	logger.Init(logger.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	slog.Info("Loaded configuration", "path", cli.Config)

	db, err := storage.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	checkpoints, err := checkpoint.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to init checkpoint store: %w", err)
	}
	sessions, err := session.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to init session store: %w", err)
	}
	auditLog, err := audit.NewLogger(db)
	if err != nil {
		return fmt.Errorf("failed to init audit log: %w", err)
	}
	defer auditLog.Close()

	backends, err := adapters.NewRegistry(cfg.Integrations)
	if err != nil {
		return fmt.Errorf("failed to build backend registry: %w", err)
	}

	kb, err := vectorstore.New(&cfg.VectorStore)
	if err != nil {
		return fmt.Errorf("failed to connect vector store: %w", err)
	}

	lexicon, err := retriever.LoadLexicon(cfg.Retriever.LexiconPath)
	if err != nil {
		return fmt.Errorf("failed to load lexicon: %w", err)
	}
	defer lexicon.Close()
	if cfg.Retriever.LexiconPath != "" {
		if err := lexicon.Watch(cfg.Retriever.LexiconPath); err != nil {
			slog.Warn("Lexicon hot reload disabled", "error", err)
		}
	}

	kbSearch := retriever.New(
		cfg.Retriever,
		kb,
		embedder.New(&cfg.Embedder),
		reranker.New(&cfg.Reranker),
		lexicon,
		retriever.WithStructuredFusion(db.DB, cfg.Retriever.Weights.Structured),
	)

	provider := llm.NewOpenAIProvider(cfg.LLM)
	summarizer := &contextmgr.LLMSummarizer{
		Generate: func(ctx context.Context, messages []*protocol.Message) (string, error) {
			text, _, _, err := provider.Generate(ctx, messages, nil)
			return text, err
		},
	}
	contexts := contextmgr.New(cfg.Context, provider.ContextWindow(), contextmgr.NewTokenCounter(cfg.LLM.Model), summarizer)

	catalog := tools.NewRegistry()
	if err := tools.RegisterAdapterTools(catalog, backends); err != nil {
		return fmt.Errorf("failed to register adapter tools: %w", err)
	}
	if err := catalog.Register(tools.NewSearchTool(kbSearch)); err != nil {
		return fmt.Errorf("failed to register search tool: %w", err)
	}

	gpus := scheduler.New(cfg.GPU)

	rt := runtime.New(runtime.Deps{
		Limits:      cfg.Limits,
		Provider:    provider,
		Catalog:     catalog,
		Contexts:    contexts,
		Checkpoints: checkpoints,
		Sessions:    sessions,
		Audit:       auditLog,
		GPUs:        gpus,
		Lexicon:     lexicon,
	})

	var validator auth.TokenValidator
	if cfg.Auth.Enabled {
		v, err := auth.NewJWTValidator(ctx, &cfg.Auth)
		if err != nil {
			return fmt.Errorf("failed to init auth: %w", err)
		}
		validator = v
	} else {
		slog.Warn("Auth disabled; using header identity")
	}

	recoverTurns(ctx, rt, sessions)

	go gcLoop(ctx, checkpoints, time.Duration(cfg.Checkpoint.GraceSeconds)*time.Second)

	srv := server.New(rt, sessions, backends, gpus, auditLog, validator)
	httpSrv := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Server shutdown error", "error", err)
		}
	}()

	slog.Info("BestBox server ready", "address", cfg.Server.Address(), "model", cfg.LLM.Model)
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// recoverTurns picks up work the previous process left behind: running
// turns resume from their checkpoints, replaying recorded tool results;
// turns parked on approvals only get surfaced, since they wait on a human
// decision.
func recoverTurns(ctx context.Context, rt *runtime.Runtime, sessions *session.Store) {
	running, err := sessions.RunningTurns(ctx)
	if err != nil {
		slog.Warn("Recovery scan failed", "error", err)
		return
	}
	for _, turn := range running {
		events, _, err := rt.ResumeTurn(ctx, turn.ThreadID)
		if err != nil {
			slog.Warn("Could not resume interrupted turn", "turn_id", turn.ID, "error", err)
			if dbErr := sessions.CompleteTurn(ctx, turn.ID, session.TurnFailed, turn.Domain,
				"interrupted and not resumable", "", turn.ToolCallCount); dbErr != nil {
				slog.Warn("Failed to close unresumable turn", "turn_id", turn.ID, "error", dbErr)
			}
			continue
		}
		go func() {
			for range events {
			}
		}()
	}

	if awaiting, err := sessions.AwaitingTurns(ctx); err != nil {
		slog.Warn("Recovery scan failed", "error", err)
	} else if len(awaiting) > 0 {
		slog.Info("Turns awaiting human approval", "count", len(awaiting))
	}
}

// gcLoop prunes checkpoints of terminal turns past the grace period.
func gcLoop(ctx context.Context, checkpoints *checkpoint.Store, grace time.Duration) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := checkpoints.GC(ctx, grace)
			if err != nil {
				slog.Warn("Checkpoint GC failed", "error", err)
			} else if removed > 0 {
				slog.Info("Checkpoint GC", "removed", removed)
			}
		}
	}
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("bestbox"),
		kong.Description("BestBox - enterprise agent orchestration runtime"),
		kong.UsageOnError(),
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
