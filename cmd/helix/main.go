package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/helixkg/helix/internal/config"
	"github.com/helixkg/helix/internal/graph"
	"github.com/helixkg/helix/internal/llm"
	"github.com/helixkg/helix/internal/observability"
	"github.com/helixkg/helix/internal/pipeline"
	"github.com/helixkg/helix/internal/prompt"
	"github.com/helixkg/helix/internal/source"
)

const defaultInput = "samples/abstracts.csv"

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load() // .env is optional

	configPath := flag.String("config", "config/config.toml", "path to TOML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// no config file is fine, defaults + env cover the common case
		cfg = config.Default()
		cfg.ApplyEnv()
	}

	observability.InitializeLogger(cfg.Logger)
	defer observability.Sync()
	log := observability.GetLogger()

	input := defaultInput
	if flag.NArg() > 0 {
		input = flag.Arg(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := source.Open(input, source.Columns{
		Title:    cfg.Source.TitleColumn,
		Abstract: cfg.Source.AbstractColumn,
	})
	if err != nil {
		log.Error("failed to open input", zap.String("path", input), zap.Error(err))
		return 1
	}
	defer src.Close()

	driver, err := graph.NewBoltDriver(cfg.Graph.URI, cfg.Graph.User, cfg.Graph.Password, log)
	if err != nil {
		log.Error("failed to connect to graph store", zap.Error(err))
		return 1
	}
	defer driver.Close(context.Background())

	if err := driver.BuildIndices(ctx); err != nil {
		log.Warn("failed to build indices", zap.Error(err))
	}

	client, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		log.Error("failed to initialize llm client", zap.Error(err))
		return 1
	}

	p := pipeline.New(
		prompt.NewBuilder(cfg.Prompt.Template),
		client,
		graph.NewIngestor(graph.NewCypherStore(driver), log),
		llm.OptionsFromConfig(cfg.LLM),
		log,
	)

	if _, err := p.Run(ctx, src); err != nil {
		log.Error("run aborted", zap.Error(err))
		return 1
	}
	return 0
}
