package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/helixkg/helix/internal/config"
	"github.com/helixkg/helix/internal/graph"
	"github.com/helixkg/helix/internal/llm"
	"github.com/helixkg/helix/internal/model"
	"github.com/helixkg/helix/internal/parser"
	"github.com/helixkg/helix/internal/prompt"
)

// Server exposes single-record extraction over HTTP, sharing the same
// build/generate/parse/ingest stages as the batch CLI.
type Server struct {
	builder  *prompt.Builder
	llm      llm.Client
	ingestor *graph.Ingestor
	driver   graph.GraphDriver
	options  llm.Options
	log      *zap.Logger
}

func NewServer(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}

	driver, err := graph.NewBoltDriver(cfg.Graph.URI, cfg.Graph.User, cfg.Graph.Password, log)
	if err != nil {
		return nil, err
	}
	if err := driver.BuildIndices(ctx); err != nil {
		log.Warn("failed to build indices", zap.Error(err))
	}

	client, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		driver.Close(ctx)
		return nil, err
	}

	return &Server{
		builder:  prompt.NewBuilder(cfg.Prompt.Template),
		llm:      client,
		ingestor: graph.NewIngestor(graph.NewCypherStore(driver), log),
		driver:   driver,
		options:  llm.OptionsFromConfig(cfg.LLM),
		log:      log,
	}, nil
}

func (s *Server) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/extract", s.Extract)
	r.GET("/healthz", s.Health)

	return r
}

type ExtractRequest struct {
	Title    string `json:"title"`
	Abstract string `json:"abstract" binding:"required"`
}

type ExtractResponse struct {
	RunID           string         `json:"run_id"`
	Triples         []model.Triple `json:"triples"`
	TriplesIngested int            `json:"triples_ingested"`
	TriplesSkipped  int            `json:"triples_skipped"`
}

func (s *Server) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx := c.Request.Context()
	raw, err := s.llm.Generate(ctx, s.builder.Build(req.Title, req.Abstract), &s.options)
	if err != nil {
		s.log.Error("extraction failed",
			zap.String("kind", string(llm.KindOf(err))),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Extraction failed", "kind": string(llm.KindOf(err))})
		return
	}

	triples := parser.ParseTriples(raw, s.log)
	runID := uuid.NewString()
	stats := s.ingestor.Ingest(ctx, triples, graph.Provenance{
		SourceTitle: req.Title,
		RunID:       runID,
	})

	c.JSON(http.StatusOK, ExtractResponse{
		RunID:           runID,
		Triples:         triples,
		TriplesIngested: stats.Ingested,
		TriplesSkipped:  stats.Skipped,
	})
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
