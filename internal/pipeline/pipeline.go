// Package pipeline sequences extraction and ingestion per publication record:
// build prompt -> call model -> parse triples -> merge into the graph. Records
// are processed strictly one at a time in source order; failures are contained
// at the narrowest scope (line, triple, record) that still makes progress.
package pipeline

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/helixkg/helix/internal/graph"
	"github.com/helixkg/helix/internal/llm"
	"github.com/helixkg/helix/internal/model"
	"github.com/helixkg/helix/internal/parser"
	"github.com/helixkg/helix/internal/prompt"
	"github.com/helixkg/helix/internal/source"
)

// recordState tracks where one record is in its lifecycle. States never
// repeat; Ingested and Skipped are terminal.
type recordState int

const (
	statePending recordState = iota
	statePrompted
	stateExtracted
	stateParsed
	stateIngested
	stateSkipped
)

func (s recordState) String() string {
	switch s {
	case statePending:
		return "pending"
	case statePrompted:
		return "prompted"
	case stateExtracted:
		return "extracted"
	case stateParsed:
		return "parsed"
	case stateIngested:
		return "ingested"
	case stateSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Summary reports the outcome of a whole run.
type Summary struct {
	RunID           string
	Records         int
	Ingested        int
	Skipped         int
	TriplesParsed   int
	TriplesIngested int
	Elapsed         time.Duration
}

// Pipeline wires the per-record stages together.
type Pipeline struct {
	Builder  *prompt.Builder
	LLM      llm.Client
	Ingestor *graph.Ingestor
	Options  llm.Options

	log *zap.Logger
}

func New(builder *prompt.Builder, client llm.Client, ingestor *graph.Ingestor, opts llm.Options, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		Builder:  builder,
		LLM:      client,
		Ingestor: ingestor,
		Options:  opts,
		log:      log,
	}
}

// Run drains the record source sequentially. A model-call failure skips only
// that record (per-record isolation, matching the parser's per-line and the
// ingestor's per-triple policy); the only errors returned are a failing
// source read and context cancellation, both of which abort the run.
func (p *Pipeline) Run(ctx context.Context, src source.RecordSource) (*Summary, error) {
	summary := &Summary{RunID: uuid.NewString()}
	started := time.Now()

	for index := 0; ; index++ {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		record, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return summary, err
		}

		summary.Records++
		p.processRecord(ctx, index, record, summary)
	}

	summary.Elapsed = time.Since(started)
	p.log.Info("run complete",
		zap.String("run_id", summary.RunID),
		zap.Int("records", summary.Records),
		zap.Int("ingested", summary.Ingested),
		zap.Int("skipped", summary.Skipped),
		zap.Int("triples_parsed", summary.TriplesParsed),
		zap.Int("triples_ingested", summary.TriplesIngested),
		zap.Duration("elapsed", summary.Elapsed))
	return summary, nil
}

func (p *Pipeline) processRecord(ctx context.Context, index int, record model.Record, summary *Summary) {
	state := statePending
	log := p.log.With(
		zap.Int("record", index),
		zap.String("title", snippet(record.Title)))

	built := p.Builder.Build(record.Title, record.Abstract)
	state = statePrompted

	raw, err := p.LLM.Generate(ctx, built, &p.Options)
	if err != nil {
		state = stateSkipped
		log.Error("extraction failed, skipping record",
			zap.String("state", state.String()),
			zap.String("kind", string(llm.KindOf(err))),
			zap.Error(err))
		summary.Skipped++
		return
	}
	state = stateExtracted

	triples := parser.ParseTriples(raw, log)
	state = stateParsed
	summary.TriplesParsed += len(triples)

	if len(triples) == 0 {
		state = stateSkipped
		log.Warn("no triples parsed, skipping record", zap.String("state", state.String()))
		summary.Skipped++
		return
	}

	stats := p.Ingestor.Ingest(ctx, triples, graph.Provenance{
		SourceTitle: record.Title,
		RunID:       summary.RunID,
	})
	state = stateIngested
	summary.TriplesIngested += stats.Ingested
	summary.Ingested++

	log.Info("record ingested",
		zap.String("state", state.String()),
		zap.Int("triples", stats.Ingested),
		zap.Int("triples_skipped", stats.Skipped))
}

func snippet(title string) string {
	const max = 60
	if len(title) <= max {
		return title
	}
	return title[:max] + "..."
}
