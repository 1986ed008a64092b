// Package batch classifies line-delimited JSON streams in parallel while
// keeping output in input order.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ar4mirez/langid/internal/classify"
	"github.com/ar4mirez/langid/internal/jsonl"
	"github.com/ar4mirez/langid/internal/metrics"
	"github.com/ar4mirez/langid/internal/stats"
)

// Config configures a Processor.
type Config struct {
	// Workers is the number of records classified concurrently.
	Workers int

	// ChunkSize is the number of records read before a chunk is classified
	// and written out.
	ChunkSize int
}

// DefaultConfig returns the default processor configuration.
func DefaultConfig() Config {
	return Config{
		Workers:   runtime.NumCPU(),
		ChunkSize: 1000,
	}
}

// Deps holds optional collaborators of a Processor.
type Deps struct {
	Metrics *metrics.Metrics
	Stats   *stats.Collector
}

// Summary describes a finished run.
type Summary struct {
	RunID     string        `json:"run_id"`
	Processed int           `json:"processed"`
	Skipped   int           `json:"skipped"`
	Duration  time.Duration `json:"duration"`
}

// Processor runs a classifier over a JSONL stream.
type Processor struct {
	classifier *classify.Classifier
	config     Config
	logger     *zap.Logger
	metrics    *metrics.Metrics
	stats      *stats.Collector
}

// NewProcessor creates a processor without metrics or stats.
func NewProcessor(classifier *classify.Classifier, cfg Config, logger *zap.Logger) *Processor {
	return NewProcessorWithDeps(classifier, cfg, logger, nil)
}

// NewProcessorWithDeps creates a processor with optional dependencies.
func NewProcessorWithDeps(classifier *classify.Classifier, cfg Config, logger *zap.Logger, deps *Deps) *Processor {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultConfig().ChunkSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &Processor{
		classifier: classifier,
		config:     cfg,
		logger:     logger,
	}
	if deps != nil {
		p.metrics = deps.Metrics
		p.stats = deps.Stats
	}
	return p
}

type pending struct {
	line   int
	record jsonl.Record
}

// Run reads records from in, classifies them and writes one result per
// record to out in input order. Malformed and oversize lines are logged
// and skipped. Read, write and cancellation errors stop the run; records
// read before a read error are still written.
func (p *Processor) Run(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	start := time.Now()
	summary := Summary{RunID: uuid.New().String()}
	logger := p.logger.With(zap.String("run_id", summary.RunID))

	logger.Info("batch started",
		zap.Int("workers", p.config.Workers),
		zap.Int("chunk_size", p.config.ChunkSize),
	)

	reader := jsonl.NewReader(in)
	writer := jsonl.NewWriter(out)

	err := p.run(ctx, logger, reader, writer, &summary)
	if flushErr := writer.Flush(); flushErr != nil && err == nil {
		err = fmt.Errorf("failed to flush output: %w", flushErr)
	}

	summary.Duration = time.Since(start)
	if p.metrics != nil {
		p.metrics.RecordBatch(err == nil, summary.Duration)
	}

	if err != nil {
		logger.Error("batch failed",
			zap.Error(err),
			zap.Int("processed", summary.Processed),
			zap.Int("skipped", summary.Skipped),
		)
		return summary, err
	}

	logger.Info("batch finished",
		zap.Int("processed", summary.Processed),
		zap.Int("skipped", summary.Skipped),
		zap.Duration("duration", summary.Duration),
	)
	return summary, nil
}

func (p *Processor) run(ctx context.Context, logger *zap.Logger, reader *jsonl.Reader, writer *jsonl.Writer, summary *Summary) error {
	chunk := make([]pending, 0, p.config.ChunkSize)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		rec, line, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		var lineErr *jsonl.LineError
		if errors.As(err, &lineErr) {
			logger.Warn("skipping malformed line",
				zap.Int("line", lineErr.Line),
				zap.Error(lineErr.Err),
			)
			summary.Skipped++
			if p.metrics != nil {
				p.metrics.RecordMalformed()
			}
			continue
		}
		if err != nil {
			// Records read before the failure are still classified and written.
			if len(chunk) > 0 {
				if chunkErr := p.processChunk(ctx, chunk, writer, summary); chunkErr != nil {
					return errors.Join(err, chunkErr)
				}
			}
			return err
		}

		chunk = append(chunk, pending{line: line, record: rec})
		if len(chunk) == p.config.ChunkSize {
			if err := p.processChunk(ctx, chunk, writer, summary); err != nil {
				return err
			}
			chunk = chunk[:0]
		}
	}

	if len(chunk) > 0 {
		return p.processChunk(ctx, chunk, writer, summary)
	}
	return nil
}

func (p *Processor) processChunk(ctx context.Context, chunk []pending, writer *jsonl.Writer, summary *Summary) error {
	if p.metrics != nil {
		p.metrics.ChunksInFlight.Inc()
		defer p.metrics.ChunksInFlight.Dec()
	}

	results := make([]classify.Result, len(chunk))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(p.config.Workers, len(chunk)))

	for i := range chunk {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = p.classifier.ClassifyRecord(chunk[i].record.ID, chunk[i].record.Text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, r := range results {
		if err := writer.Write(r); err != nil {
			return fmt.Errorf("line %d: %w", chunk[i].line, err)
		}
		summary.Processed++
		p.observe(r)
	}
	return nil
}

func (p *Processor) observe(r classify.Result) {
	if p.stats != nil {
		p.stats.Add(r)
	}
	if p.metrics != nil {
		p.metrics.RecordClassification(
			string(r.PrimaryLanguage),
			string(r.Script),
			r.Evidence.Rule,
			r.Confidence,
			r.Evidence.Tokens,
		)
	}
}
