package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ar4mirez/langid/internal/batch"
	"github.com/ar4mirez/langid/internal/metrics"
	"github.com/ar4mirez/langid/internal/stats"
)

var (
	detectIn          string
	detectOut         string
	detectStats       bool
	detectQuiet       bool
	detectWorkers     int
	detectMetricsFile string
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Classify a JSONL file of journal entries",
	Long: `Read one JSON object per line with an optional "id" and a "text" field,
and write one result per line with the detected language, script,
confidence and evidence. Use "-" for stdin or stdout.`,
	Example: `  langid detect --in texts.jsonl --out lang.jsonl
  langid detect --in input/data.jsonl --out output/results.jsonl --stats
  cat texts.jsonl | langid detect --in - --out -`,
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().StringVar(&detectIn, "in", "", "Input JSONL file (- for stdin)")
	detectCmd.Flags().StringVar(&detectOut, "out", "", "Output JSONL file (- for stdout)")
	detectCmd.Flags().BoolVar(&detectStats, "stats", false, "Print processing statistics to stderr")
	detectCmd.Flags().BoolVarP(&detectQuiet, "quiet", "q", false, "Suppress progress messages")
	detectCmd.Flags().IntVarP(&detectWorkers, "workers", "w", 0, "Number of workers (default: from config)")
	detectCmd.Flags().StringVar(&detectMetricsFile, "metrics-file", "", "Write Prometheus metrics to this file when done")

	_ = detectCmd.MarkFlagRequired("in")
	_ = detectCmd.MarkFlagRequired("out")
}

func runDetect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := initLogger(cfg, detectQuiet)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	classifier, err := newClassifier(cfg)
	if err != nil {
		return err
	}

	if detectIn != "-" {
		if err := validateFile(detectIn, jsonlSampleSize); err != nil {
			return err
		}
		logger.Debug("input validated", zap.String("path", detectIn))
	}

	in, closeIn, err := openInput(detectIn)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(detectOut)
	if err != nil {
		return err
	}

	workers := cfg.Batch.Workers
	if detectWorkers > 0 {
		workers = detectWorkers
	}
	batchCfg := batch.DefaultConfig()
	if workers > 0 {
		batchCfg.Workers = workers
	}
	batchCfg.ChunkSize = cfg.Batch.ChunkSize

	metricsFile := cfg.Metrics.Textfile
	if detectMetricsFile != "" {
		metricsFile = detectMetricsFile
	}

	deps := &batch.Deps{}
	if metricsFile != "" {
		deps.Metrics = metrics.New(cfg.Metrics.Namespace)
	}
	if detectStats {
		deps.Stats = stats.NewCollector()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("processing", zap.String("in", detectIn), zap.String("out", detectOut))

	processor := batch.NewProcessorWithDeps(classifier, batchCfg, logger, deps)
	summary, runErr := processor.Run(ctx, in, out)

	if err := closeOut(); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to close output: %w", err)
	}
	if err := exportMetrics(deps.Metrics, metricsFile, runErr); err != nil {
		return err
	}

	if !detectQuiet {
		fmt.Fprintf(os.Stderr, "Completed processing: %d records, %d skipped\n", summary.Processed, summary.Skipped)
	}
	if deps.Stats != nil {
		if err := stats.WriteReport(os.Stderr, deps.Stats.Snapshot()); err != nil {
			return err
		}
	}

	return nil
}

// exportMetrics writes the metrics textfile, failed runs included. The run
// error takes precedence over an export error.
func exportMetrics(m *metrics.Metrics, path string, runErr error) error {
	if m == nil {
		return runErr
	}
	if err := m.WriteTextfile(path); err != nil && runErr == nil {
		return err
	}
	return runErr
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// openOutput opens path for writing, creating parent directories as
// needed.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output: %w", err)
	}
	return f, f.Close, nil
}
