// Package stats aggregates classification results into a run summary.
package stats

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/ar4mirez/langid/internal/classify"
)

var headingColor = color.New(color.FgCyan, color.Bold)

// Count is the number of results carrying one label.
type Count struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Snapshot is a point-in-time view of collected results.
type Snapshot struct {
	Total             int     `json:"total"`
	AverageConfidence float64 `json:"average_confidence"`
	Languages         []Count `json:"languages"`
	Scripts           []Count `json:"scripts"`
}

// Collector accumulates results. It is safe for concurrent use.
type Collector struct {
	mu              sync.Mutex
	total           int
	confidenceTotal float64
	languages       map[string]int
	scripts         map[string]int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		languages: make(map[string]int),
		scripts:   make(map[string]int),
	}
}

// Add records one result.
func (c *Collector) Add(r classify.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.total++
	c.confidenceTotal += r.Confidence
	c.languages[string(r.PrimaryLanguage)]++
	c.scripts[string(r.Script)]++
}

// Snapshot returns the current totals. Labels are sorted alphabetically.
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		Total:     c.total,
		Languages: counts(c.languages, c.total),
		Scripts:   counts(c.scripts, c.total),
	}
	if c.total > 0 {
		s.AverageConfidence = c.confidenceTotal / float64(c.total)
	}
	return s
}

func counts(m map[string]int, total int) []Count {
	out := make([]Count, 0, len(m))
	for label, n := range m {
		out = append(out, Count{
			Label:   label,
			Count:   n,
			Percent: float64(n) / float64(total) * 100,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// WriteReport prints a human-readable summary of s. Nothing is written
// for an empty snapshot.
func WriteReport(w io.Writer, s Snapshot) error {
	if s.Total == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(headingColor.Sprint("=== Processing Statistics ==="))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total records processed: %d\n", s.Total)
	fmt.Fprintf(&b, "Average confidence: %.3f\n", s.AverageConfidence)

	writeSection(&b, "Language distribution:", s.Languages)
	writeSection(&b, "Script distribution:", s.Scripts)

	b.WriteString(strings.Repeat("=", 30))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, title string, rows []Count) {
	b.WriteString("\n")
	b.WriteString(headingColor.Sprint(title))
	b.WriteString("\n")
	for _, row := range rows {
		fmt.Fprintf(b, "  %s: %d (%.1f%%)\n", row.Label, row.Count, row.Percent)
	}
}
