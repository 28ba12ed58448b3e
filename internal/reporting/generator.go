package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"crypto-volatility-lab/internal/domain"
	"crypto-volatility-lab/internal/observability"
)

// Generator writes report files for generated series.
type Generator struct {
	outputDir string
	now       func() time.Time // Injectable clock for deterministic output
}

// NewGenerator creates a report generator that writes into outputDir.
func NewGenerator(outputDir string) *Generator {
	return &Generator{
		outputDir: outputDir,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Write builds a report from the record and writes the Markdown report and
// the CSV export side by side. Files are named after the first 8 hex chars
// of the series ID. Returns the paths of the written files.
func (g *Generator) Write(rec *domain.SeriesRecord, userName, projectID string) (reportPath, csvPath string, err error) {
	report := Build(rec, userName, projectID, g.now())

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}

	short := rec.SeriesID
	if len(short) > 8 {
		short = short[:8]
	}

	reportPath = filepath.Join(g.outputDir, fmt.Sprintf("REPORT_%s.md", short))
	if err := os.WriteFile(reportPath, []byte(RenderMarkdown(report)), 0o644); err != nil {
		return "", "", fmt.Errorf("write report: %w", err)
	}

	csvPath = filepath.Join(g.outputDir, fmt.Sprintf("series_%s.csv", short))
	if err := os.WriteFile(csvPath, []byte(RenderCSV(rec.Series)), 0o644); err != nil {
		return "", "", fmt.Errorf("write csv: %w", err)
	}

	observability.RecordReportGenerated()
	return reportPath, csvPath, nil
}
