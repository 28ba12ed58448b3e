package reporting

import (
	"fmt"
	"strings"
	"time"
)

// RenderMarkdown renders a report as a Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Volatility Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	if r.UserName != "" {
		sb.WriteString(fmt.Sprintf("Researcher: %s", r.UserName))
		if r.ProjectID != "" {
			sb.WriteString(fmt.Sprintf(" | Project: %s", r.ProjectID))
		}
		sb.WriteString("\n\n")
	}
	sb.WriteString(fmt.Sprintf("Series: `%s`\n\n", r.SeriesID))

	// Parameters
	sb.WriteString("## Parameters\n\n")
	sb.WriteString("| Parameter | Value | Effect |\n")
	sb.WriteString("|-----------|-------|--------|\n")
	sb.WriteString(fmt.Sprintf("| Pattern | %s | |\n", r.Params.Pattern))
	sb.WriteString(fmt.Sprintf("| Amplitude | %.2f | %s |\n", r.Params.Amplitude, r.AmplitudeEffect))
	sb.WriteString(fmt.Sprintf("| Frequency | %.1f | %s |\n", r.Params.Frequency, r.WaveSpeed))
	sb.WriteString(fmt.Sprintf("| Drift | %+.2f | %s |\n", r.Params.Drift, r.DriftBias))
	sb.WriteString(fmt.Sprintf("| Noise | %.2f | |\n", r.Params.Noise))
	sb.WriteString(fmt.Sprintf("| Length | %d days | |\n", r.Params.Length))
	sb.WriteString(fmt.Sprintf("| Base Seed | %d | |\n", r.Params.Seed))
	sb.WriteString("\n")

	// Data summary
	sb.WriteString("## Data Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Records | %d |\n", r.RecordCount))
	sb.WriteString(fmt.Sprintf("| Date Range | %s to %s |\n",
		r.DateStart.Format("2006-01-02"), r.DateEnd.Format("2006-01-02")))
	sb.WriteString("\n")

	// Metrics
	sb.WriteString("## Metrics\n\n")
	if r.Metrics == nil {
		sb.WriteString("Insufficient data: at least 2 records are required to compute metrics.\n\n")
	} else {
		m := r.Metrics
		sb.WriteString("| Metric | Value | Assessment |\n")
		sb.WriteString("|--------|-------|------------|\n")
		sb.WriteString(fmt.Sprintf("| Volatility Index | %.1f%% | %s |\n", m.AnnualizedVol*100, r.VolatilityLevel))
		sb.WriteString(fmt.Sprintf("| Daily Volatility | %.4f | |\n", m.DailyVol))
		sb.WriteString(fmt.Sprintf("| Average Price | $%.2f | |\n", m.AvgPrice))
		sb.WriteString(fmt.Sprintf("| Trend | %+.1f $/day | %s |\n", m.Slope, r.TrendDirection))
		sb.WriteString(fmt.Sprintf("| Stability | %.0f/100 | %s |\n", m.Stability, r.StabilityLabel))
		sb.WriteString("\n")
	}

	// Model description
	sb.WriteString("## Model\n\n")
	sb.WriteString("- Wave: `P(t) = 40000 + A*5000*sin(2*pi*f*t) + D*10000*t + noise`\n")
	sb.WriteString("- Random: `P(t) = P(t-1) + D*50 + A*N(0,1)*500 + noise + jump`\n")
	sb.WriteString("- Volatility: `stdev(daily returns) * sqrt(252)`\n\n")

	// Reproducibility
	sb.WriteString("## Reproducibility\n\n")
	sb.WriteString("The series ID is the SHA256 of the full parameter tuple; regenerating\n")
	sb.WriteString("with the parameters above yields bit-identical data.\n")

	return sb.String()
}
