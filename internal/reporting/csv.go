package reporting

import (
	"fmt"
	"strings"

	"crypto-volatility-lab/internal/domain"
)

// RenderCSV renders a series as CSV with a fixed header row.
func RenderCSV(series domain.Series) string {
	var sb strings.Builder

	sb.WriteString("date,price,high,low,volume\n")
	for _, rec := range series {
		sb.WriteString(fmt.Sprintf("%s,%.2f,%.2f,%.2f,%.0f\n",
			rec.Date.Format("2006-01-02"), rec.Price, rec.High, rec.Low, rec.Volume))
	}

	return sb.String()
}
