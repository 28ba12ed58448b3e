package server

import (
	"crypto-volatility-lab/internal/domain"
	"crypto-volatility-lab/internal/metrics"
)

// ParamsPayload is the wire form of generation parameters.
type ParamsPayload struct {
	Pattern   string  `json:"pattern"`
	Amplitude float64 `json:"amplitude"`
	Frequency float64 `json:"frequency"`
	Drift     float64 `json:"drift"`
	Noise     float64 `json:"noise"`
	Length    int     `json:"length"`
	Seed      int64   `json:"seed"`
}

func toParamsPayload(p domain.Params) ParamsPayload {
	return ParamsPayload{
		Pattern:   string(p.Pattern),
		Amplitude: p.Amplitude,
		Frequency: p.Frequency,
		Drift:     p.Drift,
		Noise:     p.Noise,
		Length:    p.Length,
		Seed:      p.Seed,
	}
}

// toDomain converts the payload back. The base seed is managed by the
// session layer and is deliberately not taken from the client.
func (pl ParamsPayload) toDomain() domain.Params {
	return domain.Params{
		Pattern:   domain.Pattern(pl.Pattern),
		Amplitude: pl.Amplitude,
		Frequency: pl.Frequency,
		Drift:     pl.Drift,
		Noise:     pl.Noise,
		Length:    pl.Length,
	}
}

// MetricsPayload is the wire form of computed metrics plus their
// qualitative labels.
type MetricsPayload struct {
	DailyVol       float64 `json:"daily_vol"`
	AnnualizedVol  float64 `json:"annualized_vol"`
	AvgPrice       float64 `json:"avg_price"`
	Slope          float64 `json:"slope"`
	Stability      float64 `json:"stability"`
	Volatility     string  `json:"volatility_level"`
	Trend          string  `json:"trend_direction"`
	StabilityLabel string  `json:"stability_label"`
}

func toMetricsPayload(m *domain.Metrics) *MetricsPayload {
	if m == nil {
		return nil
	}
	return &MetricsPayload{
		DailyVol:       m.DailyVol,
		AnnualizedVol:  m.AnnualizedVol,
		AvgPrice:       m.AvgPrice,
		Slope:          m.Slope,
		Stability:      m.Stability,
		Volatility:     metrics.VolatilityLevel(m.AnnualizedVol),
		Trend:          metrics.TrendDirection(m.Slope),
		StabilityLabel: metrics.StabilityLabel(m.Stability),
	}
}

// SessionPayload is the wire form of a session.
type SessionPayload struct {
	SessionID string        `json:"session_id"`
	UserName  string        `json:"user_name"`
	ProjectID string        `json:"project_id,omitempty"`
	Params    ParamsPayload `json:"params"`
	SeriesID  string        `json:"series_id"`
	CreatedAt int64         `json:"created_at"`
	UpdatedAt int64         `json:"updated_at"`
}

func toSessionPayload(s *domain.Session) SessionPayload {
	return SessionPayload{
		SessionID: s.SessionID,
		UserName:  s.UserName,
		ProjectID: s.ProjectID,
		Params:    toParamsPayload(s.Params),
		SeriesID:  s.SeriesID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// RecordPayload is the wire form of one simulated day.
type RecordPayload struct {
	Date   string  `json:"date"`
	Price  float64 `json:"price"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Volume float64 `json:"volume"`
}

// SeriesPayload is the wire form of a stored series.
type SeriesPayload struct {
	SeriesID    string          `json:"series_id"`
	Params      ParamsPayload   `json:"params"`
	Records     []RecordPayload `json:"records"`
	GeneratedAt int64           `json:"generated_at"`
}

func toSeriesPayload(rec *domain.SeriesRecord) SeriesPayload {
	records := make([]RecordPayload, len(rec.Series))
	for i, r := range rec.Series {
		records[i] = RecordPayload{
			Date:   r.Date.Format("2006-01-02"),
			Price:  r.Price,
			High:   r.High,
			Low:    r.Low,
			Volume: r.Volume,
		}
	}
	return SeriesPayload{
		SeriesID:    rec.SeriesID,
		Params:      toParamsPayload(rec.Params),
		Records:     records,
		GeneratedAt: rec.GeneratedAt,
	}
}
