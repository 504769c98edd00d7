package dto

type DashboardStatsDTO struct {
	TotalCrosswalks    int64   `json:"total_crosswalks"`
	TotalSignals       int64   `json:"total_signals"`
	SignalCoverageRate float64 `json:"signal_coverage_rate"`
	AccidentHotspots   int64   `json:"accident_hotspots"`
	OpenSuggestions    int64   `json:"open_suggestions"`
}
