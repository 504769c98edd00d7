package dto

type YearlyAccidentDTO struct {
	Year                int   `json:"year"`
	AccidentCount       int64 `json:"accident_count"`
	CasualtyCount       int64 `json:"casualty_count"`
	FatalityCount       int64 `json:"fatality_count"`
	SeriousInjuryCount  int64 `json:"serious_injury_count"`
	MinorInjuryCount    int64 `json:"minor_injury_count"`
	ReportedInjuryCount int64 `json:"reported_injury_count"`
}

type MonthlyAccidentDTO struct {
	Year                int   `json:"year"`
	Month               int   `json:"month"`
	AccidentCount       int64 `json:"accident_count"`
	CasualtyCount       int64 `json:"casualty_count"`
	FatalityCount       int64 `json:"fatality_count"`
	SeriousInjuryCount  int64 `json:"serious_injury_count"`
	MinorInjuryCount    int64 `json:"minor_injury_count"`
	ReportedInjuryCount int64 `json:"reported_injury_count"`
}

type AccidentSummaryDTO struct {
	Region     string               `json:"region"`
	RegionType string               `json:"region_type"`
	Yearly     []YearlyAccidentDTO  `json:"yearly"`
	Monthly    []MonthlyAccidentDTO `json:"monthly"`
}
