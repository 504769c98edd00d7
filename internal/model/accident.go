package model

// Accident is one ingested row per (region, year, month). The ingestion
// pipeline owns these rows; this service only reads them. Count columns are
// nullable in the source dataset and read as zero when absent.
type Accident struct {
	AccUID              uint64 `gorm:"primaryKey;column:acc_uid"`
	SidoCode            string `gorm:"type:varchar(20);not null;index:idx_sido"`
	SigunguCode         string `gorm:"type:varchar(20);not null;index:idx_sigungu"`
	Year                int    `gorm:"not null;index:idx_year_month"`
	Month               int    `gorm:"not null;index:idx_year_month"`
	AccidentCount       *int   `gorm:"column:accident_count"`
	CasualtyCount       *int   `gorm:"column:casualty_count"`
	FatalityCount       *int   `gorm:"column:fatality_count"`
	SeriousInjuryCount  *int   `gorm:"column:serious_injury_count"`
	MinorInjuryCount    *int   `gorm:"column:minor_injury_count"`
	ReportedInjuryCount *int   `gorm:"column:reported_injury_count"`
}

func (Accident) TableName() string {
	return "accidents"
}
