package model

type AccidentHotspot struct {
	AccidentID          uint64  `gorm:"primaryKey;column:accident_id"`
	Year                int     `gorm:"not null"`
	DistrictCode        string  `gorm:"type:varchar(20);index:idx_district_code"`
	Detail              string  `gorm:"type:varchar(255)"`
	AccidentCount       int     `gorm:"not null;default:0"`
	CasualtyCount       int     `gorm:"not null;default:0"`
	FatalityCount       int     `gorm:"not null;default:0"`
	SeriousInjuryCount  int     `gorm:"not null;default:0"`
	MinorInjuryCount    int     `gorm:"not null;default:0"`
	ReportedInjuryCount int     `gorm:"not null;default:0"`
	AccidentLat         float64 `gorm:"column:accident_lat;index:idx_hotspot_lat"`
	AccidentLon         float64 `gorm:"column:accident_lon;index:idx_hotspot_lon"`
}

func (AccidentHotspot) TableName() string {
	return "accident_hotspots"
}
