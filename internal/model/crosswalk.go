package model

import (
	"time"
)

type Crosswalk struct {
	CwUID           string  `gorm:"primaryKey;column:cw_uid;type:varchar(40)"`
	DistrictCode    string  `gorm:"type:varchar(20);index:idx_cw_district"`
	Address         string  `gorm:"type:varchar(255)"`
	CrosswalkType   int     `gorm:"column:crosswalk_type"`
	Lat             float64 `gorm:"column:crosswalk_lat;index:idx_cw_lat"`
	Lon             float64 `gorm:"column:crosswalk_lon;index:idx_cw_lon"`
	LaneCount       int     `gorm:"column:lane_count"`
	Width           float64 `gorm:"column:crosswalk_width"`
	Length          float64 `gorm:"column:crosswalk_length"`
	HasSignal       bool    `gorm:"column:has_signal"`
	HasButton       bool    `gorm:"column:has_button"`
	HasSoundSignal  bool    `gorm:"column:sound_signal"`
	HasBump         bool    `gorm:"column:has_bump"`
	HasBrailleBlock bool    `gorm:"column:braille_block"`
	HasSpotlight    bool    `gorm:"column:has_spotlight"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Crosswalk) TableName() string {
	return "crosswalks"
}
