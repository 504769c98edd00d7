package model

type TrafficSignal struct {
	SgUID          string  `gorm:"primaryKey;column:sg_uid;type:varchar(40)"`
	SidoCode       string  `gorm:"type:varchar(20)"`
	SigunguCode    string  `gorm:"type:varchar(20);index:idx_sig_sigungu"`
	RoadType       string  `gorm:"type:varchar(50)"`
	Address        string  `gorm:"type:varchar(255)"`
	Lat            float64 `gorm:"column:signal_lat;index:idx_sig_lat"`
	Lon            float64 `gorm:"column:signal_lon;index:idx_sig_lon"`
	IsMainRoad     bool    `gorm:"column:is_main_road"`
	SignalType     string  `gorm:"type:varchar(50)"`
	HasPedButton   bool    `gorm:"column:has_ped_button"`
	HasTimeShow    bool    `gorm:"column:has_time_show"`
	HasSoundSignal bool    `gorm:"column:has_sound_signal"`
}

func (TrafficSignal) TableName() string {
	return "signals"
}
