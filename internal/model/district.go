package model

// District is one administrative boundary row with its centroid. Names are
// full legal-dong strings ("서울특별시 종로구 ..."), centroids may be absent
// for merged districts.
type District struct {
	BjdCode   string   `gorm:"primaryKey;column:bjd_cd;type:varchar(20)"`
	BjdName   string   `gorm:"column:bjd_nm;type:varchar(100);index:idx_bjd_nm"`
	CenterLat *float64 `gorm:"column:center_lati"`
	CenterLon *float64 `gorm:"column:center_long"`
}

func (District) TableName() string {
	return "districts_with_latlon"
}
