package maintenance

import "time"

type MaintenanceRecord struct {
	ID       int64     `gorm:"primaryKey"`
	AssetID  string    `gorm:"column:asset_id;not null;index"`
	Date     time.Time `gorm:"column:date"`
	Activity string    `gorm:"column:activity;not null"`
	Cost     float64   `gorm:"column:cost;default:0"`
	Notes    *string   `gorm:"column:notes"`
}

func (MaintenanceRecord) TableName() string {
	return "maintenance"
}
