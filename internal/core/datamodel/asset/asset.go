package asset

// Asset is the assets table row. The primary key is the department-prefixed
// identifier assigned at creation, e.g. "IT-001".
type Asset struct {
	ID             string  `gorm:"primaryKey;column:id"`
	Type           string  `gorm:"column:type;not null"`
	Brand          string  `gorm:"column:brand;not null"`
	Model          string  `gorm:"column:model;not null"`
	Serial         string  `gorm:"column:serial;uniqueIndex;not null"`
	PurchaseDate   string  `gorm:"column:purchase_date;not null"`
	Cost           float64 `gorm:"column:cost;not null"`
	WarrantyStatus string  `gorm:"column:warranty_status;not null"`
	Status         string  `gorm:"column:status;not null"`
	Assignee       *string `gorm:"column:assignee"`
	Department     *string `gorm:"column:department"`
	Location       *string `gorm:"column:location"`
}

func (Asset) TableName() string {
	return "assets"
}
