package license

type SoftwareLicense struct {
	ID           int64   `gorm:"primaryKey"`
	Name         string  `gorm:"column:name;not null"`
	Vendor       string  `gorm:"column:vendor;not null"`
	LicenseKey   string  `gorm:"column:license_key;uniqueIndex;not null"`
	PurchaseDate string  `gorm:"column:purchase_date;not null"`
	ExpiryDate   string  `gorm:"column:expiry_date;not null"`
	Cost         float64 `gorm:"column:cost;not null"`
	AssignedTo   *string `gorm:"column:assigned_to"`
	Department   *string `gorm:"column:department"`
	Status       string  `gorm:"column:status;not null"`
}

func (SoftwareLicense) TableName() string {
	return "software_licenses"
}
