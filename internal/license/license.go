package license

import (
	licenseDatamodel "github.com/frahmantamala/asset-management/internal/core/datamodel/license"
)

// License is the internal domain model for a software license.
type License struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Vendor       string  `json:"vendor"`
	LicenseKey   string  `json:"license_key"`
	PurchaseDate string  `json:"purchase_date"`
	ExpiryDate   string  `json:"expiry_date"`
	Cost         float64 `json:"cost"`
	AssignedTo   *string `json:"assigned_to,omitempty"`
	Department   *string `json:"department,omitempty"`
	Status       string  `json:"status"`
}

func ToDataModel(l *License) *licenseDatamodel.SoftwareLicense {
	return &licenseDatamodel.SoftwareLicense{
		ID:           l.ID,
		Name:         l.Name,
		Vendor:       l.Vendor,
		LicenseKey:   l.LicenseKey,
		PurchaseDate: l.PurchaseDate,
		ExpiryDate:   l.ExpiryDate,
		Cost:         l.Cost,
		AssignedTo:   l.AssignedTo,
		Department:   l.Department,
		Status:       l.Status,
	}
}

func FromDataModel(row *licenseDatamodel.SoftwareLicense) *License {
	return &License{
		ID:           row.ID,
		Name:         row.Name,
		Vendor:       row.Vendor,
		LicenseKey:   row.LicenseKey,
		PurchaseDate: row.PurchaseDate,
		ExpiryDate:   row.ExpiryDate,
		Cost:         row.Cost,
		AssignedTo:   row.AssignedTo,
		Department:   row.Department,
		Status:       row.Status,
	}
}

func FromDataModelSlice(rows []*licenseDatamodel.SoftwareLicense) []*License {
	result := make([]*License, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
