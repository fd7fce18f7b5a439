package license

import (
	"github.com/frahmantamala/asset-management/internal/core/common/validation"

	errors "github.com/frahmantamala/asset-management/internal"
)

// CreateLicenseDTO is the request payload for registering a license.
type CreateLicenseDTO struct {
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

func (d CreateLicenseDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required()
	v.Field("vendor", d.Vendor).Required()
	v.Field("license_key", d.LicenseKey).Required()
	v.Field("purchase_date", d.PurchaseDate).Required()
	v.Field("expiry_date", d.ExpiryDate).Required()
	v.Field("cost", d.Cost).NonNegative()
	v.Field("status", d.Status).Required()
	return v.Validate()
}

// UpdateLicenseDTO is the allow-listed patch for a license. Nil fields are
// left untouched; the numeric identifier is not patchable.
type UpdateLicenseDTO struct {
	Name         *string  `json:"name,omitempty"`
	Vendor       *string  `json:"vendor,omitempty"`
	LicenseKey   *string  `json:"license_key,omitempty"`
	PurchaseDate *string  `json:"purchase_date,omitempty"`
	ExpiryDate   *string  `json:"expiry_date,omitempty"`
	Cost         *float64 `json:"cost,omitempty"`
	AssignedTo   *string  `json:"assigned_to,omitempty"`
	Department   *string  `json:"department,omitempty"`
	Status       *string  `json:"status,omitempty"`
}

func (d UpdateLicenseDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if d.Cost != nil {
		v.Field("cost", *d.Cost).NonNegative()
	}
	if d.LicenseKey != nil {
		v.Field("license_key", d.LicenseKey).Required()
	}
	return v.Validate()
}

// ApplyTo merges the patch into the license.
func (d UpdateLicenseDTO) ApplyTo(l *License) {
	if d.Name != nil {
		l.Name = *d.Name
	}
	if d.Vendor != nil {
		l.Vendor = *d.Vendor
	}
	if d.LicenseKey != nil {
		l.LicenseKey = *d.LicenseKey
	}
	if d.PurchaseDate != nil {
		l.PurchaseDate = *d.PurchaseDate
	}
	if d.ExpiryDate != nil {
		l.ExpiryDate = *d.ExpiryDate
	}
	if d.Cost != nil {
		l.Cost = *d.Cost
	}
	if d.AssignedTo != nil {
		l.AssignedTo = d.AssignedTo
	}
	if d.Department != nil {
		l.Department = d.Department
	}
	if d.Status != nil {
		l.Status = *d.Status
	}
}
