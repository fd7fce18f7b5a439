package asset

import (
	"github.com/frahmantamala/asset-management/internal/core/common/validation"

	errors "github.com/frahmantamala/asset-management/internal"
)

// CreateAssetDTO is the request payload for creating an asset. The identifier
// is never accepted from the caller; it is assigned by the service.
type CreateAssetDTO struct {
	Type           string  `json:"type"`
	Brand          string  `json:"brand"`
	Model          string  `json:"model"`
	Serial         string  `json:"serial"`
	PurchaseDate   string  `json:"purchase_date"`
	Cost           float64 `json:"cost"`
	WarrantyStatus string  `json:"warranty_status"`
	Status         string  `json:"status"`
	Assignee       *string `json:"assignee,omitempty"`
	Department     *string `json:"department,omitempty"`
	Location       *string `json:"location,omitempty"`
}

func (d CreateAssetDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("type", d.Type).Required()
	v.Field("brand", d.Brand).Required()
	v.Field("model", d.Model).Required()
	v.Field("serial", d.Serial).Required()
	v.Field("purchase_date", d.PurchaseDate).Required()
	v.Field("cost", d.Cost).NonNegative()
	v.Field("warranty_status", d.WarrantyStatus).Required()
	v.Field("status", d.Status).Required()
	return v.Validate()
}

// UpdateAssetDTO is the allow-listed patch for an asset. Nil fields are left
// untouched; the identifier is not patchable.
type UpdateAssetDTO struct {
	Type           *string  `json:"type,omitempty"`
	Brand          *string  `json:"brand,omitempty"`
	Model          *string  `json:"model,omitempty"`
	Serial         *string  `json:"serial,omitempty"`
	PurchaseDate   *string  `json:"purchase_date,omitempty"`
	Cost           *float64 `json:"cost,omitempty"`
	WarrantyStatus *string  `json:"warranty_status,omitempty"`
	Status         *string  `json:"status,omitempty"`
	Assignee       *string  `json:"assignee,omitempty"`
	Department     *string  `json:"department,omitempty"`
	Location       *string  `json:"location,omitempty"`
}

func (d UpdateAssetDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	if d.Cost != nil {
		v.Field("cost", *d.Cost).NonNegative()
	}
	if d.Serial != nil {
		v.Field("serial", d.Serial).Required()
	}
	return v.Validate()
}

// ApplyTo merges the patch into the asset. Applying the same patch twice is
// idempotent.
func (d UpdateAssetDTO) ApplyTo(a *Asset) {
	if d.Type != nil {
		a.Type = *d.Type
	}
	if d.Brand != nil {
		a.Brand = *d.Brand
	}
	if d.Model != nil {
		a.Model = *d.Model
	}
	if d.Serial != nil {
		a.Serial = *d.Serial
	}
	if d.PurchaseDate != nil {
		a.PurchaseDate = *d.PurchaseDate
	}
	if d.Cost != nil {
		a.Cost = *d.Cost
	}
	if d.WarrantyStatus != nil {
		a.WarrantyStatus = *d.WarrantyStatus
	}
	if d.Status != nil {
		a.Status = *d.Status
	}
	if d.Assignee != nil {
		a.Assignee = d.Assignee
	}
	if d.Department != nil {
		a.Department = d.Department
	}
	if d.Location != nil {
		a.Location = d.Location
	}
}
