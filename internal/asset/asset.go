package asset

import (
	"errors"

	assetDatamodel "github.com/frahmantamala/asset-management/internal/core/datamodel/asset"
)

const (
	StatusActive           = "Active"
	StatusUnderMaintenance = "Under Maintenance"

	// GeneralCode prefixes assets created without a department.
	GeneralCode = "GEN"
)

// Asset is the internal domain model for a hardware asset. The ID is assigned
// at creation as {department code}-{sequence} and is immutable afterwards.
type Asset struct {
	ID             string  `json:"id"`
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

// ListFilters are the optional query filters for listing assets. All matches
// are case-insensitive substring matches; Search is OR-matched against brand,
// model, serial, id and assignee.
type ListFilters struct {
	Brand    string
	Type     string
	Status   string
	Assignee string
	Search   string
}

func (f ListFilters) Empty() bool {
	return f.Brand == "" && f.Type == "" && f.Status == "" && f.Assignee == "" && f.Search == ""
}

// ErrIDConflict is returned by the repository when an insert loses the
// sequence race on the generated identifier. The service retries on it.
var ErrIDConflict = errors.New("asset id already exists")

func ToDataModel(a *Asset) *assetDatamodel.Asset {
	return &assetDatamodel.Asset{
		ID:             a.ID,
		Type:           a.Type,
		Brand:          a.Brand,
		Model:          a.Model,
		Serial:         a.Serial,
		PurchaseDate:   a.PurchaseDate,
		Cost:           a.Cost,
		WarrantyStatus: a.WarrantyStatus,
		Status:         a.Status,
		Assignee:       a.Assignee,
		Department:     a.Department,
		Location:       a.Location,
	}
}

func FromDataModel(a *assetDatamodel.Asset) *Asset {
	return &Asset{
		ID:             a.ID,
		Type:           a.Type,
		Brand:          a.Brand,
		Model:          a.Model,
		Serial:         a.Serial,
		PurchaseDate:   a.PurchaseDate,
		Cost:           a.Cost,
		WarrantyStatus: a.WarrantyStatus,
		Status:         a.Status,
		Assignee:       a.Assignee,
		Department:     a.Department,
		Location:       a.Location,
	}
}

func FromDataModelSlice(rows []*assetDatamodel.Asset) []*Asset {
	result := make([]*Asset, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
