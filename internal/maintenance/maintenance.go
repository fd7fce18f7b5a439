package maintenance

import (
	"time"

	maintenanceDatamodel "github.com/frahmantamala/asset-management/internal/core/datamodel/maintenance"
)

// Record is one maintenance event in an asset's ledger.
type Record struct {
	ID       int64     `json:"id"`
	AssetID  string    `json:"asset_id"`
	Date     time.Time `json:"date"`
	Activity string    `json:"activity"`
	Cost     float64   `json:"cost"`
	Notes    *string   `json:"notes,omitempty"`
}

func ToDataModel(rec *Record) *maintenanceDatamodel.MaintenanceRecord {
	return &maintenanceDatamodel.MaintenanceRecord{
		ID:       rec.ID,
		AssetID:  rec.AssetID,
		Date:     rec.Date,
		Activity: rec.Activity,
		Cost:     rec.Cost,
		Notes:    rec.Notes,
	}
}

func FromDataModel(row *maintenanceDatamodel.MaintenanceRecord) *Record {
	return &Record{
		ID:       row.ID,
		AssetID:  row.AssetID,
		Date:     row.Date,
		Activity: row.Activity,
		Cost:     row.Cost,
		Notes:    row.Notes,
	}
}

func FromDataModelSlice(rows []*maintenanceDatamodel.MaintenanceRecord) []*Record {
	result := make([]*Record, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
