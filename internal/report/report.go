package report

// SummaryReport is the fleet-wide overview returned by /report/summary.
type SummaryReport struct {
	TotalAssets          int64   `json:"total_assets"`
	ActiveAssets         int64   `json:"active_assets"`
	UnderMaintenance     int64   `json:"under_maintenance"`
	TotalAssetCost       float64 `json:"total_asset_cost"`
	TotalMaintenanceCost float64 `json:"total_maintenance_cost"`
}

// AssetMaintenanceCost is the per-asset breakdown row in the maintenance cost
// report. Only assets with at least one maintenance record appear.
type AssetMaintenanceCost struct {
	AssetID string  `json:"asset_id"`
	Brand   string  `json:"brand"`
	Total   float64 `json:"total_cost"`
}

// MaintenanceCostReport is returned by /report/maintenance-costs.
type MaintenanceCostReport struct {
	GrandTotal float64                `json:"grand_total"`
	PerAsset   []AssetMaintenanceCost `json:"per_asset"`
}

// AssetStatsReport is returned by /report/asset-stats.
type AssetStatsReport struct {
	TotalAssets  int64            `json:"total_assets"`
	AverageCost  float64          `json:"average_cost"`
	ByDepartment map[string]int64 `json:"by_department"`
	ByType       map[string]int64 `json:"by_type"`
}
