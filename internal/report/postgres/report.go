package postgres

import (
	assetDatamodel "github.com/frahmantamala/asset-management/internal/core/datamodel/asset"
	maintenanceDatamodel "github.com/frahmantamala/asset-management/internal/core/datamodel/maintenance"
	"github.com/frahmantamala/asset-management/internal/report"
	"gorm.io/gorm"
)

// ReportRepository implements report.Repository with aggregate queries
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) report.Repository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) CountAssets() (int64, error) {
	var count int64
	err := r.db.Model(&assetDatamodel.Asset{}).Count(&count).Error
	return count, err
}

func (r *ReportRepository) CountAssetsByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&assetDatamodel.Asset{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *ReportRepository) SumAssetCost() (float64, error) {
	var total float64
	err := r.db.Model(&assetDatamodel.Asset{}).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&total).Error
	return total, err
}

func (r *ReportRepository) SumMaintenanceCost() (float64, error) {
	var total float64
	err := r.db.Model(&maintenanceDatamodel.MaintenanceRecord{}).
		Select("COALESCE(SUM(cost), 0)").
		Scan(&total).Error
	return total, err
}

// MaintenanceCostPerAsset inner-joins assets against their ledger, so assets
// without any maintenance record are excluded.
func (r *ReportRepository) MaintenanceCostPerAsset() ([]report.AssetMaintenanceCost, error) {
	var rows []report.AssetMaintenanceCost
	err := r.db.Model(&maintenanceDatamodel.MaintenanceRecord{}).
		Select("assets.id AS asset_id, assets.brand AS brand, SUM(maintenance.cost) AS total").
		Joins("JOIN assets ON assets.id = maintenance.asset_id").
		Group("assets.id, assets.brand").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) AssetCountByDepartment() (map[string]int64, error) {
	return r.countGrouped("COALESCE(department, 'Unassigned')")
}

func (r *ReportRepository) AssetCountByType() (map[string]int64, error) {
	return r.countGrouped("type")
}

func (r *ReportRepository) countGrouped(expr string) (map[string]int64, error) {
	type row struct {
		Key   string
		Count int64
	}

	var rows []row
	err := r.db.Model(&assetDatamodel.Asset{}).
		Select(expr + " AS key, COUNT(*) AS count").
		Group(expr).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Key] = r.Count
	}
	return counts, nil
}
