package postgres

import (
	"errors"

	assetDatamodel "github.com/frahmantamala/asset-management/internal/core/datamodel/asset"
	maintenanceDatamodel "github.com/frahmantamala/asset-management/internal/core/datamodel/maintenance"
	"github.com/frahmantamala/asset-management/internal/maintenance"
	"gorm.io/gorm"
)

// MaintenanceRepository implements maintenance.Repository using GORM
type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) maintenance.Repository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) Create(rec *maintenance.Record) error {
	row := maintenance.ToDataModel(rec)
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	rec.ID = row.ID
	return nil
}

func (r *MaintenanceRepository) GetByID(id int64) (*maintenance.Record, error) {
	var row maintenanceDatamodel.MaintenanceRecord
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return maintenance.FromDataModel(&row), nil
}

func (r *MaintenanceRepository) GetAll() ([]*maintenance.Record, error) {
	var rows []*maintenanceDatamodel.MaintenanceRecord
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	return maintenance.FromDataModelSlice(rows), nil
}

func (r *MaintenanceRepository) GetByAssetID(assetID string) ([]*maintenance.Record, error) {
	var rows []*maintenanceDatamodel.MaintenanceRecord
	if err := r.db.Where("asset_id = ?", assetID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return maintenance.FromDataModelSlice(rows), nil
}

func (r *MaintenanceRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&maintenanceDatamodel.MaintenanceRecord{}).Error
}

// AssetChecker answers existence checks against the assets table.
type AssetChecker struct {
	db *gorm.DB
}

func NewAssetChecker(db *gorm.DB) maintenance.AssetChecker {
	return &AssetChecker{db: db}
}

func (c *AssetChecker) Exists(assetID string) (bool, error) {
	var count int64
	err := c.db.Model(&assetDatamodel.Asset{}).Where("id = ?", assetID).Count(&count).Error
	return count > 0, err
}
