package postgres

import (
	"errors"
	"strings"

	apperrors "github.com/frahmantamala/asset-management/internal"
	"github.com/frahmantamala/asset-management/internal/asset"
	assetDatamodel "github.com/frahmantamala/asset-management/internal/core/datamodel/asset"
	maintenanceDatamodel "github.com/frahmantamala/asset-management/internal/core/datamodel/maintenance"
	"gorm.io/gorm"
)

// AssetRepository implements the asset.Repository interface using GORM
type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) asset.Repository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) GetAll(filters asset.ListFilters) ([]*asset.Asset, error) {
	query := r.db.Model(&assetDatamodel.Asset{})

	if filters.Brand != "" {
		query = query.Where("LOWER(brand) LIKE ?", contains(filters.Brand))
	}
	if filters.Type != "" {
		query = query.Where("LOWER(type) LIKE ?", contains(filters.Type))
	}
	if filters.Status != "" {
		query = query.Where("LOWER(status) LIKE ?", contains(filters.Status))
	}
	if filters.Assignee != "" {
		query = query.Where("LOWER(assignee) LIKE ?", contains(filters.Assignee))
	}
	if filters.Search != "" {
		pattern := contains(filters.Search)
		query = query.Where(
			"LOWER(brand) LIKE ? OR LOWER(model) LIKE ? OR LOWER(serial) LIKE ? OR LOWER(id) LIKE ? OR LOWER(assignee) LIKE ?",
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	var rows []*assetDatamodel.Asset
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return asset.FromDataModelSlice(rows), nil
}

func (r *AssetRepository) GetByID(id string) (*asset.Asset, error) {
	var row assetDatamodel.Asset
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return asset.FromDataModel(&row), nil
}

func (r *AssetRepository) GetBySerial(serial string) (*asset.Asset, error) {
	var row assetDatamodel.Asset
	err := r.db.Where("serial = ?", serial).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return asset.FromDataModel(&row), nil
}

func (r *AssetRepository) ListByDepartment(name string) ([]*asset.Asset, error) {
	var rows []*assetDatamodel.Asset
	if err := r.db.Where("department = ?", name).Find(&rows).Error; err != nil {
		return nil, err
	}
	return asset.FromDataModelSlice(rows), nil
}

func (r *AssetRepository) CountByIDPrefix(prefix string) (int64, error) {
	var count int64
	err := r.db.Model(&assetDatamodel.Asset{}).
		Where("id LIKE ?", escapeLike(prefix)+"%").
		Count(&count).Error
	return count, err
}

func (r *AssetRepository) Create(a *asset.Asset) error {
	err := r.db.Create(asset.ToDataModel(a)).Error
	if err != nil && isUniqueViolation(err) {
		if strings.Contains(err.Error(), "serial") {
			return apperrors.ErrDuplicateSerial
		}
		return asset.ErrIDConflict
	}
	return err
}

func (r *AssetRepository) Update(a *asset.Asset) error {
	return r.db.Save(asset.ToDataModel(a)).Error
}

// Delete removes the asset and its maintenance history in one transaction.
func (r *AssetRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("asset_id = ?", id).Delete(&maintenanceDatamodel.MaintenanceRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&assetDatamodel.Asset{}).Error
	})
}

func contains(s string) string {
	return "%" + strings.ToLower(escapeLike(s)) + "%"
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}

// isUniqueViolation matches duplicate-key failures across postgres and the
// sqlite driver used in tests.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint failed")
}
