package postgres

import (
	"errors"

	licenseDatamodel "github.com/frahmantamala/asset-management/internal/core/datamodel/license"
	"github.com/frahmantamala/asset-management/internal/license"
	"gorm.io/gorm"
)

// LicenseRepository implements license.Repository using GORM
type LicenseRepository struct {
	db *gorm.DB
}

func NewLicenseRepository(db *gorm.DB) license.Repository {
	return &LicenseRepository{db: db}
}

func (r *LicenseRepository) Create(l *license.License) error {
	row := license.ToDataModel(l)
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	l.ID = row.ID
	return nil
}

func (r *LicenseRepository) GetByID(id int64) (*license.License, error) {
	var row licenseDatamodel.SoftwareLicense
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return license.FromDataModel(&row), nil
}

func (r *LicenseRepository) GetByKey(key string) (*license.License, error) {
	var row licenseDatamodel.SoftwareLicense
	err := r.db.Where("license_key = ?", key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return license.FromDataModel(&row), nil
}

func (r *LicenseRepository) GetAll() ([]*license.License, error) {
	var rows []*licenseDatamodel.SoftwareLicense
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, err
	}
	return license.FromDataModelSlice(rows), nil
}

func (r *LicenseRepository) Update(l *license.License) error {
	return r.db.Save(license.ToDataModel(l)).Error
}

func (r *LicenseRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&licenseDatamodel.SoftwareLicense{}).Error
}
