package postgres

import (
	"errors"

	departmentDatamodel "github.com/frahmantamala/asset-management/internal/core/datamodel/department"
	"github.com/frahmantamala/asset-management/internal/department"
	"gorm.io/gorm"
)

// DepartmentRepository implements department.Repository using GORM
type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) Create(d *department.Department) error {
	row := department.ToDataModel(d)
	if err := r.db.Create(row).Error; err != nil {
		return err
	}
	d.ID = row.ID
	return nil
}

func (r *DepartmentRepository) GetByID(id int64) (*department.Department, error) {
	var row departmentDatamodel.Department
	err := r.db.Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return department.FromDataModel(&row), nil
}

func (r *DepartmentRepository) GetByCode(code string) (*department.Department, error) {
	var row departmentDatamodel.Department
	err := r.db.Where("code = ?", code).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return department.FromDataModel(&row), nil
}

func (r *DepartmentRepository) GetAll() ([]*department.Department, error) {
	var rows []*departmentDatamodel.Department
	if err := r.db.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return department.FromDataModelSlice(rows), nil
}

func (r *DepartmentRepository) Update(d *department.Department) error {
	return r.db.Save(department.ToDataModel(d)).Error
}

func (r *DepartmentRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&departmentDatamodel.Department{}).Error
}

// CodeForName resolves a department name to its code, for asset-ID prefixes.
func (r *DepartmentRepository) CodeForName(name string) (string, bool, error) {
	var row departmentDatamodel.Department
	err := r.db.Where("name = ?", name).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return row.Code, true, nil
}
