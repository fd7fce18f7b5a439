package department

import (
	"log/slog"

	apperrors "github.com/frahmantamala/asset-management/internal"
	"github.com/frahmantamala/asset-management/internal/asset"
)

// Repository defines the data access methods for departments.
type Repository interface {
	Create(d *Department) error
	GetByID(id int64) (*Department, error)
	GetByCode(code string) (*Department, error)
	GetAll() ([]*Department, error)
	Update(d *Department) error
	Delete(id int64) error
}

// AssetDirectory exposes the asset registry's per-department view.
type AssetDirectory interface {
	ListByDepartment(name string) ([]*asset.Asset, error)
}

// Service handles the department directory.
type Service struct {
	repo   Repository
	assets AssetDirectory
	logger *slog.Logger
}

func NewService(repo Repository, assets AssetDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		assets: assets,
		logger: logger,
	}
}

// CreateDepartment registers a department; the code must be unique.
func (s *Service) CreateDepartment(dto DepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByCode(dto.Code); err != nil {
		return nil, err
	} else if existing != nil {
		s.logger.Warn("department create rejected: duplicate code", "code", dto.Code)
		return nil, apperrors.ErrDuplicateCode
	}

	d := &Department{
		Name:     dto.Name,
		Code:     dto.Code,
		Location: dto.Location,
		Head:     dto.Head,
		Email:    dto.Email,
		Phone:    dto.Phone,
	}

	if err := s.repo.Create(d); err != nil {
		s.logger.Error("failed to create department", "error", err, "code", dto.Code)
		return nil, err
	}

	s.logger.Info("department created", "department_id", d.ID, "code", d.Code)
	return d, nil
}

// GetDepartment retrieves a department by id.
func (s *Service) GetDepartment(id int64) (*Department, error) {
	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return d, nil
}

// ListDepartments returns all departments.
func (s *Service) ListDepartments() ([]*Department, error) {
	return s.repo.GetAll()
}

// UpdateDepartment replaces every field of a department. A changed code is
// re-checked for uniqueness before applying.
func (s *Service) UpdateDepartment(id int64, dto DepartmentDTO) (*Department, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperrors.ErrDepartmentNotFound
	}

	if dto.Code != d.Code {
		if existing, err := s.repo.GetByCode(dto.Code); err != nil {
			return nil, err
		} else if existing != nil {
			s.logger.Warn("department update rejected: duplicate code", "department_id", id, "code", dto.Code)
			return nil, apperrors.ErrDuplicateCode
		}
	}

	d.Name = dto.Name
	d.Code = dto.Code
	d.Location = dto.Location
	d.Head = dto.Head
	d.Email = dto.Email
	d.Phone = dto.Phone

	if err := s.repo.Update(d); err != nil {
		s.logger.Error("failed to update department", "error", err, "department_id", id)
		return nil, err
	}

	s.logger.Info("department updated", "department_id", id, "code", d.Code)
	return d, nil
}

// DeleteDepartment removes a department unless assets still reference it by
// name.
func (s *Service) DeleteDepartment(id int64) error {
	d, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return apperrors.ErrDepartmentNotFound
	}

	referencing, err := s.assets.ListByDepartment(d.Name)
	if err != nil {
		return err
	}
	if len(referencing) > 0 {
		s.logger.Warn("department delete rejected: assets assigned",
			"department_id", id, "asset_count", len(referencing))
		return apperrors.ErrDepartmentInUse
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete department", "error", err, "department_id", id)
		return err
	}

	s.logger.Info("department deleted", "department_id", id)
	return nil
}

// DepartmentAssets returns the department's assets plus a computed summary.
func (s *Service) DepartmentAssets(id int64) (*DepartmentAssetsResponse, error) {
	d, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperrors.ErrDepartmentNotFound
	}

	assets, err := s.assets.ListByDepartment(d.Name)
	if err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []*asset.Asset{}
	}

	resp := &DepartmentAssetsResponse{
		Department:  d,
		Assets:      assets,
		TotalAssets: len(assets),
	}
	for _, a := range assets {
		resp.TotalCost += a.Cost
		if a.Status == asset.StatusActive {
			resp.ActiveAssets++
		}
	}

	return resp, nil
}
