package license

import (
	"log/slog"

	apperrors "github.com/frahmantamala/asset-management/internal"
)

// Repository defines the data access methods for software licenses.
type Repository interface {
	Create(l *License) error
	GetByID(id int64) (*License, error)
	GetByKey(key string) (*License, error)
	GetAll() ([]*License, error)
	Update(l *License) error
	Delete(id int64) error
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateLicense registers a license; the license key must be unique.
func (s *Service) CreateLicense(dto CreateLicenseDTO) (*License, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByKey(dto.LicenseKey); err != nil {
		return nil, err
	} else if existing != nil {
		s.logger.Warn("license create rejected: duplicate key", "vendor", dto.Vendor)
		return nil, apperrors.ErrDuplicateLicenseKey
	}

	l := &License{
		Name:         dto.Name,
		Vendor:       dto.Vendor,
		LicenseKey:   dto.LicenseKey,
		PurchaseDate: dto.PurchaseDate,
		ExpiryDate:   dto.ExpiryDate,
		Cost:         dto.Cost,
		AssignedTo:   dto.AssignedTo,
		Department:   dto.Department,
		Status:       dto.Status,
	}

	if err := s.repo.Create(l); err != nil {
		s.logger.Error("failed to create license", "error", err)
		return nil, err
	}

	s.logger.Info("license created", "license_id", l.ID, "vendor", l.Vendor)
	return l, nil
}

// GetLicense retrieves a license by id.
func (s *Service) GetLicense(id int64) (*License, error) {
	l, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, apperrors.ErrLicenseNotFound
	}
	return l, nil
}

// ListLicenses returns all licenses.
func (s *Service) ListLicenses() ([]*License, error) {
	return s.repo.GetAll()
}

// UpdateLicense applies an allow-listed partial update.
func (s *Service) UpdateLicense(id int64, dto UpdateLicenseDTO) (*License, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	l, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, apperrors.ErrLicenseNotFound
	}

	dto.ApplyTo(l)

	if err := s.repo.Update(l); err != nil {
		s.logger.Error("failed to update license", "error", err, "license_id", id)
		return nil, err
	}

	s.logger.Info("license updated", "license_id", id)
	return l, nil
}

// DeleteLicense removes a license by id.
func (s *Service) DeleteLicense(id int64) error {
	l, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if l == nil {
		return apperrors.ErrLicenseNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete license", "error", err, "license_id", id)
		return err
	}

	s.logger.Info("license deleted", "license_id", id)
	return nil
}
