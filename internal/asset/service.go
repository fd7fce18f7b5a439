package asset

import (
	"errors"
	"fmt"
	"log/slog"

	apperrors "github.com/frahmantamala/asset-management/internal"
)

// idRetryAttempts bounds the retry loop around the count-then-insert sequence
// race on the generated identifier.
const idRetryAttempts = 3

// Repository defines the data access methods for assets.
type Repository interface {
	GetAll(filters ListFilters) ([]*Asset, error)
	GetByID(id string) (*Asset, error)
	GetBySerial(serial string) (*Asset, error)
	ListByDepartment(name string) ([]*Asset, error)
	CountByIDPrefix(prefix string) (int64, error)
	Create(a *Asset) error
	Update(a *Asset) error
	Delete(id string) error
}

// DepartmentCodes resolves a department name to its asset-ID prefix code.
type DepartmentCodes interface {
	CodeForName(name string) (code string, found bool, err error)
}

// Service handles asset registry business logic.
type Service struct {
	repo   Repository
	codes  DepartmentCodes
	logger *slog.Logger
}

func NewService(repo Repository, codes DepartmentCodes, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		codes:  codes,
		logger: logger,
	}
}

// ListAssets returns assets matching the optional filters, in storage order.
func (s *Service) ListAssets(filters ListFilters) ([]*Asset, error) {
	assets, err := s.repo.GetAll(filters)
	if err != nil {
		s.logger.Error("failed to list assets", "error", err)
		return nil, err
	}
	return assets, nil
}

// GetAsset retrieves one asset by its identifier.
func (s *Service) GetAsset(id string) (*Asset, error) {
	a, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperrors.ErrAssetNotFound
	}
	return a, nil
}

// CreateAsset registers a new asset. The identifier is {code}-{NNN} where code
// comes from the asset's department and NNN is the next sequence number for
// that prefix. Concurrent creates in the same department can race on the
// count; the loser hits the primary-key constraint and the insert is retried
// with a fresh count.
func (s *Service) CreateAsset(dto CreateAssetDTO) (*Asset, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("asset validation failed", "error", err)
		return nil, err
	}

	if existing, err := s.repo.GetBySerial(dto.Serial); err != nil {
		return nil, err
	} else if existing != nil {
		s.logger.Warn("asset create rejected: duplicate serial", "serial", dto.Serial)
		return nil, apperrors.ErrDuplicateSerial
	}

	code, err := s.resolveDepartmentCode(dto.Department)
	if err != nil {
		return nil, err
	}

	a := &Asset{
		Type:           dto.Type,
		Brand:          dto.Brand,
		Model:          dto.Model,
		Serial:         dto.Serial,
		PurchaseDate:   dto.PurchaseDate,
		Cost:           dto.Cost,
		WarrantyStatus: dto.WarrantyStatus,
		Status:         dto.Status,
		Assignee:       dto.Assignee,
		Department:     dto.Department,
		Location:       dto.Location,
	}

	prefix := code + "-"
	for attempt := 1; attempt <= idRetryAttempts; attempt++ {
		count, err := s.repo.CountByIDPrefix(prefix)
		if err != nil {
			return nil, err
		}

		a.ID = fmt.Sprintf("%s%03d", prefix, count+1)

		err = s.repo.Create(a)
		if err == nil {
			s.logger.Info("asset created", "asset_id", a.ID, "serial", a.Serial)
			return a, nil
		}
		if !errors.Is(err, ErrIDConflict) {
			s.logger.Error("failed to create asset", "error", err, "asset_id", a.ID)
			return nil, err
		}

		s.logger.Warn("asset id conflict, retrying", "asset_id", a.ID, "attempt", attempt)
	}

	return nil, apperrors.NewInternalError("failed to allocate asset id", ErrIDConflict)
}

// UpdateAsset applies an allow-listed partial update to an asset.
func (s *Service) UpdateAsset(id string, dto UpdateAssetDTO) (*Asset, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperrors.ErrAssetNotFound
	}

	dto.ApplyTo(a)

	if err := s.repo.Update(a); err != nil {
		s.logger.Error("failed to update asset", "error", err, "asset_id", id)
		return nil, err
	}

	s.logger.Info("asset updated", "asset_id", id)
	return a, nil
}

// DeleteAsset removes an asset together with its maintenance history.
func (s *Service) DeleteAsset(id string) error {
	a, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return apperrors.ErrAssetNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete asset", "error", err, "asset_id", id)
		return err
	}

	s.logger.Info("asset deleted", "asset_id", id)
	return nil
}

// ListByDepartment returns all assets whose department matches the given name.
func (s *Service) ListByDepartment(name string) ([]*Asset, error) {
	return s.repo.ListByDepartment(name)
}

func (s *Service) resolveDepartmentCode(department *string) (string, error) {
	if department == nil || *department == "" {
		return GeneralCode, nil
	}

	code, found, err := s.codes.CodeForName(*department)
	if err != nil {
		return "", err
	}
	if !found {
		s.logger.Warn("asset create rejected: unknown department", "department", *department)
		return "", apperrors.ErrDepartmentNotFound
	}
	return code, nil
}
