package maintenance

import (
	"log/slog"
	"time"

	apperrors "github.com/frahmantamala/asset-management/internal"
)

// Repository defines the data access methods for maintenance records.
type Repository interface {
	Create(rec *Record) error
	GetByID(id int64) (*Record, error)
	GetAll() ([]*Record, error)
	GetByAssetID(assetID string) ([]*Record, error)
	Delete(id int64) error
}

// AssetChecker reports whether an asset exists, without pulling in the full
// asset service.
type AssetChecker interface {
	Exists(assetID string) (bool, error)
}

// Service handles the append-only maintenance ledger.
type Service struct {
	repo   Repository
	assets AssetChecker
	logger *slog.Logger
}

func NewService(repo Repository, assets AssetChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		assets: assets,
		logger: logger,
	}
}

// AddRecord appends a maintenance event to an existing asset's ledger.
func (s *Service) AddRecord(dto CreateRecordDTO) (*Record, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.assets.Exists(dto.AssetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		s.logger.Warn("maintenance record rejected: unknown asset", "asset_id", dto.AssetID)
		return nil, apperrors.ErrAssetNotFound
	}

	rec := &Record{
		AssetID:  dto.AssetID,
		Date:     time.Now().UTC(),
		Activity: dto.Activity,
		Cost:     dto.Cost,
		Notes:    dto.Notes,
	}

	if err := s.repo.Create(rec); err != nil {
		s.logger.Error("failed to create maintenance record", "error", err, "asset_id", dto.AssetID)
		return nil, err
	}

	s.logger.Info("maintenance record added", "record_id", rec.ID, "asset_id", rec.AssetID, "cost", rec.Cost)
	return rec, nil
}

// ListAll returns every maintenance record.
func (s *Service) ListAll() ([]*Record, error) {
	return s.repo.GetAll()
}

// ListByAsset returns the ledger of one asset; the asset must exist.
func (s *Service) ListByAsset(assetID string) ([]*Record, error) {
	exists, err := s.assets.Exists(assetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrAssetNotFound
	}

	return s.repo.GetByAssetID(assetID)
}

// DeleteRecord removes one record by id.
func (s *Service) DeleteRecord(id int64) error {
	rec, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrors.ErrMaintenanceRecordNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete maintenance record", "error", err, "record_id", id)
		return err
	}

	s.logger.Info("maintenance record deleted", "record_id", id)
	return nil
}
