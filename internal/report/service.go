package report

import (
	"log/slog"
	"math"
)

// Repository defines the aggregate queries behind the reporting endpoints.
type Repository interface {
	CountAssets() (int64, error)
	CountAssetsByStatus(status string) (int64, error)
	SumAssetCost() (float64, error)
	SumMaintenanceCost() (float64, error)
	MaintenanceCostPerAsset() ([]AssetMaintenanceCost, error)
	AssetCountByDepartment() (map[string]int64, error)
	AssetCountByType() (map[string]int64, error)
}

const (
	statusActive           = "Active"
	statusUnderMaintenance = "Under Maintenance"
)

// Service computes the read-only aggregate reports. Every report is
// independent and idempotent.
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

// Summary returns fleet totals; sums over an empty database are 0.
func (s *Service) Summary() (*SummaryReport, error) {
	total, err := s.repo.CountAssets()
	if err != nil {
		return nil, err
	}

	active, err := s.repo.CountAssetsByStatus(statusActive)
	if err != nil {
		return nil, err
	}

	maintenance, err := s.repo.CountAssetsByStatus(statusUnderMaintenance)
	if err != nil {
		return nil, err
	}

	assetCost, err := s.repo.SumAssetCost()
	if err != nil {
		return nil, err
	}

	maintenanceCost, err := s.repo.SumMaintenanceCost()
	if err != nil {
		return nil, err
	}

	return &SummaryReport{
		TotalAssets:          total,
		ActiveAssets:         active,
		UnderMaintenance:     maintenance,
		TotalAssetCost:       assetCost,
		TotalMaintenanceCost: maintenanceCost,
	}, nil
}

// MaintenanceCosts returns the grand total plus a per-asset breakdown for
// assets having at least one maintenance record.
func (s *Service) MaintenanceCosts() (*MaintenanceCostReport, error) {
	grandTotal, err := s.repo.SumMaintenanceCost()
	if err != nil {
		return nil, err
	}

	perAsset, err := s.repo.MaintenanceCostPerAsset()
	if err != nil {
		return nil, err
	}
	if perAsset == nil {
		perAsset = []AssetMaintenanceCost{}
	}

	return &MaintenanceCostReport{
		GrandTotal: grandTotal,
		PerAsset:   perAsset,
	}, nil
}

// AssetStats returns fleet count, average cost and group-by breakdowns.
func (s *Service) AssetStats() (*AssetStatsReport, error) {
	total, err := s.repo.CountAssets()
	if err != nil {
		return nil, err
	}

	stats := &AssetStatsReport{
		TotalAssets:  total,
		ByDepartment: map[string]int64{},
		ByType:       map[string]int64{},
	}

	if total > 0 {
		totalCost, err := s.repo.SumAssetCost()
		if err != nil {
			return nil, err
		}
		stats.AverageCost = math.Round(totalCost/float64(total)*100) / 100
	}

	byDepartment, err := s.repo.AssetCountByDepartment()
	if err != nil {
		return nil, err
	}
	if byDepartment != nil {
		stats.ByDepartment = byDepartment
	}

	byType, err := s.repo.AssetCountByType()
	if err != nil {
		return nil, err
	}
	if byType != nil {
		stats.ByType = byType
	}

	return stats, nil
}
