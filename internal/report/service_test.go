package report_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/asset-management/internal/report"
)

func TestReportService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Report Service Suite")
}

// Mock repository for testing
type mockReportRepository struct {
	assetCount      int64
	countsByStatus  map[string]int64
	assetCost       float64
	maintenanceCost float64
	perAsset        []report.AssetMaintenanceCost
	byDepartment    map[string]int64
	byType          map[string]int64
}

func (m *mockReportRepository) CountAssets() (int64, error) {
	return m.assetCount, nil
}

func (m *mockReportRepository) CountAssetsByStatus(status string) (int64, error) {
	return m.countsByStatus[status], nil
}

func (m *mockReportRepository) SumAssetCost() (float64, error) {
	return m.assetCost, nil
}

func (m *mockReportRepository) SumMaintenanceCost() (float64, error) {
	return m.maintenanceCost, nil
}

func (m *mockReportRepository) MaintenanceCostPerAsset() ([]report.AssetMaintenanceCost, error) {
	return m.perAsset, nil
}

func (m *mockReportRepository) AssetCountByDepartment() (map[string]int64, error) {
	return m.byDepartment, nil
}

func (m *mockReportRepository) AssetCountByType() (map[string]int64, error) {
	return m.byType, nil
}

var _ = Describe("ReportService", func() {
	var (
		service  *report.Service
		mockRepo *mockReportRepository
	)

	BeforeEach(func() {
		mockRepo = &mockReportRepository{countsByStatus: make(map[string]int64)}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = report.NewService(mockRepo, logger)
	})

	Describe("Summary", func() {
		It("should return all zeroes for an empty database", func() {
			summary, err := service.Summary()
			Expect(err).ToNot(HaveOccurred())
			Expect(summary.TotalAssets).To(BeZero())
			Expect(summary.ActiveAssets).To(BeZero())
			Expect(summary.UnderMaintenance).To(BeZero())
			Expect(summary.TotalAssetCost).To(BeZero())
			Expect(summary.TotalMaintenanceCost).To(BeZero())
		})

		It("should aggregate fleet totals", func() {
			mockRepo.assetCount = 5
			mockRepo.countsByStatus["Active"] = 3
			mockRepo.countsByStatus["Under Maintenance"] = 2
			mockRepo.assetCost = 7200.50
			mockRepo.maintenanceCost = 430

			summary, err := service.Summary()
			Expect(err).ToNot(HaveOccurred())
			Expect(summary.TotalAssets).To(Equal(int64(5)))
			Expect(summary.ActiveAssets).To(Equal(int64(3)))
			Expect(summary.UnderMaintenance).To(Equal(int64(2)))
			Expect(summary.TotalAssetCost).To(Equal(7200.50))
			Expect(summary.TotalMaintenanceCost).To(Equal(430.0))
		})
	})

	Describe("MaintenanceCosts", func() {
		It("should return an empty breakdown, not nil, when no records exist", func() {
			result, err := service.MaintenanceCosts()
			Expect(err).ToNot(HaveOccurred())
			Expect(result.GrandTotal).To(BeZero())
			Expect(result.PerAsset).To(BeEmpty())
			Expect(result.PerAsset).ToNot(BeNil())
		})

		It("should return the grand total plus the per-asset rows", func() {
			mockRepo.maintenanceCost = 420
			mockRepo.perAsset = []report.AssetMaintenanceCost{
				{AssetID: "IT-001", Brand: "Lenovo", Total: 300},
				{AssetID: "IT-002", Brand: "Dell", Total: 120},
			}

			result, err := service.MaintenanceCosts()
			Expect(err).ToNot(HaveOccurred())
			Expect(result.GrandTotal).To(Equal(420.0))
			Expect(result.PerAsset).To(HaveLen(2))
		})
	})

	Describe("AssetStats", func() {
		It("should return zero average and empty maps for an empty fleet", func() {
			stats, err := service.AssetStats()
			Expect(err).ToNot(HaveOccurred())
			Expect(stats.TotalAssets).To(BeZero())
			Expect(stats.AverageCost).To(BeZero())
			Expect(stats.ByDepartment).ToNot(BeNil())
			Expect(stats.ByDepartment).To(BeEmpty())
			Expect(stats.ByType).ToNot(BeNil())
			Expect(stats.ByType).To(BeEmpty())
		})

		It("should round the average cost to two decimals", func() {
			mockRepo.assetCount = 3
			mockRepo.assetCost = 1000

			stats, err := service.AssetStats()
			Expect(err).ToNot(HaveOccurred())
			Expect(stats.AverageCost).To(Equal(333.33))
		})

		It("should pass through the group-by breakdowns", func() {
			mockRepo.assetCount = 2
			mockRepo.assetCost = 500
			mockRepo.byDepartment = map[string]int64{"Information Technology": 2}
			mockRepo.byType = map[string]int64{"Laptop": 1, "Printer": 1}

			stats, err := service.AssetStats()
			Expect(err).ToNot(HaveOccurred())
			Expect(stats.ByDepartment).To(HaveKeyWithValue("Information Technology", int64(2)))
			Expect(stats.ByType).To(HaveLen(2))
		})
	})
})
