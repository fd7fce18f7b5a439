package postgres_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	assetDatamodel "github.com/frahmantamala/asset-management/internal/core/datamodel/asset"
	maintenanceDatamodel "github.com/frahmantamala/asset-management/internal/core/datamodel/maintenance"
	"github.com/frahmantamala/asset-management/internal/report"
	reportPostgres "github.com/frahmantamala/asset-management/internal/report/postgres"
)

func TestReportRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Report Repository Suite")
}

func strPtr(s string) *string { return &s }

var _ = Describe("Report PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo report.Repository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&assetDatamodel.Asset{}, &maintenanceDatamodel.MaintenanceRecord{})
		Expect(err).NotTo(HaveOccurred())

		repo = reportPostgres.NewReportRepository(db)
	})

	seedAssets := func() {
		assets := []assetDatamodel.Asset{
			{ID: "IT-001", Type: "Laptop", Brand: "Lenovo", Model: "T14", Serial: "SN-001",
				PurchaseDate: "2024-01-01", Cost: 1500, WarrantyStatus: "Active",
				Status: "Active", Department: strPtr("Information Technology")},
			{ID: "IT-002", Type: "Laptop", Brand: "Dell", Model: "5440", Serial: "SN-002",
				PurchaseDate: "2024-02-01", Cost: 1200, WarrantyStatus: "Active",
				Status: "Under Maintenance", Department: strPtr("Information Technology")},
			{ID: "GEN-001", Type: "Printer", Brand: "HP", Model: "LaserJet", Serial: "SN-003",
				PurchaseDate: "2024-03-01", Cost: 300, WarrantyStatus: "Expired",
				Status: "Active"},
		}
		Expect(db.Create(&assets).Error).To(Succeed())
	}

	Describe("on an empty database", func() {
		It("should count zero assets", func() {
			count, err := repo.CountAssets()
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})

		It("should sum costs to zero", func() {
			assetCost, err := repo.SumAssetCost()
			Expect(err).NotTo(HaveOccurred())
			Expect(assetCost).To(BeZero())

			maintenanceCost, err := repo.SumMaintenanceCost()
			Expect(err).NotTo(HaveOccurred())
			Expect(maintenanceCost).To(BeZero())
		})

		It("should return no per-asset maintenance rows", func() {
			rows, err := repo.MaintenanceCostPerAsset()
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(BeEmpty())
		})
	})

	Describe("with a seeded fleet", func() {
		BeforeEach(seedAssets)

		It("should count assets overall and by status", func() {
			total, err := repo.CountAssets()
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(3)))

			active, err := repo.CountAssetsByStatus("Active")
			Expect(err).NotTo(HaveOccurred())
			Expect(active).To(Equal(int64(2)))

			maintenance, err := repo.CountAssetsByStatus("Under Maintenance")
			Expect(err).NotTo(HaveOccurred())
			Expect(maintenance).To(Equal(int64(1)))
		})

		It("should sum asset cost", func() {
			total, err := repo.SumAssetCost()
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(3000.0))
		})

		It("should group asset counts by department with a bucket for unassigned", func() {
			byDepartment, err := repo.AssetCountByDepartment()
			Expect(err).NotTo(HaveOccurred())
			Expect(byDepartment).To(HaveKeyWithValue("Information Technology", int64(2)))
			Expect(byDepartment).To(HaveKeyWithValue("Unassigned", int64(1)))
		})

		It("should group asset counts by type", func() {
			byType, err := repo.AssetCountByType()
			Expect(err).NotTo(HaveOccurred())
			Expect(byType).To(HaveKeyWithValue("Laptop", int64(2)))
			Expect(byType).To(HaveKeyWithValue("Printer", int64(1)))
		})

		Context("with maintenance records", func() {
			BeforeEach(func() {
				records := []maintenanceDatamodel.MaintenanceRecord{
					{AssetID: "IT-001", Activity: "Battery replacement", Cost: 120},
					{AssetID: "IT-001", Activity: "Screen repair", Cost: 300},
					{AssetID: "IT-002", Activity: "Keyboard swap", Cost: 80},
				}
				Expect(db.Create(&records).Error).To(Succeed())
			})

			It("should sum the total maintenance cost", func() {
				total, err := repo.SumMaintenanceCost()
				Expect(err).NotTo(HaveOccurred())
				Expect(total).To(Equal(500.0))
			})

			It("should break down cost per asset, skipping assets without records", func() {
				rows, err := repo.MaintenanceCostPerAsset()
				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(HaveLen(2))

				totals := make(map[string]float64, len(rows))
				for _, row := range rows {
					totals[row.AssetID] = row.Total
				}
				Expect(totals).To(HaveKeyWithValue("IT-001", 420.0))
				Expect(totals).To(HaveKeyWithValue("IT-002", 80.0))
				Expect(totals).NotTo(HaveKey("GEN-001"))
			})
		})
	})
})
