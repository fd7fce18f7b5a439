package asset_test

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/frahmantamala/asset-management/internal"
	"github.com/frahmantamala/asset-management/internal/asset"
)

func TestAssetService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Asset Service Suite")
}

// Mock repository for testing
type mockAssetRepository struct {
	assets      map[string]*asset.Asset
	order       []string
	createError error
	getError    error
	// when > 0, Create fails with ErrIDConflict this many times before
	// succeeding
	conflictsRemaining int
	conflictSeen       int
}

func newMockAssetRepository() *mockAssetRepository {
	return &mockAssetRepository{
		assets: make(map[string]*asset.Asset),
	}
}

func (m *mockAssetRepository) GetAll(filters asset.ListFilters) ([]*asset.Asset, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	result := make([]*asset.Asset, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.assets[id])
	}
	return result, nil
}

func (m *mockAssetRepository) GetByID(id string) (*asset.Asset, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	return m.assets[id], nil
}

func (m *mockAssetRepository) GetBySerial(serial string) (*asset.Asset, error) {
	for _, a := range m.assets {
		if a.Serial == serial {
			return a, nil
		}
	}
	return nil, nil
}

func (m *mockAssetRepository) ListByDepartment(name string) ([]*asset.Asset, error) {
	var result []*asset.Asset
	for _, id := range m.order {
		a := m.assets[id]
		if a.Department != nil && *a.Department == name {
			result = append(result, a)
		}
	}
	return result, nil
}

func (m *mockAssetRepository) CountByIDPrefix(prefix string) (int64, error) {
	var count int64
	for id := range m.assets {
		if len(id) >= len(prefix) && id[:len(prefix)] == prefix {
			count++
		}
	}
	return count, nil
}

func (m *mockAssetRepository) Create(a *asset.Asset) error {
	if m.createError != nil {
		return m.createError
	}
	if m.conflictsRemaining > 0 {
		m.conflictsRemaining--
		m.conflictSeen++
		return asset.ErrIDConflict
	}
	if _, exists := m.assets[a.ID]; exists {
		return asset.ErrIDConflict
	}
	cloned := *a
	m.assets[a.ID] = &cloned
	m.order = append(m.order, a.ID)
	return nil
}

func (m *mockAssetRepository) Update(a *asset.Asset) error {
	cloned := *a
	m.assets[a.ID] = &cloned
	return nil
}

func (m *mockAssetRepository) Delete(id string) error {
	delete(m.assets, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Mock department code resolver
type mockDepartmentCodes struct {
	codes    map[string]string
	getError error
}

func (m *mockDepartmentCodes) CodeForName(name string) (string, bool, error) {
	if m.getError != nil {
		return "", false, m.getError
	}
	code, ok := m.codes[name]
	return code, ok, nil
}

func strPtr(s string) *string { return &s }

var _ = Describe("AssetService", func() {
	var (
		service  *asset.Service
		mockRepo *mockAssetRepository
		codes    *mockDepartmentCodes
	)

	newCreateDTO := func(serial string, department *string) asset.CreateAssetDTO {
		return asset.CreateAssetDTO{
			Type:           "Laptop",
			Brand:          "Lenovo",
			Model:          "ThinkPad T14",
			Serial:         serial,
			PurchaseDate:   "2024-03-01",
			Cost:           1500,
			WarrantyStatus: "Active",
			Status:         asset.StatusActive,
			Department:     department,
		}
	}

	BeforeEach(func() {
		mockRepo = newMockAssetRepository()
		codes = &mockDepartmentCodes{codes: map[string]string{
			"Information Technology": "IT",
			"Finance":                "FIN",
		}}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = asset.NewService(mockRepo, codes, logger)
	})

	Describe("CreateAsset", func() {
		It("should assign sequential ids within a department prefix", func() {
			first, err := service.CreateAsset(newCreateDTO("SN-001", strPtr("Information Technology")))
			Expect(err).ToNot(HaveOccurred())
			Expect(first.ID).To(Equal("IT-001"))

			second, err := service.CreateAsset(newCreateDTO("SN-002", strPtr("Information Technology")))
			Expect(err).ToNot(HaveOccurred())
			Expect(second.ID).To(Equal("IT-002"))
		})

		It("should keep independent sequences per department", func() {
			_, err := service.CreateAsset(newCreateDTO("SN-001", strPtr("Information Technology")))
			Expect(err).ToNot(HaveOccurred())

			finance, err := service.CreateAsset(newCreateDTO("SN-002", strPtr("Finance")))
			Expect(err).ToNot(HaveOccurred())
			Expect(finance.ID).To(Equal("FIN-001"))
		})

		It("should fall back to the general prefix without a department", func() {
			created, err := service.CreateAsset(newCreateDTO("SN-001", nil))
			Expect(err).ToNot(HaveOccurred())
			Expect(created.ID).To(Equal("GEN-001"))
		})

		It("should treat an empty department name like no department", func() {
			created, err := service.CreateAsset(newCreateDTO("SN-001", strPtr("")))
			Expect(err).ToNot(HaveOccurred())
			Expect(created.ID).To(Equal("GEN-001"))
		})

		It("should reject an unknown department", func() {
			_, err := service.CreateAsset(newCreateDTO("SN-001", strPtr("Shipping")))
			Expect(err).To(MatchError(apperrors.ErrDepartmentNotFound))
		})

		It("should reject a duplicate serial number", func() {
			_, err := service.CreateAsset(newCreateDTO("SN-001", nil))
			Expect(err).ToNot(HaveOccurred())

			_, err = service.CreateAsset(newCreateDTO("SN-001", nil))
			Expect(err).To(MatchError(apperrors.ErrDuplicateSerial))
		})

		It("should retry the insert when the id sequence races", func() {
			mockRepo.conflictsRemaining = 2

			created, err := service.CreateAsset(newCreateDTO("SN-001", nil))
			Expect(err).ToNot(HaveOccurred())
			Expect(created.ID).To(Equal("GEN-001"))
			Expect(mockRepo.conflictSeen).To(Equal(2))
		})

		It("should give up after exhausting the id retry budget", func() {
			mockRepo.conflictsRemaining = 10

			_, err := service.CreateAsset(newCreateDTO("SN-001", nil))
			Expect(err).To(HaveOccurred())

			var appErr *apperrors.AppError
			Expect(errors.As(err, &appErr)).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(500))
		})

		It("should reject a missing serial", func() {
			dto := newCreateDTO("", nil)
			_, err := service.CreateAsset(dto)

			var appErr *apperrors.AppError
			Expect(errors.As(err, &appErr)).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(422))
		})

		It("should reject a negative cost", func() {
			dto := newCreateDTO("SN-001", nil)
			dto.Cost = -1

			_, err := service.CreateAsset(dto)

			var appErr *apperrors.AppError
			Expect(errors.As(err, &appErr)).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(422))
		})
	})

	Describe("UpdateAsset", func() {
		var created *asset.Asset

		BeforeEach(func() {
			var err error
			created, err = service.CreateAsset(newCreateDTO("SN-001", strPtr("Information Technology")))
			Expect(err).ToNot(HaveOccurred())
		})

		It("should only change fields present in the patch", func() {
			updated, err := service.UpdateAsset(created.ID, asset.UpdateAssetDTO{
				Status: strPtr(asset.StatusUnderMaintenance),
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Status).To(Equal(asset.StatusUnderMaintenance))
			Expect(updated.Brand).To(Equal("Lenovo"))
			Expect(updated.Serial).To(Equal("SN-001"))
		})

		It("should be idempotent when the same patch is applied twice", func() {
			patch := asset.UpdateAssetDTO{
				Status:   strPtr(asset.StatusUnderMaintenance),
				Assignee: strPtr("bob"),
			}

			first, err := service.UpdateAsset(created.ID, patch)
			Expect(err).ToNot(HaveOccurred())

			second, err := service.UpdateAsset(created.ID, patch)
			Expect(err).ToNot(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("should not change the identifier", func() {
			updated, err := service.UpdateAsset(created.ID, asset.UpdateAssetDTO{
				Brand: strPtr("Dell"),
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.ID).To(Equal(created.ID))
		})

		It("should return not found for an unknown asset", func() {
			_, err := service.UpdateAsset("IT-999", asset.UpdateAssetDTO{Brand: strPtr("Dell")})
			Expect(err).To(MatchError(apperrors.ErrAssetNotFound))
		})
	})

	Describe("DeleteAsset", func() {
		It("should delete an existing asset", func() {
			created, err := service.CreateAsset(newCreateDTO("SN-001", nil))
			Expect(err).ToNot(HaveOccurred())

			Expect(service.DeleteAsset(created.ID)).To(Succeed())

			_, err = service.GetAsset(created.ID)
			Expect(err).To(MatchError(apperrors.ErrAssetNotFound))
		})

		It("should return not found for an unknown asset", func() {
			err := service.DeleteAsset("GEN-404")
			Expect(err).To(MatchError(apperrors.ErrAssetNotFound))
		})
	})

	Describe("ListAssets", func() {
		It("should return an empty slice when nothing matches", func() {
			assets, err := service.ListAssets(asset.ListFilters{})
			Expect(err).ToNot(HaveOccurred())
			Expect(assets).To(BeEmpty())
		})
	})
})

var _ = Describe("Asset id format", func() {
	It("should zero-pad the sequence to three digits", func() {
		Expect(fmt.Sprintf("%s-%03d", "IT", 7)).To(Equal("IT-007"))
		Expect(fmt.Sprintf("%s-%03d", "IT", 1000)).To(Equal("IT-1000"))
	})
})
