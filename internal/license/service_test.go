package license_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/frahmantamala/asset-management/internal"
	"github.com/frahmantamala/asset-management/internal/license"
)

func TestLicenseService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "License Service Suite")
}

// Mock repository for testing
type mockLicenseRepository struct {
	licenses map[int64]*license.License
	order    []int64
	nextID   int64
}

func newMockLicenseRepository() *mockLicenseRepository {
	return &mockLicenseRepository{
		licenses: make(map[int64]*license.License),
		nextID:   1,
	}
}

func (m *mockLicenseRepository) Create(l *license.License) error {
	l.ID = m.nextID
	m.nextID++
	m.licenses[l.ID] = l
	m.order = append(m.order, l.ID)
	return nil
}

func (m *mockLicenseRepository) GetByID(id int64) (*license.License, error) {
	return m.licenses[id], nil
}

func (m *mockLicenseRepository) GetByKey(key string) (*license.License, error) {
	for _, l := range m.licenses {
		if l.LicenseKey == key {
			return l, nil
		}
	}
	return nil, nil
}

func (m *mockLicenseRepository) GetAll() ([]*license.License, error) {
	result := make([]*license.License, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.licenses[id])
	}
	return result, nil
}

func (m *mockLicenseRepository) Update(l *license.License) error {
	m.licenses[l.ID] = l
	return nil
}

func (m *mockLicenseRepository) Delete(id int64) error {
	delete(m.licenses, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func strPtr(s string) *string { return &s }

var _ = Describe("LicenseService", func() {
	var (
		service  *license.Service
		mockRepo *mockLicenseRepository
	)

	newCreateDTO := func(key string) license.CreateLicenseDTO {
		return license.CreateLicenseDTO{
			Name:         "Office Suite",
			Vendor:       "Microsoft",
			LicenseKey:   key,
			PurchaseDate: "2024-01-15",
			ExpiryDate:   "2025-01-15",
			Cost:         99.99,
			Status:       "Active",
		}
	}

	BeforeEach(func() {
		mockRepo = newMockLicenseRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = license.NewService(mockRepo, logger)
	})

	Describe("CreateLicense", func() {
		It("should register a new license", func() {
			l, err := service.CreateLicense(newCreateDTO("KEY-123"))
			Expect(err).ToNot(HaveOccurred())
			Expect(l.ID).To(BeNumerically(">", 0))
			Expect(l.LicenseKey).To(Equal("KEY-123"))
		})

		It("should reject a duplicate license key", func() {
			_, err := service.CreateLicense(newCreateDTO("KEY-123"))
			Expect(err).ToNot(HaveOccurred())

			_, err = service.CreateLicense(newCreateDTO("KEY-123"))
			Expect(err).To(MatchError(apperrors.ErrDuplicateLicenseKey))
		})

		It("should reject a missing license key", func() {
			_, err := service.CreateLicense(newCreateDTO(""))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("UpdateLicense", func() {
		var created *license.License

		BeforeEach(func() {
			var err error
			created, err = service.CreateLicense(newCreateDTO("KEY-123"))
			Expect(err).ToNot(HaveOccurred())
		})

		It("should only change fields present in the patch", func() {
			updated, err := service.UpdateLicense(created.ID, license.UpdateLicenseDTO{
				Status:     strPtr("Expired"),
				AssignedTo: strPtr("alice"),
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Status).To(Equal("Expired"))
			Expect(*updated.AssignedTo).To(Equal("alice"))
			Expect(updated.Vendor).To(Equal("Microsoft"))
			Expect(updated.LicenseKey).To(Equal("KEY-123"))
		})

		It("should return not found for an unknown license", func() {
			_, err := service.UpdateLicense(999, license.UpdateLicenseDTO{Status: strPtr("Expired")})
			Expect(err).To(MatchError(apperrors.ErrLicenseNotFound))
		})
	})

	Describe("GetLicense", func() {
		It("should return not found for an unknown license", func() {
			_, err := service.GetLicense(999)
			Expect(err).To(MatchError(apperrors.ErrLicenseNotFound))
		})
	})

	Describe("DeleteLicense", func() {
		It("should delete an existing license", func() {
			created, err := service.CreateLicense(newCreateDTO("KEY-123"))
			Expect(err).ToNot(HaveOccurred())

			Expect(service.DeleteLicense(created.ID)).To(Succeed())

			licenses, err := service.ListLicenses()
			Expect(err).ToNot(HaveOccurred())
			Expect(licenses).To(BeEmpty())
		})

		It("should return not found for an unknown license", func() {
			err := service.DeleteLicense(999)
			Expect(err).To(MatchError(apperrors.ErrLicenseNotFound))
		})
	})
})
