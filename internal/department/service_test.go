package department_test

import (
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apperrors "github.com/frahmantamala/asset-management/internal"
	"github.com/frahmantamala/asset-management/internal/asset"
	"github.com/frahmantamala/asset-management/internal/department"
)

func TestDepartmentService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Department Service Suite")
}

// Mock repository for testing
type mockDepartmentRepository struct {
	departments map[int64]*department.Department
	order       []int64
	nextID      int64
}

func newMockDepartmentRepository() *mockDepartmentRepository {
	return &mockDepartmentRepository{
		departments: make(map[int64]*department.Department),
		nextID:      1,
	}
}

func (m *mockDepartmentRepository) Create(d *department.Department) error {
	d.ID = m.nextID
	m.nextID++
	m.departments[d.ID] = d
	m.order = append(m.order, d.ID)
	return nil
}

func (m *mockDepartmentRepository) GetByID(id int64) (*department.Department, error) {
	return m.departments[id], nil
}

func (m *mockDepartmentRepository) GetByCode(code string) (*department.Department, error) {
	for _, d := range m.departments {
		if d.Code == code {
			return d, nil
		}
	}
	return nil, nil
}

func (m *mockDepartmentRepository) GetAll() ([]*department.Department, error) {
	result := make([]*department.Department, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.departments[id])
	}
	return result, nil
}

func (m *mockDepartmentRepository) Update(d *department.Department) error {
	m.departments[d.ID] = d
	return nil
}

func (m *mockDepartmentRepository) Delete(id int64) error {
	delete(m.departments, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// Mock asset directory
type mockAssetDirectory struct {
	byDepartment map[string][]*asset.Asset
}

func (m *mockAssetDirectory) ListByDepartment(name string) ([]*asset.Asset, error) {
	return m.byDepartment[name], nil
}

var _ = Describe("DepartmentService", func() {
	var (
		service  *department.Service
		mockRepo *mockDepartmentRepository
		assets   *mockAssetDirectory
	)

	itDTO := department.DepartmentDTO{
		Name: "Information Technology",
		Code: "IT",
	}

	BeforeEach(func() {
		mockRepo = newMockDepartmentRepository()
		assets = &mockAssetDirectory{byDepartment: make(map[string][]*asset.Asset)}
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = department.NewService(mockRepo, assets, logger)
	})

	Describe("CreateDepartment", func() {
		It("should register a department", func() {
			d, err := service.CreateDepartment(itDTO)
			Expect(err).ToNot(HaveOccurred())
			Expect(d.ID).To(BeNumerically(">", 0))
			Expect(d.Code).To(Equal("IT"))
		})

		It("should reject a duplicate code", func() {
			_, err := service.CreateDepartment(itDTO)
			Expect(err).ToNot(HaveOccurred())

			_, err = service.CreateDepartment(department.DepartmentDTO{
				Name: "Infrastructure Team",
				Code: "IT",
			})
			Expect(err).To(MatchError(apperrors.ErrDuplicateCode))
		})

		It("should reject a code longer than ten characters", func() {
			_, err := service.CreateDepartment(department.DepartmentDTO{
				Name: "Research and Development",
				Code: "RESEARCHDEV",
			})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("UpdateDepartment", func() {
		var created *department.Department

		BeforeEach(func() {
			var err error
			created, err = service.CreateDepartment(itDTO)
			Expect(err).ToNot(HaveOccurred())
		})

		It("should replace every field", func() {
			updated, err := service.UpdateDepartment(created.ID, department.DepartmentDTO{
				Name: "Technology Services",
				Code: "TECH",
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Name).To(Equal("Technology Services"))
			Expect(updated.Code).To(Equal("TECH"))
			Expect(updated.Location).To(BeNil())
		})

		It("should reject a code change that collides with another department", func() {
			_, err := service.CreateDepartment(department.DepartmentDTO{Name: "Finance", Code: "FIN"})
			Expect(err).ToNot(HaveOccurred())

			_, err = service.UpdateDepartment(created.ID, department.DepartmentDTO{
				Name: "Information Technology",
				Code: "FIN",
			})
			Expect(err).To(MatchError(apperrors.ErrDuplicateCode))
		})

		It("should allow keeping the same code", func() {
			updated, err := service.UpdateDepartment(created.ID, department.DepartmentDTO{
				Name: "Tech Dept",
				Code: "IT",
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Name).To(Equal("Tech Dept"))
		})

		It("should return not found for an unknown department", func() {
			_, err := service.UpdateDepartment(999, itDTO)
			Expect(err).To(MatchError(apperrors.ErrDepartmentNotFound))
		})
	})

	Describe("DeleteDepartment", func() {
		var created *department.Department

		BeforeEach(func() {
			var err error
			created, err = service.CreateDepartment(itDTO)
			Expect(err).ToNot(HaveOccurred())
		})

		It("should delete a department with no assets", func() {
			Expect(service.DeleteDepartment(created.ID)).To(Succeed())

			_, err := service.GetDepartment(created.ID)
			Expect(err).To(MatchError(apperrors.ErrDepartmentNotFound))
		})

		It("should refuse to delete a department with assigned assets", func() {
			assets.byDepartment["Information Technology"] = []*asset.Asset{
				{ID: "IT-001", Status: asset.StatusActive},
			}

			err := service.DeleteDepartment(created.ID)
			Expect(err).To(MatchError(apperrors.ErrDepartmentInUse))

			_, err = service.GetDepartment(created.ID)
			Expect(err).ToNot(HaveOccurred())
		})

		It("should return not found for an unknown department", func() {
			err := service.DeleteDepartment(999)
			Expect(err).To(MatchError(apperrors.ErrDepartmentNotFound))
		})
	})

	Describe("DepartmentAssets", func() {
		var created *department.Department

		BeforeEach(func() {
			var err error
			created, err = service.CreateDepartment(itDTO)
			Expect(err).ToNot(HaveOccurred())
		})

		It("should compute totals over the department's assets", func() {
			assets.byDepartment["Information Technology"] = []*asset.Asset{
				{ID: "IT-001", Cost: 1500, Status: asset.StatusActive},
				{ID: "IT-002", Cost: 800, Status: asset.StatusUnderMaintenance},
				{ID: "IT-003", Cost: 700, Status: asset.StatusActive},
			}

			resp, err := service.DepartmentAssets(created.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(resp.TotalAssets).To(Equal(3))
			Expect(resp.TotalCost).To(Equal(3000.0))
			Expect(resp.ActiveAssets).To(Equal(2))
		})

		It("should return empty totals for a department without assets", func() {
			resp, err := service.DepartmentAssets(created.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(resp.Assets).To(BeEmpty())
			Expect(resp.Assets).ToNot(BeNil())
			Expect(resp.TotalAssets).To(BeZero())
			Expect(resp.TotalCost).To(BeZero())
		})
	})
})
