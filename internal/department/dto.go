package department

import (
	"github.com/frahmantamala/asset-management/internal/asset"
	"github.com/frahmantamala/asset-management/internal/core/common/validation"

	errors "github.com/frahmantamala/asset-management/internal"
)

// DepartmentDTO is the request payload for creating a department, and the
// full-field replacement used by PUT updates.
type DepartmentDTO struct {
	Name     string  `json:"name"`
	Code     string  `json:"code"`
	Location *string `json:"location,omitempty"`
	Head     *string `json:"head,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

func (d DepartmentDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required()
	v.Field("code", d.Code).Required().MaxLength(10)
	return v.Validate()
}

// DepartmentAssetsResponse is returned by GET /departments/{id}/assets.
type DepartmentAssetsResponse struct {
	Department   *Department    `json:"department"`
	Assets       []*asset.Asset `json:"assets"`
	TotalAssets  int            `json:"total_assets"`
	TotalCost    float64        `json:"total_cost"`
	ActiveAssets int            `json:"active_assets"`
}
