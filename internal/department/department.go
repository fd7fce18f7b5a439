package department

import (
	departmentDatamodel "github.com/frahmantamala/asset-management/internal/core/datamodel/department"
)

// Department is the internal domain model for an organizational unit. Code is
// unique and becomes the prefix for asset identifiers.
type Department struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Code     string  `json:"code"`
	Location *string `json:"location,omitempty"`
	Head     *string `json:"head,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

func ToDataModel(d *Department) *departmentDatamodel.Department {
	return &departmentDatamodel.Department{
		ID:       d.ID,
		Name:     d.Name,
		Code:     d.Code,
		Location: d.Location,
		Head:     d.Head,
		Email:    d.Email,
		Phone:    d.Phone,
	}
}

func FromDataModel(row *departmentDatamodel.Department) *Department {
	return &Department{
		ID:       row.ID,
		Name:     row.Name,
		Code:     row.Code,
		Location: row.Location,
		Head:     row.Head,
		Email:    row.Email,
		Phone:    row.Phone,
	}
}

func FromDataModelSlice(rows []*departmentDatamodel.Department) []*Department {
	result := make([]*Department, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
