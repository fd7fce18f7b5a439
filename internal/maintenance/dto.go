package maintenance

import (
	"github.com/frahmantamala/asset-management/internal/core/common/validation"

	errors "github.com/frahmantamala/asset-management/internal"
)

// CreateRecordDTO is the request payload for appending a maintenance record.
// Cost defaults to 0 when omitted.
type CreateRecordDTO struct {
	AssetID  string  `json:"asset_id"`
	Activity string  `json:"activity"`
	Cost     float64 `json:"cost"`
	Notes    *string `json:"notes,omitempty"`
}

func (d CreateRecordDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("asset_id", d.AssetID).Required()
	v.Field("activity", d.Activity).Required()
	v.Field("cost", d.Cost).NonNegative()
	return v.Validate()
}
