package pricing

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type OverrideInput struct {
	SectionID    string  `json:"section_id" binding:"required,sectionid"`
	PriceMin     float64 `json:"price_min" binding:"min=0"`
	PriceMax     float64 `json:"price_max" binding:"min=0"`
	CurrentPrice float64 `json:"current_price" binding:"min=0"`
	Available    *bool   `json:"available"`
}

type SaveOverridesRequest struct {
	Overrides []OverrideInput `json:"overrides" binding:"required,min=1,dive"`
}

type SynthesizeRequest struct {
	MinPrice *float64 `json:"min_price" binding:"omitempty,min=0"`
	MaxPrice *float64 `json:"max_price" binding:"omitempty,min=0"`
}

var sectionIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// RegisterValidations registers the custom section-id validator with gin's
// binding engine. Call once during router setup.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("sectionid", func(fl validator.FieldLevel) bool {
			return sectionIDPattern.MatchString(fl.Field().String())
		})
	}
}
