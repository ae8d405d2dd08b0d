package service

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/mirel/fitcoach/internal/error_values"
	"github.com/mirel/fitcoach/pkg/entity"
)

// Package for profile and request validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
	})
}

// Bounds keep macro arithmetic physical: outside them fat targets can go
// negative and quotas stop making sense
type profileConstraints struct {
	Weight        float64 `validate:"required,gt=20,lt=400"`
	Age           int     `validate:"required,gte=10,lte=120"`
	ActivityLevel string  `validate:"required,oneof=sedentary light moderate active very-active"`
}

func validateProfile(p *entity.Profile) error {
	err := validate.Struct(profileConstraints{
		Weight:        p.Weight,
		Age:           p.Age,
		ActivityLevel: p.ActivityLevel,
	})
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			joined := errorvalues.ErrInvalidProfile
			for _, fieldErr := range validationErrors {
				joined = errors.Join(joined, fieldErr)
			}
			return joined
		}
		return errors.New("validation unexpected error: " + err.Error())
	}
	return nil
}
