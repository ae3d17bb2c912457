package dto

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by the request DTOs
// to gin's validator engine. Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		err = v.RegisterValidation("positive_amount", positiveAmount)
	})
	return err
}

// positiveAmount accepts decimal strings greater than zero.
// Empty strings pass so required/omitempty decide.
func positiveAmount(fl validator.FieldLevel) bool {
	str := fl.Field().String()
	if str == "" {
		return true
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return false
	}
	return d.IsPositive()
}
