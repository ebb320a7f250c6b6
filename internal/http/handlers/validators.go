package handlers

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const minimumAge = 15

var uzPhoneRe = regexp.MustCompile(`^\+998[0-9]{9}$`)

// RegisterValidators installs the platform's custom binding validators on
// gin's validator engine. Safe to call more than once.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("uzphone", validUzPhone); err != nil {
		return err
	}
	return v.RegisterValidation("birthyear", validBirthYear)
}

// validUzPhone checks the international Uzbek phone format +998XXXXXXXXX
func validUzPhone(fl validator.FieldLevel) bool {
	return uzPhoneRe.MatchString(fl.Field().String())
}

// validBirthYear requires a plausible year implying age of at least 15
func validBirthYear(fl validator.FieldLevel) bool {
	year := int(fl.Field().Int())
	currentYear := time.Now().Year()
	if year < 1900 || year > currentYear {
		return false
	}
	return currentYear-year >= minimumAge
}
