// Package validator holds the shared go-playground validator with the
// phone book's custom tags registered.
package validator

import (
	"maps"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vortex-fintech/phonebook/contactutil"
)

var (
	v *validator.Validate

	phoneRe = regexp.MustCompile(`^[0-9]{11}$`)
)

func init() {
	v = validator.New(validator.WithRequiredStructEnabled())

	// Report json names so violations read "name", "phone", ...
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	// pb_name sees the raw characters: no folding or trimming happens here.
	_ = v.RegisterValidation("pb_name", func(fl validator.FieldLevel) bool {
		return contactutil.IsName(fl.Field().String())
	})
	_ = v.RegisterValidation("pb_phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
}

// Struct validates i and returns the raw validator error.
func Struct(i any) error {
	return v.Struct(i)
}

// TagReasons exposes the tag -> reason map for error adapters.
func TagReasons() map[string]string {
	return maps.Clone(tagMap)
}
