package errors

import (
	"reflect"
	"strings"
	"testing"

	play "github.com/go-playground/validator/v10"
)

type personReq struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"len=11"`
}

func TestFromPlaygroundUsesJSONNames(t *testing.T) {
	v := play.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})

	err := v.Struct(personReq{Phone: "123"})
	if err == nil {
		t.Fatalf("expected validation error")
	}

	resp := FromPlayground(err.(play.ValidationErrors), map[string]string{"required": "required"})
	if resp.Code.String() != "InvalidArgument" {
		t.Fatalf("expected InvalidArgument, got %v", resp.Code)
	}
	if len(resp.Violations) != 2 {
		t.Fatalf("expected 2 violations, got %+v", resp.Violations)
	}

	got := map[string]string{}
	for _, fv := range resp.Violations {
		got[fv.Field] = fv.Reason
	}
	if got["name"] != "required" {
		t.Fatalf("unexpected name reason: %+v", got)
	}
	if got["phone"] != "invalid" {
		t.Fatalf("unmapped tag should fall back to invalid: %+v", got)
	}
}
