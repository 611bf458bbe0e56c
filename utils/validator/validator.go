package validatorx

import (
	"reflect"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	cerr "github.com/muhammadheryan/pickup-inventory/utils/errors"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	v.RegisterTagNameFunc(jsonName)
}

// ValidateStruct validates a struct and reports the first failing field as a ValidationError.
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs gpvalidator.ValidationErrors
	if !cerr.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return cerr.NewValidationError("", err.Error())
	}
	fe := fieldErrs[0]
	return cerr.NewValidationError(fieldPath(fe), reason(fe))
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// fieldPath drops the root struct name: "ReserveOrderRequest.items[0].quantity" -> "items[0].quantity".
func fieldPath(fe gpvalidator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reason(fe gpvalidator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must have at least " + fe.Param() + " element(s)"
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	case "nefield":
		return "must differ from " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}
