package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError 描述第一个未通过校验的字段。
type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string { return e.Message }

var (
	engineOnce sync.Once
	engine     *validator.Validate
)

// Configure 让校验器在错误里使用 JSON 字段名，gin 的 binding 引擎与本包共用同一规则。
func Configure(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
}

// Validate 按 binding 标签校验结构体，返回第一个失败字段；通过时返回 nil。
func Validate(v any) error {
	engineOnce.Do(func() {
		engine = validator.New()
		engine.SetTagName("binding")
		Configure(engine)
	})
	if err := engine.Struct(v); err != nil {
		return Describe(err)
	}
	return nil
}

// Describe 将绑定或校验错误归一为 FieldError，只保留第一个失败字段。
func Describe(err error) *FieldError {
	if err == nil {
		return nil
	}

	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		return &FieldError{Field: first.Field(), Message: describeTag(first)}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return &FieldError{Message: "request body must be a JSON object"}
		}
		return &FieldError{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("%s must be %s", typeErr.Field, describeType(typeErr.Type)),
		}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &FieldError{Message: "request body is not valid JSON"}
	}

	if errors.Is(err, io.EOF) {
		return &FieldError{Message: "request body is required"}
	}

	return &FieldError{Message: err.Error()}
}

func describeTag(fe validator.FieldError) string {
	field := fe.Field()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min", "gte":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		if isString {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

func describeType(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Pointer:
		return describeType(t.Elem())
	default:
		return "a valid value"
	}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	default:
		return name
	}
}
