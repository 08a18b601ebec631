package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/asaskevich/govalidator"

	"contacts/domain"
)

// The rule table is exposed to govalidator under contact_* tag names so
// payload structs declare their format rules the same way they declare
// required fields.
func init() {
	for name, rule := range Rules {
		rule := rule
		govalidator.TagMap["contact_"+name] = govalidator.Validator(func(value string) bool {
			return rule.Matches(value)
		})
	}
}

// Struct validates a payload with govalidator and translates the first
// failure into a typed domain error carrying the field name, the expected
// format and the received value.
func Struct(payload interface{}) error {
	if _, err := govalidator.ValidateStruct(payload); err != nil {
		return translate(err, payload)
	}
	return nil
}

func translate(err error, payload interface{}) error {
	first, ok := firstError(err)
	if !ok {
		return &domain.ValidationError{Field: "", Expect: "valid request payload", Received: err.Error()}
	}
	if first.Validator == "required" {
		return &domain.MissingFieldError{Field: fieldName(first.Name)}
	}
	field := fieldName(first.Name)
	expect := first.Err.Error()
	rule, name, found := ruleFor(first.Name)
	if found {
		field = name
		expect = rule.Expect
	}
	return &domain.ValidationError{
		Field:    field,
		Expect:   expect,
		Received: receivedValue(payload, field, rule, found),
	}
}

func firstError(err error) (govalidator.Error, bool) {
	var many govalidator.Errors
	if errors.As(err, &many) {
		for _, item := range many.Errors() {
			if nested, ok := firstError(item); ok {
				return nested, true
			}
		}
		return govalidator.Error{}, false
	}
	var single govalidator.Error
	if errors.As(err, &single) {
		// errors for a nested phones/emails item arrive wrapped in an
		// outer Error named after the parent field; the leaf carries the
		// attribute that actually failed
		if nested, ok := firstError(single.Err); ok {
			return nested, true
		}
		return single, true
	}
	return govalidator.Error{}, false
}

func fieldName(name string) string {
	parts := strings.Split(name, ".")
	return parts[len(parts)-1]
}

// receivedValue digs the offending value back out of the payload so the
// rejection can echo what was actually sent. A field name can occur in
// several nested items, so the candidates are re-checked against the
// rule and the first one that violates it wins.
func receivedValue(payload interface{}, field string, rule Rule, haveRule bool) string {
	var candidates []interface{}
	valuesByJSONTag(reflect.ValueOf(payload), field, &candidates)
	if len(candidates) == 0 {
		return ""
	}
	if haveRule {
		for _, candidate := range candidates {
			if s, ok := candidate.(string); ok && !rule.Matches(s) {
				return s
			}
		}
	}
	return fmt.Sprint(candidates[0])
}

func valuesByJSONTag(v reflect.Value, field string, out *[]interface{}) {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if !v.IsNil() {
			valuesByJSONTag(v.Elem(), field, out)
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			tag := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
			if tag == field {
				*out = append(*out, v.Field(i).Interface())
				continue
			}
			if v.Field(i).Kind() == reflect.Struct || v.Field(i).Kind() == reflect.Slice {
				valuesByJSONTag(v.Field(i), field, out)
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			valuesByJSONTag(v.Index(i), field, out)
		}
	}
}
