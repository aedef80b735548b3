// Package schema validates decoded JSON payloads against a field contract before they are
// bound to typed values. It has no HTTP dependencies.
//
// Violations are reported per field as a list of human readable messages, the same shape
// that is returned to API callers:
//
//	{"name": ["Missing data for required field."], "price": ["Not a valid number."]}
package schema

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Type is the JSON type a field must carry.
type Type int

const (
	String Type = iota
	Number
	Integer
)

// Messages reported for contract violations.
const (
	MsgMissing       = "Missing data for required field."
	MsgNull          = "Field may not be null."
	MsgInvalidString = "Not a valid string."
	MsgInvalidNumber = "Not a valid number."
	MsgInvalidInt    = "Not a valid integer."
	MsgUnknownField  = "Unknown field."
	MsgInvalidInput  = "Invalid input type."
)

// SchemaKey holds errors that concern the payload as a whole rather than one field.
const SchemaKey = "_schema"

// validator tags registered by New.
const (
	tagPresent = "present"
	tagString  = "json_string"
	tagNumber  = "json_number"
	tagInteger = "json_integer"
)

// Field describes one entry of a contract.
type Field struct {
	Name     string
	Type     Type
	Required bool
	// OutputOnly fields are serialized in responses but ignored on input.
	OutputOnly bool
}

// Contract is an ordered set of fields accepted by a write operation.
type Contract []Field

// Errors maps a field name to the list of violations for that field.
type Errors map[string][]string

// Error implements error so a failed validation can travel through error returns.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Validator checks payloads against contracts. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the JSON type tags registered.
func New() *Validator {
	v := validator.New()
	// Registration only fails for empty or reserved tag names.
	mustRegister(v, tagPresent, func(validator.FieldLevel) bool { return true })
	mustRegister(v, tagString, isJSONString)
	mustRegister(v, tagNumber, isJSONNumber)
	mustRegister(v, tagInteger, isJSONInteger)
	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate checks payload against contract. It returns nil when the payload satisfies the
// contract, otherwise the violations keyed by field name.
func (v *Validator) Validate(contract Contract, payload any) Errors {
	data, ok := payload.(map[string]any)
	if !ok {
		return Errors{SchemaKey: {MsgInvalidInput}}
	}

	errs := Errors{}
	known := make(map[string]struct{}, len(contract))
	rules := make(map[string]any, len(contract))
	for _, f := range contract {
		known[f.Name] = struct{}{}
		if f.OutputOnly {
			continue
		}
		_, present := data[f.Name]
		if !f.Required && !present {
			continue
		}
		rules[f.Name] = tagPresent + "," + typeTag(f.Type)
	}

	for field, err := range v.validate.ValidateMap(data, rules) {
		_, present := data[field]
		for _, msg := range messages(err, present) {
			errs.add(field, msg)
		}
	}

	for field := range data {
		if _, ok := known[field]; !ok {
			errs.add(field, MsgUnknownField)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func typeTag(t Type) string {
	switch t {
	case Number:
		return tagNumber
	case Integer:
		return tagInteger
	default:
		return tagString
	}
}

// messages translates validator errors for a single field.
func messages(err any, present bool) []string {
	e, ok := err.(error)
	if !ok {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(e, &fieldErrs) {
		return []string{e.Error()}
	}
	out := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case tagPresent:
			// A nil value with the key present is an explicit JSON null.
			if present {
				out = append(out, MsgNull)
			} else {
				out = append(out, MsgMissing)
			}
		case tagString:
			out = append(out, MsgInvalidString)
		case tagNumber:
			out = append(out, MsgInvalidNumber)
		case tagInteger:
			out = append(out, MsgInvalidInt)
		default:
			out = append(out, "failed on rule: "+fe.Tag())
		}
	}
	return out
}

var jsonNumberType = reflect.TypeOf(json.Number(""))

func isJSONString(fl validator.FieldLevel) bool {
	f := fl.Field()
	return f.Kind() == reflect.String && f.Type() != jsonNumberType
}

func isJSONNumber(fl validator.FieldLevel) bool {
	_, ok := toFloat(fl.Field().Interface())
	return ok
}

func isJSONInteger(fl validator.FieldLevel) bool {
	_, ok := toInt(fl.Field().Interface())
	return ok
}

// toFloat accepts JSON numbers and numeric strings. Booleans, NaN and infinities are rejected.
func toFloat(v any) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch n := v.(type) {
	case json.Number:
		f, err = n.Float64()
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// toInt accepts integral JSON numbers and integer strings.
func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
	case int:
		return int64(n), true
	case int64:
		return n, true
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return i, true
		}
	}
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
