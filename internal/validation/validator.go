// Package validation is the request-shape guard that runs before any side effect.
//
// It wraps a single go-playground/validator instance and translates failing
// fields into the fixed, human-readable messages the API documents.
package validation

import (
	"errors"
	"math"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		// nonintegral rejects floats without a fractional part, e.g. 8 or 41.
		_ = instance.RegisterValidation("nonintegral", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return f != math.Trunc(f)
		})
	})
	return instance
}

// Messages validates s and returns one message per failing field, in struct
// field order. messages maps a struct field name to the message reported for
// it; unmapped fields fall back to "<field> is invalid.".
func Messages(s any, messages map[string]string) []string {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	seen := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		if seen[fe.Field()] {
			continue
		}
		seen[fe.Field()] = true
		if msg, ok := messages[fe.Field()]; ok {
			out = append(out, msg)
			continue
		}
		out = append(out, fe.Field()+" is invalid.")
	}
	return out
}
