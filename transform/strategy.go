package transform

import (
	"context"
	"sort"

	"github.com/go-playground/validator/v10"
)

// ValidatorStrategy is the default transform strategy. It checks the plain
// object against the target's declared rules with go-playground/validator
// before assigning any field.
type ValidatorStrategy struct {
	validate *validator.Validate
}

// NewValidatorStrategy creates a strategy with a fresh validator instance.
func NewValidatorStrategy() *ValidatorStrategy {
	return &ValidatorStrategy{validate: validator.New()}
}

// Transform implements Strategy. Fields are assigned in sorted name order
// so event emission during construction is deterministic.
func (s *ValidatorStrategy) Transform(ctx context.Context, target Target, plain map[string]any) error {
	if target == nil {
		return ErrNilTarget
	}

	rules := target.ValidationRules()
	if len(rules) > 0 {
		ruleSet := make(map[string]any, len(rules))
		for field, rule := range rules {
			ruleSet[field] = rule
		}
		if failed := s.validate.ValidateMapCtx(ctx, plain, ruleSet); len(failed) > 0 {
			return newValidationError(plain, failed)
		}
	}

	names := make([]string, 0, len(plain))
	for name := range plain {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		target.Set(name, plain[name])
	}
	return nil
}

// newValidationError flattens validator's per-field results into a single
// ValidationError sorted by field name.
func newValidationError(plain map[string]any, failed map[string]any) *ValidationError {
	verr := &ValidationError{}
	fields := make([]string, 0, len(failed))
	for field := range failed {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		switch res := failed[field].(type) {
		case validator.ValidationErrors:
			for _, fe := range res {
				verr.Fields = append(verr.Fields, FieldError{
					Field:      field,
					Constraint: fe.Tag(),
					Value:      plain[field],
				})
			}
		case error:
			verr.Fields = append(verr.Fields, FieldError{
				Field:      field,
				Constraint: res.Error(),
				Value:      plain[field],
			})
		}
	}
	return verr
}
