package domain

import "fmt"

// ValidationError marks a request missing a required field. Handlers
// map it to a 400; everything else coming out of a usecase is treated
// as a storage failure and mapped to a 500.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return "missing required fields"
	}
	return fmt.Sprintf("missing %s", e.Field)
}

// Is enables errors.Is matching on ValidationError.
func (e ValidationError) Is(target error) bool {
	_, ok := target.(ValidationError)
	if ok {
		return true
	}
	_, ok = target.(*ValidationError)
	return ok
}

// ErrValidation is the sentinel error for missing request fields.
var ErrValidation = ValidationError{}
