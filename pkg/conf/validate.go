package conf

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// ValidationError is a single schema violation.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of schema violations.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString("  ")
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Validator checks a config's settings against a CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator compiles the given CUE schema source.
func NewValidator(schema []byte) (*Validator, error) {
	ctx := cuecontext.New()

	compiled := ctx.CompileBytes(schema)
	if compiled.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", compiled.Err())
	}

	return &Validator{ctx: ctx, schema: compiled}, nil
}

// Validate unifies the config's settings with the schema and reports every
// violation.
func (v *Validator) Validate(c *Config) error {
	value := v.ctx.Encode(c.AllSettings())
	if value.Err() != nil {
		return fmt.Errorf("encoding settings: %w", value.Err())
	}

	unified := v.schema.Unify(value)
	err := unified.Validate(cue.Concrete(false))
	if err == nil {
		return nil
	}

	var errs ValidationErrors
	for _, e := range cueerrors.Errors(err) {
		errs = append(errs, ValidationError{
			Field:   strings.Join(e.Path(), "."),
			Message: e.Error(),
		})
	}
	return errs
}
