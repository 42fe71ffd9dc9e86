package plan

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"mapper-generator/internal/common"
	"mapper-generator/internal/diagnostic"
	"mapper-generator/internal/options"
)

// ErrValidation is the sentinel every ValidationError unwraps to.
var ErrValidation = errors.New("invalid mapping request")

// ValidationError reports the request field that blocked generation.
type ValidationError struct {
	// Field is the offending request field (e.g. "method", "source.name").
	Field string
	// Message describes what is wrong with it.
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Message)
}

// Unwrap returns ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ValidationDiagnostics reports err as a validation error diagnostic of
// method. ok is false when err is not a *ValidationError.
func ValidationDiagnostics(method string, err error) (diags diagnostic.Diagnostics, ok bool) {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return diags, false
	}

	diags.AddError(diagnostic.CodeValidation, ve.Message, method, ve.Field)

	return diags, true
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the request invariants and returns the first violation as
// a *ValidationError. maxFields caps each field list; zero disables the cap.
func Validate(req Request, maxFields int) error {
	if common.IsBlank(req.Method) {
		return invalid("method", "method name is required")
	}

	if common.IsBlank(req.Source.Name) {
		return invalid("source.name", "source type name is required")
	}

	if common.IsBlank(req.Destination.Name) {
		return invalid("destination.name", "destination type name is required")
	}

	if !req.Style.Valid() {
		return invalid("style", "unsupported style %s", req.Style)
	}

	if !req.Policy.Valid() {
		return invalid("policy", "unsupported policy %s", req.Policy)
	}

	if !req.Dialect.Valid() {
		return invalid("dialect", "unsupported dialect %s", req.Dialect)
	}

	if err := validateFields("source.fields", req.Source.Fields, maxFields); err != nil {
		return err
	}

	if err := validateFields("destination.fields", req.Destination.Fields, maxFields); err != nil {
		return err
	}

	if req.Dialect == options.DialectGo {
		return validateGoNames(req)
	}

	return nil
}

func validateFields(field string, names []string, maxFields int) error {
	if maxFields > 0 && len(names) > maxFields {
		return invalid(field, "%d fields exceed the limit of %d", len(names), maxFields)
	}

	for i, name := range names {
		if common.IsBlank(name) {
			return invalid(fmt.Sprintf("%s[%d]", field, i), "field name is empty")
		}

		// The unmapped placeholder is a block comment.
		if strings.Contains(name, "*/") {
			return invalid(fmt.Sprintf("%s[%d]", field, i), "field name %q contains \"*/\"", name)
		}
	}

	return nil
}

// validateGoNames rejects names gofmt could not print as a declaration.
func validateGoNames(req Request) error {
	if !token.IsIdentifier(req.Method) {
		return invalid("method", "%q is not a Go identifier", req.Method)
	}

	if !isQualifiedIdent(req.Source.Name) {
		return invalid("source.name", "%q is not a Go type name", req.Source.Name)
	}

	if !isQualifiedIdent(req.Destination.Name) {
		return invalid("destination.name", "%q is not a Go type name", req.Destination.Name)
	}

	for _, ref := range []struct {
		field  string
		fields []string
	}{
		{"source.fields", req.Source.Fields},
		{"destination.fields", req.Destination.Fields},
	} {
		for i, name := range ref.fields {
			if !token.IsIdentifier(name) {
				return invalid(fmt.Sprintf("%s[%d]", ref.field, i), "%q is not a Go identifier", name)
			}
		}
	}

	return nil
}

// isQualifiedIdent accepts "T" and "pkg.T".
func isQualifiedIdent(s string) bool {
	pkg, name, found := strings.Cut(s, ".")
	if !found {
		return token.IsIdentifier(s)
	}

	return token.IsIdentifier(pkg) && token.IsIdentifier(name)
}
