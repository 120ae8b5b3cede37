// Package validate evaluates declaration invariants and aggregates violations.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/voxtype/voxgen/internal/options"
)

// Violation names one violated invariant by declaration field path.
type Violation struct {
	FieldPath string
	Reason    string
}

// Error aggregates every violation found in a single validation pass.
type Error struct {
	Violations []Violation
}

// Error renders all violations, one per line, field path first.
func (e *Error) Error() string {
	lines := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		lines = append(lines, fmt.Sprintf("%s: %s", v.FieldPath, v.Reason))
	}
	return "invalid declaration:\n  " + strings.Join(lines, "\n  ")
}

// structValidator reports field paths using yaml tag names so violations match
// the declaration document the user wrote.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		tag := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return field.Name
		}
		return tag
	})
	return v
}

// Check evaluates every declared invariant over the fully merged tree and
// returns nil or a *Error carrying the complete ordered violation set. No
// check has side effects and none short-circuits.
func Check(opts options.Options) error {
	var violations []Violation

	if err := structValidator.Struct(opts); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate declaration: %w", err)
		}
		for _, fe := range fieldErrs {
			violations = append(violations, Violation{
				FieldPath: fieldPath(fe),
				Reason:    reason(fe),
			})
		}
	}

	violations = append(violations, crossFieldViolations(opts)...)

	if len(violations) == 0 {
		return nil
	}
	return &Error{Violations: violations}
}

// fieldPath strips the root struct segment from the tag-named namespace,
// yielding dotted paths like audio.feedback.volume.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must be set"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return fmt.Sprintf("failed %q constraint", fe.Tag())
	}
}

// crossFieldViolations covers invariants spanning more than one field.
func crossFieldViolations(opts options.Options) []Violation {
	var violations []Violation

	if _, err := opts.Model.Selection(); err != nil {
		violations = append(violations, Violation{
			FieldPath: "model",
			Reason:    err.Error(),
		})
	}

	for _, m := range opts.Hotkey.Modifiers {
		if _, known := options.Modifiers[m]; !known {
			violations = append(violations, Violation{
				FieldPath: "hotkey.modifiers",
				Reason:    fmt.Sprintf("unknown modifier %q", m),
			})
		}
	}

	if opts.StateFile.Enable && strings.TrimSpace(opts.StateFile.Path) == "" {
		violations = append(violations, Violation{
			FieldPath: "state_file.path",
			Reason:    "must be set when state_file.enable is true",
		})
	}

	if opts.Output.PostCommand != "" {
		argv, err := options.ParseArgv(opts.Output.PostCommand)
		if err != nil {
			violations = append(violations, Violation{
				FieldPath: "output.post_command",
				Reason:    err.Error(),
			})
		} else if len(argv) == 0 {
			violations = append(violations, Violation{
				FieldPath: "output.post_command",
				Reason:    "configured but resolves to an empty command",
			})
		}
	}

	return violations
}
