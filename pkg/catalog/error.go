package catalog

import "fmt"

// Error is a fatal catalog load error. It names the offending section,
// brand, model, and pattern so a misconfigured catalog is diagnosable
// without grepping YAML. A broken catalog aborts initialization; it is
// never silently skipped.
type Error struct {
	Section Section
	Brand   string
	Model   string
	Pattern string
	Err     error
}

func (e *Error) Error() string {
	loc := fmt.Sprintf("catalog %s: brand %q", e.Section, e.Brand)
	if e.Model != "" {
		loc += fmt.Sprintf(" model %q", e.Model)
	}
	if e.Pattern != "" {
		loc += fmt.Sprintf(" pattern %q", e.Pattern)
	}
	return fmt.Sprintf("%s: %v", loc, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
