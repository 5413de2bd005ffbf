package methodstruct

import "github.com/chriso345/methodstruct/core"

// New creates a generated base with the given ordered field names.
//
// The field list must be non-empty and must not contain empty or duplicate
// names; otherwise New returns an errors.ConfigurationError.
//
// Example:
//
//	poker, err := methodstruct.New([]string{"x", "y"}, methodstruct.WithMethodName("something"))
//	if err != nil {
//		log.Fatal(err)
//	}
var New = core.New

// FromStruct creates a generated base whose fields mirror the exported fields
// of a Go struct, in declaration order.
//
// The `field` struct tag renames a field and `field:"-"` skips it. Untagged
// fields use the lower-cased Go field name.
//
// Example:
//
//	type Point struct {
//		X int
//		Y int `field:"ordinate"`
//	}
//
//	base, err := methodstruct.FromStruct(Point{}) // fields: x, ordinate
var FromStruct = core.FromStruct

// WithMethodName sets the name under which the dispatcher is reachable and
// which instance method it invokes. The default is "call".
var WithMethodName = core.WithMethodName

// WithName sets the display name of the generated base.
var WithName = core.WithName

// WithLogger sets a go-kit logger for debug tracing of definitions and dispatches.
var WithLogger = core.WithLogger
