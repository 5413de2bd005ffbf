package methodstruct

import "github.com/chriso345/methodstruct/core"

// Struct is a generated base: an ordered set of field names plus the name of
// the dispatch method.
//
// It is produced by New or FromStruct and never changes afterwards. A Struct
// can build instances directly, but it defines no instance methods; concrete
// classes that respond to the dispatcher are derived with Extend.
//
// Usage:
//
//	point, err := methodstruct.New([]string{"x", "y"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	p, _ := point.New(1, 2)
//	fmt.Println(p) // Struct(x: 1, y: 2)
type Struct = core.Struct

// Class is a concrete class derived from a Struct. It owns the instance
// methods and is the unit of identity for equality: two instances are only
// ever equal when they were built by the same Class.
//
// Usage:
//
//	adder := point.Extend("Adder", methodstruct.Methods{
//	    "call": func(self *methodstruct.Instance) (any, error) {
//	        x, _ := self.Get("x")
//	        y, _ := self.Get("y")
//	        return x.(int) + y.(int), nil
//	    },
//	})
//
//	sum, err := adder.Call(1, 2)                                 // 3
//	sum, err = adder.Call(methodstruct.Args{"x": 1, "y": 2}) // 3
type Class = core.Class

// Instance is an immutable value with one value per declared field.
type Instance = core.Instance

// Method is an instance method. It receives the freshly built instance.
type Method = core.Method

// Methods maps method names to their implementations.
type Methods = core.Methods

// Args is the named-argument form of a dispatcher call.
//
// A single Args argument is bound by field name, unless the struct declares
// exactly one field, in which case the map itself becomes that field's value.
type Args = core.Args

// Option configures New and FromStruct.
type Option = core.Option

// Convention reports how a dispatcher bound its arguments.
type Convention = core.Convention

// Hasher lets a value with its own Equal method contribute to HashCode.
type Hasher = core.Hasher

const (
	Positional = core.Positional
	Single     = core.Single
	Named      = core.Named
)

// DefaultMethodName is the dispatch method name used unless WithMethodName is given.
const DefaultMethodName = core.DefaultMethodName
