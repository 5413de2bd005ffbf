package core

// Args is the named-argument form accepted by a dispatcher. A plain
// map[string]any is treated the same way.
type Args = map[string]any

// Convention identifies how a dispatcher interpreted its arguments.
//
// Resolution is a fixed priority order: Single first, then Named, then
// Positional. See resolveConvention.
type Convention int

const (
	// Positional binds the arguments to the fields in declared order.
	Positional Convention = iota
	// Single binds the only argument to the only field, even when it is a map.
	Single
	// Named binds the fields by looking up each name in a single mapping argument.
	Named
)

func (c Convention) String() string {
	switch c {
	case Single:
		return "single"
	case Named:
		return "named"
	default:
		return "positional"
	}
}

// Method is an instance method supplied by a concrete class.
type Method func(self *Instance) (any, error)

// Methods is the instance-method table of a concrete class, keyed by method name.
type Methods map[string]Method

// Hasher is implemented by values that provide their own hash. A type implementing
// Hasher must hash equal values (as decided by its Equal method) identically.
type Hasher interface {
	HashCode() uint64
}
