package core

import (
	"maps"

	"github.com/google/uuid"

	"github.com/chriso345/methodstruct/errors"
)

// Class is a concrete class: a generated base together with the instance
// methods it responds to. Equality of instances is scoped to the class.
type Class struct {
	id      uuid.UUID
	name    string
	base    *Struct
	methods Methods
}

func newClass(base *Struct, name string, methods Methods) *Class {
	return &Class{
		id:      uuid.New(),
		name:    name,
		base:    base,
		methods: maps.Clone(methods),
	}
}

// ID returns the identity of the class.
func (c *Class) ID() uuid.UUID { return c.id }

// Name returns the display name of the class.
func (c *Class) Name() string { return c.name }

// Base returns the generated base the class was derived from.
func (c *Class) Base() *Struct { return c.base }

// RespondsTo reports whether the class defines the named instance method.
func (c *Class) RespondsTo(method string) bool {
	return c.methods[method] != nil
}

// New builds an instance binding values to the declared fields in order.
// The number of values must match the number of fields.
func (c *Class) New(values ...any) (*Instance, error) {
	if len(values) != len(c.base.fields) {
		return nil, errors.NewArity(len(c.base.fields), len(values))
	}
	return &Instance{class: c, values: append([]any(nil), values...)}, nil
}

// Send invokes the named instance method on inst, which must belong to c.
func (c *Class) Send(inst *Instance, method string) (any, error) {
	fn := c.methods[method]
	if fn == nil {
		return nil, errors.NewUndefinedMethod(c.name, method)
	}
	if inst == nil || inst.class != c {
		return nil, errors.ArgumentError{Msg: "instance does not belong to " + c.name}
	}
	return fn(inst)
}

func (c *Class) String() string { return c.name }
