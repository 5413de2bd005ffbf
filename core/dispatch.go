package core

import (
	"github.com/go-kit/log/level"

	"github.com/chriso345/methodstruct/errors"
	"github.com/chriso345/methodstruct/internal/common"
)

// resolveConvention decides how args bind to fields:
//
//  1. one field and one argument: Single, even when the argument is a map
//  2. one argument that is an Args map: Named
//  3. anything else: Positional
func resolveConvention(fieldCount int, args []any) Convention {
	if len(args) != 1 {
		return Positional
	}
	if fieldCount == 1 {
		return Single
	}
	if _, ok := args[0].(Args); ok {
		return Named
	}
	return Positional
}

// bind turns dispatcher arguments into ordered field values.
func (c *Class) bind(conv Convention, args []any) ([]any, error) {
	if conv != Named {
		return args, nil
	}
	named := args[0].(Args)
	fields := c.base.fields
	if missing, unexpected := common.KeyDiff(fields, named); len(missing) > 0 || len(unexpected) > 0 {
		return nil, errors.NewKeyMismatch(missing, unexpected)
	}
	values := make([]any, len(fields))
	for i, name := range fields {
		values[i] = named[name]
	}
	return values, nil
}

// Invoke is the class-level dispatcher. It exists only under the configured
// method name: any other name fails with an UndefinedMethodError.
//
// The arguments are bound to the fields positionally or, for a single Args
// map, by name; an instance is constructed and the instance method of the same
// name is invoked on it exactly once. Its result and error are returned unchanged.
func (c *Class) Invoke(method string, args ...any) (any, error) {
	if method != c.base.methodName {
		return nil, errors.NewUndefinedMethod(c.name, method)
	}
	fn := c.methods[method]
	if fn == nil {
		return nil, errors.NewUndefinedMethod(c.name, method)
	}

	conv := resolveConvention(len(c.base.fields), args)
	level.Debug(c.base.logger).Log("msg", "dispatch", "class", c.name, "method", method, "convention", conv, "args", len(args))

	values, err := c.bind(conv, args)
	if err != nil {
		return nil, err
	}
	inst, err := c.New(values...)
	if err != nil {
		return nil, err
	}
	return fn(inst)
}

// Call dispatches under the configured method name. See Invoke.
func (c *Class) Call(args ...any) (any, error) {
	return c.Invoke(c.base.methodName, args...)
}
