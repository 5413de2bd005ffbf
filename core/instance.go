package core

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/chriso345/methodstruct/display"
	"github.com/chriso345/methodstruct/internal/common"
)

// Instance is an immutable value holding exactly one value per declared field.
type Instance struct {
	class  *Class
	values []any
}

// Class returns the concrete class the instance was built by.
func (i *Instance) Class() *Class { return i.class }

// Len returns the number of fields.
func (i *Instance) Len() int { return len(i.values) }

// Fields returns a copy of the declared field names, in order.
func (i *Instance) Fields() []string { return i.class.base.Fields() }

// Values returns a copy of the field values, in declared order.
func (i *Instance) Values() []any { return append([]any(nil), i.values...) }

// Get returns the value of the named field. The second result is false when
// no such field is declared.
func (i *Instance) Get(name string) (any, bool) {
	idx := common.IndexOf(i.class.base.fields, name)
	if idx < 0 {
		return nil, false
	}
	return i.values[idx], true
}

// At returns the value of the field at position idx in declared order.
// Like slice indexing, it panics when idx is outside [0, Len()).
func (i *Instance) At(idx int) any { return i.values[idx] }

// Decode copies the field values into out, which must be a pointer to a
// struct. Struct fields are matched by their `field` tag, or by name ignoring
// case when untagged.
func (i *Instance) Decode(out any) error {
	if !common.IsStructPtr(out) {
		return errors.Errorf("decode %s: must pass pointer to struct, got %T", i.class.name, out)
	}
	m := make(map[string]any, len(i.values))
	for idx, name := range i.class.base.fields {
		m[name] = i.values[idx]
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: common.FieldTag,
		Result:  out,
	})
	if err != nil {
		return errors.Wrapf(err, "decode %s", i.class.name)
	}
	return errors.Wrapf(dec.Decode(m), "decode %s", i.class.name)
}

func (i *Instance) String() string {
	return display.BuildInstance(i.class.name, i.class.base.fields, i.values)
}
