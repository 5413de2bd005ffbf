package core

import (
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/chriso345/methodstruct/display"
	"github.com/chriso345/methodstruct/errors"
	"github.com/chriso345/methodstruct/internal/common"
)

// DefaultMethodName is the dispatch method name used when WithMethodName is not given.
const DefaultMethodName = "call"

// Struct is a generated base: an ordered field declaration plus the name of
// the dispatch method. It is immutable once New returns.
//
// A Struct is itself a concrete class without instance methods, so instances
// can be built and compared directly on it. Concrete classes that respond to
// the dispatcher are derived with Extend.
type Struct struct {
	fields     []string
	methodName string
	logger     log.Logger
	root       *Class
}

type config struct {
	methodName string
	name       string
	logger     log.Logger
}

// Option configures a generated base.
type Option func(*config)

// WithMethodName sets the name of both the dispatcher and the instance method
// concrete classes must define. The default is "call".
func WithMethodName(name string) Option {
	return func(c *config) { c.methodName = name }
}

// WithName sets the display name of the generated base. The default is "Struct".
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithLogger sets the logger used for debug tracing. The default discards everything.
func WithLogger(logger log.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// New creates a generated base with the given ordered field names.
//
// The field list must be non-empty and contain no empty or duplicate names,
// otherwise a ConfigurationError is returned.
func New(fields []string, opts ...Option) (*Struct, error) {
	cfg := config{methodName: DefaultMethodName, name: "Struct", logger: log.NewNopLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(fields) == 0 {
		return nil, errors.NewConfiguration("at least one field must be declared")
	}
	if common.IndexOf(fields, "") >= 0 {
		return nil, errors.NewConfiguration("field names must not be empty")
	}
	if dup := common.FirstDuplicate(fields); dup != "" {
		return nil, errors.NewConfiguration("duplicate field %q", dup)
	}
	if cfg.methodName == "" {
		return nil, errors.NewConfiguration("method name must not be empty")
	}
	if cfg.logger == nil {
		cfg.logger = log.NewNopLogger()
	}

	s := &Struct{
		fields:     append([]string(nil), fields...),
		methodName: cfg.methodName,
		logger:     cfg.logger,
	}
	s.root = newClass(s, cfg.name, nil)

	level.Debug(s.logger).Log("msg", "struct defined", "name", cfg.name, "fields", strings.Join(s.fields, ","), "method", s.methodName)
	return s, nil
}

// FromStruct creates a generated base whose fields are derived from the
// exported fields of a Go struct (or pointer to one), in declaration order.
// The `field` tag overrides a name and `field:"-"` skips the field; untagged
// fields use the lower-cased Go name. The Go type name becomes the display name
// unless WithName is given.
func FromStruct(v any, opts ...Option) (*Struct, error) {
	t, ok := common.StructType(v)
	if !ok {
		return nil, errors.NewConfiguration("invalid type: must pass struct or pointer to struct, got %T", v)
	}
	if t.Name() != "" {
		opts = append([]Option{WithName(t.Name())}, opts...)
	}
	return New(common.FieldNames(t), opts...)
}

// Fields returns a copy of the declared field names, in order.
func (s *Struct) Fields() []string { return append([]string(nil), s.fields...) }

// MethodName returns the configured dispatch method name.
func (s *Struct) MethodName() string { return s.methodName }

// Class returns the generated base's own class.
func (s *Struct) Class() *Class { return s.root }

// Extend derives a concrete class with the given instance methods. Every call
// returns a distinct class: instances of two classes never compare equal.
// An empty name inherits the base's display name.
func (s *Struct) Extend(name string, methods Methods) *Class {
	if name == "" {
		name = s.root.name
	}
	c := newClass(s, name, methods)
	level.Debug(s.logger).Log("msg", "class extended", "base", s.root.name, "class", name, "responds", c.RespondsTo(s.methodName))
	return c
}

// New builds an instance of the generated base itself. See Class.New.
func (s *Struct) New(values ...any) (*Instance, error) { return s.root.New(values...) }

func (s *Struct) String() string {
	return display.BuildDeclaration(s.root.name, s.fields, s.methodName)
}
