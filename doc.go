// Package methodstruct builds small immutable value objects with a declared,
// ordered set of named fields, structural equality and a single call-style
// entry point.
//
// A generated base is created from a list of field names. Concrete classes
// derived from it supply an instance method, and the class-level dispatcher
// accepts either positional values or one Args map keyed by field name,
// constructs an instance and invokes that method on it.
//
// Instances are equal only when they come from the same concrete class and
// hold pairwise equal values; HashCode agrees with Equal.
package methodstruct
