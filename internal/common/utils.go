package common

import (
	"reflect"
	"sort"
	"strings"
)

// FieldTag is the struct tag consulted when field names are derived from a Go struct.
const FieldTag = "field"

// IndexOf returns the index of the first occurrence of s in names, or -1 if not found.
func IndexOf(names []string, s string) int {
	for i, name := range names {
		if name == s {
			return i
		}
	}
	return -1
}

// FirstDuplicate returns the first name that occurs more than once, or "" if all are unique.
func FirstDuplicate(names []string) string {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			return name
		}
		seen[name] = struct{}{}
	}
	return ""
}

// KeyDiff compares the keys of m against the declared names. Both results are sorted.
func KeyDiff(names []string, m map[string]any) (missing, unexpected []string) {
	declared := make(map[string]struct{}, len(names))
	for _, name := range names {
		declared[name] = struct{}{}
		if _, ok := m[name]; !ok {
			missing = append(missing, name)
		}
	}
	for k := range m {
		if _, ok := declared[k]; !ok {
			unexpected = append(unexpected, k)
		}
	}
	sort.Strings(missing)
	sort.Strings(unexpected)
	return missing, unexpected
}

// IsStructPtr checks if the provided value is a pointer to a struct.
func IsStructPtr(v any) bool {
	t := reflect.TypeOf(v)
	return t != nil && t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct
}

// StructType returns the struct type of v, dereferencing one level of pointer.
// The second result is false when v is neither a struct nor a pointer to one.
func StructType(v any) (reflect.Type, bool) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t, t.Kind() == reflect.Struct
}

// FieldNames returns the declared field names of a struct type: exported fields in
// order, named by the `field` tag when present or the lower-cased Go name otherwise.
// Fields tagged `field:"-"` are skipped. Options after a comma are ignored, as
// mapstructure does when decoding.
func FieldNames(t reflect.Type) []string {
	var names []string
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(field.Tag.Get(FieldTag), ",")
		switch tag {
		case "-":
			continue
		case "":
			names = append(names, strings.ToLower(field.Name))
		default:
			names = append(names, tag)
		}
	}
	return names
}
