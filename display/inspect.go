package display

import (
	"fmt"
	"strings"
)

// BuildInstance renders an instance as `Name(x: 1, y: 2)`. Values are printed with
// %#v for strings and %v otherwise, so that `"1"` and `1` stay distinguishable.
func BuildInstance(className string, fields []string, values []any) string {
	var builder strings.Builder
	builder.WriteString(className)
	builder.WriteString("(")
	for i, name := range fields {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(name)
		builder.WriteString(": ")
		if i < len(values) {
			builder.WriteString(formatValue(values[i]))
		}
	}
	builder.WriteString(")")
	return builder.String()
}

// BuildDeclaration renders a field declaration as `Name[x, y] .call`.
func BuildDeclaration(name string, fields []string, method string) string {
	return fmt.Sprintf("%s[%s] .%s", name, strings.Join(fields, ", "), method)
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
