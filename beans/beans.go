// Package beans implements the getter/setter naming convention for
// properties described by typedesc Nodes.
package beans

import (
	"unicode"
	"unicode/utf8"

	"github.com/broady/bricks/typedesc"
)

// Property is a named, typed field.
type Property struct {
	Name string
	Type typedesc.Node
}

// Method is a method signature. A nil Returns means the method returns
// nothing, the same as typedesc.Void().
type Method struct {
	Name    string
	Returns typedesc.Node
	Params  []typedesc.Node
}

// GetterName returns the getter name for a field of type t: "isX" for a
// primitive boolean, "getX" otherwise.
func GetterName(field string, t typedesc.Node) string {
	if p, ok := t.(*typedesc.PrimitiveNode); ok && (p.Name == "boolean" || p.Name == "bool") {
		return "is" + capitalize(field)
	}
	return "get" + capitalize(field)
}

// SetterName returns the setter name for a field.
func SetterName(field string) string {
	return "set" + capitalize(field)
}

var booleanNames = map[string]bool{
	"java.lang.Boolean": true,
	"*bool":             true,
}

// IsBoolean reports whether d boxes to a boolean.
func IsBoolean(d *typedesc.Descriptor) bool {
	return d != nil && !d.IsArray() && booleanNames[d.BoxedName()]
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
