package typedesc

import "strings"

// Boxer maps a primitive type to its boxed (reference) equivalent.
// Implementations must be free of side effects; a Resolver may call Box
// concurrently.
type Boxer interface {
	Box(p *PrimitiveNode) (*DeclaredNode, error)
}

// BoxerFunc adapts a function to the Boxer interface.
type BoxerFunc func(p *PrimitiveNode) (*DeclaredNode, error)

// Box calls f(p).
func (f BoxerFunc) Box(p *PrimitiveNode) (*DeclaredNode, error) { return f(p) }

// BoxTable is a Boxer backed by a map from primitive name to the canonical
// name of its boxed class.
type BoxTable map[string]string

// Box looks up p in the table. A primitive with no entry is a contract violation.
func (t BoxTable) Box(p *PrimitiveNode) (*DeclaredNode, error) {
	name, ok := t[p.Name]
	if !ok {
		return nil, contractf(p, "no boxed equivalent for primitive")
	}
	return Declared(name), nil
}

// JavaBoxing boxes the eight Java primitives into their java.lang wrappers.
var JavaBoxing = BoxTable{
	"boolean": "java.lang.Boolean",
	"byte":    "java.lang.Byte",
	"short":   "java.lang.Short",
	"int":     "java.lang.Integer",
	"long":    "java.lang.Long",
	"char":    "java.lang.Character",
	"float":   "java.lang.Float",
	"double":  "java.lang.Double",
}

// GoBoxing boxes a Go basic type into a pointer to it, the nullable
// reference form of a value in Go: int boxes to *int.
var GoBoxing = BoxerFunc(func(p *PrimitiveNode) (*DeclaredNode, error) {
	if p.Name == "" || strings.HasPrefix(p.Name, "*") {
		return nil, contractf(p, "not a basic type name")
	}
	return Declared("*" + p.Name), nil
})

// JavaTopType is the name every Java reference type extends.
const JavaTopType = "java.lang.Object"

// GoTopType is the Go type every type satisfies.
const GoTopType = "any"
