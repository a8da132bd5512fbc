package typedesc

import "strings"

// NodeKind identifies the category of a type-system node.
type NodeKind int

const (
	KindOther NodeKind = iota // void, type variables, error types and anything else
	KindPrimitive
	KindArray
	KindDeclared // class or interface
	KindWildcard
)

// String returns the string representation of the node kind.
func (k NodeKind) String() string {
	switch k {
	case KindOther:
		return "Other"
	case KindPrimitive:
		return "Primitive"
	case KindArray:
		return "Array"
	case KindDeclared:
		return "Declared"
	case KindWildcard:
		return "Wildcard"
	default:
		return "Unknown"
	}
}

// Node is a read-only view of one type usage as reported by a type system.
// The set of implementations is closed: *PrimitiveNode, *ArrayNode,
// *DeclaredNode, *WildcardNode and *OtherNode.
type Node interface {
	// Kind returns the node kind for type switching.
	Kind() NodeKind

	// String returns the textual form of the type, as the type system would print it.
	String() string

	// Ensure only types in this package can implement Node.
	sealed()
}

// PrimitiveNode is a primitive type such as int or boolean.
type PrimitiveNode struct {
	Name string
}

func (n *PrimitiveNode) Kind() NodeKind { return KindPrimitive }
func (n *PrimitiveNode) String() string { return n.Name }
func (*PrimitiveNode) sealed()          {}

// ArrayNode is an array of Component.
type ArrayNode struct {
	Component Node
}

func (n *ArrayNode) Kind() NodeKind { return KindArray }
func (n *ArrayNode) String() string {
	if n.Component == nil {
		return "[]"
	}
	return n.Component.String() + "[]"
}
func (*ArrayNode) sealed() {}

// DeclaredNode names a class or interface, possibly parameterized.
type DeclaredNode struct {
	// Name is the canonical base name, without type arguments.
	Name string

	// Args are the type arguments in declaration order.
	Args []Node

	// Abstract is set when the declaration is abstract. Interfaces are abstract.
	Abstract bool

	// Interface is set when the declaration is an interface.
	Interface bool
}

func (n *DeclaredNode) Kind() NodeKind { return KindDeclared }
func (n *DeclaredNode) String() string {
	if len(n.Args) == 0 {
		return n.Name
	}
	return n.Name + "<" + joinNodes(n.Args) + ">"
}
func (*DeclaredNode) sealed() {}

// WildcardNode is a type argument placeholder. At most one of Extends and
// Super is set; neither is set for an unbounded wildcard.
type WildcardNode struct {
	Extends Node
	Super   Node
}

func (n *WildcardNode) Kind() NodeKind { return KindWildcard }
func (n *WildcardNode) String() string {
	switch {
	case n.Super != nil:
		return "? super " + n.Super.String()
	case n.Extends != nil:
		return "? extends " + n.Extends.String()
	default:
		return "?"
	}
}
func (*WildcardNode) sealed() {}

// SuperBounded reports whether the wildcard has a lower bound.
func (n *WildcardNode) SuperBounded() bool { return n.Super != nil }

// OtherNode is any type with no structural description here:
// void, type variables, error types, function types and so on.
type OtherNode struct {
	Name string
}

func (n *OtherNode) Kind() NodeKind { return KindOther }
func (n *OtherNode) String() string { return n.Name }
func (*OtherNode) sealed()          {}

// Primitive returns a PrimitiveNode.
func Primitive(name string) *PrimitiveNode {
	return &PrimitiveNode{Name: name}
}

// ArrayOf returns an ArrayNode of component.
func ArrayOf(component Node) *ArrayNode {
	return &ArrayNode{Component: component}
}

// Declared returns a concrete class DeclaredNode.
func Declared(name string, args ...Node) *DeclaredNode {
	return &DeclaredNode{Name: name, Args: args}
}

// Interface returns a DeclaredNode for an interface.
func Interface(name string, args ...Node) *DeclaredNode {
	return &DeclaredNode{Name: name, Args: args, Abstract: true, Interface: true}
}

// Abstract returns a DeclaredNode for an abstract class.
func Abstract(name string, args ...Node) *DeclaredNode {
	return &DeclaredNode{Name: name, Args: args, Abstract: true}
}

// Wildcard returns an unbounded wildcard.
func Wildcard() *WildcardNode {
	return &WildcardNode{}
}

// Extends returns a wildcard bounded above by bound.
func Extends(bound Node) *WildcardNode {
	return &WildcardNode{Extends: bound}
}

// Super returns a wildcard bounded below by bound.
func Super(bound Node) *WildcardNode {
	return &WildcardNode{Super: bound}
}

// Other returns an OtherNode.
func Other(name string) *OtherNode {
	return &OtherNode{Name: name}
}

// Void returns the node for the void pseudo-type.
func Void() *OtherNode {
	return &OtherNode{Name: "void"}
}

// IsVoid reports whether n is the void pseudo-type.
func IsVoid(n Node) bool {
	o, ok := n.(*OtherNode)
	return ok && o.Name == "void"
}

func joinNodes(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		if n == nil {
			parts[i] = "<nil>"
			continue
		}
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}
