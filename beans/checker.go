package beans

import (
	"fmt"

	"github.com/broady/bricks/typedesc"
)

// Checker validates accessors against the properties they belong to.
type Checker struct {
	// Resolver compares types. Nil means typedesc.Java().
	Resolver *typedesc.Resolver
}

// IsAccessor reports whether m is a getter or setter of p.
//
// A getter is "getX", or "isX" returning a boolean, with no parameters and
// the property's type as result. A setter is "setX" returning nothing with a
// single parameter of the property's type.
func (c Checker) IsAccessor(p Property, m Method) bool {
	name := capitalize(p.Name)

	if m.Name == "get"+name || (m.Name == "is"+name && c.isBoolean(m.Returns)) {
		if len(m.Params) == 0 && c.sameType(p.Type, m.Returns) {
			return true
		}
	}

	return m.Name == "set"+name &&
		isVoid(m.Returns) &&
		len(m.Params) == 1 &&
		c.sameType(p.Type, m.Params[0])
}

// Violation is an accessor-named method whose signature does not match its
// property.
type Violation struct {
	Property string `json:"property" yaml:"property"`
	Method   string `json:"method" yaml:"method"`
	Reason   string `json:"reason" yaml:"reason"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s %s", v.Property, v.Method, v.Reason)
}

// Check returns a Violation for every method that is named like an accessor
// of one of props but fails IsAccessor.
func (c Checker) Check(props []Property, methods []Method) []Violation {
	var out []Violation
	for _, p := range props {
		name := capitalize(p.Name)
		for _, m := range methods {
			if m.Name != "get"+name && m.Name != "is"+name && m.Name != "set"+name {
				continue
			}
			if c.IsAccessor(p, m) {
				continue
			}
			out = append(out, Violation{
				Property: p.Name,
				Method:   m.Name,
				Reason:   c.reason(p, m),
			})
		}
	}
	return out
}

func (c Checker) reason(p Property, m Method) string {
	switch {
	case m.Name == "set"+capitalize(p.Name) && !isVoid(m.Returns):
		return "must not return a value"
	case m.Name == "set"+capitalize(p.Name) && len(m.Params) != 1:
		return fmt.Sprintf("takes %d parameters, want 1", len(m.Params))
	case m.Name == "set"+capitalize(p.Name):
		return fmt.Sprintf("parameter is %s, want %s", m.Params[0], p.Type)
	case len(m.Params) != 0:
		return fmt.Sprintf("takes %d parameters, want 0", len(m.Params))
	case m.Name == "is"+capitalize(p.Name) && !c.isBoolean(m.Returns):
		return "is-getter must return a boolean"
	default:
		return fmt.Sprintf("returns %s, want %s", describe(m.Returns), p.Type)
	}
}

func (c Checker) resolver() *typedesc.Resolver {
	if c.Resolver != nil {
		return c.Resolver
	}
	return typedesc.Java()
}

func (c Checker) isBoolean(n typedesc.Node) bool {
	if n == nil {
		return false
	}
	d, err := c.resolver().Resolve(n)
	return err == nil && IsBoolean(d)
}

// sameType compares descriptors. Types without a descriptor, such as type
// variables, compare by their rendered node.
func (c Checker) sameType(a, b typedesc.Node) bool {
	if a == nil || b == nil {
		return false
	}
	r := c.resolver()
	da, errA := r.Resolve(a)
	db, errB := r.Resolve(b)
	if errA == nil && errB == nil {
		return da.Equal(db)
	}
	if errA == nil || errB == nil {
		return false
	}
	return a.String() == b.String()
}

func isVoid(n typedesc.Node) bool {
	return n == nil || typedesc.IsVoid(n)
}

func describe(n typedesc.Node) string {
	if n == nil {
		return "void"
	}
	return n.String()
}
