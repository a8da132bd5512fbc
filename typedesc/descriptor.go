// Package typedesc builds canonical, serializable descriptions of type
// references taken from a compile-time type system.
//
// A type system binding (see package provider) hands the Resolver a Node tree.
// The Resolver walks it and produces a Descriptor: an immutable value carrying
// the raw and boxed names of the type, its array-ness, primitive-ness,
// abstractness and interface-ness, and the descriptors of its type arguments.
// Render and RenderBoxed turn a Descriptor back into text.
package typedesc

import (
	"fmt"
	"slices"
	"strings"
)

// Descriptor is the resolved, structural description of a single type
// reference. It holds no reference to the node it was built from and is safe
// to share between goroutines.
type Descriptor struct {
	rawName    string
	boxedName  string
	primitive  bool
	dimensions int
	abstract   bool
	iface      bool
	generics   []*Descriptor
}

// Fields is the editable form of a Descriptor, used to construct one with Build.
type Fields struct {
	// RawName is the canonical unparameterized name (e.g. "java.util.List", "int").
	RawName string

	// BoxedName is the name of the reference equivalent. Defaults to RawName.
	BoxedName string

	Primitive bool

	// Array marks an array reference. When Dimensions is zero and Array is set,
	// a single dimension is assumed.
	Array      bool
	Dimensions int

	Abstract  bool
	Interface bool

	// Generics are the type arguments in declaration order.
	Generics []*Descriptor
}

// Build validates f and returns the Descriptor it describes.
func Build(f Fields) (*Descriptor, error) {
	if f.RawName == "" {
		return nil, fmt.Errorf("%w: raw name is empty", ErrInvalidDescriptor)
	}
	if f.BoxedName == "" {
		f.BoxedName = f.RawName
	}
	if f.Dimensions < 0 {
		return nil, fmt.Errorf("%w: %s has negative dimensions", ErrInvalidDescriptor, f.RawName)
	}
	if f.Array && f.Dimensions == 0 {
		f.Dimensions = 1
	}
	if f.Primitive {
		if len(f.Generics) > 0 {
			return nil, fmt.Errorf("%w: primitive %s cannot have type arguments", ErrInvalidDescriptor, f.RawName)
		}
		if f.Abstract || f.Interface {
			return nil, fmt.Errorf("%w: primitive %s cannot be abstract or an interface", ErrInvalidDescriptor, f.RawName)
		}
	}
	for i, g := range f.Generics {
		if g == nil {
			return nil, fmt.Errorf("%w: %s has nil type argument at %d", ErrInvalidDescriptor, f.RawName, i)
		}
	}

	return &Descriptor{
		rawName:    f.RawName,
		boxedName:  f.BoxedName,
		primitive:  f.Primitive,
		dimensions: f.Dimensions,
		abstract:   f.Abstract,
		iface:      f.Interface,
		generics:   slices.Clone(f.Generics),
	}, nil
}

// MustBuild is like Build but panics if f is invalid.
func MustBuild(f Fields) *Descriptor {
	d, err := Build(f)
	if err != nil {
		panic(err)
	}
	return d
}

// Fields returns a copy of the descriptor's fields.
func (d *Descriptor) Fields() Fields {
	return Fields{
		RawName:    d.rawName,
		BoxedName:  d.boxedName,
		Primitive:  d.primitive,
		Array:      d.dimensions > 0,
		Dimensions: d.dimensions,
		Abstract:   d.abstract,
		Interface:  d.iface,
		Generics:   slices.Clone(d.generics),
	}
}

// RawName returns the canonical unparameterized name of the type.
func (d *Descriptor) RawName() string { return d.rawName }

// BoxedName returns the name of the boxed equivalent. It equals RawName unless
// the type is primitive.
func (d *Descriptor) BoxedName() string { return d.boxedName }

// IsPrimitive reports whether the type is a primitive.
func (d *Descriptor) IsPrimitive() bool { return d.primitive }

// IsArray reports whether the original reference was an array of this type.
func (d *Descriptor) IsArray() bool { return d.dimensions > 0 }

// Dimensions returns the number of array dimensions that were stripped.
func (d *Descriptor) Dimensions() int { return d.dimensions }

// IsAbstract reports whether the type's declaration is abstract.
func (d *Descriptor) IsAbstract() bool { return d.abstract }

// IsInterface reports whether the type is an interface.
func (d *Descriptor) IsInterface() bool { return d.iface }

// Generics returns the type arguments in declaration order.
// The returned slice is a copy.
func (d *Descriptor) Generics() []*Descriptor { return slices.Clone(d.generics) }

// NumGenerics returns the number of type arguments.
func (d *Descriptor) NumGenerics() int { return len(d.generics) }

// Generic returns the i'th type argument.
func (d *Descriptor) Generic(i int) *Descriptor { return d.generics[i] }

// Equal reports whether d and other describe the same type.
func (d *Descriptor) Equal(other *Descriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.rawName != other.rawName ||
		d.boxedName != other.boxedName ||
		d.primitive != other.primitive ||
		d.dimensions != other.dimensions ||
		d.abstract != other.abstract ||
		d.iface != other.iface ||
		len(d.generics) != len(other.generics) {
		return false
	}
	for i := range d.generics {
		if !d.generics[i].Equal(other.generics[i]) {
			return false
		}
	}
	return true
}

// String returns Render(d).
func (d *Descriptor) String() string { return Render(d) }

// BoxedString returns RenderBoxed(d).
func (d *Descriptor) BoxedString() string { return RenderBoxed(d) }

// Render returns the raw textual form of d, e.g. "java.util.Map<java.lang.String, int>".
// Array dimensions are not rendered.
func Render(d *Descriptor) string {
	var sb strings.Builder
	render(&sb, d, false)
	return sb.String()
}

// RenderBoxed is like Render but uses boxed names throughout,
// e.g. "java.util.Map<java.lang.String, java.lang.Integer>".
func RenderBoxed(d *Descriptor) string {
	var sb strings.Builder
	render(&sb, d, true)
	return sb.String()
}

func render(sb *strings.Builder, d *Descriptor, boxed bool) {
	if boxed {
		sb.WriteString(d.boxedName)
	} else {
		sb.WriteString(d.rawName)
	}
	if len(d.generics) == 0 {
		return
	}
	sb.WriteByte('<')
	for i, g := range d.generics {
		if i > 0 {
			sb.WriteString(", ")
		}
		render(sb, g, boxed)
	}
	sb.WriteByte('>')
}
