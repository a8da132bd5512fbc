package typedesc

import (
	"errors"
	"testing"
)

func TestRender(t *testing.T) {
	str := MustBuild(Fields{RawName: "java.lang.String"})
	integer := MustBuild(Fields{RawName: "int", BoxedName: "java.lang.Integer", Primitive: true})
	list := MustBuild(Fields{RawName: "java.util.List", Generics: []*Descriptor{integer}, Interface: true, Abstract: true})
	m := MustBuild(Fields{RawName: "java.util.Map", Generics: []*Descriptor{str, list}, Interface: true, Abstract: true})

	tests := []struct {
		name      string
		d         *Descriptor
		wantRaw   string
		wantBoxed string
	}{
		{"simple", str, "java.lang.String", "java.lang.String"},
		{"primitive", integer, "int", "java.lang.Integer"},
		{"one argument", list, "java.util.List<int>", "java.util.List<java.lang.Integer>"},
		{"nested", m, "java.util.Map<java.lang.String, java.util.List<int>>", "java.util.Map<java.lang.String, java.util.List<java.lang.Integer>>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.d); got != tt.wantRaw {
				t.Errorf("Render() = %q, want %q", got, tt.wantRaw)
			}
			if got := RenderBoxed(tt.d); got != tt.wantBoxed {
				t.Errorf("RenderBoxed() = %q, want %q", got, tt.wantBoxed)
			}
			if got := tt.d.String(); got != tt.wantRaw {
				t.Errorf("String() = %q, want %q", got, tt.wantRaw)
			}
			if got := tt.d.BoxedString(); got != tt.wantBoxed {
				t.Errorf("BoxedString() = %q, want %q", got, tt.wantBoxed)
			}
		})
	}
}

func TestBuild_Invariants(t *testing.T) {
	arg := MustBuild(Fields{RawName: "java.lang.String"})
	tests := []struct {
		name string
		f    Fields
	}{
		{"empty name", Fields{}},
		{"primitive with generics", Fields{RawName: "int", Primitive: true, Generics: []*Descriptor{arg}}},
		{"abstract primitive", Fields{RawName: "int", Primitive: true, Abstract: true}},
		{"interface primitive", Fields{RawName: "int", Primitive: true, Interface: true}},
		{"negative dimensions", Fields{RawName: "int", Dimensions: -1}},
		{"nil argument", Fields{RawName: "java.util.List", Generics: []*Descriptor{nil}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.f)
			if !errors.Is(err, ErrInvalidDescriptor) {
				t.Errorf("Build() error = %v, want ErrInvalidDescriptor", err)
			}
		})
	}
}

func TestBuild_Defaults(t *testing.T) {
	d := MustBuild(Fields{RawName: "java.lang.String", Array: true})
	if d.BoxedName() != "java.lang.String" {
		t.Errorf("BoxedName() = %q, want raw name", d.BoxedName())
	}
	if !d.IsArray() || d.Dimensions() != 1 {
		t.Errorf("IsArray() = %v, Dimensions() = %d, want true, 1", d.IsArray(), d.Dimensions())
	}
}

func TestDescriptor_Immutable(t *testing.T) {
	arg := MustBuild(Fields{RawName: "java.lang.String"})
	generics := []*Descriptor{arg}
	d := MustBuild(Fields{RawName: "java.util.List", Generics: generics})

	generics[0] = MustBuild(Fields{RawName: "java.lang.Integer"})
	if got := d.Generic(0).RawName(); got != "java.lang.String" {
		t.Errorf("input slice aliased descriptor: Generic(0) = %q", got)
	}

	out := d.Generics()
	out[0] = nil
	if d.Generic(0) == nil {
		t.Error("Generics() returned the internal slice")
	}

	f := d.Fields()
	f.RawName = "java.util.Set"
	if d.RawName() != "java.util.List" {
		t.Error("Fields() returned a view of the descriptor")
	}
}

func TestDescriptor_Equal(t *testing.T) {
	mk := func(arg string) *Descriptor {
		return MustBuild(Fields{
			RawName:  "java.util.List",
			Generics: []*Descriptor{MustBuild(Fields{RawName: arg})},
		})
	}
	if !mk("java.lang.String").Equal(mk("java.lang.String")) {
		t.Error("identical descriptors are not Equal")
	}
	if mk("java.lang.String").Equal(mk("java.lang.Integer")) {
		t.Error("descriptors with different arguments are Equal")
	}
	var nilDesc *Descriptor
	if nilDesc.Equal(mk("x")) {
		t.Error("nil descriptor Equal to non-nil")
	}
	if !nilDesc.Equal(nil) {
		t.Error("nil descriptor not Equal to nil")
	}
}

func TestNames(t *testing.T) {
	tests := []struct {
		in         string
		wantPkg    string
		wantHasPkg bool
		wantSimple string
	}{
		{"java.util.List", "java.util", true, "List"},
		{"String", "", false, "String"},
		{"github.com/foo/bar.User", "github.com/foo/bar", true, "User"},
		{"java.util.Map<java.lang.String, java.lang.Integer>", "java.util", true, "Map"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			pkg, ok := PackageOf(tt.in)
			if pkg != tt.wantPkg || ok != tt.wantHasPkg {
				t.Errorf("PackageOf() = %q, %v, want %q, %v", pkg, ok, tt.wantPkg, tt.wantHasPkg)
			}
			if got := SimpleName(tt.in); got != tt.wantSimple {
				t.Errorf("SimpleName() = %q, want %q", got, tt.wantSimple)
			}
		})
	}
}

func TestNode_String(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{Primitive("int"), "int"},
		{ArrayOf(ArrayOf(Primitive("int"))), "int[][]"},
		{Interface("java.util.Map", Declared("java.lang.String"), Interface("java.util.List", Declared("java.lang.Integer"))),
			"java.util.Map<java.lang.String, java.util.List<java.lang.Integer>>"},
		{Wildcard(), "?"},
		{Extends(Declared("java.lang.Number")), "? extends java.lang.Number"},
		{Super(Declared("java.lang.Integer")), "? super java.lang.Integer"},
		{Void(), "void"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
