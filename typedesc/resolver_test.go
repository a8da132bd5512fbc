package typedesc

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func mapOfStringToListOfInteger() *DeclaredNode {
	return Interface("java.util.Map",
		Declared("java.lang.String"),
		Interface("java.util.List", Declared("java.lang.Integer")),
	)
}

func mustResolve(t *testing.T, r *Resolver, n Node) *Descriptor {
	t.Helper()
	d, err := r.Resolve(n)
	if err != nil {
		t.Fatalf("Resolve(%s) failed: %v", n, err)
	}
	return d
}

func TestResolve_RoundTrip(t *testing.T) {
	n := mapOfStringToListOfInteger()
	d := mustResolve(t, Java(), n)

	const want = "java.util.Map<java.lang.String, java.util.List<java.lang.Integer>>"
	if got := Render(d); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
	if got := n.String(); got != want {
		t.Errorf("node String() = %q, want %q", got, want)
	}
	if d.NumGenerics() != 2 {
		t.Fatalf("NumGenerics() = %d, want 2", d.NumGenerics())
	}
	if got := d.Generic(1).Generic(0).RawName(); got != "java.lang.Integer" {
		t.Errorf("second level argument = %q, want java.lang.Integer", got)
	}
	if !d.IsInterface() || !d.IsAbstract() {
		t.Errorf("Map should be an abstract interface, got interface=%v abstract=%v", d.IsInterface(), d.IsAbstract())
	}
}

func TestResolve_DeclarationFlags(t *testing.T) {
	tests := []struct {
		name          string
		node          *DeclaredNode
		wantAbstract  bool
		wantInterface bool
	}{
		{"interface only", &DeclaredNode{Name: "com.example.Marker", Interface: true}, false, true},
		{"abstract interface", Interface("java.util.List"), true, true},
		{"abstract class", Abstract("java.lang.Number"), true, false},
		{"concrete class", Declared("java.lang.String"), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustResolve(t, Java(), tt.node)
			if d.IsAbstract() != tt.wantAbstract || d.IsInterface() != tt.wantInterface {
				t.Errorf("abstract=%v interface=%v, want abstract=%v interface=%v",
					d.IsAbstract(), d.IsInterface(), tt.wantAbstract, tt.wantInterface)
			}
		})
	}
}

func TestResolve_Primitive(t *testing.T) {
	d := mustResolve(t, Java(), Primitive("int"))

	if !d.IsPrimitive() {
		t.Error("IsPrimitive() = false, want true")
	}
	if got := Render(d); got != "int" {
		t.Errorf("Render() = %q, want int", got)
	}
	if got := RenderBoxed(d); got != "java.lang.Integer" {
		t.Errorf("RenderBoxed() = %q, want java.lang.Integer", got)
	}
	if d.IsAbstract() || d.IsInterface() || d.IsArray() {
		t.Errorf("primitive has unexpected flags: %+v", d.Fields())
	}
}

func TestResolve_BoxedEqualsRawForReferences(t *testing.T) {
	d := mustResolve(t, Java(), mapOfStringToListOfInteger())
	if Render(d) != RenderBoxed(d) {
		t.Errorf("RenderBoxed() = %q, want Render() = %q", RenderBoxed(d), Render(d))
	}

	mixed := mustResolve(t, Java(), Interface("java.util.Map", Primitive("long"), Declared("java.lang.String")))
	if got := RenderBoxed(mixed); got != "java.util.Map<java.lang.Long, java.lang.String>" {
		t.Errorf("RenderBoxed() = %q", got)
	}
}

func TestResolve_ArrayFlag(t *testing.T) {
	tests := []struct {
		name     string
		elem     Node
		wantDims int
	}{
		{"primitive", Primitive("int"), 1},
		{"declared", Declared("java.lang.String"), 1},
		{"generic", Interface("java.util.List", Declared("java.lang.String")), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bare := mustResolve(t, Java(), tt.elem)
			arr := mustResolve(t, Java(), ArrayOf(tt.elem))

			if !arr.IsArray() || arr.Dimensions() != tt.wantDims {
				t.Errorf("IsArray() = %v, Dimensions() = %d", arr.IsArray(), arr.Dimensions())
			}
			if arr.RawName() != bare.RawName() {
				t.Errorf("RawName() = %q, want %q", arr.RawName(), bare.RawName())
			}
			if strings.Contains(arr.RawName(), "[") {
				t.Errorf("array brackets leaked into %q", arr.RawName())
			}
			if Render(arr) != Render(bare) {
				t.Errorf("Render() = %q, want %q", Render(arr), Render(bare))
			}
			if arr.IsPrimitive() != bare.IsPrimitive() {
				t.Errorf("IsPrimitive() = %v, want %v", arr.IsPrimitive(), bare.IsPrimitive())
			}
		})
	}
}

func TestResolve_MultiDimensionalArray(t *testing.T) {
	d := mustResolve(t, Java(), ArrayOf(ArrayOf(Primitive("double"))))
	if d.Dimensions() != 2 {
		t.Errorf("Dimensions() = %d, want 2", d.Dimensions())
	}
	if d.RawName() != "double" || d.BoxedName() != "java.lang.Double" {
		t.Errorf("names = %q, %q", d.RawName(), d.BoxedName())
	}
	if d.IsAbstract() || d.IsInterface() {
		t.Error("array of primitive must not be abstract or an interface")
	}
}

func TestResolve_Wildcards(t *testing.T) {
	r := Java()
	top := mustResolve(t, r, Declared(JavaTopType))
	number := Abstract("java.lang.Number")

	t.Run("super collapses to top", func(t *testing.T) {
		for _, bound := range []Node{Declared("java.lang.Integer"), mapOfStringToListOfInteger(), Primitive("int")} {
			d := mustResolve(t, r, Super(bound))
			if !d.Equal(top) {
				t.Errorf("Resolve(? super %s) = %+v, want top type", bound, d.Fields())
			}
		}
	})

	t.Run("extends resolves bound", func(t *testing.T) {
		want := mustResolve(t, r, number)
		got := mustResolve(t, r, Extends(number))
		if !got.Equal(want) {
			t.Errorf("Resolve(? extends Number) = %+v, want %+v", got.Fields(), want.Fields())
		}
	})

	t.Run("unbounded is top", func(t *testing.T) {
		d := mustResolve(t, r, Wildcard())
		if !d.Equal(top) {
			t.Errorf("Resolve(?) = %+v, want top type", d.Fields())
		}
	})

	t.Run("as argument", func(t *testing.T) {
		n := Interface("java.util.List", Extends(number))
		if got := Render(mustResolve(t, r, n)); got != "java.util.List<java.lang.Number>" {
			t.Errorf("Render() = %q", got)
		}
		n = Interface("java.util.Comparator", Super(Declared("java.lang.Integer")))
		if got := Render(mustResolve(t, r, n)); got != "java.util.Comparator<java.lang.Object>" {
			t.Errorf("Render() = %q", got)
		}
	})

	t.Run("go top type", func(t *testing.T) {
		d := mustResolve(t, Go(), Wildcard())
		if d.RawName() != "any" {
			t.Errorf("RawName() = %q, want any", d.RawName())
		}
	})
}

func TestResolve_Unrepresentable(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{"void", Void()},
		{"type variable", Other("T")},
		{"error type", Other("<any>")},
		{"argument", Interface("java.util.List", Other("T"))},
		{"nested argument", Interface("java.util.Map", Declared("java.lang.String"), Interface("java.util.List", Void()))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Java().Resolve(tt.node)
			if !errors.Is(err, ErrUnrepresentable) {
				t.Errorf("Resolve() error = %v, want ErrUnrepresentable", err)
			}
			if d != nil {
				t.Errorf("Resolve() returned partial descriptor %v", d)
			}
		})
	}
}

func TestResolve_ArrayOfTypeVariable(t *testing.T) {
	d := mustResolve(t, Java(), ArrayOf(Other("T")))
	if d.RawName() != "T" || !d.IsArray() || d.IsPrimitive() {
		t.Errorf("Resolve(T[]) = %+v", d.Fields())
	}
}

func TestResolve_DropArguments(t *testing.T) {
	var buf bytes.Buffer
	cfg := JavaConfig()
	cfg.Arguments = DropArguments
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	d := mustResolve(t, r, Interface("java.util.Map", Other("K"), Declared("java.lang.String")))
	if got := Render(d); got != "java.util.Map<java.lang.String>" {
		t.Errorf("Render() = %q", got)
	}
	if !strings.Contains(buf.String(), "dropped type argument") {
		t.Errorf("expected debug log, got %q", buf.String())
	}
}

func TestResolve_GenericOrder(t *testing.T) {
	n := Interface("java.util.Map",
		Interface("java.util.Map", Declared("java.lang.Long"), Declared("java.lang.Short")),
		Interface("java.util.Map", Declared("java.lang.Byte"), Declared("java.lang.Character")),
	)
	d := mustResolve(t, Java(), n)
	want := []string{"java.lang.Long", "java.lang.Short", "java.lang.Byte", "java.lang.Character"}
	var got []string
	for _, g := range d.Generics() {
		for _, gg := range g.Generics() {
			got = append(got, gg.RawName())
		}
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("argument order = %v, want %v", got, want)
	}
	if Render(d) != n.String() {
		t.Errorf("Render() = %q, want %q", Render(d), n.String())
	}
}

func TestResolve_ContractViolations(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{"nil", nil},
		{"bracketed name", &DeclaredNode{Name: "java.util.List<java.lang.String>"}},
		{"empty declared name", &DeclaredNode{}},
		{"empty primitive name", &PrimitiveNode{}},
		{"unknown primitive", Primitive("decimal")},
		{"array without component", &ArrayNode{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Java().Resolve(tt.node)
			if !errors.Is(err, ErrContract) {
				t.Fatalf("Resolve() error = %v, want ErrContract", err)
			}
			var ce *ContractError
			if !errors.As(err, &ce) {
				t.Fatalf("error is not a *ContractError: %T", err)
			}
		})
	}
}

func TestResolve_BoxerError(t *testing.T) {
	cause := errors.New("lookup unavailable")
	cfg := JavaConfig()
	cfg.Boxer = BoxerFunc(func(*PrimitiveNode) (*DeclaredNode, error) { return nil, cause })
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	_, err = r.Resolve(Primitive("int"))
	if !errors.Is(err, ErrContract) || !errors.Is(err, cause) {
		t.Errorf("Resolve() error = %v, want contract error wrapping cause", err)
	}
}

func TestResolve_MaxDepth(t *testing.T) {
	cfg := JavaConfig()
	cfg.MaxDepth = 3
	r, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	var n Node = Declared("java.lang.String")
	for range 3 {
		n = Interface("java.util.List", n)
	}
	if _, err := r.Resolve(n); err != nil {
		t.Errorf("depth 3: unexpected error %v", err)
	}
	n = Interface("java.util.List", n)
	if _, err := r.Resolve(n); !errors.Is(err, ErrContract) {
		t.Errorf("depth 4: error = %v, want ErrContract", err)
	}
}

func TestResolve_GoModel(t *testing.T) {
	d := mustResolve(t, Go(), Declared("map", Primitive("string"), ArrayOf(Primitive("int"))))
	if got := Render(d); got != "map<string, int>" {
		t.Errorf("Render() = %q", got)
	}
	if got := RenderBoxed(d); got != "map<*string, *int>" {
		t.Errorf("RenderBoxed() = %q", got)
	}
	if !d.Generic(1).IsArray() {
		t.Error("slice argument lost its array flag")
	}
}

func TestResolve_Concurrent(t *testing.T) {
	r := Java()
	n := Interface("java.util.Map", Primitive("int"), ArrayOf(mapOfStringToListOfInteger()))
	want := mustResolve(t, r, n)

	var wg sync.WaitGroup
	errs := make(chan string, 32)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := r.Resolve(n)
			if err != nil {
				errs <- err.Error()
				return
			}
			if !d.Equal(want) {
				errs <- "descriptor mismatch: " + Render(d)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}

func TestPackageResolve(t *testing.T) {
	d, err := Resolve(Primitive("boolean"))
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if d.BoxedName() != "java.lang.Boolean" {
		t.Errorf("BoxedName() = %q", d.BoxedName())
	}
}
