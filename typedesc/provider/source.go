// Package provider binds real type systems to the typedesc Node contract.
//
// SourceProvider reads Go packages through go/types; ParseJava and
// ParseJavaType read Java source through the tree-sitter Java grammar.
package provider

import (
	"context"
	"fmt"
	"go/types"

	"github.com/broady/bricks/typedesc"
	"golang.org/x/tools/go/packages"
)

// FromType converts a go/types type to a typedesc Node.
func FromType(t types.Type) typedesc.Node {
	switch typ := t.(type) {
	case *types.Basic:
		if typ.Kind() == types.Invalid || typ.Kind() == types.UnsafePointer || typ.Info()&types.IsUntyped != 0 {
			return typedesc.Other(typ.Name())
		}
		return typedesc.Primitive(typ.Name())

	case *types.Slice:
		return typedesc.ArrayOf(FromType(typ.Elem()))

	case *types.Array:
		return typedesc.ArrayOf(FromType(typ.Elem()))

	case *types.Pointer:
		switch elem := FromType(typ.Elem()).(type) {
		case *typedesc.DeclaredNode:
			return &typedesc.DeclaredNode{Name: "*" + elem.Name, Args: elem.Args}
		case *typedesc.PrimitiveNode:
			return typedesc.Declared("*" + elem.Name)
		}
		return typedesc.Other(t.String())

	case *types.Map:
		return typedesc.Declared("map", FromType(typ.Key()), FromType(typ.Elem()))

	case *types.Named:
		obj := typ.Obj()
		name := obj.Name()
		if obj.Pkg() != nil {
			name = obj.Pkg().Path() + "." + name
		}
		var args []typedesc.Node
		if targs := typ.TypeArgs(); targs != nil {
			for i := 0; i < targs.Len(); i++ {
				args = append(args, FromType(targs.At(i)))
			}
		}
		if _, ok := typ.Underlying().(*types.Interface); ok {
			return typedesc.Interface(name, args...)
		}
		return typedesc.Declared(name, args...)

	case *types.Alias:
		return FromType(types.Unalias(typ))

	case *types.Interface:
		if typ.Empty() {
			return typedesc.Interface(typedesc.GoTopType)
		}
		return typedesc.Other(typ.String())

	case *types.TypeParam:
		return typedesc.Other(typ.Obj().Name())

	default:
		// Chan, Signature, anonymous Struct, Tuple, Union.
		return typedesc.Other(t.String())
	}
}

// SourceProvider describes Go types by analyzing source code.
type SourceProvider struct {
	// Resolver resolves field types. Nil means typedesc.Go().
	Resolver *typedesc.Resolver
}

// SourceOptions configures source-based extraction.
type SourceOptions struct {
	// Packages are the Go package patterns to analyze.
	Packages []string

	// RootTypes restricts extraction to these type names.
	// If empty, all exported struct types are described.
	RootTypes []string
}

// Member is one field of a described type.
type Member struct {
	// Owner is the canonical name of the declaring type.
	Owner string

	// Name is the field name.
	Name string

	// Node is the field's type as reported by the type system.
	Node typedesc.Node

	// Descriptor is set when the type resolved.
	Descriptor *typedesc.Descriptor

	// Err is set when the type did not resolve.
	Err error
}

// Describe loads the packages and returns one Member per exported field of
// the selected struct types, in declaration order.
func (p *SourceProvider) Describe(ctx context.Context, opts SourceOptions) ([]Member, error) {
	if len(opts.Packages) == 0 {
		return nil, fmt.Errorf("no packages specified")
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedImports |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, opts.Packages...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found")
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
		}
	}

	r := p.Resolver
	if r == nil {
		r = typedesc.Go()
	}

	var names []*types.TypeName
	if len(opts.RootTypes) > 0 {
		for _, root := range opts.RootTypes {
			tn, err := lookupType(pkgs, root)
			if err != nil {
				return nil, err
			}
			if _, ok := tn.Type().Underlying().(*types.Struct); !ok || tn.IsAlias() {
				return nil, fmt.Errorf("type %s is not a struct", root)
			}
			names = append(names, tn)
		}
	} else {
		for _, pkg := range pkgs {
			scope := pkg.Types.Scope()
			for _, name := range scope.Names() {
				if tn, ok := scope.Lookup(name).(*types.TypeName); ok && tn.Exported() {
					names = append(names, tn)
				}
			}
		}
	}

	var members []Member
	for _, tn := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		members = append(members, describeStruct(r, tn)...)
	}
	return members, nil
}

func lookupType(pkgs []*packages.Package, name string) (*types.TypeName, error) {
	for _, pkg := range pkgs {
		if tn, ok := pkg.Types.Scope().Lookup(name).(*types.TypeName); ok {
			return tn, nil
		}
	}
	return nil, fmt.Errorf("type %s not found in any package", name)
}

func describeStruct(r *typedesc.Resolver, tn *types.TypeName) []Member {
	if tn.IsAlias() {
		return nil
	}
	st, ok := tn.Type().Underlying().(*types.Struct)
	if !ok {
		return nil
	}
	owner := tn.Name()
	if tn.Pkg() != nil {
		owner = tn.Pkg().Path() + "." + owner
	}

	var members []Member
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Exported() {
			continue
		}
		node := FromType(field.Type())
		d, err := r.Resolve(node)
		members = append(members, Member{
			Owner:      owner,
			Name:       field.Name(),
			Node:       node,
			Descriptor: d,
			Err:        err,
		})
	}
	return members
}
