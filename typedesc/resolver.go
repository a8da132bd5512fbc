package typedesc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Resolver turns Nodes into Descriptors. A Resolver is immutable and safe for
// concurrent use.
type Resolver struct {
	cfg Config
}

// New validates cfg and returns a Resolver.
func New(cfg Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{cfg: cfg.withDefaults()}, nil
}

// Java returns a Resolver for Java type models.
func Java() *Resolver {
	return &Resolver{cfg: JavaConfig()}
}

// Go returns a Resolver for Go type models.
func Go() *Resolver {
	return &Resolver{cfg: GoConfig()}
}

// Config returns the resolver's configuration. Modify the copy and pass it to
// New to derive a differently configured Resolver.
func (r *Resolver) Config() Config { return r.cfg }

var defaultResolver = Java()

// Resolve resolves n with the Java resolver.
func Resolve(n Node) (*Descriptor, error) {
	return defaultResolver.Resolve(n)
}

// Resolve produces the descriptor for n.
//
// It returns an error matching ErrUnrepresentable when n, or under the strict
// policy any of its type arguments, has no structural description. Nodes that
// break the type system contract yield a *ContractError.
func (r *Resolver) Resolve(n Node) (*Descriptor, error) {
	return r.resolve(n, 0)
}

func (r *Resolver) logger() *slog.Logger {
	if r.cfg.Logger != nil {
		return r.cfg.Logger
	}
	return slog.Default()
}

func (r *Resolver) resolve(n Node, depth int) (*Descriptor, error) {
	dims := 0
	for ; ; depth++ {
		if depth > r.cfg.MaxDepth {
			return nil, contractf(n, "nesting deeper than %d", r.cfg.MaxDepth)
		}

		switch t := n.(type) {
		case nil:
			return nil, contractf(nil, "missing node")

		case *ArrayNode:
			if t.Component == nil {
				return nil, contractf(t, "array without component type")
			}
			dims++
			n = t.Component

		case *WildcardNode:
			// The lower bound of "? super X" is discarded.
			if t.Super != nil || t.Extends == nil {
				return r.top(dims)
			}
			n = t.Extends

		case *PrimitiveNode:
			return r.primitive(t, dims)

		case *DeclaredNode:
			return r.declared(t, dims, depth)

		case *OtherNode:
			return r.other(t, dims)

		default:
			return nil, contractf(n, "unknown node type %T", n)
		}
	}
}

func (r *Resolver) top(dims int) (*Descriptor, error) {
	return Build(Fields{RawName: r.cfg.TopType, Dimensions: dims})
}

func (r *Resolver) primitive(p *PrimitiveNode, dims int) (*Descriptor, error) {
	if p.Name == "" {
		return nil, contractf(p, "primitive without a name")
	}
	boxed, err := r.cfg.Boxer.Box(p)
	if err != nil {
		var ce *ContractError
		if errors.As(err, &ce) {
			return nil, err
		}
		return nil, &ContractError{Node: p.Name, Reason: "boxing failed", Err: err}
	}
	if boxed == nil || boxed.Name == "" {
		return nil, contractf(p, "boxed equivalent has no name")
	}
	return Build(Fields{
		RawName:    p.Name,
		BoxedName:  boxed.Name,
		Primitive:  true,
		Dimensions: dims,
	})
}

func (r *Resolver) declared(d *DeclaredNode, dims, depth int) (*Descriptor, error) {
	if d.Name == "" {
		return nil, contractf(d, "declared type without a name")
	}
	if strings.ContainsAny(d.Name, "<[") {
		return nil, contractf(d, "base name %q carries type arguments", d.Name)
	}

	var generics []*Descriptor
	for i, arg := range d.Args {
		g, err := r.resolve(arg, depth+1)
		if err == nil {
			generics = append(generics, g)
			continue
		}
		if !errors.Is(err, ErrUnrepresentable) {
			return nil, err
		}
		if r.cfg.Arguments == DropArguments {
			r.logger().LogAttrs(context.Background(), slog.LevelDebug, "dropped type argument",
				slog.String("type", d.Name),
				slog.Int("index", i),
				slog.Any("error", err),
			)
			continue
		}
		return nil, fmt.Errorf("type argument %d of %s: %w", i, d.Name, err)
	}

	return Build(Fields{
		RawName:    d.Name,
		Dimensions: dims,
		Abstract:   d.Abstract,
		Interface:  d.Interface,
		Generics:   generics,
	})
}

func (r *Resolver) other(o *OtherNode, dims int) (*Descriptor, error) {
	// An array of an otherwise unrepresentable type (e.g. T[]) still
	// describes an array reference.
	if dims > 0 && o.Name != "" && o.Name != "void" {
		return Build(Fields{RawName: o.Name, Dimensions: dims})
	}
	r.logger().LogAttrs(context.Background(), slog.LevelDebug, "unrepresentable type",
		slog.String("type", o.Name),
	)
	return nil, fmt.Errorf("%s: %w", o.Name, ErrUnrepresentable)
}
