package main

import (
	"context"
	"fmt"
	"os"

	"github.com/broady/bricks/beans"
	"github.com/broady/bricks/typedesc"
	"github.com/broady/bricks/typedesc/provider"
)

// member is one described type.
type member struct {
	Member     string               `json:"member" yaml:"member"`
	Type       string               `json:"type" yaml:"type"`
	Descriptor *typedesc.Descriptor `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`
	Error      string               `json:"error,omitempty" yaml:"error,omitempty"`

	err error
}

func newMember(name string, n typedesc.Node, d *typedesc.Descriptor, err error) member {
	m := member{Member: name, Descriptor: d, err: err}
	if n != nil {
		m.Type = n.String()
	}
	if err != nil {
		m.Error = err.Error()
	}
	return m
}

type violation struct {
	Type            string `json:"type" yaml:"type"`
	beans.Violation `yaml:",inline"`
}

type report struct {
	Members    []member    `json:"members" yaml:"members"`
	Violations []violation `json:"violations,omitempty" yaml:"violations,omitempty"`
}

type ParseCmd struct {
	Types []string `arg:"" help:"Java type expressions, e.g. 'java.util.Map<String, int[]>'."`
}

func (c *ParseCmd) Run(s *session) error {
	r, err := s.resolver(typedesc.JavaConfig())
	if err != nil {
		return err
	}
	ctx := context.Background()

	var rep report
	for _, text := range c.Types {
		n, err := provider.ParseJavaType(ctx, text)
		if err != nil {
			return err
		}
		d, err := r.Resolve(n)
		rep.Members = append(rep.Members, newMember(text, n, d, err))
	}
	return writeReport(s.out, s.format, rep)
}

type JavaCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Java source files."`
	Beans bool     `help:"Report accessors that break the getter/setter naming convention."`
}

func (c *JavaCmd) Run(s *session) error {
	r, err := s.resolver(typedesc.JavaConfig())
	if err != nil {
		return err
	}
	ctx := context.Background()
	checker := beans.Checker{Resolver: r}

	var rep report
	for _, file := range c.Files {
		src, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		unit, err := provider.ParseJava(ctx, src)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}

		for _, typ := range unit.Types {
			simple := typedesc.SimpleName(typ.Name)
			var props []beans.Property
			for _, f := range typ.Fields {
				d, err := r.Resolve(f.Type)
				rep.Members = append(rep.Members, newMember(simple+"."+f.Name, f.Type, d, err))
				props = append(props, beans.Property{Name: f.Name, Type: f.Type})
			}

			var methods []beans.Method
			for _, m := range typ.Methods {
				d, err := r.Resolve(m.Returns)
				rep.Members = append(rep.Members, newMember(simple+"."+m.Name+"()", m.Returns, d, err))

				bm := beans.Method{Name: m.Name, Returns: m.Returns}
				for _, p := range m.Params {
					bm.Params = append(bm.Params, p.Type)
				}
				methods = append(methods, bm)
			}

			if c.Beans {
				for _, v := range checker.Check(props, methods) {
					rep.Violations = append(rep.Violations, violation{Type: typ.Name, Violation: v})
				}
			}
		}
	}
	return writeReport(s.out, s.format, rep)
}

type GoCmd struct {
	Packages []string `arg:"" help:"Go package patterns."`
	Type     []string `help:"Only describe these struct types." short:"t"`
}

func (c *GoCmd) Run(s *session) error {
	r, err := s.resolver(typedesc.GoConfig())
	if err != nil {
		return err
	}

	p := &provider.SourceProvider{Resolver: r}
	members, err := p.Describe(context.Background(), provider.SourceOptions{
		Packages:  c.Packages,
		RootTypes: c.Type,
	})
	if err != nil {
		return err
	}

	var rep report
	for _, m := range members {
		rep.Members = append(rep.Members, newMember(typedesc.SimpleName(m.Owner)+"."+m.Name, m.Node, m.Descriptor, m.Err))
	}
	return writeReport(s.out, s.format, rep)
}
