package typedesc

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// descriptorWire is the serialized form of a Descriptor, shared by JSON and YAML.
type descriptorWire struct {
	RawName    string            `json:"rawName" yaml:"rawName"`
	BoxedName  string            `json:"boxedName,omitempty" yaml:"boxedName,omitempty"`
	Primitive  bool              `json:"primitive,omitempty" yaml:"primitive,omitempty"`
	Array      bool              `json:"array,omitempty" yaml:"array,omitempty"`
	Dimensions int               `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	Abstract   bool              `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Interface  bool              `json:"interface,omitempty" yaml:"interface,omitempty"`
	Generics   []*descriptorWire `json:"generics,omitempty" yaml:"generics,omitempty"`
}

func toWire(d *Descriptor) *descriptorWire {
	w := &descriptorWire{
		RawName:    d.rawName,
		Primitive:  d.primitive,
		Array:      d.dimensions > 0,
		Dimensions: d.dimensions,
		Abstract:   d.abstract,
		Interface:  d.iface,
	}
	if d.boxedName != d.rawName {
		w.BoxedName = d.boxedName
	}
	for _, g := range d.generics {
		w.Generics = append(w.Generics, toWire(g))
	}
	return w
}

func fromWire(w *descriptorWire) (*Descriptor, error) {
	if w == nil {
		return nil, fmt.Errorf("%w: null descriptor", ErrInvalidDescriptor)
	}
	var generics []*Descriptor
	for _, gw := range w.Generics {
		g, err := fromWire(gw)
		if err != nil {
			return nil, err
		}
		generics = append(generics, g)
	}
	if w.Dimensions > 0 && !w.Array {
		return nil, fmt.Errorf("%w: %s has dimensions but is not an array", ErrInvalidDescriptor, w.RawName)
	}
	return Build(Fields{
		RawName:    w.RawName,
		BoxedName:  w.BoxedName,
		Primitive:  w.Primitive,
		Array:      w.Array,
		Dimensions: w.Dimensions,
		Abstract:   w.Abstract,
		Interface:  w.Interface,
		Generics:   generics,
	})
}

// MarshalJSON implements json.Marshaler.
func (d *Descriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(toWire(d))
}

// UnmarshalJSON implements json.Unmarshaler. The decoded descriptor is
// validated like one passed to Build.
func (d *Descriptor) UnmarshalJSON(data []byte) error {
	var w descriptorWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	decoded, err := fromWire(&w)
	if err != nil {
		return err
	}
	*d = *decoded
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d *Descriptor) MarshalYAML() (any, error) {
	return toWire(d), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Descriptor) UnmarshalYAML(value *yaml.Node) error {
	var w descriptorWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	decoded, err := fromWire(&w)
	if err != nil {
		return err
	}
	*d = *decoded
	return nil
}
