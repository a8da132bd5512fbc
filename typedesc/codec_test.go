package typedesc

import (
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

func TestDescriptor_JSON(t *testing.T) {
	d := mustResolve(t, Java(), Interface("java.util.Map", Primitive("int"), ArrayOf(Declared("java.lang.String"))))

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	const want = `{"rawName":"java.util.Map","abstract":true,"interface":true,"generics":[` +
		`{"rawName":"int","boxedName":"java.lang.Integer","primitive":true},` +
		`{"rawName":"java.lang.String","array":true,"dimensions":1}]}`
	if string(data) != want {
		t.Errorf("Marshal() =\n%s\nwant\n%s", data, want)
	}

	var back Descriptor
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("decoded descriptor %v differs from %v", &back, d)
	}
}

func TestDescriptor_JSONRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"missing name", `{"primitive":true}`},
		{"primitive with generics", `{"rawName":"int","primitive":true,"generics":[{"rawName":"x"}]}`},
		{"dimensions without array", `{"rawName":"int","dimensions":2}`},
		{"null argument", `{"rawName":"java.util.List","generics":[null]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Descriptor
			err := json.Unmarshal([]byte(tt.in), &d)
			if !errors.Is(err, ErrInvalidDescriptor) {
				t.Errorf("Unmarshal() error = %v, want ErrInvalidDescriptor", err)
			}
		})
	}
}

func TestDescriptor_YAML(t *testing.T) {
	d := mustResolve(t, Java(), Interface("java.util.List", Primitive("char")))

	data, err := yaml.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	for _, want := range []string{"rawName: java.util.List", "boxedName: java.lang.Character", "interface: true"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("YAML output missing %q:\n%s", want, data)
		}
	}

	var back Descriptor
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("decoded descriptor %v differs from %v", &back, d)
	}
}
