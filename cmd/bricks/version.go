package main

import (
	_ "embed"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

//go:embed VERSION
var embeddedVersion string

// buildInfo identifies the running binary.
type buildInfo struct {
	Version   string `json:"version" yaml:"version"`
	Revision  string `json:"revision,omitempty" yaml:"revision,omitempty"`
	Modified  bool   `json:"modified,omitempty" yaml:"modified,omitempty"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
}

// readBuildInfo prefers the module version stamped by go install. Other
// builds report "devel-<VERSION>" and whatever VCS state the toolchain
// recorded.
func readBuildInfo() buildInfo {
	bi := buildInfo{
		Version:   strings.TrimSpace(embeddedVersion),
		GoVersion: runtime.Version(),
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return bi
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		bi.Version = v
		return bi
	}
	bi.Version = "devel-" + bi.Version
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			bi.Revision = s.Value
		case "vcs.modified":
			bi.Modified = s.Value == "true"
		}
	}
	return bi
}

// String is the one-line form, e.g. "devel-0.1.0+abc1234-dirty".
func (bi buildInfo) String() string {
	v := bi.Version
	if len(bi.Revision) >= 7 {
		v += "+" + bi.Revision[:7]
	}
	if bi.Modified {
		v += "-dirty"
	}
	return v
}

type VersionCmd struct {
	Short bool `help:"Print only the version string."`
}

func (c *VersionCmd) Run(s *session) error {
	bi := readBuildInfo()
	switch {
	case c.Short:
		_, err := fmt.Fprintln(s.out, bi)
		return err
	case s.format == "json":
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		return enc.Encode(bi)
	case s.format == "yaml":
		return yaml.NewEncoder(s.out).Encode(bi)
	}
	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "version:\t%s\n", bi)
	fmt.Fprintf(tw, "go:\t%s\n", bi.GoVersion)
	return tw.Flush()
}
