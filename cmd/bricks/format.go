package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/broady/bricks/typedesc"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// writeReport writes rep to w in the given format.
func writeReport(w io.Writer, format string, rep report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		formatMembersText(w, rep.Members)
		formatViolationsText(w, rep.Violations)
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// formatMembersText formats members as aligned columns.
func formatMembersText(w io.Writer, members []member) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MEMBER\tTYPE\tBOXED\tFLAGS")
	for _, m := range members {
		if m.Descriptor == nil {
			fmt.Fprintf(tw, "%s\t%s\t-\t%s\n", m.Member, m.Type, errorFlag(m.err))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			m.Member, typedesc.Render(m.Descriptor), typedesc.RenderBoxed(m.Descriptor), flags(m.Descriptor))
	}
	tw.Flush()
}

// formatViolationsText lists accessor violations after a blank line.
func formatViolationsText(w io.Writer, violations []violation) {
	if len(violations) == 0 {
		return
	}
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tPROPERTY\tMETHOD\tPROBLEM")
	for _, v := range violations {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", typedesc.SimpleName(v.Type), v.Property, v.Method, v.Reason)
	}
	tw.Flush()
}

func flags(d *typedesc.Descriptor) string {
	var fs []string
	if d.IsPrimitive() {
		fs = append(fs, "primitive")
	}
	switch n := d.Dimensions(); {
	case n == 1:
		fs = append(fs, "array")
	case n > 1:
		fs = append(fs, fmt.Sprintf("array[%d]", n))
	}
	if d.IsInterface() {
		fs = append(fs, "interface")
	} else if d.IsAbstract() {
		fs = append(fs, "abstract")
	}
	if len(fs) == 0 {
		return "-"
	}
	return strings.Join(fs, ",")
}

func errorFlag(err error) string {
	switch {
	case err == nil:
		return "-"
	case errors.Is(err, typedesc.ErrUnrepresentable):
		return "unrepresentable"
	default:
		return "error: " + err.Error()
	}
}
