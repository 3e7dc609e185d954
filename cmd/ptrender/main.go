// Command ptrender renders Portable Text JSON to HTML.
//
// Usage:
//
//	ptrender [flags] [file.json]
//
// Reads a Portable Text array from file.json (or stdin) and writes HTML to
// stdout. Component overrides can be supplied as a YAML file mapping content
// names to element tags:
//
//	styles:
//	  normal: div
//	marks:
//	  highlight: mark
//	lists:
//	  bullet: ul
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/ptxgo/portablehtml"
)

func main() {
	output := pflag.StringP("output", "o", "", "write HTML to `file` instead of stdout")
	componentsPath := pflag.StringP("components", "c", "", "YAML `file` with tag overrides per namespace")
	canonical := pflag.Bool("canonical", false, "use the canonical-nesting walker")
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ptrender [flags] [file.json]")
		fmt.Fprintln(os.Stderr, "Renders Portable Text JSON to HTML (stdin when no file is given).")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	doc, err := readDocument(pflag.Arg(0))
	if err != nil {
		fatalf("%v", err)
	}

	opts := []portablehtml.RenderOption{
		portablehtml.WithCanonicalWalker(*canonical),
	}
	if *componentsPath != "" {
		components, err := loadComponents(*componentsPath)
		if err != nil {
			fatalf("%v", err)
		}
		opts = append(opts, portablehtml.WithComponents(components))
	}

	node, err := portablehtml.Render(doc, opts...)
	if err != nil {
		fatalf("render: %v", err)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fatalf("%v", err)
		}
		defer f.Close()
		out = f
	}
	if err := node.WriteHTML(out); err != nil {
		fatalf("write: %v", err)
	}
	fmt.Fprintln(out)
}

func readDocument(path string) (portablehtml.Document, error) {
	in := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}
	return portablehtml.Decode(in)
}

// overrides is the YAML shape of a component-override file: four optional
// maps of content name to element tag.
type overrides struct {
	Types  map[string]string `yaml:"types"`
	Marks  map[string]string `yaml:"marks"`
	Styles map[string]string `yaml:"styles"`
	Lists  map[string]string `yaml:"lists"`
}

func loadComponents(path string) (portablehtml.Components, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return portablehtml.Components{}, err
	}
	var o overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return portablehtml.Components{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return portablehtml.Components{
		Types:  tagMap(o.Types),
		Marks:  tagMap(o.Marks),
		Styles: tagMap(o.Styles),
		Lists:  tagMap(o.Lists),
	}, nil
}

func tagMap(m map[string]string) map[string]portablehtml.Component {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]portablehtml.Component, len(m))
	for name, tag := range m {
		out[name] = portablehtml.Tag(tag)
	}
	return out
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ptrender: "+format+"\n", args...)
	os.Exit(1)
}
