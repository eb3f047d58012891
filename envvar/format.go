package envvar

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
)

// Lines returns the dotenv template for ds: a comment line and an export
// line per descriptor, in the order given.
func Lines(ds []*Descriptor) []string {
	lines := make([]string, 0, 2*len(ds))
	for _, d := range ds {
		lines = append(lines, d.String(), d.Export())
	}

	return lines
}

// Text joins [Lines] with newlines. Empty input yields the empty string.
func Text(ds []*Descriptor) string {
	return strings.Join(Lines(ds), "\n")
}

// Sort orders ds by full variable name, comparing bytes. Descriptors with
// equal names keep their discovery order.
func Sort(ds []*Descriptor) {
	slices.SortStableFunc(ds, func(a, b *Descriptor) int {
		return cmp.Compare(a.Name(), b.Name())
	})
}

// Entry is the serializable form of a [Descriptor]. Its fields are also the
// environment of [Filter] expressions.
type Entry struct {
	Name       string  `json:"name"              yaml:"name"`
	Type       string  `json:"type"              yaml:"type"`
	Default    string  `json:"default,omitempty" yaml:"default,omitempty"`
	HasDefault bool    `json:"-"                 yaml:"-"`
	Params     []Param `json:"params,omitempty"  yaml:"params,omitempty"`
	Line       int     `json:"line"              yaml:"line"`
}

// Param returns the value of the named extra parameter, or "".
func (e Entry) Param(name string) string {
	for _, p := range e.Params {
		if p.Name == name {
			return p.Value
		}
	}

	return ""
}

// Entry returns the serializable form of d.
func (d *Descriptor) Entry() Entry {
	def, ok := d.Default()

	return Entry{
		Name:       d.Name(),
		Type:       d.Type(),
		Default:    def,
		HasDefault: ok,
		Params:     d.Params(),
		Line:       d.Pos.Line,
	}
}

// Document is the JSON and YAML output of one analysis.
type Document struct {
	// Fingerprint identifies the analyzed source.
	Fingerprint string  `json:"fingerprint" yaml:"fingerprint"`
	Settings    []Entry `json:"settings"    yaml:"settings"`
}

// NewDocument collects the entries of ds.
func NewDocument(fingerprint string, ds []*Descriptor) Document {
	doc := Document{Fingerprint: fingerprint, Settings: make([]Entry, 0, len(ds))}
	for _, d := range ds {
		doc.Settings = append(doc.Settings, d.Entry())
	}

	return doc
}

// WriteJSON writes doc as JSON. A positive indent pretty-prints.
func WriteJSON(_ context.Context, w io.Writer, doc Document, indent int) error {
	var (
		jsonData []byte
		err      error
	)

	if indent > 0 {
		jsonData, err = json.MarshalIndent(doc, "", strings.Repeat(" ", indent))
	} else {
		jsonData, err = json.Marshal(doc)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(jsonData))

	return err
}

// WriteYAML writes doc as YAML. A non-positive indent selects flow style.
func WriteYAML(ctx context.Context, w io.Writer, doc Document, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	yamlData, err := yaml.MarshalContext(ctx, doc, opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(yamlData))

	return err
}

//nolint:gochecknoglobals
var (
	commentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	typeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	defaultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	extraStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

// ColorText is [Text] with styled comment lines. Styles degrade to plain
// text when the output cannot show colour.
func ColorText(ds []*Descriptor) string {
	lines := make([]string, 0, 2*len(ds))

	for _, d := range ds {
		var b strings.Builder

		b.WriteString(commentStyle.Render("# "))
		b.WriteString(nameStyle.Render(d.Name()))
		b.WriteString(commentStyle.Render(": "))
		b.WriteString(typeStyle.Render(d.Type()))

		if def, ok := d.Default(); ok {
			b.WriteString(commentStyle.Render("="))
			b.WriteString(defaultStyle.Render(def))
		}

		if extra := d.Extra(); extra != "" {
			b.WriteString(extraStyle.Render(extra))
		}

		lines = append(lines, b.String(), d.Export())
	}

	return strings.Join(lines, "\n")
}
