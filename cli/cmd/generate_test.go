package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/gendotenv/envvar"
	"github.com/ardnew/gendotenv/syntax"
)

const settings = `from configurations import Configuration, values

class Base(Configuration):
    SECRET_KEY = values.SecretValue()
    DEBUG = values.BooleanValue(False)
    ALLOWED_HOSTS = values.ListValue(['localhost'])
`

// newGenerate returns a Generate with the defaults kong would apply.
func newGenerate(input string) *Generate {
	return &Generate{
		Input:    input,
		Format:   FormatDotenv,
		Prefix:   envvar.DefaultPrefix,
		MaxDepth: envvar.DefaultMaxDepth,
		Indent:   2,
	}
}

func runGenerate(t *testing.T, g *Generate, stdin string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	ctx := WithOutput(WithInput(context.Background(), strings.NewReader(stdin)), &out)
	err := g.Run(ctx)

	return out.String(), err
}

func TestGenerate_Dotenv(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Generate)
		want  string
	}{
		{
			name:  "discovery order",
			setup: func(*Generate) {},
			want: "# DJANGO_SECRET_KEY: Secret\nexport DJANGO_SECRET_KEY=\n" +
				"# DJANGO_DEBUG: Boolean=False\nexport DJANGO_DEBUG=\n" +
				"# DJANGO_ALLOWED_HOSTS: List=localhost (separator=,)\nexport DJANGO_ALLOWED_HOSTS=\n",
		},
		{
			name:  "sorted",
			setup: func(g *Generate) { g.Sort = true },
			want: "# DJANGO_ALLOWED_HOSTS: List=localhost (separator=,)\nexport DJANGO_ALLOWED_HOSTS=\n" +
				"# DJANGO_DEBUG: Boolean=False\nexport DJANGO_DEBUG=\n" +
				"# DJANGO_SECRET_KEY: Secret\nexport DJANGO_SECRET_KEY=\n",
		},
		{
			name:  "prefix",
			setup: func(g *Generate) { g.Prefix = "APP"; g.Filter = `Type == "Secret"` },
			want:  "# APP_SECRET_KEY: Secret\nexport APP_SECRET_KEY=\n",
		},
		{
			name:  "filter matching nothing",
			setup: func(g *Generate) { g.Filter = `Line > 100` },
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGenerate("-")
			tt.setup(g)

			got, err := runGenerate(t, g, settings)
			if err != nil {
				t.Fatal(err)
			}

			if got != tt.want {
				t.Errorf("output:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestGenerate_FromFile(t *testing.T) {
	g := newGenerate(writeTemp(t, "KEY = values.Value('x')\n"))

	got, err := runGenerate(t, g, "")
	if err != nil {
		t.Fatal(err)
	}

	if want := "# DJANGO_KEY: String=x\nexport DJANGO_KEY=\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestGenerate_EmptyInput(t *testing.T) {
	got, err := runGenerate(t, newGenerate("-"), "\n\n")
	if err != nil {
		t.Fatal(err)
	}

	if got != "" {
		t.Errorf("empty input produced %q", got)
	}
}

func TestGenerate_JSON(t *testing.T) {
	g := newGenerate("-")
	g.Format = FormatJSON

	got, err := runGenerate(t, g, settings)
	if err != nil {
		t.Fatal(err)
	}

	var doc envvar.Document
	if err := json.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, got)
	}

	tree, err := syntax.Parse(context.Background(), []byte(settings))
	if err != nil {
		t.Fatal(err)
	}

	if doc.Fingerprint != tree.Fingerprint() {
		t.Errorf("fingerprint = %q, want %q", doc.Fingerprint, tree.Fingerprint())
	}

	if len(doc.Settings) != 3 || doc.Settings[1].Name != "DJANGO_DEBUG" || doc.Settings[1].Default != "False" {
		t.Errorf("settings = %+v", doc.Settings)
	}
}

func TestGenerate_YAML(t *testing.T) {
	g := newGenerate("-")
	g.Format = FormatYAML

	got, err := runGenerate(t, g, settings)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"fingerprint:", "name: DJANGO_SECRET_KEY", "type: List"} {
		if !strings.Contains(got, want) {
			t.Errorf("YAML output missing %q:\n%s", want, got)
		}
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		filter string
		want   error
	}{
		{"syntax error", "KEY = values.Value(", "", syntax.ErrParse},
		{"malformed declaration", "KEY = values.Value(bogus=1)", "", envvar.ErrMalformedDeclaration},
		{"invalid filter", settings, "Type ==", envvar.ErrFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGenerate("-")
			g.Filter = tt.filter

			got, err := runGenerate(t, g, tt.src)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}

			if got != "" {
				t.Errorf("failed run wrote %q", got)
			}
		})
	}
}
