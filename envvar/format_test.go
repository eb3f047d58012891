package envvar

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestSort(t *testing.T) {
	src := "B = values.Value()\nA = values.Value()\nAB = values.Value(environ_prefix='A')\n"

	ds := analyze(t, src)

	unsorted := Text(ds)
	if !strings.HasPrefix(unsorted, "# DJANGO_B: String") {
		t.Errorf("unsorted output should keep discovery order:\n%s", unsorted)
	}

	Sort(ds)

	var names []string
	for _, d := range ds {
		names = append(names, d.Name())
	}

	if got := strings.Join(names, ","); got != "A_AB,DJANGO_A,DJANGO_B" {
		t.Errorf("sorted names = %s", got)
	}
}

func TestSort_Stable(t *testing.T) {
	ds := analyze(t, "X = values.Value(1)\nY = values.Value(2, environ_name='X')\n")

	Sort(ds)

	if d, _ := ds[0].Default(); d != "1" {
		t.Errorf("equal names should keep discovery order, first default = %q", d)
	}
}

func TestLines(t *testing.T) {
	ds := analyze(t, "SECRET_KEY = SecretValue()\nDEBUG = values.BooleanValue(False)\n")

	want := []string{
		"# DJANGO_SECRET_KEY: Secret",
		"export DJANGO_SECRET_KEY=",
		"# DJANGO_DEBUG: Boolean=False",
		"export DJANGO_DEBUG=",
	}

	got := Lines(ds)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("Lines() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}

	if Lines(nil) == nil || len(Lines(nil)) != 0 {
		t.Error("Lines(nil) should be an empty slice")
	}
}

func TestColorText_PlainContent(t *testing.T) {
	ds := analyze(t, "HOSTS = values.ListValue(['a'])\n")

	out := ColorText(ds)
	for _, want := range []string{"DJANGO_HOSTS", "List", "(separator=,)", "export DJANGO_HOSTS="} {
		if !strings.Contains(out, want) {
			t.Errorf("ColorText() = %q, missing %q", out, want)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	ds := analyze(t, "HOSTS = values.ListValue(['a', 'b'])\nKEY = values.SecretValue()\n")

	var buf bytes.Buffer
	if err := WriteJSON(context.Background(), &buf, NewDocument("abc", ds), 2); err != nil {
		t.Fatal(err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}

	if doc.Fingerprint != "abc" || len(doc.Settings) != 2 {
		t.Fatalf("document = %+v", doc)
	}

	hosts := doc.Settings[0]
	if hosts.Name != "DJANGO_HOSTS" || hosts.Type != "List" || hosts.Default != "a,b" || hosts.Line != 1 {
		t.Errorf("hosts = %+v", hosts)
	}

	if hosts.Param("separator") != "," {
		t.Errorf("separator = %q", hosts.Param("separator"))
	}

	if strings.Contains(buf.String(), `"default": ""`) {
		t.Errorf("absent default should be omitted:\n%s", buf.String())
	}
}

func TestWriteYAML(t *testing.T) {
	ds := analyze(t, "ROOT = values.PathValue('/srv')\n")

	var buf bytes.Buffer
	if err := WriteYAML(context.Background(), &buf, NewDocument("f", ds), 2); err != nil {
		t.Fatal(err)
	}

	var doc Document
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, buf.String())
	}

	if len(doc.Settings) != 1 || doc.Settings[0].Default != "/srv" {
		t.Fatalf("document = %+v", doc)
	}

	if got := doc.Settings[0].Param("checks_exists"); got != "True" {
		t.Errorf("checks_exists = %q", got)
	}
}
