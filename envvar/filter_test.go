package envvar

import (
	"errors"
	"testing"
)

func TestFilter(t *testing.T) {
	src := `HOSTS = values.ListValue(['a'], separator=';')
DEBUG = values.BooleanValue(True)
SECRET_KEY = values.SecretValue()
DB = values.DatabaseURLValue(environ_prefix='APP')
`

	tests := []struct {
		expr string
		want []string
	}{
		{"", []string{"DJANGO_HOSTS", "DJANGO_DEBUG", "DJANGO_SECRET_KEY", "APP_DB"}},
		{`Type == "List"`, []string{"DJANGO_HOSTS"}},
		{`Param("separator") == ";"`, []string{"DJANGO_HOSTS"}},
		{`!HasDefault`, []string{"DJANGO_SECRET_KEY", "APP_DB"}},
		{`Name startsWith "DJANGO_" && Type != "Secret"`, []string{"DJANGO_HOSTS", "DJANGO_DEBUG"}},
		{`Line > 2`, []string{"DJANGO_SECRET_KEY", "APP_DB"}},
	}

	ds := analyze(t, src)

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := NewFilter(tt.expr)
			if err != nil {
				t.Fatal(err)
			}

			got, err := f.Apply(ds)
			if err != nil {
				t.Fatal(err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("got %d descriptors, want %d: %s", len(got), len(tt.want), Text(got))
			}

			for i, d := range got {
				if d.Name() != tt.want[i] {
					t.Errorf("descriptor %d = %s, want %s", i, d.Name(), tt.want[i])
				}
			}
		})
	}
}

func TestNewFilter_Invalid(t *testing.T) {
	for _, src := range []string{`Type ==`, `Name + 1`, `Unknown == 1`} {
		if _, err := NewFilter(src); !errors.Is(err, ErrFilter) {
			t.Errorf("NewFilter(%q) error = %v, want ErrFilter", src, err)
		}
	}
}

func TestFilter_Nil(t *testing.T) {
	var f *Filter

	ds := analyze(t, "X = values.Value()")

	got, err := f.Apply(ds)
	if err != nil || len(got) != 1 {
		t.Errorf("nil filter Apply() = %v, %v", got, err)
	}

	if f.String() != "" {
		t.Errorf("nil filter String() = %q", f.String())
	}
}
