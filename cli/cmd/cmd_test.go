package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
)

// writeTemp writes content to a file in a per-test directory.
func writeTemp(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.py")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestReadSource_File(t *testing.T) {
	path := writeTemp(t, "DEBUG = True\n")

	src, err := readSource(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}

	if string(src) != "DEBUG = True\n" {
		t.Errorf("readSource = %q", src)
	}
}

func TestReadSource_Stdin(t *testing.T) {
	for _, name := range []string{"", "-"} {
		t.Run("name="+name, func(t *testing.T) {
			ctx := WithInput(context.Background(), strings.NewReader("X = 1"))

			src, err := readSource(ctx, name)
			if err != nil {
				t.Fatal(err)
			}

			if string(src) != "X = 1" {
				t.Errorf("readSource = %q", src)
			}
		})
	}
}

func TestReadSource_MissingFile(t *testing.T) {
	_, err := readSource(context.Background(), filepath.Join(t.TempDir(), "absent.py"))
	if !errors.Is(err, ErrOpenInput) {
		t.Fatalf("error = %v, want %v", err, ErrOpenInput)
	}

	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error %v should wrap os.ErrNotExist", err)
	}
}

func TestReadSource_StdinFailure(t *testing.T) {
	ctx := WithInput(context.Background(), iotest.ErrReader(errors.New("device gone")))

	_, err := readSource(ctx, "-")
	if !errors.Is(err, ErrReadStdin) {
		t.Fatalf("error = %v, want %v", err, ErrReadStdin)
	}
}

func TestReadSource_StdinInterrupted(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(WithInput(context.Background(), r))
	cancel()

	_, err := readSource(ctx, "-")
	if !errors.Is(err, ErrReadStdin) {
		t.Fatalf("error = %v, want %v", err, ErrReadStdin)
	}

	if !errors.Is(err, context.Canceled) {
		t.Errorf("error %v should wrap context.Canceled", err)
	}
}

func TestStreams_Defaults(t *testing.T) {
	ctx := context.Background()

	if inputFrom(ctx) != os.Stdin {
		t.Error("default input should be os.Stdin")
	}

	if outputFrom(ctx) != os.Stdout {
		t.Error("default output should be os.Stdout")
	}

	if kongContextFrom(ctx) != nil {
		t.Error("kong context should be absent")
	}
}
