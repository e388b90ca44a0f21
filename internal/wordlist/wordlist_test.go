package wordlist

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NilError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	names := DefaultNames()
	templates := DefaultTemplates()

	assert.Assert(t, len(names) > 0)
	assert.Assert(t, len(templates) > 0)
	for _, n := range names {
		assert.Assert(t, n != "", "blank bundled name")
	}
	for _, tmpl := range templates {
		assert.Assert(t, tmpl != "", "blank bundled template")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single", "Bob", []string{"Bob"}},
		{"trailing newline", "Bob\nAlice\n", []string{"Bob", "Alice"}},
		{"blank lines", "\n\nBob\n   \n\nAlice", []string{"Bob", "Alice"}},
		{"crlf", "Bob\r\nAlice\r\n", []string{"Bob", "Alice"}},
		{"inner spaces kept", "Fixed XNAMEX's bug\n", []string{"Fixed XNAMEX's bug"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.DeepEqual(t, Parse(tt.in), tt.want)
		})
	}
}

func TestLoadText(t *testing.T) {
	path := writeFile(t, "names.txt", "John\n\nJane\n")

	got, err := Load(path)

	assert.NilError(t, err)
	assert.DeepEqual(t, got, []string{"John", "Jane"})
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "templates.yaml", `- "XNAMEX did it"
- ""
- Fixed XNUM5X bugs
`)

	got, err := Load(path)

	assert.NilError(t, err)
	assert.DeepEqual(t, got, []string{"XNAMEX did it", "Fixed XNUM5X bugs"})
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.txt")

		_, err := Load(path)

		var le *LoadError
		assert.Assert(t, errors.As(err, &le))
		assert.Equal(t, le.Path, path)
		assert.Assert(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("only blank lines", func(t *testing.T) {
		path := writeFile(t, "blank.txt", "\n  \n\n")

		_, err := Load(path)

		assert.ErrorIs(t, err, ErrEmptySource)
		assert.ErrorContains(t, err, "blank.txt")
	})

	t.Run("empty yaml", func(t *testing.T) {
		path := writeFile(t, "empty.yml", "")

		_, err := Load(path)

		assert.ErrorIs(t, err, ErrEmptySource)
	})

	t.Run("yaml mapping", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "names: [a, b]\n")

		_, err := Load(path)

		var le *LoadError
		assert.Assert(t, errors.As(err, &le))
		assert.ErrorContains(t, err, "parse yaml")
	})
}

func TestLoadOr(t *testing.T) {
	fallback := func() []string { return []string{"default"} }

	got, err := LoadOr("", fallback)
	assert.NilError(t, err)
	assert.DeepEqual(t, got, []string{"default"})

	path := writeFile(t, "names.txt", "custom\n")
	got, err = LoadOr(path, fallback)
	assert.NilError(t, err)
	assert.DeepEqual(t, got, []string{"custom"})
}
