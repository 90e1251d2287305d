package preprocess_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/engine/preprocess"
)

func countLines(b []byte) int {
	return strings.Count(string(b), "\n")
}

func countPrefixed(b []byte, prefix string) int {
	n := 0
	for _, line := range strings.Split(string(b), "\n") {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

func TestTransform_Golden(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		mode       domain.Mode
		tc         domain.Toolchain
		origin     domain.ScriptIdentity
		goldenName string
	}{
		{
			name:       "raw mode blanks the shebang",
			source:     "#!/usr/bin/env kiln\npackage main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n",
			mode:       domain.ModeRaw,
			tc:         domain.GoToolchain(),
			goldenName: "raw_shebang",
		},
		{
			name:       "raw mode without shebang is unchanged",
			source:     "package main\n\nfunc main() {}\n",
			mode:       domain.ModeRaw,
			tc:         domain.GoToolchain(),
			goldenName: "raw_no_shebang",
		},
		{
			name:       "go body is wrapped",
			source:     "#!/usr/bin/env kiln\nfmt.Println(os.Args[1:])\n",
			mode:       domain.ModeMainSynthesis,
			tc:         domain.GoToolchain(),
			origin:     "/scripts/args.go",
			goldenName: "go_main_wrapped",
		},
		{
			name:       "go script with main keeps its own imports",
			source:     "#!/usr/bin/env kiln\nimport (\n\t\"fmt\"\n\t\"strings\"\n)\n\nfunc main() {\n\tfmt.Println(strings.ToUpper(\"hi\"))\n}\n",
			mode:       domain.ModeMainSynthesis,
			tc:         domain.GoToolchain(),
			origin:     "/scripts/upper.go",
			goldenName: "go_main_existing",
		},
		{
			name:       "complete go file only gets a line directive",
			source:     "#!/usr/bin/env kiln\npackage main\n\nfunc main() {}\n",
			mode:       domain.ModeMainSynthesis,
			tc:         domain.GoToolchain(),
			origin:     "/scripts/full.go",
			goldenName: "go_main_complete_file",
		},
		{
			name:       "rust body is wrapped",
			source:     "#!/usr/bin/env kiln\nprintln!(\"{:?}\", args().collect::<Vec<_>>());\n",
			mode:       domain.ModeMainSynthesis,
			tc:         domain.RustToolchain(),
			goldenName: "rust_main_wrapped",
		},
		{
			name:       "rust inner attribute on the first line is kept",
			source:     "#![allow(dead_code)]\nfn unused() {}\n\nfn main() {}\n",
			mode:       domain.ModeRaw,
			tc:         domain.RustToolchain(),
			goldenName: "rust_inner_attribute",
		},
		{
			name:       "rust script with main is not wrapped",
			source:     "fn main() {\n    exit(7);\n}\n",
			mode:       domain.ModeMainSynthesis,
			tc:         domain.RustToolchain(),
			goldenName: "rust_main_existing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := preprocess.New().Transform([]byte(tt.source), tt.mode, tt.tc, tt.origin)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, out)
		})
	}
}

func TestTransform_RawPreservesLineCount(t *testing.T) {
	sources := []string{
		"#!/usr/bin/env kiln\na\nb\nc\n",
		"#!/usr/bin/env kiln\na\nb\nc",
		"a\nb\n",
		"#!/usr/bin/env kiln\r\na\r\nb\r\n",
		"",
	}

	p := preprocess.New()
	for _, src := range sources {
		out := p.Transform([]byte(src), domain.ModeRaw, domain.GoToolchain(), "")
		expected := len(strings.Split(strings.TrimSuffix(src, "\n"), "\n"))
		if src == "" {
			expected = 0
		}
		assert.Equal(t, expected, countLines(out), "source %q", src)
		assert.NotContains(t, string(out), "#!")
		assert.NotContains(t, string(out), "\r")
	}
}

func TestTransform_MainSynthesisLineCount(t *testing.T) {
	tc := domain.RustToolchain()
	src := "let x = 1;\nprintln!(\"{}\", x);\nexit(0);\n"

	out := preprocess.New().Transform([]byte(src), domain.ModeMainSynthesis, tc, "")

	assert.Equal(t, 3+len(tc.Preamble)+2, countLines(out))
}

func TestTransform_SingleEntryPoint(t *testing.T) {
	tests := []struct {
		name   string
		tc     domain.Toolchain
		source string
	}{
		{name: "go wrapped", tc: domain.GoToolchain(), source: "fmt.Println(1)\n"},
		{name: "go existing", tc: domain.GoToolchain(), source: "func main() {\n\tfmt.Println(1)\n}\n"},
		{name: "rust wrapped", tc: domain.RustToolchain(), source: "println!(\"1\");\n"},
		{name: "rust existing", tc: domain.RustToolchain(), source: "fn main() {\n    println!(\"1\");\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := preprocess.New().Transform([]byte(tt.source), domain.ModeMainSynthesis, tt.tc, "/s")

			assert.Equal(t, 1, countPrefixed(out, tt.tc.EntryPoint))
		})
	}
}

func TestTransform_GoScriptImportingEverything(t *testing.T) {
	src := "import (\n\t\"bufio\"\n\t\"fmt\"\n\t\"os\"\n)\n\nfunc main() {\n\t_ = bufio.NewScanner(os.Stdin)\n\tfmt.Println()\n}\n"

	out := string(preprocess.New().Transform([]byte(src), domain.ModeMainSynthesis, domain.GoToolchain(), "/s.go"))

	assert.True(t, strings.HasPrefix(out, "package main\n\n//line /s.go:1\n"))
	assert.NotContains(t, out, "var _ =")
}

func TestTransform_Deterministic(t *testing.T) {
	src := []byte("#!/usr/bin/env kiln\nfmt.Println(os.Args)\n")
	p := preprocess.New()

	for _, mode := range []domain.Mode{domain.ModeRaw, domain.ModeMainSynthesis} {
		first := p.Transform(src, mode, domain.GoToolchain(), "/s.go")
		second := p.Transform(src, mode, domain.GoToolchain(), "/s.go")
		assert.Equal(t, first, second)
	}
}

func TestPreprocess_WritesSource(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "abc")
	p := preprocess.New()
	tc := domain.RustToolchain()

	path, err := p.Preprocess([]byte("println!(\"1\");\n"), domain.ModeMainSynthesis, tc, "/s.rs", base)
	require.NoError(t, err)
	assert.Equal(t, base+".rs", path)

	//nolint:gosec // Test file
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, p.Transform([]byte("println!(\"1\");\n"), domain.ModeMainSynthesis, tc, "/s.rs"), content)

	// A second run overwrites the previous output unconditionally.
	_, err = p.Preprocess([]byte("fn main() {}\n"), domain.ModeRaw, tc, "/s.rs", base)
	require.NoError(t, err)
	//nolint:gosec // Test file
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fn main() {}\n", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left behind")
}

func TestPreprocess_WriteFailure(t *testing.T) {
	base := filepath.Join(t.TempDir(), "missing", "abc")

	_, err := preprocess.New().Preprocess([]byte("x"), domain.ModeRaw, domain.GoToolchain(), "/s.go", base)

	require.ErrorIs(t, err, domain.ErrSourceWriteFailed)
}
