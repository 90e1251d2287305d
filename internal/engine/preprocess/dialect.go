package preprocess

import (
	"go/parser"
	"go/token"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
)

// goImport is a package injected into Go scripts together with a reference
// that keeps the compiler from rejecting it as unused.
type goImport struct {
	path  string
	guard string
}

var goImports = []goImport{
	{path: "bufio", guard: "bufio.NewReader"},
	{path: "fmt", guard: "fmt.Sprint"},
	{path: "os", guard: "os.Exit"},
}

// synthesize returns the lines placed before and after the script body.
func synthesize(tc domain.Toolchain, body []string, hasMain bool) (preamble, epilogue []string) {
	if tc.Dialect != domain.DialectGo {
		return slices.Clone(tc.Preamble), nil
	}
	return goSynthesize(body, hasMain)
}

// goSynthesize builds the package clause and an import block holding the
// common packages the script does not import itself. Go rejects both
// duplicate and unused imports, so injected packages are referenced from
// blank declarations after the body.
func goSynthesize(body []string, hasMain bool) (preamble, epilogue []string) {
	src := strings.Join(body, "\n")

	// A complete file only needs the line directive.
	if _, err := parser.ParseFile(token.NewFileSet(), "", src, parser.PackageClauseOnly); err == nil {
		return nil, nil
	}

	imported := map[string]bool{}
	if hasMain {
		imported = scriptImports(src)
	}

	var missing []goImport
	for _, imp := range goImports {
		if !imported[imp.path] {
			missing = append(missing, imp)
		}
	}

	preamble = []string{"package main", ""}
	if len(missing) == 0 {
		return preamble, nil
	}

	preamble = append(preamble, "import (")
	for _, imp := range missing {
		preamble = append(preamble, "\t"+strconv.Quote(imp.path))
	}
	preamble = append(preamble, ")", "")

	epilogue = []string{""}
	for _, imp := range missing {
		epilogue = append(epilogue, "var _ = "+imp.guard)
	}
	return preamble, epilogue
}

// scriptImports returns the import paths declared at the top of a script
// that has no package clause. A script whose imports do not parse is
// treated as importing nothing and the compiler reports the error.
func scriptImports(src string) map[string]bool {
	imported := map[string]bool{}

	f, err := parser.ParseFile(token.NewFileSet(), "", "package main\n"+src, parser.ImportsOnly)
	if err != nil || f == nil {
		return imported
	}

	for _, spec := range f.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		imported[path] = true
	}
	return imported
}
