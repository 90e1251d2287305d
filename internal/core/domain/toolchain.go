package domain

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// InputPlaceholder is replaced by the processed source path in compile commands.
	InputPlaceholder = "{input}"
	// OutputPlaceholder is replaced by the executable path in compile commands.
	OutputPlaceholder = "{output}"

	// DialectGo enables Go specific preamble handling.
	DialectGo = "go"
)

// Toolchain describes how scripts of one language are preprocessed and compiled.
type Toolchain struct {
	Name string
	// Extensions are the script file extensions selecting this toolchain.
	Extensions []string
	// SourceExt is the extension of the processed compiler input.
	SourceExt string
	// Command is the compile command with {input} and {output} placeholders.
	Command []string

	// EntryPoint is the line prefix that marks a top-level entry point.
	EntryPoint string
	// Preamble is prepended in main synthesis mode.
	Preamble []string
	// WrapOpen and WrapClose surround a body lacking an entry point.
	WrapOpen  string
	WrapClose string
	// LineDirective is a format string taking the script path that resets
	// the compiler's line numbering to line 1 of the script.
	LineDirective string
	// Dialect selects language specific preamble handling.
	Dialect string
}

// CompileArgs expands the compile command for the given input and output.
func (t Toolchain) CompileArgs(input, output string) []string {
	args := make([]string, len(t.Command))
	for i, arg := range t.Command {
		arg = strings.ReplaceAll(arg, InputPlaceholder, input)
		args[i] = strings.ReplaceAll(arg, OutputPlaceholder, output)
	}
	return args
}

// Validate checks that the toolchain can compile a script.
func (t Toolchain) Validate() error {
	switch {
	case t.Name == "":
		return zerr.Wrap(ErrInvalidToolchain, "toolchain name is empty")
	case t.SourceExt == "":
		return zerr.With(zerr.Wrap(ErrInvalidToolchain, "source extension is empty"), "toolchain", t.Name)
	case len(t.Command) == 0:
		return zerr.With(zerr.Wrap(ErrInvalidToolchain, "compile command is empty"), "toolchain", t.Name)
	}

	joined := strings.Join(t.Command, " ")
	if !strings.Contains(joined, InputPlaceholder) || !strings.Contains(joined, OutputPlaceholder) {
		return zerr.With(
			zerr.Wrap(ErrInvalidToolchain, "compile command must reference {input} and {output}"),
			"toolchain", t.Name,
		)
	}
	return nil
}

// Merge returns t with every non-empty field of o applied on top.
func (t Toolchain) Merge(o Toolchain) Toolchain {
	if o.Name != "" {
		t.Name = o.Name
	}
	if len(o.Extensions) > 0 {
		t.Extensions = slices.Clone(o.Extensions)
	}
	if o.SourceExt != "" {
		t.SourceExt = o.SourceExt
	}
	if len(o.Command) > 0 {
		t.Command = slices.Clone(o.Command)
	}
	if o.EntryPoint != "" {
		t.EntryPoint = o.EntryPoint
	}
	if len(o.Preamble) > 0 {
		t.Preamble = slices.Clone(o.Preamble)
	}
	if o.WrapOpen != "" {
		t.WrapOpen = o.WrapOpen
	}
	if o.WrapClose != "" {
		t.WrapClose = o.WrapClose
	}
	if o.LineDirective != "" {
		t.LineDirective = o.LineDirective
	}
	if o.Dialect != "" {
		t.Dialect = o.Dialect
	}
	return t
}

// GoToolchain compiles scripts with `go build`.
func GoToolchain() Toolchain {
	return Toolchain{
		Name:          "go",
		Extensions:    []string{".go"},
		SourceExt:     ".go",
		Command:       []string{"go", "build", "-o", OutputPlaceholder, InputPlaceholder},
		EntryPoint:    "func main(",
		WrapOpen:      "func main() {",
		WrapClose:     "}",
		LineDirective: "//line %s:1",
		Dialect:       DialectGo,
	}
}

// RustToolchain compiles scripts with `rustc`.
func RustToolchain() Toolchain {
	return Toolchain{
		Name:       "rust",
		Extensions: []string{".rs"},
		SourceExt:  ".rs",
		Command:    []string{"rustc", "-o", OutputPlaceholder, InputPlaceholder},
		EntryPoint: "fn main(",
		Preamble: []string{
			"#![allow(unused_imports)]",
			"use std::env::args;",
			"use std::io::*;",
			"use std::process::exit;",
			"",
		},
		WrapOpen:  "fn main() {",
		WrapClose: "}",
	}
}

// Config is the user configuration of kiln.
type Config struct {
	// Default names the toolchain used when nothing else selects one.
	Default    string
	Toolchains map[string]Toolchain
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	goTC := GoToolchain()
	rustTC := RustToolchain()
	return &Config{
		Default: goTC.Name,
		Toolchains: map[string]Toolchain{
			goTC.Name:   goTC,
			rustTC.Name: rustTC,
		},
	}
}

// Select picks the toolchain for a script. An explicit name wins, then a
// toolchain whose extensions match the script path, then the default.
func (c *Config) Select(name, scriptPath string) (Toolchain, error) {
	if name != "" {
		return c.lookup(name)
	}

	if ext := filepath.Ext(scriptPath); ext != "" {
		names := make([]string, 0, len(c.Toolchains))
		for n := range c.Toolchains {
			names = append(names, n)
		}
		slices.Sort(names)

		for _, n := range names {
			tc := c.Toolchains[n]
			if slices.ContainsFunc(tc.Extensions, func(e string) bool { return strings.EqualFold(e, ext) }) {
				return tc, nil
			}
		}
	}

	return c.lookup(c.Default)
}

func (c *Config) lookup(name string) (Toolchain, error) {
	tc, ok := c.Toolchains[name]
	if !ok {
		return Toolchain{}, zerr.With(zerr.Wrap(ErrUnknownToolchain, "no toolchain named "+name), "toolchain", name)
	}
	return tc, nil
}
