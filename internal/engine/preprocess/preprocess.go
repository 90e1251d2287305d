// Package preprocess turns script sources into units an external compiler can build.
package preprocess

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// ShebangMarker starts the interpreter line of a script.
const ShebangMarker = "#!"

// innerAttributeMarker starts a Rust inner attribute such as #![allow(...)],
// which shares the shebang's first two characters.
const innerAttributeMarker = "#!["

// Preprocessor rewrites scripts according to a toolchain and a mode.
type Preprocessor struct{}

// New creates a new Preprocessor.
func New() *Preprocessor {
	return &Preprocessor{}
}

// Preprocess transforms source and writes the result to outputBase with the
// toolchain's source extension. It returns the path of the written file.
func (p *Preprocessor) Preprocess(
	source []byte,
	mode domain.Mode,
	tc domain.Toolchain,
	origin domain.ScriptIdentity,
	outputBase string,
) (string, error) {
	processed := p.Transform(source, mode, tc, origin)

	path := outputBase + tc.SourceExt
	if err := writeAtomic(path, processed); err != nil {
		return "", zerr.With(zerr.Wrap(errors.Join(domain.ErrSourceWriteFailed, err), "failed to store processed source"), "path", path)
	}
	return path, nil
}

// Transform returns the compilable unit for source. The first line is
// replaced by an empty line when it is a shebang, in every mode, so that
// compiler diagnostics keep the script's line numbers.
func (p *Preprocessor) Transform(
	source []byte,
	mode domain.Mode,
	tc domain.Toolchain,
	origin domain.ScriptIdentity,
) []byte {
	body := splitLines(source)
	if len(body) > 0 && isShebang(body[0]) {
		body[0] = ""
	}

	if mode != domain.ModeMainSynthesis {
		return joinLines(body)
	}

	hasMain := false
	for _, line := range body {
		if tc.EntryPoint != "" && strings.HasPrefix(line, tc.EntryPoint) {
			hasMain = true
			break
		}
	}

	preamble, epilogue := synthesize(tc, body, hasMain)
	out := make([]string, 0, len(preamble)+len(body)+len(epilogue)+3)
	out = append(out, preamble...)
	if !hasMain {
		out = append(out, tc.WrapOpen)
	}
	if tc.LineDirective != "" {
		out = append(out, fmt.Sprintf(tc.LineDirective, origin))
	}
	out = append(out, body...)
	if !hasMain {
		out = append(out, tc.WrapClose)
	}
	out = append(out, epilogue...)

	return joinLines(out)
}

func isShebang(line string) bool {
	return strings.HasPrefix(line, ShebangMarker) && !strings.HasPrefix(line, innerAttributeMarker)
}

// splitLines splits on '\n' and drops a trailing '\r' from each line.
// A final newline does not produce an extra empty line.
func splitLines(source []byte) []string {
	if len(source) == 0 {
		return nil
	}
	lines := strings.Split(string(source), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func joinLines(lines []string) []byte {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// writeAtomic writes data to a temporary file next to path and renames it
// into place, so concurrent readers never see a partial file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp source file")
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, err := os.Stat(tmpName); err == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to write temp source file")
	}

	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, "failed to close temp source file")
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to chmod temp source file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.Wrap(err, "failed to rename temp source file")
	}

	return nil
}
