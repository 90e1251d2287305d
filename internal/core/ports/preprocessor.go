package ports

import "go.trai.ch/kiln/internal/core/domain"

// Preprocessor turns a script into a compilable unit on disk.
//
//go:generate mockgen -source=preprocessor.go -destination=mocks/mock_preprocessor.go -package=mocks
type Preprocessor interface {
	// Preprocess writes the processed source next to outputBase and returns
	// its path.
	Preprocess(
		source []byte,
		mode domain.Mode,
		tc domain.Toolchain,
		origin domain.ScriptIdentity,
		outputBase string,
	) (string, error)
}
