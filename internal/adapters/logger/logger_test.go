package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/logger"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
// It also sets NO_COLOR=1 to ensure deterministic output without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_InfoWarn(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("deleted /cache/kiln/abc")
	lg.Warn("skipped cache entry")

	assert.Equal(t, "deleted /cache/kiln/abc\n! skipped cache entry\n", buf.String())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("connection refused"), "failed to fetch"),
				"failed to process request",
			),
			goldenName: "error_chain_zerr",
		},
		{
			name: "sentinel joined with cause",
			err: zerr.With(
				zerr.Wrap(errors.Join(domain.ErrUnresolvablePath, os.ErrNotExist), "failed to resolve script"),
				"path", "hello.go",
			),
			goldenName: "error_sentinel_join",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_StdlibChain(t *testing.T) {
	// fmt.Errorf chains are printed in one piece.
	inner := errors.New("connection refused")
	outer := fmt.Errorf("failed to initialize: %w", inner)

	lg, buf := newTestLogger(t)
	lg.Error(outer)

	assert.Equal(t, "✗ Error: failed to initialize: connection refused\n", buf.String())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String(), "Expected no output for nil error")
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(zerr.With(zerr.Wrap(errors.New("exit status 2"), "compiler reported errors"), "source", "abc.go"))

	output := buf.String()
	assert.Contains(t, output, `"level":"ERROR"`)
	assert.Contains(t, output, `"error"`)
	assert.Contains(t, output, "compiler reported errors")
	assert.NotContains(t, output, "✗", "JSON format should not have pretty markers")
}

func TestNewFromEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		json  bool
	}{
		{name: "unset", value: ""},
		{name: "pretty", value: "pretty"},
		{name: "json", value: "json", json: true},
		{name: "json with case and spaces", value: " JSON ", json: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "1")
			lg := logger.NewFromEnv(func(key string) string {
				if key == logger.FormatEnv {
					return tt.value
				}
				return ""
			}).(*logger.Logger)
			buf := &bytes.Buffer{}
			lg.SetOutput(buf)

			lg.Info("compiled")

			if tt.json {
				assert.Contains(t, buf.String(), `"msg":"compiled"`)
				return
			}
			assert.Equal(t, "compiled\n", buf.String())
		})
	}
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(errors.New("pretty"))
	pretty := buf.String()
	buf.Reset()

	lg.SetJSON(true)
	lg.Error(errors.New("json"))
	jsonOut := buf.String()
	buf.Reset()

	lg.SetJSON(false)
	lg.Error(errors.New("pretty again"))
	prettyAgain := buf.String()

	assert.Contains(t, pretty, "✗")
	assert.Contains(t, jsonOut, `"error"`)
	assert.NotContains(t, jsonOut, "✗")
	assert.Contains(t, prettyAgain, "✗")
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New().(*logger.Logger)
		lg.SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	var wg sync.WaitGroup
	ops := []func(){
		func() { lg.Info("concurrent info") },
		func() { lg.Warn("concurrent warn") },
		func() { lg.Error(errors.New("concurrent error")) },
		func() { lg.SetJSON(true) },
		func() { lg.SetJSON(false) },
		func() { lg.SetOutput(&bytes.Buffer{}) },
	}
	for _, op := range ops {
		wg.Add(1)
		go func() {
			defer wg.Done()
			op()
		}()
	}
	wg.Wait()
}
