package app

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/andyballingall/deltaenv/internal/env"
	"github.com/andyballingall/deltaenv/internal/osenv"
	"github.com/andyballingall/deltaenv/internal/pager"
	"github.com/andyballingall/deltaenv/internal/report"
)

func newTestManager(values map[string]string) *CLIManager {
	p := &osenv.MapProvider{Values: values, Dir: "/repo"}
	r := pager.NewResolver(p)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCLIManager(logger, env.Capture(p, r), r)
}

func TestLazyManager(t *testing.T) {
	t.Parallel()

	t.Run("panics before initialization", func(t *testing.T) {
		t.Parallel()
		lazy := &LazyManager{}
		assert.False(t, lazy.HasInner())
		assert.Panics(t, func() { lazy.Snapshot() })
	})

	t.Run("delegates to inner", func(t *testing.T) {
		t.Parallel()
		mgr := &MockManager{}
		lazy := &LazyManager{}
		lazy.SetInner(mgr)
		assert.True(t, lazy.HasInner())

		var buf bytes.Buffer
		mgr.On("ShowEnvironment", &buf, report.FormatJSON, true).Return(nil)
		mgr.On("ResolvePager", (*string)(nil)).Return("less")

		require.NoError(t, lazy.ShowEnvironment(&buf, report.FormatJSON, true))
		assert.Equal(t, "less", lazy.ResolvePager(nil))
		assert.True(t, lazy.Snapshot().Equal(env.Snapshot{}))
		mgr.AssertExpectations(t)
	})
}

type countingCloser struct {
	calls int
}

func (c *countingCloser) Close() error {
	c.calls++
	return nil
}

func TestLazyManager_Close(t *testing.T) {
	t.Parallel()

	t.Run("without closer", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, (&LazyManager{}).Close())
	})

	t.Run("closes once", func(t *testing.T) {
		t.Parallel()
		c := &countingCloser{}
		lazy := &LazyManager{}
		lazy.SetCloser(c)

		require.NoError(t, lazy.Close())
		require.NoError(t, lazy.Close())
		assert.Equal(t, 1, c.calls)
	})
}

func TestCLIManager_ShowEnvironment(t *testing.T) {
	t.Parallel()

	m := newTestManager(map[string]string{
		env.DeltaFeatures: "line-numbers",
		pager.EnvVar:      "more",
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, m.ShowEnvironment(&buf, report.FormatJSON, false))
		assert.Equal(t, "line-numbers", gjson.Get(buf.String(), "features").String())
		assert.Equal(t, "less", gjson.Get(buf.String(), "resolved_pager").String())
		require.NoError(t, report.Validate(buf.Bytes()))
	})

	t.Run("text", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, m.ShowEnvironment(&buf, report.FormatText, false))
		assert.Contains(t, buf.String(), "ENVIRONMENT SNAPSHOT")
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		err := m.ShowEnvironment(io.Discard, "toml", false)
		var target *report.UnknownFormatError
		require.ErrorAs(t, err, &target)
	})

	t.Run("write failure", func(t *testing.T) {
		t.Parallel()
		err := m.ShowEnvironment(&errWriter{}, report.FormatText, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to render environment")
	})
}

func TestCLIManager_ResolvePager(t *testing.T) {
	t.Parallel()

	m := newTestManager(map[string]string{pager.EnvVar: "bat"})

	assert.Equal(t, "bat", m.ResolvePager(nil))

	most := "most"
	assert.Equal(t, pager.DefaultPager, m.ResolvePager(&most))

	custom := "ov"
	assert.Equal(t, "ov", m.ResolvePager(&custom))

	// A zero snapshot falls back to the resolver.
	zero := NewCLIManager(slog.New(slog.NewTextHandler(io.Discard, nil)), env.Snapshot{},
		pager.NewResolver(&osenv.MapProvider{}))
	assert.Equal(t, pager.DefaultPager, zero.ResolvePager(nil))
}

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }
