package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/andyballingall/deltaenv/internal/env"
	"github.com/andyballingall/deltaenv/internal/pager"
	"github.com/andyballingall/deltaenv/internal/report"
)

// Manager defines the operations exposed by the CLI.
type Manager interface {
	Snapshot() env.Snapshot
	ShowEnvironment(w io.Writer, format report.Format, useColour bool) error
	ResolvePager(override *string) string
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager acts as a placeholder for a real Manager implementation, allowing
// for deferred initialization of dependencies.
type LazyManager struct {
	inner  Manager
	closer io.Closer
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// SetCloser registers a resource, such as the log file, released by Close.
func (l *LazyManager) SetCloser(c io.Closer) {
	l.closer = c
}

// Close releases the registered resource. It is safe to call more than once.
func (l *LazyManager) Close() error {
	if l.closer == nil {
		return nil
	}
	c := l.closer
	l.closer = nil
	return c.Close()
}

// HasInner returns true if the inner manager has been set.
// This is used by PersistentPreRunE to skip initialization if already configured (e.g., in tests).
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) Snapshot() env.Snapshot {
	return l.check().Snapshot()
}

func (l *LazyManager) ShowEnvironment(w io.Writer, format report.Format, useColour bool) error {
	return l.check().ShowEnvironment(w, format, useColour)
}

func (l *LazyManager) ResolvePager(override *string) string {
	return l.check().ResolvePager(override)
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager is the concrete implementation of the Manager interface. It owns
// the single snapshot taken for this run.
type CLIManager struct {
	logger   *slog.Logger
	snapshot env.Snapshot
	resolver *pager.Resolver
}

func NewCLIManager(l *slog.Logger, s env.Snapshot, r *pager.Resolver) *CLIManager {
	return &CLIManager{
		logger:   l,
		snapshot: s,
		resolver: r,
	}
}

func (m *CLIManager) Snapshot() env.Snapshot {
	return m.snapshot
}

func (m *CLIManager) ShowEnvironment(w io.Writer, format report.Format, useColour bool) error {
	m.logger.Debug("showing environment", "format", format, "useColour", useColour)

	reporter, err := report.New(format, useColour)
	if err != nil {
		return err
	}
	if err = reporter.Write(w, m.snapshot); err != nil {
		return fmt.Errorf("failed to render environment: %w", err)
	}
	return nil
}

// ResolvePager returns the snapshot's resolved pager, or resolves override
// when one is given.
func (m *CLIManager) ResolvePager(override *string) string {
	if override == nil {
		if p, ok := m.snapshot.ResolvedPager(); ok {
			return p
		}
	}
	p := m.resolver.Executable(override)
	m.logger.Debug("resolved pager", "override", override != nil, "pager", p)
	return p
}
