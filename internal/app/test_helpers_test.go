package app

import (
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/andyballingall/deltaenv/internal/env"
	"github.com/andyballingall/deltaenv/internal/report"
)

type MockManager struct {
	mock.Mock
	snapshot env.Snapshot
}

func (m *MockManager) Snapshot() env.Snapshot {
	return m.snapshot
}

func (m *MockManager) ShowEnvironment(w io.Writer, format report.Format, useColour bool) error {
	args := m.Called(w, format, useColour)
	return args.Error(0)
}

func (m *MockManager) ResolvePager(override *string) string {
	args := m.Called(override)
	return args.String(0)
}
