package view

import (
	"context"

	"go.uber.org/zap"
)

// Tab identifies a top-level view of the console.
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabEmployees Tab = "employees"
	TabClaims    Tab = "claims"
	TabFlights   Tab = "flights"
)

// Shell owns the active view. Switching tabs unmounts the current view and
// mounts a fresh one, so every tab visit starts with a clean fetch.
type Shell struct {
	store  Store
	logger *zap.Logger

	Active    Tab
	Dashboard *Dashboard
	Directory *Directory
	Claims    *Claims
	Flights   *Flights
}

// NewShell creates a shell with no mounted view. Call Switch to mount one.
func NewShell(store Store, logger *zap.Logger) *Shell {
	return &Shell{store: store, logger: logger}
}

// Switch mounts a fresh view for the tab and loads it. Any previously
// mounted view is dropped along with its state.
func (s *Shell) Switch(ctx context.Context, tab Tab) {
	s.Active = tab
	s.Dashboard = nil
	s.Directory = nil
	s.Claims = nil
	s.Flights = nil

	switch tab {
	case TabDashboard:
		s.Dashboard = NewDashboard(s.store, s.logger)
		s.Dashboard.Load(ctx)
	case TabEmployees:
		s.Directory = NewDirectory(s.store, s.logger)
		s.Directory.Load(ctx)
	case TabClaims:
		s.Claims = NewClaims(s.store, s.logger)
		s.Claims.Load(ctx)
	case TabFlights:
		s.Flights = NewFlights(s.store, s.logger)
		s.Flights.Load(ctx)
	}
}
