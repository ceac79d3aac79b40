package navigation

import (
	"context"
	"fmt"

	"synapsetalk/internal/events"

	"github.com/wailsapp/wails/v2/pkg/logger"
)

// Control is a sidebar button. Its target is fixed when the shell is built.
type Control struct {
	Target   PageID `json:"target"`
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	Settings bool   `json:"settings"`
}

// Shell composes the sidebar controls with the page registry and routes
// control activations to it.
type Shell struct {
	context  context.Context
	registry *Registry
	controls []Control
	log      logger.Logger
}

// NewShell registers pages in order and derives the sidebar from them: the
// settings page gets the distinguished bottom control, every other page a
// main control. The page set is fixed afterwards.
func NewShell(log logger.Logger, pages ...Page) (*Shell, error) {
	if log == nil {
		log = logger.NewDefaultLogger()
	}
	registry := NewRegistry(log)

	var main []Control
	var settings []Control
	for _, p := range pages {
		if _, err := registry.Register(p); err != nil {
			return nil, fmt.Errorf("register page: %w", err)
		}
		control := Control{Target: p.ID(), Label: p.Title(), Icon: p.Icon()}
		if p.ID() == PageSettings {
			control.Settings = true
			settings = append(settings, control)
			continue
		}
		main = append(main, control)
	}
	registry.Seal()

	return &Shell{
		registry: registry,
		controls: append(main, settings...),
		log:      log,
	}, nil
}

func (s *Shell) Startup(ctx context.Context) {
	s.context = ctx
}

// Controls returns the sidebar controls, main controls first and the settings
// control last.
func (s *Shell) Controls() []Control {
	out := make([]Control, len(s.controls))
	copy(out, s.controls)
	return out
}

// SidebarVisible reports whether there is anything to navigate between.
func (s *Shell) SidebarVisible() bool {
	return s.registry.Len() > 1
}

func (s *Shell) Pages() []Descriptor {
	return s.registry.Descriptors()
}

func (s *Shell) Current() Descriptor {
	index, page := s.registry.Active()
	if page == nil {
		return Descriptor{Index: -1}
	}
	return describe(index, page)
}

// Press activates the control at position i and returns the page now shown.
func (s *Shell) Press(i int) Descriptor {
	if i < 0 || i >= len(s.controls) {
		s.log.Warning(fmt.Sprintf("navigation: ignoring press on control %d (have %d controls)", i, len(s.controls)))
		return s.Current()
	}
	return s.Navigate(s.controls[i].Target)
}

// Navigate shows the page with the given id and returns the page now shown.
func (s *Shell) Navigate(id PageID) Descriptor {
	if !s.registry.SwitchToPage(id) {
		return s.Current()
	}
	return s.changed()
}

// NavigateIndex shows the page at the given stack position.
func (s *Shell) NavigateIndex(index int) Descriptor {
	if !s.registry.SwitchTo(index) {
		return s.Current()
	}
	return s.changed()
}

func (s *Shell) changed() Descriptor {
	current := s.Current()
	events.Emit(s.context, events.NavChanged, events.NewInfo("page changed to "+string(current.ID), current))
	return current
}
