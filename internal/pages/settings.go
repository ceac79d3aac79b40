package pages

import (
	"context"
	"fmt"
	"sync"

	"synapsetalk/internal/config"
	"synapsetalk/internal/events"
	"synapsetalk/internal/models"
	"synapsetalk/internal/navigation"
)

const SettingsSavedMessage = "Settings have been successfully updated."

// ConfigStore is the persistence the settings page edits.
type ConfigStore interface {
	Load() config.Values
	Save(updates config.Values) error
}

// SaveResult is returned to the frontend after a successful save.
type SaveResult struct {
	Message string              `json:"message"`
	Form    models.SettingsForm `json:"form"`
}

// Settings edits credentials and the model repository list. The form is
// loaded once when the page is built; Save writes through immediately.
type Settings struct {
	context context.Context
	store   ConfigStore

	mu   sync.Mutex
	form models.SettingsForm
}

func NewSettings(store ConfigStore) *Settings {
	s := &Settings{store: store}
	s.form = formFromValues(store.Load())
	return s
}

func (s *Settings) Startup(ctx context.Context) {
	s.context = ctx
}

func (s *Settings) ID() navigation.PageID { return navigation.PageSettings }
func (s *Settings) Title() string         { return "Settings" }
func (s *Settings) Icon() string          { return "assets/setting.svg" }

// Form returns the current edit session.
func (s *Settings) Form() models.SettingsForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Reload discards the edit session and re-reads the configuration file.
func (s *Settings) Reload() models.SettingsForm {
	form := formFromValues(s.store.Load())
	s.mu.Lock()
	s.form = form
	s.mu.Unlock()
	return form
}

// Save persists every non-empty field. A blank field keeps its stored value;
// it does not clear it.
func (s *Settings) Save(form models.SettingsForm) (*SaveResult, error) {
	if err := s.store.Save(valuesFromForm(form)); err != nil {
		events.Emit(s.context, events.SettingsSaved, events.NewError("failed to save settings", err.Error()))
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	s.mu.Lock()
	s.form = form
	s.mu.Unlock()

	events.Emit(s.context, events.SettingsSaved, events.NewSuccess(SettingsSavedMessage, nil))
	return &SaveResult{Message: SettingsSavedMessage, Form: form}, nil
}

func formFromValues(v config.Values) models.SettingsForm {
	return models.SettingsForm{
		OpenAIKey:        v[config.OpenAIAPIKey],
		GoogleKey:        v[config.GoogleAPIKey],
		HuggingFaceToken: v[config.HuggingFaceToken],
		ModelRepos:       config.SplitRepos(v[config.ModelRepos]),
	}
}

func valuesFromForm(f models.SettingsForm) config.Values {
	return config.Values{
		config.OpenAIAPIKey:     f.OpenAIKey,
		config.GoogleAPIKey:     f.GoogleKey,
		config.HuggingFaceToken: f.HuggingFaceToken,
		config.ModelRepos:       config.JoinRepos(f.ModelRepos),
	}
}
