package window

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application key the settings live under.
const AppName = "turbo-hedgehog"

const (
	settingsObject   = "settings"
	settingsProperty = "window"
)

// Settings are the window preferences kept between sessions.
type Settings struct {
	Scale      float64 `yaml:"scale"`
	Fullscreen bool    `yaml:"fullscreen"`
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() Settings {
	return Settings{Scale: 1}
}

// normalize keeps the scale in a range a window can open at.
func (s Settings) normalize() Settings {
	if s.Scale <= 0 {
		s.Scale = 1
	}
	s.Scale = min(max(s.Scale, 0.5), 4)
	return s
}

// SettingsStore persists Settings with gdata. A nil manager keeps
// settings in memory only.
type SettingsStore struct {
	manager  *gdata.Manager
	settings Settings
}

// OpenSettings opens the gdata store for appName and loads saved settings.
// The returned store is usable even when err is not nil.
func OpenSettings(appName string) (*SettingsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewSettingsStore(nil), fmt.Errorf("settings: cannot open data dir: %w", err)
	}
	s := NewSettingsStore(m)
	if err := s.Load(); err != nil {
		return s, err
	}
	return s, nil
}

// NewSettingsStore wraps a gdata manager, which may be nil.
func NewSettingsStore(m *gdata.Manager) *SettingsStore {
	return &SettingsStore{manager: m, settings: DefaultSettings()}
}

// Load reads saved settings. Missing data leaves the defaults.
func (s *SettingsStore) Load() error {
	s.settings = DefaultSettings()
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: cannot load: %w", err)
	}
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("settings: cannot parse: %w", err)
	}
	s.settings = loaded.normalize()
	return nil
}

// Save writes the current settings.
func (s *SettingsStore) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("settings: cannot encode: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: cannot save: %w", err)
	}
	return nil
}

// Settings returns the current settings.
func (s *SettingsStore) Settings() Settings {
	return s.settings
}

// SetScale changes the window scale. Call Save to persist.
func (s *SettingsStore) SetScale(scale float64) {
	s.settings.Scale = scale
	s.settings = s.settings.normalize()
}

// SetFullscreen changes the fullscreen flag. Call Save to persist.
func (s *SettingsStore) SetFullscreen(on bool) {
	s.settings.Fullscreen = on
}
