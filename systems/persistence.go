package systems

import (
	"encoding/json"

	"github.com/quasilyte/gdata"
	"github.com/slothgame/sloth/components"
	cfg "github.com/slothgame/sloth/config"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	PermissiveGrab        bool   `json:"permissiveGrab"`
	GrabbingHandCanRotate bool   `json:"grabbingHandCanRotate"`
	Backend               string `json:"backend"`
	DebugOverlay          bool   `json:"debugOverlay"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		logger.WithError(err).Warn("Could not initialize persistence")
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.SaveKey)
	if err != nil {
		logger.WithError(err).Warn("Could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logger.WithError(err).Warn("Could not parse saved settings")
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		logger.WithError(err).Warn("Could not serialize settings")
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.SaveKey, data); err != nil {
		logger.WithError(err).Warn("Could not save settings")
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the SettingsData component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		PermissiveGrab:        s.PermissiveGrab,
		GrabbingHandCanRotate: s.GrabbingHandCanRotate,
		Backend:               s.Backend,
		DebugOverlay:          s.DebugOverlay,
	})
}

// ApplySavedSettingsGlobal copies loaded settings into the global config.
// Used during startup before the scene is created; command-line flags are
// applied afterwards and win.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	cfg.Sloth.Grab.PermissiveGrab = saved.PermissiveGrab
	cfg.Sloth.Grab.GrabbingHandCanRotate = saved.GrabbingHandCanRotate
	cfg.Debug.Overlay = saved.DebugOverlay
	for _, name := range cfg.Settings.Backends {
		if name == saved.Backend {
			cfg.Physics.Backend = saved.Backend
		}
	}
}
