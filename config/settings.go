package config

import "github.com/slothgame/sloth/physics/engine"

// SettingsConfig describes how player settings are stored.
type SettingsConfig struct {
	AppName  string
	SaveKey  string
	Backends []string
}

// Settings is the global settings storage configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:  "sloth",
		SaveKey:  "settings",
		Backends: engine.Names(),
	}
}
