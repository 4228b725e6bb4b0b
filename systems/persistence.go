package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/simulation"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the viewer settings stored on disk
type SavedSettings struct {
	Debug bool    `json:"debug"`
	Scale float64 `json:"scale"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Server.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	ok, err := loadItem("settings", &settings)
	if !ok || err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem("settings", s)
}

// ApplySavedSettingsGlobal applies settings before the first scene exists
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.Debug.Overlay = saved.Debug
	if saved.Scale > 0 {
		cfg.C.Scale = saved.Scale
	}
}

// LoadProgress loads the saved player progress, nil when there is none
func LoadProgress() (*simulation.Snapshot, error) {
	var snap simulation.Snapshot
	ok, err := loadItem("progress", &snap)
	if !ok || err != nil {
		return nil, err
	}
	return &snap, nil
}

// SaveProgress saves the player progress to disk
func SaveProgress(snap simulation.Snapshot) error {
	return saveItem("progress", snap)
}

func loadItem(key string, v any) (bool, error) {
	if !gdataInitialized || gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}

	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}
