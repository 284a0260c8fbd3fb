package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig application configuration, loaded from config.toml next to
// the executable with env-var overrides.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Google GoogleConfig `toml:"google"`
}

// ServerConfig HTTP server settings.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig local data settings.
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// GoogleConfig workbook and calendar settings. The spreadsheet id is
// required before any remote call; tokens arrive per request and are
// never configured here.
type GoogleConfig struct {
	SpreadsheetID string `toml:"spreadsheet_id"`
	CalendarID    string `toml:"calendar_id"`
	Timezone      string `toml:"timezone"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20275,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Google: GoogleConfig{
			CalendarID: "primary",
			Timezone:   "Asia/Kolkata",
		},
	}
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig loads config.toml from the executable's directory. A
// missing file is not an error; defaults apply.
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(config)
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides lets env vars win over the file (local runs, E2E).
func applyEnvOverrides(config *AppConfig) {
	if v := os.Getenv("IPM_SPREADSHEET_ID"); v != "" {
		config.Google.SpreadsheetID = v
	}
	if v := os.Getenv("IPM_CALENDAR_ID"); v != "" {
		config.Google.CalendarID = v
	}
	if v := os.Getenv("IPM_TIMEZONE"); v != "" {
		config.Google.Timezone = v
	}
}

// EnsureDataDir creates the data directory next to the executable.
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	for _, subdir := range []string{"exports"} {
		if err := os.MkdirAll(filepath.Join(dataDir, subdir), 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}
