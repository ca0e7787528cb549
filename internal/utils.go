package internal

import (
	"os"
	"path/filepath"
)

const (
	ConfigHomeEnv    = "BUSPLUG_CONFIG_HOME"
	DefaultConfigDir = ".busplug"
)

func GetConfigHome() (string, error) {
	if tmp := os.Getenv(ConfigHomeEnv); tmp != "" {
		return tmp, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, DefaultConfigDir), nil
}
