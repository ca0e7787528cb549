package config

import (
	"github.com/kardolus/busplug/internal"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
)

const (
	busplugName            = "busplug"
	busplugURL             = "http://www.ctabustracker.com"
	busplugPredictionsPath = "/bustime/api/v2/getpredictions"
	busplugFreshness       = 60
	busplugTimeout         = 10
	busplugPort            = 8080
	busplugStaticDir       = "static"
	busplugUserAgent       = "busplug"
	configFileName         = "config.yaml"
)

//go:generate mockgen -destination=storemocks_test.go -package=config_test github.com/kardolus/busplug/config ConfigStore
type ConfigStore interface {
	Read() (Config, error)
	ReadDefaults() Config
	Write(Config) error
}

// Ensure FileIO implements ConfigStore interface
var _ ConfigStore = &FileIO{}

type FileIO struct {
	configFilePath string
}

func New() *FileIO {
	configPath, _ := getPath()

	return &FileIO{
		configFilePath: configPath,
	}
}

func (f *FileIO) WithConfigPath(configFilePath string) *FileIO {
	f.configFilePath = configFilePath
	return f
}

func (f *FileIO) Read() (Config, error) {
	return parseFile(f.configFilePath)
}

func (f *FileIO) ReadDefaults() Config {
	return Config{
		Name:            busplugName,
		URL:             busplugURL,
		PredictionsPath: busplugPredictionsPath,
		FreshnessWindow: busplugFreshness,
		Timeout:         busplugTimeout,
		Port:            busplugPort,
		StaticDir:       busplugStaticDir,
		UserAgent:       busplugUserAgent,
	}
}

func (f *FileIO) Write(config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.configFilePath), 0o700); err != nil {
		return err
	}

	return os.WriteFile(f.configFilePath, data, 0o600)
}

func getPath() (string, error) {
	homeDir, err := internal.GetConfigHome()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, configFileName), nil
}

func parseFile(fileName string) (Config, error) {
	var result Config

	buf, err := os.ReadFile(fileName)
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(buf, &result); err != nil {
		return Config{}, err
	}

	return result, nil
}
