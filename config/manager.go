package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const errMissingAPIKey = "missing environment variable: %s"

type Manager struct {
	configStore ConfigStore
	Config      Config
	fileAPIKey  string
}

// NewManager layers the user's config file over the defaults. A missing file
// is not an error.
func NewManager(cs ConfigStore) *Manager {
	configuration := cs.ReadDefaults()

	userConfig, err := cs.Read()
	if err == nil {
		configuration = replaceByConfigFile(configuration, userConfig)
	} else if !errors.Is(err, os.ErrNotExist) {
		zap.S().Warnf("ignoring config file: %v", err)
	}

	return &Manager{configStore: cs, Config: configuration, fileAPIKey: userConfig.APIKey}
}

func (c *Manager) WithEnvironment() *Manager {
	c.Config = replaceByEnvironment(c.Config)
	return c
}

// WithAPIKeyFile loads the key from APIKeyFile when no key was set directly.
func (c *Manager) WithAPIKeyFile() (*Manager, error) {
	if c.Config.APIKey != "" || c.Config.APIKeyFile == "" {
		return c, nil
	}

	key, err := ReadAPIKeyFile(c.Config.APIKeyFile)
	if err != nil {
		return nil, err
	}

	c.Config.APIKey = key
	return c, nil
}

func (c *Manager) APIKeyEnvVarName() string {
	return strings.ToUpper(c.Config.Name) + "_" + "API_KEY"
}

// Validate checks the resolved configuration. A missing API key is reported
// by the name of the environment variable that would supply it.
func (c *Manager) Validate() error {
	if c.Config.APIKey == "" {
		return fmt.Errorf(errMissingAPIKey, c.APIKeyEnvVarName())
	}

	return validator.New().Struct(c.Config)
}

// ShowConfig serializes the current configuration to YAML with the API key masked.
func (c *Manager) ShowConfig() (string, error) {
	masked := c.Config
	if masked.APIKey != "" {
		masked.APIKey = "********"
	}

	data, err := yaml.Marshal(masked)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Save writes the resolved configuration back to the store. A key that came
// from the environment or api_key_file is not written; one already in the
// file is kept.
func (c *Manager) Save() error {
	out := c.Config
	out.APIKey = c.fileAPIKey
	return c.configStore.Write(out)
}

func replaceByConfigFile(defaultConfig, userConfig Config) Config {
	t := reflect.TypeOf(defaultConfig)
	vDefault := reflect.ValueOf(&defaultConfig).Elem()
	vUser := reflect.ValueOf(userConfig)

	for i := 0; i < t.NumField(); i++ {
		defaultField := vDefault.Field(i)
		userField := vUser.Field(i)

		switch defaultField.Kind() {
		case reflect.String:
			if userStr := userField.String(); userStr != "" {
				defaultField.SetString(userStr)
			}
		case reflect.Int:
			if userInt := int(userField.Int()); userInt != 0 {
				defaultField.SetInt(int64(userInt))
			}
		case reflect.Bool:
			defaultField.SetBool(userField.Bool())
		}
	}

	return defaultConfig
}

// replaceByEnvironment reads BUSPLUG_<YAML_TAG> style variables, where the
// prefix is derived from the configured name.
func replaceByEnvironment(configuration Config) Config {
	t := reflect.TypeOf(configuration)
	v := reflect.ValueOf(&configuration).Elem()

	env := viper.New()
	env.SetEnvPrefix(configuration.Name)
	env.AutomaticEnv()

	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "name" {
			continue
		}

		if env.GetString(tag) == "" {
			continue
		}

		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(env.GetString(tag))
		case reflect.Int:
			field.SetInt(int64(env.GetInt(tag)))
		case reflect.Bool:
			field.SetBool(env.GetBool(tag))
		}
	}

	return configuration
}
