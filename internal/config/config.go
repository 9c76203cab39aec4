package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/viper"

	"github.com/skagedal/create-program/internal/branding"
	"github.com/skagedal/create-program/internal/logging"
	"github.com/skagedal/create-program/internal/templates"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyTestRunner = "test_runner"
	KeyQuiet      = "quiet"
	KeyLogLevel   = "log_level"
)

// validators check a value before it is stored.
var validators = map[string]func(string) error{
	KeyTestRunner: func(v string) error {
		_, err := templates.ParseTestRunner(v)
		return err
	},
	KeyQuiet: func(v string) error {
		if _, err := strconv.ParseBool(v); err != nil {
			return fmt.Errorf("invalid boolean %q", v)
		}
		return nil
	},
	KeyLogLevel: func(v string) error {
		_, err := logging.ParseLevel(v)
		return err
	},
}

// Keys returns the known configuration keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(validators))
	for k := range validators {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Settings is the typed view of the configuration.
type Settings struct {
	TestRunner templates.TestRunner
	Quiet      bool
	LogLevel   string
}

// Dir returns the path to the config directory. CREATE_PROGRAM_HOME
// overrides the default ~/.create-program.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("home")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Store reads and writes the config file through Viper.
type Store struct {
	v *viper.Viper
}

// Load reads the config file and environment. A missing config file is not
// an error; a malformed one is.
func Load() (*Store, error) {
	v := viper.New()
	v.SetConfigFile(FilePath())
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	v.SetDefault(KeyTestRunner, string(templates.DefaultTestRunner))
	v.SetDefault(KeyQuiet, false)
	v.SetDefault(KeyLogLevel, logging.DefaultLevel)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return &Store{v: v}, nil
}

// Known reports whether key is a recognized configuration key.
func Known(key string) bool {
	_, ok := validators[key]
	return ok
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
}

// Get returns the effective value of key, falling back to its default.
func (s *Store) Get(key string) (string, error) {
	if !Known(key) {
		return "", unknownKey(key)
	}
	return s.v.GetString(key), nil
}

// Set validates and writes a config key-value pair, then saves the file.
func (s *Store) Set(key, value string) error {
	validate, ok := validators[key]
	if !ok {
		return unknownKey(key)
	}
	if err := validate(value); err != nil {
		return err
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	s.v.Set(key, value)

	if err := s.v.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Settings returns the validated, typed configuration.
func (s *Store) Settings() (Settings, error) {
	runner, err := templates.ParseTestRunner(s.v.GetString(KeyTestRunner))
	if err != nil {
		return Settings{}, fmt.Errorf("config %s: %w", KeyTestRunner, err)
	}
	level := s.v.GetString(KeyLogLevel)
	if _, err := logging.ParseLevel(level); err != nil {
		return Settings{}, fmt.Errorf("config %s: %w", KeyLogLevel, err)
	}
	return Settings{
		TestRunner: runner,
		Quiet:      s.v.GetBool(KeyQuiet),
		LogLevel:   level,
	}, nil
}
