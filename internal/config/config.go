package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okra-platform/crudkit/internal/codegen"
)

// FileName is the project configuration file looked up by LoadConfig
const FileName = "crudkit.json"

// ErrNotFound is returned when no crudkit.json exists in a directory or its parents
var ErrNotFound = errors.New("no " + FileName + " found")

// Route modes
const (
	RouteModeAppend  = "append"
	RouteModeReplace = "replace"
)

// Config represents the crudkit.json configuration file
type Config struct {
	Paths       PathsConfig       `json:"paths"`
	Namespaces  NamespacesConfig  `json:"namespaces"`
	Classes     ClassesConfig     `json:"classes"`
	Locales     []string          `json:"locales"`
	Descriptors string            `json:"descriptors"`
	RouteMode   string            `json:"routeMode"`
	Irregulars  map[string]string `json:"irregulars"`
	Watch       WatchConfig       `json:"watch"`
}

// PathsConfig contains artifact locations relative to the project root
type PathsConfig struct {
	Models      string `json:"models"`
	Migrations  string `json:"migrations"`
	Requests    string `json:"requests"`
	Controllers string `json:"controllers"`
	Views       string `json:"views"`
	Routes      string `json:"routes"`
}

// NamespacesConfig contains the PHP namespaces of generated classes
type NamespacesConfig struct {
	Models      string `json:"models"`
	Requests    string `json:"requests"`
	Controllers string `json:"controllers"`
}

// ClassesConfig names the application classes generated code depends on
type ClassesConfig struct {
	FileCast          string `json:"fileCast"`
	TranslationsTrait string `json:"translationsTrait"`
	DataTable         string `json:"dataTable"`
}

// WatchConfig contains watch mode settings
type WatchConfig struct {
	Debounce string `json:"debounce"`
}

// Default returns the configuration of a stock Laravel project
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads crudkit.json from dir or a parent directory. Without one, the
// defaults apply and dir is the project root.
func Load(dir string) (*Config, string, error) {
	config, root, err := loadConfigFromDir(dir)
	if errors.Is(err, ErrNotFound) {
		return Default(), dir, nil
	}
	return config, root, err
}

// LoadConfigFromPath loads the crudkit.json configuration from a specific path
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Paths.Models, "app/Models")
	setDefault(&c.Paths.Migrations, "database/migrations")
	setDefault(&c.Paths.Requests, "app/Http/Requests")
	setDefault(&c.Paths.Controllers, "app/Http/Controllers")
	setDefault(&c.Paths.Views, "resources/views/pages")
	setDefault(&c.Paths.Routes, "routes/web.php")

	setDefault(&c.Namespaces.Models, `App\Models`)
	setDefault(&c.Namespaces.Requests, `App\Http\Requests`)
	setDefault(&c.Namespaces.Controllers, `App\Http\Controllers`)

	setDefault(&c.Classes.FileCast, `App\Casts\FileCast`)
	setDefault(&c.Classes.TranslationsTrait, `App\Induxia\Traits\SaveTranslations`)
	setDefault(&c.Classes.DataTable, `App\Induxia\DataTable`)

	if len(c.Locales) == 0 {
		c.Locales = []string{"en", "ar"}
	}
	setDefault(&c.Descriptors, "database/yaml")
	setDefault(&c.RouteMode, RouteModeAppend)
	setDefault(&c.Watch.Debounce, "100ms")
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Locales))
	for _, l := range c.Locales {
		if l == "" {
			return fmt.Errorf("locales must not contain empty values")
		}
		if seen[l] {
			return fmt.Errorf("locale %q is listed more than once", l)
		}
		seen[l] = true
	}

	switch c.RouteMode {
	case RouteModeAppend, RouteModeReplace:
	default:
		return fmt.Errorf("unknown route mode %q (valid: %s, %s)", c.RouteMode, RouteModeAppend, RouteModeReplace)
	}

	if _, err := c.DebounceInterval(); err != nil {
		return err
	}

	return nil
}

// DebounceInterval returns the parsed watch debounce interval
func (c *Config) DebounceInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil {
		return 0, fmt.Errorf("invalid watch debounce %q: %w", c.Watch.Debounce, err)
	}
	return d, nil
}

// Options converts the configuration into synthesizer options
func (c *Config) Options(ts time.Time) codegen.Options {
	return codegen.Options{
		ModelsDir:           c.Paths.Models,
		MigrationsDir:       c.Paths.Migrations,
		RequestsDir:         c.Paths.Requests,
		ControllersDir:      c.Paths.Controllers,
		ViewsDir:            c.Paths.Views,
		RoutesFile:          c.Paths.Routes,
		ModelNamespace:      c.Namespaces.Models,
		RequestNamespace:    c.Namespaces.Requests,
		ControllerNamespace: c.Namespaces.Controllers,
		FileCast:            c.Classes.FileCast,
		TranslationsTrait:   c.Classes.TranslationsTrait,
		DataTable:           c.Classes.DataTable,
		Locales:             append([]string(nil), c.Locales...),
		Timestamp:           ts,
	}
}

// loadConfigFromDir searches for crudkit.json in the given directory and its parents
func loadConfigFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			config, err := LoadConfigFromPath(configPath)
			if err != nil {
				return nil, "", err
			}
			return config, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("%w in %s or any parent directory", ErrNotFound, startDir)
}
