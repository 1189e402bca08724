package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	creator "github.com/xml-creator/xml-creator"
)

// Settings holds the Google API credentials and the local environment.
type Settings struct {
	Credentials string   `yaml:"credentials"`
	Scope       []string `yaml:"scope"`
	Timezone    string   `yaml:"timezone"`
	Rights      string   `yaml:"rights"`
}

type Spreadsheet struct {
	Name string `yaml:"name"`
}

type Worksheet struct {
	Name string `yaml:"name"`
}

// Cells binds each asset field to the worksheet column header it is read from. RenderStatusValue
// is the render status a row must have to be published.
type Cells struct {
	Title             string `yaml:"title"`
	Description       string `yaml:"description"`
	Filename          string `yaml:"filename"`
	Keywords          string `yaml:"keywords"`
	Rights            string `yaml:"rights"`
	RenderStatus      string `yaml:"renderStatus"`
	RenderStatusValue string `yaml:"renderStatusValue"`
}

// Asset holds the fixed attributes written to every asset entry.
type Asset struct {
	Language   string `yaml:"language"`
	ProfileUID string `yaml:"profile"`
	Status     string `yaml:"status"`
	Action     string `yaml:"action"`
}

type Output struct {
	File string `yaml:"file"`
}

// Config is the spreadsheet configuration file.
type Config struct {
	Settings    Settings    `yaml:"settings"`
	Spreadsheet Spreadsheet `yaml:"spreadsheet"`
	Worksheet   Worksheet   `yaml:"worksheet"`
	Cells       Cells       `yaml:"cells"`
	Asset       Asset       `yaml:"asset"`
	Output      Output      `yaml:"output"`
}

var envvar = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load parses and validates a spreadsheet configuration file. Relative file paths in the
// configuration are resolved against the directory of the configuration file.
func Load(path string) (*Config, error) {
	bytes, err := read(path)
	if err != nil {
		return nil, err
	}

	c := Config{}
	if err := yaml.Unmarshal(bytes, &c); err != nil {
		return nil, fmt.Errorf("%w: invalid configuration file %v (%v)", creator.ErrConfiguration, path, err)
	}

	c.applyDefaults()

	dir := filepath.Dir(path)
	c.Settings.Credentials = resolve(dir, c.Settings.Credentials)
	c.Settings.Rights = resolve(dir, c.Settings.Rights)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// read loads the file and substitutes ${VAR} references from the environment, after seeding the
// environment from an optional .env file alongside the configuration. Variables that are already
// set take precedence over the .env file.
func read(path string) ([]byte, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read %v (%v)", creator.ErrConfiguration, path, err)
	}

	env := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(env); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: invalid environment file %v (%v)", creator.ErrConfiguration, env, err)
	}

	return envvar.ReplaceAllFunc(bytes, func(match []byte) []byte {
		key := envvar.FindSubmatch(match)[1]

		return []byte(os.Getenv(string(key)))
	}), nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(dir, path)
}
