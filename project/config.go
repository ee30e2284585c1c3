package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/baghel-rohan/bootsplash-setup/generator"
	"github.com/baghel-rohan/bootsplash-setup/patch"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the project root when no config file is
// given on the command line.
const ConfigFileName = "bootsplash.yml"

type Config struct {
	Background string   `yaml:"background"`
	LogoSize   int      `yaml:"logo-size"`
	Platforms  []string `yaml:"platforms"`

	AssetsDir string `yaml:"assets-dir"` // relative to the project root
	AssetExt  string `yaml:"asset-ext"`

	// ExcludeFlavors holds doublestar patterns of android/app/src
	// subdirectories that are not flavors.
	ExcludeFlavors []string `yaml:"exclude-flavors"`

	StyleAnchor   patch.StyleAnchor `yaml:"style-anchor"`
	ManifestTheme patch.ThemeMode   `yaml:"manifest-theme"`

	// Generator is the program and argument template used to generate the
	// splash assets of a flavor.
	Generator []string `yaml:"generator"`
}

func DefaultConfig() *Config {
	return &Config{
		Background:     "#FFFFFF",
		LogoSize:       192,
		Platforms:      []string{"android", "ios"},
		AssetsDir:      "assets",
		AssetExt:       "png",
		ExcludeFlavors: []string{DefaultFlavor, "androidTest", "debug"},
		StyleAnchor:    patch.AnchorClosing,
		ManifestTheme:  patch.ThemeInsert,
		Generator:      append([]string(nil), generator.DefaultCommandLine...),
	}
}

// LoadConfig reads a yaml config file on top of the defaults. Keys missing
// from the file keep their default values.
func LoadConfig(fn string) (*Config, error) {
	fn, err := filepath.Abs(fn)
	if err != nil {
		return nil, err
	}
	buf, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fn, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Background == "" {
		errs = append(errs, errors.New("background must not be empty"))
	}
	if c.LogoSize <= 0 {
		errs = append(errs, fmt.Errorf("logo-size must be positive, got %d", c.LogoSize))
	}
	if len(c.Platforms) == 0 {
		errs = append(errs, errors.New("platforms must not be empty"))
	}
	if c.AssetExt == "" {
		errs = append(errs, errors.New("asset-ext must not be empty"))
	}
	for _, pat := range c.ExcludeFlavors {
		if !doublestar.ValidatePattern(pat) {
			errs = append(errs, fmt.Errorf("invalid exclude-flavors pattern %q", pat))
		}
	}
	if err := c.StyleAnchor.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.ManifestTheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(c.Generator) == 0 {
		errs = append(errs, errors.New("generator must name a program"))
	} else if err := generator.CheckTemplate(c.Generator); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
