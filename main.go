package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adnsv/go-utils/fs"
	"github.com/baghel-rohan/bootsplash-setup/generator"
	"github.com/baghel-rohan/bootsplash-setup/logging"
	"github.com/baghel-rohan/bootsplash-setup/patch"
	"github.com/baghel-rohan/bootsplash-setup/project"
	"github.com/baghel-rohan/bootsplash-setup/setup"
	cli "github.com/jawher/mow.cli"
)

type options struct {
	projectDir    string
	background    string
	logoSize      int
	configFN      string
	manifestTheme string
	logLevel      string

	backgroundSet bool
	logoSizeSet   bool
}

func main() {
	opts := options{}

	app := cli.App("bootsplash-setup", "Wire react-native-bootsplash splash screens into a React Native project")
	app.Version("v version", app_version())
	app.Spec = "[-p=<DIR>] [--bg=<COLOR>] [-s=<SIZE>] [-c=<CONFIG-FILE>] [--manifest-theme=<insert|replace|none>] [--log-level=<LEVEL>]"

	app.StringOptPtr(&opts.projectDir, "p project", ".", "path to the React Native project directory")
	app.StringPtr(&opts.background, cli.StringOpt{
		Name:      "bg background",
		Value:     "#FFFFFF",
		Desc:      "background color of the flavors' splash screens",
		SetByUser: &opts.backgroundSet,
	})
	app.IntPtr(&opts.logoSize, cli.IntOpt{
		Name:      "s logo-size",
		Value:     192,
		Desc:      "logo width according to the android splash screen guidelines",
		SetByUser: &opts.logoSizeSet,
	})
	app.StringOptPtr(&opts.configFN, "c config", "", "yaml config file (default: <project>/"+project.ConfigFileName+" when present)")
	app.StringOptPtr(&opts.manifestTheme, "manifest-theme", "", "what to do with the application theme in AndroidManifest.xml")
	app.StringOptPtr(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn or error")

	app.Action = func() {
		log := logging.NewLogger("bootsplash", opts.logLevel, os.Stderr)

		cfg, err := opts.config()
		if err != nil {
			log.Error("invalid configuration", "error", err)
			cli.Exit(1)
		}

		prj := project.New(opts.projectDir, cfg)
		r := &setup.Runner{
			Project:   prj,
			Generator: generator.NewCommand(cfg.Generator, prj.Root, log.Named("generator")),
			Log:       log,
		}
		if _, err := r.Run(); err != nil {
			log.Error("setup failed", "error", err)
			cli.Exit(1)
		}
		fmt.Println("Setup completed successfully!")
	}

	app.Run(os.Args)
}

// config loads the config file, then lets the command line override it.
func (o *options) config() (*project.Config, error) {
	fn := o.configFN
	if fn == "" {
		if def := filepath.Join(o.projectDir, project.ConfigFileName); fs.FileExists(def) {
			fn = def
		}
	}

	cfg := project.DefaultConfig()
	if fn != "" {
		var err error
		cfg, err = project.LoadConfig(fn)
		if err != nil {
			return nil, err
		}
	}

	if o.backgroundSet {
		cfg.Background = o.background
	}
	if o.logoSizeSet {
		cfg.LogoSize = o.logoSize
	}
	if o.manifestTheme != "" {
		cfg.ManifestTheme = patch.ThemeMode(o.manifestTheme)
	}
	return cfg, cfg.Validate()
}
