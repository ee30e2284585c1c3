// Package setup wires the splash screen into a project: it generates the
// assets of every flavor that has a source image and patches the Android
// files that show them at startup.
package setup

import (
	"errors"
	"fmt"
	"os"

	"github.com/baghel-rohan/bootsplash-setup/generator"
	"github.com/baghel-rohan/bootsplash-setup/patch"
	"github.com/baghel-rohan/bootsplash-setup/project"
	"github.com/hashicorp/go-hclog"
)

// ErrGenerator marks a failed generator run. Flavors after the failing one
// are not processed and no file is patched.
var ErrGenerator = errors.New("generator failed")

type Runner struct {
	Project   *project.Project
	Generator generator.Generator
	Log       hclog.Logger
}

// Report lists what a run did.
type Report struct {
	Flavors   []project.Flavor
	Generated []project.Flavor
	Patches   []*patch.Result
}

func (r *Runner) logger() hclog.Logger {
	if r.Log == nil {
		return hclog.NewNullLogger()
	}
	return r.Log
}

// Run executes the whole setup once. It stops at the first error.
func (r *Runner) Run() (*Report, error) {
	log := r.logger()
	prj := r.Project
	rep := &Report{}

	var err error
	rep.Flavors, err = project.DiscoverFlavors(prj.VariantDir(), prj.Config.ExcludeFlavors)
	if err != nil {
		log.Warn("error reading flavor directory", "path", prj.VariantDir(), "error", err)
	}
	log.Debug("discovered flavors", "flavors", rep.Flavors)

	for _, f := range prj.EligibleFlavors(rep.Flavors) {
		req := prj.Request(f)
		log.Info("generating splash screen", "flavor", f, "image", req.Image)
		if err := r.Generator.Generate(req); err != nil {
			return rep, fmt.Errorf("%w for flavor %s: %w", ErrGenerator, f, err)
		}
		rep.Generated = append(rep.Generated, f)
	}
	if len(rep.Generated) == 0 {
		log.Warn("no flavor has a splash image", "dir", prj.AssetsDir())
	}

	targets := []*patch.Target{
		patch.Style(prj.StylesPath(), prj.Config.StyleAnchor),
		patch.ManifestTheme(prj.ManifestPath(), prj.Config.ManifestTheme),
	}
	for _, t := range targets {
		if err := r.apply(rep, t); err != nil {
			return rep, err
		}
	}

	manifest, err := os.ReadFile(prj.ManifestPath())
	if err != nil {
		return rep, fmt.Errorf("reading manifest: %w", err)
	}
	pkg := project.PackagePath(string(manifest))
	if pkg == "" {
		log.Warn("manifest has no package attribute", "path", prj.ManifestPath())
	}

	if err := r.apply(rep, patch.EntryPointInit(prj.EntryPointPath(pkg))); err != nil {
		return rep, err
	}
	return rep, nil
}

func (r *Runner) apply(rep *Report, t *patch.Target) error {
	res, err := patch.Apply(t)
	if err != nil {
		return err
	}
	rep.Patches = append(rep.Patches, res)
	if res.Changed {
		r.logger().Info("patched "+t.Kind.String(), "path", t.Path, "at", res.At.String())
	} else {
		r.logger().Debug(t.Kind.String()+" already patched", "path", t.Path)
	}
	return nil
}
