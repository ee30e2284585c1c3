// Package project knows the layout of a React Native project: where the
// flavors, splash assets and patched Android files live.
package project

import (
	"path/filepath"

	"github.com/adnsv/go-utils/fs"
	"github.com/baghel-rohan/bootsplash-setup/generator"
)

type Project struct {
	Root   string
	Config *Config
}

func New(root string, cfg *Config) *Project {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Project{Root: root, Config: cfg}
}

func (prj *Project) path(elem ...string) string {
	return filepath.Join(append([]string{prj.Root}, elem...)...)
}

// VariantDir holds one subdirectory per build variant.
func (prj *Project) VariantDir() string {
	return prj.path("android", "app", "src")
}

func (prj *Project) StylesPath() string {
	return prj.path("android", "app", "src", "main", "res", "values", "styles.xml")
}

func (prj *Project) ManifestPath() string {
	return prj.path("android", "app", "src", "main", "AndroidManifest.xml")
}

// EntryPointPath returns the MainActivity source for the given package
// path segment. The Java file wins when both exist; when neither exists the
// Java path is returned so the caller reports it as missing.
func (prj *Project) EntryPointPath(pkgPath string) string {
	dir := prj.path("android", "app", "src", "main", "java", pkgPath)
	java := filepath.Join(dir, "MainActivity.java")
	if fs.FileExists(java) {
		return java
	}
	kt := filepath.Join(dir, "MainActivity.kt")
	if fs.FileExists(kt) {
		return kt
	}
	return java
}

func (prj *Project) AssetsDir() string {
	return prj.path(prj.Config.AssetsDir)
}

// AssetPath is the source image of a flavor's splash screen.
func (prj *Project) AssetPath(f Flavor) string {
	return filepath.Join(prj.AssetsDir(), string(f)+"."+prj.Config.AssetExt)
}

// EligibleFlavors keeps the flavors that have a source image, in order.
func (prj *Project) EligibleFlavors(flavors []Flavor) []Flavor {
	ret := []Flavor{}
	for _, f := range flavors {
		if fs.FileExists(prj.AssetPath(f)) {
			ret = append(ret, f)
		}
	}
	return ret
}

// Request builds the generator request of an eligible flavor.
func (prj *Project) Request(f Flavor) generator.Request {
	img := prj.AssetPath(f)
	if abs, err := filepath.Abs(img); err == nil {
		img = abs
	}
	return generator.Request{
		Flavor:     string(f),
		Image:      img,
		Platforms:  append([]string(nil), prj.Config.Platforms...),
		LogoSize:   prj.Config.LogoSize,
		Background: prj.Config.Background,
	}
}
