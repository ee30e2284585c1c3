package project

import (
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Flavor is the name of an Android build variant.
type Flavor string

// DefaultFlavor is used when the project defines no other variant.
const DefaultFlavor = "main"

// DiscoverFlavors lists the subdirectories of dir that are not excluded.
// It never returns an empty list: with nothing left it falls back to
// DefaultFlavor. A read error is returned alongside the fallback so the
// caller can report it and carry on.
func DiscoverFlavors(dir string, exclude []string) ([]Flavor, error) {
	entries, err := os.ReadDir(dir)

	flavors := []Flavor{}
	for _, e := range entries {
		if !e.IsDir() || excluded(e.Name(), exclude) {
			continue
		}
		flavors = append(flavors, Flavor(e.Name()))
	}
	sort.Slice(flavors, func(i, j int) bool { return flavors[i] < flavors[j] })

	if len(flavors) == 0 {
		flavors = []Flavor{DefaultFlavor}
	}
	return flavors, err
}

func excluded(name string, patterns []string) bool {
	for _, pat := range patterns {
		if ok, err := doublestar.Match(pat, name); err == nil && ok {
			return true
		}
	}
	return false
}
