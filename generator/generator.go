// Package generator runs the external tool that turns a flavor's source
// image into splash screen resources.
package generator

import (
	"strconv"
	"strings"
)

// Request carries everything the generator needs for one flavor.
type Request struct {
	Flavor     string
	Image      string
	Platforms  []string
	LogoSize   int
	Background string
}

// Vars exposes the request as template variables.
func (r Request) Vars() map[string]string {
	return map[string]string{
		"flavor":     r.Flavor,
		"image":      r.Image,
		"platforms":  strings.Join(r.Platforms, ","),
		"logo-size":  strconv.Itoa(r.LogoSize),
		"background": r.Background,
	}
}

// Generator produces the splash resources of one flavor. Calls are made one
// at a time since generators write into shared resource directories.
type Generator interface {
	Generate(req Request) error
}

// Func adapts a plain function to the Generator interface.
type Func func(req Request) error

func (f Func) Generate(req Request) error {
	return f(req)
}
