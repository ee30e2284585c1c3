package main

import (
	"runtime/debug"
)

// set with -ldflags "-X main.app_ver=..."
var app_ver string = ""

// app_version reports the module version for binaries built with go install,
// the ldflags version otherwise, and "#UNAVAILABLE" for plain dev builds.
func app_version() string {
	if v := app_ver; v != "" {
		return v
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "#UNAVAILABLE"
}
