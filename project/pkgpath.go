package project

import (
	"path/filepath"
	"regexp"
	"strings"
)

var rePackage = regexp.MustCompile(`package="(.+?)"`)

// PackagePath extracts the application id from the raw manifest text and
// turns it into a relative directory, com.example.app -> com/example/app.
// It returns "" when the manifest has no package attribute.
func PackagePath(manifest string) string {
	m := rePackage.FindStringSubmatch(manifest)
	if m == nil {
		return ""
	}
	return strings.ReplaceAll(m[1], ".", string(filepath.Separator))
}
