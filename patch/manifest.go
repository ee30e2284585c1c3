package patch

import (
	"fmt"
	"regexp"
	"strings"
)

// BootThemeAttr points the application at the BootTheme style.
const BootThemeAttr = `android:theme="@style/BootTheme"`

// ThemeMode controls what happens to the android:theme attribute of the
// <application> element.
type ThemeMode string

const (
	ThemeInsert  ThemeMode = "insert"  // replace an existing attribute, add one otherwise
	ThemeReplace ThemeMode = "replace" // replace an existing attribute only
	ThemeNone    ThemeMode = "none"    // leave the manifest alone
)

func (m ThemeMode) Validate() error {
	switch m {
	case ThemeInsert, ThemeReplace, ThemeNone:
		return nil
	}
	return fmt.Errorf("invalid manifest theme mode %q (want %q, %q or %q)", string(m), ThemeInsert, ThemeReplace, ThemeNone)
}

var reThemeAttr = regexp.MustCompile(`android:theme\s*=\s*("[^"]*"|'[^']*')`)

// ManifestTheme returns the target that points the application element of
// AndroidManifest.xml at the BootTheme style. An activity may use BootTheme
// on its own, so the rule checks the application tag instead of a marker.
func ManifestTheme(path string, mode ThemeMode) *Target {
	return &Target{
		Kind: Manifest,
		Path: path,
		Rule: func(content string) (string, int, error) {
			return setApplicationTheme(content, mode)
		},
	}
}

func setApplicationTheme(content string, mode ThemeMode) (string, int, error) {
	if mode == ThemeNone {
		return content, 0, nil
	}

	start := indexTag(content, "application")
	if start < 0 {
		return "", 0, fmt.Errorf("<application>: %w", ErrAnchorNotFound)
	}
	end := tagEnd(content, start)
	if end < 0 {
		return "", 0, fmt.Errorf("<application> opening tag: %w", ErrAnchorNotFound)
	}

	// only the opening tag is searched, never the children
	if strings.Contains(content[start:end], BootThemeAttr) {
		return content, 0, nil
	}
	if m := reThemeAttr.FindStringIndex(content[start:end]); m != nil {
		b, e := start+m[0], start+m[1]
		return content[:b] + BootThemeAttr + content[e:], b, nil
	}
	if mode == ThemeReplace {
		return content, 0, nil
	}

	at := start + len("<application")
	return splice(content, at, " "+BootThemeAttr), at, nil
}
