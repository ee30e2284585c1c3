package patch

import (
	"fmt"
	"strings"
)

// BootThemeStyle references the color and mipmap resources the generator
// produces and the application's existing AppTheme.
const BootThemeStyle = `<style name="BootTheme" parent="Theme.SplashScreen">
		<item name="windowSplashScreenBackground">@color/bootsplash_background</item>
		<item name="windowSplashScreenAnimatedIcon">@mipmap/bootsplash_logo</item>
		<item name="postSplashScreenTheme">@style/AppTheme</item>
	</style>`

// StyleAnchor selects where the BootTheme block goes inside <resources>.
type StyleAnchor string

const (
	AnchorClosing StyleAnchor = "closing" // before </resources>
	AnchorOpening StyleAnchor = "opening" // after <resources ...>
)

func (a StyleAnchor) Validate() error {
	switch a {
	case AnchorClosing, AnchorOpening:
		return nil
	}
	return fmt.Errorf("invalid style anchor %q (want %q or %q)", string(a), AnchorClosing, AnchorOpening)
}

// Style returns the target that adds the BootTheme style to styles.xml.
func Style(path string, anchor StyleAnchor) *Target {
	return &Target{
		Kind:   StyleResource,
		Path:   path,
		Marker: BootThemeStyle,
		Rule: func(content string) (string, int, error) {
			return insertStyle(content, anchor)
		},
	}
}

func insertStyle(content string, anchor StyleAnchor) (string, int, error) {
	switch anchor {
	case AnchorOpening:
		start := indexTag(content, "resources")
		if start < 0 {
			return "", 0, fmt.Errorf("<resources>: %w", ErrAnchorNotFound)
		}
		end := tagEnd(content, start)
		if end < 0 || content[end-1] == '/' {
			return "", 0, fmt.Errorf("<resources> opening tag: %w", ErrAnchorNotFound)
		}
		at := end + 1
		return splice(content, at, "\n\t"+BootThemeStyle), at, nil

	default:
		at := strings.LastIndex(content, "</resources>")
		if at < 0 {
			return "", 0, fmt.Errorf("</resources>: %w", ErrAnchorNotFound)
		}
		return splice(content, at, "\n\t"+BootThemeStyle+"\n"), at, nil
	}
}

// indexTag returns the offset of the first "<name" opening tag in s, or -1.
// Comments are skipped and the name must be followed by whitespace, '>' or
// '/' so that <application> does not match <application-foo>.
func indexTag(s, name string) int {
	open := "<" + name
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], "<!--") {
			e := strings.Index(s[i+4:], "-->")
			if e < 0 {
				return -1
			}
			i += 4 + e + 3
			continue
		}
		if strings.HasPrefix(s[i:], open) {
			j := i + len(open)
			if j == len(s) {
				return -1
			}
			switch s[j] {
			case ' ', '\t', '\r', '\n', '>', '/':
				return i
			}
		}
		i++
	}
	return -1
}

// tagEnd returns the offset of the '>' that closes the tag starting at
// start, skipping quoted attribute values, or -1.
func tagEnd(s string, start int) int {
	var quote byte
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			return i
		}
	}
	return -1
}
