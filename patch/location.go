package patch

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Location is a line:column position inside a patched file.
type Location struct {
	Line   int // 1-based
	Column int // 1-based, in runes

	lineStart int // byte offset of the line start
}

// Locate converts a byte offset in buf into a Location. A leading UTF-8
// BOM is not counted as a column.
func Locate(buf string, offset int) Location {
	cur := 0
	if strings.HasPrefix(buf, "\xef\xbb\xbf") {
		cur = 3
	}
	if offset > len(buf) {
		offset = len(buf)
	}
	if offset < cur {
		offset = cur
	}

	loc := Location{Line: 1, lineStart: cur}
	for cur < offset {
		c := buf[cur]
		cur++
		switch c {
		case '\n':
			loc.Line++
			loc.lineStart = cur
		case '\r':
			if cur < offset && buf[cur] == '\n' {
				cur++
			}
			loc.Line++
			loc.lineStart = cur
		}
	}
	loc.Column = 1 + utf8.RuneCountInString(buf[loc.lineStart:offset])
	return loc
}

func (l Location) Valid() bool {
	return l.Line > 0 && l.Column > 0
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// LineText returns the text of the line l points into, without the line
// terminator.
func (l Location) LineText(buf string) string {
	if l.lineStart > len(buf) {
		return ""
	}
	buf = buf[l.lineStart:]
	if p := strings.IndexAny(buf, "\r\n"); p >= 0 {
		return buf[:p]
	}
	return buf
}
