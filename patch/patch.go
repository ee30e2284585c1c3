// Package patch applies idempotent text patches to the Android files of a
// React Native project.
package patch

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adnsv/go-utils/fs"
)

type Kind int

const (
	StyleResource = Kind(iota)
	Manifest
	EntryPoint
)

func (k Kind) String() string {
	switch k {
	case StyleResource:
		return "style resource"
	case Manifest:
		return "manifest"
	case EntryPoint:
		return "entry point"
	default:
		return "<invalid>"
	}
}

// ErrAnchorNotFound is returned when a file lacks the structural landmark a
// patch inserts at.
var ErrAnchorNotFound = errors.New("anchor not found")

// Rule computes the patched content of a file. It is only called when the
// target's marker is absent. at is the byte offset in content where the
// edit happened.
type Rule func(content string) (out string, at int, err error)

// Target is an existing text file together with the marker that tells
// whether it is already patched and the rule that patches it. With an empty
// Marker the rule runs every time and must itself leave a patched file
// unchanged.
type Target struct {
	Kind   Kind
	Path   string
	Marker string
	Rule   Rule
}

// Result describes what Apply did to a target.
type Result struct {
	Target  *Target
	Changed bool
	At      Location // valid only when Changed
	Line    string   // original text of the anchor line
}

// Apply reads the target in full, applies its rule when the marker is
// missing and writes the file back only when the content changed.
func Apply(t *Target) (*Result, error) {
	buf, err := os.ReadFile(t.Path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", t.Kind, err)
	}
	content := string(buf)

	r := &Result{Target: t}
	if t.Marker != "" && strings.Contains(content, t.Marker) {
		return r, nil
	}

	out, at, err := t.Rule(content)
	if err != nil {
		return nil, fmt.Errorf("patching %s %s: %w", t.Kind, t.Path, err)
	}
	if out == content {
		return r, nil
	}

	r.At = Locate(content, at)
	r.Line = r.At.LineText(content)
	if err := fs.WriteFileIfChanged(t.Path, []byte(out)); err != nil {
		return nil, fmt.Errorf("writing %s: %w", t.Kind, err)
	}
	r.Changed = true
	return r, nil
}

// splice inserts s into content at offset i.
func splice(content string, i int, s string) string {
	return content[:i] + s + content[i:]
}
