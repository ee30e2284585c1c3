package patch

import (
	"errors"
	"strings"
	"testing"
)

func TestInsertStyle_Closing(t *testing.T) {
	out, at, err := insertStyle(stylesXML, AnchorClosing)
	if err != nil {
		t.Fatal(err)
	}

	// everything before the anchor is untouched
	if !strings.HasPrefix(out, stylesXML[:at]) {
		t.Errorf("content before </resources> changed:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n\t"+BootThemeStyle+"\n</resources>\n") {
		t.Errorf("style block not inserted before </resources>:\n%s", out)
	}
	if strings.Index(out, `name="AppTheme"`) > strings.Index(out, `name="BootTheme"`) {
		t.Errorf("existing style moved after the new one")
	}
}

func TestInsertStyle_Minimal(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		anchor StyleAnchor
		want   string
	}{
		{
			name:   "closing",
			in:     "<resources>\n</resources>\n",
			anchor: AnchorClosing,
			want:   "<resources>\n\n\t" + BootThemeStyle + "\n</resources>\n",
		},
		{
			name:   "opening",
			in:     "<resources>\n    <color name=\"a\">#fff</color>\n</resources>\n",
			anchor: AnchorOpening,
			want:   "<resources>\n\t" + BootThemeStyle + "\n    <color name=\"a\">#fff</color>\n</resources>\n",
		},
		{
			name:   "opening with attributes",
			in:     `<resources xmlns:tools="http://schemas.android.com/tools"></resources>`,
			anchor: AnchorOpening,
			want:   `<resources xmlns:tools="http://schemas.android.com/tools">` + "\n\t" + BootThemeStyle + `</resources>`,
		},
		{
			name:   "closing uses last tag",
			in:     "<resources>\n<!-- </resources> -->\n</resources>",
			anchor: AnchorClosing,
			want:   "<resources>\n<!-- </resources> -->\n\n\t" + BootThemeStyle + "\n</resources>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := insertStyle(tt.in, tt.anchor)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestInsertStyle_MissingAnchor(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		anchor StyleAnchor
	}{
		{"no closing tag", "<resources>", AnchorClosing},
		{"no opening tag", "</resources>", AnchorOpening},
		{"self closing", "<resources/>", AnchorOpening},
		{"commented out", "<!-- <resources> -->", AnchorOpening},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := insertStyle(tt.in, tt.anchor)
			if !errors.Is(err, ErrAnchorNotFound) {
				t.Errorf("expected ErrAnchorNotFound, got %v", err)
			}
		})
	}
}

func TestStyleAnchorValidate(t *testing.T) {
	for _, a := range []StyleAnchor{AnchorClosing, AnchorOpening} {
		if err := a.Validate(); err != nil {
			t.Errorf("%q: unexpected error %v", a, err)
		}
	}
	if err := StyleAnchor("middle").Validate(); err == nil {
		t.Error("expected error for unknown anchor")
	}
}
