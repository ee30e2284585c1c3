package patch

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func readFile(t *testing.T, fn string) string {
	t.Helper()
	buf, err := os.ReadFile(fn)
	if err != nil {
		t.Fatalf("read %s: %v", fn, err)
	}
	return string(buf)
}

func TestApply_Idempotent(t *testing.T) {
	dir := t.TempDir()
	styles := writeFile(t, dir, "styles.xml", stylesXML)
	manifest := writeFile(t, dir, "AndroidManifest.xml", manifestXML)
	activity := writeFile(t, dir, "MainActivity.java", mainActivityJava)

	targets := []*Target{
		Style(styles, AnchorClosing),
		ManifestTheme(manifest, ThemeInsert),
		EntryPointInit(activity),
	}

	first := map[string]string{}
	for _, tg := range targets {
		r, err := Apply(tg)
		if err != nil {
			t.Fatalf("first apply %s: %v", tg.Kind, err)
		}
		if !r.Changed {
			t.Errorf("first apply %s: expected a change", tg.Kind)
		}
		if !r.At.Valid() {
			t.Errorf("first apply %s: invalid location %v", tg.Kind, r.At)
		}
		first[tg.Path] = readFile(t, tg.Path)
	}

	for _, tg := range targets {
		r, err := Apply(tg)
		if err != nil {
			t.Fatalf("second apply %s: %v", tg.Kind, err)
		}
		if r.Changed {
			t.Errorf("second apply %s: expected no change", tg.Kind)
		}
		if got := readFile(t, tg.Path); got != first[tg.Path] {
			t.Errorf("second apply %s modified the file:\n%s", tg.Kind, got)
		}
	}
}

func TestApply_MissingFile(t *testing.T) {
	tg := Style(filepath.Join(t.TempDir(), "styles.xml"), AnchorClosing)
	_, err := Apply(tg)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestApply_MarkerPresentSkipsRule(t *testing.T) {
	fn := writeFile(t, t.TempDir(), "x.txt", "already MARK here")
	called := false
	r, err := Apply(&Target{
		Kind:   StyleResource,
		Path:   fn,
		Marker: "MARK",
		Rule: func(string) (string, int, error) {
			called = true
			return "", 0, errors.New("must not run")
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if called || r.Changed {
		t.Errorf("rule called=%v changed=%v, want both false", called, r.Changed)
	}
}

func TestApply_RuleErrorLeavesFile(t *testing.T) {
	fn := writeFile(t, t.TempDir(), "styles.xml", "<nothing/>")
	_, err := Apply(Style(fn, AnchorClosing))
	if !errors.Is(err, ErrAnchorNotFound) {
		t.Fatalf("expected ErrAnchorNotFound, got %v", err)
	}
	if got := readFile(t, fn); got != "<nothing/>" {
		t.Errorf("file changed: %q", got)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{StyleResource, "style resource"},
		{Manifest, "manifest"},
		{EntryPoint, "entry point"},
		{Kind(42), "<invalid>"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.k), got, tt.want)
		}
	}
}

const stylesXML = `<resources>

    <!-- Base application theme. -->
    <style name="AppTheme" parent="Theme.AppCompat.DayNight.NoActionBar">
        <item name="android:editTextBackground">@drawable/rn_edit_text_material</item>
    </style>

</resources>
`

const manifestXML = `<manifest xmlns:android="http://schemas.android.com/apk/res/android"
  package="com.example.app">

    <uses-permission android:name="android.permission.INTERNET" />

    <application
      android:name=".MainApplication"
      android:label="@string/app_name"
      android:theme="@style/AppTheme">
      <activity
        android:name=".MainActivity"
        android:exported="true">
      </activity>
    </application>
</manifest>
`

const mainActivityJava = `package com.example.app;

import com.facebook.react.ReactActivity;

public class MainActivity extends ReactActivity {

  /**
   * Returns the name of the main component registered from JavaScript. {
   */
  @Override
  protected String getMainComponentName() {
    return "example";
  }
}
`
