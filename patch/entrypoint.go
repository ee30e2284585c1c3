package patch

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// InitCall is the marker of a patched entry point. It is a prefix shared by
// the Java and Kotlin forms of the call.
const InitCall = "RNBootSplash.init(this"

// ActivityClass is the class whose onCreate gets the init call.
const ActivityClass = "MainActivity"

var bootImports = []string{
	"android.os.Bundle",
	"com.zoontek.rnbootsplash.RNBootSplash",
}

type Language int

const (
	Java = Language(iota)
	Kotlin
)

// LanguageOf guesses the source language from the file extension.
func LanguageOf(path string) Language {
	if strings.EqualFold(filepath.Ext(path), ".kt") {
		return Kotlin
	}
	return Java
}

func (lang Language) importLine(pkg string) string {
	if lang == Kotlin {
		return "import " + pkg + "\n"
	}
	return "import " + pkg + ";\n"
}

func (lang Language) initStatement() string {
	if lang == Kotlin {
		return InitCall + ")"
	}
	return InitCall + ");"
}

func (lang Language) onCreateOverride() string {
	if lang == Kotlin {
		return "\toverride fun onCreate(savedInstanceState: Bundle?) {\n" +
			"\t\t" + lang.initStatement() + "\n" +
			"\t\tsuper.onCreate(savedInstanceState)\n" +
			"\t}"
	}
	return "\t@Override\n" +
		"\tprotected void onCreate(Bundle savedInstanceState) {\n" +
		"\t\t" + lang.initStatement() + "\n" +
		"\t\tsuper.onCreate(savedInstanceState);\n" +
		"\t}"
}

// EntryPointInit returns the target that makes MainActivity call
// RNBootSplash.init before the activity is created.
func EntryPointInit(path string) *Target {
	lang := LanguageOf(path)
	return &Target{
		Kind:   EntryPoint,
		Path:   path,
		Marker: InitCall,
		Rule: func(content string) (string, int, error) {
			return injectInit(content, lang)
		},
	}
}

func injectInit(content string, lang Language) (string, int, error) {
	body := classBody(content, ActivityClass)
	if body < 0 {
		return "", 0, fmt.Errorf("class %s: %w", ActivityClass, ErrAnchorNotFound)
	}

	type edit struct {
		at   int
		text string
	}
	var edits []edit

	m, declared := methodBody(content, body, "onCreate")
	switch {
	case m >= 0:
		edits = append(edits, edit{m, "\n\t\t" + lang.initStatement()})
	case declared:
		return "", 0, fmt.Errorf("onCreate of %s has no block body: %w", ActivityClass, ErrAnchorNotFound)
	default:
		edits = append(edits, edit{body, "\n" + lang.onCreateOverride() + "\n"})
	}
	at := edits[0].at

	imports := ""
	for _, pkg := range bootImports {
		if !hasImport(content, pkg) {
			imports += lang.importLine(pkg)
		}
	}
	if imports != "" {
		if p := packageClauseEnd(content); p >= 0 {
			edits = append(edits, edit{p, "\n" + imports})
		} else {
			edits = append(edits, edit{0, imports + "\n"})
		}
	}

	// all offsets refer to content; apply back to front so they stay valid
	sort.SliceStable(edits, func(i, j int) bool { return edits[i].at > edits[j].at })
	out := content
	for _, e := range edits {
		out = splice(out, e.at, e.text)
	}
	return out, at, nil
}

func hasImport(src, pkg string) bool {
	re := regexp.MustCompile(`(?m)^[ \t]*import[ \t]+` + regexp.QuoteMeta(pkg) + `[ \t]*;?[ \t]*\r?$`)
	return re.MatchString(src)
}
