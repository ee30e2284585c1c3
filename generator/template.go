package generator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Argument templates use wildcards of the form $<var:name>$.
var reWildcard = regexp.MustCompile(`\$<((?:[^>\$])*)>\$`)

var (
	ErrInvalidWildcard = errors.New("unsupported wildcard syntax")
	ErrUnknownVariable = errors.New("unknown variable")
)

// DefaultCommandLine runs react-native-bootsplash through yarn.
var DefaultCommandLine = []string{
	"yarn", "react-native", "generate-bootsplash",
	"$<var:image>$",
	"--platforms=$<var:platforms>$",
	"--flavor=$<var:flavor>$",
	"--logo-width=$<var:logo-size>$",
	"--background-color=$<var:background>$",
}

var knownVariables = Request{}.Vars()

func parseWildcard(s string) (k, v string, err error) {
	ss := strings.SplitN(s, ":", 2)
	if len(ss) < 2 {
		return "", "", invalidWildcard(s)
	}
	return ss[0], ss[1], nil
}

func invalidWildcard(s string) error {
	return fmt.Errorf("%w: $<%s>$", ErrInvalidWildcard, s)
}

// Expand replaces every $<var:name>$ wildcard in args with vars[name].
func Expand(args []string, vars map[string]string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, a := range args {
		var firstErr error
		s := reWildcard.ReplaceAllStringFunc(a, func(w string) string {
			if firstErr != nil {
				return w
			}
			k, v, err := parseWildcard(w[2 : len(w)-2])
			if err != nil {
				firstErr = err
				return w
			}
			if k != "var" {
				firstErr = invalidWildcard(w[2 : len(w)-2])
				return w
			}
			r, ok := vars[v]
			if !ok {
				firstErr = fmt.Errorf("%w: %s", ErrUnknownVariable, v)
				return w
			}
			return r
		})
		if firstErr != nil {
			return nil, fmt.Errorf("argument %q: %w", a, firstErr)
		}
		out = append(out, s)
	}
	return out, nil
}

// CheckTemplate reports wildcards that no request can satisfy.
func CheckTemplate(args []string) error {
	_, err := Expand(args, knownVariables)
	return err
}
