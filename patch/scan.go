package patch

import "strings"

// lexer walks Java or Kotlin source and yields identifiers and single
// punctuation bytes. Whitespace, comments and string, character and raw
// string literals are skipped, so braces inside them never count.
type lexer struct {
	src string
	pos int
}

func isWordByte(c byte) bool {
	return c == '_' || c == '$' ||
		'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' ||
		c >= 0x80
}

func (l *lexer) next() (tok string, start int, ok bool) {
	for l.pos < len(l.src) {
		rest := l.src[l.pos:]
		c := rest[0]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\f':
			l.pos++
		case strings.HasPrefix(rest, "//"):
			if e := strings.IndexByte(rest, '\n'); e >= 0 {
				l.pos += e + 1
			} else {
				l.pos = len(l.src)
			}
		case strings.HasPrefix(rest, "/*"):
			if e := strings.Index(rest[2:], "*/"); e >= 0 {
				l.pos += 2 + e + 2
			} else {
				l.pos = len(l.src)
			}
		case strings.HasPrefix(rest, `"""`):
			if e := strings.Index(rest[3:], `"""`); e >= 0 {
				l.pos += 3 + e + 3
			} else {
				l.pos = len(l.src)
			}
		case c == '"' || c == '\'':
			l.skipQuoted(c)
		case isWordByte(c):
			start = l.pos
			for l.pos < len(l.src) && isWordByte(l.src[l.pos]) {
				l.pos++
			}
			return l.src[start:l.pos], start, true
		default:
			start = l.pos
			l.pos++
			return rest[:1], start, true
		}
	}
	return "", l.pos, false
}

// skipQuoted skips a single-line literal delimited by q. An unterminated
// literal ends at the line break.
func (l *lexer) skipQuoted(q byte) {
	l.pos++
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '\\':
			l.pos += 2
			continue
		case q:
			l.pos++
			return
		case '\n':
			return
		}
		l.pos++
	}
}

// classBody returns the offset just past the opening brace of the
// top-level class called name, or -1.
func classBody(src, name string) int {
	l := &lexer{src: src}
	depth := 0
	for {
		tok, _, ok := l.next()
		if !ok {
			return -1
		}
		switch tok {
		case "{":
			depth++
		case "}":
			depth--
		case "class":
			if depth != 0 {
				continue
			}
			id, _, ok := l.next()
			if !ok {
				return -1
			}
			if id != name {
				continue
			}
			if at := l.openingBrace(0); at >= 0 {
				return at + 1
			}
			return -1
		}
	}
}

// methodBody looks for the method called name declared directly in the
// class body starting at from. It returns the offset just past the method's
// opening brace, or -1. declared reports whether such a method exists at
// all, so a declaration without a block body (Kotlin "= expr", abstract)
// yields body -1 with declared true.
func methodBody(src string, from int, name string) (body int, declared bool) {
	l := &lexer{src: src, pos: from}
	depth := 1
	prev := ""
	for {
		tok, _, ok := l.next()
		if !ok {
			return -1, false
		}
		switch tok {
		case "{":
			depth++
		case "}":
			depth--
			if depth == 0 {
				return -1, false
			}
		case name:
			// a declaration follows its return type or "fun"; a call in
			// a field initializer follows '=', '.' or '('
			if depth != 1 || prev == "" || !isWordByte(prev[0]) {
				break
			}
			if p, _, ok := l.next(); !ok || p != "(" {
				break
			}
			if at := l.openingBrace(1); at >= 0 {
				return at + 1, true
			}
			return -1, true
		}
		prev = tok
	}
}

// openingBrace advances to the next '{' outside parentheses and returns its
// offset. parens is the number of parentheses already open. A ';', '=' or
// '}' first means there is no block body and -1 is returned.
func (l *lexer) openingBrace(parens int) int {
	for {
		tok, start, ok := l.next()
		if !ok {
			return -1
		}
		switch tok {
		case "(":
			parens++
		case ")":
			parens--
		case ";", "=", "}":
			if parens == 0 {
				return -1
			}
		case "{":
			if parens == 0 {
				return start
			}
		}
	}
}

// packageClauseEnd returns the offset just past the package clause, or -1
// when the file has none. The clause ends at its line break, or right after
// its ';' when more code follows on the same line. Only tokens before the
// first declaration are considered.
func packageClauseEnd(src string) int {
	l := &lexer{src: src}
	for {
		tok, start, ok := l.next()
		if !ok {
			return -1
		}
		switch tok {
		case "package":
			rest := src[start:]
			nl := strings.IndexByte(rest, '\n')
			line := rest
			if nl >= 0 {
				line = rest[:nl]
			}
			if semi := strings.IndexByte(line, ';'); semi >= 0 && strings.TrimSpace(line[semi+1:]) != "" {
				return start + semi + 1
			}
			if nl >= 0 {
				return start + nl + 1
			}
			return len(src)
		case "import", "class", "public", "open", "abstract", "final", "{":
			return -1
		}
	}
}
