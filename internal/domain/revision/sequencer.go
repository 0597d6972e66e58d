// Package revision computes the next version identifier of an order or a
// drawing.
//
// Two families are recognized and preserved:
//   - dotted numeric "M.N" (quotations start at "1.0")
//   - lettered "Rev X[.n]" (drawings start at "Rev A")
//
// Next is total: malformed input falls back to defined defaults instead of
// failing.
package revision

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Kind selects the part of the identifier that advances.
type Kind string

const (
	// Minor is requested by draft saves.
	Minor Kind = "minor"
	// Major is requested by updates and sends.
	Major Kind = "major"
)

// ParseKind defaults to Minor for anything that is not "major".
func ParseKind(s string) Kind {
	if strings.EqualFold(strings.TrimSpace(s), string(Major)) {
		return Major
	}
	return Minor
}

const (
	defaultMajor = 1
	defaultMinor = 0
	letteredTag  = "rev"
)

// Next returns the revision following current.
func Next(current string, kind Kind) string {
	s := strings.TrimSpace(current)
	if rest, ok := cutLetteredTag(s); ok {
		return nextLettered(rest, kind)
	}
	return nextDotted(s, kind)
}

// cutLetteredTag reports whether s is "rev" alone or "rev" followed by
// whitespace, so words such as "Reviewed" stay in the fallback family.
func cutLetteredTag(s string) (string, bool) {
	if len(s) < len(letteredTag) || !strings.EqualFold(s[:len(letteredTag)], letteredTag) {
		return "", false
	}
	rest := s[len(letteredTag):]
	if rest != "" && !unicode.IsSpace(rune(rest[0])) {
		return "", false
	}
	return rest, true
}

func nextDotted(s string, kind Kind) string {
	major, minor := defaultMajor, defaultMinor
	parts := strings.Split(s, ".")
	if len(parts) <= 2 {
		major = atoiOr(parts[0], defaultMajor)
		if len(parts) == 2 {
			minor = atoiOr(parts[1], defaultMinor)
		}
	}
	if kind == Major {
		return fmt.Sprintf("%d.0", major+1)
	}
	return fmt.Sprintf("%d.%d", major, minor+1)
}

func nextLettered(rest string, kind Kind) string {
	rest = strings.TrimSpace(rest)
	letter := rest
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		letter = strings.TrimSpace(rest[:i])
	}
	letter = strings.ToUpper(letter)

	if !isLetters(letter) {
		if kind == Major {
			return "Rev B"
		}
		return "Rev A.1"
	}
	if kind == Major {
		return "Rev " + advanceLetter(letter)
	}
	return "Rev " + letter + ".1"
}

// advanceLetter counts in base 26 over A..Z: A→B, Z→AA, AZ→BA.
func advanceLetter(letter string) string {
	b := []byte(letter)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < 'Z' {
			b[i]++
			return string(b)
		}
		b[i] = 'A'
	}
	return "A" + string(b)
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return def
	}
	return n
}
