package resolver

import (
	"strings"

	"go.trai.ch/dynver/internal/core/domain"
	"go.trai.ch/zerr"
)

const snapshotSuffix = "-SNAPSHOT"

type selectorKind int

const (
	kindExact selectorKind = iota
	kindLatest
	kindLatestRelease
	kindPrefix
	kindRange
)

type bound struct {
	version   string
	inclusive bool
}

// Selector is a parsed version constraint.
type Selector struct {
	raw    string
	kind   selectorKind
	prefix string
	exact  string
	lower  *bound
	upper  *bound
}

// ParseSelector parses "latest", "latest.release", "latest.integration", "+",
// prefix patterns ("1.+"), ranges ("[1.0,2.0)", "]1.0,2.0[", "(,2.0]") and exact versions.
func ParseSelector(raw string) (Selector, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Selector{}, zerr.Wrap(domain.ErrInvalidSelector, "empty selector")
	}

	switch {
	case s == "latest" || s == "latest.integration" || s == "+":
		return Selector{raw: s, kind: kindLatest}, nil
	case s == "latest.release":
		return Selector{raw: s, kind: kindLatestRelease}, nil
	case strings.HasSuffix(s, "+"):
		return Selector{raw: s, kind: kindPrefix, prefix: strings.TrimSuffix(s, "+")}, nil
	case strings.ContainsAny(s[:1], "[]("):
		return parseRange(s)
	case strings.ContainsAny(s, "[](),"):
		return Selector{}, invalidSelector(s, "unexpected range delimiter")
	default:
		return Selector{raw: s, kind: kindExact, exact: s}, nil
	}
}

func parseRange(s string) (Selector, error) {
	open, closing := s[0], s[len(s)-1]
	if len(s) < 3 || !strings.ContainsRune("])[", rune(closing)) {
		return Selector{}, invalidSelector(s, "unterminated range")
	}
	body := s[1 : len(s)-1]

	lowerRaw, upperRaw, found := strings.Cut(body, ",")
	if !found {
		// [1.0] pins a single version.
		if open != '[' || closing != ']' || strings.TrimSpace(body) == "" {
			return Selector{}, invalidSelector(s, "expected 'lower,upper'")
		}
		return Selector{raw: s, kind: kindExact, exact: strings.TrimSpace(body)}, nil
	}

	lowerRaw, upperRaw = strings.TrimSpace(lowerRaw), strings.TrimSpace(upperRaw)
	if strings.Contains(upperRaw, ",") {
		return Selector{}, invalidSelector(s, "too many bounds")
	}
	if lowerRaw == "" && upperRaw == "" {
		return Selector{}, invalidSelector(s, "range has no bounds")
	}

	sel := Selector{raw: s, kind: kindRange}
	if lowerRaw != "" {
		sel.lower = &bound{version: lowerRaw, inclusive: open == '['}
	}
	if upperRaw != "" {
		sel.upper = &bound{version: upperRaw, inclusive: closing == ']'}
	}
	if sel.lower != nil && sel.upper != nil && Compare(sel.lower.version, sel.upper.version) > 0 {
		return Selector{}, invalidSelector(s, "lower bound above upper bound")
	}
	return sel, nil
}

func invalidSelector(s, reason string) error {
	return zerr.With(zerr.Wrap(domain.ErrInvalidSelector, reason), "selector", s)
}

// String returns the selector as written.
func (s Selector) String() string {
	return s.raw
}

// IsDynamic reports whether the selector can match more than one version.
func (s Selector) IsDynamic() bool {
	return s.kind != kindExact
}

// Accepts reports whether version satisfies the selector.
func (s Selector) Accepts(version string) bool {
	switch s.kind {
	case kindLatest:
		return true
	case kindLatestRelease:
		return !strings.HasSuffix(version, snapshotSuffix)
	case kindPrefix:
		return strings.HasPrefix(version, s.prefix)
	case kindRange:
		return s.inRange(version)
	default:
		return version == s.exact
	}
}

func (s Selector) inRange(version string) bool {
	if s.lower != nil {
		c := Compare(version, s.lower.version)
		if c < 0 || (c == 0 && !s.lower.inclusive) {
			return false
		}
	}
	if s.upper != nil {
		c := Compare(version, s.upper.version)
		if c > 0 || (c == 0 && !s.upper.inclusive) {
			return false
		}
	}
	return true
}

// Select returns the highest version in versions accepted by the selector.
func (s Selector) Select(versions domain.VersionSet) (string, bool) {
	var best string
	found := false
	for v := range versions.All() {
		if !s.Accepts(v) {
			continue
		}
		if !found || Compare(v, best) > 0 {
			best, found = v, true
		}
	}
	return best, found
}
