package resolver

import (
	"slices"
	"strings"

	"golang.org/x/mod/semver"
)

// canonical maps a version string to a semver string, or "" when it has no semver reading.
// Missing minor and patch components are padded with zeros.
func canonical(version string) string {
	v := strings.TrimPrefix(version, "v")
	if v == "" {
		return ""
	}

	core, suffix := v, ""
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		core, suffix = v[:i], v[i:]
	}

	parts := strings.Split(core, ".")
	if len(parts) > 3 {
		return ""
	}
	for len(parts) < 3 {
		parts = append(parts, "0")
	}

	candidate := "v" + strings.Join(parts, ".") + suffix
	if !semver.IsValid(candidate) {
		return ""
	}
	return candidate
}

// Compare orders two versions. Versions with a semver reading order by semver
// precedence and above those without one, which order lexically.
func Compare(a, b string) int {
	ca, cb := canonical(a), canonical(b)

	switch {
	case ca != "" && cb != "":
		if c := semver.Compare(ca, cb); c != 0 {
			return c
		}
	case ca != "":
		return 1
	case cb != "":
		return -1
	}
	return strings.Compare(a, b)
}

// SortVersions sorts versions in ascending order.
func SortVersions(versions []string) {
	slices.SortFunc(versions, Compare)
}
