package readme

import (
	"sort"
	"strings"

	"github.com/dyluth/warren/internal/printer"
	"github.com/dyluth/warren/internal/pubspec"
)

// supportTableAnchor begins the data row of a plugin's OS support table.
// The header row naming the platforms sits two lines above it, past the
// Markdown separator row.
const supportTableAnchor = "| **Support**"

// standardPlatformNames maps lowercase platform identifiers to the canonical
// display capitalization required in README support tables. Read-only; safe
// for concurrent package validations.
var standardPlatformNames = map[string]string{
	"android": "Android",
	"ios":     "iOS",
	"linux":   "Linux",
	"macos":   "macOS",
	"web":     "Web",
	"windows": "Windows",
}

// CheckSupportTable validates the OS support table in the README lines
// against the platforms the package manifest declares: the documented
// platform names must be set-equal to the declared platform keys
// (case-insensitively) and each must use its canonical capitalization.
//
// A nil platform map is not a failure: the plugin supports no platforms, so
// a warning is printed and the table contents are not checked. An empty
// return means the table passed.
func CheckSupportTable(lines []string, platforms map[string]pubspec.PlatformDetails) string {
	anchorIndex := -1
	for i, line := range lines {
		if strings.HasPrefix(line, supportTableAnchor) {
			anchorIndex = i
			break
		}
	}
	if anchorIndex == -1 {
		return "No OS support table found."
	}

	headerIndex := anchorIndex - 2
	if headerIndex < 0 || !strings.HasPrefix(lines[headerIndex], "|") {
		return "OS support table does not have the expected header format."
	}

	if platforms == nil {
		printer.Warning("plugin does not declare support for any platform\n")
		return ""
	}

	// Declared platform identifiers are already lowercase in a well-formed
	// manifest, but normalize anyway so the comparison never depends on it.
	declared := make(map[string]bool, len(platforms))
	for platform := range platforms {
		declared[strings.ToLower(platform)] = true
	}

	var documented []string
	for _, cell := range strings.Split(lines[headerIndex], "|") {
		name := strings.TrimSpace(cell)
		if name != "" {
			documented = append(documented, name)
		}
	}
	documentedSet := make(map[string]bool, len(documented))
	for _, name := range documented {
		documentedSet[strings.ToLower(name)] = true
	}

	if !sameSet(declared, documentedSet) {
		printer.Detail("OS support table lists: %s", strings.Join(sortCaseInsensitive(documented), ", "))
		printer.Detail("Manifest declares:      %s", strings.Join(sortCaseInsensitive(keys(declared)), ", "))
		return "Incorrect OS support table."
	}

	// Capitalization check. A documented name is canonical when looking up
	// its lowercase form gives back the name itself. A name with no table
	// entry at all is a platform this tool does not know about; surface it
	// as an explicit error rather than guessing a canonical form.
	var miscapitalized []string
	var unknown []string
	for _, name := range documented {
		canonical, ok := standardPlatformNames[strings.ToLower(name)]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		if name != canonical {
			miscapitalized = append(miscapitalized, name)
		}
	}

	summary := ""
	if len(miscapitalized) > 0 {
		for _, name := range sortCaseInsensitive(miscapitalized) {
			printer.Detail("%q should be %q", name, standardPlatformNames[strings.ToLower(name)])
		}
		summary = "Incorrect OS support formatting."
	}
	if len(unknown) > 0 {
		printer.Detail("Unknown platforms in OS support table: %s", strings.Join(sortCaseInsensitive(unknown), ", "))
		summary = "Unknown platform in OS support table."
	}

	return summary
}

// sameSet reports whether two sets hold exactly the same members
func sameSet(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for member := range a {
		if !b[member] {
			return false
		}
	}
	return true
}

// sortCaseInsensitive returns a copy of names sorted without regard to case
func sortCaseInsensitive(names []string) []string {
	sorted := append([]string(nil), names...)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i]) < strings.ToLower(sorted[j])
	})
	return sorted
}

func keys(set map[string]bool) []string {
	members := make([]string, 0, len(set))
	for member := range set {
		members = append(members, member)
	}
	return members
}
