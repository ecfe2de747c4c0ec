// Package readme validates a package's README.md against repository
// documentation conventions: fenced code blocks must declare a language
// (and, optionally, code-excerpt management), and a plugin's OS support
// table must agree with the platforms its manifest declares.
//
// Validation is pure over in-memory lines and holds no state between runs,
// so packages can be checked concurrently.
package readme

import (
	"fmt"
	"os"
	"strings"

	"github.com/dyluth/warren/internal/repo"
)

// Options configures a validation run
type Options struct {
	RequireExcerpts bool // Require <?code-excerpt ?> management on dart code blocks
}

// Result is the outcome of validating one package's README
type Result struct {
	Package string
	Errors  []string
}

// Passed reports whether the README passed every check
func (r *Result) Passed() bool {
	return len(r.Errors) == 0
}

// Validate runs all README checks for a single package and aggregates the
// failures. Checks are independent: a failure in one never suppresses the
// others, and the whole document is always scanned so every offending line
// is reported in one run.
func Validate(pkg *repo.Package, opts Options) *Result {
	result := &Result{Package: pkg.Name}

	lines, err := readLines(pkg.ReadmePath())
	if err != nil {
		if os.IsNotExist(err) {
			result.Errors = append(result.Errors, "Missing README.md")
		} else {
			result.Errors = append(result.Errors, fmt.Sprintf("Unable to read README.md: %v", err))
		}
		return result
	}

	if summary := CheckCodeBlocks(lines, opts.RequireExcerpts); summary != "" {
		result.Errors = append(result.Errors, summary)
	}

	// Only plugins document platform support, and within a federated plugin
	// only the app-facing package carries the table.
	if pkg.Manifest.IsPlugin() && (!pkg.Federated || pkg.AppFacing) {
		if summary := CheckSupportTable(lines, pkg.Manifest.Platforms()); summary != "" {
			result.Errors = append(result.Errors, summary)
		}
	}

	return result
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"), nil
}
