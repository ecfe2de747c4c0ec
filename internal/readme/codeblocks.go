package readme

import (
	"regexp"
	"strings"

	"github.com/dyluth/warren/internal/printer"
)

// codeBlockDelimiter matches a fenced code block delimiter line, capturing
// the info string (the language identifier). Lines that are not delimiters
// fall through the scan untouched; this is deliberately not a full Markdown
// parser.
var codeBlockDelimiter = regexp.MustCompile("^\\s*```\\s*([^ ]*)\\s*")

// excerptDirectivePrefix must open the line immediately above every dart
// code block when excerpt management is required.
const excerptDirectivePrefix = "<?code-excerpt "

// CheckCodeBlocks scans the README lines for fenced code blocks and verifies
// that every opening fence carries a language identifier. When
// requireExcerpts is set, every dart block must additionally be preceded by
// a code-excerpt directive line.
//
// Diagnostics for both finding categories are always printed in full; the
// returned summary is the first non-empty category, with missing language
// identifiers taking precedence. An empty return means the document passed.
func CheckCodeBlocks(lines []string, requireExcerpts bool) string {
	var missingLanguageLines []int
	var missingExcerptLines []int

	inBlock := false
	for i, line := range lines {
		match := codeBlockDelimiter.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		if inBlock {
			// Closing fence. Never annotated, never checked.
			inBlock = false
			continue
		}
		inBlock = true

		language := match[1]
		if language == "" {
			missingLanguageLines = append(missingLanguageLines, i+1)
			continue
		}
		if requireExcerpts && language == "dart" {
			if i == 0 || !strings.HasPrefix(strings.TrimSpace(lines[i-1]), excerptDirectivePrefix) {
				missingExcerptLines = append(missingExcerptLines, i+1)
			}
		}
	}

	summary := ""
	if len(missingLanguageLines) > 0 {
		for _, line := range missingLanguageLines {
			printer.Detail("Code block at line %d is missing a language identifier.", line)
		}
		printer.Detail("For each block listed above, add a language tag after the opening \"```\".")
		summary = "Missing language identifier for code block."
	}
	if len(missingExcerptLines) > 0 {
		for _, line := range missingExcerptLines {
			printer.Detail("Dart code block at line %d is not managed by code-excerpt.", line)
		}
		printer.Detail("For each block listed above, add a \"<?code-excerpt ...>\" line directly before the opening \"```\".")
		if summary == "" {
			summary = "Missing code-excerpt management for code block"
		}
	}

	return summary
}
