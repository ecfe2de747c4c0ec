package readme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckCodeBlocks_NoFences(t *testing.T) {
	lines := []string{
		"# A package",
		"",
		"Some prose with `inline code` but no fenced blocks.",
	}

	assert.Empty(t, CheckCodeBlocks(lines, false))
	assert.Empty(t, CheckCodeBlocks(lines, true))
}

func TestCheckCodeBlocks_TaggedBlockPasses(t *testing.T) {
	lines := []string{
		"Example:",
		"```dart",
		"void main() {}",
		"```",
	}

	assert.Empty(t, CheckCodeBlocks(lines, false))
}

func TestCheckCodeBlocks_MissingLanguage(t *testing.T) {
	lines := []string{
		"Example:",
		"```",
		"void main() {}",
		"```",
	}

	// The excerpt flag has no bearing on the language check
	assert.Equal(t, "Missing language identifier for code block.", CheckCodeBlocks(lines, false))
	assert.Equal(t, "Missing language identifier for code block.", CheckCodeBlocks(lines, true))
}

func TestCheckCodeBlocks_WhitespaceOnlyInfoString(t *testing.T) {
	lines := []string{
		"```   ",
		"code",
		"```",
	}

	assert.Equal(t, "Missing language identifier for code block.", CheckCodeBlocks(lines, false))
}

func TestCheckCodeBlocks_IndentedFence(t *testing.T) {
	lines := []string{
		"1. Step one:",
		"   ```",
		"   code",
		"   ```",
	}

	assert.Equal(t, "Missing language identifier for code block.", CheckCodeBlocks(lines, false))
}

func TestCheckCodeBlocks_ExcerptManaged(t *testing.T) {
	lines := []string{
		"<?code-excerpt \"main.dart (Example)\"?>",
		"```dart",
		"void main() {}",
		"```",
	}

	assert.Empty(t, CheckCodeBlocks(lines, true))
}

func TestCheckCodeBlocks_ExcerptDirectiveMayBeIndented(t *testing.T) {
	lines := []string{
		"  <?code-excerpt \"main.dart (Example)\"?>",
		"  ```dart",
		"  void main() {}",
		"  ```",
	}

	assert.Empty(t, CheckCodeBlocks(lines, true))
}

func TestCheckCodeBlocks_MissingExcerpt(t *testing.T) {
	lines := []string{
		"Example:",
		"```dart",
		"void main() {}",
		"```",
	}

	assert.Equal(t, "Missing code-excerpt management for code block", CheckCodeBlocks(lines, true))
	// Without the flag the same document passes
	assert.Empty(t, CheckCodeBlocks(lines, false))
}

func TestCheckCodeBlocks_DartFenceOnFirstLine(t *testing.T) {
	lines := []string{
		"```dart",
		"void main() {}",
		"```",
	}

	assert.Equal(t, "Missing code-excerpt management for code block", CheckCodeBlocks(lines, true))
}

func TestCheckCodeBlocks_NonDartBlocksNeedNoExcerpt(t *testing.T) {
	lines := []string{
		"```yaml",
		"dependencies:",
		"```",
	}

	assert.Empty(t, CheckCodeBlocks(lines, true))
}

func TestCheckCodeBlocks_ClosingFenceNeverChecked(t *testing.T) {
	// The closing fence has an empty info string but is not an opening,
	// so it must not be flagged.
	lines := []string{
		"```dart",
		"void main() {}",
		"```",
	}

	assert.Empty(t, CheckCodeBlocks(lines, false))
}

func TestCheckCodeBlocks_FencesAlternateStrictly(t *testing.T) {
	// Three consecutive fences parse as open, close, open: the third line
	// opens a new block with no language and must be flagged.
	lines := []string{
		"```dart",
		"```",
		"```",
		"code",
	}

	assert.Equal(t, "Missing language identifier for code block.", CheckCodeBlocks(lines, false))
}

func TestCheckCodeBlocks_LanguageSummaryTakesPrecedence(t *testing.T) {
	lines := []string{
		"```",
		"untagged",
		"```",
		"```dart",
		"unmanaged",
		"```",
	}

	// Both finding categories are present; the language summary wins
	assert.Equal(t, "Missing language identifier for code block.", CheckCodeBlocks(lines, true))
}

func TestCheckCodeBlocks_AllOffendingLinesCollected(t *testing.T) {
	// The scan never stops at the first finding; a later untagged block
	// still determines the summary after an earlier valid one.
	lines := []string{
		"```yaml",
		"a: 1",
		"```",
		"",
		"```",
		"more",
		"```",
	}

	assert.Equal(t, "Missing language identifier for code block.", CheckCodeBlocks(lines, false))
}

func TestCheckCodeBlocks_UnterminatedBlockTolerated(t *testing.T) {
	lines := []string{
		"```sh",
		"echo hello",
	}

	assert.Empty(t, CheckCodeBlocks(lines, false))
}
