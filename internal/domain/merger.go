package domain

import (
	"strings"

	"testsmith.dev/pkg/testsmith/pkg"
)

// IncrementalMerger reconciles freshly synthesized test source with an
// existing test file so repeated runs never duplicate methods.
type IncrementalMerger interface {
	Merge(existing, generated string) string
}

type incrementalMerger struct{}

// NewIncrementalMerger creates a stateless IncrementalMerger.
func NewIncrementalMerger() IncrementalMerger {
	return &incrementalMerger{}
}

// Merge scans generated text for @Test blocks and appends only those whose
// method name does not already occur in existing, splicing them in before
// the file's last closing brace. The brace-depth scan is only sound for
// text this tool's own synthesizer produced; hand-mangled nesting in the
// generated input is a precondition violation. An existing document with
// no closing brace at all is returned unchanged.
func (mg *incrementalMerger) Merge(existing, generated string) string {
	blocks := scanTestBlocks(generated)

	var toAppend strings.Builder

	appended := pkg.NewOrderedSet[string]()

	for _, block := range blocks {
		if block.name == "" || strings.Contains(existing, block.name+"(") {
			continue
		}

		if !appended.Add(block.name) {
			continue
		}

		toAppend.WriteString("\n")
		toAppend.WriteString(block.text)
	}

	if toAppend.Len() == 0 {
		return existing
	}

	lastBrace := strings.LastIndexByte(existing, '}')
	if lastBrace < 0 {
		return existing
	}

	return existing[:lastBrace] + toAppend.String() + existing[lastBrace:]
}

// testBlock is one extracted @Test method: the declared bare name and the
// full text of the block, trailing newline included.
type testBlock struct {
	name string
	text string
}

// scanTestBlocks walks generated source line by line. A block opens at an
// @Test annotation line and closes when the running brace depth returns to
// zero after at least one opening brace.
func scanTestBlocks(generated string) []testBlock {
	var (
		blocks  []testBlock
		current strings.Builder
		name    string

		inBlock    bool
		braceDepth int
		sawBrace   bool
	)

	for _, line := range strings.Split(generated, "\n") {
		trimmed := strings.TrimSpace(line)

		if !inBlock {
			if !strings.HasPrefix(trimmed, "@Test") {
				continue
			}

			inBlock = true
			braceDepth = 0
			sawBrace = false
			name = ""
			current.Reset()
		}

		current.WriteString(line)
		current.WriteString("\n")

		for i := 0; i < len(line); i++ {
			switch line[i] {
			case '{':
				braceDepth++
				sawBrace = true
			case '}':
				braceDepth--
			}
		}

		if name == "" {
			name = methodNameFromLine(trimmed)
		}

		if sawBrace && braceDepth == 0 {
			blocks = append(blocks, testBlock{name: name, text: current.String()})
			inBlock = false
		}
	}

	return blocks
}

// methodNameFromLine extracts the bare test-method name from a
// "void name(...)" declaration line, or returns "".
func methodNameFromLine(trimmed string) string {
	const voidPrefix = "void "

	if !strings.HasPrefix(trimmed, voidPrefix) {
		return ""
	}

	rest := trimmed[len(voidPrefix):]

	paren := strings.IndexByte(rest, '(')
	if paren <= 0 {
		return ""
	}

	return strings.TrimSpace(rest[:paren])
}
