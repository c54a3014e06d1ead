// Package walkthrough extracts the structurally meaningful parts of a lab
// walkthrough markdown file: numbered section headers and runnable sql/bash
// code blocks. The extraction quotes the exact text a reader would see, so a
// generated summary can never drift from the canonical walkthrough.
//
// This is deliberately a narrow single-pattern grammar, not a markdown
// parser. Blocks tagged "sql no-parse" or "bash no-parse" are an explicit
// opt-out for illustrative snippets and are never extracted: the pattern
// requires the fence tag to be immediately followed by a newline.
package walkthrough

import (
	"context"
	"os"
	"regexp"
	"strings"

	"github.com/confluentinc/quickstart-streaming-agents/internal/ctxlog"
)

// FragmentKind identifies what a fragment matched.
type FragmentKind string

const (
	KindHeader    FragmentKind = "header"
	KindSQLBlock  FragmentKind = "sql"
	KindBashBlock FragmentKind = "bash"
)

// Fragment is one extracted unit, with its byte offset in the source text.
// Fragments retain source document order.
type Fragment struct {
	Kind   FragmentKind
	Raw    string
	Offset int
}

// fragmentPattern matches, in one combined alternation over the whole
// document: level 1-3 headers whose text starts with an integer and a
// period, fenced sql blocks, and fenced bash blocks. Fence markers are part
// of the match.
var fragmentPattern = regexp.MustCompile(
	"(?ms)(^#{1,3}[ \t]+\\d+\\.[^\n]+)|(^```sql\n.*?^```)|(^```bash\n.*?^```)")

// Fragments returns every header and code block in text, in document order.
func Fragments(text string) []Fragment {
	var fragments []Fragment
	for _, m := range fragmentPattern.FindAllStringSubmatchIndex(text, -1) {
		kind := KindHeader
		switch {
		case m[4] >= 0:
			kind = KindSQLBlock
		case m[6] >= 0:
			kind = KindBashBlock
		}
		fragments = append(fragments, Fragment{
			Kind:   kind,
			Raw:    text[m[0]:m[1]],
			Offset: m[0],
		})
	}
	return fragments
}

// Extract returns the matched fragments joined with blank-line separators,
// headers and code blocks interleaved exactly as authored.
func Extract(text string) string {
	fragments := Fragments(text)
	parts := make([]string, len(fragments))
	for i, f := range fragments {
		parts[i] = f.Raw
	}
	return strings.Join(parts, "\n\n")
}

// ExtractFile extracts from the walkthrough markdown at path. A missing file
// returns an empty result with a warning: not every lab ships a walkthrough,
// and the documentation pipeline degrades gracefully when one is absent.
func ExtractFile(ctx context.Context, path string) string {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Walkthrough file not readable, skipping manual command extraction.",
			"path", path, "reason", err)
		return ""
	}

	return Extract(string(data))
}
