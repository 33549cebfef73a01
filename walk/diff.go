package walk

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// printDiff writes a line-oriented change report between the original
// file text and the rewritten output.
func printDiff(w io.Writer, from, to string) {
	diffCfg := diffpatch.New()
	fromLines, toLines, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(fromLines, toLines, false), lines)
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			writeMarked(w, "+", diff.Text, color.GreenString)
		case diffpatch.DiffDelete:
			writeMarked(w, "-", diff.Text, color.RedString)
		case diffpatch.DiffEqual:
			// equal runs are elided; the walker already names
			// the file above the report
		}
	}
}

func writeMarked(w io.Writer, mark, text string, paint func(string, ...any) string) {
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		fmt.Fprintln(w, paint("%s %s", mark, line))
	}
}
