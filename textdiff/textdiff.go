// Package textdiff renders line diffs between a file's current contents
// and its formatted form.
package textdiff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Lines computes a line-oriented diff from a to b in unified-ish form:
// deleted lines carry a "-" marker, inserted lines a "+", unchanged lines
// two spaces. When colored is set, deletions render red and insertions
// green.
func Lines(a, b string, colored bool) string {
	diffCfg := diffpatch.New()
	ca, cb, lines := diffCfg.DiffLinesToChars(a, b)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(ca, cb, false), lines)

	red := noColor
	green := noColor
	if colored {
		red = color.RedString
		green = color.GreenString
	}
	var sb strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case diffpatch.DiffDelete:
			writeMarked(&sb, diff.Text, "-", red)
		case diffpatch.DiffInsert:
			writeMarked(&sb, diff.Text, "+", green)
		case diffpatch.DiffEqual:
			writeMarked(&sb, diff.Text, " ", noColor)
		}
	}
	return sb.String()
}

func noColor(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

func writeMarked(sb *strings.Builder, text, mark string, paint func(string, ...interface{}) string) {
	for _, line := range splitKeep(text) {
		sb.WriteString(paint("%s %s", mark, strings.TrimRight(line, "\n")))
		sb.WriteString("\n")
	}
}

// splitKeep splits text into lines, dropping a final empty fragment left
// by a trailing newline.
func splitKeep(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
