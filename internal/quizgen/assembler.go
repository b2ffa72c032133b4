package quizgen

import (
	"fmt"
	"iter"
	"strings"
)

// Block is a provisional, not-yet-validated grouping of raw lines
// believed to describe one question. Options keep their "A) " labels
// until sanitization.
type Block struct {
	// ID is the 1-based sequence id ("q_1", "q_2", ...) assigned when
	// the block is flushed. Used as the question's fallback identifier.
	ID string

	Text          string
	DeclaredType  string
	RawOptions    []string
	CorrectAnswer string
	Explanation   string
}

// lineKind classifies a tokenized line by its textual marker.
type lineKind int

const (
	lineOther lineKind = iota
	lineQuestion
	lineType
	lineOption
	lineAnswer
	lineExplanation
)

// optionLabels are the recognized choice markers, in label order.
var optionLabels = []string{"A)", "B)", "C)", "D)"}

// classifyLine decides what a line contributes to the current block.
// The returned payload is the text after the marker (after the first
// ":" for keyed lines, the full line for options and unrecognized
// lines).
func classifyLine(line string) (lineKind, string) {
	switch {
	case strings.HasPrefix(line, "Question"):
		// Question text is everything after the first ":", or the
		// whole line if there is none.
		if _, rest, ok := strings.Cut(line, ":"); ok {
			return lineQuestion, strings.TrimSpace(rest)
		}
		return lineQuestion, line
	case strings.HasPrefix(line, "Type:"):
		return lineType, strings.TrimSpace(strings.TrimPrefix(line, "Type:"))
	case strings.HasPrefix(line, "Correct Answer:"):
		return lineAnswer, strings.TrimSpace(strings.TrimPrefix(line, "Correct Answer:"))
	case strings.HasPrefix(line, "Explanation:"):
		return lineExplanation, strings.TrimSpace(strings.TrimPrefix(line, "Explanation:"))
	}
	for _, label := range optionLabels {
		if strings.HasPrefix(line, label) {
			return lineOption, line
		}
	}
	return lineOther, line
}

// Assemble runs the single-pass, forward-only state machine over
// tokenized lines and returns the ordered provisional blocks. A
// "Question" line opens a new block, flushing any open one first;
// metadata lines fill the open block; anything else (separators, stray
// commentary) is ignored. End of input flushes the last open block.
func Assemble(lines iter.Seq[string]) []Block {
	var blocks []Block
	var cur *Block

	flush := func() {
		if cur == nil {
			return
		}
		cur.ID = fmt.Sprintf("q_%d", len(blocks)+1)
		blocks = append(blocks, *cur)
		cur = nil
	}

	for line := range lines {
		kind, payload := classifyLine(line)

		if kind == lineQuestion {
			flush()
			cur = &Block{Text: payload}
			continue
		}
		if cur == nil {
			// Metadata before any "Question" line has nothing to
			// attach to.
			continue
		}

		switch kind {
		case lineType:
			cur.DeclaredType = payload
		case lineOption:
			cur.RawOptions = append(cur.RawOptions, payload)
		case lineAnswer:
			cur.CorrectAnswer = payload
		case lineExplanation:
			cur.Explanation = payload
		}
	}
	flush()

	return blocks
}
