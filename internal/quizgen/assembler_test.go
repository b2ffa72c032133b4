package quizgen

import (
	"slices"
	"testing"
)

func assemble(raw string) []Block {
	return Assemble(Lines(raw))
}

func TestAssemble_SingleBlock(t *testing.T) {
	raw := `Question 1: What is 2+2?
Type: multiple_choice
A) 3
B) 4
Correct Answer: B) 4
Explanation: Basic addition.`

	blocks := assemble(raw)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	b := blocks[0]
	if b.ID != "q_1" {
		t.Errorf("got id %q, want q_1", b.ID)
	}
	if b.Text != "What is 2+2?" {
		t.Errorf("got text %q", b.Text)
	}
	if b.DeclaredType != "multiple_choice" {
		t.Errorf("got declared type %q", b.DeclaredType)
	}
	if want := []string{"A) 3", "B) 4"}; !slices.Equal(b.RawOptions, want) {
		t.Errorf("got options %v, want %v", b.RawOptions, want)
	}
	if b.CorrectAnswer != "B) 4" {
		t.Errorf("got answer %q", b.CorrectAnswer)
	}
	if b.Explanation != "Basic addition." {
		t.Errorf("got explanation %q", b.Explanation)
	}
}

func TestAssemble_QuestionLineFlushesPrevious(t *testing.T) {
	raw := `Question 1: First?
Correct Answer: yes
Question 2: Second?
Correct Answer: no`

	blocks := assemble(raw)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].ID != "q_1" || blocks[1].ID != "q_2" {
		t.Errorf("got ids %q, %q", blocks[0].ID, blocks[1].ID)
	}
	if blocks[0].CorrectAnswer != "yes" || blocks[1].CorrectAnswer != "no" {
		t.Errorf("answers attached to wrong blocks: %+v", blocks)
	}
}

func TestAssemble_MetadataBeforeFirstQuestionIgnored(t *testing.T) {
	raw := `Here are your quiz questions!
Type: true_false
Correct Answer: true
Question 1: Real question?
Correct Answer: yes`

	blocks := assemble(raw)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].DeclaredType != "" {
		t.Errorf("leading metadata leaked into block: %q", blocks[0].DeclaredType)
	}
	if blocks[0].CorrectAnswer != "yes" {
		t.Errorf("got answer %q, want yes", blocks[0].CorrectAnswer)
	}
}

func TestAssemble_UnrecognizedLinesIgnored(t *testing.T) {
	raw := `Question 1: What?
---
Some model commentary.
Correct Answer: something`

	blocks := assemble(raw)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].CorrectAnswer != "something" {
		t.Errorf("separator broke the block: %+v", blocks[0])
	}
}

func TestAssemble_QuestionWithoutColon(t *testing.T) {
	blocks := assemble("Question without separator\nCorrect Answer: x")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Text != "Question without separator" {
		t.Errorf("got text %q", blocks[0].Text)
	}
}

func TestAssemble_Empty(t *testing.T) {
	if blocks := assemble(""); len(blocks) != 0 {
		t.Errorf("expected no blocks, got %v", blocks)
	}
}

func TestClassifyLine_Kinds(t *testing.T) {
	cases := []struct {
		line    string
		kind    lineKind
		payload string
	}{
		{"Question 3: Why?", lineQuestion, "Why?"},
		{"Type: short_answer", lineType, "short_answer"},
		{"A) first", lineOption, "A) first"},
		{"D) last", lineOption, "D) last"},
		{"Correct Answer: 42", lineAnswer, "42"},
		{"Explanation: because", lineExplanation, "because"},
		{"random prose", lineOther, "random prose"},
		{"E) not a label", lineOther, "E) not a label"},
	}
	for _, tc := range cases {
		kind, payload := classifyLine(tc.line)
		if kind != tc.kind || payload != tc.payload {
			t.Errorf("classifyLine(%q) = (%d, %q), want (%d, %q)",
				tc.line, kind, payload, tc.kind, tc.payload)
		}
	}
}
