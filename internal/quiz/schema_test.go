package quiz

import "testing"

func TestParseSubmission_Valid(t *testing.T) {
	raw := []byte(`{"answers": {"q_1": "4", "q_2": "false"}, "time_taken": 90}`)
	sub, err := ParseSubmission(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Answers["q_1"] != "4" || sub.Answers["q_2"] != "false" {
		t.Errorf("got answers %v", sub.Answers)
	}
	if sub.TimeTakenSec != 90 {
		t.Errorf("got time taken %d, want 90", sub.TimeTakenSec)
	}
}

func TestParseSubmission_EmptyAnswers(t *testing.T) {
	sub, err := ParseSubmission([]byte(`{"answers": {}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Answers == nil {
		t.Error("answers map should never be nil")
	}
	if len(sub.Answers) != 0 {
		t.Errorf("got answers %v, want empty", sub.Answers)
	}
}

func TestParseSubmission_MissingAnswers(t *testing.T) {
	if _, err := ParseSubmission([]byte(`{"time_taken": 10}`)); err == nil {
		t.Error("expected error for document without answers")
	}
}

func TestParseSubmission_WrongAnswerType(t *testing.T) {
	if _, err := ParseSubmission([]byte(`{"answers": {"q_1": 4}}`)); err == nil {
		t.Error("expected error for non-string answer value")
	}
}

func TestParseSubmission_UnknownField(t *testing.T) {
	if _, err := ParseSubmission([]byte(`{"answers": {}, "extra": true}`)); err == nil {
		t.Error("expected error for unknown top-level field")
	}
}

func TestParseSubmission_InvalidJSON(t *testing.T) {
	if _, err := ParseSubmission([]byte(`{not json`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestParseSubmission_NegativeTime(t *testing.T) {
	if _, err := ParseSubmission([]byte(`{"answers": {}, "time_taken": -5}`)); err == nil {
		t.Error("expected error for negative time")
	}
}
