package progress

import (
	"testing"

	"github.com/adesai/prepdeck/internal/catalog"
)

func intPtr(v int) *int { return &v }

func TestNormalize_NilPayload(t *testing.T) {
	m, noAnalytics := Normalize(nil)
	if !noAnalytics {
		t.Error("expected noAnalytics for nil payload")
	}
	if len(m) != 0 {
		t.Errorf("len(m) = %d, want 0", len(m))
	}
}

func TestNormalize_NoAnalyticsDetail(t *testing.T) {
	tests := []struct {
		name   string
		detail string
		want   bool
	}{
		{"exact", "No analytics found", true},
		{"different case", "no Analytics Found", true},
		{"embedded", "error: no analytics found for course", true},
		{"unrelated detail", "rate limited", false},
		{"empty detail", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, noAnalytics := Normalize(&Payload{Detail: tt.detail})
			if noAnalytics != tt.want {
				t.Errorf("noAnalytics = %v, want %v", noAnalytics, tt.want)
			}
		})
	}
}

func TestNormalize_FlatAndNestedEquivalent(t *testing.T) {
	entries := []Entry{
		{QuestionID: 1, SelectedOption: intPtr(2)},
		{QuestionID: 2, Flagged: true},
		{QuestionID: 3},
	}

	flat := &Payload{Questions: entries}
	nested := &Payload{Chapters: []progressChapter{
		{ID: 10, Subtopics: []progressSubtopic{
			{ID: 100, Questions: entries[:2]},
			{ID: 101, Questions: entries[2:]},
		}},
	}}

	mFlat, noFlat := Normalize(flat)
	mNested, noNested := Normalize(nested)

	if noFlat || noNested {
		t.Fatal("unexpected noAnalytics for populated payloads")
	}
	if len(mFlat) != 3 || len(mNested) != 3 {
		t.Fatalf("len = %d / %d, want 3 / 3", len(mFlat), len(mNested))
	}
	for id, want := range mFlat {
		got, ok := mNested[id]
		if !ok {
			t.Errorf("question %d missing from nested map", id)
			continue
		}
		if got.Flagged != want.Flagged {
			t.Errorf("question %d Flagged = %v, want %v", id, got.Flagged, want.Flagged)
		}
		if (got.SelectedOption == nil) != (want.SelectedOption == nil) {
			t.Errorf("question %d selection presence differs", id)
		} else if got.SelectedOption != nil && *got.SelectedOption != *want.SelectedOption {
			t.Errorf("question %d SelectedOption = %d, want %d", id, *got.SelectedOption, *want.SelectedOption)
		}
	}
}

func TestClassify(t *testing.T) {
	q := catalog.Question{ID: 1, CorrectOption: 2}

	tests := []struct {
		name  string
		entry *Entry
		want  Status
	}{
		{"no entry", nil, StatusSkipped},
		{"correct answer", &Entry{QuestionID: 1, SelectedOption: intPtr(2)}, StatusCorrect},
		{"incorrect answer", &Entry{QuestionID: 1, SelectedOption: intPtr(0)}, StatusIncorrect},
		{"flagged unanswered", &Entry{QuestionID: 1, Flagged: true}, StatusFlagged},
		{"entry with nothing recorded", &Entry{QuestionID: 1}, StatusSkipped},
		// Answered wins over the flag; the flag is never shown for an
		// answered question.
		{"flagged and correct", &Entry{QuestionID: 1, SelectedOption: intPtr(2), Flagged: true}, StatusCorrect},
		{"flagged and incorrect", &Entry{QuestionID: 1, SelectedOption: intPtr(3), Flagged: true}, StatusIncorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(q, tt.entry); got != tt.want {
				t.Errorf("Classify = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyAll_PreservesCatalogOrder(t *testing.T) {
	questions := []catalog.Question{
		{ID: 5, CorrectOption: 0},
		{ID: 6, CorrectOption: 1},
		{ID: 7, CorrectOption: 2},
	}
	m := Map{
		5: {QuestionID: 5, SelectedOption: intPtr(0)},
		7: {QuestionID: 7, Flagged: true},
	}

	got := ClassifyAll(questions, m)
	want := []Status{StatusCorrect, StatusSkipped, StatusFlagged}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusSkipped, "skipped"},
		{StatusCorrect, "correct"},
		{StatusIncorrect, "incorrect"},
		{StatusFlagged, "flagged"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}
