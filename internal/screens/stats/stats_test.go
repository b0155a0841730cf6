package stats

import (
	"testing"

	"github.com/adesai/prepdeck/internal/catalog"
	"github.com/adesai/prepdeck/internal/progress"
)

func intPtr(v int) *int { return &v }

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		CourseID:       1,
		Name:           "Algebra",
		TotalQuestions: 2,
		Questions: []catalog.Question{
			{ID: 1, CorrectOption: 0},
			{ID: 2, CorrectOption: 1},
		},
	}
}

func TestStaleMessagesDropped(t *testing.T) {
	s := New(nil, catalog.Course{ID: 1, Name: "Algebra"})

	s.Update(catalogReadyMsg{CourseID: 99, Catalog: testCatalog()})
	if s.gotCat {
		t.Error("expected catalog message for another course to be dropped")
	}

	s.Update(analyticsReadyMsg{CourseID: 99, Payload: &progress.Payload{}})
	if s.gotStats {
		t.Error("expected analytics message for another course to be dropped")
	}
}

func TestClassifyWaitsForBothResponses(t *testing.T) {
	s := New(nil, catalog.Course{ID: 1, Name: "Algebra"})

	s.Update(catalogReadyMsg{CourseID: 1, Catalog: testCatalog()})
	if s.ready {
		t.Fatal("expected classification deferred until analytics arrive")
	}

	payload := &progress.Payload{
		Questions: []progress.Entry{
			{QuestionID: 1, SelectedOption: intPtr(0)},
		},
	}
	s.Update(analyticsReadyMsg{CourseID: 1, Payload: payload})

	if !s.ready {
		t.Fatal("expected ready after both responses")
	}
	if len(s.rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(s.rows))
	}
	if s.rows[0].Status != progress.StatusCorrect {
		t.Errorf("row 0 status = %v, want correct", s.rows[0].Status)
	}
	if s.rows[1].Status != progress.StatusSkipped {
		t.Errorf("row 1 status = %v, want skipped", s.rows[1].Status)
	}
	if s.summary.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", s.summary.CorrectCount)
	}
}

func TestNoHistoryState(t *testing.T) {
	s := New(nil, catalog.Course{ID: 1})

	s.Update(analyticsReadyMsg{CourseID: 1, None: true})
	if !s.noHistory {
		t.Error("expected noHistory set")
	}
	if s.ready || s.err != nil {
		t.Error("expected no-history to be neither ready nor an error")
	}
}
