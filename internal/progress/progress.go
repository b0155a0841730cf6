// Package progress normalizes submitted-answer payloads and derives
// per-question display statuses.
package progress

import (
	"strings"

	"github.com/adesai/prepdeck/internal/catalog"
)

// Entry is a learner's recorded interaction with one question.
// SelectedOption is nil when the question was never answered.
type Entry struct {
	QuestionID     int  `json:"question"`
	SelectedOption *int `json:"selected_option"`
	Flagged        bool `json:"is_flagged"`
}

// Map is the normalized progress view: question ID to entry.
type Map map[int]Entry

// Payload is the latest-submitted-analytics response. The server emits
// either a flat Questions list or the chapter-nested equivalent; both
// carry the same aggregate fields.
type Payload struct {
	Detail             string            `json:"detail,omitempty"`
	CorrectCount       *int              `json:"correct_count,omitempty"`
	AttemptedQuestions *int              `json:"attempted_questions,omitempty"`
	FlaggedCount       *int              `json:"flagged_count,omitempty"`
	SkippedCount       *int              `json:"skipped_count,omitempty"`
	TotalQuestions     *int              `json:"total_questions,omitempty"`
	IsSubmitted        bool              `json:"is_submitted,omitempty"`
	LastViewedQuestion int               `json:"last_viewed_question,omitempty"`
	Questions          []Entry           `json:"questions,omitempty"`
	Chapters           []progressChapter `json:"chapters,omitempty"`
}

type progressChapter struct {
	ID        int                `json:"id"`
	Subtopics []progressSubtopic `json:"subtopics"`
}

type progressSubtopic struct {
	ID        int     `json:"id"`
	Questions []Entry `json:"questions"`
}

// noAnalyticsDetail is the detail string the server uses for a course
// the learner has never attempted.
const noAnalyticsDetail = "No analytics found"

// Normalize flattens a progress payload of either shape into a Map.
// A nil payload, or one whose detail marks a never-attempted course,
// yields an empty map and noAnalytics=true; neither is an error.
func Normalize(p *Payload) (m Map, noAnalytics bool) {
	m = make(Map)
	if p == nil {
		return m, true
	}
	if p.Detail != "" && containsNoAnalytics(p.Detail) {
		return m, true
	}

	for _, e := range p.Questions {
		m[e.QuestionID] = e
	}
	for _, ch := range p.Chapters {
		for _, st := range ch.Subtopics {
			for _, e := range st.Questions {
				m[e.QuestionID] = e
			}
		}
	}
	return m, false
}

func containsNoAnalytics(detail string) bool {
	return strings.Contains(strings.ToLower(detail), strings.ToLower(noAnalyticsDetail))
}

// Status is the derived display classification for one question.
type Status int

const (
	StatusSkipped Status = iota
	StatusCorrect
	StatusIncorrect
	StatusFlagged
)

// String returns the lowercase badge label for the status.
func (s Status) String() string {
	switch s {
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	case StatusFlagged:
		return "flagged"
	default:
		return "skipped"
	}
}

// Classify derives the display status for a question. Precedence, first
// match wins:
//
//  1. no entry recorded            -> skipped
//  2. an option was selected       -> correct / incorrect
//  3. unanswered but flagged       -> flagged
//  4. otherwise                    -> skipped
//
// A question that is both answered and flagged therefore shows its
// correctness, not its flag. That mirrors the platform's historical
// behavior and the per-row badges in the mobile apps; changing it would
// desync this client from the web UI.
func Classify(q catalog.Question, entry *Entry) Status {
	if entry == nil {
		return StatusSkipped
	}
	if entry.SelectedOption != nil {
		if *entry.SelectedOption == q.CorrectOption {
			return StatusCorrect
		}
		return StatusIncorrect
	}
	if entry.Flagged {
		return StatusFlagged
	}
	return StatusSkipped
}

// ClassifyAll classifies every catalog question against the normalized
// map, preserving catalog order.
func ClassifyAll(questions []catalog.Question, m Map) []Status {
	out := make([]Status, len(questions))
	for i, q := range questions {
		if e, ok := m[q.ID]; ok {
			entry := e
			out[i] = Classify(q, &entry)
		} else {
			out[i] = Classify(q, nil)
		}
	}
	return out
}
