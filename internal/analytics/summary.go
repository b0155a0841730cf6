// Package analytics reconciles server-computed attempt aggregates with
// locally classified question statuses into display-ready summaries.
package analytics

import (
	"math"

	"github.com/adesai/prepdeck/internal/catalog"
	"github.com/adesai/prepdeck/internal/progress"
)

// Summary is the reconciled aggregate view of one course attempt.
// Counts come from the server where supplied, with local classification
// filling gaps; incorrect is always derived because the server never
// sends it.
type Summary struct {
	TotalQuestions  int
	CorrectCount    int
	AttemptedCount  int
	IncorrectCount  int
	FlaggedCount    int
	SkippedCount    int
	AccuracyPercent int
	IsSubmitted     bool
}

// Row pairs a question with its locally classified badge for the
// per-question detail list. Server aggregates never override rows.
type Row struct {
	Question catalog.Question
	Entry    *progress.Entry
	Status   progress.Status
}

// Build reconciles the server payload with local classification over
// the flattened catalog. Server counts take precedence for the summary;
// the rows always reflect local classification. A nil payload (no
// attempt yet) produces an all-zero summary and all-skipped rows.
func Build(questions []catalog.Question, serverTotal int, payload *progress.Payload) (Summary, []Row) {
	m, _ := progress.Normalize(payload)

	rows := make([]Row, len(questions))
	var localCorrect, localAttempted, localFlagged int
	for i, q := range questions {
		var entry *progress.Entry
		if e, ok := m[q.ID]; ok {
			copied := e
			entry = &copied
		}
		st := progress.Classify(q, entry)
		rows[i] = Row{Question: q, Entry: entry, Status: st}

		switch st {
		case progress.StatusCorrect:
			localCorrect++
		case progress.StatusFlagged:
			localFlagged++
		}
		if entry != nil && entry.SelectedOption != nil {
			localAttempted++
		}
	}

	total := serverTotal
	if payload != nil {
		if v := coalesce(payload.TotalQuestions); v > 0 {
			total = v
		}
	}
	if total <= 0 {
		total = len(questions)
	}

	s := Summary{TotalQuestions: total}
	if payload != nil {
		s.IsSubmitted = payload.IsSubmitted
		s.CorrectCount = pick(payload.CorrectCount, localCorrect)
		s.AttemptedCount = pick(payload.AttemptedQuestions, localAttempted)
		s.FlaggedCount = pick(payload.FlaggedCount, localFlagged)
		s.SkippedCount = pick(payload.SkippedCount, clampNonNeg(total-s.AttemptedCount))
	} else {
		s.CorrectCount = localCorrect
		s.AttemptedCount = localAttempted
		s.FlaggedCount = localFlagged
		s.SkippedCount = clampNonNeg(total - localAttempted)
	}

	s.IncorrectCount = clampNonNeg(s.AttemptedCount - s.CorrectCount)
	s.AccuracyPercent = Accuracy(s.CorrectCount, s.TotalQuestions)
	return s, rows
}

// Accuracy returns round(correct/total*100), and 0 for a zero or
// negative total. Never panics on degenerate input.
func Accuracy(correct, total int) int {
	if total <= 0 {
		return 0
	}
	pct := float64(correct) / float64(total) * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0
	}
	return int(math.Round(pct))
}

// pick prefers a server-supplied count over the local fallback. The
// upstream API omits fields inconsistently, so nil means "not sent",
// and negatives are treated as corruption and coerced to the fallback.
func pick(server *int, local int) int {
	if server == nil || *server < 0 {
		return clampNonNeg(local)
	}
	return *server
}

func coalesce(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func clampNonNeg(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
