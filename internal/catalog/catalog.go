// Package catalog holds the question bank types for a course.
//
// The platform serves the catalog in two shapes: chapter-nested for
// chapter quizzes and flat for full mock tests. Both decode into
// Catalog; Flatten folds either into one ordered slice.
package catalog

// Question is a single multiple-choice question. Immutable once fetched.
type Question struct {
	ID            int    `json:"id"`
	Text          string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption int    `json:"correct_option"` // index 0-3
	Explanation   string `json:"explanation"`
}

// Options returns the four answer options in display order.
func (q Question) Options() [4]string {
	return [4]string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}

// Subtopic groups questions under a chapter.
type Subtopic struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// Chapter groups subtopics within a course.
type Chapter struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Subtopics []Subtopic `json:"subtopics"`
}

// Catalog is a course's question bank as served by the platform.
// Exactly one of Chapters or Questions is populated depending on mode.
type Catalog struct {
	CourseID       int        `json:"course_id"`
	Name           string     `json:"name"`
	TotalQuestions int        `json:"total_questions"`
	Chapters       []Chapter  `json:"chapters,omitempty"`
	Questions      []Question `json:"questions,omitempty"`
}

// Flatten folds the catalog into a single ordered question slice,
// iterating chapters then subtopics for the nested shape.
func (c *Catalog) Flatten() []Question {
	if c == nil {
		return nil
	}
	if len(c.Questions) > 0 {
		out := make([]Question, len(c.Questions))
		copy(out, c.Questions)
		return out
	}
	var out []Question
	for _, ch := range c.Chapters {
		for _, st := range ch.Subtopics {
			out = append(out, st.Questions...)
		}
	}
	return out
}

// Total returns the authoritative question count: the server-supplied
// total when positive, otherwise the flattened length.
func (c *Catalog) Total() int {
	if c == nil {
		return 0
	}
	if c.TotalQuestions > 0 {
		return c.TotalQuestions
	}
	return len(c.Flatten())
}

// Course is a catalog listing entry from the course index endpoint.
type Course struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	TotalQuestions int    `json:"total_questions"`
	DurationMins   int    `json:"duration_mins"` // mock exam length
}
