package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/adesai/prepdeck/internal/catalog"
)

// CatalogMode selects which catalog shape the server returns.
type CatalogMode string

const (
	// ModeChapters returns the chapter-nested shape used by quizzes.
	ModeChapters CatalogMode = "quiz"
	// ModeFull returns the flat shape used by mock tests.
	ModeFull CatalogMode = "full"
)

// Courses fetches the course index.
func (c *Client) Courses(ctx context.Context) ([]catalog.Course, error) {
	raw, err := c.get(ctx, "/courses", nil, CourseIndexSchema.Name)
	if err != nil {
		return nil, err
	}
	var courses []catalog.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		return nil, &PayloadError{Path: "/courses", Err: err}
	}
	return courses, nil
}

// Catalog fetches a course's question set in the requested mode. The
// response cache lives with the caller; the catalog is immutable for
// the lifetime of one screen visit.
func (c *Client) Catalog(ctx context.Context, courseID int, mode CatalogMode) (*catalog.Catalog, error) {
	path := fmt.Sprintf("/courses/%d/questions", courseID)
	q := url.Values{"mode": {string(mode)}}

	raw, err := c.get(ctx, path, q, CatalogSchema.Name)
	if err != nil {
		return nil, err
	}

	var cat catalog.Catalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, &PayloadError{Path: path, Err: err}
	}
	cat.CourseID = courseID
	return &cat, nil
}
