package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/adesai/prepdeck/internal/progress"
)

// LatestAnalytics fetches the learner's latest submitted progress for a
// course. Three server responses all mean "no attempt yet" and map to
// ErrNoAnalytics rather than a failure: a 404, an absent body, and a
// 200 whose detail field says no analytics were found.
func (c *Client) LatestAnalytics(ctx context.Context, courseID int) (*progress.Payload, error) {
	path := fmt.Sprintf("/courses/%d/latest-submitted-analytics", courseID)

	raw, err := c.get(ctx, path, nil, AnalyticsSchema.Name)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return nil, ErrNoAnalytics
		}
		return nil, err
	}

	if len(raw) == 0 {
		return nil, ErrNoAnalytics
	}

	var payload progress.Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &PayloadError{Path: path, Err: err}
	}

	if _, noAnalytics := progress.Normalize(&payload); noAnalytics {
		return nil, ErrNoAnalytics
	}
	return &payload, nil
}
