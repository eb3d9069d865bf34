package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/voucher_management_app/internal/apperrors"
)

const dateLayout = "2006-01-02"

// acceptedLayouts are tried in order when parsing dates from requests. Values without
// an offset are taken as UTC.
var acceptedLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", dateLayout}

// Date is a request timestamp that also accepts a bare YYYY-MM-DD date.
type Date struct {
	time.Time
}

// UnmarshalJSON parses RFC 3339 timestamps, naive timestamps and plain dates.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := parseTime(s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// MarshalJSON renders the date as an RFC 3339 timestamp.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}

// TimePtr converts an optional request date to an optional time.
func (d *Date) TimePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
}

// parseDateBound parses a query date. A bare date used as an upper bound covers the whole day.
func parseDateBound(field, s string, upper bool) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := parseTime(s)
	if err != nil {
		return nil, apperrors.NewFieldError(field, err.Error())
	}
	if upper && len(strings.TrimSpace(s)) == len(dateLayout) {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// MessageResponse is returned by operations that have no resource to show.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// HealthResponse reports process liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	App     string `json:"app,omitempty"`
	Store   string `json:"store,omitempty"`
	Version string `json:"version"`
}
