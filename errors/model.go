package errors

import (
	"encoding/json"
	"maps"
	"strings"

	"google.golang.org/grpc/codes"
)

// Reason is a stable machine-readable code.
type Reason string

type FieldViolation struct {
	Field       string `json:"field"`
	Reason      string `json:"reason,omitempty"`
	Description string `json:"description,omitempty"`
	// Hint is a short user-facing suggestion, shown by Human.
	Hint string `json:"hint,omitempty"`
}

// ErrorResponse is the single error type surfaced by the phone book.
// Code carries the error kind, Reason refines it.
type ErrorResponse struct {
	Code       codes.Code        `json:"code"`
	Reason     Reason            `json:"reason,omitempty"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	Violations []FieldViolation  `json:"violations,omitempty"`
}

func New(message string, code codes.Code, details map[string]string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message, Details: cloneDetails(details)}
}

func (e ErrorResponse) WithReason(r string) ErrorResponse  { e.Reason = Reason(r); return e }
func (e ErrorResponse) WithMessage(m string) ErrorResponse { e.Message = m; return e }

func (e ErrorResponse) WithDetail(k, v string) ErrorResponse {
	return e.WithDetails(map[string]string{k: v})
}

// WithDetails merges m into a copy of the details; the receiver's map is never written.
func (e ErrorResponse) WithDetails(m map[string]string) ErrorResponse {
	if len(m) == 0 {
		return e
	}
	merged := make(map[string]string, len(e.Details)+len(m))
	maps.Copy(merged, e.Details)
	maps.Copy(merged, m)
	e.Details = merged
	return e
}

func (e ErrorResponse) WithViolations(v []FieldViolation) ErrorResponse {
	if len(v) == 0 {
		return e
	}
	e.Violations = append([]FieldViolation(nil), v...)
	return e
}

// Is matches on Code, and on Reason when the target sets one:
// errors.Is(err, NotFound().WithReason("")) matches any not-found error.
func (e ErrorResponse) Is(target error) bool {
	t, ok := target.(ErrorResponse)
	if !ok {
		return false
	}
	if t.Code != e.Code {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

func (e ErrorResponse) ToString() string {
	type out struct {
		Code       string            `json:"code"`
		Reason     Reason            `json:"reason,omitempty"`
		Message    string            `json:"message"`
		Details    map[string]string `json:"details,omitempty"`
		Violations []FieldViolation  `json:"violations,omitempty"`
	}
	b, _ := json.Marshal(out{
		Code:       e.Code.String(),
		Reason:     e.Reason,
		Message:    e.Message,
		Details:    e.Details,
		Violations: e.Violations,
	})
	return string(b)
}

func (e ErrorResponse) Error() string { return e.ToString() }

// Human renders the error for an interactive user:
// "Invalid argument: name (only_ascii_letters_digits_spaces, try \"John\"); phone (must_be_11_digits)".
func (e ErrorResponse) Human() string {
	if len(e.Violations) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Reason == "" {
			parts = append(parts, v.Field)
			continue
		}
		if v.Hint != "" {
			parts = append(parts, v.Field+" ("+v.Reason+", "+v.Hint+")")
			continue
		}
		parts = append(parts, v.Field+" ("+v.Reason+")")
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

func cloneDetails(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	return maps.Clone(in)
}
