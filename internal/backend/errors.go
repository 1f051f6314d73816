package backend

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

var defaultErrorKeys = []string{"message"}

// Error is a non-2xx backend response.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusOf returns the backend status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// newError picks the first non-empty key from a JSON body. A body that is not
// JSON is used verbatim; an empty one falls back to the status code.
func newError(status int, body []byte, keys ...string) *Error {
	raw := strings.TrimSpace(string(body))
	msg := ""
	if gjson.Valid(raw) {
		doc := gjson.Parse(raw)
		for _, key := range keys {
			if v := doc.Get(key); v.Type == gjson.String && v.String() != "" {
				msg = v.String()
				break
			}
		}
	} else {
		msg = raw
	}
	if msg == "" {
		msg = fmt.Sprintf("API Error: %d", status)
	}
	return &Error{Status: status, Message: msg}
}
