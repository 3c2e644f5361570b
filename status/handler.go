package status

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const (
	StatusOnline       = "online"
	MessageOperational = "Services Operational"
	DefaultLanguage    = "go"

	timestampLayout      = "2006-01-02T15:04:05"
	timestampMicroLayout = "2006-01-02T15:04:05.000000"
)

// Clock returns the current time. Tests replace it with a fixed value.
type Clock func() time.Time

// Response is the body written for every status request.
type Response struct {
	Status    string `json:"status"`
	Language  string `json:"language"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Handler answers status requests. It holds no mutable state and is safe for concurrent use.
type Handler struct {
	language string
	clock    Clock
}

func NewHandler(language string, clock Clock) *Handler {
	if language == "" {
		language = DefaultLanguage
	}
	if clock == nil {
		clock = time.Now
	}
	return &Handler{
		language: language,
		clock:    clock,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	body, err := h.marshalResponse()
	if err != nil {
		log.Printf("Error creating status response: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(body); err != nil {
		log.Printf("Error writing status response: %v", err)
	}
}

func (h *Handler) marshalResponse() ([]byte, error) {
	resp := h.newResponse()
	body, err := json.Marshal(resp)
	if err != nil {
		return nil, errors.Wrap(err, "marshalling status response")
	}
	return body, nil
}

func (h *Handler) newResponse() Response {
	return Response{
		Status:    StatusOnline,
		Language:  h.language,
		Message:   MessageOperational,
		Timestamp: FormatTimestamp(h.clock()),
	}
}

// FormatTimestamp renders t as ISO-8601 without zone offset. Microseconds are
// included unless they are zero.
func FormatTimestamp(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(timestampLayout)
	}
	return t.Format(timestampMicroLayout)
}
