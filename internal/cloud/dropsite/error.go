package dropsite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/dropsite-io/dropsite-cli/internal/utils/api"
)

// ServerError is a dropsite server error
type ServerError struct {
	Message string
}

func (se ServerError) Error() string {
	return se.Message
}

// NetworkError occurs when no response could be obtained from the dropsite server
type NetworkError struct {
	Err error
}

func (ne NetworkError) Error() string {
	return fmt.Sprintf("dropsite server is unreachable: %s", ne.Err)
}

// Unwrap returns the underlying transport error
func (ne NetworkError) Unwrap() error { return ne.Err }

// ErrSiteNotFound occurs when no site exists for the provided name
type ErrSiteNotFound struct {
	Name string
}

func (err ErrSiteNotFound) Error() string {
	return fmt.Sprintf("no site found with the name %q", err.Name)
}

// ErrInvalidPassword occurs when the site password does not match
type ErrInvalidPassword struct{}

func (err ErrInvalidPassword) Error() string {
	return "the provided password is incorrect"
}

// ErrSiteTaken occurs when a site already exists for the provided name
type ErrSiteTaken struct {
	Name string
}

func (err ErrSiteTaken) Error() string {
	return fmt.Sprintf("the site name %q is already taken", err.Name)
}

type serverErrorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// parseResponseError attempts to read and unmarshal a server error
// from the provided *http.Response
func parseResponseError(res *http.Response) error {
	defer res.Body.Close()

	if !strings.HasPrefix(res.Header.Get(api.HeaderContentType), api.MediaTypeJSON) {
		return ServerError{Message: res.Status}
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(res.Body); err != nil {
		return err
	}

	body := buf.String()
	if body == "" {
		return ServerError{Message: res.Status}
	}

	var payload serverErrorPayload
	if err := json.NewDecoder(buf).Decode(&payload); err != nil {
		return ServerError{Message: body}
	}

	message := payload.Error
	if message == "" {
		message = payload.Message
	}
	if message == "" {
		message = res.Status
	}
	return ServerError{Message: message}
}
