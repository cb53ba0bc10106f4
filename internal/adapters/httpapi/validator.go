package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// formMemory caps the multipart bytes kept in memory while validating; the
// rest spills to temporary files.
const formMemory = 32 << 20

var errNotPost = errors.New("request method must be POST")

// CheckPostRequest reports whether r is a POST whose body carries every field
// in fields with a non-empty value. The returned error is the reason to show
// the client; only the first problem, in field order, is reported.
func CheckPostRequest(r *http.Request, fields ...string) error {
	if r.Method != http.MethodPost {
		return errNotPost
	}
	if err := parseBody(r); err != nil {
		return fmt.Errorf("malformed form data: %w", err)
	}
	return checkForm(r.Method, r.PostForm, fields)
}

func checkForm(method string, form url.Values, fields []string) error {
	if method != http.MethodPost {
		return errNotPost
	}
	for _, name := range fields {
		values, ok := form[name]
		if !ok {
			return fmt.Errorf("missing required field %q", name)
		}
		if len(values) == 0 || values[0] == "" {
			return fmt.Errorf("required field %q is empty", name)
		}
	}
	return nil
}

// parseBody fills r.PostForm from either an url-encoded or a multipart body.
func parseBody(r *http.Request) error {
	err := r.ParseMultipartForm(formMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}
	return nil
}
