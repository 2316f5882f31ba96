// Package request reads API input sent either by the HTML forms on the
// landing page or by JSON clients.
package request

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
)

// maxJSONBody matches the cap ParseForm applies to form bodies.
const maxJSONBody = 10 << 20

// Values returns the request body as flat key/value pairs. JSON objects are
// accepted when Content-Type is application/json; scalar members are kept
// in their textual form, so {"duration": 30} and {"duration": "30"} read the
// same. Anything else is parsed as a form. JSON bodies larger than
// maxJSONBody are rejected.
func Values(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
		return r.PostForm, nil
	}

	var body map[string]interface{}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, fmt.Errorf("decode json body: %w", err)
	}

	values := url.Values{}
	for key, raw := range body {
		switch v := raw.(type) {
		case string:
			values.Set(key, v)
		case json.Number:
			values.Set(key, v.String())
		case bool:
			values.Set(key, fmt.Sprint(v))
		}
	}
	return values, nil
}
