package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/charak7/Heart-care/internal/errdefs"
	"github.com/charak7/Heart-care/internal/model"
)

// parseBody decodes the request body into a field map plus the encoding
// tag that ends up on the record as sourceType. Bodies default to JSON
// when no Content-Type is present.
func parseBody(ev Event) (map[string]any, string, error) {
	contentType := ev.header("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	raw := ev.Body
	if ev.IsBase64Encoded {
		// some gateway integrations base64-encode the proxied body
		decoded, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return nil, "", errdefs.BadRequest("Invalid request body encoding")
		}
		raw = string(decoded)
	}

	if strings.Contains(contentType, "application/x-www-form-urlencoded") {
		// Lenient parse: malformed pairs are dropped, first value per key wins.
		values, _ := url.ParseQuery(raw)
		payload := make(map[string]any, len(values))
		for k, vs := range values {
			if len(vs) > 0 {
				payload[k] = vs[0]
			}
		}
		return payload, model.SourceForm, nil
	}

	if raw == "" {
		return map[string]any{}, model.SourceJSON, nil
	}
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, "", errdefs.BadRequest("Invalid JSON in request body")
	}
	payload, ok := decoded.(map[string]any)
	if !ok {
		return nil, "", errdefs.BadRequest("Request JSON must be an object")
	}
	return payload, model.SourceJSON, nil
}
