package handler

import "strings"

// Event is the HTTP-shaped invocation payload. It covers both API Gateway
// proxy formats: v1 carries the method at the top level, v2 nests it under
// requestContext.http.
type Event struct {
	HTTPMethod      string            `json:"httpMethod"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
	RequestContext  struct {
		HTTP struct {
			Method string `json:"method"`
		} `json:"http"`
	} `json:"requestContext"`
}

// Method resolves the HTTP method from either payload format.
func (e Event) Method() string {
	if e.HTTPMethod != "" {
		return e.HTTPMethod
	}
	return e.RequestContext.HTTP.Method
}

// header does a case-insensitive lookup; gateways are not consistent
// about header casing.
func (e Event) header(name string) string {
	for k, v := range e.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
