package handler

import (
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

func (h *Handler) corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  h.cfg.AllowedOrigins,
		"Access-Control-Allow-Methods": "OPTIONS,POST",
		"Access-Control-Allow-Headers": "Content-Type,Authorization",
		"Access-Control-Max-Age":       "86400",
	}
}

// respond JSON-encodes the body and attaches the CORS header set every
// response carries.
func (h *Handler) respond(status int, body map[string]string) events.APIGatewayProxyResponse {
	encoded, _ := json.Marshal(body)
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    h.corsHeaders(),
		Body:       string(encoded),
	}
}
