package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID   = "x-request-id"
	headerContentType = "content-type"

	queryMode   = "mode"
	queryFormat = "format"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

func modeParam(r *http.Request) string {
	return strings.TrimSpace(r.URL.Query().Get(queryMode))
}

func formatParam(r *http.Request) string {
	return strings.ToLower(strings.TrimSpace(r.URL.Query().Get(queryFormat)))
}
