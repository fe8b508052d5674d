package handlers

import (
	"errors"
	"net/http"

	"github.com/Evecotrip/god-aurumx-sub000/internal/clients"
)

// upstreamError maps a platform API error to the status and message the
// console relays to the browser. Transport failures surface as 502.
func upstreamError(err error) (int, string, bool) {
	var apiErr *clients.Error
	if !errors.As(err, &apiErr) {
		return 0, "", false
	}

	status := apiErr.StatusCode
	if status < http.StatusBadRequest {
		status = http.StatusBadGateway
	}
	return status, apiErr.Message, true
}
