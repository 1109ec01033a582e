package main

import (
	"errors"
	"net/http"

	"github.com/caffeinepub/cupcakemc/external/backend"
)

// remoteStatus maps a failed backend call to a response status. Authorization
// failures surface as denials; anything else is a gateway-side failure the
// view renders as an error placeholder.
func remoteStatus(err error) int {
	switch {
	case errors.Is(err, backend.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, backend.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
