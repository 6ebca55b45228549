package adapter

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx relay response into the adapter's
// sentinel errors, so services can branch with errors.Is instead of
// inspecting status codes.
func mapHTTPError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, resp.Status())
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, resp.Status())
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, resp.Status())
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, resp.Status())
	default:
		return fmt.Errorf("%w: %s", ErrRelay, resp.Status())
	}
}
