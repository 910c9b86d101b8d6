package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/status"
)

// Call invokes the service and guarantees a non-nil response. A panicking handler is
// recovered and answered with 500 Internal Server Error with headers and body discarded,
// avoiding a half-cooked response being sent. The panic is reported to the logger.
func Call(ctx context.Context, logger *slog.Logger, s Service, req *http.Request) (resp *http.Response) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("handler panicked",
				slog.String("method", req.Method.String()),
				slog.String("path", req.Path),
				slog.String("panic", fmt.Sprint(r)),
			)

			resp = req.Respond().Error(status.ErrInternalServerError)
		}
	}()

	resp = s.Invoke(ctx, req)
	if resp == nil {
		resp = req.Respond()
	}

	return resp
}
