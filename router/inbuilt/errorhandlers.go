package inbuilt

import (
	"context"

	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/status"
	"github.com/indigo-web/lite/service"
)

// AllErrors is used to be passed into Router.RouteError, indicating by that,
// that the handler must handle ALL errors (if concrete error's handler won't
// override it)
const AllErrors = status.Code(0)

type errHandlers map[status.Code]service.Service

func newErrHandlers() errHandlers {
	return errHandlers{
		AllErrors:               service.ServiceFunc(genericErrorHandler),
		status.MethodNotAllowed: service.ServiceFunc(generic405Handler),
	}
}

func genericErrorHandler(_ context.Context, request *http.Request) *http.Response {
	return request.Respond().Error(request.Env.Error)
}

func generic405Handler(ctx context.Context, request *http.Request) *http.Response {
	resp := genericErrorHandler(ctx, request)
	if len(request.Env.AllowedMethods) > 0 {
		resp.Header("Allow", request.Env.AllowedMethods)
	}

	return resp
}

// RouteError adds an error handler for corresponding HTTP error codes. The request passed
// to the handler carries the cause in its Env.Error. You can set your own handler and
// override default response.
//
// The following error codes may be handled:
//   - AllErrors
//   - status.BadRequest
//   - status.NotFound
//   - status.MethodNotAllowed
//   - status.InternalServerError
func (r *Router) RouteError(handler Handler, codes ...status.Code) *Router {
	s := service.Must(handler)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, code := range codes {
		r.errHandlers[code] = s
	}

	return r
}

// OnError implements router.Router. If the handler for the code panics or returns nil,
// the generic response is rendered instead.
func (r *Router) OnError(request *http.Request, err error) (resp *http.Response) {
	request.Env.Error = err
	code := status.CodeOf(err)

	r.mu.RLock()
	handler, found := r.errHandlers[code]
	if !found {
		handler = r.errHandlers[AllErrors]
	}
	r.mu.RUnlock()

	defer func() {
		if recover() != nil {
			resp = nil
		}

		if resp == nil {
			resp = genericErrorHandler(request.Ctx, request)
		}
	}()

	return handler.Invoke(request.Ctx, request)
}
