package util

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HeaderRequestID carries the id of a request, reused as event track id.
const HeaderRequestID = "X-Request-ID"

func InternalServerError(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusInternalServerError)
}

func JSONResponse(ctx *fasthttp.RequestCtx, status int, response string) {
	ctx.SetStatusCode(status)
	ctx.SetBodyString(response)
	ctx.SetContentType("application/json")
}

// JSONValue encodes v as the response body.
func JSONValue(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).Error("unable to encode response")
		InternalServerError(ctx)
		return
	}

	JSONResponse(ctx, status, string(b))
}

// ErrorResponse writes {"error": kind, "message": message}.
func ErrorResponse(ctx *fasthttp.RequestCtx, status int, kind string, message string) {
	JSONValue(ctx, status, struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}{kind, message})
}

// RequestID returns the id of the request, taken from the X-Request-ID
// header or set by the server.
func RequestID(ctx *fasthttp.RequestCtx) string {
	return string(ctx.Request.Header.Peek(HeaderRequestID))
}
