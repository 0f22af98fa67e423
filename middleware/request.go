package middleware

import (
	"time"

	"github.com/Aksh8804/india-estuaries-api/metrics"
	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
	"go.uber.org/zap"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

//RequestLog tags the request with an id, then logs and counts it once the handlers are done
func RequestLog(ctx iris.Context) {

	start := time.Now()
	id := ctx.GetHeader(RequestIDHeader)
	if id == "" {
		id = uuid.New().String()
	}
	ctx.Header(RequestIDHeader, id)
	ctx.Values().Set(requestIDKey, id)

	ctx.Next()

	//registered with app.Use, so only matched routes get here
	route := ctx.GetCurrentRoute().Path()
	elapsed := time.Since(start)
	status := ctx.GetStatusCode()
	metrics.ObserveRequest(ctx.Method(), route, status, elapsed)

	zap.L().Info("request",
		zap.String("request_id", id),
		zap.String("method", ctx.Method()),
		zap.String("path", ctx.Path()),
		zap.String("route", route),
		zap.Int("status", status),
		zap.Duration("latency", elapsed))
}

//RequestID returns the id assigned by RequestLog, empty outside of it
func RequestID(ctx iris.Context) string {
	return ctx.Values().GetString(requestIDKey)
}
