package metrics

import (
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"

	appmetrics "safetrip/internal/metrics"
)

// Middleware records request counts and latency per operation.
func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		next(ctx)

		op := ctx.Operation().OperationID
		status := ctx.Status()
		if status == 0 {
			status = 200
		}
		appmetrics.HTTPRequestsTotal.WithLabelValues(op, strconv.Itoa(status)).Inc()
		appmetrics.HTTPRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}
