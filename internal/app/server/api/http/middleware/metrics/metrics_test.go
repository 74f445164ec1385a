package metrics

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	appmetrics "safetrip/internal/metrics"
)

func TestMiddleware_CountsRequests(t *testing.T) {
	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		OperationID: "metrics-ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Middlewares: huma.Middlewares{Middleware()},
	}, func(context.Context, *struct{}) (*struct{}, error) {
		return nil, nil
	})

	counter := appmetrics.HTTPRequestsTotal.WithLabelValues("metrics-ping", "204")
	before := testutil.ToFloat64(counter)

	resp := api.Get("/ping")

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
