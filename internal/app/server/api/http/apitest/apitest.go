// Package apitest builds huma test APIs configured like the real server.
package apitest

import (
	"github.com/danielgtaylor/huma/v2/humatest"

	"safetrip/internal/app/server/api/http/openapi"
	"safetrip/internal/app/server/api/http/response"
)

// New returns a test API that renders errors with the response envelope.
func New(tb humatest.TB) humatest.TestAPI {
	response.Install()

	_, api := humatest.New(tb, openapi.Config("safetrip test", "1.0.0"))
	return api
}
