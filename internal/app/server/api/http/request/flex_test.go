package request

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Text
		wantErr bool
	}{
		{name: "string", raw: `{"days":"3"}`, want: "3"},
		{name: "integer", raw: `{"days":3}`, want: "3"},
		{name: "decimal", raw: `{"days":2.5}`, want: "2.5"},
		{name: "null", raw: `{"days":null}`, want: ""},
		{name: "missing", raw: `{}`, want: ""},
		{name: "object", raw: `{"days":{}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				Days Text `json:"days"`
			}
			err := json.Unmarshal([]byte(tt.raw), &body)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, body.Days)
		})
	}
}
