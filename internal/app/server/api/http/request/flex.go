// Package request holds body field types shared by several endpoints.
package request

import (
	"bytes"
	"fmt"

	"github.com/danielgtaylor/huma/v2"
	json "github.com/goccy/go-json"
)

// Text accepts a JSON string or number and keeps its textual form. Web
// forms send "3" and scripts send 3 for the same field.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number: %w", err)
	}
	*t = Text(n.String())
	return nil
}

func (t Text) String() string { return string(t) }

// Schema documents Text as string-or-number and lets huma's validator accept both.
func (Text) Schema(huma.Registry) *huma.Schema {
	return &huma.Schema{
		OneOf: []*huma.Schema{
			{Type: huma.TypeString},
			{Type: huma.TypeNumber},
		},
		Nullable: true,
	}
}
