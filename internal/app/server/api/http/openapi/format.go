package openapi

import (
	"io"

	"github.com/danielgtaylor/huma/v2"
	json "github.com/goccy/go-json"
)

var jsonFormat = huma.Format{
	Marshal: func(w io.Writer, v any) error {
		return json.NewEncoder(w).Encode(v)
	},
	Unmarshal: json.Unmarshal,
}

// jsonFormats copies defaults and swaps the JSON codec for goccy.
func jsonFormats(defaults map[string]huma.Format) map[string]huma.Format {
	formats := make(map[string]huma.Format, len(defaults)+2)
	for name, f := range defaults {
		formats[name] = f
	}
	formats["application/json"] = jsonFormat
	formats["json"] = jsonFormat
	return formats
}
