// Package openapi holds the huma configuration shared by the server and
// handler tests.
package openapi

import (
	"path"
	"reflect"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

const modulePath = "safetrip/"

// Config returns the huma config: bearer security scheme, goccy JSON codec
// and a schema registry whose names are unique across handler packages.
func Config(title, version string) huma.Config {
	config := huma.DefaultConfig(title, version)
	config.CreateHooks = nil
	config.Components.Schemas = huma.NewMapRegistry("#/components/schemas/", SchemaName)
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}
	config.Formats = jsonFormats(config.Formats)
	return config
}

// SchemaName prefixes the default name of named module types with their
// package, so lostfound.MessageResponse and user.MessageResponse become
// LostfoundMessageResponse and UserMessageResponse.
func SchemaName(t reflect.Type, hint string) string {
	name := huma.DefaultSchemaNamer(t, hint)

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" || !strings.HasPrefix(t.PkgPath(), modulePath) {
		return name
	}

	pkg := path.Base(t.PkgPath())
	prefix := strings.ToUpper(pkg[:1]) + pkg[1:]
	if strings.HasPrefix(name, prefix) {
		return name
	}
	return prefix + name
}
