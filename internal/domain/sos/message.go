package sos

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"safetrip/internal/domain/user"
	"safetrip/internal/infrastructure/geocoding"
)

const mapsURL = "https://www.google.com/maps?q="

var htmlBody = template.Must(template.New("sos").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2937;">
  <div style="max-width: 600px; margin: 0 auto; border: 2px solid #dc2626; border-radius: 8px; padding: 24px;">
    <h1 style="color: #dc2626; margin-top: 0;">EMERGENCY SOS ALERT</h1>
    <p><strong>{{.Name}}</strong> has triggered an emergency SOS alert and may need help.</p>
    <h3>Location</h3>
    {{- if .Place}}
    <p>{{.Place.Address}}</p>
    {{- if .Place.Nearby}}<p>Near: {{.Place.Nearby}}</p>{{end}}
    {{- else}}
    <p>{{.Coordinates}}</p>
    {{- end}}
    <p><a href="{{.MapsLink}}" style="background: #dc2626; color: #fff; padding: 10px 16px; border-radius: 4px; text-decoration: none;">Open in Google Maps</a></p>
    <h3>Contact</h3>
    <p>Phone: {{.Phone}}<br>Email: {{.Email}}</p>
    <p style="font-weight: bold; color: #dc2626;">PLEASE RESPOND IMMEDIATELY!</p>
    <p style="font-size: 12px; color: #6b7280;">Alert reference: {{.AlertID}}</p>
  </div>
</body>
</html>`))

type messageData struct {
	AlertID     string
	Name        string
	Phone       string
	Email       string
	Coordinates string
	MapsLink    string
	Place       *geocoding.Place
}

func newMessageData(alertID string, u user.User, lat, lng float64, place *geocoding.Place) messageData {
	return messageData{
		AlertID:     alertID,
		Name:        u.Name,
		Phone:       u.Phone,
		Email:       u.Email,
		Coordinates: formatCoord(lat) + ", " + formatCoord(lng),
		MapsLink:    MapsLink(lat, lng),
		Place:       place,
	}
}

// MapsLink points at the coordinates on Google Maps.
func MapsLink(lat, lng float64) string {
	return mapsURL + formatCoord(lat) + "," + formatCoord(lng)
}

func subject(name string) string {
	return "❗ EMERGENCY SOS Alert from " + name
}

func plainBody(d messageData) string {
	location := d.Coordinates
	if d.Place != nil && d.Place.Address != "" {
		location = d.Place.Address
	}

	var b strings.Builder
	b.WriteString("EMERGENCY SOS ALERT!\n")
	fmt.Fprintf(&b, "%s has triggered an emergency SOS alert.\n", d.Name)
	fmt.Fprintf(&b, "Location: %s\n", location)
	fmt.Fprintf(&b, "Maps Link: %s\n", d.MapsLink)
	fmt.Fprintf(&b, "Contact: %s | %s\n", d.Phone, d.Email)
	b.WriteString("PLEASE RESPOND IMMEDIATELY!\n")
	return b.String()
}

func renderHTML(d messageData) (string, error) {
	var buf bytes.Buffer
	if err := htmlBody.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("render sos email: %w", err)
	}
	return buf.String(), nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
