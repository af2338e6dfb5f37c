package tui

import (
	"fmt"
	"strings"

	"geonotes/models"
)

type markersModel struct {
	markers []models.Marker
	loading bool
}

func (m markersModel) View() string {
	body := titleStyle.Render("Markers") + "\n\n"

	switch {
	case m.loading:
		body += statusStyle.Render("loading...")
	case len(m.markers) == 0:
		body += helpStyle.Render("no markers yet — save a note with a location")
	default:
		for _, marker := range m.markers {
			note := strings.ReplaceAll(marker.Note, "\n", " ")
			if len(note) > 40 {
				note = note[:40] + "…"
			}
			body += fmt.Sprintf("  %9.4f, %9.4f  %s\n", marker.Latitude, marker.Longitude, note)
		}
	}

	body += "\n\n" + helpStyle.Render("esc back")
	return body
}
