package tui

import (
	"fmt"
	"strings"

	"geonotes/models"
)

type listModel struct {
	notes   []models.Note
	idx     int
	loading bool
	status  string
}

func newListModel() listModel {
	return listModel{loading: true}
}

func (m listModel) current() (models.Note, bool) {
	if m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

func (m listModel) View() string {
	body := titleStyle.Render("Notes") + "\n\n"

	switch {
	case m.loading:
		body += statusStyle.Render("loading...")
	case len(m.notes) == 0:
		body += helpStyle.Render("no notes yet — press n to write one")
	default:
		for i, note := range m.notes {
			cursor := "  "
			line := summariseNote(note)
			if i == m.idx {
				cursor = "> "
				line = selectedStyle.Render(line)
			}
			body += fmt.Sprintf("%s%s\n", cursor, line)
		}
	}

	if m.status != "" {
		body += "\n" + statusStyle.Render(m.status)
	}
	body += "\n\n" + helpStyle.Render("n new · e edit · d delete · c copy image url · m markers · r refresh · q quit")
	return body
}

func summariseNote(note models.Note) string {
	text := strings.ReplaceAll(note.Text, "\n", " ")
	if len(text) > 48 {
		text = text[:48] + "…"
	}

	var tags []string
	if note.ImageRef != nil {
		tags = append(tags, "img")
	}
	if note.AudioRef != nil {
		tags = append(tags, "aud")
	}
	if note.Location != nil {
		tags = append(tags, "geo")
	}
	if len(tags) > 0 {
		text += "  [" + strings.Join(tags, " ") + "]"
	}

	return text
}
