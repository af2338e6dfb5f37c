package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"geonotes/models"
)

const (
	editFieldText = iota
	editFieldImage
	editFieldAudio
	editFieldLatitude
	editFieldLongitude
	editFieldCount
)

// editModel is the form over one edit session: note text, local paths of
// newly picked attachments and an optional location.
type editModel struct {
	base       *models.Note
	text       textarea.Model
	inputs     []textinput.Model
	focus      int
	submitting bool
	formErr    string
}

func newEditModel(base *models.Note) editModel {
	text := textarea.New()
	text.Placeholder = "write your note"
	text.SetWidth(54)
	text.SetHeight(6)
	text.Focus()

	image := textinput.New()
	image.Placeholder = "image file path (optional)"
	image.Width = 54

	audio := textinput.New()
	audio.Placeholder = "audio file path (optional)"
	audio.Width = 54

	latitude := textinput.New()
	latitude.Placeholder = "latitude (optional)"
	latitude.Width = 20

	longitude := textinput.New()
	longitude.Placeholder = "longitude (optional)"
	longitude.Width = 20

	m := editModel{
		base:   base,
		text:   text,
		inputs: []textinput.Model{image, audio, latitude, longitude},
	}
	if base != nil {
		m.text.SetValue(base.Text)
	}
	return m
}

// prefill loads a restored draft into the form.
func (m editModel) prefill(draft models.Draft) editModel {
	m.text.SetValue(draft.Text)
	if draft.Image != nil {
		m.inputs[0].SetValue(draft.Image.Path)
	}
	if draft.Audio != nil {
		m.inputs[1].SetValue(draft.Audio.Path)
	}
	if draft.Location != nil {
		m.inputs[2].SetValue(strconv.FormatFloat(draft.Location.Latitude, 'f', -1, 64))
		m.inputs[3].SetValue(strconv.FormatFloat(draft.Location.Longitude, 'f', -1, 64))
	}
	return m
}

func (m editModel) focusNext() editModel {
	m.blurAll()
	m.focus = (m.focus + 1) % editFieldCount
	m.focusCurrent()
	return m
}

func (m editModel) focusPrev() editModel {
	m.blurAll()
	m.focus = (m.focus - 1 + editFieldCount) % editFieldCount
	m.focusCurrent()
	return m
}

func (m *editModel) blurAll() {
	m.text.Blur()
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *editModel) focusCurrent() {
	if m.focus == editFieldText {
		m.text.Focus()
		return
	}
	m.inputs[m.focus-1].Focus()
}

// collect turns the form content into session mutations: the text, newly
// picked attachment paths and a parsed location.
func (m editModel) collect() (text string, image, audio *models.Attachment, location *models.GeoPoint, err error) {
	text = m.text.Value()

	if path := strings.TrimSpace(m.inputs[0].Value()); path != "" {
		image = &models.Attachment{Kind: models.AttachmentImage, Path: path}
	}
	if path := strings.TrimSpace(m.inputs[1].Value()); path != "" {
		audio = &models.Attachment{Kind: models.AttachmentAudio, Path: path}
	}

	latRaw := strings.TrimSpace(m.inputs[2].Value())
	lngRaw := strings.TrimSpace(m.inputs[3].Value())
	if latRaw == "" && lngRaw == "" {
		return text, image, audio, nil, nil
	}
	if latRaw == "" || lngRaw == "" {
		return "", nil, nil, nil, fmt.Errorf("both latitude and longitude are required")
	}

	lat, parseErr := strconv.ParseFloat(latRaw, 64)
	if parseErr != nil {
		return "", nil, nil, nil, fmt.Errorf("latitude is not a number")
	}
	lng, parseErr := strconv.ParseFloat(lngRaw, 64)
	if parseErr != nil {
		return "", nil, nil, nil, fmt.Errorf("longitude is not a number")
	}

	return text, image, audio, &models.GeoPoint{Latitude: lat, Longitude: lng}, nil
}

func (m editModel) View() string {
	title := "New note"
	if m.base != nil {
		title = "Edit note"
	}

	body := titleStyle.Render(title) + "\n\n"
	body += m.text.View() + "\n\n"
	body += m.inputs[0].View() + "\n"
	body += m.inputs[1].View() + "\n"
	body += m.inputs[2].View() + "  " + m.inputs[3].View() + "\n"

	if m.formErr != "" {
		body += "\n" + errorStyle.Render(m.formErr)
	}
	if m.submitting {
		body += "\n" + statusStyle.Render("saving...")
	}
	body += "\n" + helpStyle.Render("tab next field · ctrl+s save · esc discard")
	return body
}
