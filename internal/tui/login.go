package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// loginModel backs both the login and the registration screen; the only
// difference is which adapter call the submit triggers.
type loginModel struct {
	inputs     []textinput.Model
	focus      int
	register   bool
	submitting bool
}

func newLoginModel(register bool) loginModel {
	login := textinput.New()
	login.Placeholder = "email"
	login.Width = 40
	login.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{
		inputs:   []textinput.Model{login, password},
		register: register,
	}
}

func (m loginModel) focusNext() loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m loginModel) focusPrev() loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m loginModel) View() string {
	title := "Log in"
	if m.register {
		title = "Register"
	}

	body := titleStyle.Render(title) + "\n\n"
	for _, input := range m.inputs {
		body += input.View() + "\n"
	}
	if m.submitting {
		body += "\n" + statusStyle.Render("contacting server...")
	}
	body += "\n" + helpStyle.Render("tab next field · enter submit · esc back")
	return body
}
