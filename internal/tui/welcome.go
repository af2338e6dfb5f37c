package tui

import "fmt"

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Log in", "Register"}}
}

func (m welcomeModel) View() string {
	body := titleStyle.Render("geonotes") + "\n\n"
	for i, item := range m.items {
		cursor := "  "
		line := item
		if i == m.idx {
			cursor = "> "
			line = selectedStyle.Render(item)
		}
		body += fmt.Sprintf("%s%s\n", cursor, line)
	}
	body += "\n" + helpStyle.Render("enter select · v version · q quit")
	return body
}
