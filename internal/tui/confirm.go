package tui

type confirmModel struct {
	question string
}

func (m confirmModel) View() string {
	return overlayBoxStyle.Render(m.question + "\n\n" + helpStyle.Render("y yes · n no"))
}
