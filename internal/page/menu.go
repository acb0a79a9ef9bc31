package page

// Menu is the mobile navigation drawer. It starts closed.
type Menu struct {
	open bool
}

func (m *Menu) Toggle() {
	m.open = !m.open
}

// ClickLink closes the drawer after navigation.
func (m *Menu) ClickLink() {
	m.open = false
}

type MenuView struct {
	AriaExpanded bool   `json:"ariaExpanded"`
	AriaHidden   bool   `json:"ariaHidden"`
	Display      string `json:"display"`
}

func (m *Menu) View() MenuView {
	if m.open {
		return MenuView{AriaExpanded: true, Display: "block"}
	}

	return MenuView{AriaHidden: true, Display: "none"}
}
