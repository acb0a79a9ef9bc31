package page

const noneOpen = -1

// Accordion keeps at most one review expanded.
type Accordion struct {
	items  int
	active int
}

func NewAccordion(items int) *Accordion {
	return &Accordion{items: items, active: noneOpen}
}

// Toggle opens item i and closes the others, or closes i if it is open.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= a.items {
		return
	}

	if a.active == i {
		a.active = noneOpen

		return
	}

	a.active = i
}

// Active returns the open item, if any.
func (a *Accordion) Active() (int, bool) {
	return a.active, a.active != noneOpen
}

func (a *Accordion) IsOpen(i int) bool {
	return a.active == i
}

type AccordionItem struct {
	Index  int  `json:"index"`
	Active bool `json:"active"`
}

func (a *Accordion) View() []AccordionItem {
	items := make([]AccordionItem, 0, a.items)
	for i := 0; i < a.items; i++ {
		items = append(items, AccordionItem{Index: i, Active: a.active == i})
	}

	return items
}
