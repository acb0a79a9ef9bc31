package gallery

import "fmt"

const (
	InitialCount = 12

	KeyEscape     = "Escape"
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
)

// Order is the curated display order of the photo files.
var Order = []int{
	1, 2, 6, 8, 10, 11, 13, 12, 22, 3, 21, 23, 5, 14, 15, 16,
	17, 18, 19, 20, 24, 25, 7, 9, 26, 27, 28, 29, 30, 31, 32, 33,
}

type Image struct {
	Index int    `json:"index"`
	Src   string `json:"src"`
	Alt   string `json:"alt"`
	Lazy  bool   `json:"lazy"`
}

func Src(num int) string {
	return fmt.Sprintf("assets/gallery/gallery-%02d.jpg", num)
}

func newImage(idx, num int) Image {
	return Image{
		Index: idx,
		Src:   Src(num),
		Alt:   fmt.Sprintf("Fotka %d", num),
		Lazy:  true,
	}
}

// Controller owns the gallery page state: whether the grid is expanded and
// which photo the lightbox shows.
type Controller struct {
	order    []int
	expanded bool
	open     bool
	current  int
}

func New(order []int) *Controller {
	return &Controller{order: order}
}

func (c *Controller) Expanded() bool {
	return c.expanded
}

func (c *Controller) Toggle() {
	c.expanded = !c.expanded
}

// Visible lists the grid images in display order.
func (c *Controller) Visible() []Image {
	count := len(c.order)
	if !c.expanded && InitialCount < count {
		count = InitialCount
	}

	images := make([]Image, 0, count)
	for i := 0; i < count; i++ {
		images = append(images, newImage(i, c.order[i]))
	}

	return images
}

// Open shows the photo at grid index idx. Indices outside the order are
// ignored.
func (c *Controller) Open(idx int) bool {
	if idx < 0 || idx >= len(c.order) {
		return false
	}

	c.current = idx
	c.open = true

	return true
}

func (c *Controller) Close() {
	c.open = false
}

func (c *Controller) IsOpen() bool {
	return c.open
}

func (c *Controller) Current() int {
	return c.current
}

func (c *Controller) Next() {
	if len(c.order) == 0 {
		return
	}

	c.Open((c.current + 1) % len(c.order))
}

func (c *Controller) Prev() {
	if len(c.order) == 0 {
		return
	}

	c.Open((c.current - 1 + len(c.order)) % len(c.order))
}

// HandleKey reacts to keyboard navigation while the lightbox is open.
func (c *Controller) HandleKey(key string) {
	if !c.open {
		return
	}

	switch key {
	case KeyEscape:
		c.Close()
	case KeyArrowRight:
		c.Next()
	case KeyArrowLeft:
		c.Prev()
	}
}

type Lightbox struct {
	Open       bool   `json:"open"`
	Src        string `json:"src"`
	AriaHidden bool   `json:"ariaHidden"`
	// LockScroll is set while the page body must not scroll.
	LockScroll bool `json:"lockScroll"`
}

type View struct {
	Images       []Image  `json:"images"`
	Expanded     bool     `json:"expanded"`
	ToggleText   string   `json:"toggleText"`
	Arrow        string   `json:"arrow"`
	Total        int      `json:"total"`
	Lightbox     Lightbox `json:"lightbox"`
	CurrentIndex int      `json:"currentIndex"`
}

func (c *Controller) View() View {
	view := View{
		Images:       c.Visible(),
		Expanded:     c.expanded,
		ToggleText:   "Zobraziť viac",
		Arrow:        "▼",
		Total:        len(c.order),
		Lightbox:     Lightbox{AriaHidden: true},
		CurrentIndex: c.current,
	}

	if c.expanded {
		view.ToggleText = "Zobraziť menej"
		view.Arrow = "▲"
	}

	if c.open {
		view.Lightbox = Lightbox{
			Open:       true,
			Src:        Src(c.order[c.current]),
			LockScroll: true,
		}
	}

	return view
}
