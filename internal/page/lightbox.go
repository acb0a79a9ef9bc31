package page

const KeyEscape = "Escape"

type Picture struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Lightbox enlarges one of the trip pictures on the surroundings page.
type Lightbox struct {
	pictures []Picture
	open     bool
	current  int
}

func NewLightbox(pictures []Picture) *Lightbox {
	return &Lightbox{pictures: pictures}
}

func (l *Lightbox) Open(i int) bool {
	if i < 0 || i >= len(l.pictures) {
		return false
	}

	l.current = i
	l.open = true

	return true
}

func (l *Lightbox) Close() {
	l.open = false
}

func (l *Lightbox) HandleKey(key string) {
	if l.open && key == KeyEscape {
		l.Close()
	}
}

type LightboxView struct {
	Open       bool    `json:"open"`
	Picture    Picture `json:"picture"`
	LockScroll bool    `json:"lockScroll"`
}

func (l *Lightbox) View() LightboxView {
	if !l.open {
		return LightboxView{}
	}

	return LightboxView{Open: true, Picture: l.pictures[l.current], LockScroll: true}
}
