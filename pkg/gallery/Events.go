package gallery

// Event is a discrete user interaction dispatched into the modal.
type Event interface {
	eventName() string
}

// Open shows the portfolio item at Index, starting at its first slide.
type Open struct {
	Index int
}

type Close struct{}

type Next struct{}

type Prev struct{}

// SelectSlide jumps straight to a slide, as the dot buttons do.
type SelectSlide struct {
	Slide int
}

/*
KeyPress is a keyboard key pressed while the modal has focus. Escape
closes, ArrowRight and ArrowLeft move between slides.
*/
type KeyPress struct {
	Key string
}

const (
	KeyEscape     = "Escape"
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
)

func (Open) eventName() string        { return "open" }
func (Close) eventName() string       { return "close" }
func (Next) eventName() string        { return "next" }
func (Prev) eventName() string        { return "prev" }
func (SelectSlide) eventName() string { return "select-slide" }
func (KeyPress) eventName() string    { return "key-press" }

// EventName returns a short, stable name for logging.
func EventName(event Event) string {
	if event == nil {
		return ""
	}

	return event.eventName()
}
