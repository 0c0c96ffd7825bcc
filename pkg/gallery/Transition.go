package gallery

import (
	"errors"
	"fmt"

	"github.com/raminaphoto/website/pkg/models"
)

var (
	ErrItemNotFound    = errors.New("gallery: portfolio item not found")
	ErrSlideOutOfRange = errors.New("gallery: slide index out of range")
	ErrUnknownEvent    = errors.New("gallery: unknown event")
)

/*
Transition applies one event to a state and returns the next state. It
never mutates its inputs. On error the returned state is the input state.
Navigation events received while the modal is closed are ignored.
*/
func Transition(state State, items []models.PortfolioItem, event Event) (State, error) {
	switch e := event.(type) {
	case Open:
		if e.Index < 0 || e.Index >= len(items) {
			return state, fmt.Errorf("error opening item %d of %d: %w", e.Index, len(items), ErrItemNotFound)
		}

		return State{Open: true, ActiveIndex: e.Index, ActiveSlide: 0}, nil

	case Close:
		state.Open = false
		return state, nil

	case Next:
		return step(state, items, 1), nil

	case Prev:
		return step(state, items, -1), nil

	case SelectSlide:
		if !state.Open {
			return state, nil
		}

		length := galleryLength(state, items)

		if e.Slide < 0 || e.Slide >= length {
			return state, fmt.Errorf("error selecting slide %d of %d: %w", e.Slide, length, ErrSlideOutOfRange)
		}

		state.ActiveSlide = e.Slide
		return state, nil

	case KeyPress:
		if !state.Open {
			return state, nil
		}

		switch e.Key {
		case KeyEscape:
			return Transition(state, items, Close{})
		case KeyArrowRight:
			return Transition(state, items, Next{})
		case KeyArrowLeft:
			return Transition(state, items, Prev{})
		}

		return state, nil
	}

	return state, fmt.Errorf("error applying %T: %w", event, ErrUnknownEvent)
}

func step(state State, items []models.PortfolioItem, delta int) State {
	if !state.Open {
		return state
	}

	length := galleryLength(state, items)

	if length <= 1 {
		return state
	}

	state.ActiveSlide = ((state.ActiveSlide+delta)%length + length) % length
	return state
}

func galleryLength(state State, items []models.PortfolioItem) int {
	if state.ActiveIndex < 0 || state.ActiveIndex >= len(items) {
		return 0
	}

	return len(items[state.ActiveIndex].EffectiveGallery())
}
