package gallery

import (
	"log/slog"

	"github.com/raminaphoto/website/pkg/models"
)

type ModalConfig struct {
	Items []models.PortfolioItem
	State *State
}

/*
Modal owns a gallery State and the portfolio it navigates. The state
pointer handed to NewModal is the one mutated by Dispatch, so callers can
persist it between requests.
*/
type Modal struct {
	items []models.PortfolioItem
	state *State
}

type View struct {
	Open     bool
	Index    int
	Title    string
	VideoURL string
	HasImage bool
	ImageURL string
	Slide    int
	Total    int
	Dots     []Dot
}

type Dot struct {
	Index  int
	Active bool
}

func NewModal(config ModalConfig) *Modal {
	result := &Modal{
		state: config.State,
	}

	if result.state == nil {
		result.state = &State{}
	}

	result.SetItems(config.Items)
	return result
}

func (m *Modal) Dispatch(event Event) error {
	next, err := Transition(*m.state, m.items, event)

	if err != nil {
		slog.Debug("gallery event rejected", "event", EventName(event), "error", err)
		return err
	}

	*m.state = next
	return nil
}

func (m *Modal) State() State {
	return *m.state
}

/*
SetItems replaces the portfolio the modal navigates. A state pointing
past the new items is closed and reset, and a slide past the end of the
active gallery goes back to the first slide.
*/
func (m *Modal) SetItems(items []models.PortfolioItem) {
	m.items = items

	if m.state.ActiveIndex < 0 || m.state.ActiveIndex >= len(items) {
		*m.state = State{}
		return
	}

	if m.state.ActiveSlide < 0 || m.state.ActiveSlide >= galleryLength(*m.state, items) {
		m.state.ActiveSlide = 0
	}
}

/*
View projects the current state into what the modal shows. Title is the
raw item title and may be empty. HasImage is false when the active item
has no effective gallery.
*/
func (m *Modal) View() View {
	result := View{
		Open:  m.state.Open,
		Index: m.state.ActiveIndex,
		Slide: m.state.ActiveSlide,
		Dots:  []Dot{},
	}

	if m.state.ActiveIndex < 0 || m.state.ActiveIndex >= len(m.items) {
		return result
	}

	item := m.items[m.state.ActiveIndex]
	gallery := item.EffectiveGallery()

	result.Title = models.StringOr(item.Title, "")
	result.VideoURL = models.StringOr(item.VideoURL, "")
	result.Total = len(gallery)

	if len(gallery) > 0 && m.state.ActiveSlide >= 0 && m.state.ActiveSlide < len(gallery) {
		result.HasImage = true
		result.ImageURL = gallery[m.state.ActiveSlide]
	}

	for i := range gallery {
		result.Dots = append(result.Dots, Dot{Index: i, Active: i == m.state.ActiveSlide})
	}

	return result
}
