package lanes

import (
	"html/template"
)

/*
Lane is one of the independently rendered content areas of the page.
*/
type Lane string

const (
	LaneSettings     Lane = "settings"
	LanePortfolio    Lane = "portfolio"
	LanePrices       Lane = "prices"
	LaneCertificates Lane = "certificates"
)

var AllLanes = []Lane{LaneSettings, LanePortfolio, LanePrices, LaneCertificates}

type LaneState int

const (
	StatePlaceholder LaneState = iota
	StateLoading
	StateRendered
	StateFailedWithFallback
)

func (s LaneState) String() string {
	switch s {
	case StatePlaceholder:
		return "placeholder"
	case StateLoading:
		return "loading"
	case StateRendered:
		return "rendered"
	case StateFailedWithFallback:
		return "failed-with-fallback"
	default:
		return "unknown"
	}
}

/*
Slot is the id of an element on the page whose content a lane owns.
*/
type Slot string

const (
	SlotBrandName      Slot = "brandName"
	SlotHeroTitle      Slot = "heroTitle"
	SlotHeroPhoto      Slot = "heroPhoto"
	SlotFooterName     Slot = "footerName"
	SlotFooterYear     Slot = "footerYear"
	SlotAboutText      Slot = "aboutText"
	SlotLocationsText  Slot = "locationsText"
	SlotContactsPanels Slot = "contactsPanels"
	SlotPortfolioGrid  Slot = "portfolioGrid"
	SlotPricingList    Slot = "pricingList"
	SlotCertGrid       Slot = "certGrid"

	SlotContactsError  Slot = "contactsError"
	SlotPortfolioError Slot = "portfolioError"
	SlotPricingError   Slot = "pricingError"
	SlotCertError      Slot = "certError"
)

// textSlots are filled with plain text and swapped in document order.
var textSlots = []Slot{
	SlotBrandName,
	SlotHeroTitle,
	SlotFooterName,
	SlotFooterYear,
	SlotAboutText,
	SlotLocationsText,
}

var htmlSlots = []Slot{
	SlotContactsPanels,
	SlotPortfolioGrid,
	SlotPricingList,
	SlotCertGrid,
}

// ErrorSlot maps each lane to the element that shows its diagnostic notice.
var ErrorSlot = map[Lane]Slot{
	LaneSettings:     SlotContactsError,
	LanePortfolio:    SlotPortfolioError,
	LanePrices:       SlotPricingError,
	LaneCertificates: SlotCertError,
}

type Notice struct {
	Message string
	Visible bool
}

/*
Document is the rendered state of the page for one load cycle. Every
setter replaces what the slot held before, so rendering the same input
twice leaves the document unchanged. A Document is not safe for
concurrent use.
*/
type Document struct {
	fragments map[Slot]template.HTML
	texts     map[Slot]string
	notices   map[Slot]Notice
	states    map[Lane]LaneState
}

func NewDocument() *Document {
	result := &Document{
		fragments: map[Slot]template.HTML{},
		texts:     map[Slot]string{},
		notices:   map[Slot]Notice{},
		states:    map[Lane]LaneState{},
	}

	for _, lane := range AllLanes {
		result.states[lane] = StatePlaceholder
		result.notices[ErrorSlot[lane]] = Notice{}
	}

	return result
}

func (d *Document) SetHTML(slot Slot, html template.HTML) {
	d.fragments[slot] = html
}

func (d *Document) HTML(slot Slot) template.HTML {
	return d.fragments[slot]
}

func (d *Document) SetText(slot Slot, text string) {
	d.texts[slot] = text
}

func (d *Document) Text(slot Slot) string {
	return d.texts[slot]
}

func (d *Document) ShowNotice(slot Slot, message string) {
	d.notices[slot] = Notice{Message: message, Visible: true}
}

func (d *Document) HideNotice(slot Slot) {
	d.notices[slot] = Notice{}
}

func (d *Document) Notice(slot Slot) Notice {
	return d.notices[slot]
}

/*
VisibleNotices returns the error slots currently showing a message, in
lane order.
*/
func (d *Document) VisibleNotices() []Slot {
	result := []Slot{}

	for _, lane := range AllLanes {
		slot := ErrorSlot[lane]

		if d.notices[slot].Visible {
			result = append(result, slot)
		}
	}

	return result
}

func (d *Document) State(lane Lane) LaneState {
	return d.states[lane]
}

func (d *Document) setState(lane Lane, state LaneState) {
	d.states[lane] = state
}
