package lanes

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/adampresley/adamgokit/slices"
	"github.com/raminaphoto/website/pkg/gallery"
	"github.com/raminaphoto/website/pkg/models"
	"github.com/raminaphoto/website/pkg/services"
)

const (
	PortfolioPlaceholders   = 6
	PricingPlaceholders     = 3
	CertificatePlaceholders = 3
	ContactPlaceholders     = 4

	defaultGalleryPath = "/gallery"
)

var (
	//go:embed templates
	templateFS embed.FS

	laneTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

	nonDigits = regexp.MustCompile(`\D`)
)

type RendererConfig struct {
	// GalleryPath is the route prefix the modal controls post to.
	GalleryPath string
	Labels      Labels
	Now         func() time.Time
}

/*
Renderer turns content into lane fragments. All text goes through
html/template, so store content is always escaped before it reaches
markup.
*/
type Renderer struct {
	galleryPath string
	labels      Labels
	now         func() time.Time
}

type contactPanel struct {
	Title    string
	Value    string
	Href     template.URL
	Disabled bool
	External bool
}

type portfolioCard struct {
	Index     int
	Title     string
	OpenLabel string
	OpenPath  string
	Cover     string
	Tag       string
}

type pricingPackage struct {
	Title    string
	Price    string
	Features []string
}

type certificateCard struct {
	Title    string
	Year     string
	ImageURL string
}

type heroPhoto struct {
	Src  string
	Alt  string
	Swap bool
}

type noticeView struct {
	ID      Slot
	Message string
	Visible bool
	Swap    bool
}

type textSwap struct {
	ID   Slot
	Text string
}

type fragmentSwap struct {
	ID   Slot
	HTML template.HTML
}

type swapsView struct {
	Texts     []textSwap
	HeroPhoto heroPhoto
	Fragments []fragmentSwap
	Notices   []noticeView
}

type modalDot struct {
	Index  int
	Active bool
	Label  string
	Path   string
}

type modalView struct {
	Open       bool
	Title      string
	VideoURL   string
	HasImage   bool
	ImageURL   string
	ImageAlt   string
	Dots       []modalDot
	WatchVideo string
	CloseLabel string
	PrevLabel  string
	NextLabel  string
	ClosePath  string
	PrevPath   string
	NextPath   string
	KeyPath    string
}

func NewRenderer(config RendererConfig) Renderer {
	result := Renderer{
		galleryPath: strings.TrimRight(config.GalleryPath, "/"),
		labels:      config.Labels,
		now:         config.Now,
	}

	if result.galleryPath == "" {
		result.galleryPath = defaultGalleryPath
	}

	if result.labels.Tag.IsRoot() {
		result.labels = EnglishLabels
	}

	if result.now == nil {
		result.now = time.Now
	}

	return result
}

func (r Renderer) Labels() Labels {
	return r.labels
}

/*
RenderPlaceholders puts every lane into its placeholder state, with the
default name in the header, hero and footer. It does no I/O and is safe
to call before any fetch starts.
*/
func (r Renderer) RenderPlaceholders(doc *Document) {
	doc.SetHTML(SlotPortfolioGrid, r.execute("portfolioSkeleton", make([]struct{}, PortfolioPlaceholders)))
	doc.SetHTML(SlotPricingList, r.execute("pricingSkeleton", make([]struct{}, PricingPlaceholders)))
	doc.SetHTML(SlotCertGrid, r.execute("certSkeleton", make([]struct{}, CertificatePlaceholders)))
	doc.SetHTML(SlotContactsPanels, r.execute("contactsSkeleton", make([]struct{}, ContactPlaceholders)))

	name := DisplayName(nil)

	doc.SetText(SlotBrandName, name)
	doc.SetText(SlotHeroTitle, HeroTitle(name, r.labels))
	doc.SetText(SlotFooterName, name)
	doc.SetText(SlotFooterYear, fmt.Sprint(r.now().Year()))

	for _, lane := range AllLanes {
		doc.HideNotice(ErrorSlot[lane])
		doc.setState(lane, StatePlaceholder)
	}
}

func (r Renderer) RenderSettings(doc *Document, settings models.SiteSettings) {
	name := DisplayName(settings.PhotographerName)

	doc.SetText(SlotBrandName, name)
	doc.SetText(SlotHeroTitle, HeroTitle(name, r.labels))
	doc.SetText(SlotFooterName, name)
	doc.SetText(SlotFooterYear, fmt.Sprint(r.now().Year()))
	doc.SetText(SlotAboutText, models.StringOr(settings.AboutText, ""))
	doc.SetText(SlotLocationsText, models.StringOr(settings.LocationsText, ""))
	doc.SetText(SlotHeroPhoto, models.StringOr(settings.PhotographerPhotoURL, services.DefaultPhotoURL))

	doc.SetHTML(SlotContactsPanels, r.execute("contacts", r.contactPanels(settings.Contacts)))
}

func (r Renderer) RenderPortfolio(doc *Document, items []models.PortfolioItem) {
	cards := slices.Map(items, func(item models.PortfolioItem, index int) portfolioCard {
		tag := r.labels.TagGallery

		if item.HasVideo() {
			tag = r.labels.TagVideo
		}

		return portfolioCard{
			Index:     index,
			Title:     SeriesTitle(item, index, r.labels),
			OpenLabel: r.labels.OpenSeries,
			OpenPath:  fmt.Sprintf("%s/open/%d", r.galleryPath, index),
			Cover:     item.CoverImage(),
			Tag:       tag,
		}
	})

	doc.SetHTML(SlotPortfolioGrid, r.execute("portfolio", cards))
}

func (r Renderer) RenderPricing(doc *Document, packages []models.PricePackage) {
	views := slices.Map(packages, func(pkg models.PricePackage, index int) pricingPackage {
		features := pkg.Features

		if features == nil {
			features = []string{}
		}

		return pricingPackage{
			Title:    models.StringOr(pkg.Title, r.labels.PackageTitle),
			Price:    models.StringOr(pkg.Price, ""),
			Features: features,
		}
	})

	doc.SetHTML(SlotPricingList, r.execute("pricing", views))
}

func (r Renderer) RenderCertificates(doc *Document, certificates []models.Certificate) {
	if len(certificates) > models.MaxCertificates {
		certificates = certificates[:models.MaxCertificates]
	}

	views := slices.Map(certificates, func(c models.Certificate, index int) certificateCard {
		return certificateCard{
			Title:    models.StringOr(c.Title, r.labels.CertificateTitle),
			Year:     c.Year.Or(""),
			ImageURL: models.StringOr(c.ImageURL, ""),
		}
	})

	doc.SetHTML(SlotCertGrid, r.execute("certificates", views))
}

/*
RenderContent renders all four lanes from one content set. A missing
settings document falls back to the default settings.
*/
func (r Renderer) RenderContent(doc *Document, content models.ContentSet) {
	settings := content.Settings

	if settings == nil {
		settings = services.DefaultContent().Settings
	}

	r.RenderSettings(doc, *settings)
	r.RenderPortfolio(doc, content.Portfolio)
	r.RenderPricing(doc, content.Prices)
	r.RenderCertificates(doc, content.Certificates)
}

/*
RenderSwaps writes every slot of the document as htmx out-of-band swaps,
so a single response can update the whole page.
*/
func (r Renderer) RenderSwaps(doc *Document) template.HTML {
	view := swapsView{
		HeroPhoto: r.heroPhoto(doc, true),
	}

	for _, slot := range textSlots {
		view.Texts = append(view.Texts, textSwap{ID: slot, Text: doc.Text(slot)})
	}

	for _, slot := range htmlSlots {
		view.Fragments = append(view.Fragments, fragmentSwap{ID: slot, HTML: doc.HTML(slot)})
	}

	for _, lane := range AllLanes {
		slot := ErrorSlot[lane]
		notice := doc.Notice(slot)

		view.Notices = append(view.Notices, noticeView{
			ID:      slot,
			Message: notice.Message,
			Visible: notice.Visible,
			Swap:    true,
		})
	}

	return r.execute("swaps", view)
}

// RenderNotice renders an error slot in place, for the initial page.
func (r Renderer) RenderNotice(doc *Document, slot Slot) template.HTML {
	notice := doc.Notice(slot)
	return r.execute("notice", noticeView{ID: slot, Message: notice.Message, Visible: notice.Visible})
}

// RenderHeroPhoto renders the hero image in place, for the initial page.
func (r Renderer) RenderHeroPhoto(doc *Document) template.HTML {
	return r.execute("heroPhoto", r.heroPhoto(doc, false))
}

/*
RenderModal renders the gallery modal for a view. Untitled items use
the same "Series N" title as their portfolio card.
*/
func (r Renderer) RenderModal(view gallery.View) template.HTML {
	title := view.Title

	if title == "" {
		title = fmt.Sprintf("%s %d", r.labels.SeriesTitle, view.Index+1)
	}

	result := modalView{
		Open:       view.Open,
		Title:      title,
		VideoURL:   view.VideoURL,
		HasImage:   view.HasImage,
		ImageURL:   view.ImageURL,
		ImageAlt:   r.imageAlt(view),
		Dots:       []modalDot{},
		WatchVideo: r.labels.WatchVideoLabel,
		CloseLabel: r.labels.CloseLabel,
		PrevLabel:  r.labels.PreviousLabel,
		NextLabel:  r.labels.NextLabel,
		ClosePath:  r.galleryPath + "/close",
		PrevPath:   r.galleryPath + "/prev",
		NextPath:   r.galleryPath + "/next",
		KeyPath:    r.galleryPath + "/key",
	}

	for _, dot := range view.Dots {
		result.Dots = append(result.Dots, modalDot{
			Index:  dot.Index,
			Active: dot.Active,
			Label:  fmt.Sprintf("%s %d", r.labels.OpenPhoto, dot.Index+1),
			Path:   fmt.Sprintf("%s/slide/%d", r.galleryPath, dot.Index),
		})
	}

	return r.execute("modal", result)
}

func (r Renderer) imageAlt(view gallery.View) string {
	if view.Title != "" {
		return fmt.Sprintf("%s — %d/%d", view.Title, view.Slide+1, view.Total)
	}

	return fmt.Sprintf("%s %d", r.labels.FrameAlt, view.Slide+1)
}

func (r Renderer) heroPhoto(doc *Document, swap bool) heroPhoto {
	src := doc.Text(SlotHeroPhoto)

	if src == "" {
		src = services.DefaultPhotoURL
	}

	return heroPhoto{
		Src:  src,
		Alt:  doc.Text(SlotBrandName),
		Swap: swap,
	}
}

func (r Renderer) contactPanels(contacts models.Contacts) []contactPanel {
	phone := models.StringOr(contacts.Phone, "")
	email := models.StringOr(contacts.Email, "")

	panels := []contactPanel{
		r.contactPanel(r.labels.ContactPhone, phone, telHref(phone), phone != "", false),
		r.contactPanel(r.labels.ContactEmail, email, "mailto:"+email, email != "", false),
		r.contactPanel(r.labels.ContactInstagram, r.labels.ValueProfile, models.StringOr(contacts.Instagram, ""), models.HasValue(contacts.Instagram), true),
		r.contactPanel(r.labels.ContactTelegram, r.labels.ValueChat, models.StringOr(contacts.Telegram, ""), models.HasValue(contacts.Telegram), true),
		r.contactPanel(r.labels.ContactWhatsApp, r.labels.ValueChat, models.StringOr(contacts.WhatsApp, ""), models.HasValue(contacts.WhatsApp), true),
	}

	return panels
}

/*
contactPanel builds one contact entry. An entry without a value, or whose
link is not a scheme we allow, is shown with the empty placeholder and a
disabled link.
*/
func (r Renderer) contactPanel(title, value, href string, present, external bool) contactPanel {
	result := contactPanel{
		Title:    title,
		Value:    r.labels.EmptyValue,
		Href:     "#",
		Disabled: true,
		External: external,
	}

	if !present {
		return result
	}

	safe, ok := safeHref(href)

	if !ok {
		return result
	}

	result.Value = value
	result.Href = safe
	result.Disabled = false
	return result
}

/*
telHref keeps only the digits of a phone number and its leading plus, so
the link survives URL normalization unchanged.
*/
func telHref(phone string) string {
	phone = strings.TrimSpace(phone)
	result := "tel:"

	if strings.HasPrefix(phone, "+") {
		result += "+"
	}

	return result + nonDigits.ReplaceAllString(phone, "")
}

func safeHref(raw string) (template.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))

	if err != nil {
		return "", false
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https", "mailto", "tel":
		return template.URL(u.String()), true
	}

	return "", false
}

func (r Renderer) execute(name string, data any) template.HTML {
	var (
		buf bytes.Buffer
	)

	if err := laneTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		panic(fmt.Errorf("error rendering %s: %w", name, err))
	}

	return template.HTML(buf.String())
}
