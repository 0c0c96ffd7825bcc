package home

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/alitto/pond/v2"
	"github.com/raminaphoto/website/cmd/website/internal/configuration"
	"github.com/raminaphoto/website/cmd/website/internal/viewmodels"
	"github.com/raminaphoto/website/pkg/gallery"
	"github.com/raminaphoto/website/pkg/lanes"
	"github.com/raminaphoto/website/pkg/services"
)

type HomeHandlers interface {
	HomePage(w http.ResponseWriter, r *http.Request)
	Content(w http.ResponseWriter, r *http.Request)
}

type HomeControllerConfig struct {
	Config         *configuration.Config
	ContentService services.ContentServicer
	CurrentContent *lanes.CurrentContent
	GalleryPath    string
	Now            func() time.Time
	Pool           pond.Pool
	Renderer       rendering.TemplateRenderer
}

type HomeController struct {
	config         *configuration.Config
	contentService services.ContentServicer
	currentContent *lanes.CurrentContent
	galleryPath    string
	now            func() time.Time
	pool           pond.Pool
	renderer       rendering.TemplateRenderer
}

func NewHomeController(config HomeControllerConfig) HomeController {
	result := HomeController{
		config:         config.Config,
		contentService: config.ContentService,
		currentContent: config.CurrentContent,
		galleryPath:    config.GalleryPath,
		now:            config.Now,
		pool:           config.Pool,
		renderer:       config.Renderer,
	}

	if result.now == nil {
		result.now = time.Now
	}

	return result
}

/*
GET /
*/
func (c HomeController) HomePage(w http.ResponseWriter, r *http.Request) {
	pageName := "pages/home"
	pipeline := c.newPipeline(r)
	laneRenderer := pipeline.Renderer()
	labels := laneRenderer.Labels()

	doc := pipeline.Begin()

	modal := gallery.NewModal(gallery.ModalConfig{
		Items: c.currentContent.Portfolio(),
		State: viewmodels.GetGalleryStateFromContext(r),
	})

	viewData := viewmodels.HomePage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx:             httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{},
		},
		Labels:          labels,
		Lang:            labels.Tag.String(),
		Greeting:        lanes.Greeting(c.now(), labels),
		WelcomeSubtitle: lanes.WelcomeSubtitle(nil, labels),
		ContentURL:      "/content",

		BrandName:      doc.Text(lanes.SlotBrandName),
		HeroTitle:      doc.Text(lanes.SlotHeroTitle),
		HeroPhoto:      laneRenderer.RenderHeroPhoto(doc),
		FooterName:     doc.Text(lanes.SlotFooterName),
		FooterYear:     doc.Text(lanes.SlotFooterYear),
		ContactsPanels: doc.HTML(lanes.SlotContactsPanels),
		PortfolioGrid:  doc.HTML(lanes.SlotPortfolioGrid),
		PricingList:    doc.HTML(lanes.SlotPricingList),
		CertGrid:       doc.HTML(lanes.SlotCertGrid),

		ContactsError:  laneRenderer.RenderNotice(doc, lanes.SlotContactsError),
		PortfolioError: laneRenderer.RenderNotice(doc, lanes.SlotPortfolioError),
		PricingError:   laneRenderer.RenderNotice(doc, lanes.SlotPricingError),
		CertError:      laneRenderer.RenderNotice(doc, lanes.SlotCertError),

		Modal: laneRenderer.RenderModal(modal.View()),
	}

	c.renderer.Render(pageName, viewData, w)
}

/*
GET /content
*/
func (c HomeController) Content(w http.ResponseWriter, r *http.Request) {
	pipeline := c.newPipeline(r)
	doc := pipeline.Begin()

	result := pipeline.Load(r.Context(), doc)
	c.currentContent.Record(result)

	slog.Info("content load cycle finished",
		"live", result.Live,
		"portfolioItems", len(result.Content.Portfolio),
		"prices", len(result.Content.Prices),
		"certificates", len(result.Content.Certificates),
		"error", result.Err,
	)

	httphelpers.WriteHtml(w, http.StatusOK, string(pipeline.Renderer().RenderSwaps(doc)))
}

func (c HomeController) newPipeline(r *http.Request) lanes.Pipeline {
	labels := lanes.LabelsFor(r.Header.Get("Accept-Language"), c.config.Locale)

	return lanes.NewPipeline(lanes.PipelineConfig{
		ContentService: c.contentService,
		FallbackDelay:  time.Duration(c.config.FallbackDelayMs) * time.Millisecond,
		Pool:           c.pool,
		Renderer: lanes.NewRenderer(lanes.RendererConfig{
			GalleryPath: c.galleryPath,
			Labels:      labels,
			Now:         c.now,
		}),
	})
}
