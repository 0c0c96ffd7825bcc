package gallerymodal

import (
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/sessions"
	"github.com/raminaphoto/website/cmd/website/internal/configuration"
	"github.com/raminaphoto/website/cmd/website/internal/viewmodels"
	"github.com/raminaphoto/website/pkg/gallery"
	"github.com/raminaphoto/website/pkg/lanes"
)

type GalleryHandlers interface {
	Open(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	Next(w http.ResponseWriter, r *http.Request)
	Prev(w http.ResponseWriter, r *http.Request)
	SelectSlide(w http.ResponseWriter, r *http.Request)
	KeyPress(w http.ResponseWriter, r *http.Request)
}

type GalleryControllerConfig struct {
	Config         *configuration.Config
	CurrentContent *lanes.CurrentContent
	GalleryPath    string
	SessionService sessions.Session[*gallery.State]
}

type GalleryController struct {
	config         *configuration.Config
	currentContent *lanes.CurrentContent
	galleryPath    string
	sessionService sessions.Session[*gallery.State]
}

func NewGalleryController(config GalleryControllerConfig) GalleryController {
	return GalleryController{
		config:         config.Config,
		currentContent: config.CurrentContent,
		galleryPath:    config.GalleryPath,
		sessionService: config.SessionService,
	}
}

/*
POST /gallery/open/{index}
*/
func (c GalleryController) Open(w http.ResponseWriter, r *http.Request) {
	index := httphelpers.GetFromRequest[uint](r, "index")
	c.dispatch(w, r, gallery.Open{Index: int(index)})
}

/*
POST /gallery/close
*/
func (c GalleryController) Close(w http.ResponseWriter, r *http.Request) {
	c.dispatch(w, r, gallery.Close{})
}

/*
POST /gallery/next
*/
func (c GalleryController) Next(w http.ResponseWriter, r *http.Request) {
	c.dispatch(w, r, gallery.Next{})
}

/*
POST /gallery/prev
*/
func (c GalleryController) Prev(w http.ResponseWriter, r *http.Request) {
	c.dispatch(w, r, gallery.Prev{})
}

/*
POST /gallery/slide/{slide}
*/
func (c GalleryController) SelectSlide(w http.ResponseWriter, r *http.Request) {
	slide := httphelpers.GetFromRequest[uint](r, "slide")
	c.dispatch(w, r, gallery.SelectSlide{Slide: int(slide)})
}

/*
POST /gallery/key
*/
func (c GalleryController) KeyPress(w http.ResponseWriter, r *http.Request) {
	key := httphelpers.GetFromRequest[string](r, "key")
	c.dispatch(w, r, gallery.KeyPress{Key: key})
}

/*
dispatch applies one event to the visitor's modal and answers with the
re-rendered modal. A rejected event leaves the modal as it was.
*/
func (c GalleryController) dispatch(w http.ResponseWriter, r *http.Request, event gallery.Event) {
	var (
		err error
	)

	state := viewmodels.GetGalleryStateFromContext(r)

	modal := gallery.NewModal(gallery.ModalConfig{
		Items: c.currentContent.Portfolio(),
		State: state,
	})

	if err = modal.Dispatch(event); err != nil {
		slog.Warn("gallery event rejected", "event", gallery.EventName(event), "error", err)
	}

	if err = c.sessionService.Set(r, state); err != nil {
		slog.Error("error setting gallery session", "error", err)
	}

	if err = c.sessionService.Save(w, r); err != nil {
		slog.Error("error saving gallery session", "error", err)
	}

	renderer := lanes.NewRenderer(lanes.RendererConfig{
		GalleryPath: c.galleryPath,
		Labels:      lanes.LabelsFor(r.Header.Get("Accept-Language"), c.config.Locale),
	})

	httphelpers.WriteHtml(w, http.StatusOK, string(renderer.RenderModal(modal.View())))
}
