package main

import (
	"embed"
	"encoding/gob"
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/mux"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/sessions"
	"github.com/alitto/pond/v2"
	"github.com/raminaphoto/website/cmd/website/internal/configuration"
	"github.com/raminaphoto/website/cmd/website/internal/gallerymodal"
	"github.com/raminaphoto/website/cmd/website/internal/home"
	"github.com/raminaphoto/website/pkg/gallery"
	"github.com/raminaphoto/website/pkg/lanes"
	"github.com/raminaphoto/website/pkg/services"
)

const galleryPath = "/gallery"

var (
	Version string = "development"
	appName string = "raminaphotography"

	//go:embed app
	appFS embed.FS

	config configuration.Config

	/* Services */
	contentService services.ContentServicer
	currentContent *lanes.CurrentContent
	fetchPool      pond.Pool
	renderer       rendering.TemplateRenderer
	sessionService sessions.Session[*gallery.State]

	/* Controllers */
	galleryController gallerymodal.GalleryHandlers
	homeController    home.HomeHandlers
)

func main() {
	var (
		err error
	)

	config = configuration.LoadConfig()
	setupLogger(&config, Version)

	slog.Info("configuration loaded",
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("loglevel", config.LogLevel),
		slog.String("host", config.Host),
		slog.String("sanityProjectID", config.SanityProjectID),
		slog.String("sanityDataset", config.SanityDataset),
		slog.String("locale", config.Locale),
	)

	slog.Debug("setting up...")

	/*
	 * Setup services
	 */
	gob.Register(&gallery.State{})

	cookieStore := sessions.NewCookieStore(config.CookieSecret)
	sessionService = sessions.NewSessionWrapper[*gallery.State](cookieStore, "raminaphotographygallery", "gallery")

	renderer, err = rendering.NewGoTemplateRenderer(rendering.GoTemplateRendererConfig{
		TemplateDir:       "app",
		TemplateExtension: ".html",
		TemplateFS:        appFS,
		PagesDir:          "pages",
	})

	if err != nil {
		panic(err)
	}

	contentService = services.NewContentService(services.ContentServiceConfig{
		APIVersion: config.SanityAPIVersion,
		BaseURL:    config.ContentBaseURL,
		Dataset:    config.SanityDataset,
		ProjectID:  config.SanityProjectID,
	})

	if !contentService.IsConfigured() {
		slog.Warn("content store is not configured. the site will show default content")
	}

	fetchPool = pond.NewPool(config.MaxFetchWorkers)
	currentContent = &lanes.CurrentContent{}

	/*
	 * Setup controllers
	 */
	homeController = home.NewHomeController(home.HomeControllerConfig{
		Config:         &config,
		ContentService: contentService,
		CurrentContent: currentContent,
		GalleryPath:    galleryPath,
		Pool:           fetchPool,
		Renderer:       renderer,
	})

	galleryController = gallerymodal.NewGalleryController(gallerymodal.GalleryControllerConfig{
		Config:         &config,
		CurrentContent: currentContent,
		GalleryPath:    galleryPath,
		SessionService: sessionService,
	})

	/*
	 * Setup router and http server
	 */
	slog.Debug("setting up routes...")

	galleryStateMiddleware := newGalleryStateMiddleware(
		sessionService,
		[]string{
			"/static",
			"/heartbeat",
		},
	)

	requestLogger := newRequestLoggerMiddleware()
	withState := []mux.MiddlewareFunc{requestLogger, galleryStateMiddleware}

	routes := []mux.Route{
		{Path: "GET /heartbeat", HandlerFunc: heartbeat},
		{Path: "GET /", HandlerFunc: homeController.HomePage, Middlewares: withState},
		{Path: "GET /content", HandlerFunc: homeController.Content, Middlewares: []mux.MiddlewareFunc{requestLogger}},
		{Path: "POST " + galleryPath + "/open/{index}", HandlerFunc: galleryController.Open, Middlewares: withState},
		{Path: "POST " + galleryPath + "/close", HandlerFunc: galleryController.Close, Middlewares: withState},
		{Path: "POST " + galleryPath + "/next", HandlerFunc: galleryController.Next, Middlewares: withState},
		{Path: "POST " + galleryPath + "/prev", HandlerFunc: galleryController.Prev, Middlewares: withState},
		{Path: "POST " + galleryPath + "/slide/{slide}", HandlerFunc: galleryController.SelectSlide, Middlewares: withState},
		{Path: "POST " + galleryPath + "/key", HandlerFunc: galleryController.KeyPress, Middlewares: withState},
	}

	routerConfig := mux.RouterConfig{
		Address:              config.Host,
		Debug:                Version == "development",
		ServeStaticContent:   true,
		StaticContentRootDir: "app",
		StaticContentPrefix:  "/static/",
		StaticFS:             appFS,
		HttpWriteTimeout:     60,
	}

	m := mux.SetupRouter(routerConfig, routes)
	httpServer, quit := mux.SetupServer(routerConfig, m)

	/*
	 * Wait for graceful shutdown
	 */
	slog.Info("server started")

	<-quit

	mux.Shutdown(httpServer)
	_ = fetchPool.Stop().Wait()
	slog.Info("server stopped")
}

func heartbeat(w http.ResponseWriter, r *http.Request) {
	httphelpers.TextOK(w, "OK")
}
