package lanes

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/raminaphoto/website/pkg/models"
	"github.com/raminaphoto/website/pkg/services"
)

const DefaultFallbackDelay = 200 * time.Millisecond

type PipelineConfig struct {
	ContentService services.ContentServicer
	// Defaults supplies the fallback content. services.DefaultContent when nil.
	Defaults      func() models.ContentSet
	FallbackDelay time.Duration
	Pool          pond.Pool
	Renderer      Renderer
}

/*
Pipeline runs load cycles: placeholders first, then the four collections
fetched concurrently, then either the live content or the fallback
content across every lane.
*/
type Pipeline struct {
	contentService services.ContentServicer
	defaults       func() models.ContentSet
	fallbackDelay  time.Duration
	pool           pond.Pool
	renderer       Renderer
}

type LoadResult struct {
	Content models.ContentSet
	// Live is true when Content came from the content store.
	Live bool
	// Err is the first failure of the cycle, if any.
	Err error
}

func NewPipeline(config PipelineConfig) Pipeline {
	result := Pipeline{
		contentService: config.ContentService,
		defaults:       config.Defaults,
		fallbackDelay:  config.FallbackDelay,
		pool:           config.Pool,
		renderer:       config.Renderer,
	}

	if result.defaults == nil {
		result.defaults = services.DefaultContent
	}

	if result.fallbackDelay < 0 {
		result.fallbackDelay = 0
	}

	if result.pool == nil {
		result.pool = pond.NewPool(len(models.Collections))
	}

	return result
}

func (p Pipeline) Renderer() Renderer {
	return p.renderer
}

// Begin starts a load cycle with every lane showing placeholders.
func (p Pipeline) Begin() *Document {
	doc := NewDocument()
	p.renderer.RenderPlaceholders(doc)
	return doc
}

/*
Load fetches all four collections and renders them into doc. The cycle
is all or nothing: if any fetch fails, every lane shows its notice and
then the fallback content. Load always leaves doc rendered, even when
something panics along the way.
*/
func (p Pipeline) Load(ctx context.Context, doc *Document) (result LoadResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("load cycle failed", "panic", r)

			result = p.recoverCycle(doc, fmt.Errorf("error during load cycle: %v", r))
		}
	}()

	for _, lane := range AllLanes {
		doc.setState(lane, StateLoading)
	}

	if p.contentService == nil || !p.contentService.IsConfigured() {
		slog.Info("content store not configured. showing default content")

		p.wait(ctx)
		return p.renderFallback(doc, services.ErrNotConfigured)
	}

	content, err := p.fetchAll(ctx)

	if err != nil {
		slog.Warn("content store error. showing default content", "error", err)

		for _, lane := range AllLanes {
			doc.ShowNotice(ErrorSlot[lane], p.renderer.Labels().FallbackNotice)
		}

		p.wait(ctx)
		return p.renderFallback(doc, err)
	}

	if content.Portfolio == nil {
		content.Portfolio = []models.PortfolioItem{}
	}

	if content.Prices == nil {
		content.Prices = []models.PricePackage{}
	}

	if content.Certificates == nil {
		content.Certificates = []models.Certificate{}
	}

	p.renderer.RenderContent(doc, content)

	for _, lane := range AllLanes {
		doc.HideNotice(ErrorSlot[lane])
		doc.setState(lane, StateRendered)
	}

	return LoadResult{Content: content, Live: true}
}

/*
fetchAll runs the four fetches as one pond group. Each task records its
own error, or panic, and returns nil so the group always waits for all
four to settle. The first error to arrive wins.
*/
func (p Pipeline) fetchAll(ctx context.Context) (models.ContentSet, error) {
	var (
		mu       sync.Mutex
		firstErr error
		content  models.ContentSet
	)

	record := func(collection models.Collection, err error) {
		mu.Lock()
		defer mu.Unlock()

		slog.Error("error fetching collection", "collection", collection, "error", err)

		if firstErr == nil {
			firstErr = fmt.Errorf("error fetching %s: %w", collection, err)
		}
	}

	task := func(collection models.Collection, fetch func() error) func() error {
		return func() error {
			defer func() {
				if r := recover(); r != nil {
					record(collection, fmt.Errorf("panic: %v", r))
				}
			}()

			if err := fetch(); err != nil {
				record(collection, err)
			}

			return nil
		}
	}

	group := p.pool.NewGroup()

	group.SubmitErr(
		task(models.CollectionSettings, func() (err error) {
			content.Settings, err = p.contentService.FetchSettings(ctx)
			return err
		}),
		task(models.CollectionPortfolio, func() (err error) {
			content.Portfolio, err = p.contentService.FetchPortfolio(ctx)
			return err
		}),
		task(models.CollectionPrices, func() (err error) {
			content.Prices, err = p.contentService.FetchPrices(ctx)
			return err
		}),
		task(models.CollectionCertificates, func() (err error) {
			content.Certificates, err = p.contentService.FetchCertificates(ctx)
			return err
		}),
	)

	if err := group.Wait(); err != nil {
		return models.ContentSet{}, fmt.Errorf("error waiting for content fetches: %w", err)
	}

	if firstErr != nil {
		return models.ContentSet{}, firstErr
	}

	return content, nil
}

func (p Pipeline) renderFallback(doc *Document, cause error) LoadResult {
	content := p.defaults()
	p.renderer.RenderContent(doc, content)

	for _, lane := range AllLanes {
		doc.setState(lane, StateFailedWithFallback)
	}

	return LoadResult{Content: content, Err: cause}
}

/*
recoverCycle is the last line of defence. The portfolio slot explains
that the page failed to start and every lane still gets fallback content.
*/
func (p Pipeline) recoverCycle(doc *Document, cause error) LoadResult {
	doc.ShowNotice(SlotPortfolioError, p.renderer.Labels().InitFailureNotice)

	content := models.ContentSet{
		Portfolio:    []models.PortfolioItem{},
		Prices:       []models.PricePackage{},
		Certificates: []models.Certificate{},
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("fallback render failed", "panic", r)
			}
		}()

		content = p.defaults()
		p.renderer.RenderContent(doc, content)
	}()

	for _, lane := range AllLanes {
		doc.setState(lane, StateFailedWithFallback)
	}

	return LoadResult{Content: content, Err: cause}
}

func (p Pipeline) wait(ctx context.Context) {
	if p.fallbackDelay <= 0 {
		return
	}

	timer := time.NewTimer(p.fallbackDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
