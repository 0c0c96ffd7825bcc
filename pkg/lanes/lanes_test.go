package lanes

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/raminaphoto/website/pkg/models"
	"github.com/raminaphoto/website/pkg/services"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time {
	return time.Date(2026, time.March, 8, 10, 0, 0, 0, time.UTC)
}

func newTestRenderer() Renderer {
	return NewRenderer(RendererConfig{
		GalleryPath: "/gallery",
		Labels:      EnglishLabels,
		Now:         fixedNow,
	})
}

func parseFragment(t testing.TB, html string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

/*
fakeContentService answers every fetch from its fields. A non-nil error
field fails that collection; a non-nil panic value panics instead.
*/
type fakeContentService struct {
	unconfigured bool
	content      models.ContentSet

	settingsErr     error
	portfolioErr    error
	pricesErr       error
	certificatesErr error
	portfolioPanic  any

	calls atomic.Int32
}

func (f *fakeContentService) IsConfigured() bool {
	return !f.unconfigured
}

func (f *fakeContentService) FetchCollection(ctx context.Context, collection models.Collection, dest any) error {
	return errors.New("not used")
}

func (f *fakeContentService) FetchSettings(ctx context.Context) (*models.SiteSettings, error) {
	f.calls.Add(1)
	return f.content.Settings, f.settingsErr
}

func (f *fakeContentService) FetchPortfolio(ctx context.Context) ([]models.PortfolioItem, error) {
	f.calls.Add(1)

	if f.portfolioPanic != nil {
		panic(f.portfolioPanic)
	}

	return f.content.Portfolio, f.portfolioErr
}

func (f *fakeContentService) FetchPrices(ctx context.Context) ([]models.PricePackage, error) {
	f.calls.Add(1)
	return f.content.Prices, f.pricesErr
}

func (f *fakeContentService) FetchCertificates(ctx context.Context) ([]models.Certificate, error) {
	f.calls.Add(1)
	return f.content.Certificates, f.certificatesErr
}

func newTestPipeline(service services.ContentServicer) Pipeline {
	return NewPipeline(PipelineConfig{
		ContentService: service,
		FallbackDelay:  0,
		Renderer:       newTestRenderer(),
	})
}

func liveContent() models.ContentSet {
	return models.ContentSet{
		Settings: &models.SiteSettings{
			PhotographerName: models.String("Ramina Gablia"),
			AboutText:        models.String("About me"),
			Contacts: models.Contacts{
				Phone: models.String("+7 999 123"),
				Email: models.String("ramina@example.com"),
			},
		},
		Portfolio: []models.PortfolioItem{
			{Title: models.String("Sea"), CoverURL: models.String("https://img.test/sea.jpg")},
			{CoverURL: models.String("https://img.test/two.jpg"), VideoURL: models.String("https://video.test/2")},
		},
		Prices: []models.PricePackage{
			{Title: models.String("Portrait"), Price: models.String("5000"), Features: []string{"1 hour", "30 photos"}},
		},
		Certificates: []models.Certificate{
			{Title: models.String("Retouch"), Year: models.NewText("2023")},
		},
	}
}
