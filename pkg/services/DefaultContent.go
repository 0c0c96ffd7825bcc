package services

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/raminaphoto/website/pkg/models"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPhotographerName = "Габлия Рамина"
	DefaultPhotoURL         = "https://images.unsplash.com/photo-1520975748761-7d6d033b7f59?auto=format&fit=crop&w=1200&q=80"
)

var (
	//go:embed default-content.yaml
	defaultContentYAML []byte

	defaultContentOnce sync.Once
	defaultContent     models.ContentSet
)

/*
DefaultContent returns the content shown when the content store is
unreachable or not configured: the photographer's own settings and empty
portfolio, prices and certificates. Every call returns a fresh copy.
*/
func DefaultContent() models.ContentSet {
	defaultContentOnce.Do(func() {
		var err error

		if defaultContent, err = parseContentSet(defaultContentYAML); err != nil {
			panic(err)
		}
	})

	settings := models.SiteSettings{}

	if defaultContent.Settings != nil {
		settings = defaultContent.Settings.Clone()
	}

	return models.ContentSet{
		Settings:     &settings,
		Portfolio:    []models.PortfolioItem{},
		Prices:       []models.PricePackage{},
		Certificates: []models.Certificate{},
	}
}

func parseContentSet(b []byte) (models.ContentSet, error) {
	result := models.ContentSet{}

	if err := yaml.Unmarshal(b, &result); err != nil {
		return result, fmt.Errorf("error parsing default content: %w", err)
	}

	return result, nil
}
