package models

import "strings"

type PortfolioItem struct {
	Order       int      `json:"order" yaml:"order"`
	Title       *string  `json:"title" yaml:"title"`
	CoverURL    *string  `json:"coverUrl" yaml:"coverUrl"`
	GalleryURLs []string `json:"galleryUrls" yaml:"galleryUrls"`
	VideoURL    *string  `json:"videoUrl" yaml:"videoUrl"`
}

/*
EffectiveGallery is the sequence of images shown in the modal for this
item: the gallery URLs when there are any, otherwise the cover image on
its own, otherwise nothing. Blank gallery entries are skipped.
*/
func (p PortfolioItem) EffectiveGallery() []string {
	result := make([]string, 0, len(p.GalleryURLs))

	for _, u := range p.GalleryURLs {
		if strings.TrimSpace(u) == "" {
			continue
		}

		result = append(result, u)
	}

	if len(result) > 0 {
		return result
	}

	if HasValue(p.CoverURL) {
		return []string{*p.CoverURL}
	}

	return []string{}
}

// CoverImage is the image used on the portfolio card.
func (p PortfolioItem) CoverImage() string {
	if HasValue(p.CoverURL) {
		return *p.CoverURL
	}

	if len(p.GalleryURLs) > 0 {
		return p.GalleryURLs[0]
	}

	return ""
}

func (p PortfolioItem) HasVideo() bool {
	return HasValue(p.VideoURL)
}
