package models

/*
Collection identifies one of the fixed content collections the site
reads from the content store.
*/
type Collection string

const (
	CollectionSettings     Collection = "settings"
	CollectionPortfolio    Collection = "portfolio"
	CollectionPrices       Collection = "prices"
	CollectionCertificates Collection = "certificates"
)

// Collections lists every collection in the order lanes are loaded.
var Collections = []Collection{
	CollectionSettings,
	CollectionPortfolio,
	CollectionPrices,
	CollectionCertificates,
}

/*
ContentSet is everything one load cycle renders. Settings is nil when the
store had no settings document.
*/
type ContentSet struct {
	Settings     *SiteSettings   `yaml:"settings"`
	Portfolio    []PortfolioItem `yaml:"portfolio"`
	Prices       []PricePackage  `yaml:"prices"`
	Certificates []Certificate   `yaml:"certificates"`
}
