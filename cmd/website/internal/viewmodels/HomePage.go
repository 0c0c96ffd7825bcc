package viewmodels

import (
	"html/template"

	"github.com/raminaphoto/website/pkg/lanes"
)

type HomePage struct {
	BaseViewModel

	Labels          lanes.Labels
	Lang            string
	Greeting        string
	WelcomeSubtitle string
	ContentURL      string

	BrandName      string
	HeroTitle      string
	HeroPhoto      template.HTML
	AboutText      string
	LocationsText  string
	FooterName     string
	FooterYear     string
	ContactsPanels template.HTML
	PortfolioGrid  template.HTML
	PricingList    template.HTML
	CertGrid       template.HTML

	ContactsError  template.HTML
	PortfolioError template.HTML
	PricingError   template.HTML
	CertError      template.HTML

	Modal template.HTML
}
