package lanes

import (
	"fmt"
	"regexp"
	"time"

	"github.com/raminaphoto/website/pkg/models"
	"github.com/raminaphoto/website/pkg/services"
	"golang.org/x/text/cases"
)

var honorificSuffix = regexp.MustCompile(`(?i)\s+Львовна\s*$`)

/*
DisplayName is the name shown in the header, hero and footer. A blank
name becomes the default one, and a trailing patronymic is dropped.
*/
func DisplayName(name *string) string {
	return honorificSuffix.ReplaceAllString(models.StringOr(name, services.DefaultPhotographerName), "")
}

// HeroTitle upper-cases the display name using the rules of the label language.
func HeroTitle(name string, labels Labels) string {
	return cases.Upper(labels.Tag).String(name)
}

// Greeting picks the welcome greeting for the visitor's local hour.
func Greeting(now time.Time, labels Labels) string {
	h := now.Hour()

	switch {
	case h >= 5 && h < 12:
		return labels.GreetingMorning
	case h >= 12 && h < 18:
		return labels.GreetingDay
	default:
		return labels.GreetingEvening
	}
}

func WelcomeSubtitle(name *string, labels Labels) string {
	return fmt.Sprintf(labels.WelcomeSubtitle, DisplayName(name))
}

// SeriesTitle is the card title for the portfolio item at a 0-based index.
func SeriesTitle(item models.PortfolioItem, index int, labels Labels) string {
	return models.StringOr(item.Title, fmt.Sprintf("%s %d", labels.SeriesTitle, index+1))
}
