package lanes

import (
	"testing"
	"time"

	"github.com/raminaphoto/website/pkg/models"
	"github.com/raminaphoto/website/pkg/services"
	"github.com/stretchr/testify/require"
)

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    *string
		expected string
	}{
		{name: "absent", input: nil, expected: services.DefaultPhotographerName},
		{name: "empty", input: models.String(""), expected: services.DefaultPhotographerName},
		{name: "plain", input: models.String("Ramina"), expected: "Ramina"},
		{name: "patronymic", input: models.String("Габлия Рамина Львовна"), expected: "Габлия Рамина"},
		{name: "patronymic lower case", input: models.String("Габлия Рамина львовна  "), expected: "Габлия Рамина"},
		{name: "patronymic not last", input: models.String("Львовна Рамина"), expected: "Львовна Рамина"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, DisplayName(tt.input))
		})
	}
}

func TestGreeting(t *testing.T) {
	t.Parallel()

	at := func(hour int) time.Time {
		return time.Date(2026, time.January, 1, hour, 30, 0, 0, time.UTC)
	}

	require.Equal(t, "Good morning", Greeting(at(5), EnglishLabels))
	require.Equal(t, "Good morning", Greeting(at(11), EnglishLabels))
	require.Equal(t, "Good afternoon", Greeting(at(12), EnglishLabels))
	require.Equal(t, "Good evening", Greeting(at(18), EnglishLabels))
	require.Equal(t, "Good evening", Greeting(at(4), EnglishLabels))
	require.Equal(t, "Доброе утро", Greeting(at(7), RussianLabels))
}

func TestWelcomeAndSeriesTitles(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Glad to see you. This is the portfolio of Ramina.", WelcomeSubtitle(models.String("Ramina"), EnglishLabels))
	require.Equal(t, "Серия 3", SeriesTitle(models.PortfolioItem{}, 2, RussianLabels))
	require.Equal(t, "Sea", SeriesTitle(models.PortfolioItem{Title: models.String("Sea")}, 2, EnglishLabels))
	require.Equal(t, "RAMINA", HeroTitle("Ramina", EnglishLabels))
}

func TestLabelsFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, RussianLabels.Tag, LabelsFor("ru-RU,ru;q=0.9,en;q=0.8").Tag)
	require.Equal(t, EnglishLabels.Tag, LabelsFor("en-US,en;q=0.9", "ru").Tag)
	require.Equal(t, RussianLabels.Tag, LabelsFor("", "ru").Tag)
	require.Equal(t, EnglishLabels.Tag, LabelsFor().Tag)
	require.Equal(t, EnglishLabels.Tag, LabelsFor("not a tag;;;").Tag)
}
