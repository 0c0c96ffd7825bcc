package services

import (
	"testing"

	"github.com/raminaphoto/website/pkg/models"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	t.Parallel()

	content := DefaultContent()

	require.NotNil(t, content.Settings)
	require.Equal(t, DefaultPhotographerName, models.StringOr(content.Settings.PhotographerName, ""))
	require.Equal(t, DefaultPhotoURL, models.StringOr(content.Settings.PhotographerPhotoURL, ""))
	require.True(t, models.HasValue(content.Settings.AboutText))
	require.True(t, models.HasValue(content.Settings.Contacts.Email))

	require.NotNil(t, content.Portfolio)
	require.Empty(t, content.Portfolio)
	require.NotNil(t, content.Prices)
	require.Empty(t, content.Prices)
	require.NotNil(t, content.Certificates)
	require.Empty(t, content.Certificates)
}

func TestDefaultContentReturnsFreshCopies(t *testing.T) {
	t.Parallel()

	first := DefaultContent()
	*first.Settings.PhotographerName = "changed"

	second := DefaultContent()
	require.Equal(t, DefaultPhotographerName, models.StringOr(second.Settings.PhotographerName, ""))
}

func TestQueriesCoverEveryCollection(t *testing.T) {
	t.Parallel()

	for _, collection := range models.Collections {
		query, ok := QueryFor(collection)
		require.True(t, ok, collection)
		require.NotEmpty(t, query)
	}

	_, ok := QueryFor(models.Collection("albums"))
	require.False(t, ok)
}
