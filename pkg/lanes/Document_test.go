package lanes

import (
	"errors"
	"testing"

	"github.com/raminaphoto/website/pkg/models"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	require.Empty(t, doc.VisibleNotices())

	for _, lane := range AllLanes {
		require.Equal(t, StatePlaceholder, doc.State(lane))
		require.Equal(t, "placeholder", doc.State(lane).String())
	}
}

func TestNoticesPerSlot(t *testing.T) {
	t.Parallel()

	doc := NewDocument()
	doc.ShowNotice(SlotCertError, "one")
	doc.ShowNotice(SlotContactsError, "two")
	doc.ShowNotice(SlotCertError, "three")

	require.Equal(t, []Slot{SlotContactsError, SlotCertError}, doc.VisibleNotices())
	require.Equal(t, Notice{Message: "three", Visible: true}, doc.Notice(SlotCertError))

	doc.HideNotice(SlotCertError)
	require.Equal(t, []Slot{SlotContactsError}, doc.VisibleNotices())
}

func TestCurrentContent(t *testing.T) {
	t.Parallel()

	current := &CurrentContent{}
	require.Nil(t, current.Portfolio())

	current.Record(LoadResult{Content: models.ContentSet{Portfolio: []models.PortfolioItem{}}})
	require.NotNil(t, current.Portfolio())
	require.Empty(t, current.Portfolio())

	current.Record(LoadResult{Live: true, Content: models.ContentSet{Portfolio: []models.PortfolioItem{{Title: models.String("Sea")}}}})
	require.Len(t, current.Portfolio(), 1)

	current.Record(LoadResult{Live: true, Content: models.ContentSet{Portfolio: []models.PortfolioItem{{}, {}}}})
	require.Len(t, current.Portfolio(), 2)
}

func TestCurrentContentKeepsLiveOverFallback(t *testing.T) {
	t.Parallel()

	current := &CurrentContent{}
	current.Record(LoadResult{Live: true, Content: models.ContentSet{Portfolio: []models.PortfolioItem{{Title: models.String("Sea")}}}})
	current.Record(LoadResult{Content: models.ContentSet{Portfolio: []models.PortfolioItem{}}, Err: errors.New("down")})

	require.Len(t, current.Portfolio(), 1)
	require.Equal(t, "Sea", models.StringOr(current.Portfolio()[0].Title, ""))
}
