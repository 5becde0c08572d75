package blog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSite_SitemapEntry(t *testing.T) {
	root, tech, _ := testPages()
	site := Site{RootURL: "https://example.com/"}
	published := time.Date(2024, 3, 6, 8, 0, 0, 0, time.UTC)
	revised := time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC)

	t.Run("LastPublished", func(t *testing.T) {
		entry := testEntry(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "hello")
		entry.Page.LastPublishedAt = &published
		entry.Page.LatestRevisionCreatedAt = &revised

		record, err := site.SitemapEntry(entry, tech, root)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/tech/2024/03/05/hello/", record.Location)
		require.NotNil(t, record.LastMod)
		assert.Equal(t, published, *record.LastMod)
	})

	t.Run("FallsBackToLatestRevision", func(t *testing.T) {
		entry := testEntry(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "hello")
		entry.Page.LatestRevisionCreatedAt = &revised

		record, err := site.SitemapEntry(entry, root, root)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/2024/03/05/hello/", record.Location)
		require.NotNil(t, record.LastMod)
		assert.Equal(t, revised, *record.LastMod)
	})

	t.Run("EscapesSlug", func(t *testing.T) {
		entry := testEntry(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "привет")

		record, err := site.SitemapEntry(entry, tech, root)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/tech/2024/03/05/%D0%BF%D1%80%D0%B8%D0%B2%D0%B5%D1%82/", record.Location)
	})

	t.Run("NoTimestamps", func(t *testing.T) {
		entry := testEntry(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), "hello")

		record, err := site.SitemapEntry(entry, tech, root)
		require.NoError(t, err)
		assert.Nil(t, record.LastMod)
	})
}
