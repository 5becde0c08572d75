package blog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

func testFeedEntries(t *testing.T, rc RoutingContext) []EntryPage {
	t.Helper()

	list := EntryPages{
		{EntryPage: db.EntryPage{
			ID: 10, Body: "# Hello\n\nFirst **post** with many words.", Excerpt: "First post",
			Date: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
			Page: &db.Page{ID: 10, Title: "Hello", Slug: "hello", Owner: "alice"},
		}},
		{EntryPage: db.EntryPage{
			ID: 11, Body: "Type **parameters** in practice.",
			Date: time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
			Page: &db.Page{ID: 11, Title: "Generics", Slug: "generics"},
		}},
	}
	require.NoError(t, list.SetPermalinks(rc))
	return list
}

func TestBuildFeed(t *testing.T) {
	root, tech, _ := testPages()
	site := Site{RootURL: "https://example.com"}
	rc, err := site.RoutingContext(tech, root)
	require.NoError(t, err)

	blog := BlogPage{BlogPage: db.BlogPage{ID: tech.ID, Description: "Notes", ShortFeedDescription: true, Page: &db.Page{ID: tech.ID, Title: "Tech", Owner: "admin"}}}

	t.Run("ShortDescription", func(t *testing.T) {
		feed, err := BuildFeed(site, blog, rc, testFeedEntries(t, rc), NewRenderer())
		require.NoError(t, err)

		assert.Equal(t, "Tech", feed.Title)
		assert.Equal(t, "https://example.com/tech/", feed.Link.Href)
		assert.Equal(t, time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC), feed.Updated)
		require.Len(t, feed.Items, 2)

		first := feed.Items[0]
		assert.Equal(t, "https://example.com/tech/2024/03/05/hello/", first.Link.Href)
		assert.Equal(t, FeedItemID("https://example.com/tech/2024/03/05/hello/"), first.Id)
		assert.Equal(t, "First post", first.Description)
		assert.Equal(t, "alice", first.Author.Name)
		assert.Empty(t, first.Content)

		second := feed.Items[1]
		assert.Equal(t, "Type parameters in practice.", second.Description)
		assert.Nil(t, second.Author)
	})

	t.Run("FullBody", func(t *testing.T) {
		full := blog
		full.ShortFeedDescription = false

		feed, err := BuildFeed(site, full, rc, testFeedEntries(t, rc), NewRenderer())
		require.NoError(t, err)
		assert.Contains(t, feed.Items[0].Content, "<strong>post</strong>")
		assert.Equal(t, feed.Items[0].Content, feed.Items[0].Description)
	})

	t.Run("Empty", func(t *testing.T) {
		feed, err := BuildFeed(site, blog, rc, nil, NewRenderer())
		require.NoError(t, err)
		assert.Empty(t, feed.Items)
	})
}

func TestFeedItemID(t *testing.T) {
	id := FeedItemID("https://example.com/tech/2024/03/05/hello/")
	assert.True(t, strings.HasPrefix(id, "urn:uuid:"))
	assert.Equal(t, id, FeedItemID("https://example.com/tech/2024/03/05/hello/"))
	assert.NotEqual(t, id, FeedItemID("https://example.com/2024/03/05/hello/"))
}

func TestRenderFeed(t *testing.T) {
	root, tech, _ := testPages()
	site := Site{RootURL: "https://example.com"}
	rc, err := site.RoutingContext(tech, root)
	require.NoError(t, err)

	blog := BlogPage{BlogPage: db.BlogPage{ID: tech.ID, ShortFeedDescription: true, Page: &db.Page{ID: tech.ID, Title: "Tech"}}}
	feed, err := BuildFeed(site, blog, rc, testFeedEntries(t, rc), NewRenderer())
	require.NoError(t, err)

	tests := []struct {
		format      string
		contentType string
		marker      string
	}{
		{"", "application/rss+xml; charset=utf-8", "<rss"},
		{FeedRSS, "application/rss+xml; charset=utf-8", "<rss"},
		{FeedAtom, "application/atom+xml; charset=utf-8", "<feed"},
		{FeedJSON, "application/feed+json; charset=utf-8", `"items"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			body, contentType, err := RenderFeed(feed, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.contentType, contentType)
			assert.Contains(t, body, tt.marker)
			assert.Contains(t, body, "https://example.com/tech/2024/03/05/hello/")
		})
	}
}
