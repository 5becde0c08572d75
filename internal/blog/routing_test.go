package blog

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

func testPages() (root, tech, nested *db.Page) {
	root = &db.Page{ID: 1, Kind: db.KindHome, URLPath: "/home/", Slug: "home"}
	tech = &db.Page{ID: 2, Kind: db.KindBlog, URLPath: "/home/tech/", Slug: "tech", ParentID: &root.ID}
	nested = &db.Page{ID: 3, Kind: db.KindBlog, URLPath: "/home/tech/go/", Slug: "go", ParentID: &tech.ID}
	return root, tech, nested
}

func testEntry(date time.Time, slug string) *db.EntryPage {
	return &db.EntryPage{ID: 10, Date: date, Page: &db.Page{ID: 10, Kind: db.KindEntry, Slug: slug}}
}

func TestPagePath(t *testing.T) {
	tests := []struct {
		name, page, root, want string
		wantOK                 bool
	}{
		{"Root", "/home/", "/home/", "/", true},
		{"Child", "/home/tech/", "/home/", "/tech/", true},
		{"Nested", "/home/tech/go/", "/home/", "/tech/go/", true},
		{"OutsideRoot", "/other/tech/", "/home/", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PagePath(tt.page, tt.root)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStripPrefixAndEndingSlash(t *testing.T) {
	tests := []struct {
		path, prefix, want string
	}{
		{"/tech/", "", "tech"},
		{"/tech/go/", "", "tech/go"},
		{"/", "", ""},
		{"/site/tech/", "/site", "tech"},
		{"/site/tech/", "site/", "tech"},
		{"/site/", "/site", ""},
		{"/tech/", "/site", "tech"},
		{"tech", "", "tech"},
	}

	for _, tt := range tests {
		t.Run(tt.path+"|"+tt.prefix, func(t *testing.T) {
			assert.Equal(t, tt.want, StripPrefixAndEndingSlash(tt.path, tt.prefix))
		})
	}
}

func TestSite_EntryURL(t *testing.T) {
	root, tech, nested := testPages()
	date := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)
	entry := testEntry(date, "hello")

	t.Run("RootBlog", func(t *testing.T) {
		url, err := Site{}.EntryURL(entry, root, root)
		require.NoError(t, err)
		assert.Equal(t, "/2024/03/05/hello/", url)
	})

	t.Run("SubpathBlog", func(t *testing.T) {
		url, err := Site{}.EntryURL(entry, tech, root)
		require.NoError(t, err)
		assert.Equal(t, "/tech/2024/03/05/hello/", url)
	})

	t.Run("NestedBlog", func(t *testing.T) {
		url, err := Site{}.EntryURL(entry, nested, root)
		require.NoError(t, err)
		assert.Equal(t, "/tech/go/2024/03/05/hello/", url)
	})

	t.Run("WithPrefix", func(t *testing.T) {
		site := Site{PathPrefix: "/site/"}

		url, err := site.EntryURL(entry, tech, root)
		require.NoError(t, err)
		assert.Equal(t, "/site/tech/2024/03/05/hello/", url)

		url, err = site.EntryURL(entry, root, root)
		require.NoError(t, err)
		assert.Equal(t, "/site/2024/03/05/hello/", url)
	})

	t.Run("DateInSiteTimeZone", func(t *testing.T) {
		loc := time.FixedZone("UTC+3", 3*60*60)
		late := testEntry(time.Date(2024, 3, 5, 22, 0, 0, 0, time.UTC), "late")

		url, err := Site{Location: loc}.EntryURL(late, tech, root)
		require.NoError(t, err)
		assert.Equal(t, "/tech/2024/03/06/late/", url)
	})

	t.Run("MissingDate", func(t *testing.T) {
		_, err := Site{}.EntryURL(testEntry(time.Time{}, "nodate"), tech, root)
		assert.ErrorIs(t, err, ErrMissingEntryDate)
	})

	t.Run("BlogNamedLikePrefix", func(t *testing.T) {
		site := &db.Page{ID: 4, Kind: db.KindBlog, URLPath: "/home/site/", ParentID: &root.ID}

		url, err := Site{PathPrefix: "/site"}.EntryURL(entry, site, root)
		require.NoError(t, err)
		assert.Equal(t, "/site/site/2024/03/05/hello/", url)
	})

	t.Run("BlogOutsideRoot", func(t *testing.T) {
		other := &db.Page{ID: 9, Kind: db.KindBlog, URLPath: "/other/"}
		_, err := Site{}.EntryURL(entry, other, root)
		assert.ErrorIs(t, err, ErrNotUnderRoot)
	})

	t.Run("Idempotent", func(t *testing.T) {
		first, err := Site{}.EntryURL(entry, tech, root)
		require.NoError(t, err)
		second, err := Site{}.EntryURL(entry, tech, root)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestSite_FeedURL(t *testing.T) {
	root, tech, _ := testPages()

	url, err := Site{}.FeedURL(root, root)
	require.NoError(t, err)
	assert.Equal(t, "/feed/", url)

	url, err = Site{}.FeedURL(tech, root)
	require.NoError(t, err)
	assert.Equal(t, "/tech/feed/", url)

	url, err = Site{PathPrefix: "/site"}.FeedURL(tech, root)
	require.NoError(t, err)
	assert.Equal(t, "/site/tech/feed/", url)
}

func TestRoutingContext_SiblingURLs(t *testing.T) {
	root, tech, _ := testPages()
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	for _, blog := range []*db.Page{root, tech} {
		rc, err := Site{}.RoutingContext(blog, root)
		require.NoError(t, err)

		entryURL, err := rc.EntryURL(date, "hello")
		require.NoError(t, err)

		assert.Equal(t, blog.ID == root.ID, rc.AtRoot())
		assert.True(t, len(entryURL) > len(rc.IndexURL()))
		assert.Equal(t, rc.IndexURL(), entryURL[:len(rc.IndexURL())])
		assert.Equal(t, rc.IndexURL()+"feed/", rc.FeedURL())
	}
}

func TestRoutingContext_RoundTrip(t *testing.T) {
	root, tech, nested := testPages()
	date := time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC)

	for _, prefix := range []string{"", "/site"} {
		for _, blog := range []*db.Page{root, tech, nested} {
			rc, err := Site{PathPrefix: prefix}.RoutingContext(blog, root)
			require.NoError(t, err)

			for _, slug := range []string{"year-end", "feed", "привет"} {
				link, err := rc.EntryURL(date, slug)
				require.NoError(t, err)

				// Requests arrive with the path already decoded.
				path, err := url.PathUnescape(link)
				require.NoError(t, err)

				route, ok := ParseRoute(path, prefix)
				require.True(t, ok, link)
				assert.Equal(t, RouteEntry, route.Kind, link)
				assert.Equal(t, rc.BlogPath, route.BlogPath, link)
				assert.Equal(t, []int{2023, 12, 31}, []int{route.Year, route.Month, route.Day}, link)
				assert.Equal(t, slug, route.Slug, link)
			}

			feed, ok := ParseRoute(rc.FeedURL(), prefix)
			require.True(t, ok)
			assert.Equal(t, RouteFeed, feed.Kind)
			assert.Equal(t, rc.BlogPath, feed.BlogPath)
		}
	}
}

func TestRoutingContext_EntryURLEscapesSegments(t *testing.T) {
	root, _, _ := testPages()
	blog := &db.Page{ID: 4, Kind: db.KindBlog, URLPath: "/home/новости/", Slug: "новости", ParentID: &root.ID}
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	rc, err := Site{}.RoutingContext(blog, root)
	require.NoError(t, err)
	assert.Equal(t, "новости", rc.BlogPath)

	link, err := rc.EntryURL(date, "привет")
	require.NoError(t, err)
	assert.Equal(t, "/%D0%BD%D0%BE%D0%B2%D0%BE%D1%81%D1%82%D0%B8/2024/03/05/%D0%BF%D1%80%D0%B8%D0%B2%D0%B5%D1%82/", link)
	assert.Equal(t, "/%D0%BD%D0%BE%D0%B2%D0%BE%D1%81%D1%82%D0%B8/feed/", rc.FeedURL())
}
