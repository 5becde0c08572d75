//go:build integration

package blog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	database, err := db.SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	testDB = database

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

type fakeCounter struct {
	count int
	err   error
	calls []string
}

func (f *fakeCounter) CommentCount(_ context.Context, forum, apiSecret, threadIdent string) (int, error) {
	f.calls = append(f.calls, forum+"|"+apiSecret+"|"+threadIdent)
	return f.count, f.err
}

func withTx(t *testing.T, site Site, counter CommentCounter) (context.Context, *Manager) {
	t.Helper()
	ctx := context.Background()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	return ctx, NewManager(db.New(tx), site, counter)
}

func TestManager_Resolve_Integration(t *testing.T) {
	ctx, manager := withTx(t, Site{RootURL: "https://example.com"}, nil)

	t.Run("Home", func(t *testing.T) {
		res, err := manager.Resolve(ctx, "/")
		require.NoError(t, err)
		require.NotNil(t, res)
		_, ok := res.Page.(HomePage)
		assert.True(t, ok)
	})

	t.Run("EntryPermalink", func(t *testing.T) {
		res, err := manager.Resolve(ctx, "/tech/2024/03/05/hello/")
		require.NoError(t, err)
		require.NotNil(t, res)
		entry, ok := res.Page.(EntryPage)
		require.True(t, ok)
		assert.Equal(t, db.TestHelloEntryID, entry.ID)
		assert.Equal(t, "/tech/2024/03/05/hello/", entry.Permalink)
		assert.Len(t, entry.Tags, 2)
		assert.Len(t, entry.Categories, 1)
	})

	t.Run("EntryWrongDay", func(t *testing.T) {
		res, err := manager.Resolve(ctx, "/tech/2024/03/06/hello/")
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("ImpossibleDate", func(t *testing.T) {
		res, err := manager.Resolve(ctx, "/tech/2024/02/30/hello/")
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("DraftEntry", func(t *testing.T) {
		res, err := manager.Resolve(ctx, "/tech/2024/03/04/draft/")
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("Feed", func(t *testing.T) {
		res, err := manager.Resolve(ctx, "/news/feed/")
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, res.Feed)
		assert.Equal(t, "news", res.Routing.BlogPath)
	})

	t.Run("BlogTag", func(t *testing.T) {
		res, err := manager.Resolve(ctx, "/tech/tag/go/")
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, SubRoute{Kind: SubTag, Term: "go"}, res.Sub)
	})

	t.Run("EntryTreePathRedirects", func(t *testing.T) {
		res, err := manager.Resolve(ctx, "/tech/hello/")
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, "/tech/2024/03/05/hello/", res.Redirect)
	})

	t.Run("Unknown", func(t *testing.T) {
		for _, path := range []string{"/missing/", "/tech/unknown/route/", "/missing/feed/", "/home/"} {
			res, err := manager.Resolve(ctx, path)
			require.NoError(t, err)
			assert.Nil(t, res, path)
		}
	})
}

func TestManager_Resolve_RootBlog_Integration(t *testing.T) {
	ctx, manager := withTx(t, Site{PathPrefix: "/site", RootPageID: db.TestTechBlogID}, nil)

	res, err := manager.Resolve(ctx, "/site/2024/03/05/hello/")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.True(t, res.Routing.AtRoot())

	link, err := manager.EntryURL(ctx, db.TestHelloEntryID)
	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, "/site/2024/03/05/hello/", link.URL)
	assert.Equal(t, "/site/feed/", link.FeedURL)

	res, err = manager.Resolve(ctx, "/2024/03/05/hello/")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestManager_BlogView_Integration(t *testing.T) {
	ctx, manager := withTx(t, Site{}, nil)

	view := func(t *testing.T, path, query string) *BlogView {
		t.Helper()
		res, err := manager.Resolve(ctx, path)
		require.NoError(t, err)
		require.NotNil(t, res)
		v, err := manager.BlogView(ctx, res, 1, query)
		require.NoError(t, err)
		return v
	}

	t.Run("Index", func(t *testing.T) {
		v := view(t, "/tech/", "")
		assert.Equal(t, 2, v.Total)
		assert.Equal(t, 1, v.PageCount)
		assert.Equal(t, "/tech/feed/", v.FeedURL)
		require.Len(t, v.Entries, 2)
		assert.Equal(t, "/tech/2024/03/05/hello/", v.Entries[0].Permalink)
		assert.Equal(t, db.TestGenericsEntryID, v.PopularEntries[0].ID)
		assert.Len(t, v.Archive, 2)
		assert.NotEmpty(t, v.Tags)
		require.Len(t, v.Categories, 1)
		assert.Equal(t, "Programming", v.Categories[0].Name)
		assert.Len(t, v.Categories[0].Children, 1)
	})

	t.Run("Category", func(t *testing.T) {
		v := view(t, "/tech/category/go/", "")
		assert.Equal(t, SubCategory, v.SearchType)
		assert.Equal(t, "go", v.SearchTerm)
		assert.Equal(t, 1, v.Total)
	})

	t.Run("Author", func(t *testing.T) {
		v := view(t, "/tech/author/bob/", "")
		assert.Equal(t, 1, v.Total)
	})

	t.Run("Search", func(t *testing.T) {
		v := view(t, "/tech/search/", "post")
		assert.Equal(t, "post", v.SearchTerm)
		assert.Equal(t, 1, v.Total)
	})

	t.Run("Date", func(t *testing.T) {
		v := view(t, "/tech/2024/01/", "")
		assert.Equal(t, SubDate, v.SearchType)
		require.Equal(t, 1, v.Total)
		assert.Equal(t, db.TestGenericsEntryID, v.Entries[0].ID)
	})
}

func TestManager_EntryView_Integration(t *testing.T) {
	ctx, manager := withTx(t, Site{}, nil)

	res, err := manager.Resolve(ctx, "/tech/2024/03/05/hello/")
	require.NoError(t, err)
	require.NotNil(t, res)

	v, err := manager.EntryView(ctx, res)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "/tech/", v.BlogURL)
	assert.Equal(t, "/tech/feed/", v.FeedURL)
	require.Len(t, v.Related, 1)
	assert.Equal(t, "/tech/2024/01/10/go-generics/", v.Related[0].Permalink)
	assert.Len(t, v.HeaderTags, 2)
}

func TestManager_HomeView_Integration(t *testing.T) {
	ctx, manager := withTx(t, Site{}, nil)

	res, err := manager.Resolve(ctx, "/")
	require.NoError(t, err)
	require.NotNil(t, res)

	v, err := manager.HomeView(ctx, res)
	require.NoError(t, err)
	require.Len(t, v.Blogs, 2)
	assert.Equal(t, "/news/", v.Blogs[0].URL)
	assert.Equal(t, "/tech/feed/", v.Blogs[1].FeedURL)
}

func TestManager_Feed_Integration(t *testing.T) {
	ctx, manager := withTx(t, Site{RootURL: "https://example.com"}, nil)

	res, err := manager.Resolve(ctx, "/tech/feed/")
	require.NoError(t, err)
	require.NotNil(t, res)

	feed, err := manager.Feed(ctx, res)
	require.NoError(t, err)
	require.Len(t, feed.Items, 2)
	assert.Equal(t, "https://example.com/tech/2024/03/05/hello/", feed.Items[0].Link.Href)
}

func TestManager_Sitemap_Integration(t *testing.T) {
	ctx, manager := withTx(t, Site{RootURL: "https://example.com"}, nil)

	records, err := manager.Sitemap(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)

	byLocation := make(map[string]SitemapEntry)
	for _, r := range records {
		byLocation[r.Location] = r
	}

	hello := byLocation["https://example.com/tech/2024/03/05/hello/"]
	require.NotNil(t, hello.LastMod)
	assert.True(t, hello.LastMod.Equal(db.BaseTime.Add(2*time.Hour)))

	generics := byLocation["https://example.com/tech/2024/01/10/go-generics/"]
	require.NotNil(t, generics.LastMod)
	assert.True(t, generics.LastMod.Equal(db.BaseTime.Add(-48*time.Hour)))

	launch, ok := byLocation["https://example.com/news/2024/03/04/launch/"]
	require.True(t, ok)
	assert.Nil(t, launch.LastMod)
}

func TestManager_SaveCategory_Integration(t *testing.T) {
	ctx, manager := withTx(t, Site{}, nil)

	t.Run("DerivesUniqueSlug", func(t *testing.T) {
		saved, err := manager.SaveCategory(ctx, db.Category{Name: "Programming Languages"})
		require.NoError(t, err)
		assert.Equal(t, "programming-languages", saved.Slug)

		saved, err = manager.SaveCategory(ctx, db.Category{Name: "Programming: Languages"})
		require.NoError(t, err)
		assert.Equal(t, "programming-languages-2", saved.Slug)
	})

	t.Run("SelfParent", func(t *testing.T) {
		_, err := manager.SaveCategory(ctx, db.Category{ID: 1, Name: "Programming", Slug: "programming", ParentID: intPtr(1)})
		assert.ErrorIs(t, err, ErrSelfParent)
	})

	t.Run("Cycle", func(t *testing.T) {
		_, err := manager.SaveCategory(ctx, db.Category{ID: 1, Name: "Programming", Slug: "programming", ParentID: intPtr(2)})
		assert.ErrorIs(t, err, ErrCategoryCycle)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		saved, err := manager.SaveCategory(ctx, db.Category{ID: 999, Name: "Ghost"})
		require.NoError(t, err)
		assert.Nil(t, saved)
	})

	t.Run("Tree", func(t *testing.T) {
		roots, err := manager.Categories(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, roots)
	})

	t.Run("Duplicate", func(t *testing.T) {
		_, err := manager.SaveCategory(ctx, db.Category{Name: "Travel"})
		assert.ErrorIs(t, err, ErrDuplicateCategory)
	})
}

func TestManager_SyncComments_Integration(t *testing.T) {
	t.Run("UpdatesCounter", func(t *testing.T) {
		counter := &fakeCounter{count: 12}
		ctx, manager := withTx(t, Site{}, counter)

		res, err := manager.SyncComments(ctx, db.TestLaunchEntryID)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, 12, res.NumComments)
		assert.Equal(t, []string{fmt.Sprintf("project-news|secret|ident:%d", db.TestLaunchEntryID)}, counter.calls)

		page, err := manager.Specific(ctx, &db.Page{ID: db.TestLaunchEntryID, Kind: db.KindEntry})
		require.NoError(t, err)
		assert.Equal(t, 12, page.(EntryPage).NumComments)
	})

	t.Run("BlogWithoutCredentials", func(t *testing.T) {
		ctx, manager := withTx(t, Site{}, &fakeCounter{})
		_, err := manager.SyncComments(ctx, db.TestHelloEntryID)
		assert.ErrorIs(t, err, ErrCommentsDisabled)
	})

	t.Run("CounterFailure", func(t *testing.T) {
		ctx, manager := withTx(t, Site{}, &fakeCounter{err: errors.New("boom")})
		_, err := manager.SyncComments(ctx, db.TestLaunchEntryID)
		assert.Error(t, err)
	})

	t.Run("UnknownEntry", func(t *testing.T) {
		ctx, manager := withTx(t, Site{}, &fakeCounter{})
		res, err := manager.SyncComments(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, res)
	})
}
