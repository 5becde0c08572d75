package blog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoute(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		prefix string
		want   Route
		wantOK bool
	}{
		{"Root", "/", "", Route{Kind: RoutePage}, true},
		{"RootEntry", "/2024/03/05/hello/", "", Route{Kind: RouteEntry, Year: 2024, Month: 3, Day: 5, Slug: "hello"}, true},
		{"BlogEntry", "/tech/2024/03/05/hello/", "", Route{Kind: RouteEntry, BlogPath: "tech", Year: 2024, Month: 3, Day: 5, Slug: "hello"}, true},
		{"EntryWithoutSlash", "/tech/2024/03/05/hello", "", Route{Kind: RouteEntry, BlogPath: "tech", Year: 2024, Month: 3, Day: 5, Slug: "hello"}, true},
		{"UnicodeSlug", "/2024/03/05/привет/", "", Route{Kind: RouteEntry, Year: 2024, Month: 3, Day: 5, Slug: "привет"}, true},
		{"RootFeed", "/feed/", "", Route{Kind: RouteFeed}, true},
		{"BlogFeed", "/tech/go/feed/", "", Route{Kind: RouteFeed, BlogPath: "tech/go"}, true},
		{"EntrySluggedFeed", "/tech/2024/03/05/feed/", "", Route{Kind: RouteEntry, BlogPath: "tech", Year: 2024, Month: 3, Day: 5, Slug: "feed"}, true},
		{"RootEntrySluggedFeed", "/2024/03/05/feed/", "", Route{Kind: RouteEntry, Year: 2024, Month: 3, Day: 5, Slug: "feed"}, true},
		{"Page", "/tech/tag/go/", "", Route{Kind: RoutePage, Path: "tech/tag/go"}, true},
		{"ShortDate", "/tech/2024/3/05/hello/", "", Route{Kind: RoutePage, Path: "tech/2024/3/05/hello"}, true},
		{"Prefixed", "/site/tech/2024/03/05/hello/", "/site", Route{Kind: RouteEntry, BlogPath: "tech", Year: 2024, Month: 3, Day: 5, Slug: "hello"}, true},
		{"PrefixOnly", "/site", "/site", Route{Kind: RoutePage}, true},
		{"OutsidePrefix", "/tech/", "/site", Route{}, false},
		{"PrefixLookalike", "/sitemap/", "/site", Route{}, false},
		{"DotSegment", "/tech/../feed/", "", Route{}, false},
		{"EmptySegment", "/tech//feed/", "", Route{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRoute(tt.path, tt.prefix)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoute_DayWindow(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)

	t.Run("ValidDay", func(t *testing.T) {
		from, to, ok := Route{Year: 2024, Month: 3, Day: 5}.DayWindow(loc)
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, loc), from)
		assert.Equal(t, 24*time.Hour, to.Sub(from))
	})

	for _, r := range []Route{
		{Year: 2024, Month: 2, Day: 30},
		{Year: 2023, Month: 2, Day: 29},
		{Year: 2024, Month: 13, Day: 1},
		{Year: 2024, Month: 4, Day: 31},
		{Year: 2024, Month: 0, Day: 10},
	} {
		_, _, ok := r.DayWindow(loc)
		assert.False(t, ok, "%d-%d-%d", r.Year, r.Month, r.Day)
	}

	_, _, ok := Route{Year: 2024, Month: 2, Day: 29}.DayWindow(nil)
	assert.True(t, ok)
}

func TestParseSubRoute(t *testing.T) {
	tests := []struct {
		rest   string
		want   SubRoute
		wantOK bool
	}{
		{"", SubRoute{Kind: SubIndex}, true},
		{"tag/go", SubRoute{Kind: SubTag, Term: "go"}, true},
		{"category/programming/", SubRoute{Kind: SubCategory, Term: "programming"}, true},
		{"author/alice", SubRoute{Kind: SubAuthor, Term: "alice"}, true},
		{"search", SubRoute{Kind: SubSearch}, true},
		{"2024", SubRoute{Kind: SubDate, Term: "2024", Year: 2024}, true},
		{"2024/03", SubRoute{Kind: SubDate, Term: "2024/03", Year: 2024, Month: 3}, true},
		{"2024/03/05", SubRoute{Kind: SubDate, Term: "2024/03/05", Year: 2024, Month: 3, Day: 5}, true},
		{"2024/02/30", SubRoute{}, false},
		{"2024/13", SubRoute{}, false},
		{"tag", SubRoute{}, false},
		{"tag/go/extra", SubRoute{}, false},
		{"search/term", SubRoute{}, false},
		{"about", SubRoute{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.rest, func(t *testing.T) {
			got, ok := ParseSubRoute(tt.rest)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubRoute_Window(t *testing.T) {
	tests := []struct {
		sub      SubRoute
		from, to time.Time
	}{
		{SubRoute{Year: 2024}, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{SubRoute{Year: 2024, Month: 12}, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{SubRoute{Year: 2024, Month: 2, Day: 29}, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		from, to := tt.sub.Window(nil)
		assert.Equal(t, tt.from, from)
		assert.Equal(t, tt.to, to)
	}
}
