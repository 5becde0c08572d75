package blog

import (
	"time"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

type Category struct {
	db.Category
	Uses int
}

type CategoryNode struct {
	Category
	Children []CategoryNode
}

type Tag struct {
	db.Tag
	Uses int
}

type ArchiveMonth struct {
	Year, Month, Count int
}

// SitemapEntry is one <url> record of the sitemap.
type SitemapEntry struct {
	Location string
	LastMod  *time.Time
}

// BlogLink is a blog with its public URLs.
type BlogLink struct {
	Blog    BlogPage
	URL     string
	FeedURL string
}

// EntryLink holds the public URLs of an entry.
type EntryLink struct {
	EntryID  int
	URL      string
	Location string
	FeedURL  string
}

// BlogView is the render context of a blog listing.
type BlogView struct {
	Blog    BlogPage
	URL     string
	FeedURL string

	SearchType SubRouteKind
	SearchTerm string

	Entries   []EntryPage
	Total     int
	Page      int
	PageCount int

	PopularEntries []EntryPage
	LastEntries    []EntryPage
	Archive        []ArchiveMonth
	Categories     []CategoryNode
	Tags           []Tag
}

// EntryView is the render context of a single entry.
type EntryView struct {
	Entry      EntryPage
	Blog       BlogPage
	BlogURL    string
	FeedURL    string
	HeaderTags []Tag
	Related    []EntryPage
}

// HomeView is the render context of the home page.
type HomeView struct {
	Home  HomePage
	Blogs []BlogLink
}

// Resolution is a request path resolved against the page tree.
type Resolution struct {
	Page    Page
	Root    *db.Page
	Routing RoutingContext
	Sub     SubRoute
	Feed    bool
	// Redirect is set when an entry was reached by its tree path.
	Redirect string
}

// CommentSync is the outcome of a comment counter refresh.
type CommentSync struct {
	EntryID     int
	NumComments int
}
