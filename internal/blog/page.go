package blog

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

// Page is a node of the site tree together with its kind-specific payload.
type Page interface {
	Node() *db.Page
}

// Routable pages have a public URL within a blog routing context.
type Routable interface {
	Page
	URL(rc RoutingContext) (string, error)
}

// FeedProducer pages publish a feed of entries.
type FeedProducer interface {
	Page
	FeedURL(rc RoutingContext) string
}

type HomePage struct {
	*db.Page
}

func (p HomePage) Node() *db.Page { return p.Page }

type BlogPage struct {
	db.BlogPage
}

func (p BlogPage) Node() *db.Page { return p.BlogPage.Page }

func (p BlogPage) URL(rc RoutingContext) (string, error) { return rc.IndexURL(), nil }

func (p BlogPage) FeedURL(rc RoutingContext) string { return rc.FeedURL() }

type EntryPage struct {
	db.EntryPage
	Permalink  string
	Categories []Category
	Tags       []Tag
}

func (p EntryPage) Node() *db.Page { return p.EntryPage.Page }

func (p EntryPage) URL(rc RoutingContext) (string, error) {
	return rc.EntryURL(p.Date, p.Node().Slug)
}

var (
	_ Page         = HomePage{}
	_ Routable     = BlogPage{}
	_ FeedProducer = BlogPage{}
	_ Routable     = EntryPage{}
)
