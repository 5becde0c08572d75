package blog

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

var (
	ErrMissingEntryDate = errors.New("entry has no date")
	ErrNotUnderRoot     = errors.New("page is not under the site root")
)

// Site describes where the page tree is served from.
type Site struct {
	// RootURL is the absolute site URL used for feeds and sitemap, e.g. https://example.com.
	RootURL string
	// PathPrefix is the path the site is mounted at, e.g. /blog. Empty for /.
	PathPrefix string
	// Location is the time zone entry dates are rendered in.
	Location *time.Location
	// RootPageID selects the root page. Zero means the first page without a parent.
	RootPageID int
}

func (s Site) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

// AbsoluteURL joins the site root URL with a path produced by the resolvers.
func (s Site) AbsoluteURL(path string) string {
	return strings.TrimSuffix(s.RootURL, "/") + path
}

// PagePath returns the path of a page relative to the site root, starting
// and ending with a slash. ok is false when the page is not under root.
func PagePath(pageURLPath, rootURLPath string) (string, bool) {
	if !strings.HasPrefix(pageURLPath, rootURLPath) {
		return "", false
	}

	return "/" + strings.TrimPrefix(pageURLPath, rootURLPath), true
}

// StripPrefixAndEndingSlash turns a page path into a routing parameter:
// the mount prefix and surrounding slashes are removed.
func StripPrefixAndEndingSlash(path, prefix string) string {
	path = strings.Trim(path, "/")
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return path
	}

	if path == prefix {
		return ""
	}

	return strings.TrimPrefix(path, prefix+"/")
}

// RoutingContext holds the root-vs-subpath decision for one blog. Entry,
// feed and index URLs of the blog are all derived from it.
type RoutingContext struct {
	Prefix   string
	BlogPath string
	Location *time.Location
}

// RoutingContext computes the routing decision for blog under root.
func (s Site) RoutingContext(blog, root *db.Page) (RoutingContext, error) {
	rc := RoutingContext{
		Prefix:   "/" + strings.Trim(s.PathPrefix, "/"),
		Location: s.location(),
	}
	if rc.Prefix == "/" {
		rc.Prefix = ""
	}

	if blog.ID == root.ID {
		return rc, nil
	}

	path, ok := PagePath(blog.URLPath, root.URLPath)
	if !ok {
		return rc, fmt.Errorf("blog %d (%s): %w", blog.ID, blog.URLPath, ErrNotUnderRoot)
	}

	rc.BlogPath = StripPrefixAndEndingSlash(rc.Prefix+path, rc.Prefix)
	return rc, nil
}

// AtRoot reports whether the blog is the site root.
func (rc RoutingContext) AtRoot() bool {
	return rc.BlogPath == ""
}

func (rc RoutingContext) base() string {
	if rc.AtRoot() {
		return rc.Prefix + "/"
	}
	return rc.Prefix + "/" + escapeSegments(rc.BlogPath) + "/"
}

// escapeSegments percent-encodes every segment of a slash separated path.
func escapeSegments(path string) string {
	segs := strings.Split(path, "/")
	for i := range segs {
		segs[i] = url.PathEscape(segs[i])
	}
	return strings.Join(segs, "/")
}

// IndexURL is the blog listing URL.
func (rc RoutingContext) IndexURL() string {
	return rc.base()
}

// FeedURL is /feed/ for a root blog and /{blogPath}/feed/ otherwise.
func (rc RoutingContext) FeedURL() string {
	return rc.base() + "feed/"
}

// EntryURL is the date-structured permalink of an entry of the blog. Slugs
// outside ASCII are percent-encoded.
func (rc RoutingContext) EntryURL(date time.Time, slug string) (string, error) {
	if date.IsZero() {
		return "", fmt.Errorf("entry %q: %w", slug, ErrMissingEntryDate)
	}

	loc := rc.Location
	if loc == nil {
		loc = time.UTC
	}
	date = date.In(loc)

	return fmt.Sprintf("%s%04d/%02d/%02d/%s/", rc.base(), date.Year(), int(date.Month()), date.Day(), url.PathEscape(slug)), nil
}

// EntryURL resolves the permalink of entry owned by blog.
func (s Site) EntryURL(entry *db.EntryPage, blog, root *db.Page) (string, error) {
	if entry.Page == nil {
		return "", fmt.Errorf("entry %d: page is not loaded", entry.ID)
	}

	rc, err := s.RoutingContext(blog, root)
	if err != nil {
		return "", err
	}

	return rc.EntryURL(entry.Date, entry.Page.Slug)
}

// FeedURL resolves the feed path of blog.
func (s Site) FeedURL(blog, root *db.Page) (string, error) {
	rc, err := s.RoutingContext(blog, root)
	if err != nil {
		return "", err
	}

	return rc.FeedURL(), nil
}
