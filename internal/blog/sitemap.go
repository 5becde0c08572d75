package blog

import (
	"time"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

// SitemapEntry builds the sitemap record of an entry. The last modification
// falls back to the latest revision time for entries never republished.
func (s Site) SitemapEntry(entry *db.EntryPage, blog, root *db.Page) (SitemapEntry, error) {
	url, err := s.EntryURL(entry, blog, root)
	if err != nil {
		return SitemapEntry{}, err
	}

	return SitemapEntry{
		Location: s.AbsoluteURL(url),
		LastMod:  lastModified(entry.Page),
	}, nil
}

func lastModified(p *db.Page) *time.Time {
	if p.LastPublishedAt != nil {
		return p.LastPublishedAt
	}
	return p.LatestRevisionCreatedAt
}
