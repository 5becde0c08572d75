package blog

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/feeds"
)

const (
	feedLimit        = 20
	feedSummaryWords = 70
)

const (
	FeedRSS  = "rss"
	FeedAtom = "atom"
	FeedJSON = "json"
)

// FeedItemID is a stable id derived from the entry permalink.
func FeedItemID(permalink string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(permalink)).URN()
}

// BuildFeed assembles the feed of a blog from entries with permalinks set.
func BuildFeed(site Site, blog BlogPage, rc RoutingContext, entries []EntryPage, r *Renderer) (*feeds.Feed, error) {
	node := blog.Node()
	link := site.AbsoluteURL(rc.IndexURL())

	feed := &feeds.Feed{
		Title:       node.Title,
		Link:        &feeds.Link{Href: link},
		Description: blog.Description,
		Id:          FeedItemID(link),
	}
	if node.Owner != "" {
		feed.Author = &feeds.Author{Name: node.Owner}
	}

	feed.Items = make([]*feeds.Item, 0, len(entries))
	for _, e := range entries {
		item, err := feedItem(site, blog, e, r)
		if err != nil {
			return nil, err
		}
		if item.Created.After(feed.Updated) {
			feed.Updated = item.Created
		}
		feed.Items = append(feed.Items, item)
	}
	feed.Created = feed.Updated

	return feed, nil
}

func feedItem(site Site, blog BlogPage, e EntryPage, r *Renderer) (*feeds.Item, error) {
	node := e.Node()
	permalink := site.AbsoluteURL(e.Permalink)

	item := &feeds.Item{
		Title:   node.Title,
		Link:    &feeds.Link{Href: permalink},
		Id:      FeedItemID(permalink),
		Created: e.Date,
	}
	if node.Owner != "" {
		item.Author = &feeds.Author{Name: node.Owner}
	}
	if node.LastPublishedAt != nil {
		item.Updated = *node.LastPublishedAt
	}

	if blog.ShortFeedDescription {
		if e.Excerpt != "" {
			item.Description = e.Excerpt
			return item, nil
		}
		text, err := r.Text(e.Body, feedSummaryWords)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", e.ID, err)
		}
		item.Description = text
		return item, nil
	}

	body, err := r.HTML(e.Body)
	if err != nil {
		return nil, fmt.Errorf("entry %d: %w", e.ID, err)
	}
	item.Description = body
	item.Content = body

	return item, nil
}

// RenderFeed serializes feed in the requested format, RSS by default.
func RenderFeed(feed *feeds.Feed, format string) (body, contentType string, err error) {
	switch format {
	case FeedAtom:
		body, err = feed.ToAtom()
		contentType = "application/atom+xml; charset=utf-8"
	case FeedJSON:
		body, err = feed.ToJSON()
		contentType = "application/feed+json; charset=utf-8"
	default:
		body, err = feed.ToRss()
		contentType = "application/rss+xml; charset=utf-8"
	}
	if err != nil {
		return "", "", fmt.Errorf("render %s feed: %w", format, err)
	}

	return body, contentType, nil
}
