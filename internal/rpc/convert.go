package rpc

import (
	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/db"
)

func (c CategoryInput) ToDB() db.Category {
	return db.Category{
		ID:          c.CategoryID,
		Name:        c.Name,
		Slug:        c.Slug,
		ParentID:    c.ParentID,
		Description: c.Description,
	}
}

func NewCategory(c blog.Category) Category {
	return Category{
		CategoryID:  c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		ParentID:    c.ParentID,
		Description: c.Description,
	}
}

func NewCategoryNode(n blog.CategoryNode) Category {
	category := NewCategory(n.Category)
	category.Children = NewCategoryNodes(n.Children)
	return category
}

func NewTag(t blog.Tag) Tag {
	return Tag{
		TagID: t.ID,
		Name:  t.Name,
		Slug:  t.Slug,
	}
}

func NewEntryLink(l blog.EntryLink) EntryLink {
	return EntryLink{
		EntryID:  l.EntryID,
		URL:      l.URL,
		Location: l.Location,
		FeedURL:  l.FeedURL,
	}
}

func NewBlogLink(l blog.BlogLink) BlogLink {
	return BlogLink{
		BlogID:  l.Blog.ID,
		Title:   l.Blog.Page.Title,
		URL:     l.URL,
		FeedURL: l.FeedURL,
	}
}

func NewSitemapURL(e blog.SitemapEntry) SitemapURL {
	return SitemapURL{
		Location: e.Location,
		LastMod:  e.LastMod,
	}
}
