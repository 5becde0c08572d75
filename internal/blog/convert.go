package blog

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

func NewCategory(c *db.Category) Category {
	return Category{
		Category: *c,
	}
}

func NewCategoryFromUse(u *db.CategoryUse) Category {
	return Category{
		Category: db.Category{
			ID:       u.ID,
			Name:     u.Name,
			Slug:     u.Slug,
			ParentID: u.ParentID,
		},
		Uses: u.Uses,
	}
}

func NewTag(t *db.Tag) Tag {
	return Tag{
		Tag: *t,
	}
}

func NewTagFromUse(u *db.TagUse) Tag {
	return Tag{
		Tag: db.Tag{
			ID:   u.ID,
			Name: u.Name,
			Slug: u.Slug,
		},
		Uses: u.Uses,
	}
}

func NewBlogPage(b *db.BlogPage) BlogPage {
	return BlogPage{
		BlogPage: *b,
	}
}

func NewEntryPage(e *db.EntryPage) EntryPage {
	return EntryPage{
		EntryPage: *e,
	}
}

func NewArchiveMonth(m *db.ArchiveMonth) ArchiveMonth {
	return ArchiveMonth{
		Year:  m.Year,
		Month: m.Month,
		Count: m.Count,
	}
}
