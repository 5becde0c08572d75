package rest

import (
	"github.com/daniilsolovey/blog-portal/internal/blog"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategory(c blog.Category) Category {
	return Category{
		CategoryID:  c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		ParentID:    c.ParentID,
		Description: c.Description,
		Uses:        c.Uses,
	}
}

func NewCategoryNode(n blog.CategoryNode) Category {
	category := NewCategory(n.Category)
	category.Children = Map(n.Children, NewCategoryNode)
	return category
}

func NewTag(t blog.Tag) Tag {
	return Tag{
		TagID: t.ID,
		Name:  t.Name,
		Slug:  t.Slug,
		Uses:  t.Uses,
	}
}

func NewEntrySummary(e blog.EntryPage) Entry {
	node := e.Node()
	return Entry{
		EntryID:         e.ID,
		Title:           node.Title,
		Slug:            node.Slug,
		Owner:           node.Owner,
		URL:             e.Permalink,
		Date:            e.Date,
		Excerpt:         e.Excerpt,
		HeaderImage:     e.HeaderImage,
		NumComments:     e.NumComments,
		LastPublishedAt: node.LastPublishedAt,
		Categories:      Map(e.Categories, NewCategory),
		Tags:            Map(e.Tags, NewTag),
	}
}

func NewEntry(e blog.EntryPage) Entry {
	entry := NewEntrySummary(e)
	entry.Body = e.Body
	return entry
}

func NewBlog(b blog.BlogPage) Blog {
	return Blog{
		BlogID:                b.ID,
		Title:                 b.Node().Title,
		Description:           b.Description,
		HeaderImage:           b.HeaderImage,
		MainColor:             b.MainColor,
		DisplayComments:       b.DisplayComments,
		DisplayCategories:     b.DisplayCategories,
		DisplayTags:           b.DisplayTags,
		DisplayPopularEntries: b.DisplayPopularEntries,
		DisplayLastEntries:    b.DisplayLastEntries,
		DisplayArchive:        b.DisplayArchive,
		DisqusShortname:       b.DisqusShortname,
		NumEntriesPage:        b.NumEntriesPage,
	}
}

func NewArchiveMonth(m blog.ArchiveMonth) ArchiveMonth {
	return ArchiveMonth{Year: m.Year, Month: m.Month, Count: m.Count}
}

func NewBlogView(v *blog.BlogView) BlogView {
	return BlogView{
		Blog:           NewBlog(v.Blog),
		URL:            v.URL,
		FeedURL:        v.FeedURL,
		SearchType:     string(v.SearchType),
		SearchTerm:     v.SearchTerm,
		Entries:        Map(v.Entries, NewEntrySummary),
		Total:          v.Total,
		Page:           v.Page,
		PageCount:      v.PageCount,
		PopularEntries: Map(v.PopularEntries, NewEntrySummary),
		LastEntries:    Map(v.LastEntries, NewEntrySummary),
		Archive:        Map(v.Archive, NewArchiveMonth),
		Categories:     Map(v.Categories, NewCategoryNode),
		Tags:           Map(v.Tags, NewTag),
	}
}

func NewEntryView(v *blog.EntryView) EntryView {
	return EntryView{
		Entry:      NewEntry(v.Entry),
		Blog:       NewBlog(v.Blog),
		BlogURL:    v.BlogURL,
		FeedURL:    v.FeedURL,
		HeaderTags: Map(v.HeaderTags, NewTag),
		Related:    Map(v.Related, NewEntrySummary),
	}
}

func NewBlogLink(l blog.BlogLink) BlogLink {
	return BlogLink{
		Blog:    NewBlog(l.Blog),
		URL:     l.URL,
		FeedURL: l.FeedURL,
	}
}

func NewHomeView(v *blog.HomeView) HomeView {
	return HomeView{
		PageID: v.Home.ID,
		Title:  v.Home.Title,
		Blogs:  Map(v.Blogs, NewBlogLink),
	}
}

func NewEntryLink(l *blog.EntryLink) EntryLink {
	return EntryLink{
		EntryID:  l.EntryID,
		URL:      l.URL,
		Location: l.Location,
		FeedURL:  l.FeedURL,
	}
}
