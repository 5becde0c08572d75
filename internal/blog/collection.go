package blog

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

type (
	Categories  []Category
	Tags        []Tag
	EntryPages  []EntryPage
	ArchiveList []ArchiveMonth
)

func NewCategories(in []db.Category) Categories {
	out := make(Categories, len(in))
	for i := range in {
		out[i] = NewCategory(&in[i])
	}
	return out
}

func NewTags(in []db.Tag) Tags {
	out := make(Tags, len(in))
	for i := range in {
		out[i] = NewTag(&in[i])
	}
	return out
}

func NewTagUses(in []db.TagUse) Tags {
	out := make(Tags, len(in))
	for i := range in {
		out[i] = NewTagFromUse(&in[i])
	}
	return out
}

func NewEntryPages(in []db.EntryPage) EntryPages {
	out := make(EntryPages, len(in))
	for i := range in {
		out[i] = NewEntryPage(&in[i])
	}
	return out
}

func NewArchiveList(in []db.ArchiveMonth) ArchiveList {
	out := make(ArchiveList, len(in))
	for i := range in {
		out[i] = NewArchiveMonth(&in[i])
	}
	return out
}

// IDs returns the page ids of the entries.
func (ll EntryPages) IDs() []int {
	ids := make([]int, len(ll))
	for i := range ll {
		ids[i] = ll[i].ID
	}
	return ids
}

// SetTags attaches tag links to the entries they belong to.
func (ll EntryPages) SetTags(links []db.TagEntry) {
	byPage := make(map[int][]Tag)
	for i := range links {
		if links[i].Tag != nil {
			byPage[links[i].PageID] = append(byPage[links[i].PageID], NewTag(links[i].Tag))
		}
	}
	for i := range ll {
		ll[i].Tags = byPage[ll[i].ID]
	}
}

// SetCategories attaches category links to the entries they belong to.
func (ll EntryPages) SetCategories(links []db.CategoryEntry) {
	byPage := make(map[int][]Category)
	for i := range links {
		if links[i].Category != nil {
			byPage[links[i].PageID] = append(byPage[links[i].PageID], NewCategory(links[i].Category))
		}
	}
	for i := range ll {
		ll[i].Categories = byPage[ll[i].ID]
	}
}

// SetPermalinks computes the entry URLs within rc.
func (ll EntryPages) SetPermalinks(rc RoutingContext) error {
	for i := range ll {
		url, err := ll[i].URL(rc)
		if err != nil {
			return err
		}
		ll[i].Permalink = url
	}
	return nil
}
