// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Page struct {
		ID, ParentID, Kind, Title, Slug, URLPath, Owner, Live, FirstPublishedAt, LastPublishedAt, LatestRevisionCreatedAt string

		Parent string
	}
	BlogPage struct {
		ID, Description, HeaderImage, MainColor, DisplayComments, DisplayCategories, DisplayTags, DisplayPopularEntries, DisplayLastEntries, DisplayArchive, DisqusAPISecret, DisqusShortname, NumEntriesPage, NumLastEntries, NumPopularEntries, NumTagsEntryHeader, ShortFeedDescription string

		Page string
	}
	EntryPage struct {
		ID, Body, Excerpt, Date, HeaderImage, NumComments string

		Page string
	}
	Category struct {
		ID, Name, Slug, ParentID, Description string
	}
	CategoryEntry struct {
		ID, CategoryID, PageID string

		Category string
	}
	Tag struct {
		ID, Name, Slug string
	}
	TagEntry struct {
		ID, TagID, PageID string

		Tag string
	}
	EntryRelation struct {
		ID, FromPageID, ToPageID string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
}{
	Page: struct {
		ID, ParentID, Kind, Title, Slug, URLPath, Owner, Live, FirstPublishedAt, LastPublishedAt, LatestRevisionCreatedAt string

		Parent string
	}{
		ID:                      "pageId",
		ParentID:                "parentId",
		Kind:                    "kind",
		Title:                   "title",
		Slug:                    "slug",
		URLPath:                 "urlPath",
		Owner:                   "owner",
		Live:                    "live",
		FirstPublishedAt:        "firstPublishedAt",
		LastPublishedAt:         "lastPublishedAt",
		LatestRevisionCreatedAt: "latestRevisionCreatedAt",

		Parent: "Parent",
	},
	BlogPage: struct {
		ID, Description, HeaderImage, MainColor, DisplayComments, DisplayCategories, DisplayTags, DisplayPopularEntries, DisplayLastEntries, DisplayArchive, DisqusAPISecret, DisqusShortname, NumEntriesPage, NumLastEntries, NumPopularEntries, NumTagsEntryHeader, ShortFeedDescription string

		Page string
	}{
		ID:                    "pageId",
		Description:           "description",
		HeaderImage:           "headerImage",
		MainColor:             "mainColor",
		DisplayComments:       "displayComments",
		DisplayCategories:     "displayCategories",
		DisplayTags:           "displayTags",
		DisplayPopularEntries: "displayPopularEntries",
		DisplayLastEntries:    "displayLastEntries",
		DisplayArchive:        "displayArchive",
		DisqusAPISecret:       "disqusApiSecret",
		DisqusShortname:       "disqusShortname",
		NumEntriesPage:        "numEntriesPage",
		NumLastEntries:        "numLastEntries",
		NumPopularEntries:     "numPopularEntries",
		NumTagsEntryHeader:    "numTagsEntryHeader",
		ShortFeedDescription:  "shortFeedDescription",

		Page: "Page",
	},
	EntryPage: struct {
		ID, Body, Excerpt, Date, HeaderImage, NumComments string

		Page string
	}{
		ID:          "pageId",
		Body:        "body",
		Excerpt:     "excerpt",
		Date:        "date",
		HeaderImage: "headerImage",
		NumComments: "numComments",

		Page: "Page",
	},
	Category: struct {
		ID, Name, Slug, ParentID, Description string
	}{
		ID:          "categoryId",
		Name:        "name",
		Slug:        "slug",
		ParentID:    "parentId",
		Description: "description",
	},
	CategoryEntry: struct {
		ID, CategoryID, PageID string

		Category string
	}{
		ID:         "categoryEntryId",
		CategoryID: "categoryId",
		PageID:     "pageId",

		Category: "Category",
	},
	Tag: struct {
		ID, Name, Slug string
	}{
		ID:   "tagId",
		Name: "name",
		Slug: "slug",
	},
	TagEntry: struct {
		ID, TagID, PageID string

		Tag string
	}{
		ID:     "tagEntryId",
		TagID:  "tagId",
		PageID: "pageId",

		Tag: "Tag",
	},
	EntryRelation: struct {
		ID, FromPageID, ToPageID string
	}{
		ID:         "entryRelationId",
		FromPageID: "fromPageId",
		ToPageID:   "toPageId",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
}

var Tables = struct {
	Page struct {
		Name, Alias string
	}
	BlogPage struct {
		Name, Alias string
	}
	EntryPage struct {
		Name, Alias string
	}
	Category struct {
		Name, Alias string
	}
	CategoryEntry struct {
		Name, Alias string
	}
	Tag struct {
		Name, Alias string
	}
	TagEntry struct {
		Name, Alias string
	}
	EntryRelation struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
}{
	Page: struct {
		Name, Alias string
	}{
		Name:  "pages",
		Alias: "t",
	},
	BlogPage: struct {
		Name, Alias string
	}{
		Name:  "blogPages",
		Alias: "t",
	},
	EntryPage: struct {
		Name, Alias string
	}{
		Name:  "entryPages",
		Alias: "t",
	},
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	CategoryEntry: struct {
		Name, Alias string
	}{
		Name:  "categoryEntries",
		Alias: "t",
	},
	Tag: struct {
		Name, Alias string
	}{
		Name:  "tags",
		Alias: "t",
	},
	TagEntry: struct {
		Name, Alias string
	}{
		Name:  "tagEntries",
		Alias: "t",
	},
	EntryRelation: struct {
		Name, Alias string
	}{
		Name:  "entryRelations",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
}

type Page struct {
	tableName struct{} `pg:"pages,alias:t,discard_unknown_columns"`

	ID                      int        `pg:"pageId,pk"`
	ParentID                *int       `pg:"parentId"`
	Kind                    string     `pg:"kind,use_zero"`
	Title                   string     `pg:"title,use_zero"`
	Slug                    string     `pg:"slug,use_zero"`
	URLPath                 string     `pg:"urlPath,use_zero"`
	Owner                   string     `pg:"owner,use_zero"`
	Live                    bool       `pg:"live,use_zero"`
	FirstPublishedAt        *time.Time `pg:"firstPublishedAt"`
	LastPublishedAt         *time.Time `pg:"lastPublishedAt"`
	LatestRevisionCreatedAt *time.Time `pg:"latestRevisionCreatedAt"`

	Parent *Page `pg:"fk:parentId,rel:has-one"`
}

type BlogPage struct {
	tableName struct{} `pg:"blogPages,alias:t,discard_unknown_columns"`

	ID                    int     `pg:"pageId,pk"`
	Description           string  `pg:"description,use_zero"`
	HeaderImage           *string `pg:"headerImage"`
	MainColor             string  `pg:"mainColor,use_zero"`
	DisplayComments       bool    `pg:"displayComments,use_zero"`
	DisplayCategories     bool    `pg:"displayCategories,use_zero"`
	DisplayTags           bool    `pg:"displayTags,use_zero"`
	DisplayPopularEntries bool    `pg:"displayPopularEntries,use_zero"`
	DisplayLastEntries    bool    `pg:"displayLastEntries,use_zero"`
	DisplayArchive        bool    `pg:"displayArchive,use_zero"`
	DisqusAPISecret       string  `pg:"disqusApiSecret,use_zero"`
	DisqusShortname       string  `pg:"disqusShortname,use_zero"`
	NumEntriesPage        int     `pg:"numEntriesPage,use_zero"`
	NumLastEntries        int     `pg:"numLastEntries,use_zero"`
	NumPopularEntries     int     `pg:"numPopularEntries,use_zero"`
	NumTagsEntryHeader    int     `pg:"numTagsEntryHeader,use_zero"`
	ShortFeedDescription  bool    `pg:"shortFeedDescription,use_zero"`

	Page *Page `pg:"fk:pageId,rel:has-one"`
}

type EntryPage struct {
	tableName struct{} `pg:"entryPages,alias:t,discard_unknown_columns"`

	ID          int       `pg:"pageId,pk"`
	Body        string    `pg:"body,use_zero"`
	Excerpt     string    `pg:"excerpt,use_zero"`
	Date        time.Time `pg:"date,use_zero"`
	HeaderImage *string   `pg:"headerImage"`
	NumComments int       `pg:"numComments,use_zero"`

	Page *Page `pg:"fk:pageId,rel:has-one"`
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int    `pg:"categoryId,pk"`
	Name        string `pg:"name,use_zero"`
	Slug        string `pg:"slug,use_zero"`
	ParentID    *int   `pg:"parentId"`
	Description string `pg:"description,use_zero"`
}

type CategoryEntry struct {
	tableName struct{} `pg:"categoryEntries,alias:t,discard_unknown_columns"`

	ID         int `pg:"categoryEntryId,pk"`
	CategoryID int `pg:"categoryId,use_zero"`
	PageID     int `pg:"pageId,use_zero"`

	Category *Category `pg:"fk:categoryId,rel:has-one"`
}

type Tag struct {
	tableName struct{} `pg:"tags,alias:t,discard_unknown_columns"`

	ID   int    `pg:"tagId,pk"`
	Name string `pg:"name,use_zero"`
	Slug string `pg:"slug,use_zero"`
}

type TagEntry struct {
	tableName struct{} `pg:"tagEntries,alias:t,discard_unknown_columns"`

	ID     int `pg:"tagEntryId,pk"`
	TagID  int `pg:"tagId,use_zero"`
	PageID int `pg:"pageId,use_zero"`

	Tag *Tag `pg:"fk:tagId,rel:has-one"`
}

type EntryRelation struct {
	tableName struct{} `pg:"entryRelations,alias:t,discard_unknown_columns"`

	ID         int `pg:"entryRelationId,pk"`
	FromPageID int `pg:"fromPageId,use_zero"`
	ToPageID   int `pg:"toPageId,use_zero"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}
