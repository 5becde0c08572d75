package rpc

import (
	"time"
)

type CategoryInput struct {
	//categoryId existing category, omit to create
	CategoryID int `json:"categoryId,omitempty"`
	//name category name, unique
	Name string `json:"name"`
	//slug optional slug, derived from name when empty
	Slug string `json:"slug,omitempty"`
	//parentId optional parent category
	ParentID *int `json:"parentId,omitempty"`
	//description optional description
	Description string `json:"description,omitempty"`
}

type Category struct {
	CategoryID  int        `json:"categoryId"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	ParentID    *int       `json:"parentId,omitempty"`
	Description string     `json:"description,omitempty"`
	Children    []Category `json:"children,omitempty"`
}

type Tag struct {
	TagID int    `json:"tagId"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
}

type EntryLink struct {
	EntryID  int    `json:"entryId"`
	URL      string `json:"url"`
	Location string `json:"location"`
	FeedURL  string `json:"feedUrl"`
}

type BlogLink struct {
	BlogID  int    `json:"blogId"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	FeedURL string `json:"feedUrl"`
}

type SitemapURL struct {
	Location string     `json:"location"`
	LastMod  *time.Time `json:"lastMod,omitempty"`
}
