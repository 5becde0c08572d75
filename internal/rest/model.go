package rest

import "time"

type Category struct {
	CategoryID  int        `json:"categoryId"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	ParentID    *int       `json:"parentId,omitempty"`
	Description string     `json:"description,omitempty"`
	Uses        int        `json:"uses,omitempty"`
	Children    []Category `json:"children,omitempty"`
}

type CategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	ParentID    *int   `json:"parentId"`
	Description string `json:"description"`
}

type Tag struct {
	TagID int    `json:"tagId"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Uses  int    `json:"uses,omitempty"`
}

type Entry struct {
	EntryID         int        `json:"entryId"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Owner           string     `json:"owner"`
	URL             string     `json:"url"`
	Date            time.Time  `json:"date"`
	Excerpt         string     `json:"excerpt"`
	Body            string     `json:"body,omitempty"`
	HeaderImage     *string    `json:"headerImage,omitempty"`
	NumComments     int        `json:"numComments"`
	LastPublishedAt *time.Time `json:"lastPublishedAt,omitempty"`
	Categories      []Category `json:"categories"`
	Tags            []Tag      `json:"tags"`
}

type Blog struct {
	BlogID                int     `json:"blogId"`
	Title                 string  `json:"title"`
	Description           string  `json:"description"`
	HeaderImage           *string `json:"headerImage,omitempty"`
	MainColor             string  `json:"mainColor"`
	DisplayComments       bool    `json:"displayComments"`
	DisplayCategories     bool    `json:"displayCategories"`
	DisplayTags           bool    `json:"displayTags"`
	DisplayPopularEntries bool    `json:"displayPopularEntries"`
	DisplayLastEntries    bool    `json:"displayLastEntries"`
	DisplayArchive        bool    `json:"displayArchive"`
	DisqusShortname       string  `json:"disqusShortname,omitempty"`
	NumEntriesPage        int     `json:"numEntriesPage"`
}

type ArchiveMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

type BlogView struct {
	Blog           Blog           `json:"blog"`
	URL            string         `json:"url"`
	FeedURL        string         `json:"feedUrl"`
	SearchType     string         `json:"searchType,omitempty"`
	SearchTerm     string         `json:"searchTerm,omitempty"`
	Entries        []Entry        `json:"entries"`
	Total          int            `json:"total"`
	Page           int            `json:"page"`
	PageCount      int            `json:"pageCount"`
	PopularEntries []Entry        `json:"popularEntries,omitempty"`
	LastEntries    []Entry        `json:"lastEntries,omitempty"`
	Archive        []ArchiveMonth `json:"archive,omitempty"`
	Categories     []Category     `json:"categories,omitempty"`
	Tags           []Tag          `json:"tags,omitempty"`
}

type EntryView struct {
	Entry      Entry   `json:"entry"`
	Blog       Blog    `json:"blog"`
	BlogURL    string  `json:"blogUrl"`
	FeedURL    string  `json:"feedUrl"`
	HeaderTags []Tag   `json:"headerTags"`
	Related    []Entry `json:"related"`
}

type BlogLink struct {
	Blog    Blog   `json:"blog"`
	URL     string `json:"url"`
	FeedURL string `json:"feedUrl"`
}

type HomeView struct {
	PageID int        `json:"pageId"`
	Title  string     `json:"title"`
	Blogs  []BlogLink `json:"blogs"`
}

type EntryLink struct {
	EntryID  int    `json:"entryId"`
	URL      string `json:"url"`
	Location string `json:"location"`
	FeedURL  string `json:"feedUrl"`
}

type CommentSync struct {
	EntryID     int `json:"entryId"`
	NumComments int `json:"numComments"`
}
