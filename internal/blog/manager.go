package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gorilla/feeds"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

var ErrCommentsDisabled = errors.New("blog has no disqus credentials")

const sitemapBatch = 500

// CommentCounter reports the number of comments of a thread on a comment service.
type CommentCounter interface {
	CommentCount(ctx context.Context, forum, apiSecret, threadIdent string) (int, error)
}

type Manager struct {
	db       *db.Repository
	site     Site
	renderer *Renderer
	comments CommentCounter
}

func NewManager(repo *db.Repository, site Site, comments CommentCounter) *Manager {
	return &Manager{
		db:       repo,
		site:     site,
		renderer: NewRenderer(),
		comments: comments,
	}
}

func (m *Manager) Site() Site {
	return m.site
}

// Resolve maps a request path to a page of the tree. It returns nil when
// nothing is served at path.
func (m *Manager) Resolve(ctx context.Context, path string) (*Resolution, error) {
	route, ok := ParseRoute(path, m.site.PathPrefix)
	if !ok {
		return nil, nil
	}

	root, err := m.db.RootPage(ctx, m.site.RootPageID)
	if err != nil {
		return nil, fmt.Errorf("db get root page: %w", err)
	} else if root == nil || !root.Live {
		return nil, nil
	}

	switch route.Kind {
	case RouteEntry:
		return m.resolveEntry(ctx, route, root)
	case RouteFeed:
		blog, rc, err := m.blogAt(ctx, route.BlogPath, root)
		if err != nil || blog == nil {
			return nil, err
		}
		return &Resolution{Page: *blog, Root: root, Routing: rc, Feed: true}, nil
	default:
		return m.resolvePage(ctx, route.Path, root)
	}
}

func (m *Manager) resolveEntry(ctx context.Context, route Route, root *db.Page) (*Resolution, error) {
	blog, rc, err := m.blogAt(ctx, route.BlogPath, root)
	if err != nil || blog == nil {
		return nil, err
	}

	from, to, ok := route.DayWindow(m.site.location())
	if !ok {
		return nil, nil
	}

	entry, err := m.db.EntryBySlugAndDate(ctx, blog.ID, route.Slug, from, to)
	if err != nil {
		return nil, fmt.Errorf("db get entry: %w", err)
	} else if entry == nil {
		return nil, nil
	}

	page, err := m.entryPage(ctx, entry, rc)
	if err != nil {
		return nil, err
	}

	return &Resolution{Page: page, Root: root, Routing: rc}, nil
}

// blogAt loads the live blog mounted at blogPath below root.
func (m *Manager) blogAt(ctx context.Context, blogPath string, root *db.Page) (*BlogPage, RoutingContext, error) {
	pageID := root.ID
	if blogPath != "" {
		page, err := m.db.LivePageByURLPaths(ctx, []string{root.URLPath + blogPath + "/"})
		if err != nil {
			return nil, RoutingContext{}, fmt.Errorf("db get blog page: %w", err)
		} else if page == nil {
			return nil, RoutingContext{}, nil
		}
		pageID = page.ID
	}

	blog, err := m.db.BlogPageByID(ctx, pageID)
	if err != nil {
		return nil, RoutingContext{}, fmt.Errorf("db get blog page: %w", err)
	} else if blog == nil || !blog.Page.Live {
		return nil, RoutingContext{}, nil
	}

	rc, err := m.site.RoutingContext(blog.Page, root)
	if err != nil {
		return nil, RoutingContext{}, err
	}

	b := NewBlogPage(blog)
	return &b, rc, nil
}

func (m *Manager) resolvePage(ctx context.Context, path string, root *db.Page) (*Resolution, error) {
	var segs []string
	if path != "" {
		segs = strings.Split(path, "/")
	}

	candidates := make([]string, 0, len(segs)+1)
	for i := 0; i <= len(segs); i++ {
		candidate := root.URLPath
		if i > 0 {
			candidate += strings.Join(segs[:i], "/") + "/"
		}
		candidates = append(candidates, candidate)
	}

	node, err := m.db.LivePageByURLPaths(ctx, candidates)
	if err != nil {
		return nil, fmt.Errorf("db get page by path: %w", err)
	} else if node == nil {
		return nil, nil
	}

	rest := strings.Trim(strings.TrimPrefix(root.URLPath+path+"/", node.URLPath), "/")

	switch node.Kind {
	case db.KindBlog:
		sub, ok := ParseSubRoute(rest)
		if !ok {
			return nil, nil
		}
		blog, rc, err := m.blogByNode(ctx, node, root)
		if err != nil || blog == nil {
			return nil, err
		}
		return &Resolution{Page: *blog, Root: root, Routing: rc, Sub: sub}, nil
	case db.KindEntry:
		if rest != "" {
			return nil, nil
		}
		entry, err := m.Specific(ctx, node)
		if err != nil || entry == nil {
			return nil, err
		}
		link, err := m.EntryURL(ctx, node.ID)
		if err != nil || link == nil {
			return nil, err
		}
		return &Resolution{Page: entry, Root: root, Redirect: link.URL}, nil
	default:
		if rest != "" {
			return nil, nil
		}
		return &Resolution{Page: HomePage{Page: node}, Root: root}, nil
	}
}

func (m *Manager) blogByNode(ctx context.Context, node, root *db.Page) (*BlogPage, RoutingContext, error) {
	blog, err := m.db.BlogPageByID(ctx, node.ID)
	if err != nil {
		return nil, RoutingContext{}, fmt.Errorf("db get blog page: %w", err)
	} else if blog == nil {
		return nil, RoutingContext{}, nil
	}

	rc, err := m.site.RoutingContext(blog.Page, root)
	if err != nil {
		return nil, RoutingContext{}, err
	}

	b := NewBlogPage(blog)
	return &b, rc, nil
}

// Specific loads the kind-specific variant of a tree node.
func (m *Manager) Specific(ctx context.Context, node *db.Page) (Page, error) {
	switch node.Kind {
	case db.KindBlog:
		blog, err := m.db.BlogPageByID(ctx, node.ID)
		if err != nil {
			return nil, fmt.Errorf("db get blog page: %w", err)
		} else if blog == nil {
			return nil, nil
		}
		return NewBlogPage(blog), nil
	case db.KindEntry:
		entry, err := m.db.EntryByID(ctx, node.ID)
		if err != nil {
			return nil, fmt.Errorf("db get entry page: %w", err)
		} else if entry == nil {
			return nil, nil
		}
		list := EntryPages{NewEntryPage(entry)}
		if err := m.fillLinks(ctx, list); err != nil {
			return nil, err
		}
		return list[0], nil
	default:
		return HomePage{Page: node}, nil
	}
}

func (m *Manager) entryPage(ctx context.Context, entry *db.EntryPage, rc RoutingContext) (EntryPage, error) {
	list := EntryPages{NewEntryPage(entry)}
	if err := m.decorate(ctx, list, rc); err != nil {
		return EntryPage{}, err
	}
	return list[0], nil
}

// decorate attaches categories, tags and permalinks to entries of one blog.
func (m *Manager) decorate(ctx context.Context, list EntryPages, rc RoutingContext) error {
	if err := m.fillLinks(ctx, list); err != nil {
		return err
	}

	if err := list.SetPermalinks(rc); err != nil {
		return fmt.Errorf("failed to build permalinks: %w", err)
	}

	return nil
}

func (m *Manager) fillLinks(ctx context.Context, list EntryPages) error {
	if len(list) == 0 {
		return nil
	}

	ids := list.IDs()
	tags, err := m.db.TagEntriesByPageIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to attach tags to entries: %w", err)
	}
	list.SetTags(tags)

	categories, err := m.db.CategoryEntriesByPageIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to attach categories to entries: %w", err)
	}
	list.SetCategories(categories)

	return nil
}

// BlogView assembles the listing of a resolved blog page. pageNum starts at 1.
func (m *Manager) BlogView(ctx context.Context, res *Resolution, pageNum int, query string) (*BlogView, error) {
	blog, ok := res.Page.(BlogPage)
	if !ok {
		return nil, fmt.Errorf("page %d is not a blog", res.Page.Node().ID)
	}

	search, err := m.blogSearch(blog.ID, res.Sub, query)
	if err != nil {
		return nil, err
	}

	view := &BlogView{
		Blog:       blog,
		URL:        res.Routing.IndexURL(),
		FeedURL:    res.Routing.FeedURL(),
		SearchType: res.Sub.Kind,
		SearchTerm: res.Sub.Term,
		Page:       max(pageNum, 1),
	}
	if res.Sub.Kind == SubSearch {
		view.SearchTerm = query
	}

	perPage := max(blog.NumEntriesPage, 1)
	total, err := m.db.EntriesCount(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("db get entries count: %w", err)
	}
	view.Total = total
	view.PageCount = (total + perPage - 1) / perPage

	entries, err := m.db.Entries(ctx, search, perPage, (view.Page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("db get entries: %w", err)
	}
	list := NewEntryPages(entries)
	if err := m.decorate(ctx, list, res.Routing); err != nil {
		return nil, err
	}
	view.Entries = list

	if err := m.fillWidgets(ctx, view, res.Routing); err != nil {
		return nil, err
	}

	return view, nil
}

func (m *Manager) blogSearch(blogID int, sub SubRoute, query string) (db.EntrySearch, error) {
	search := db.EntrySearch{BlogPageID: &blogID}

	switch sub.Kind {
	case SubTag:
		search.TagSlug = &sub.Term
	case SubCategory:
		search.CategorySlug = &sub.Term
	case SubAuthor:
		search.Owner = &sub.Term
	case SubSearch:
		if q := strings.TrimSpace(query); q != "" {
			search.Query = &q
		}
	case SubDate:
		from, to := sub.Window(m.site.location())
		search.From, search.To = &from, &to
	case SubIndex:
	default:
		return search, fmt.Errorf("unknown blog route %q", sub.Kind)
	}

	return search, nil
}

func (m *Manager) fillWidgets(ctx context.Context, view *BlogView, rc RoutingContext) error {
	blog := view.Blog
	blogSearch := db.EntrySearch{BlogPageID: &blog.ID}

	if blog.DisplayPopularEntries && blog.NumPopularEntries > 0 {
		popular, err := m.db.PopularEntries(ctx, blog.ID, blog.NumPopularEntries)
		if err != nil {
			return fmt.Errorf("db get popular entries: %w", err)
		}
		list := NewEntryPages(popular)
		if err := list.SetPermalinks(rc); err != nil {
			return err
		}
		view.PopularEntries = list
	}

	if blog.DisplayLastEntries && blog.NumLastEntries > 0 {
		last, err := m.db.Entries(ctx, blogSearch, blog.NumLastEntries, 0)
		if err != nil {
			return fmt.Errorf("db get last entries: %w", err)
		}
		list := NewEntryPages(last)
		if err := list.SetPermalinks(rc); err != nil {
			return err
		}
		view.LastEntries = list
	}

	if blog.DisplayArchive {
		months, err := m.db.EntryArchive(ctx, blog.ID, m.site.location().String())
		if err != nil {
			return fmt.Errorf("db get archive: %w", err)
		}
		view.Archive = NewArchiveList(months)
	}

	if blog.DisplayCategories {
		uses, err := m.db.CategoryUses(ctx, blog.ID)
		if err != nil {
			return fmt.Errorf("db get category uses: %w", err)
		}
		list := make([]Category, len(uses))
		for i := range uses {
			list[i] = NewCategoryFromUse(&uses[i])
		}
		view.Categories = NewCategoryTree(list).Roots()
	}

	if blog.DisplayTags {
		uses, err := m.db.TagUses(ctx, blog.ID)
		if err != nil {
			return fmt.Errorf("db get tag uses: %w", err)
		}
		view.Tags = NewTagUses(uses)
	}

	return nil
}

// EntryView assembles the render context of a resolved entry.
func (m *Manager) EntryView(ctx context.Context, res *Resolution) (*EntryView, error) {
	entry, ok := res.Page.(EntryPage)
	if !ok {
		return nil, fmt.Errorf("page %d is not an entry", res.Page.Node().ID)
	}

	blog, err := m.db.BlogPageByID(ctx, *entry.Node().ParentID)
	if err != nil {
		return nil, fmt.Errorf("db get blog page: %w", err)
	} else if blog == nil {
		return nil, nil
	}

	related, err := m.db.RelatedEntries(ctx, entry.ID)
	if err != nil {
		return nil, fmt.Errorf("db get related entries: %w", err)
	}
	relatedList := NewEntryPages(related)
	if err := m.decorateMixed(ctx, relatedList, res.Root); err != nil {
		return nil, err
	}

	view := &EntryView{
		Entry:   entry,
		Blog:    NewBlogPage(blog),
		BlogURL: res.Routing.IndexURL(),
		FeedURL: res.Routing.FeedURL(),
		Related: relatedList,
	}

	view.HeaderTags = entry.Tags
	if n := blog.NumTagsEntryHeader; n >= 0 && len(view.HeaderTags) > n {
		view.HeaderTags = view.HeaderTags[:n]
	}

	return view, nil
}

// decorateMixed sets permalinks for entries that may belong to different blogs.
func (m *Manager) decorateMixed(ctx context.Context, list EntryPages, root *db.Page) error {
	contexts := make(map[int]RoutingContext)
	for i := range list {
		blogID := *list[i].Node().ParentID
		rc, ok := contexts[blogID]
		if !ok {
			blog, err := m.db.PageByID(ctx, blogID)
			if err != nil {
				return fmt.Errorf("db get blog page: %w", err)
			} else if blog == nil {
				continue
			}
			if rc, err = m.site.RoutingContext(blog, root); err != nil {
				return err
			}
			contexts[blogID] = rc
		}

		url, err := list[i].URL(rc)
		if err != nil {
			return err
		}
		list[i].Permalink = url
	}

	return nil
}

// HomeView lists the live blogs directly below the home page.
func (m *Manager) HomeView(ctx context.Context, res *Resolution) (*HomeView, error) {
	home, ok := res.Page.(HomePage)
	if !ok {
		return nil, fmt.Errorf("page %d is not a home page", res.Page.Node().ID)
	}

	children, err := m.db.LiveChildPages(ctx, home.ID, db.KindBlog)
	if err != nil {
		return nil, fmt.Errorf("db get home children: %w", err)
	}

	ids := make([]int, 0, len(children))
	for _, child := range children {
		ids = append(ids, child.ID)
	}

	blogs, err := m.db.BlogPagesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("db get blogs: %w", err)
	}

	view := &HomeView{Home: home, Blogs: []BlogLink{}}
	for _, child := range children {
		blog, ok := blogs[child.ID]
		if !ok {
			continue
		}
		link, err := m.blogLink(&blog, res.Root)
		if err != nil {
			return nil, err
		}
		view.Blogs = append(view.Blogs, *link)
	}

	return view, nil
}

func (m *Manager) blogLink(blog *db.BlogPage, root *db.Page) (*BlogLink, error) {
	rc, err := m.site.RoutingContext(blog.Page, root)
	if err != nil {
		return nil, err
	}

	return &BlogLink{
		Blog:    NewBlogPage(blog),
		URL:     rc.IndexURL(),
		FeedURL: rc.FeedURL(),
	}, nil
}

// BlogLink returns the public URLs of a blog.
func (m *Manager) BlogLink(ctx context.Context, blogID int) (*BlogLink, error) {
	blog, err := m.db.BlogPageByID(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("db get blog page: %w", err)
	} else if blog == nil {
		return nil, nil
	}

	root, err := m.root(ctx)
	if err != nil || root == nil {
		return nil, err
	}

	return m.blogLink(blog, root)
}

// EntryURL computes the permalink of an entry by id.
func (m *Manager) EntryURL(ctx context.Context, entryID int) (*EntryLink, error) {
	entry, err := m.db.EntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("db get entry page: %w", err)
	} else if entry == nil {
		return nil, nil
	}

	blog, err := m.db.PageByID(ctx, *entry.Page.ParentID)
	if err != nil {
		return nil, fmt.Errorf("db get blog page: %w", err)
	} else if blog == nil {
		return nil, nil
	}

	root, err := m.root(ctx)
	if err != nil || root == nil {
		return nil, err
	}

	rc, err := m.site.RoutingContext(blog, root)
	if err != nil {
		return nil, err
	}

	url, err := rc.EntryURL(entry.Date, entry.Page.Slug)
	if err != nil {
		return nil, err
	}

	return &EntryLink{
		EntryID:  entry.ID,
		URL:      url,
		Location: m.site.AbsoluteURL(url),
		FeedURL:  rc.FeedURL(),
	}, nil
}

func (m *Manager) root(ctx context.Context) (*db.Page, error) {
	root, err := m.db.RootPage(ctx, m.site.RootPageID)
	if err != nil {
		return nil, fmt.Errorf("db get root page: %w", err)
	}
	return root, nil
}

// Feed builds the feed of a resolved blog.
func (m *Manager) Feed(ctx context.Context, res *Resolution) (*feeds.Feed, error) {
	blog, ok := res.Page.(BlogPage)
	if !ok {
		return nil, fmt.Errorf("page %d is not a blog", res.Page.Node().ID)
	}

	entries, err := m.db.Entries(ctx, db.EntrySearch{BlogPageID: &blog.ID}, feedLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("db get feed entries: %w", err)
	}

	list := NewEntryPages(entries)
	if err := list.SetPermalinks(res.Routing); err != nil {
		return nil, err
	}

	return BuildFeed(m.site, blog, res.Routing, list, m.renderer)
}

// Sitemap lists every live entry of every live blog under the root.
func (m *Manager) Sitemap(ctx context.Context) ([]SitemapEntry, error) {
	root, err := m.root(ctx)
	if err != nil || root == nil {
		return nil, err
	}

	blogs, err := m.db.LiveBlogPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get blogs: %w", err)
	}

	result := []SitemapEntry{}
	for i := range blogs {
		blog := blogs[i].Page
		if _, ok := PagePath(blog.URLPath, root.URLPath); !ok {
			continue
		}

		search := db.EntrySearch{BlogPageID: &blog.ID}
		for offset := 0; ; offset += sitemapBatch {
			entries, err := m.db.Entries(ctx, search, sitemapBatch, offset)
			if err != nil {
				return nil, fmt.Errorf("db get sitemap entries: %w", err)
			}

			for j := range entries {
				record, err := m.site.SitemapEntry(&entries[j], blog, root)
				if err != nil {
					return nil, err
				}
				result = append(result, record)
			}

			if len(entries) < sitemapBatch {
				break
			}
		}
	}

	return result, nil
}

func (m *Manager) Categories(ctx context.Context) ([]CategoryNode, error) {
	list, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategoryTree(NewCategories(list)).Roots(), nil
}

// SaveCategory validates and stores a category. A zero ID creates one. It
// returns nil when the category to update does not exist.
func (m *Manager) SaveCategory(ctx context.Context, c db.Category) (*Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Slug = strings.TrimSpace(c.Slug)
	if err := validateCategoryFields(c); err != nil {
		return nil, err
	}

	if c.ID != 0 {
		existing, err := m.db.CategoryByID(ctx, c.ID)
		if err != nil {
			return nil, fmt.Errorf("db get category: %w", err)
		} else if existing == nil {
			return nil, nil
		}
	}

	list, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	if err := NewCategoryTree(NewCategories(list)).ValidateParent(c.ID, c.ParentID); err != nil {
		return nil, err
	}

	if c.Slug == "" {
		base := UniqueSlug(c.Name, nil)
		taken, err := m.db.CategorySlugsLike(ctx, base)
		if err != nil {
			return nil, fmt.Errorf("db get category slugs: %w", err)
		}
		c.Slug = UniqueSlug(c.Name, taken)
	}

	if err := m.db.SaveCategory(ctx, &c); errors.Is(err, db.ErrConflict) {
		return nil, ErrDuplicateCategory
	} else if err != nil {
		return nil, fmt.Errorf("db save category: %w", err)
	}

	saved := NewCategory(&c)
	return &saved, nil
}

func (m *Manager) DeleteCategory(ctx context.Context, categoryID int) (bool, error) {
	ok, err := m.db.DeleteCategory(ctx, categoryID)
	if err != nil {
		return false, fmt.Errorf("db delete category: %w", err)
	}

	return ok, nil
}

func (m *Manager) Tags(ctx context.Context) ([]Tag, error) {
	list, err := m.db.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get tags: %w", err)
	}

	return NewTags(list), nil
}

// SyncComments refreshes the comment counter of an entry from the comment
// service configured on its blog. It returns nil when the entry does not exist.
func (m *Manager) SyncComments(ctx context.Context, entryID int) (*CommentSync, error) {
	entry, err := m.db.EntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("db get entry page: %w", err)
	} else if entry == nil {
		return nil, nil
	}

	blog, err := m.db.BlogPageByID(ctx, *entry.Page.ParentID)
	if err != nil {
		return nil, fmt.Errorf("db get blog page: %w", err)
	} else if blog == nil {
		return nil, nil
	}

	if blog.DisqusShortname == "" || blog.DisqusAPISecret == "" || m.comments == nil {
		return nil, ErrCommentsDisabled
	}

	count, err := m.comments.CommentCount(ctx, blog.DisqusShortname, blog.DisqusAPISecret, fmt.Sprintf("ident:%d", entry.ID))
	if err != nil {
		return nil, fmt.Errorf("fetch comment count: %w", err)
	}

	if _, err := m.db.UpdateNumComments(ctx, entry.ID, count); err != nil {
		return nil, fmt.Errorf("db update comments count: %w", err)
	}

	return &CommentSync{EntryID: entry.ID, NumComments: count}, nil
}
