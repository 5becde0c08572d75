package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

const (
	KindHome  = "home"
	KindBlog  = "blog"
	KindEntry = "entry"
)

// ErrConflict is returned when a write violates a unique or foreign key constraint.
var ErrConflict = errors.New("constraint violation")

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// EntrySearch narrows the live entries returned by Entries and EntriesCount.
// Nil fields are not applied.
type EntrySearch struct {
	BlogPageID   *int
	TagSlug      *string
	CategorySlug *string
	Owner        *string
	Query        *string
	From, To     *time.Time
}

// ArchiveMonth is one row of the per-month entry archive.
type ArchiveMonth struct {
	tableName struct{} `pg:",discard_unknown_columns"`

	Year  int `pg:"year"`
	Month int `pg:"month"`
	Count int `pg:"count"`
}

// CategoryUse is a category annotated with the number of entries using it.
type CategoryUse struct {
	tableName struct{} `pg:",discard_unknown_columns"`

	ID       int    `pg:"categoryId"`
	Name     string `pg:"name"`
	Slug     string `pg:"slug"`
	ParentID *int   `pg:"parentId"`
	Uses     int    `pg:"uses"`
}

// TagUse is a tag annotated with the number of entries using it.
type TagUse struct {
	tableName struct{} `pg:",discard_unknown_columns"`

	ID   int    `pg:"tagId"`
	Name string `pg:"name"`
	Slug string `pg:"slug"`
	Uses int    `pg:"uses"`
}

// RootPage returns the site root. With rootPageID == 0 the first page without
// a parent is used.
func (r *Repository) RootPage(ctx context.Context, rootPageID int) (*Page, error) {
	page := &Page{}
	query := r.db.ModelContext(ctx, page)
	if rootPageID > 0 {
		query = query.Where(`"t"."pageId" = ?`, rootPageID)
	} else {
		query = query.Where(`"t"."parentId" IS NULL`).OrderExpr(`"t"."pageId" ASC`).Limit(1)
	}

	err := query.Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get root page: %w", err)
	}

	return page, nil
}

func (r *Repository) PageByID(ctx context.Context, pageID int) (*Page, error) {
	page := &Page{}
	err := r.db.ModelContext(ctx, page).
		Where(`"t"."pageId" = ?`, pageID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get page by id: %w", err)
	}

	return page, nil
}

// LivePageByURLPaths returns the live page with the longest urlPath among the candidates.
func (r *Repository) LivePageByURLPaths(ctx context.Context, urlPaths []string) (*Page, error) {
	if len(urlPaths) == 0 {
		return nil, nil
	}

	page := &Page{}
	err := r.db.ModelContext(ctx, page).
		Where(`"t"."urlPath" IN (?)`, pg.In(urlPaths)).
		Where(`"t"."live" = TRUE`).
		OrderExpr(`length("t"."urlPath") DESC`).
		Limit(1).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get page by url path: %w", err)
	}

	return page, nil
}

// LiveChildPages returns live children of a page, optionally restricted to one kind.
func (r *Repository) LiveChildPages(ctx context.Context, parentID int, kind string) ([]Page, error) {
	var pages []Page
	query := r.db.ModelContext(ctx, &pages).
		Where(`"t"."parentId" = ?`, parentID).
		Where(`"t"."live" = TRUE`)
	if kind != "" {
		query = query.Where(`"t"."kind" = ?`, kind)
	}

	err := query.OrderExpr(`"t"."title" ASC`).Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query child pages: %w", err)
	}

	return pages, nil
}

func (r *Repository) BlogPageByID(ctx context.Context, pageID int) (*BlogPage, error) {
	blog := &BlogPage{}
	err := r.db.ModelContext(ctx, blog).
		Relation(Columns.BlogPage.Page).
		Where(`"t"."pageId" = ?`, pageID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get blog page by id: %w", err)
	}

	return blog, nil
}

// BlogPagesByIDs returns blog pages with their tree node, keyed by page id.
func (r *Repository) BlogPagesByIDs(ctx context.Context, pageIDs []int) (map[int]BlogPage, error) {
	result := make(map[int]BlogPage, len(pageIDs))
	if len(pageIDs) == 0 {
		return result, nil
	}

	var blogs []BlogPage
	err := r.db.ModelContext(ctx, &blogs).
		Relation(Columns.BlogPage.Page).
		Where(`"t"."pageId" IN (?)`, pg.In(pageIDs)).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query blog pages by ids: %w", err)
	}

	for _, blog := range blogs {
		result[blog.ID] = blog
	}

	return result, nil
}

func (r *Repository) LiveBlogPages(ctx context.Context) ([]BlogPage, error) {
	var blogs []BlogPage
	err := r.db.ModelContext(ctx, &blogs).
		Relation(Columns.BlogPage.Page).
		Where(`"page"."live" = TRUE`).
		OrderExpr(`"page"."urlPath" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query blog pages: %w", err)
	}

	return blogs, nil
}

// Entries retrieves live entries matching the search, newest first, with pagination.
func (r *Repository) Entries(ctx context.Context, search EntrySearch, limit, offset int) ([]EntryPage, error) {
	if limit < 1 || offset < 0 {
		return nil, fmt.Errorf(
			"limit must be greater than 0 and offset must not be negative: limit=%d, offset=%d",
			limit, offset,
		)
	}

	var entries []EntryPage
	query := r.db.ModelContext(ctx, &entries).
		Relation(Columns.EntryPage.Page)

	err := applyEntrySearch(query, search).
		OrderExpr(`"t"."date" DESC`).
		OrderExpr(`"t"."pageId" DESC`).
		Limit(limit).
		Offset(offset).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}

	return entries, nil
}

func (r *Repository) EntriesCount(ctx context.Context, search EntrySearch) (int, error) {
	query := r.db.ModelContext(ctx, (*EntryPage)(nil)).
		Relation(Columns.EntryPage.Page)

	count, err := applyEntrySearch(query, search).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get entries count: %w", err)
	}

	return count, nil
}

func applyEntrySearch(query *orm.Query, search EntrySearch) *orm.Query {
	query = query.
		Where(`"page"."live" = TRUE`).
		Where(`"page"."kind" = ?`, KindEntry)

	if search.BlogPageID != nil {
		query = query.Where(`"page"."parentId" = ?`, *search.BlogPageID)
	}
	if search.TagSlug != nil {
		query = query.Where(`EXISTS (
			SELECT 1 FROM "tagEntries" AS "te"
			JOIN "tags" AS "tg" ON "tg"."tagId" = "te"."tagId"
			WHERE "te"."pageId" = "t"."pageId" AND "tg"."slug" = ?)`, *search.TagSlug)
	}
	if search.CategorySlug != nil {
		query = query.Where(`EXISTS (
			SELECT 1 FROM "categoryEntries" AS "ce"
			JOIN "categories" AS "c" ON "c"."categoryId" = "ce"."categoryId"
			WHERE "ce"."pageId" = "t"."pageId" AND "c"."slug" = ?)`, *search.CategorySlug)
	}
	if search.Owner != nil {
		query = query.Where(`"page"."owner" = ?`, *search.Owner)
	}
	if search.Query != nil {
		pattern := "%" + *search.Query + "%"
		query = query.Where(`("page"."title" ILIKE ?0 OR "t"."body" ILIKE ?0 OR "t"."excerpt" ILIKE ?0)`, pattern)
	}
	if search.From != nil {
		query = query.Where(`"t"."date" >= ?`, *search.From)
	}
	if search.To != nil {
		query = query.Where(`"t"."date" < ?`, *search.To)
	}

	return query
}

// PopularEntries returns the most commented live entries of a blog.
func (r *Repository) PopularEntries(ctx context.Context, blogPageID, limit int) ([]EntryPage, error) {
	if limit < 1 {
		return []EntryPage{}, nil
	}

	var entries []EntryPage
	err := r.db.ModelContext(ctx, &entries).
		Relation(Columns.EntryPage.Page).
		Where(`"page"."parentId" = ?`, blogPageID).
		Where(`"page"."live" = TRUE`).
		OrderExpr(`"t"."numComments" DESC`).
		OrderExpr(`"t"."date" DESC`).
		Limit(limit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query popular entries: %w", err)
	}

	return entries, nil
}

// EntryByID returns an entry regardless of its live flag.
func (r *Repository) EntryByID(ctx context.Context, pageID int) (*EntryPage, error) {
	entry := &EntryPage{}
	err := r.db.ModelContext(ctx, entry).
		Relation(Columns.EntryPage.Page).
		Where(`"t"."pageId" = ?`, pageID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get entry by id: %w", err)
	}

	return entry, nil
}

// EntryBySlugAndDate looks up a live entry of a blog by slug, with its date in [from, to).
func (r *Repository) EntryBySlugAndDate(ctx context.Context, blogPageID int, slug string, from, to time.Time) (*EntryPage, error) {
	entry := &EntryPage{}
	err := r.db.ModelContext(ctx, entry).
		Relation(Columns.EntryPage.Page).
		Where(`"page"."parentId" = ?`, blogPageID).
		Where(`"page"."slug" = ?`, slug).
		Where(`"page"."live" = TRUE`).
		Where(`"t"."date" >= ?`, from).
		Where(`"t"."date" < ?`, to).
		Limit(1).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get entry by slug and date: %w", err)
	}

	return entry, nil
}

// RelatedEntries returns the live entries the given entry points to.
func (r *Repository) RelatedEntries(ctx context.Context, pageID int) ([]EntryPage, error) {
	var entries []EntryPage
	err := r.db.ModelContext(ctx, &entries).
		Relation(Columns.EntryPage.Page).
		Join(`JOIN "entryRelations" AS "er" ON "er"."toPageId" = "t"."pageId"`).
		Where(`"er"."fromPageId" = ?`, pageID).
		Where(`"page"."live" = TRUE`).
		OrderExpr(`"t"."date" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query related entries: %w", err)
	}

	return entries, nil
}

// EntryArchive counts live entries of a blog per month in the given time zone.
func (r *Repository) EntryArchive(ctx context.Context, blogPageID int, timeZone string) ([]ArchiveMonth, error) {
	var months []ArchiveMonth
	_, err := r.db.QueryContext(ctx, &months, `
		SELECT date_part('year', "e"."date" AT TIME ZONE ?0)::int AS "year",
		       date_part('month', "e"."date" AT TIME ZONE ?0)::int AS "month",
		       count(*) AS "count"
		FROM "entryPages" AS "e"
		JOIN "pages" AS "p" ON "p"."pageId" = "e"."pageId"
		WHERE "p"."parentId" = ?1 AND "p"."live" = TRUE
		GROUP BY 1, 2
		ORDER BY 1 DESC, 2 DESC`, timeZone, blogPageID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entry archive: %w", err)
	}

	return months, nil
}

// UpdateNumComments stores the comment counter of an entry. It reports false
// when no such entry exists.
func (r *Repository) UpdateNumComments(ctx context.Context, pageID, numComments int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*EntryPage)(nil)).
		Set(`"numComments" = ?`, numComments).
		Where(`"pageId" = ?`, pageID).
		Update()
	if err != nil {
		return false, fmt.Errorf("failed to update comments count: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."name" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."categoryId" = ?`, categoryID).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}

// CategorySlugsLike returns the category slugs starting with prefix.
func (r *Repository) CategorySlugsLike(ctx context.Context, prefix string) ([]string, error) {
	var slugs []string
	err := r.db.ModelContext(ctx, (*Category)(nil)).
		Column(Columns.Category.Slug).
		Where(`"t"."slug" LIKE ?`, prefix+"%").
		Select(&slugs)
	if err != nil {
		return nil, fmt.Errorf("failed to query category slugs: %w", err)
	}

	return slugs, nil
}

// SaveCategory inserts a new category (zero ID) or updates an existing one.
func (r *Repository) SaveCategory(ctx context.Context, category *Category) error {
	var err error
	if category.ID == 0 {
		_, err = r.db.ModelContext(ctx, category).Returning("*").Insert()
	} else {
		_, err = r.db.ModelContext(ctx, category).WherePK().Returning("*").Update()
	}

	if isIntegrityViolation(err) {
		return fmt.Errorf("failed to save category %q: %w", category.Name, ErrConflict)
	} else if err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}

	return nil
}

func (r *Repository) DeleteCategory(ctx context.Context, categoryID int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Where(`"categoryId" = ?`, categoryID).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// CategoryEntriesByPageIDs loads category links of the given entries with their categories.
func (r *Repository) CategoryEntriesByPageIDs(ctx context.Context, pageIDs []int) ([]CategoryEntry, error) {
	if len(pageIDs) == 0 {
		return []CategoryEntry{}, nil
	}

	links := []CategoryEntry{}
	err := r.db.ModelContext(ctx, &links).
		Relation(Columns.CategoryEntry.Category).
		Where(`"t"."pageId" IN (?)`, pg.In(pageIDs)).
		OrderExpr(`"category"."name" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query category entries: %w", err)
	}

	return links, nil
}

// CategoryUses lists categories used by live entries of a blog with their use counts.
func (r *Repository) CategoryUses(ctx context.Context, blogPageID int) ([]CategoryUse, error) {
	var uses []CategoryUse
	_, err := r.db.QueryContext(ctx, &uses, `
		SELECT "c"."categoryId", "c"."name", "c"."slug", "c"."parentId", count(*) AS "uses"
		FROM "categories" AS "c"
		JOIN "categoryEntries" AS "ce" ON "ce"."categoryId" = "c"."categoryId"
		JOIN "pages" AS "p" ON "p"."pageId" = "ce"."pageId"
		WHERE "p"."parentId" = ? AND "p"."live" = TRUE
		GROUP BY "c"."categoryId"
		ORDER BY "c"."name" ASC`, blogPageID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category uses: %w", err)
	}

	return uses, nil
}

func (r *Repository) Tags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	err := r.db.ModelContext(ctx, &tags).
		OrderExpr(`"t"."name" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

// TagEntriesByPageIDs loads tag links of the given entries with their tags.
func (r *Repository) TagEntriesByPageIDs(ctx context.Context, pageIDs []int) ([]TagEntry, error) {
	if len(pageIDs) == 0 {
		return []TagEntry{}, nil
	}

	links := []TagEntry{}
	err := r.db.ModelContext(ctx, &links).
		Relation(Columns.TagEntry.Tag).
		Where(`"t"."pageId" IN (?)`, pg.In(pageIDs)).
		OrderExpr(`"tag"."name" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query tag entries: %w", err)
	}

	return links, nil
}

// TagUses lists tags of live entries of a blog, most used first.
func (r *Repository) TagUses(ctx context.Context, blogPageID int) ([]TagUse, error) {
	var uses []TagUse
	_, err := r.db.QueryContext(ctx, &uses, `
		SELECT "tg"."tagId", "tg"."name", "tg"."slug", count(*) AS "uses"
		FROM "tags" AS "tg"
		JOIN "tagEntries" AS "te" ON "te"."tagId" = "tg"."tagId"
		JOIN "pages" AS "p" ON "p"."pageId" = "te"."pageId"
		WHERE "p"."parentId" = ? AND "p"."live" = TRUE
		GROUP BY "tg"."tagId"
		ORDER BY "uses" DESC, "tg"."name" ASC`, blogPageID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tag uses: %w", err)
	}

	return uses, nil
}

func isIntegrityViolation(err error) bool {
	var pgErr pg.Error
	return errors.As(err, &pgErr) && pgErr.IntegrityViolation()
}
