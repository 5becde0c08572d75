package rpc

import (
	"context"
	"errors"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/blog-portal/internal/blog"
)

//go:generate zenrpc

// BlogService provides RPC methods for categories, tags and blog URLs.
type BlogService struct {
	zenrpc.Service
	manager *blog.Manager
}

func NewBlogService(manager *blog.Manager) *BlogService {
	return &BlogService{manager: manager}
}

// Categories returns the category tree, ordered by name on every level.
//
//zenrpc:return list of root categories with children
//zenrpc:500 internal server error
func (s *BlogService) Categories(ctx context.Context) (Categories, error) {
	roots, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return NewCategoryNodes(roots), nil
}

// SaveCategory creates a category when categoryId is empty, updates it otherwise.
//
//zenrpc:category category to save
//zenrpc:return saved category
//zenrpc:400 validation failed
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s *BlogService) SaveCategory(ctx context.Context, category CategoryInput) (*Category, error) {
	saved, err := s.manager.SaveCategory(ctx, category.ToDB())

	var verr *blog.ValidationError
	if errors.As(err, &verr) {
		return nil, zenrpc.NewStringError(400, verr.Message)
	} else if err != nil {
		return nil, err
	}

	if saved == nil {
		return nil, zenrpc.NewStringError(404, "category not found")
	}

	result := NewCategory(*saved)
	return &result, nil
}

// DeleteCategory removes a category, its children become roots.
//
//zenrpc:id category id
//zenrpc:return true when deleted
//zenrpc:400 id must be positive
//zenrpc:404 category not found
//zenrpc:500 internal server error
func (s *BlogService) DeleteCategory(ctx context.Context, id int) (bool, error) {
	if id <= 0 {
		return false, zenrpc.NewStringError(400, "id must be positive")
	}

	ok, err := s.manager.DeleteCategory(ctx, id)
	if err != nil {
		return false, err
	}

	if !ok {
		return false, zenrpc.NewStringError(404, "category not found")
	}

	return true, nil
}

// Tags retrieves all tags ordered by name.
//
//zenrpc:return list of tags
//zenrpc:500 internal server error
func (s *BlogService) Tags(ctx context.Context) (Tags, error) {
	tags, err := s.manager.Tags(ctx)
	if err != nil {
		return nil, err
	}

	return NewTags(tags), nil
}

// EntryURL returns the permalink of an entry page.
//
//zenrpc:id entry page id
//zenrpc:return entry permalink and feed url of its blog
//zenrpc:400 id must be positive
//zenrpc:404 entry not found
//zenrpc:500 internal server error
func (s *BlogService) EntryURL(ctx context.Context, id int) (*EntryLink, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	link, err := s.manager.EntryURL(ctx, id)
	if err != nil {
		return nil, err
	}

	if link == nil {
		return nil, zenrpc.NewStringError(404, "entry not found")
	}

	result := NewEntryLink(*link)
	return &result, nil
}

// FeedURL returns the index and feed URLs of a blog page.
//
//zenrpc:blogId blog page id
//zenrpc:return blog urls
//zenrpc:400 blogId must be positive
//zenrpc:404 blog not found
//zenrpc:500 internal server error
func (s *BlogService) FeedURL(ctx context.Context, blogID int) (*BlogLink, error) {
	if blogID <= 0 {
		return nil, zenrpc.NewStringError(400, "blogId must be positive")
	}

	link, err := s.manager.BlogLink(ctx, blogID)
	if err != nil {
		return nil, err
	}

	if link == nil {
		return nil, zenrpc.NewStringError(404, "blog not found")
	}

	result := NewBlogLink(*link)
	return &result, nil
}

// Sitemap lists absolute URLs of all live entries.
//
//zenrpc:return sitemap records
//zenrpc:500 internal server error
func (s *BlogService) Sitemap(ctx context.Context) (SitemapURLs, error) {
	entries, err := s.manager.Sitemap(ctx)
	if err != nil {
		return nil, err
	}

	return NewSitemapURLs(entries), nil
}
