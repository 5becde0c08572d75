package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/db"
)

// PageRequest holds the query parameters of the page router.
type PageRequest struct {
	Page   int
	Q      string
	Format string
}

type BlogHandler struct {
	m   *blog.Manager
	log *slog.Logger
}

func NewBlogHandler(m *blog.Manager, log *slog.Logger) *BlogHandler {
	return &BlogHandler{
		m:   m,
		log: log,
	}
}

func (h *BlogHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// Page handles GET /*
// @Summary Serve a page of the site tree
// @Description Resolves the path against the page tree and returns the render context of a home, blog or entry page. Feed paths return RSS (default), Atom (format=atom) or JSON Feed (format=json). Entries addressed by their tree path are redirected to the permalink.
// @Tags pages
// @Produce json,xml
// @Param page query int false "Listing page (default: 1)"
// @Param q query string false "Search term for the search sub-route"
// @Param format query string false "Feed format: rss, atom or json"
// @Success 200 {object} rest.BlogView
// @Success 301
// @Failure 400,404,500 {object} map[string]string
// @Router /{path} [get]
func (h *BlogHandler) Page(c echo.Context) error {
	ctx := c.Request().Context()

	var req PageRequest
	if err := urlstruct.Unmarshal(ctx, c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	res, err := h.m.Resolve(ctx, c.Request().URL.Path)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if res == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "page not found"})
	}

	if res.Redirect != "" {
		return c.Redirect(http.StatusMovedPermanently, res.Redirect)
	}

	if res.Feed {
		return h.feed(c, res, req.Format)
	}

	switch res.Page.(type) {
	case blog.BlogPage:
		view, err := h.m.BlogView(ctx, res, req.Page, req.Q)
		if err != nil {
			return h.handleError(c, err, http.StatusInternalServerError, "internal error")
		}
		return c.JSON(http.StatusOK, NewBlogView(view))
	case blog.EntryPage:
		view, err := h.m.EntryView(ctx, res)
		if err != nil {
			return h.handleError(c, err, http.StatusInternalServerError, "internal error")
		} else if view == nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "page not found"})
		}
		return c.JSON(http.StatusOK, NewEntryView(view))
	default:
		view, err := h.m.HomeView(ctx, res)
		if err != nil {
			return h.handleError(c, err, http.StatusInternalServerError, "internal error")
		}
		return c.JSON(http.StatusOK, NewHomeView(view))
	}
}

func (h *BlogHandler) feed(c echo.Context, res *blog.Resolution, format string) error {
	feed, err := h.m.Feed(c.Request().Context(), res)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	body, contentType, err := blog.RenderFeed(feed, format)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Blob(http.StatusOK, contentType, []byte(body))
}

// Categories handles GET /api/v1/categories
// @Summary Get the category tree
// @Description Retrieves all categories as a tree, ordered by name on every level
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *BlogHandler) Categories(c echo.Context) error {
	roots, err := h.m.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(roots, NewCategoryNode))
}

// CreateCategory handles POST /api/v1/categories
// @Summary Create a category
// @Description Creates a category. An empty slug is derived from the name. The parent must not create a cycle.
// @Tags categories
// @Accept json
// @Produce json
// @Param category body rest.CategoryRequest true "Category"
// @Success 201 {object} rest.Category
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/categories [post]
func (h *BlogHandler) CreateCategory(c echo.Context) error {
	return h.saveCategory(c, 0, http.StatusCreated)
}

// UpdateCategory handles PUT /api/v1/categories/:id
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body rest.CategoryRequest true "Category"
// @Success 200 {object} rest.Category
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/categories/{id} [put]
func (h *BlogHandler) UpdateCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	return h.saveCategory(c, id, http.StatusOK)
}

func (h *BlogHandler) saveCategory(c echo.Context, id, status int) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	saved, err := h.m.SaveCategory(c.Request().Context(), db.Category{
		ID:          id,
		Name:        req.Name,
		Slug:        req.Slug,
		ParentID:    req.ParentID,
		Description: req.Description,
	})

	var verr *blog.ValidationError
	if errors.As(err, &verr) {
		return h.handleError(c, err, http.StatusBadRequest, verr.Message)
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if saved == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "category not found"})
	}

	return c.JSON(status, NewCategory(*saved))
}

// DeleteCategory handles DELETE /api/v1/categories/:id
// @Summary Delete a category
// @Description Deletes a category. Its children become roots.
// @Tags categories
// @Param id path int true "Category ID"
// @Success 204
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/categories/{id} [delete]
func (h *BlogHandler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	ok, err := h.m.DeleteCategory(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "category not found"})
	}

	return c.NoContent(http.StatusNoContent)
}

// Tags handles GET /api/v1/tags
// @Summary Get all tags
// @Description Retrieves all tags ordered by name
// @Tags tags
// @Produce json
// @Success 200 {array} rest.Tag
// @Failure 500 {object} map[string]string
// @Router /api/v1/tags [get]
func (h *BlogHandler) Tags(c echo.Context) error {
	tags, err := h.m.Tags(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(tags, NewTag))
}

// EntryURL handles GET /api/v1/entries/:id/url
// @Summary Get the permalink of an entry
// @Tags entries
// @Produce json
// @Param id path int true "Entry page ID"
// @Success 200 {object} rest.EntryLink
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/entries/{id}/url [get]
func (h *BlogHandler) EntryURL(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	link, err := h.m.EntryURL(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if link == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "entry not found"})
	}

	return c.JSON(http.StatusOK, NewEntryLink(link))
}

// UpdateComments handles POST /entry_page/:id/update_comments/
// @Summary Refresh the comment counter of an entry
// @Description Reads the thread post count from Disqus with the credentials of the entry's blog and stores it
// @Tags entries
// @Produce json
// @Param id path int true "Entry page ID"
// @Success 200 {object} rest.CommentSync
// @Failure 400,404,500,502 {object} map[string]string
// @Router /entry_page/{id}/update_comments/ [post]
func (h *BlogHandler) UpdateComments(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	res, err := h.m.SyncComments(c.Request().Context(), id)
	if errors.Is(err, blog.ErrCommentsDisabled) {
		return h.handleError(c, err, http.StatusBadRequest, "comments are not configured for this blog")
	} else if err != nil {
		return h.handleError(c, err, http.StatusBadGateway, "failed to update comments")
	}
	if res == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "entry not found"})
	}

	return c.JSON(http.StatusOK, CommentSync{EntryID: res.EntryID, NumComments: res.NumComments})
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("id must be positive")
	}
	return id, nil
}
