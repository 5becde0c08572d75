package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/swaggo/swag"
)

const (
	// API paths
	apiV1Prefix = "/api/v1"

	categoriesPath     = apiV1Prefix + "/categories"
	categoryByIDPath   = categoriesPath + "/:id"
	tagsPath           = apiV1Prefix + "/tags"
	entryURLPath       = apiV1Prefix + "/entries/:id/url"
	updateCommentsPath = "/entry_page/:id/update_comments/"

	healthPath  = "/health"
	sitemapPath = "/sitemap.xml"
	swaggerPath = "/swagger/doc.json"
	rpcPath     = "/rpc/"
)

// RegisterRoutes builds the echo router. rpcServer is mounted at /rpc/ when not nil.
func (h *BlogHandler) RegisterRoutes(rpcServer http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(h.loggingMiddleware)
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))

	h.registerAPIRoutes(e)

	e.GET(healthPath, h.handleHealth)
	e.GET(sitemapPath, h.Sitemap)
	e.GET(swaggerPath, h.handleSwagger)

	if rpcServer != nil {
		e.Any(rpcPath, echo.WrapHandler(rpcServer))
	}

	// page tree, must stay last
	e.GET("/*", h.Page)

	return e
}

func (h *BlogHandler) registerAPIRoutes(e *echo.Echo) {
	e.GET(categoriesPath, h.Categories)
	e.POST(categoriesPath, h.CreateCategory)
	e.PUT(categoryByIDPath, h.UpdateCategory)
	e.DELETE(categoryByIDPath, h.DeleteCategory)
	e.GET(tagsPath, h.Tags)
	e.GET(entryURLPath, h.EntryURL)
	e.POST(updateCommentsPath, h.UpdateComments)
}

func (h *BlogHandler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *BlogHandler) handleSwagger(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusNotFound, "swagger doc not registered")
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}

func (h *BlogHandler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		h.log.InfoContext(req.Context(), "HTTP request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return nil
	}
}
