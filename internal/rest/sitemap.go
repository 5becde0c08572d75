package rest

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Sitemap handles GET /sitemap.xml
// @Summary Sitemap of all live entries
// @Tags pages
// @Produce xml
// @Success 200 {string} string
// @Failure 500 {object} map[string]string
// @Router /sitemap.xml [get]
func (h *BlogHandler) Sitemap(c echo.Context) error {
	entries, err := h.m.Sitemap(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	set := sitemapURLSet{XMLNS: sitemapNS, URLs: make([]sitemapURL, 0, len(entries))}
	for _, e := range entries {
		u := sitemapURL{Loc: e.Location}
		if e.LastMod != nil {
			u.LastMod = e.LastMod.UTC().Format(time.RFC3339)
		}
		set.URLs = append(set.URLs, u)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}
