package config

import (
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"

	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/comments"
)

type Config struct {
	Database   pg.Options
	// LogQueries enables SQL logging at debug level.
	LogQueries bool
	App        struct {
		Host string
		Port int
	}
	Site     Site
	Comments Comments
}

type Site struct {
	RootURL    string
	PathPrefix string
	TimeZone   string
	RootPageID int
}

type Comments struct {
	DisqusAPIURL string
	// Timeout is a duration string, e.g. "5s".
	Timeout      time.Duration
}

// ApplyDatabaseURL replaces the database options with the ones parsed from url.
// Pool settings from the file are kept.
func (c *Config) ApplyDatabaseURL(url string) error {
	if url == "" {
		return nil
	}

	opt, err := pg.ParseURL(url)
	if err != nil {
		return fmt.Errorf("failed to parse database URL: %w", err)
	}

	opt.PoolSize = c.Database.PoolSize
	opt.MaxRetries = c.Database.MaxRetries
	opt.MaxConnAge = c.Database.MaxConnAge
	c.Database = *opt

	return nil
}

// BlogSite builds the routing settings of the site.
func (c *Config) BlogSite() (blog.Site, error) {
	loc := time.UTC
	if c.Site.TimeZone != "" {
		var err error
		if loc, err = time.LoadLocation(c.Site.TimeZone); err != nil {
			return blog.Site{}, fmt.Errorf("failed to load time zone %q: %w", c.Site.TimeZone, err)
		}
	}

	return blog.Site{
		RootURL:    c.Site.RootURL,
		PathPrefix: c.Site.PathPrefix,
		Location:   loc,
		RootPageID: c.Site.RootPageID,
	}, nil
}

func (c *Config) Disqus() *comments.Disqus {
	url := c.Comments.DisqusAPIURL
	if url == "" {
		url = comments.DefaultDisqusURL
	}

	timeout := c.Comments.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	return comments.NewDisqus(url, timeout)
}
