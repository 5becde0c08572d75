package rpc

import "github.com/daniilsolovey/blog-portal/internal/blog"

type (
	Categories  []Category
	Tags        []Tag
	SitemapURLs []SitemapURL
)

func NewCategoryNodes(in []blog.CategoryNode) Categories {
	out := make(Categories, len(in))
	for i := range in {
		out[i] = NewCategoryNode(in[i])
	}
	return out
}

func NewTags(in []blog.Tag) Tags {
	out := make(Tags, len(in))
	for i := range in {
		out[i] = NewTag(in[i])
	}
	return out
}

func NewSitemapURLs(in []blog.SitemapEntry) SitemapURLs {
	out := make(SitemapURLs, len(in))
	for i := range in {
		out[i] = NewSitemapURL(in[i])
	}
	return out
}
