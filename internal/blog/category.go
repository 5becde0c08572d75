package blog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gosimple/slug"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

const (
	maxCategoryName = 80
	maxCategorySlug = 80
	maxDescription  = 500
)

// ValidationError is a user-facing rejection of a category save.
type ValidationError struct {
	Kind    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches validation errors of the same kind.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

var (
	ErrSelfParent = &ValidationError{
		Kind:    "self-parent",
		Message: "a category cannot be parent of itself",
	}
	ErrCategoryCycle = &ValidationError{
		Kind:    "cycle",
		Message: "a category cannot have as parent one of its descendants",
	}
	ErrUnknownParent = &ValidationError{
		Kind:    "unknown-parent",
		Message: "parent category does not exist",
	}
	ErrDuplicateCategory = &ValidationError{
		Kind:    "duplicate",
		Message: "category name or slug already exists",
	}
	ErrInvalidCategory = &ValidationError{
		Kind:    "invalid",
		Message: "invalid category",
	}
)

func invalidCategory(format string, args ...any) error {
	return &ValidationError{Kind: ErrInvalidCategory.Kind, Message: fmt.Sprintf(format, args...)}
}

// CategoryTree indexes the full category list by id.
type CategoryTree struct {
	list []Category
	byID map[int]Category
}

func NewCategoryTree(categories []Category) CategoryTree {
	t := CategoryTree{
		list: categories,
		byID: make(map[int]Category, len(categories)),
	}
	for _, c := range categories {
		t.byID[c.ID] = c
	}
	return t
}

// ValidateParent checks that categoryID may be attached below parentID. The
// ancestor chain of the parent is walked up to the tree size, so cycles of
// any depth are rejected.
func (t CategoryTree) ValidateParent(categoryID int, parentID *int) error {
	if parentID == nil {
		return nil
	}

	if categoryID != 0 && *parentID == categoryID {
		return ErrSelfParent
	}

	if _, ok := t.byID[*parentID]; !ok {
		return ErrUnknownParent
	}

	if categoryID == 0 {
		return nil
	}

	current := *parentID
	for range len(t.byID) {
		c, ok := t.byID[current]
		if !ok || c.ParentID == nil {
			return nil
		}
		if *c.ParentID == categoryID {
			return ErrCategoryCycle
		}
		current = *c.ParentID
	}

	return nil
}

// Roots assembles the nested tree ordered by name. Categories whose parent is
// missing become roots.
func (t CategoryTree) Roots() []CategoryNode {
	children := make(map[int][]Category)
	var roots []Category
	for _, c := range t.list {
		if c.ParentID != nil {
			if _, ok := t.byID[*c.ParentID]; ok && *c.ParentID != c.ID {
				children[*c.ParentID] = append(children[*c.ParentID], c)
				continue
			}
		}
		roots = append(roots, c)
	}

	visited := make(map[int]bool, len(t.list))
	var build func(list []Category) []CategoryNode
	build = func(list []Category) []CategoryNode {
		sortCategories(list)
		nodes := make([]CategoryNode, 0, len(list))
		for _, c := range list {
			if visited[c.ID] {
				continue
			}
			visited[c.ID] = true
			nodes = append(nodes, CategoryNode{
				Category: c,
				Children: build(children[c.ID]),
			})
		}
		return nodes
	}

	return build(roots)
}

func sortCategories(list []Category) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
}

// UniqueSlug derives a slug from name that does not collide with taken.
func UniqueSlug(name string, taken []string) string {
	base := slug.Make(name)
	if base == "" {
		base = "category"
	}
	if len(base) > maxCategorySlug {
		base = strings.TrimRight(base[:maxCategorySlug], "-")
	}

	used := make(map[string]struct{}, len(taken))
	for _, s := range taken {
		used[s] = struct{}{}
	}

	candidate := base
	for i := 2; ; i++ {
		if _, ok := used[candidate]; !ok {
			return candidate
		}
		suffix := fmt.Sprintf("-%d", i)
		if len(base)+len(suffix) > maxCategorySlug {
			candidate = base[:maxCategorySlug-len(suffix)] + suffix
		} else {
			candidate = base + suffix
		}
	}
}

func validateCategoryFields(c db.Category) error {
	name := strings.TrimSpace(c.Name)
	switch {
	case name == "":
		return invalidCategory("category name is required")
	case len([]rune(name)) > maxCategoryName:
		return invalidCategory("category name must be at most %d characters", maxCategoryName)
	case len([]rune(c.Slug)) > maxCategorySlug:
		return invalidCategory("category slug must be at most %d characters", maxCategorySlug)
	case c.Slug != "" && c.Slug != slug.Make(c.Slug):
		return invalidCategory("category slug %q must contain only lowercase letters, digits and hyphens", c.Slug)
	case len([]rune(c.Description)) > maxDescription:
		return invalidCategory("category description must be at most %d characters", maxDescription)
	}

	return nil
}
