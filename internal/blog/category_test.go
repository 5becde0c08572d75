package blog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

func intPtr(v int) *int {
	return &v
}

func category(id int, name string, parentID *int) Category {
	return Category{Category: db.Category{ID: id, Name: name, Slug: strings.ToLower(name), ParentID: parentID}}
}

func TestCategoryTree_ValidateParent(t *testing.T) {
	tree := NewCategoryTree([]Category{
		category(1, "Programming", nil),
		category(2, "Go", intPtr(1)),
		category(3, "Generics", intPtr(2)),
		category(4, "Travel", nil),
		category(5, "LoopA", intPtr(6)),
		category(6, "LoopB", intPtr(5)),
	})

	tests := []struct {
		name       string
		categoryID int
		parentID   *int
		wantErr    error
	}{
		{"NoParent", 1, nil, nil},
		{"ValidParent", 4, intPtr(1), nil},
		{"NewCategory", 0, intPtr(3), nil},
		{"SelfParent", 2, intPtr(2), ErrSelfParent},
		{"ParentsParentIsSelf", 1, intPtr(2), ErrCategoryCycle},
		{"DeepCycle", 1, intPtr(3), ErrCategoryCycle},
		{"UnknownParent", 1, intPtr(99), ErrUnknownParent},
		{"ExistingLoopElsewhereTerminates", 4, intPtr(5), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tree.ValidateParent(tt.categoryID, tt.parentID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidationError_Is(t *testing.T) {
	assert.False(t, errors.Is(ErrSelfParent, ErrCategoryCycle))

	err := invalidCategory("category name is required")
	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Equal(t, "category name is required", err.Error())

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "invalid", verr.Kind)
}

func TestCategoryTree_Roots(t *testing.T) {
	tree := NewCategoryTree([]Category{
		category(4, "Travel", nil),
		category(2, "Go", intPtr(1)),
		category(1, "Programming", nil),
		category(5, "Databases", intPtr(1)),
		category(7, "Orphan", intPtr(42)),
	})

	roots := tree.Roots()
	require.Len(t, roots, 3)
	assert.Equal(t, "Orphan", roots[0].Name)
	assert.Equal(t, "Programming", roots[1].Name)
	assert.Equal(t, "Travel", roots[2].Name)

	require.Len(t, roots[1].Children, 2)
	assert.Equal(t, "Databases", roots[1].Children[0].Name)
	assert.Equal(t, "Go", roots[1].Children[1].Name)
	assert.Empty(t, roots[2].Children)
}

func TestUniqueSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		taken []string
		want  string
	}{
		{"Simple", "Hello World", nil, "hello-world"},
		{"Transliterated", "Café Crème", nil, "cafe-creme"},
		{"Taken", "Hello World", []string{"hello-world"}, "hello-world-2"},
		{"TakenTwice", "Hello World", []string{"hello-world", "hello-world-2"}, "hello-world-3"},
		{"OnlySymbols", "!!!", nil, "category"},
		{"Truncated", strings.Repeat("a", 100), nil, strings.Repeat("a", 80)},
		{"TruncatedWithSuffix", strings.Repeat("a", 100), []string{strings.Repeat("a", 80)}, strings.Repeat("a", 78) + "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UniqueSlug(tt.input, tt.taken)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), maxCategorySlug)
		})
	}
}

func TestValidateCategoryFields(t *testing.T) {
	tests := []struct {
		name    string
		in      db.Category
		wantErr bool
	}{
		{"Valid", db.Category{Name: "Go", Slug: "go"}, false},
		{"EmptySlugAllowed", db.Category{Name: "Go"}, false},
		{"MissingName", db.Category{Name: "  "}, true},
		{"LongName", db.Category{Name: strings.Repeat("n", 81)}, true},
		{"BadSlug", db.Category{Name: "Go", Slug: "Go Lang"}, true},
		{"LongDescription", db.Category{Name: "Go", Description: strings.Repeat("d", 501)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCategoryFields(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCategory)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
