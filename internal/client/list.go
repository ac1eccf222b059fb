// ABOUTME: Client-held pagination state for the saved recipe listing
// ABOUTME: Merges pages deduplicated by id and guards against overlapping loads

package client

import (
	"context"

	"github.com/pratiksef/pratiksef/internal/recipe"
)

// DefaultPageSize matches the page size the mobile listing used.
const DefaultPageSize = 10

// RecipeList accumulates pages of saved recipes. It is meant for a single
// logical thread of control: the in-flight guard drops a LoadMore issued
// while another is outstanding, it is not a lock.
type RecipeList struct {
	client   *Client
	pageSize int
	items    []recipe.Summary
	hasMore  bool
	inFlight bool
}

// NewRecipeList creates an empty list backed by the given client.
func NewRecipeList(c *Client, pageSize int) *RecipeList {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &RecipeList{
		client:   c,
		pageSize: pageSize,
		hasMore:  true,
	}
}

// Items returns the merged listing in first-seen order.
func (l *RecipeList) Items() []recipe.Summary {
	return l.items
}

// HasMore reports whether another page may exist.
func (l *RecipeList) HasMore() bool {
	return l.hasMore
}

// InFlight reports whether a page request is outstanding.
func (l *RecipeList) InFlight() bool {
	return l.inFlight
}

// Reset clears the accumulated items so the next LoadMore starts over.
func (l *RecipeList) Reset() {
	l.items = nil
	l.hasMore = true
	l.inFlight = false
}

// LoadMore fetches the next page and merges it. Calls while a request is
// outstanding or after the last page are dropped. Returns the number of
// items actually added.
func (l *RecipeList) LoadMore(ctx context.Context) (int, error) {
	if l.inFlight || !l.hasMore {
		return 0, nil
	}
	l.inFlight = true
	defer func() { l.inFlight = false }()

	page, hasMore, err := l.client.ListSavedRecipes(ctx, len(l.items), l.pageSize)
	if err != nil {
		return 0, err
	}

	before := len(l.items)
	l.items = MergeSummaries(l.items, page)
	l.hasMore = hasMore
	return len(l.items) - before, nil
}

// LoadAll keeps loading pages until the backend reports no more.
func (l *RecipeList) LoadAll(ctx context.Context) error {
	for l.hasMore {
		added, err := l.LoadMore(ctx)
		if err != nil {
			return err
		}
		// An empty page with hasMore set would loop forever; stop instead.
		if added == 0 && l.hasMore {
			l.hasMore = false
		}
	}
	return nil
}

// Remove drops a deleted recipe from the accumulated items.
func (l *RecipeList) Remove(id string) bool {
	for i, item := range l.items {
		if item.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// MergeSummaries appends the page entries whose ids have not been seen yet,
// preserving first-seen order. Merging an already-seen id is a no-op, so the
// merge is idempotent under duplicates.
func MergeSummaries(existing, page []recipe.Summary) []recipe.Summary {
	seen := make(map[string]struct{}, len(existing))
	for _, item := range existing {
		seen[item.ID] = struct{}{}
	}
	merged := existing
	for _, item := range page {
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		merged = append(merged, item)
	}
	return merged
}
