// Package recipes resolves a recipe search query to a list of links, either
// through the Google Custom Search JSON API or, when that is unavailable,
// through a fixed fallback table.
package recipes

import "context"

type Recipe struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
}

// SearchResult carries either items or the reason the search failed. Callers
// branch on NeedsFallback instead of catching errors mid-flight.
type SearchResult struct {
	Items []Recipe
	Err   error
}

func (result SearchResult) NeedsFallback() bool {
	return result.Err != nil || len(result.Items) == 0
}

type Searcher interface {
	Search(ctx context.Context, query string, count int) SearchResult
}

// Resolve runs the query through the searcher and substitutes the fallback
// table on missing credentials, provider failure, or an empty result. This is
// a single bounded attempt: no retries.
func Resolve(ctx context.Context, searcher Searcher, query string, count int) []Recipe {
	if searcher == nil {
		return FallbackRecipes(query)
	}
	result := searcher.Search(ctx, query, count)
	if result.NeedsFallback() {
		return FallbackRecipes(query)
	}
	return result.Items
}
