package thenvoitest

import "context"

// Pagination helpers for integration tests against paginated list
// endpoints.
//
//	peers, err := thenvoitest.FetchAllPages(ctx, listPeers)
//
//	room, found, err := thenvoitest.FindItemInPages(ctx, listChats,
//	    func(item map[string]any) bool { return item["title"] == "My Room" })

// DefaultPageSize is the page size used when none is specified.
const DefaultPageSize = 50

// PageMeta is the pagination metadata of a list response.
type PageMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	Total      int `json:"total"`
}

// ListResponse is the {data, meta} envelope paginated endpoints return.
type ListResponse struct {
	Data []map[string]any `json:"data"`
	Meta PageMeta         `json:"meta"`
}

// ListFunc fetches one page of results from a paginated endpoint.
type ListFunc func(ctx context.Context, page, pageSize int) (*ListResponse, error)

// PageOption configures the pagination helpers.
type PageOption func(*pageOptions)

type pageOptions struct {
	pageSize int
}

func pageDefaults() pageOptions {
	return pageOptions{pageSize: DefaultPageSize}
}

// WithPageSize sets the number of items requested per page.
func WithPageSize(n int) PageOption {
	return func(o *pageOptions) {
		o.pageSize = n
	}
}

// FetchAllPages fetches every page of results and returns the combined items.
func FetchAllPages(ctx context.Context, fn ListFunc, opts ...PageOption) ([]map[string]any, error) {
	o := pageDefaults()
	for _, opt := range opts {
		opt(&o)
	}

	var all []map[string]any
	for page := 1; ; page++ {
		resp, err := fn(ctx, page, o.pageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.Data...)
		if page >= totalPages(resp) {
			return all, nil
		}
	}
}

// FindItemInPages searches page by page for an item matching the predicate,
// returning as soon as one is found so later pages are never fetched.
func FindItemInPages(ctx context.Context, fn ListFunc, pred func(map[string]any) bool, opts ...PageOption) (map[string]any, bool, error) {
	o := pageDefaults()
	for _, opt := range opts {
		opt(&o)
	}

	for page := 1; ; page++ {
		resp, err := fn(ctx, page, o.pageSize)
		if err != nil {
			return nil, false, err
		}
		for _, item := range resp.Data {
			if pred(item) {
				return item, true, nil
			}
		}
		if page >= totalPages(resp) {
			return nil, false, nil
		}
	}
}

// ItemExistsInPages reports whether an item with the given ID appears in the
// paginated results.
func ItemExistsInPages(ctx context.Context, fn ListFunc, itemID string, opts ...PageOption) (bool, error) {
	_, found, err := FindItemInPages(ctx, fn, func(item map[string]any) bool {
		return item["id"] == itemID
	}, opts...)
	return found, err
}

func totalPages(resp *ListResponse) int {
	if resp.Meta.TotalPages < 1 {
		return 1
	}
	return resp.Meta.TotalPages
}
