package pachca

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// paginationStyle selects which query field carries continuation state.
type paginationStyle int

const (
	// cursorPagination requests pages with a "limit" size and follows
	// the opaque meta.paginate.next_page token via the "cursor" field.
	cursorPagination paginationStyle = iota
	// pagePagination requests pages with a "per" size and a 1-based
	// integer "page" counter incremented by the client.
	pagePagination
)

// pagination parameterizes collectAllPages. A zero limit means
// DefaultPageLimit.
type pagination struct {
	style paginationStyle
	limit int
}

// collectAllPages repeatedly calls a list endpoint, appending each page's
// items in encounter order, until a page shorter than the requested size
// signals the end of the data. Both continuation styles share this loop.
// A failing page aborts the whole collection; no partial result is
// returned.
func (c *Client) collectAllPages(ctx context.Context, path string, query url.Values, pg pagination) ([]json.RawMessage, error) {
	limit := pg.limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if query == nil {
		query = url.Values{}
	}

	switch pg.style {
	case pagePagination:
		query.Set("per", strconv.Itoa(limit))
	default:
		query.Set("limit", strconv.Itoa(limit))
	}

	var all []json.RawMessage
	page := 1
	for {
		if pg.style == pagePagination {
			query.Set("page", strconv.Itoa(page))
		}

		body, err := c.get(ctx, path, query)
		if err != nil {
			return nil, err
		}

		var env listEnvelope
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, fmt.Errorf("%w: decoding %s page: %w", ErrDecodingFailed, path, err)
		}
		if env.Data == nil {
			return nil, fmt.Errorf("%w: %s page missing data envelope", ErrDecodingFailed, path)
		}

		all = append(all, env.Data...)
		if len(env.Data) < limit {
			return all, nil
		}

		switch pg.style {
		case pagePagination:
			page++
		default:
			if env.Meta.Paginate.NextPage == nil {
				// Full page but the server reported no continuation;
				// stop rather than re-request the first page.
				return all, nil
			}
			query.Set("cursor", *env.Meta.Paginate.NextPage)
		}
	}
}

// unmarshalItems decodes each raw page item into T.
func unmarshalItems[T any](raw []json.RawMessage, what string) ([]T, error) {
	items := make([]T, 0, len(raw))
	for _, r := range raw {
		var item T
		if err := json.Unmarshal(r, &item); err != nil {
			return nil, fmt.Errorf("%w: decoding %s: %w", ErrDecodingFailed, what, err)
		}
		items = append(items, item)
	}
	return items, nil
}
