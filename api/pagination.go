package api

import (
	"net/http"
	"strconv"

	"github.com/rpupo63/personal-blog-backend/database"
)

// pageFromRequest reads page/limit query parameters, falling back to the
// defaults (page=1, limit=10) for missing or unparsable values.
func pageFromRequest(r *http.Request) database.Page {
	page := database.Page{
		Page:  database.DefaultPage,
		Limit: database.DefaultLimit,
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page.Page = parsed
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page.Limit = parsed
		}
	}

	return page.Normalized()
}

// paginationFor builds the response envelope for one page of a listing.
func paginationFor(page database.Page, total int64) Pagination {
	return Pagination{
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      total,
		TotalPages: page.TotalPages(total),
	}
}
