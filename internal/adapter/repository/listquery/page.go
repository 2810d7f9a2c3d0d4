package listquery

import "nevoyage/internal/domain/repository"

// DefaultLimit applies when a window requests no explicit limit.
const DefaultLimit = 20

// Window normalizes a 1-based page request into Mongo skip/limit values.
// Non-positive page or limit fall back to 1 and defaultLimit.
func Window(p repository.Page, defaultLimit int) (skip, limit int64, page, size int) {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	page = p.Page
	if page < 1 {
		page = 1
	}
	size = p.Limit
	if size < 1 {
		size = defaultLimit
	}
	return int64(page-1) * int64(size), int64(size), page, size
}

// Pages is ceil(total/limit). An empty result reports zero pages.
func Pages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	return pages
}
