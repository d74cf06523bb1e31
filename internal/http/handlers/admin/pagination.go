package admin

import (
	handlershared "github.com/wpc41205/my-personal-blog-project/internal/http/handlers/shared"
)

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}
