package public

import (
	"errors"

	handlershared "github.com/wpc41205/my-personal-blog-project/internal/http/handlers/shared"
	"github.com/wpc41205/my-personal-blog-project/internal/http/response"
	"github.com/wpc41205/my-personal-blog-project/internal/service"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondErrorWithMsg(c, code, msg, err)
}

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var postReadErrorRules = []mappedHandlerError{
	{target: service.ErrValidation, code: response.CodeBadRequest, key: "error.bad_request"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.post_not_found"},
	{target: service.ErrSourcesUnavailable, code: response.CodeInternal, key: "error.post_sources_unavailable"},
}

var engagementErrorRules = []mappedHandlerError{
	{target: service.ErrValidation, code: response.CodeBadRequest, key: "error.comment_invalid"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.post_not_found"},
	{target: service.ErrExternalReadOnly, code: response.CodeBadRequest, key: "error.post_readonly_source"},
}

func respondPostReadError(c *gin.Context, err error) {
	respondWithMappedError(c, err, postReadErrorRules, response.CodeInternal, "error.post_fetch_failed")
}

func respondEngagementError(c *gin.Context, err error, fallbackKey string) {
	respondWithMappedError(c, err, engagementErrorRules, response.CodeInternal, fallbackKey)
}
