// Package request holds small helpers for reading gin requests.
package request

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ClientWeb    = "web"
	ClientMobile = "mobile"
	ClientAPI    = "api"

	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxPage         = 10000
)

// ResolveClientType prefers the explicit X-Client-Type header and falls
// back to sniffing the user agent.
func ResolveClientType(header, userAgent string) string {
	switch strings.ToLower(strings.TrimSpace(header)) {
	case ClientWeb:
		return ClientWeb
	case ClientMobile:
		return ClientMobile
	case ClientAPI:
		return ClientAPI
	}

	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "mozilla"):
		return ClientWeb
	case strings.Contains(ua, "okhttp"), strings.Contains(ua, "dart"), strings.Contains(ua, "cfnetwork"):
		return ClientMobile
	}
	return ClientAPI
}

func IsWebClient(clientType string) bool {
	return clientType == ClientWeb
}

// PageParam reads a 1-based page number; anything unparsable or below 1
// becomes 1 and anything above MaxPage becomes MaxPage.
func PageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return min(page, MaxPage)
}

// Pagination reads page and page_size for admin lists.
func Pagination(c *gin.Context) (int, int) {
	size, err := strconv.Atoi(c.Query("page_size"))
	if err != nil || size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return PageParam(c), size
}

// QueryBool returns nil when the parameter is absent or not a boolean.
func QueryBool(c *gin.Context, key string) *bool {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// QueryInt returns def when the parameter is absent or not a positive int.
func QueryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return def
	}
	return v
}
