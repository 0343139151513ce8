package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
)

type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

type cacheWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// ResponseCache memoizes successful GET responses for read-mostly reference
// data. Entries expire on their own; writes go through a different route
// group, so no explicit invalidation hook is needed.
type ResponseCache struct {
	store *gocache.Cache
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{store: gocache.New(ttl, 2*ttl)}
}

func (rc *ResponseCache) Cache() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()
		if entry, found := rc.store.Get(key); found {
			cached := entry.(cachedResponse)
			c.Data(cached.status, cached.contentType, cached.body)
			c.Abort()
			return
		}

		writer := &cacheWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Next()

		if status := writer.Status(); status == http.StatusOK {
			rc.store.SetDefault(key, cachedResponse{
				status:      status,
				contentType: writer.Header().Get("Content-Type"),
				body:        writer.body.Bytes(),
			})
		}
	}
}
