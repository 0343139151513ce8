package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCacheRouter(hits *int, status int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	cache := NewResponseCache(time.Minute)

	engine.GET("/items", cache.Cache(), func(c *gin.Context) {
		*hits++
		c.JSON(status, gin.H{"hits": *hits})
	})
	engine.POST("/items", cache.Cache(), func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusOK, gin.H{"hits": *hits})
	})
	return engine
}

func serve(engine *gin.Engine, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestCacheServesRepeatGetsFromMemory(t *testing.T) {
	hits := 0
	engine := newCacheRouter(&hits, http.StatusOK)

	first := serve(engine, http.MethodGet, "/items")
	second := serve(engine, http.MethodGet, "/items")

	assert.Equal(t, 1, hits)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestCacheKeysIncludeQueryString(t *testing.T) {
	hits := 0
	engine := newCacheRouter(&hits, http.StatusOK)

	serve(engine, http.MethodGet, "/items?page=1")
	serve(engine, http.MethodGet, "/items?page=2")

	assert.Equal(t, 2, hits)
}

func TestCacheSkipsNonGet(t *testing.T) {
	hits := 0
	engine := newCacheRouter(&hits, http.StatusOK)

	serve(engine, http.MethodPost, "/items")
	serve(engine, http.MethodPost, "/items")

	assert.Equal(t, 2, hits)
}

func TestCacheSkipsErrorResponses(t *testing.T) {
	hits := 0
	engine := newCacheRouter(&hits, http.StatusInternalServerError)

	serve(engine, http.MethodGet, "/items")
	serve(engine, http.MethodGet, "/items")

	assert.Equal(t, 2, hits)
}
