package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupIdempotencyRouter(rdb *redis.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/payroll/run", middleware.Idempotency(rdb), func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return router
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	router := setupIdempotencyRouter(rdb)

	req := httptest.NewRequest(http.MethodPost, "/payroll/run", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_CachedResponseReplayed(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	router := setupIdempotencyRouter(rdb)

	cacheKey := "idemp:/payroll/run::abc123"
	mock.ExpectGet(cacheKey).SetVal(`{"ok":true,"data":{"payslip_count":2}}`)

	req := httptest.NewRequest(http.MethodPost, "/payroll/run", nil)
	req.Header.Set("Idempotency-Key", "abc123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "payslip_count")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_FirstRequestCachesAndReleasesLock(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	router := setupIdempotencyRouter(rdb)

	cacheKey := "idemp:/payroll/run::abc123"
	lockKey := cacheKey + ":lock"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
	mock.ExpectSet(cacheKey, `{"ok":true}`, 24*time.Hour).SetVal("OK")
	mock.ExpectDel(lockKey).SetVal(1)

	req := httptest.NewRequest(http.MethodPost, "/payroll/run", nil)
	req.Header.Set("Idempotency-Key", "abc123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ConcurrentRequestRejected(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	router := setupIdempotencyRouter(rdb)

	cacheKey := "idemp:/payroll/run::abc123"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

	req := httptest.NewRequest(http.MethodPost, "/payroll/run", nil)
	req.Header.Set("Idempotency-Key", "abc123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROCESSING")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_FailedRunNotCached(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/payroll/run", middleware.Idempotency(rdb), func(c *gin.Context) {
		c.JSON(http.StatusConflict, gin.H{"ok": false})
	})

	cacheKey := "idemp:/payroll/run::abc123"
	lockKey := cacheKey + ":lock"
	mock.ExpectGet(cacheKey).RedisNil()
	mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
	mock.ExpectDel(lockKey).SetVal(1)

	req := httptest.NewRequest(http.MethodPost, "/payroll/run", nil)
	req.Header.Set("Idempotency-Key", "abc123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
