package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/online-bookstore/internal/application/book"
	appcart "github.com/xiebiao/online-bookstore/internal/application/cart"
	appcategory "github.com/xiebiao/online-bookstore/internal/application/category"
	apporder "github.com/xiebiao/online-bookstore/internal/application/order"
	appuser "github.com/xiebiao/online-bookstore/internal/application/user"
	"github.com/xiebiao/online-bookstore/internal/domain/book"
	"github.com/xiebiao/online-bookstore/internal/domain/order"
	"github.com/xiebiao/online-bookstore/internal/domain/user"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/config"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/persistence/gormdb/gormdbtest"
	"github.com/xiebiao/online-bookstore/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/online-bookstore/internal/interface/http/handler"
	"github.com/xiebiao/online-bookstore/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/online-bookstore/pkg/errors"
	"github.com/xiebiao/online-bookstore/pkg/jwt"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "Admin1234"
)

// memorySessions 内存版会话与黑名单
type memorySessions struct {
	mu        sync.Mutex
	sessions  map[uint]redis.Session
	blacklist map[string]bool
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: make(map[uint]redis.Session), blacklist: make(map[string]bool)}
}

func (s *memorySessions) SaveSession(_ context.Context, userID uint, session redis.Session, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = session
	return nil
}

func (s *memorySessions) GetSession(_ context.Context, userID uint) (*redis.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[userID]
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	return &session, nil
}

func (s *memorySessions) DeleteSession(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}

func (s *memorySessions) AddToBlacklist(_ context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ttl > 0 {
		s.blacklist[token] = true
	}
	return nil
}

func (s *memorySessions) IsInBlacklist(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.blacklist[token], nil
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testServer struct {
	t      *testing.T
	engine *gin.Engine
}

// newTestServer 用内存SQLite与内存会话组装完整的路由,并创建管理员账号
func newTestServer(t *testing.T, rateLimit config.RateLimitConfig) *testServer {
	t.Helper()

	db := gormdbtest.NewDB(t)
	tx := gormdb.NewTxManager(db)
	userRepo := gormdb.NewUserRepository(db)
	bookRepo := gormdb.NewBookRepository(db)
	categoryRepo := gormdb.NewCategoryRepository(db)
	cartRepo := gormdb.NewCartRepository(db)
	orderRepo := gormdb.NewOrderRepository(db)

	userService := user.NewService(userRepo)
	bookService := book.NewService(bookRepo)
	jwtManager := jwt.NewManager("router-test-secret", time.Hour, 24*time.Hour)
	sessions := newMemorySessions()
	cache := book.NopCache{}
	publisher := order.NopPublisher{}

	h := &Handlers{
		Auth: handler.NewAuthHandler(
			appuser.NewRegisterUseCase(userService, cartRepo, tx),
			appuser.NewLoginUseCase(userService, jwtManager, sessions),
			appuser.NewLogoutUseCase(sessions),
			appuser.NewRefreshTokenUseCase(userRepo, jwtManager, sessions),
		),
		Book: handler.NewBookHandler(
			appbook.NewCreateBookUseCase(bookService, categoryRepo),
			appbook.NewUpdateBookUseCase(bookService, categoryRepo, cache),
			appbook.NewDeleteBookUseCase(bookService, cache),
			appbook.NewGetBookUseCase(bookService, cache),
			appbook.NewListBooksUseCase(bookService),
		),
		Category: handler.NewCategoryHandler(
			appcategory.NewCreateCategoryUseCase(categoryRepo),
			appcategory.NewUpdateCategoryUseCase(categoryRepo),
			appcategory.NewDeleteCategoryUseCase(categoryRepo, bookRepo, cache),
			appcategory.NewQueryCategoryUseCase(categoryRepo, bookRepo),
		),
		Cart: handler.NewCartHandler(
			appcart.NewAddCartItemUseCase(cartRepo, bookService),
			appcart.NewGetCartUseCase(cartRepo),
			appcart.NewUpdateCartItemUseCase(cartRepo),
			appcart.NewRemoveCartItemUseCase(cartRepo),
		),
		Order: handler.NewOrderHandler(
			apporder.NewCreateOrderUseCase(orderRepo, cartRepo, bookRepo, userRepo, tx, publisher),
			apporder.NewQueryOrderUseCase(orderRepo),
			apporder.NewUpdateOrderStatusUseCase(orderRepo, publisher),
		),
	}

	cfg := &config.Config{
		Server:    config.ServerConfig{Mode: gin.TestMode},
		RateLimit: rateLimit,
	}
	engine, err := New(cfg, h, middleware.NewAuthMiddleware(jwtManager, sessions))
	require.NoError(t, err)

	seed := appuser.NewSeedAdminUseCase(userService, cartRepo, tx)
	require.NoError(t, seed.Execute(context.Background(), adminEmail, adminPassword))

	return &testServer{t: t, engine: engine}
}

func (s *testServer) do(method, path, token string, body interface{}) (int, envelope) {
	s.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func (s *testServer) login(email, password string) string {
	s.t.Helper()
	status, env := s.do(http.MethodPost, "/auth/login", "", gin.H{"email": email, "password": password})
	require.Equal(s.t, http.StatusOK, status, env.Message)

	var data appuser.LoginResponse
	require.NoError(s.t, json.Unmarshal(env.Data, &data))
	return data.AccessToken
}

func (s *testServer) registerCustomer(email string) string {
	s.t.Helper()
	status, env := s.do(http.MethodPost, "/auth/register", "", gin.H{
		"email":            email,
		"password":         "Passw0rd1",
		"repeat_password":  "Passw0rd1",
		"first_name":       "San",
		"last_name":        "Zhang",
		"shipping_address": "北京市海淀区",
	})
	require.Equal(s.t, http.StatusCreated, status, env.Message)
	return s.login(email, "Passw0rd1")
}

func (s *testServer) createBook(token, title, isbn, price string) uint {
	s.t.Helper()
	status, env := s.do(http.MethodPost, "/books", token, gin.H{
		"title": title, "author": "William", "isbn": isbn, "price": price,
	})
	require.Equal(s.t, http.StatusCreated, status, env.Message)

	var b appbook.BookResponse
	require.NoError(s.t, json.Unmarshal(env.Data, &b))
	return b.ID
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

type pageOf[T any] struct {
	List  []T   `json:"list"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"page_size"`
}

func TestPing(t *testing.T) {
	s := newTestServer(t, config.RateLimitConfig{})
	status, env := s.do(http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Zero(t, env.Code)
}

func TestAuthentication(t *testing.T) {
	s := newTestServer(t, config.RateLimitConfig{})

	status, env := s.do(http.MethodGet, "/books", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, apperrors.ErrCodeUnauthorized, env.Code)

	status, _ = s.do(http.MethodGet, "/books", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, env = s.do(http.MethodPost, "/auth/login", "", gin.H{"email": adminEmail, "password": "wrong-pass1"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, apperrors.ErrCodeBadCredentials, env.Code)

	status, env = s.do(http.MethodPost, "/auth/register", "", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, apperrors.ErrCodeBindError, env.Code)

	s.registerCustomer("reader@example.com")
	status, env = s.do(http.MethodPost, "/auth/register", "", gin.H{
		"email": "reader@example.com", "password": "Passw0rd1", "repeat_password": "Passw0rd1",
		"first_name": "Si", "last_name": "Li",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, apperrors.ErrCodeEmailDuplicate, env.Code)
}

func TestRoles(t *testing.T) {
	s := newTestServer(t, config.RateLimitConfig{})
	customer := s.registerCustomer("reader@example.com")
	admin := s.login(adminEmail, adminPassword)

	status, env := s.do(http.MethodPost, "/books", customer, gin.H{
		"title": "Go", "author": "A", "isbn": "9787115437884", "price": "1",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, apperrors.ErrCodeForbidden, env.Code)

	status, _ = s.do(http.MethodPost, "/categories", customer, gin.H{"name": "小说"})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = s.do(http.MethodPatch, "/orders/1", customer, gin.H{"status": "PAID"})
	assert.Equal(t, http.StatusForbidden, status)

	// 两种角色都能查询图书
	status, _ = s.do(http.MethodGet, "/books", customer, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = s.do(http.MethodGet, "/api/v1/books", admin, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestBooks(t *testing.T) {
	s := newTestServer(t, config.RateLimitConfig{})
	admin := s.login(adminEmail, adminPassword)

	goID := s.createBook(admin, "Go语言实战", "9787115437884", "22.50")
	s.createBook(admin, "Rust权威指南", "9787115546081", "30.00")
	s.createBook(admin, "深入理解计算机系统", "9787111544937", "99.00")

	status, env := s.do(http.MethodPost, "/books", admin, gin.H{
		"title": "重复", "author": "A", "isbn": "9787115437884", "price": "1",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, apperrors.ErrCodeISBNDuplicate, env.Code)

	status, env = s.do(http.MethodPost, "/books", admin, gin.H{
		"title": "  ", "author": "A", "isbn": "9787115437885", "price": "1",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = s.do(http.MethodGet, fmt.Sprintf("/api/v1/books/%d", goID), admin, nil)
	require.Equal(t, http.StatusOK, status)
	got := decode[appbook.BookResponse](t, env)
	assert.Equal(t, "Go语言实战", got.Title)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("22.5")))

	status, env = s.do(http.MethodGet, "/books?size=2&sort=price,desc", admin, nil)
	require.Equal(t, http.StatusOK, status)
	listed := decode[pageOf[appbook.BookResponse]](t, env)
	assert.Equal(t, int64(3), listed.Total)
	require.Len(t, listed.List, 2)
	assert.Equal(t, "深入理解计算机系统", listed.List[0].Title)

	status, _ = s.do(http.MethodGet, "/books?sort=password,ASC", admin, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = s.do(http.MethodGet, "/books/search?price=20,31", admin, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(2), decode[pageOf[appbook.BookResponse]](t, env).Total)

	status, env = s.do(http.MethodGet, "/books/search?title=Rust&title=系统", admin, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(2), decode[pageOf[appbook.BookResponse]](t, env).Total)

	status, env = s.do(http.MethodGet, "/books/search?price=abc", admin, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, apperrors.ErrCodeInvalidPriceFilter, env.Code)

	status, _ = s.do(http.MethodDelete, fmt.Sprintf("/books/%d", goID), admin, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, env = s.do(http.MethodGet, fmt.Sprintf("/books/%d", goID), admin, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, apperrors.ErrCodeBookNotFound, env.Code)

	status, _ = s.do(http.MethodGet, "/books/abc", admin, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCategories(t *testing.T) {
	s := newTestServer(t, config.RateLimitConfig{})
	admin := s.login(adminEmail, adminPassword)

	status, env := s.do(http.MethodPost, "/categories", admin, gin.H{"name": "编程"})
	require.Equal(t, http.StatusCreated, status, env.Message)
	created := decode[appcategory.CategoryResponse](t, env)

	status, _ = s.do(http.MethodPost, "/categories", admin, gin.H{"name": "编程"})
	assert.Equal(t, http.StatusConflict, status)

	status, env = s.do(http.MethodPost, "/books", admin, gin.H{
		"title": "Go语言实战", "author": "William", "isbn": "9787115437884", "price": "22.50",
		"category_ids": []uint{created.ID},
	})
	require.Equal(t, http.StatusCreated, status, env.Message)

	status, env = s.do(http.MethodGet, fmt.Sprintf("/categories/%d/books", created.ID), admin, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), decode[pageOf[appbook.BookSummary]](t, env).Total)

	status, _ = s.do(http.MethodGet, "/categories/999/books", admin, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCartAndOrderFlow(t *testing.T) {
	s := newTestServer(t, config.RateLimitConfig{})
	admin := s.login(adminEmail, adminPassword)
	customer := s.registerCustomer("reader@example.com")
	other := s.registerCustomer("other@example.com")

	goID := s.createBook(admin, "Go语言实战", "9787115437884", "22.50")
	rustID := s.createBook(admin, "Rust权威指南", "9787115546081", "30.00")

	// 空购物车不能下单
	status, env := s.do(http.MethodPost, "/orders", customer, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, apperrors.ErrCodeEmptyCart, env.Code)

	status, env = s.do(http.MethodPost, "/cart", customer, gin.H{"book_id": goID, "quantity": 1})
	require.Equal(t, http.StatusCreated, status, env.Message)
	goItem := decode[appcart.CartItemView](t, env)
	assert.Equal(t, "Go语言实战", goItem.BookTitle)

	status, env = s.do(http.MethodPost, "/cart", customer, gin.H{"book_id": goID, "quantity": 3})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, apperrors.ErrCodeCartItemDuplicate, env.Code)

	status, _ = s.do(http.MethodPost, "/cart", customer, gin.H{"book_id": goID, "quantity": -1})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(http.MethodPost, "/cart", customer, gin.H{"book_id": rustID, "quantity": 1})
	require.Equal(t, http.StatusCreated, status)

	status, env = s.do(http.MethodPut, fmt.Sprintf("/cart/cart-items/%d", goItem.ID), customer, gin.H{"quantity": 2})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, decode[appcart.QuantityResponse](t, env).Quantity)

	// 其他用户看不到该条目
	status, _ = s.do(http.MethodPut, fmt.Sprintf("/cart/cart-items/%d", goItem.ID), other, gin.H{"quantity": 9})
	assert.Equal(t, http.StatusNotFound, status)

	status, env = s.do(http.MethodGet, "/cart", customer, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[appcart.CartResponse](t, env).Items, 2)

	status, env = s.do(http.MethodPost, "/api/v1/orders", customer, gin.H{})
	require.Equal(t, http.StatusCreated, status, env.Message)
	created := decode[apporder.OrderResponse](t, env)
	assert.True(t, created.Total.Equal(decimal.RequireFromString("75")), created.Total.String())
	assert.Equal(t, "北京市海淀区", created.ShippingAddress)
	assert.Equal(t, "PENDING", created.Status)

	status, env = s.do(http.MethodGet, "/cart", customer, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decode[appcart.CartResponse](t, env).Items)

	status, env = s.do(http.MethodGet, "/orders", customer, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), decode[pageOf[apporder.OrderResponse]](t, env).Total)

	status, env = s.do(http.MethodGet, fmt.Sprintf("/orders/%d/items?size=1", created.ID), customer, nil)
	require.Equal(t, http.StatusOK, status)
	items := decode[pageOf[apporder.OrderItemResponse]](t, env)
	assert.Equal(t, int64(2), items.Total)
	require.Len(t, items.List, 1)

	status, _ = s.do(http.MethodGet, fmt.Sprintf("/orders/%d/items/%d", created.ID, items.List[0].ID), customer, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = s.do(http.MethodGet, fmt.Sprintf("/orders/%d/items", created.ID), other, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, env = s.do(http.MethodPatch, fmt.Sprintf("/orders/%d", created.ID), admin, gin.H{"status": "PAID"})
	require.Equal(t, http.StatusOK, status, env.Message)
	assert.Equal(t, "PAID", decode[apporder.OrderResponse](t, env).Status)

	status, env = s.do(http.MethodPatch, fmt.Sprintf("/orders/%d", created.ID), admin, gin.H{"status": "PENDING"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, apperrors.ErrCodeInvalidStatusTransition, env.Code)

	status, _ = s.do(http.MethodPatch, fmt.Sprintf("/orders/%d", created.ID), admin, gin.H{"status": "LOST"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestOrderSkipsDeletedBooks(t *testing.T) {
	s := newTestServer(t, config.RateLimitConfig{})
	admin := s.login(adminEmail, adminPassword)
	customer := s.registerCustomer("reader@example.com")

	goID := s.createBook(admin, "Go语言实战", "9787115437884", "22.50")
	rustID := s.createBook(admin, "Rust权威指南", "9787115546081", "30.00")
	for _, id := range []uint{goID, rustID} {
		status, env := s.do(http.MethodPost, "/cart", customer, gin.H{"book_id": id, "quantity": 1})
		require.Equal(t, http.StatusCreated, status, env.Message)
	}

	status, _ := s.do(http.MethodDelete, fmt.Sprintf("/books/%d", goID), admin, nil)
	require.Equal(t, http.StatusNoContent, status)

	status, env := s.do(http.MethodGet, "/cart", customer, nil)
	require.Equal(t, http.StatusOK, status)
	items := decode[appcart.CartResponse](t, env).Items
	require.Len(t, items, 1)
	assert.Equal(t, rustID, items[0].BookID)

	status, env = s.do(http.MethodPost, "/orders", customer, nil)
	require.Equal(t, http.StatusCreated, status, env.Message)
	created := decode[apporder.OrderResponse](t, env)
	assert.True(t, created.Total.Equal(decimal.RequireFromString("30")), created.Total.String())

	status, env = s.do(http.MethodGet, "/cart", customer, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decode[appcart.CartResponse](t, env).Items)
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newTestServer(t, config.RateLimitConfig{})
	token := s.registerCustomer("reader@example.com")

	status, _ := s.do(http.MethodGet, "/cart", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = s.do(http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, status)

	status, env := s.do(http.MethodGet, "/cart", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, apperrors.ErrCodeTokenRevoked, env.Code)
}

func TestAuthRateLimit(t *testing.T) {
	s := newTestServer(t, config.RateLimitConfig{Enabled: true, Rate: 0.01, Burst: 2})

	body := gin.H{"email": adminEmail, "password": adminPassword}
	for i := 0; i < 2; i++ {
		status, _ := s.do(http.MethodPost, "/auth/login", "", body)
		require.Equal(t, http.StatusOK, status)
	}

	status, env := s.do(http.MethodPost, "/api/v1/auth/login", "", body)
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.Equal(t, apperrors.ErrCodeTooManyRequests, env.Code)

	// 只限制认证接口
	status, _ = s.do(http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, status)
}
