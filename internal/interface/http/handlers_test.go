package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/product-market-api/internal/application"
	"github.com/oksasatya/product-market-api/internal/domain/entity"
	"github.com/oksasatya/product-market-api/internal/domain/repository"
	"github.com/oksasatya/product-market-api/internal/interface/middleware"
	"github.com/oksasatya/product-market-api/pkg/helpers"
	"github.com/oksasatya/product-market-api/pkg/validation"
)

var initOnce sync.Once

// envelope mirrors the wire format for assertions.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details"`
	Token   string          `json:"token"`
}

type testServer struct {
	engine *gin.Engine
	jwt    *helpers.JWTManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	initOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		validation.Init()
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	jwt := helpers.NewJWTManager("handler_test_secret", 10*time.Hour)
	users := newUserRepoFake()
	products := newProductRepoFake()

	userSvc := application.NewUserService(users, jwt, logger)
	productSvc := application.NewProductService(products, users, logger)

	uh := NewUserHandler(userSvc, logger)
	ph := NewProductHandler(productSvc, logger)

	r := gin.New()
	r.POST("/user", uh.Register)
	r.POST("/login", uh.Login)
	auth := r.Group("/", middleware.RequireAuth(jwt))
	{
		auth.GET("/user", uh.GetMe)
		auth.PUT("/user", uh.UpdateMe)
		auth.DELETE("/user", uh.DeleteMe)
		auth.GET("/users", uh.ListUsers)

		auth.GET("/products", ph.List)
		auth.POST("/products", ph.Create)
		auth.GET("/products/search", ph.Search)
		auth.GET("/products/:id", ph.Get)
		auth.PUT("/products/:id", ph.Update)
		auth.DELETE("/products/:id", ph.Delete)
	}

	return &testServer{engine: r, jwt: jwt}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reader = strings.NewReader(raw)
		} else {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(b)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	}
	return w, env
}

// register creates a user through the API and returns its token and id.
func (s *testServer) register(t *testing.T, email string) (string, int64) {
	t.Helper()
	w, env := s.do(t, http.MethodPost, "/user", "", gin.H{
		"firstName": "Test",
		"lastName":  "User",
		"email":     email,
		"password":  "pw123456",
	})
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	require.NotEmpty(t, env.Token)

	claims, err := s.jwt.Parse(env.Token)
	require.NoError(t, err)
	return env.Token, claims.UserID
}

// In-memory repositories honoring the sentinel contract of the pgx ones.

type userRepoFake struct {
	mu     sync.Mutex
	users  map[int64]entity.User
	nextID int64
}

func newUserRepoFake() *userRepoFake {
	return &userRepoFake{users: map[int64]entity.User{}}
}

func (r *userRepoFake) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.users {
		if ex.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = *u
	return nil
}

func (r *userRepoFake) GetByID(id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *userRepoFake) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *userRepoFake) List() ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.User{}
	for i := int64(1); i <= r.nextID; i++ {
		if u, ok := r.users[i]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *userRepoFake) Update(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	r.users[u.ID] = *u
	return nil
}

func (r *userRepoFake) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type productRepoFake struct {
	mu       sync.Mutex
	products map[int64]entity.Product
	nextID   int64
}

func newProductRepoFake() *productRepoFake {
	return &productRepoFake{products: map[int64]entity.Product{}}
}

func (r *productRepoFake) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.products[p.ID] = *p
	return nil
}

func (r *productRepoFake) GetByID(id int64) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *productRepoFake) List() ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Product{}
	for i := int64(1); i <= r.nextID; i++ {
		if p, ok := r.products[i]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *productRepoFake) SearchByName(name string) ([]entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Product{}
	for i := int64(1); i <= r.nextID; i++ {
		p, ok := r.products[i]
		if ok && strings.Contains(strings.ToLower(p.ProductName), strings.ToLower(name)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *productRepoFake) Update(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return repository.ErrNotFound
	}
	p.UpdatedAt = time.Now()
	r.products[p.ID] = *p
	return nil
}

func (r *productRepoFake) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

var (
	_ repository.UserRepository    = (*userRepoFake)(nil)
	_ repository.ProductRepository = (*productRepoFake)(nil)
)
