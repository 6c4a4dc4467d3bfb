package handlers

import (
	"context"
	"net/http"

	"inventory_management/internal/models"
	"inventory_management/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID    int64
	signUpErr   error
	genToken    string
	genTokenErr error
	user        *models.User
	resolveErr  error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastResolveToken   string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int64, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genToken, m.genTokenErr
}

func (m *mockAuth) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	m.lastResolveToken = token
	if m.resolveErr != nil {
		return nil, m.resolveErr
	}
	if m.user == nil {
		return &models.User{ID: 1, Username: "tester"}, nil
	}
	return m.user, nil
}

type mockProducts struct {
	createID  int64
	createErr error
	product   *models.Product
	getErr    error
	page      service.ProductPage
	listErr   error
	updated   *models.Product
	updateErr error
	stats     models.InventoryStats
	statsErr  error

	createCalls    int
	lastInput      service.ProductInput
	lastPagination service.Pagination
	lastID         int64
	lastQuantity   int
}

func (m *mockProducts) Create(ctx context.Context, in service.ProductInput) (int64, error) {
	m.createCalls++
	m.lastInput = in
	return m.createID, m.createErr
}

func (m *mockProducts) Get(ctx context.Context, id int64) (*models.Product, error) {
	m.lastID = id
	return m.product, m.getErr
}

func (m *mockProducts) List(ctx context.Context, p service.Pagination) (service.ProductPage, error) {
	m.lastPagination = p
	return m.page, m.listErr
}

func (m *mockProducts) UpdateQuantity(ctx context.Context, id int64, quantity int) (*models.Product, error) {
	m.lastID = id
	m.lastQuantity = quantity
	return m.updated, m.updateErr
}

func (m *mockProducts) Stats(ctx context.Context) (models.InventoryStats, error) {
	return m.stats, m.statsErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
