package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/salespulse/backend/auth"
	"github.com/salespulse/backend/models"
	"github.com/salespulse/backend/store"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("handlers-test-secret")

// fakeStore implements store.Store with per-test overrides.
type fakeStore struct {
	createUserFn   func(ctx context.Context, username, passwordHash, role string) (models.User, error)
	findUserFn     func(ctx context.Context, username string) (models.User, error)
	insertSalesFn  func(ctx context.Context, records []models.SalesRecord) (int, error)
	summaryFn      func(ctx context.Context) (store.Summary, error)
	topCustomersFn func(ctx context.Context, limit int) ([]store.TopCustomer, error)
	byDateRangeFn  func(ctx context.Context, from, to time.Time) ([]models.SalesRecord, error)
}

func (f fakeStore) CreateUser(ctx context.Context, username, passwordHash, role string) (models.User, error) {
	if f.createUserFn == nil {
		return models.User{}, nil
	}
	return f.createUserFn(ctx, username, passwordHash, role)
}

func (f fakeStore) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	if f.findUserFn == nil {
		return models.User{}, store.ErrUserNotFound
	}
	return f.findUserFn(ctx, username)
}

func (f fakeStore) InsertSalesRecords(ctx context.Context, records []models.SalesRecord) (int, error) {
	if f.insertSalesFn == nil {
		return len(records), nil
	}
	return f.insertSalesFn(ctx, records)
}

func (f fakeStore) SalesSummary(ctx context.Context) (store.Summary, error) {
	if f.summaryFn == nil {
		return store.Summary{}, nil
	}
	return f.summaryFn(ctx)
}

func (f fakeStore) TopCustomers(ctx context.Context, limit int) ([]store.TopCustomer, error) {
	if f.topCustomersFn == nil {
		return nil, nil
	}
	return f.topCustomersFn(ctx, limit)
}

func (f fakeStore) SalesByDateRange(ctx context.Context, from, to time.Time) ([]models.SalesRecord, error) {
	if f.byDateRangeFn == nil {
		return nil, nil
	}
	return f.byDateRangeFn(ctx, from, to)
}

func newTestRouter(s store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	New(s, testSecret).RegisterRoutes(router.Group("/api"))
	return router
}

// adminUser is the identity most admin-route tests authenticate as.
var adminUser = models.User{
	ID:        1,
	Username:  "admin",
	Role:      models.RoleAdmin,
	CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
}

// withUser wires the fake store's user lookup to the given user.
func withUser(f fakeStore, user models.User) fakeStore {
	f.findUserFn = func(ctx context.Context, username string) (models.User, error) {
		if username != user.Username {
			return models.User{}, store.ErrUserNotFound
		}
		return user, nil
	}
	return f
}

func bearerFor(t *testing.T, username string) string {
	t.Helper()
	token, err := auth.GenerateToken(username, testSecret, auth.TokenValidity)
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
