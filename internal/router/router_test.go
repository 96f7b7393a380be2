package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/La-Mediterranee/Server/internal/auth"
	"github.com/La-Mediterranee/Server/internal/catalog"
	"github.com/La-Mediterranee/Server/internal/checkout"
	"github.com/La-Mediterranee/Server/internal/payment"
	"github.com/La-Mediterranee/Server/internal/wallet"
	"github.com/La-Mediterranee/Server/internal/webhooks"
)

type noopIntents struct{}

func (noopIntents) CreateIntent(_ context.Context, amount int64, currency string) (*payment.Intent, error) {
	return &payment.Intent{ID: "pi_test", ClientSecret: "secret", Amount: amount, Currency: currency}, nil
}

type noopProcessor struct{}

func (noopProcessor) CreateCustomer(_ context.Context, _, _ string) (string, error) {
	return "cus_test", nil
}

func (noopProcessor) CreateSetupIntent(_ context.Context, _ string) (*payment.SetupIntent, error) {
	return &payment.SetupIntent{ID: "seti_test", ClientSecret: "secret"}, nil
}

func (noopProcessor) ListPaymentMethods(_ context.Context, _ string) ([]payment.MethodGroup, error) {
	return nil, nil
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := auth.NewInMemoryUserRepository()
	catalogRepo := catalog.NewInMemoryRepository()

	return New(Deps{
		Auth:     auth.NewHandler(auth.NewService(userRepo)),
		Catalog:  catalog.NewHandler(catalog.NewService(catalogRepo, nil)),
		Checkout: checkout.NewHandler(checkout.NewService(catalogRepo, noopIntents{}, checkout.Options{})),
		Wallet:   wallet.NewHandler(wallet.NewService(userRepo, noopProcessor{})),
		Webhooks: webhooks.NewHandler("whsec_test"),
	})
}

func TestHealthCheck(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestWalletRequiresAuth(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/user/wallet", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestProductsAreOpen(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestImageUploadRequiresAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := testRouter(t)

	token, err := auth.GenerateToken("user-1", "user@example.com", auth.RoleCustomer)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/products/gyros/image", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", w.Code)
	}
}
