package checkout

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/La-Mediterranee/Server/internal/payment"
)

func setupBuyRouter(prices *stubPriceReader, intents *stubIntentCreator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	service := NewService(prices, intents, Options{MultiplyQuantity: true})
	handler := NewHandler(service)

	r.POST("/buy/create-payment-intent", handler.CreatePaymentIntent)
	return r
}

func postCart(t *testing.T, r *gin.Engine, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/buy/create-payment-intent", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePaymentIntentEndpoint(t *testing.T) {
	r := setupBuyRouter(catalogFixture(), &stubIntentCreator{})

	body, _ := json.Marshal(exampleCart())
	w := postCart(t, r, body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ClientSecret string `json:"clientSecret"`
		Amount       int64  `json:"amount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	if resp.Amount != 650 {
		t.Fatalf("expected amount 650, got %d", resp.Amount)
	}
	if resp.ClientSecret == "" {
		t.Fatalf("expected a client secret")
	}
}

func TestCreatePaymentIntentEndpointInvalidBody(t *testing.T) {
	r := setupBuyRouter(catalogFixture(), &stubIntentCreator{})

	w := postCart(t, r, []byte(`{"not":"an array"}`))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestCreatePaymentIntentEndpointMissingRecord(t *testing.T) {
	r := setupBuyRouter(catalogFixture(), &stubIntentCreator{})

	body, _ := json.Marshal([]CartItem{
		{ID: "ghost", CategoryType: CategoryGrocery, Quantity: 1},
	})
	w := postCart(t, r, body)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", w.Code)
	}
}

func TestCreatePaymentIntentEndpointProcessorFailure(t *testing.T) {
	intents := &stubIntentCreator{err: &payment.ProcessorError{Message: "outage"}}
	r := setupBuyRouter(catalogFixture(), intents)

	body, _ := json.Marshal(exampleCart())
	w := postCart(t, r, body)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", w.Code)
	}
}

func TestCreatePaymentIntentEndpointEmptyCart(t *testing.T) {
	r := setupBuyRouter(catalogFixture(), &stubIntentCreator{})

	w := postCart(t, r, []byte(`[]`))

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", w.Code)
	}
}
