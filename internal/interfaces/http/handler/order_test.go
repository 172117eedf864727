package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apptrade "github.com/ahmertooGeeked/Distribution-Forecasting/internal/application/trade"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/catalog"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/partner"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/shared/valueobject"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/domain/trade"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/infrastructure/event"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/infrastructure/persistence"
	"github.com/ahmertooGeeked/Distribution-Forecasting/internal/interfaces/http/router"
)

type handlerEnv struct {
	db     *gorm.DB
	engine *gin.Engine
}

func newHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&catalog.Product{}, &partner.Customer{},
		&trade.Order{}, &trade.OrderItem{},
	))

	log := zap.NewNop()
	orderService := apptrade.NewOrderService(
		persistence.NewGormOrderRepository(db),
		persistence.NewGormProductRepository(db),
		persistence.NewGormCustomerRepository(db),
		persistence.NewGormTransactionManager(db),
		event.NewInMemoryEventBus(log),
		log,
	)

	engine := router.New(log, false, NewOrderHandler(orderService, log))
	return &handlerEnv{db: db, engine: engine}
}

func (e *handlerEnv) seed(t *testing.T, stock int64) (*partner.Customer, *catalog.Product) {
	t.Helper()
	customer, err := partner.NewCustomer("Corner Shop", "", "", "")
	require.NoError(t, err)
	require.NoError(t, e.db.Create(customer).Error)

	price, err := valueobject.NewMoneyFromString("9.99")
	require.NoError(t, err)
	product, err := catalog.NewProduct("Rice", catalog.UnitPiece, price, price, stock, 10)
	require.NoError(t, err)
	require.NoError(t, e.db.Create(product).Error)
	return customer, product
}

func (e *handlerEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestPlaceOrderEndpoint(t *testing.T) {
	env := newHandlerEnv(t)
	customer, product := env.seed(t, 5)

	w := env.request(t, http.MethodPost, "/api/v1/orders", gin.H{
		"customer_id": customer.ID,
		"lines":       []gin.H{{"product_id": product.ID, "quantity": 3}},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "29.97", data["total_amount"])
	assert.Equal(t, "PENDING", data["payment_status"])
}

func TestPlaceOrderEndpointWithStatuses(t *testing.T) {
	env := newHandlerEnv(t)
	customer, product := env.seed(t, 5)

	w := env.request(t, http.MethodPost, "/api/v1/orders", gin.H{
		"customer_id":     customer.ID,
		"payment_status":  "PAID",
		"delivery_status": "DELIVERED",
		"lines":           []gin.H{{"product_id": product.ID, "quantity": 2}},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "PAID", data["payment_status"])
	assert.Equal(t, "DELIVERED", data["delivery_status"])

	w = env.request(t, http.MethodPost, "/api/v1/orders", gin.H{
		"customer_id":    customer.ID,
		"payment_status": "SHIPPED",
		"lines":          []gin.H{{"product_id": product.ID, "quantity": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderEndpointInsufficientStock(t *testing.T) {
	env := newHandlerEnv(t)
	customer, product := env.seed(t, 4)

	w := env.request(t, http.MethodPost, "/api/v1/orders", gin.H{
		"customer_id": customer.ID,
		"lines":       []gin.H{{"product_id": product.ID, "quantity": 10}},
	})

	require.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	errInfo := body["error"].(map[string]interface{})
	assert.Equal(t, "INSUFFICIENT_STOCK", errInfo["code"])
	assert.Contains(t, errInfo["message"], "available 4")
}

func TestPlaceOrderEndpointRejectsMissingLines(t *testing.T) {
	env := newHandlerEnv(t)
	customer, _ := env.seed(t, 5)

	w := env.request(t, http.MethodPost, "/api/v1/orders", gin.H{
		"customer_id": customer.ID,
		"lines":       []gin.H{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	env := newHandlerEnv(t)
	customer, product := env.seed(t, 20)

	created := env.request(t, http.MethodPost, "/api/v1/orders", gin.H{
		"customer_id": customer.ID,
		"lines":       []gin.H{{"product_id": product.ID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, created.Code)
	orderID := decodeBody(t, created)["data"].(map[string]interface{})["id"].(string)

	w := env.request(t, http.MethodPatch, fmt.Sprintf("/api/v1/orders/%s/status", orderID), gin.H{
		"payment_status": "PAID",
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, "PAID", data["payment_status"])

	w = env.request(t, http.MethodPatch, fmt.Sprintf("/api/v1/orders/%s/status", orderID), gin.H{
		"delivery_status": "SHIPPED",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderEndpointNotFound(t *testing.T) {
	env := newHandlerEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/orders/6f1f9a0a-56c3-4f5e-9d64-000000000000", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	errInfo := decodeBody(t, w)["error"].(map[string]interface{})
	assert.Equal(t, "NOT_FOUND", errInfo["code"])
}

func TestListOrdersEndpointFiltersValidation(t *testing.T) {
	env := newHandlerEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/orders?payment_status=BOGUS", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.request(t, http.MethodGet, "/api/v1/orders?payment_status=PENDING", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
