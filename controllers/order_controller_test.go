package controllers_test

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Fatima-Benaya/2nConv-ELLW/configs"
	"github.com/Fatima-Benaya/2nConv-ELLW/entity"
	"github.com/Fatima-Benaya/2nConv-ELLW/routes"
	"github.com/Fatima-Benaya/2nConv-ELLW/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{}, &entity.Food{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Score{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}
	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	return doJSONAs(t, r, method, path, body, "")
}

func doJSONAs(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(1, "staff@example.com", role, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

const cashOrderBody = `{
	"customerName": "Ana García",
	"address": "Calle 1",
	"phone": "600000000",
	"email": "a@b.com",
	"paymentMethod": "Cash",
	"items": [{"foodId": "1", "name": "Pizza", "price": 9.8, "quantity": 2}],
	"total": 19.6
}`

func TestCreateOrderEndToEnd(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", cashOrderBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
	}

	var order entity.Order
	if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if order.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if order.Status != "Pending" {
		t.Fatalf("status = %q, want Pending", order.Status)
	}
	if len(order.Items) != 1 {
		t.Fatalf("items length = %d, want 1", len(order.Items))
	}
	if math.Abs(order.Total-19.6) > 1e-9 {
		t.Fatalf("total = %v, want 19.6", order.Total)
	}
}

func TestCreateOrderRejectsBadEmail(t *testing.T) {
	r := setupRouter(t)

	body := strings.Replace(cashOrderBody, "a@b.com", "not-an-email", 1)
	w := doJSON(t, r, http.MethodPost, "/api/orders", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", w.Code)
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(resp.Message, "email is required") {
		t.Fatalf("message = %q, want an email message", resp.Message)
	}
}

func TestCreateOrderRejectsCardWithoutDetails(t *testing.T) {
	r := setupRouter(t)

	body := strings.Replace(cashOrderBody, `"Cash"`, `"Card"`, 1)
	w := doJSON(t, r, http.MethodPost, "/api/orders", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Card details are required.") {
		t.Fatalf("body = %s", w.Body.String())
	}

	// same payload, with details, passes
	withDetails := strings.Replace(body, `"paymentMethod": "Card",`,
		`"paymentMethod": "Card", "paymentDetails": {"cardHolder": "Ana García", "cardLast4": "4242", "cardExpiry": "12/27"},`, 1)
	w = doJSON(t, r, http.MethodPost, "/api/orders", withDetails)
	if w.Code != http.StatusCreated {
		t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestCreateOrderRejectsEmptyAndInvalidItems(t *testing.T) {
	r := setupRouter(t)

	empty := strings.Replace(cashOrderBody,
		`[{"foodId": "1", "name": "Pizza", "price": 9.8, "quantity": 2}]`, `[]`, 1)
	w := doJSON(t, r, http.MethodPost, "/api/orders", empty)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty items: code = %d, want 400", w.Code)
	}

	zeroQty := strings.Replace(cashOrderBody, `"quantity": 2`, `"quantity": 0`, 1)
	w = doJSON(t, r, http.MethodPost, "/api/orders", zeroQty)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("zero quantity: code = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Order items are invalid.") {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	r := setupRouter(t)

	for i := 0; i < 2; i++ {
		if w := doJSON(t, r, http.MethodPost, "/api/orders", cashOrderBody); w.Code != http.StatusCreated {
			t.Fatalf("seed order: code = %d", w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/orders", "")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	var orders []entity.Order
	if err := json.Unmarshal(w.Body.Bytes(), &orders); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("len = %d, want 2", len(orders))
	}
	if orders[0].CreatedAt.Before(orders[1].CreatedAt) {
		t.Fatal("orders not newest first")
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", cashOrderBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("seed order: code = %d", w.Code)
	}
	var order entity.Order
	json.Unmarshal(w.Body.Bytes(), &order)

	path := fmt.Sprintf("/api/orders/%d/status", order.ID)
	admin := tokenFor(t, "admin")

	w = doJSONAs(t, r, http.MethodPatch, path, `{"status": "OutForDelivery"}`, admin)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", w.Code, w.Body.String())
	}
	var updated entity.Order
	json.Unmarshal(w.Body.Bytes(), &updated)
	if updated.Status != "OutForDelivery" {
		t.Fatalf("status = %q", updated.Status)
	}

	w = doJSONAs(t, r, http.MethodPatch, path, `{"status": "Teleported"}`, admin)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid status: code = %d, want 400", w.Code)
	}

	w = doJSONAs(t, r, http.MethodPatch, "/api/orders/9999/status", `{"status": "Preparing"}`, admin)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown order: code = %d, want 404", w.Code)
	}
}

func TestUpdateOrderStatusRequiresAdmin(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders", cashOrderBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("seed order: code = %d", w.Code)
	}
	var order entity.Order
	json.Unmarshal(w.Body.Bytes(), &order)

	path := fmt.Sprintf("/api/orders/%d/status", order.ID)

	w = doJSON(t, r, http.MethodPatch, path, `{"status": "Preparing"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: code = %d, want 401", w.Code)
	}

	w = doJSONAs(t, r, http.MethodPatch, path, `{"status": "Preparing"}`, tokenFor(t, "customer"))
	if w.Code != http.StatusForbidden {
		t.Fatalf("customer token: code = %d, want 403", w.Code)
	}

	w = doJSONAs(t, r, http.MethodPatch, path, `{"status": "Preparing"}`, tokenFor(t, "admin"))
	if w.Code != http.StatusOK {
		t.Fatalf("admin token: code = %d, body = %s", w.Code, w.Body.String())
	}
}
