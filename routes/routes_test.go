package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/TarunBali/menu-magic-mobile-dine/configs"
	"github.com/TarunBali/menu-magic-mobile-dine/middlewares"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	configs.ConnectionDB(dsn)
	configs.SetupDatabase()

	cfg := &configs.Config{
		DBSource:      dsn,
		Port:          "0",
		JWTSecret:     "test-secret",
		JWTTTL:        time.Hour,
		StaffUsername: "admin",
		StaffPassword: "admin123",
		DemoOTP:       "123456",
		StubDelay:     0,
	}
	if err := configs.SeedStaff(cfg.StaffUsername, cfg.StaffPassword); err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	if err := configs.SeedMenu(); err != nil {
		t.Fatalf("seed menu: %v", err)
	}

	r := gin.New()
	r.Use(middlewares.CORSMiddleware())
	RegisterRoutes(r, configs.DB(), cfg)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd *bytes.Reader
	if body != "" {
		rd = bytes.NewReader([]byte(body))
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestCustomerOrderFlow(t *testing.T) {
	r := newTestRouter(t)

	// browse the catalog
	w, body := do(t, r, "GET", "/menu", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /menu = %d", w.Code)
	}
	items := body["data"].([]any)
	if len(items) == 0 {
		t.Fatal("catalog is empty")
	}
	itemID := items[0].(map[string]any)["ID"].(float64)

	// add to cart twice, token comes back on the first add
	w, body = do(t, r, "POST", "/cart/items", fmt.Sprintf(`{"itemId":%d}`, int(itemID)), nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /cart/items = %d: %s", w.Code, w.Body.String())
	}
	cartToken := body["token"].(string)
	do(t, r, "POST", "/cart/items", fmt.Sprintf(`{"itemId":%d}`, int(itemID)),
		map[string]string{"X-Cart-Token": cartToken})

	w, body = do(t, r, "GET", "/cart", "", map[string]string{"X-Cart-Token": cartToken})
	cart := body["cart"].(map[string]any)
	if cart["totalItems"].(float64) != 2 {
		t.Errorf("totalItems = %v, want 2", cart["totalItems"])
	}

	// checkout needs a login
	w, _ = do(t, r, "POST", "/orders", `{"customerName":"Tarun","paymentMethod":"UPI"}`,
		map[string]string{"X-Cart-Token": cartToken})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated checkout = %d, want 401", w.Code)
	}

	do(t, r, "POST", "/auth/request-otp", `{"phone":"9999999999"}`, nil)
	w, body = do(t, r, "POST", "/auth/verify-otp", `{"phone":"9999999999","otp":"123456"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("verify-otp = %d: %s", w.Code, w.Body.String())
	}
	customerAuth := map[string]string{
		"Authorization": "Bearer " + body["token"].(string),
		"X-Cart-Token":  cartToken,
	}

	w, body = do(t, r, "POST", "/orders", `{"customerName":"Tarun","paymentMethod":"UPI"}`, customerAuth)
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout = %d: %s", w.Code, w.Body.String())
	}
	orderID := body["data"].(map[string]any)["id"].(string)
	amount := body["data"].(map[string]any)["total"].(float64)

	// cart is cleared by the checkout
	_, body = do(t, r, "GET", "/cart", "", map[string]string{"X-Cart-Token": cartToken})
	if body["cart"].(map[string]any)["totalItems"].(float64) != 0 {
		t.Error("cart not cleared after checkout")
	}

	// pay for it, the stub always succeeds
	w, body = do(t, r, "POST", "/payments",
		fmt.Sprintf(`{"orderId":%q,"amount":%d,"method":"UPI"}`, orderID, int64(amount)), customerAuth)
	if w.Code != http.StatusOK {
		t.Fatalf("payment = %d: %s", w.Code, w.Body.String())
	}
	txn := body["data"].(map[string]any)["transactionId"].(string)
	if !strings.HasPrefix(txn, "TXN_") {
		t.Errorf("transactionId = %q", txn)
	}

	// order shows up in the customer's history with status PENDING
	_, body = do(t, r, "GET", "/orders/"+orderID, "", customerAuth)
	if body["data"].(map[string]any)["status"].(string) != "PENDING" {
		t.Errorf("fresh order status = %v", body["data"].(map[string]any)["status"])
	}
}

func TestStaffConsoleFlow(t *testing.T) {
	r := newTestRouter(t)

	// staff endpoints are gated
	w, _ := do(t, r, "GET", "/staff/orders", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated staff list = %d, want 401", w.Code)
	}

	w, body := do(t, r, "POST", "/auth/staff/login", `{"username":"admin","password":"admin123"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("staff login = %d: %s", w.Code, w.Body.String())
	}
	staffAuth := map[string]string{"Authorization": "Bearer " + body["token"].(string)}

	// wrong credentials stay out
	w, _ = do(t, r, "POST", "/auth/staff/login", `{"username":"admin","password":"nope"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad staff login = %d, want 401", w.Code)
	}

	// a customer token does not open the staff console
	do(t, r, "POST", "/auth/request-otp", `{"phone":"7777777777"}`, nil)
	_, body = do(t, r, "POST", "/auth/verify-otp", `{"phone":"7777777777","otp":"123456"}`, nil)
	customerAuth := map[string]string{"Authorization": "Bearer " + body["token"].(string)}
	w, _ = do(t, r, "GET", "/staff/orders", "", customerAuth)
	if w.Code != http.StatusForbidden {
		t.Errorf("customer on staff route = %d, want 403", w.Code)
	}

	// place an order as the customer, then move it through the console
	_, body = do(t, r, "POST", "/orders",
		`{"customerName":"Ravi","items":[{"itemId":1,"quantity":2}],"paymentMethod":"CASH"}`, customerAuth)
	orderID := body["data"].(map[string]any)["id"].(string)

	// the jump straight to COMPLETED is rejected
	w, _ = do(t, r, "PATCH", "/staff/orders/"+orderID+"/status", `{"status":"COMPLETED"}`, staffAuth)
	if w.Code != http.StatusConflict {
		t.Errorf("illegal transition = %d, want 409", w.Code)
	}

	w, _ = do(t, r, "PATCH", "/staff/orders/"+orderID+"/status", `{"status":"CONFIRMED"}`, staffAuth)
	if w.Code != http.StatusOK {
		t.Fatalf("confirm = %d: %s", w.Code, w.Body.String())
	}

	// unknown order id
	w, _ = do(t, r, "PATCH", "/staff/orders/no-such-id/status", `{"status":"CONFIRMED"}`, staffAuth)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown order = %d, want 404", w.Code)
	}

	w, body = do(t, r, "GET", "/staff/dashboard", "", staffAuth)
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard = %d", w.Code)
	}
	data := body["data"].(map[string]any)
	if data["totalOrders"].(float64) != 1 {
		t.Errorf("totalOrders = %v, want 1", data["totalOrders"])
	}
}

func TestConfigEndpoints(t *testing.T) {
	r := newTestRouter(t)

	_, body := do(t, r, "POST", "/auth/staff/login", `{"username":"admin","password":"admin123"}`, nil)
	staffAuth := map[string]string{"Authorization": "Bearer " + body["token"].(string)}

	// defaults to demo mode
	w, body := do(t, r, "GET", "/config", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /config = %d", w.Code)
	}
	if body["data"].(map[string]any)["isDemo"].(bool) != true {
		t.Error("fresh config should be demo")
	}

	// a broken file changes nothing
	w, _ = do(t, r, "PUT", "/staff/config", "not json at all", staffAuth)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad config upload = %d, want 400", w.Code)
	}
	_, body = do(t, r, "GET", "/config", "", nil)
	if body["data"].(map[string]any)["isDemo"].(bool) != true {
		t.Error("isDemo flipped on a failed upload")
	}

	// a valid file flips demo off
	w, _ = do(t, r, "PUT", "/staff/config", `{"apiKeys":{"payments":"pk_live"}}`, staffAuth)
	if w.Code != http.StatusOK {
		t.Fatalf("config upload = %d", w.Code)
	}
	_, body = do(t, r, "GET", "/config", "", nil)
	if body["data"].(map[string]any)["isDemo"].(bool) != false {
		t.Error("isDemo should be off after a valid upload")
	}

	// reset goes back to demo
	do(t, r, "POST", "/staff/config/reset", "", staffAuth)
	_, body = do(t, r, "GET", "/config", "", nil)
	if body["data"].(map[string]any)["isDemo"].(bool) != true {
		t.Error("reset did not restore demo mode")
	}
}
