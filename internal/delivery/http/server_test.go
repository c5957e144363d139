package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/thenextech/shoploc-back-end/config"
	"github.com/thenextech/shoploc-back-end/internal/delivery/http/middleware"
	"github.com/thenextech/shoploc-back-end/internal/delivery/http/router"
	"github.com/thenextech/shoploc-back-end/internal/delivery/http/router/handler"
	"github.com/thenextech/shoploc-back-end/internal/domain/service"
	"github.com/thenextech/shoploc-back-end/internal/infra/auth"
	"github.com/thenextech/shoploc-back-end/internal/infra/mail"
	"github.com/thenextech/shoploc-back-end/internal/infra/metrics"
	"github.com/thenextech/shoploc-back-end/internal/infra/persistence/postgres"
	"github.com/thenextech/shoploc-back-end/internal/infra/pubsub"
	"github.com/thenextech/shoploc-back-end/internal/infra/qrcode"
	"github.com/thenextech/shoploc-back-end/internal/infra/session"
	"github.com/thenextech/shoploc-back-end/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testCode = "123456"

type fixedCodes struct{}

func (fixedCodes) Generate() (string, error) { return testCode, nil }

// outbox records every email instead of sending it.
type outbox struct {
	mu   sync.Mutex
	sent []service.Email
}

func (o *outbox) Send(_ context.Context, email service.Email) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, email)

	return nil
}

func (o *outbox) last() service.Email {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.sent[len(o.sent)-1]
}

type testApp struct {
	echo    *echo.Echo
	outbox  *outbox
	metrics *metrics.Metrics
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{
		Session:        &config.SessionConfig{Store: "memory", CookieName: "SHOPLOC_SESSION", TTL: time.Hour},
		Verification:   &config.VerificationConfig{CodeLength: 6, CodeTTL: 10 * time.Minute},
		Auth:           &config.AuthConfig{BcryptCost: 4},
		PasswordPolicy: &config.PasswordPolicyConfig{MinLength: 6},
	}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, postgres.Migrate(context.Background(), db))

	userRepo := postgres.NewUserRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	productRepo := postgres.NewProductRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	lineRepo := postgres.NewOrderLineRepository(db)
	txManager := postgres.NewTransactionManager(db)

	box := &outbox{}
	m := metrics.New()
	sessions := session.NewMemoryStore(cfg.Session.TTL)
	hasher := auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost, cfg.PasswordPolicy.MinLength)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo: userRepo,
		Sessions: sessions,
		Hasher:   hasher,
		Codes:    fixedCodes{},
		Mailer:   box,
		Composer: mail.NewComposer(),
		Metrics:  m,
		Config:   cfg,
		Logger:   log,
	})
	userUC := impl.NewUserService(impl.UserServiceParams{
		TxManager: txManager, UserRepo: userRepo, Hasher: hasher, Metrics: m, Logger: log,
	})
	categoryUC := impl.NewCategoryService(impl.CategoryServiceParams{
		TxManager: txManager, CategoryRepo: categoryRepo, UserRepo: userRepo, Logger: log,
	})
	productUC := impl.NewProductService(impl.ProductServiceParams{
		TxManager: txManager, ProductRepo: productRepo, Logger: log,
	})
	orderUC := impl.NewOrderService(impl.OrderServiceParams{
		TxManager: txManager, OrderRepo: orderRepo, ProductRepo: productRepo, Logger: log,
	})
	lineUC := impl.NewOrderLineService(impl.OrderLineServiceParams{
		TxManager:   txManager,
		LineRepo:    lineRepo,
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		Publisher:   pubsub.NewInstrumentedPublisher(pubsub.NewNoopPublisher(log), m),
		Logger:      log,
	})
	storefrontUC := impl.NewStorefrontService(userRepo, qrcode.NewQRCodeService(256, "M", "http://localhost:3000"))

	e := NewEcho(ServerParams{
		Cfg:               cfg,
		Logger:            log,
		ErrorMiddleware:   middleware.NewErrorMiddleware(log),
		MetricsMiddleware: middleware.NewMetricsMiddleware(m),
		RouterParams: router.RouterParams{
			AuthHandler:       handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, UserUC: userUC, Logger: log}),
			AccountHandler:    handler.NewAccountHandler(handler.AccountHandlerParams{UserUC: userUC, AuthUC: authUC, Logger: log}),
			CategoryHandler:   handler.NewCategoryHandler(categoryUC),
			ProductHandler:    handler.NewProductHandler(productUC),
			OrderHandler:      handler.NewOrderHandler(orderUC),
			OrderLineHandler:  handler.NewOrderLineHandler(lineUC),
			StorefrontHandler: handler.NewStorefrontHandler(storefrontUC),
			HealthHandler:     handler.NewHealthHandler(sqlDB, log),
			SessionMiddleware: middleware.NewSessionMiddleware(sessions, cfg, log),
			Metrics:           m,
		},
	})

	return &testApp{echo: e, outbox: box, metrics: m}
}

// browser keeps the session cookie between requests like a real client.
type browser struct {
	t       *testing.T
	app     *testApp
	cookies map[string]*nethttp.Cookie
}

func (a *testApp) browser(t *testing.T) *browser {
	return &browser{t: t, app: a, cookies: map[string]*nethttp.Cookie{}}
}

// do sends body as a form when it is url.Values, as JSON otherwise.
func (b *browser) do(method, target string, body any) *httptest.ResponseRecorder {
	b.t.Helper()

	var reader io.Reader
	contentType := ""
	switch v := body.(type) {
	case nil:
	case url.Values:
		reader = strings.NewReader(v.Encode())
		contentType = echo.MIMEApplicationForm
	default:
		payload, err := json.Marshal(v)
		require.NoError(b.t, err)
		reader = bytes.NewReader(payload)
		contentType = echo.MIMEApplicationJSON
	}

	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	for _, cookie := range b.cookies {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	b.app.echo.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		b.cookies[cookie.Name] = cookie
	}

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func assertURL(t *testing.T, rec *httptest.ResponseRecorder, status int, url string) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	assert.Equal(t, url, decode(t, rec)["url"])
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) map[string]any {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, code, body["code"])
	assert.NotEmpty(t, body["error"])

	return body
}

// signIn registers role/email and completes both login steps, returning the user id.
func (b *browser) signIn(role, email string, extra map[string]any) int64 {
	b.t.Helper()

	payload := map[string]any{"firstName": "Ada", "lastName": "Lovelace", "email": email, "password": "secret"}
	for k, v := range extra {
		payload[k] = v
	}
	assertURL(b.t, b.do(nethttp.MethodPost, "/"+role+"/register", payload), nethttp.StatusFound, "/"+role+"/login")
	assertURL(b.t, b.do(nethttp.MethodPost, "/"+role+"/login", url.Values{"email": {email}, "password": {"secret"}}), nethttp.StatusOK, "/"+role+"/verify")
	assertURL(b.t, b.do(nethttp.MethodPost, "/"+role+"/verify", url.Values{"code": {testCode}}), nethttp.StatusOK, "/"+role+"/dashboard")

	rec := b.do(nethttp.MethodGet, "/"+role+"/dashboard", nil)
	require.Equal(b.t, nethttp.StatusOK, rec.Code)
	object := decode(b.t, rec)["object"].(map[string]any)

	return int64(object["userId"].(float64))
}

func TestServer_ClientLoginFlow(t *testing.T) {
	app := newTestApp(t)
	client := app.browser(t)

	register := map[string]any{"firstName": "Ada", "lastName": "Lovelace", "email": "a@x.com", "password": "secret", "birthday": "1990-04-02"}
	assertURL(t, client.do(nethttp.MethodGet, "/client/register", nil), nethttp.StatusOK, "/client/register")
	assertURL(t, client.do(nethttp.MethodPost, "/client/register", register), nethttp.StatusFound, "/client/login")
	assertError(t, client.do(nethttp.MethodPost, "/client/register", register), nethttp.StatusBadRequest, "REGISTER_ERROR")

	body := assertError(t, client.do(nethttp.MethodGet, "/client/dashboard", nil), nethttp.StatusUnauthorized, "UNAUTHORIZED_ERROR")
	assert.Equal(t, "/client/login", body["url"])

	// Wrong password and wrong role share the same answer.
	body = assertError(t, client.do(nethttp.MethodPost, "/client/login", url.Values{"email": {"a@x.com"}, "password": {"nope!!"}}), nethttp.StatusUnauthorized, "LOGIN_ERROR")
	assert.Equal(t, "Identifiant ou mot de passe incorrect", body["error"])
	assertError(t, client.do(nethttp.MethodPost, "/merchant/login", url.Values{"email": {"a@x.com"}, "password": {"secret"}}), nethttp.StatusUnauthorized, "LOGIN_ERROR")

	assertURL(t, client.do(nethttp.MethodPost, "/client/login", url.Values{"email": {"a@x.com"}, "password": {"secret"}}), nethttp.StatusOK, "/client/verify")
	mailed := app.outbox.last()
	assert.Equal(t, "a@x.com", mailed.To)
	assert.Contains(t, mailed.HTML, testCode)

	// A pending login is not a login.
	assertError(t, client.do(nethttp.MethodGet, "/client/dashboard", nil), nethttp.StatusUnauthorized, "UNAUTHORIZED_ERROR")

	assertError(t, client.do(nethttp.MethodPost, "/client/verify", url.Values{"code": {"000000"}}), nethttp.StatusUnauthorized, "VERIFICATION_CODE_ERROR")
	assertURL(t, client.do(nethttp.MethodPost, "/client/verify", url.Values{"code": {testCode}}), nethttp.StatusOK, "/client/dashboard")

	rec := client.do(nethttp.MethodGet, "/client/dashboard", nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	object := decode(t, rec)["object"].(map[string]any)
	assert.Equal(t, "a@x.com", object["email"])
	assert.Equal(t, "client", object["role"])
	assert.Equal(t, "1990-04-02", object["birthday"])

	assertURL(t, client.do(nethttp.MethodGet, "/client/login", nil), nethttp.StatusFound, "/client/dashboard")
	body = assertError(t, client.do(nethttp.MethodGet, "/merchant/dashboard", nil), nethttp.StatusUnauthorized, "UNAUTHORIZED_ERROR")
	assert.Equal(t, "/merchant/login", body["url"])

	assertURL(t, client.do(nethttp.MethodGet, "/client/logout", nil), nethttp.StatusOK, "/client/login")
	assertError(t, client.do(nethttp.MethodGet, "/client/dashboard", nil), nethttp.StatusUnauthorized, "UNAUTHORIZED_ERROR")
	assertURL(t, client.do(nethttp.MethodGet, "/client/login", nil), nethttp.StatusOK, "/client/login")

	cookie := client.cookies["SHOPLOC_SESSION"]
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, nethttp.SameSiteLaxMode, cookie.SameSite)
}

func TestServer_SessionsAreIsolated(t *testing.T) {
	app := newTestApp(t)
	alice := app.browser(t)
	alice.signIn("client", "alice@x.com", nil)

	other := app.browser(t)
	assertError(t, other.do(nethttp.MethodGet, "/client/dashboard", nil), nethttp.StatusUnauthorized, "UNAUTHORIZED_ERROR")
	assertError(t, other.do(nethttp.MethodPost, "/client/verify", url.Values{"code": {testCode}}), nethttp.StatusUnauthorized, "VERIFICATION_CODE_ERROR")
}

func TestServer_MerchantRegisterRequiresStoreName(t *testing.T) {
	app := newTestApp(t)
	merchant := app.browser(t)

	payload := map[string]any{"firstName": "Bob", "lastName": "Baker", "email": "bob@shop.fr", "password": "secret"}
	assertError(t, merchant.do(nethttp.MethodPost, "/merchant/register", payload), nethttp.StatusBadRequest, "REGISTER_ERROR")

	payload["email"] = "not-an-email"
	payload["storeName"] = "La Boulange"
	assertError(t, merchant.do(nethttp.MethodPost, "/merchant/register", payload), nethttp.StatusBadRequest, "REGISTER_ERROR")
}

func TestServer_CatalogAndOrders(t *testing.T) {
	app := newTestApp(t)
	merchant := app.browser(t)
	merchantID := merchant.signIn("merchant", "bob@shop.fr", map[string]any{"storeName": "La Boulange", "address": "1 rue du Pain"})

	// Mutations need a merchant session.
	anonymous := app.browser(t)
	assertError(t, anonymous.do(nethttp.MethodPost, "/merchant/category/create", map[string]any{"name": "Pains", "merchantId": merchantID}), nethttp.StatusUnauthorized, "UNAUTHORIZED_ERROR")

	rec := merchant.do(nethttp.MethodPost, "/merchant/category/create", map[string]any{"name": "Pains", "merchantId": merchantID})
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	categoryID := int64(decode(t, rec)["categoryId"].(float64))

	rec = merchant.do(nethttp.MethodPost, "/merchant/product/create", map[string]any{
		"name": "Baguette", "description": "Tradition", "price": "1.20", "categoryId": categoryID, "merchantId": merchantID,
	})
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	productID := int64(decode(t, rec)["productId"].(float64))

	assertError(t, anonymous.do(nethttp.MethodGet, "/merchant/category", nil), nethttp.StatusBadRequest, "VALIDATION_FAILED")
	assertError(t, anonymous.do(nethttp.MethodGet, "/merchant/category?id=abc", nil), nethttp.StatusBadRequest, "VALIDATION_FAILED")
	rec = anonymous.do(nethttp.MethodGet, fmt.Sprintf("/merchant/product/category?idCategory=%d", categoryID), nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Baguette")

	client := app.browser(t)
	clientID := client.signIn("client", "a@x.com", nil)

	rec = client.do(nethttp.MethodPost, "/client/order/create", map[string]any{"userId": clientID})
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	order := decode(t, rec)
	orderID := int64(order["orderId"].(float64))
	assert.Equal(t, "PENDING", order["status"])

	body := assertError(t, client.do(nethttp.MethodPost, "/client/orderline/create", map[string]any{"orderId": orderID, "productId": 999, "quantity": 1}), nethttp.StatusNotFound, "PRODUCT_NOT_FOUND")
	assert.Equal(t, "Product not found with ID: 999", body["error"])
	rec = client.do(nethttp.MethodGet, "/client/orderline/all", nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = client.do(nethttp.MethodPost, "/client/orderline/create", map[string]any{"orderId": orderID, "productId": productID, "quantity": 2})
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	line := decode(t, rec)
	assert.Equal(t, "Baguette", line["productName"])
	lineID := int64(line["orderLineId"].(float64))

	rec = merchant.do(nethttp.MethodGet, fmt.Sprintf("/merchant/orderline/merchant?idMerchant=%d", merchantID), nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Baguette")

	rec = client.do(nethttp.MethodPut, fmt.Sprintf("/client/order?id=%d", orderID), map[string]any{"status": "CONFIRMED"})
	require.Equal(t, nethttp.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "CONFIRMED", decode(t, rec)["status"])
	assertError(t, client.do(nethttp.MethodPut, fmt.Sprintf("/client/order?id=%d", orderID), map[string]any{"status": "SHIPPED"}), nethttp.StatusBadRequest, "VALIDATION_FAILED")

	rec = client.do(nethttp.MethodDelete, fmt.Sprintf("/client/orderline?id=%d", lineID), nil)
	assert.Equal(t, nethttp.StatusNoContent, rec.Code)
	assertError(t, client.do(nethttp.MethodGet, fmt.Sprintf("/client/orderline?id=%d", lineID), nil), nethttp.StatusNotFound, "ORDERLINE_NOT_FOUND")
	assertError(t, client.do(nethttp.MethodDelete, fmt.Sprintf("/client/orderline?id=%d", lineID), nil), nethttp.StatusNotFound, "ORDERLINE_NOT_FOUND")

	rec = merchant.do(nethttp.MethodPost, "/merchant/category/create", map[string]any{"name": "Vide", "merchantId": merchantID})
	require.Equal(t, nethttp.StatusOK, rec.Code)
	emptyID := int64(decode(t, rec)["categoryId"].(float64))
	assert.Equal(t, nethttp.StatusNoContent, merchant.do(nethttp.MethodDelete, fmt.Sprintf("/merchant/category?id=%d", emptyID), nil).Code)
	assertError(t, merchant.do(nethttp.MethodGet, fmt.Sprintf("/merchant/category?id=%d", emptyID), nil), nethttp.StatusNotFound, "CATEGORY_NOT_FOUND")
	assertError(t, merchant.do(nethttp.MethodDelete, fmt.Sprintf("/merchant/category?id=%d", emptyID), nil), nethttp.StatusNotFound, "CATEGORY_NOT_FOUND")

	rec = anonymous.do(nethttp.MethodGet, fmt.Sprintf("/merchant/qr?idMerchant=%d", merchantID), nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assertError(t, anonymous.do(nethttp.MethodGet, fmt.Sprintf("/merchant/qr?idMerchant=%d", clientID), nil), nethttp.StatusNotFound, "MERCHANT_NOT_FOUND")
}

func TestServer_DeleteAccountEndsSession(t *testing.T) {
	app := newTestApp(t)
	client := app.browser(t)
	client.signIn("client", "a@x.com", nil)

	assertURL(t, client.do(nethttp.MethodDelete, "/client/account", nil), nethttp.StatusOK, "/client/login")
	assertError(t, client.do(nethttp.MethodGet, "/client/dashboard", nil), nethttp.StatusUnauthorized, "UNAUTHORIZED_ERROR")
	assertError(t, client.do(nethttp.MethodPost, "/client/login", url.Values{"email": {"a@x.com"}, "password": {"secret"}}), nethttp.StatusUnauthorized, "LOGIN_ERROR")
}

func TestServer_HealthMetricsAndRequestID(t *testing.T) {
	app := newTestApp(t)
	b := app.browser(t)

	rec := b.do(nethttp.MethodGet, "/health", nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	assertError(t, b.do(nethttp.MethodGet, "/nowhere", nil), nethttp.StatusNotFound, "HTTP_ERROR")

	rec = b.do(nethttp.MethodGet, "/metrics", nil)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `shoploc_http_requests_total{method="GET",path="/health",status="200"} 1`)
}
