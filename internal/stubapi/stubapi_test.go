package stubapi

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/khetconnect/admin-panel/internal/hash"
)

func initTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := InitDB(":memory:")
	require.NoError(t, err)
	return db
}

func newHandler(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	db := initTestDB(t)
	return &Handler{DB: db, JWTSecret: []byte("test-secret")}, db
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func do(t *testing.T, h echo.HandlerFunc, method, target string, fields map[string]string, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if fields != nil {
		body, contentType := multipartBody(t, fields)
		req = httptest.NewRequest(method, target, body)
		req.Header.Set(echo.HeaderContentType, contentType)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestLoginIssuesBothTokens(t *testing.T) {
	h, db := newHandler(t)
	pwhash, err := hash.HashPassword("password")
	require.NoError(t, err)
	require.NoError(t, db.Create(&Operator{Email: "admin@khetconnect.xyz", PasswordHash: pwhash}).Error)

	rec := do(t, h.Login, http.MethodPost, "/api/v1/user/login",
		map[string]string{"email": "admin@khetconnect.xyz", "password": "password"}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	env := decode(t, rec)
	require.True(t, env.Success)

	var tokens map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &tokens))
	require.NotEmpty(t, tokens["Access_token"])
	require.NotEmpty(t, tokens["Refress_token"])
}

func TestLoginRejectsBadPassword(t *testing.T) {
	h, db := newHandler(t)
	pwhash, _ := hash.HashPassword("password")
	require.NoError(t, db.Create(&Operator{Email: "admin@khetconnect.xyz", PasswordHash: pwhash}).Error)

	rec := do(t, h.Login, http.MethodPost, "/api/v1/user/login",
		map[string]string{"email": "admin@khetconnect.xyz", "password": "wrong"}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	env := decode(t, rec)
	require.False(t, env.Success)
	require.Equal(t, "Invalid email or password", env.Message)
}

func TestAddAndListFarmers(t *testing.T) {
	h, _ := newHandler(t)

	rec := do(t, h.AddFarmer, http.MethodPost, "/api/v1/farmer/add",
		map[string]string{"name": "Ravi", "phone": "9876543210", "address": "Pune"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, decode(t, rec).Success)

	rec = do(t, h.ListFarmers, http.MethodGet, "/api/v1/farmer/all", nil, "")
	env := decode(t, rec)
	var farmers []Farmer
	require.NoError(t, json.Unmarshal(env.Data, &farmers))
	require.Len(t, farmers, 1)
	require.Equal(t, "Ravi", farmers[0].Name)
	require.Equal(t, "9876543210", farmers[0].Phone)
	require.NotEmpty(t, farmers[0].ExtID)
}

func TestBearerGuard(t *testing.T) {
	h, db := newHandler(t)
	require.NoError(t, db.Create(&Product{ExtID: "p123", ProductName: "Tomatoes", Description: "Fresh", Price: 40, CreatedAt: time.Now()}).Error)

	guarded := h.RequireBearer(h.DeleteProduct)

	// no header
	rec := do(t, guarded, http.MethodDelete, "/api/v1/product/delete",
		map[string]string{"productId": "p123"}, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// garbage token
	rec = do(t, guarded, http.MethodDelete, "/api/v1/product/delete",
		map[string]string{"productId": "p123"}, "not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var count int64
	db.Model(&Product{}).Count(&count)
	require.EqualValues(t, 1, count)

	// real token deletes
	token, err := signAccessToken("admin@khetconnect.xyz", h.JWTSecret)
	require.NoError(t, err)
	rec = do(t, guarded, http.MethodDelete, "/api/v1/product/delete",
		map[string]string{"productId": "p123"}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	db.Model(&Product{}).Count(&count)
	require.Zero(t, count)
}

func TestCheckoutListRequiresSuperadminRole(t *testing.T) {
	h, db := newHandler(t)
	require.NoError(t, db.Create(&Checkout{ExtID: "o1", User: "anita", TotalAmount: 120, PaymentStatus: "Pending", CreatedAt: time.Now()}).Error)

	rec := do(t, h.ListCheckouts, http.MethodPatch, "/api/v1/checkout/getcheckout", nil, "")
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, h.ListCheckouts, http.MethodPatch, "/api/v1/checkout/getcheckout?role=superadmin", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []Checkout
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &orders))
	require.Len(t, orders, 1)
}

func TestSetCheckoutStatus(t *testing.T) {
	h, db := newHandler(t)
	require.NoError(t, db.Create(&Checkout{ExtID: "o1", User: "anita", TotalAmount: 120, PaymentStatus: "Pending", CreatedAt: time.Now()}).Error)

	token, err := signAccessToken("admin@khetconnect.xyz", h.JWTSecret)
	require.NoError(t, err)

	guarded := h.RequireBearer(h.SetCheckoutStatus)
	rec := do(t, guarded, http.MethodPatch, "/api/v1/checkout/status",
		map[string]string{"checkoutId": "o1", "paymentStatus": "Completed"}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var checkout Checkout
	require.NoError(t, db.Where("ext_id = ?", "o1").First(&checkout).Error)
	require.Equal(t, "Completed", checkout.PaymentStatus)

	// unknown id
	rec = do(t, guarded, http.MethodPatch, "/api/v1/checkout/status",
		map[string]string{"checkoutId": "missing", "paymentStatus": "Completed"}, token)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := initTestDB(t)
	require.NoError(t, Seed(db, "admin@khetconnect.xyz", "password"))
	require.NoError(t, Seed(db, "admin@khetconnect.xyz", "password"))

	var ops, farmers int64
	db.Model(&Operator{}).Count(&ops)
	db.Model(&Farmer{}).Count(&farmers)
	require.EqualValues(t, 1, ops)
	require.EqualValues(t, 1, farmers)
}
