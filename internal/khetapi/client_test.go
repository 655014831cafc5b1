package khetapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/khetconnect/admin-panel/internal/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api/v1/", 5*time.Second, logging.New("error")), srv
}

func TestPrivilegedCallWithoutTokenIssuesNoRequest(t *testing.T) {
	hits := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
	})

	err := client.DeleteProduct(context.Background(), "", "p123")
	require.ErrorIs(t, err, ErrUnauthenticated)
	require.Zero(t, hits, "no request may leave the process without a token")

	err = client.DeleteFarmer(context.Background(), "", "f1")
	require.ErrorIs(t, err, ErrUnauthenticated)
	err = client.SetOrderStatus(context.Background(), "", "o1", "Completed")
	require.ErrorIs(t, err, ErrUnauthenticated)
	require.Zero(t, hits)
}

func TestBearerHeaderAndMultipartFields(t *testing.T) {
	var gotAuth, gotID string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotID = r.FormValue("productId")
		w.Write([]byte(`{"success":true,"data":{"deleted":"p123"}}`))
	})

	require.NoError(t, client.DeleteProduct(context.Background(), "tok-123", "p123"))
	require.Equal(t, "Bearer tok-123", gotAuth)
	require.Equal(t, "p123", gotID)
}

func TestLoginDecodesTokens(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/user/login", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "a@b.c", r.FormValue("email"))
		require.Equal(t, "pw", r.FormValue("password"))
		require.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true,"data":{"Access_token":"acc","Refress_token":"ref"}}`))
	})

	tokens, err := client.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.Equal(t, "acc", tokens.AccessToken)
	require.Equal(t, "ref", tokens.RefreshToken)
}

func TestRejectionCarriesServerMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"Invalid email or password"}`))
	})

	_, err := client.Login(context.Background(), "a@b.c", "wrong")
	var he *HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusUnauthorized, he.Status)
	require.Equal(t, "Invalid email or password", he.Message)
}

func TestEnvelopeFalseOn200IsRejection(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"nope"}`))
	})

	_, err := client.ListFarmers(context.Background())
	var he *HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, "nope", he.Message)
}

func TestMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>definitely not json</html>`))
	})

	_, err := client.ListProducts(context.Background())
	var mr *MalformedResponseError
	require.ErrorAs(t, err, &mr)
}

func TestMalformedDataShape(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"not":"a list"}}`))
	})

	_, err := client.ListOrders(context.Background())
	var mr *MalformedResponseError
	require.ErrorAs(t, err, &mr)
}

func TestListOrdersUsesPatchWithRole(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/v1/checkout/getcheckout", r.URL.Path)
		require.Equal(t, "superadmin", r.URL.Query().Get("role"))
		w.Write([]byte(`{"success":true,"data":[{"_id":"o1","user":"anita","totalAmount":120,"paymentStatus":"Pending","createdAt":"2025-01-01"}]}`))
	})

	orders, err := client.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, "o1", orders[0].ID)
	require.Equal(t, 120.0, orders[0].TotalAmount)
}

func TestContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"success":true,"data":[]}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.ListFarmers(ctx)
	require.Error(t, err)
	require.True(t, IsNetwork(err))
}
