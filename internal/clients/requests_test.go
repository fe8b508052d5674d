package clients

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
)

func TestRequestsClientList(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"page":     r.URL.Query().Get("page"),
			"limit":    r.URL.Query().Get("limit"),
			"status":   r.URL.Query().Get("status"),
			"currency": r.URL.Query().Get("currency"),
		}
		w.Write([]byte(`{
			"success": true,
			"data": {
				"requests": [
					{"id":"r1","user":{"name":"Asha","email":"asha@example.com"},"currency":"INR","amount":5000,"usdtAmount":60.2,"totalAmount":63.2,"status":"PENDING"},
					{"id":"r2","user":{"name":"Ben","email":"ben@example.com"},"currency":"INR","amount":1000,"usdtAmount":12.0,"totalAmount":12.6,"status":"PENDING"},
					{"id":"r3","user":{"name":"Chitra","email":"chitra@example.com"},"currency":"NGN","amount":20000,"usdtAmount":13.1,"totalAmount":13.7,"status":"PENDING"}
				],
				"summary": {"pending":3,"processing":0,"completed":10,"totalCredited":980.5}
			},
			"pagination": {"page":1,"limit":20,"total":3,"totalPages":1}
		}`))
	}))
	defer srv.Close()

	client := NewRequestsClient(NewCaller(srv.URL, 5*time.Second))
	list, err := client.List(context.Background(), "tok", models.RequestFilters{
		Page: 1, Limit: 20, Status: models.RequestStatusPending,
	})

	assert.NoError(t, err)
	assert.Equal(t, map[string]string{
		"page": "1", "limit": "20", "status": "PENDING", "currency": "",
	}, gotQuery)

	assert.Len(t, list.Items, 3)
	assert.Equal(t, "Asha", list.Items[0].User.Name)
	assert.Equal(t, "asha@example.com", list.Items[0].User.Email)
	assert.Equal(t, "INR", list.Items[0].Currency)
	assert.Equal(t, 63.2, list.Items[0].TotalAmount)
	assert.Equal(t, models.RequestStatusPending, list.Items[0].Status)

	assert.Equal(t, 3, list.Summary.Pending)
	assert.Equal(t, 980.5, list.Summary.TotalCredited)
	assert.Equal(t, models.Pagination{Page: 1, Limit: 20, Total: 3, TotalPages: 1}, list.Pagination)
}

func TestRequestsClientGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/master-node/add-money-requests/r9", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"id":"r9","status":"PROCESSING","paymentProof":"https://cdn.example.com/proof.png"}}`))
	}))
	defer srv.Close()

	client := NewRequestsClient(NewCaller(srv.URL, 5*time.Second))
	req, err := client.Get(context.Background(), "tok", "r9")

	assert.NoError(t, err)
	assert.Equal(t, "r9", req.ID)
	assert.Equal(t, models.RequestStatusProcessing, req.Status)
	assert.Equal(t, "https://cdn.example.com/proof.png", req.PaymentProof)
}

func TestRequestsClientActions(t *testing.T) {
	type recorded struct {
		method string
		path   string
		body   map[string]any
	}

	var got recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = recorded{method: r.Method, path: r.URL.Path}
		json.NewDecoder(r.Body).Decode(&got.body)
		w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer srv.Close()

	client := NewRequestsClient(NewCaller(srv.URL, 5*time.Second))
	ctx := context.Background()

	assert.NoError(t, client.SendBankDetails(ctx, "tok", "r1"))
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/v1/master-node/add-money-requests/r1/send-bank-details", got.path)

	assert.NoError(t, client.Verify(ctx, "tok", "r2", "looks good"))
	assert.Equal(t, "/api/v1/master-node/add-money-requests/r2/verify", got.path)
	assert.Equal(t, "looks good", got.body["adminNotes"])

	assert.NoError(t, client.Reject(ctx, "tok", "r3", "duplicate transaction id"))
	assert.Equal(t, "/api/v1/master-node/add-money-requests/r3/reject", got.path)
	assert.Equal(t, "duplicate transaction id", got.body["reason"])
}

func TestRequestsClientActionFailureSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"message":"Request is not in PROCESSING state"}`))
	}))
	defer srv.Close()

	client := NewRequestsClient(NewCaller(srv.URL, 5*time.Second))
	err := client.Verify(context.Background(), "tok", "r1", "")

	var callErr *Error
	assert.ErrorAs(t, err, &callErr)
	assert.Equal(t, "Request is not in PROCESSING state", callErr.Message)
}
