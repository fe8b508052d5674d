package clients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Evecotrip/god-aurumx-sub000/internal/models"
)

func TestCurrenciesClientList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/currency-bank-accounts", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"accounts":[
			{"id":"c1","currency":"INR","name":"Indian Rupee","symbol":"₹","isActive":true,"minAmount":500,"maxAmount":100000,"country":"IN"},
			{"id":"c2","currency":"NGN","name":"Nigerian Naira","symbol":"₦","isActive":false,"minAmount":1000,"maxAmount":500000,"country":"NG"}
		]}}`))
	}))
	defer srv.Close()

	client := NewCurrenciesClient(NewCaller(srv.URL, 5*time.Second))
	accounts, err := client.List(context.Background(), "tok")

	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, "INR", accounts[0].Currency)
	assert.True(t, accounts[0].IsActive)
	assert.False(t, accounts[1].IsActive)
}

func TestCurrenciesClientUpdateStripsCurrencyCode(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/currency-bank-accounts/INR", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(`{"success":true,"data":{"id":"c1","currency":"INR","name":"Indian Rupee"}}`))
	}))
	defer srv.Close()

	client := NewCurrenciesClient(NewCaller(srv.URL, 5*time.Second))
	name := "Indian Rupee"
	acc, err := client.Update(context.Background(), "tok", "INR", models.CurrencyDraft{
		Currency: "EUR", // must not travel: the code is immutable
		Name:     &name,
	})

	assert.NoError(t, err)
	assert.Equal(t, "INR", acc.Currency)
	assert.NotContains(t, gotBody, "EUR")
}

func TestCurrenciesClientUpdateOmitsUntouchedFields(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(`{"success":true,"data":{"id":"c2","currency":"NGN","isActive":false}}`))
	}))
	defer srv.Close()

	inactive := false
	client := NewCurrenciesClient(NewCaller(srv.URL, 5*time.Second))
	_, err := client.Update(context.Background(), "tok", "NGN", models.CurrencyDraft{IsActive: &inactive})

	assert.NoError(t, err)
	assert.JSONEq(t, `{"isActive":false}`, gotBody)
}

func TestCurrenciesClientUploadQR(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/currency-bank-accounts/INR/qr-code", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))

		file, header, err := r.FormFile("qrCode")
		assert.NoError(t, err)
		defer file.Close()

		content, _ := io.ReadAll(file)
		assert.Equal(t, "upi-qr.png", header.Filename)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, content)

		w.Write([]byte(`{"success":true,"data":{"qrCodeUrl":"https://cdn.example.com/qr/inr.png"}}`))
	}))
	defer srv.Close()

	client := NewCurrenciesClient(NewCaller(srv.URL, 5*time.Second))
	url, err := client.UploadQR(context.Background(), "tok", "INR", "upi-qr.png", []byte{0x89, 'P', 'N', 'G'})

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/qr/inr.png", url)
}

func TestCurrenciesClientDelete(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer srv.Close()

	client := NewCurrenciesClient(NewCaller(srv.URL, 5*time.Second))
	err := client.Delete(context.Background(), "tok", "NGN")

	assert.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v1/currency-bank-accounts/NGN", gotPath)
}
