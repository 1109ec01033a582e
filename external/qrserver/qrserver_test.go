package qrserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte("fake-png"))
	}))
	defer srv.Close()

	img, err := NewClientWithBase(srv.URL).Generate(context.Background(),
		"upi://pay?pa=cupcake@upi&pn=CupCake+MC&am=5.51&cu=INR", 280)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-png"), img)
	assert.Equal(t, "/v1/create-qr-code/", gotPath)
	assert.Equal(t, "size=280x280&data=upi%3A%2F%2Fpay%3Fpa%3Dcupcake%40upi%26pn%3DCupCake%2BMC%26am%3D5.51%26cu%3DINR", gotQuery)
}

func TestGenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := NewClientWithBase(srv.URL).Generate(context.Background(), "data", 280)
	assert.Error(t, err)
}

func TestGenerateEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	_, err := NewClientWithBase(srv.URL).Generate(context.Background(), "data", 280)
	assert.Error(t, err)
}
