package donorservice_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DonationService/internal/domain"
	"github.com/m04kA/SMC-DonationService/internal/integrations/donorservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_GetDonor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/internal/donors/7":
			_, _ = w.Write([]byte(`{"id":7,"name":"Ana","gender":"Female","email":"ana@example.com"}`))
		case "/internal/donors/8":
			_, _ = w.Write([]byte(`{"id":8,"name":"X","gender":"robot"}`))
		case "/internal/donors/500":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := donorservice.NewClient(srv.URL, time.Second, nopLogger{})
	ctx := context.Background()

	donor, err := client.GetDonor(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, domain.GenderFemale, donor.Gender)
	assert.Equal(t, "Ana", donor.Name)

	_, err = client.GetDonor(ctx, 8)
	assert.ErrorIs(t, err, donorservice.ErrInvalidResponse)

	_, err = client.GetDonor(ctx, 404)
	assert.ErrorIs(t, err, donorservice.ErrDonorNotFound)

	_, err = client.GetDonor(ctx, 500)
	assert.ErrorIs(t, err, donorservice.ErrUnavailable)
}

func TestClient_FindDonor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/internal/donors/7" {
			_, _ = w.Write([]byte(`{"id":7,"name":"Ana","gender":"Female"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := donorservice.NewClient(srv.URL, time.Second, nopLogger{})

	donor, err := client.FindDonor(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, donor)

	donor, err = client.FindDonor(context.Background(), 9)
	require.NoError(t, err)
	assert.Nil(t, donor)
}
