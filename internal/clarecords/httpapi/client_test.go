package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brettcannon/the-knights-who-say-ni/config"
	"github.com/brettcannon/the-knights-who-say-ni/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRecords(endpoint string) *Client {
	return New(zap.NewNop().Sugar(), config.CLARecordsConfig{
		Backend:        "http",
		Endpoint:       endpoint,
		RequestTimeout: 5 * time.Second,
	})
}

func TestLookupVerdicts(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    entities.CLAStatus
	}{
		{
			name: "signed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"signed": true}`))
			},
			want: entities.StatusSigned,
		},
		{
			name: "not signed",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"signed": false}`))
			},
			want: entities.StatusNotSigned,
		},
		{
			name: "unknown username",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			want: entities.StatusUsernameNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			status, err := testRecords(srv.URL).Lookup(context.Background(), "brett")
			require.NoError(t, err)
			require.Equal(t, tt.want, status)
		})
	}
}

func TestLookupSendsUsername(t *testing.T) {
	var gotUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = r.URL.Query().Get("user")
		_, _ = w.Write([]byte(`{"signed": true}`))
	}))
	defer srv.Close()

	_, err := testRecords(srv.URL).Lookup(context.Background(), "brett cannon")
	require.NoError(t, err)
	require.Equal(t, "brett cannon", gotUser)
}

func TestLookupServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testRecords(srv.URL).Lookup(context.Background(), "brett")
	require.ErrorIs(t, err, entities.ErrUnexpectedStatus)
}
