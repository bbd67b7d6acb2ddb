package weezevent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvents(t *testing.T) {
	t.Run("decodes events with mixed id types", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/events", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "key", q.Get("api_key"))
			assert.Equal(t, "tok", q.Get("access_token"))
			w.Write([]byte(`{
				"events": [
					{
						"id": 12,
						"name": "Formation Capitaine 200",
						"date": {"start": "2026-05-01 09:00:00"},
						"sales_status": {"id_status": 2, "libelle_status": "En cours"}
					},
					{
						"id": "13",
						"name": "Session annulée",
						"sales_status": {"id_status": "4"}
					}
				]
			}`))
		}))
		defer srv.Close()

		got, err := testClient(t, srv.URL).Events(context.Background(), "tok")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "12", got[0].ID.String())
		assert.Equal(t, "2026-05-01 09:00:00", got[0].Date.Start)
		assert.Equal(t, "2", got[0].SalesStatus.IDStatus.String())
		assert.Equal(t, "13", got[1].ID.String())
		assert.Equal(t, "4", got[1].SalesStatus.IDStatus.String())
	})

	t.Run("transport failure is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := testClient(t, srv.URL).Events(context.Background(), "tok")
		assert.Error(t, err)
	})
}
