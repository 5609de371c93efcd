package gsheets_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/family-trip/backend/internal/gsheets"
)

// newReader points a Reader at srv for both the values API and the CSV export.
func newReader(srv *httptest.Server, apiKey string) *gsheets.Reader {
	return gsheets.NewReader(srv.Client(), "sheet-123", apiKey,
		gsheets.WithBaseURLs(srv.URL+"/values-api", srv.URL+"/export"))
}

func TestReader_FetchRows_ValuesAPI(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"range":"Todos!A1:G3","majorDimension":"ROWS","values":[["id","task"],["t1","Book ferry"]]}`))
	}))
	defer srv.Close()

	rows, err := newReader(srv, "secret-key").FetchRows(context.Background(), "Todos")

	require.NoError(t, err)
	assert.Equal(t, "/values-api/sheet-123/values/Todos", gotPath)
	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, [][]string{{"id", "task"}, {"t1", "Book ferry"}}, rows)
}

func TestReader_FetchRows_CSVExportWithoutKey(t *testing.T) {
	var gotPath, gotSheet, gotTqx string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSheet = r.URL.Query().Get("sheet")
		gotTqx = r.URL.Query().Get("tqx")
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("\"id\",\"name\",\"notifications\"\n\"ann\",\"Ann\",\"TRUE\"\n\"\",\"\",\"\"\n"))
	}))
	defer srv.Close()

	rows, err := newReader(srv, "").FetchRows(context.Background(), "Family_Members")

	require.NoError(t, err)
	assert.Equal(t, "/export/sheet-123/gviz/tq", gotPath)
	assert.Equal(t, "Family_Members", gotSheet)
	assert.Equal(t, "out:csv", gotTqx)
	assert.Equal(t, [][]string{{"id", "name", "notifications"}, {"ann", "Ann", "TRUE"}}, rows)
}

func TestReader_FetchRows_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newReader(srv, "k").FetchRows(context.Background(), "Destinations")

	require.Error(t, err)
	assert.ErrorContains(t, err, "Destinations")
	assert.ErrorContains(t, err, "403")
}

func TestReader_FetchRows_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"values": [`))
	}))
	defer srv.Close()

	_, err := newReader(srv, "k").FetchRows(context.Background(), "Todos")

	assert.ErrorContains(t, err, "decode")
}
