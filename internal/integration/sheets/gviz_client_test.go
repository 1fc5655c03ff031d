package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"
)

const gvizFixture = `/*O_o*/
google.visualization.Query.setResponse({"version":"0.6","table":{"rows":[
{"c":[{"v":"Name"},{"v":"Email"}]},
{"c":[{"v":"Casey Lin"},{"v":"casey@phoenix.test"},{"v":1234.5},{"v":true},null]},
{"c":[{"v":"Date(2025,0,15)"},{"v":null}]}
]}});`

func TestGvizClient_FetchRows(t *testing.T) {
	var gotPath, gotSheet string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotSheet = r.URL.Query().Get("sheet")
		w.Write([]byte(gvizFixture))
	}))
	defer srv.Close()

	client := NewGvizClientWithBaseURL("sheet-id", srv.URL, 5*time.Second)

	rows, err := client.FetchRows(context.Background(), "Rental Cars")
	if err != nil {
		t.Fatalf("FetchRows: %v", err)
	}

	if gotPath != "/sheet-id/gviz/tq" {
		t.Errorf("path = %q", gotPath)
	}
	if gotSheet != "Rental Cars" {
		t.Errorf("sheet param = %q", gotSheet)
	}

	want := [][]string{
		{"Name", "Email"},
		{"Casey Lin", "casey@phoenix.test", "1234.5", "true", ""},
		{"Date(2025,0,15)", ""},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestGvizClient_FetchRows_Errors(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		client := NewGvizClientWithBaseURL("sheet-id", srv.URL, 5*time.Second)
		if _, err := client.FetchRows(context.Background(), "Sales"); err == nil {
			t.Error("expected error for non-200 status")
		}
	})

	t.Run("payload without callback wrapper", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>sign in required</html>"))
		}))
		defer srv.Close()

		client := NewGvizClientWithBaseURL("sheet-id", srv.URL, 5*time.Second)
		if _, err := client.FetchRows(context.Background(), "Sales"); err == nil {
			t.Error("expected error for non-gviz payload")
		}
	})
}
