package cristin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient() *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		UserAgent:  "pubgrab-test/0.1",
	}
}

// --- PersonID ---

func TestPersonIDNumericShortCircuit(t *testing.T) {
	// No server: a numeric identifier must never hit the network.
	personsAPIBase = "http://127.0.0.1:1"
	id, found, err := testClient().PersonID(context.Background(), "22311")
	if err != nil {
		t.Fatal(err)
	}
	if !found || id != 22311 {
		t.Errorf("PersonID(22311) = %d, %v", id, found)
	}
}

func TestPersonIDByName(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("name"); got != "Jon Olav Vik" {
			t.Errorf("name param = %q", got)
		}
		w.Write([]byte(`[{"cristin_person_id": 22311, "first_name": "Jon Olav", "surname": "Vik"}]`))
	}))
	defer ts.Close()
	personsAPIBase = ts.URL

	id, found, err := testClient().PersonID(context.Background(), "Jon Olav Vik")
	if err != nil {
		t.Fatal(err)
	}
	if !found || id != 22311 {
		t.Errorf("PersonID = %d, %v, want 22311, true", id, found)
	}
}

func TestPersonIDNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()
	personsAPIBase = ts.URL

	_, found, err := testClient().PersonID(context.Background(), "Does Not Exist")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("found = true for unknown person")
	}
}

func TestPersonIDServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()
	personsAPIBase = ts.URL

	if _, _, err := testClient().PersonID(context.Background(), "Jon Olav Vik"); err == nil {
		t.Error("expected error on HTTP 500")
	}
}

// --- PublicationsBy ---

func TestPublicationsByQueryAndDecode(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		for param, want := range map[string]string{
			"lopenr":        "7059",
			"fra":           "2010",
			"til":           "2010",
			"hovedkategori": "TIDSSKRIFTPUBL",
			"format":        "json",
		} {
			if got := q.Get(param); got != want {
				t.Errorf("%s = %q, want %q", param, got, want)
			}
		}
		w.Write([]byte(`{"forskningsresultat": [
			{"fellesdata": {"id": "769189", "ar": "2010"}},
			{"fellesdata": {"id": "771116", "ar": "2010"}}
		]}`))
	}))
	defer ts.Close()
	worksAPIBase = ts.URL

	raws, err := testClient().PublicationsBy(context.Background(), 7059, 2010, 2010, CategoryJournal)
	if err != nil {
		t.Fatal(err)
	}
	if len(raws) != 2 {
		t.Fatalf("len = %d, want 2", len(raws))
	}
	fd, ok := raws[0]["fellesdata"].(map[string]any)
	if !ok || fd["id"] != "769189" {
		t.Errorf("raw record not passed through untouched: %+v", raws[0])
	}
}

func TestPublicationsByNotFoundMeansEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()
	worksAPIBase = ts.URL

	raws, err := testClient().PublicationsBy(context.Background(), 99999, 1900, 9999, CategoryJournal)
	if err != nil {
		t.Fatalf("404 should not be an error: %v", err)
	}
	if len(raws) != 0 {
		t.Errorf("len = %d, want 0", len(raws))
	}
}

func TestPublicationsByServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()
	worksAPIBase = ts.URL

	if _, err := testClient().PublicationsBy(context.Background(), 1, 1900, 9999, CategoryJournal); err == nil {
		t.Error("expected error on HTTP 500")
	}
}
