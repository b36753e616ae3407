package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/whatson-app/whatson/internal/creator"
	"github.com/whatson-app/whatson/internal/hubservice"
	"github.com/whatson-app/whatson/internal/testutil"
)

// testEnv sets up a temp workspace, SQLite registry, service, and router.
// An empty authToken means auth disabled.
func testEnv(t *testing.T, authToken string) (*hubservice.Service, http.Handler) {
	t.Helper()
	db := testutil.TestDB(t)
	ws, hubs := testutil.TestWorkspace(t)
	svc := hubservice.NewService(hubs, creator.NoteCreators(ws, ""), db)
	router := NewRouter(svc, authToken != "", authToken, nil)
	return svc, router
}

func createHub(t *testing.T, router http.Handler, name string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"name": name})
	req := httptest.NewRequest(http.MethodPost, "/hubs", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAndGetHub(t *testing.T) {
	_, router := testEnv(t, "")

	w := createHub(t, router, "My Brand Kit!")
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	var created CreateHubResponse
	_ = json.Unmarshal(w.Body.Bytes(), &created)
	if created.Hub.Name != "my-brand-kit" {
		t.Errorf("hub name = %q", created.Hub.Name)
	}
	if created.PackagePath == "" {
		t.Error("package path missing from response")
	}

	req := httptest.NewRequest(http.MethodGet, "/hubs/my-brand-kit", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var detail HubDetail
	_ = json.Unmarshal(w.Body.Bytes(), &detail)
	if detail.Manifest == nil || detail.Manifest.HubDirectory != "my-brand-kit" {
		t.Errorf("detail = %+v", detail)
	}
}

func TestCreateHubDuplicate(t *testing.T) {
	_, router := testEnv(t, "")

	if w := createHub(t, router, "dup"); w.Code != http.StatusCreated {
		t.Fatalf("first create = %d", w.Code)
	}
	w := createHub(t, router, "dup")
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate create = %d, want 409", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("already exists")) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestCreateHubValidation(t *testing.T) {
	_, router := testEnv(t, "")

	req := httptest.NewRequest(http.MethodPost, "/hubs", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty name = %d, want 400", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/hubs", bytes.NewReader([]byte(`not json`)))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad json = %d, want 400", w.Code)
	}
}

func TestListHubs(t *testing.T) {
	_, router := testEnv(t, "")
	_ = createHub(t, router, "one")
	_ = createHub(t, router, "two")

	req := httptest.NewRequest(http.MethodGet, "/hubs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var resp HubListResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Hubs) != 2 {
		t.Errorf("hubs = %+v", resp.Hubs)
	}
}

func TestDeleteHub(t *testing.T) {
	_, router := testEnv(t, "")
	_ = createHub(t, router, "goner")

	req := httptest.NewRequest(http.MethodDelete, "/hubs/goner", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/hubs/goner", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d", w.Code)
	}
}

func TestDownloadPackage(t *testing.T) {
	_, router := testEnv(t, "")
	_ = createHub(t, router, "packed")

	req := httptest.NewRequest(http.MethodGet, "/hubs/packed/package", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("download status = %d", w.Code)
	}
	if w.Body.String() != "package" {
		t.Errorf("body = %q", w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="packed.wshub"` {
		t.Errorf("content disposition = %q", cd)
	}

	req = httptest.NewRequest(http.MethodGet, "/hubs/nope/package", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing hub download = %d", w.Code)
	}
}

func TestNoteScaffolds(t *testing.T) {
	_, router := testEnv(t, "")

	req := httptest.NewRequest(http.MethodGet, "/scaffolds/notes?id=n1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp NoteScaffoldResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.NoteID != "n1" || len(resp.Scaffolds) != 4 {
		t.Errorf("resp = %+v", resp)
	}

	req = httptest.NewRequest(http.MethodGet, "/scaffolds/notes", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing id = %d, want 400", w.Code)
	}
}

func TestAuthMiddleware(t *testing.T) {
	_, router := testEnv(t, "secret")

	req := httptest.NewRequest(http.MethodGet, "/hubs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token = %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/hubs", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong token = %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/hubs", nil)
	req.Header.Set("Authorization", "Bearer secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("valid token = %d, want 200", w.Code)
	}
}
