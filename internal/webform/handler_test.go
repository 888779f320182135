package webform

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resumegen/internal/generations"
	"resumegen/internal/shared/server/middleware"
	localstore "resumegen/internal/shared/storage/object/local"
	"resumegen/resume/schema"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &generations.Service{
		Repo:  generations.NewMemoryRepo(),
		Store: localstore.New(t.TempDir()),
	}

	r := gin.New()
	r.Use(middleware.ClientID())
	NewHandler(svc).RegisterRoutes(r)
	return r
}

func postForm(t *testing.T, router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestIndexRendersForm(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, want := range []string{`action="/generate"`, `action="/upload_json"`, `name="name"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("index page missing %q", want)
		}
	}
}

func TestGenerateFromForm(t *testing.T) {
	router := newTestRouter(t)

	form := url.Values{}
	form.Set("name", "Jane Roe")
	form.Set("email", "jane@example.com")

	resp := postForm(t, router, "/generate", form)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	body := resp.Body.String()
	if !strings.Contains(body, "Jane Roe") {
		t.Fatalf("success page missing the name")
	}
	if !strings.Contains(body, "artifact=docx") || !strings.Contains(body, "artifact=json") {
		t.Fatalf("success page missing download links:\n%s", body)
	}
}

func TestGenerateMissingNameShowsError(t *testing.T) {
	router := newTestRouter(t)

	resp := postForm(t, router, "/generate", url.Values{"email": {"jane@example.com"}})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "name") {
		t.Fatalf("error page should mention the missing name")
	}
}

func TestSaveJSONDownload(t *testing.T) {
	router := newTestRouter(t)

	form := url.Values{}
	form.Set("name", "Jane Roe")
	form.Set("work_count", "1")
	form.Set("work_0_title", "Engineer")

	resp := postForm(t, router, "/save_json", form)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Disposition"); !strings.Contains(got, "Jane_Roe_resume_data.json") {
		t.Fatalf("unexpected disposition %q", got)
	}

	resume, err := schema.DecodeBytes(resp.Body.Bytes())
	if err != nil {
		t.Fatalf("saved JSON does not decode: %v", err)
	}
	if resume.Name != "Jane Roe" || len(resume.WorkExperience) != 1 {
		t.Fatalf("saved JSON lost data: %+v", resume)
	}
}

func TestUploadJSONPrefillsForm(t *testing.T) {
	router := newTestRouter(t)

	payload, err := schema.EncodeBytes(schema.Example())
	if err != nil {
		t.Fatalf("encode example: %v", err)
	}

	var buf strings.Builder
	boundary := "testboundary"
	buf.WriteString("--" + boundary + "\r\n")
	buf.WriteString(`Content-Disposition: form-data; name="json_file"; filename="resume.json"` + "\r\n")
	buf.WriteString("Content-Type: application/json\r\n\r\n")
	buf.Write(payload)
	buf.WriteString("\r\n--" + boundary + "--\r\n")

	req := httptest.NewRequest(http.MethodPost, "/upload_json", strings.NewReader(buf.String()))
	req.Header.Set("Content-Type", "multipart/form-data; boundary="+boundary)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "John Doe") {
		t.Fatalf("prefill data missing from page")
	}
}

func TestUploadJSONRejectsWrongExtension(t *testing.T) {
	router := newTestRouter(t)

	var buf strings.Builder
	boundary := "testboundary"
	buf.WriteString("--" + boundary + "\r\n")
	buf.WriteString(`Content-Disposition: form-data; name="json_file"; filename="resume.txt"` + "\r\n")
	buf.WriteString("Content-Type: text/plain\r\n\r\nnot json\r\n")
	buf.WriteString("--" + boundary + "--\r\n")

	req := httptest.NewRequest(http.MethodPost, "/upload_json", strings.NewReader(buf.String()))
	req.Header.Set("Content-Type", "multipart/form-data; boundary="+boundary)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
