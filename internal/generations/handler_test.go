package generations

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resumegen/internal/shared/server/middleware"
	localstore "resumegen/internal/shared/storage/object/local"
	"resumegen/resume/schema"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &Service{
		Repo:  NewMemoryRepo(),
		Store: localstore.New(t.TempDir()),
	}

	r := gin.New()
	r.Use(middleware.ClientID())
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postGeneration(t *testing.T, router *gin.Engine, clientID, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if clientID != "" {
		req.Header.Set("X-Client-Id", clientID)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestCreateGeneration(t *testing.T) {
	router := newTestRouter(t)

	payload, err := schema.EncodeBytes(schema.Example())
	if err != nil {
		t.Fatalf("encode example: %v", err)
	}

	resp := postGeneration(t, router, "client-1", string(payload))
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["generationId"] == "" || out["generationId"] == nil {
		t.Fatalf("expected generationId in response: %v", out)
	}
	if out["fileName"] != "John_Doe_Resume.docx" {
		t.Fatalf("unexpected fileName: %v", out["fileName"])
	}
	if out["tier"] == "" || out["tier"] == nil {
		t.Fatalf("expected tier in response: %v", out)
	}
}

func TestCreateGenerationMissingName(t *testing.T) {
	router := newTestRouter(t)

	resp := postGeneration(t, router, "client-1", `{"contact_info":["a@b.c"]}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
	var out struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if out.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error code, got %q", out.Error.Code)
	}
	if !strings.Contains(out.Error.Message, "name") {
		t.Fatalf("expected message to mention name, got %q", out.Error.Message)
	}
}

func TestCreateGenerationMalformedBody(t *testing.T) {
	router := newTestRouter(t)

	resp := postGeneration(t, router, "client-1", `{"name": "Jane"`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestDownloadArtifacts(t *testing.T) {
	router := newTestRouter(t)

	payload, _ := schema.EncodeBytes(schema.Example())
	created := postGeneration(t, router, "client-1", string(payload))
	if created.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", created.Code)
	}
	var gen map[string]any
	if err := json.Unmarshal(created.Body.Bytes(), &gen); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	id, _ := gen["generationId"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/generations/"+id+"/download?artifact=docx", nil)
	req.Header.Set("X-Client-Id", "client-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Header().Get("Content-Disposition"), "John_Doe_Resume.docx") {
		t.Fatalf("unexpected disposition %q", resp.Header().Get("Content-Disposition"))
	}
	// DOCX payloads are zip archives.
	if !bytes.HasPrefix(resp.Body.Bytes(), []byte("PK")) {
		t.Fatalf("downloaded artifact is not a zip archive")
	}

	jsonReq := httptest.NewRequest(http.MethodGet, "/api/v1/generations/"+id+"/download?artifact=json", nil)
	jsonReq.Header.Set("X-Client-Id", "client-1")
	jsonResp := httptest.NewRecorder()
	router.ServeHTTP(jsonResp, jsonReq)

	if jsonResp.Code != http.StatusOK {
		t.Fatalf("expected 200 for json artifact, got %d", jsonResp.Code)
	}
	if _, err := schema.DecodeBytes(jsonResp.Body.Bytes()); err != nil {
		t.Fatalf("json artifact does not decode: %v", err)
	}
}

func TestDownloadRejectsUnknownArtifact(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/generations/some-id/download?artifact=exe", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestGetForeignGenerationIs404(t *testing.T) {
	router := newTestRouter(t)

	payload, _ := schema.EncodeBytes(schema.Example())
	created := postGeneration(t, router, "client-1", string(payload))
	var gen map[string]any
	if err := json.Unmarshal(created.Body.Bytes(), &gen); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	id, _ := gen["generationId"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/generations/"+id, nil)
	req.Header.Set("X-Client-Id", "client-2")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Ownership failures look identical to missing records.
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestListGenerations(t *testing.T) {
	router := newTestRouter(t)

	payload, _ := schema.EncodeBytes(schema.Example())
	for i := 0; i < 2; i++ {
		if resp := postGeneration(t, router, "client-1", string(payload)); resp.Code != http.StatusCreated {
			t.Fatalf("create %d failed: %d", i, resp.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/generations", nil)
	req.Header.Set("X-Client-Id", "client-1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out struct {
		Generations []map[string]any `json:"generations"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(out.Generations) != 2 {
		t.Fatalf("expected 2 generations, got %d", len(out.Generations))
	}
}

func TestTemplateEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/template", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	for _, key := range []string{"name", "work_experience", "technical_skills", "education"} {
		if !strings.Contains(resp.Body.String(), `"`+key+`"`) {
			t.Fatalf("template missing %q", key)
		}
	}
}
