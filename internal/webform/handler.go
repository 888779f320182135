package webform

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resumegen/internal/generations"
	"resumegen/internal/shared/server/middleware"
	"resumegen/internal/shared/telemetry"
	"resumegen/resume/model"
	"resumegen/resume/schema"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Uploaded prefill JSON larger than this is rejected outright.
const maxUploadSize = 1 << 20

// Handler serves the browser-facing form pages.
type Handler struct {
	Svc  *generations.Service
	tmpl *template.Template
}

// NewHandler parses the embedded templates and constructs a Handler.
func NewHandler(svc *generations.Service) *Handler {
	tmpl := template.Must(template.ParseFS(templateFiles, "templates/*.html"))
	return &Handler{Svc: svc, tmpl: tmpl}
}

// RegisterRoutes attaches the form routes at the engine root.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.index)
	r.POST("/generate", h.generate)
	r.POST("/save_json", h.saveJSON)
	r.POST("/upload_json", h.uploadJSON)
}

type indexPage struct {
	Error       string
	PrefillJSON template.JS
}

type successPage struct {
	Name     string
	FileName string
	Tier     string
	DocxURL  string
	JSONURL  string
}

func (h *Handler) index(c *gin.Context) {
	h.renderIndex(c, http.StatusOK, indexPage{})
}

func (h *Handler) generate(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		h.renderIndex(c, http.StatusBadRequest, indexPage{Error: "could not read the submitted form"})
		return
	}

	clientKey := middleware.ClientKeyFromContext(c)
	resume := ParseResume(c.Request.PostForm)

	result, err := h.Svc.Generate(c.Request.Context(), clientKey, resume)
	if err != nil {
		if errors.Is(err, generations.ErrInvalidInput) {
			h.renderIndex(c, http.StatusBadRequest, indexPage{
				Error:       strings.TrimPrefix(err.Error(), "invalid input: "),
				PrefillJSON: prefillJSON(resume),
			})
			return
		}
		telemetry.Error("webform.generate_failed", map[string]any{"error": err.Error()})
		h.renderIndex(c, http.StatusInternalServerError, indexPage{
			Error:       "resume generation failed, please try again",
			PrefillJSON: prefillJSON(resume),
		})
		return
	}

	base := "/api/v1/generations/" + result.Generation.ID + "/download?artifact="
	h.render(c, http.StatusOK, "success.html", successPage{
		Name:     result.Generation.Name,
		FileName: result.Generation.FileName,
		Tier:     result.Generation.Tier,
		DocxURL:  base + "docx",
		JSONURL:  base + "json",
	})
}

func (h *Handler) saveJSON(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		h.renderIndex(c, http.StatusBadRequest, indexPage{Error: "could not read the submitted form"})
		return
	}

	resume := ParseResume(c.Request.PostForm)
	data, err := schema.EncodeBytes(resume)
	if err != nil {
		h.renderIndex(c, http.StatusInternalServerError, indexPage{Error: "could not encode resume data"})
		return
	}

	name := strings.ReplaceAll(strings.TrimSpace(resume.Name), " ", "_")
	if name == "" {
		name = "resume"
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`_resume_data.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

func (h *Handler) uploadJSON(c *gin.Context) {
	file, header, err := c.Request.FormFile("json_file")
	if err != nil {
		h.renderIndex(c, http.StatusBadRequest, indexPage{Error: "no JSON file was uploaded"})
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".json") {
		h.renderIndex(c, http.StatusBadRequest, indexPage{Error: "invalid file type, please upload a JSON file"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil || len(data) > maxUploadSize {
		h.renderIndex(c, http.StatusBadRequest, indexPage{Error: "uploaded file is too large"})
		return
	}

	var resume model.Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		h.renderIndex(c, http.StatusBadRequest, indexPage{Error: "uploaded file is not valid resume JSON"})
		return
	}

	h.renderIndex(c, http.StatusOK, indexPage{PrefillJSON: prefillJSON(resume)})
}

func (h *Handler) renderIndex(c *gin.Context, status int, page indexPage) {
	h.render(c, status, "index.html", page)
}

func (h *Handler) render(c *gin.Context, status int, name string, data any) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(c.Writer, name, data); err != nil {
		telemetry.Error("webform.render_failed", map[string]any{
			"template": name,
			"error":    err.Error(),
		})
	}
}

// prefillJSON re-marshals the typed resume so the page script only ever sees
// JSON produced by us, never raw user input.
func prefillJSON(resume model.Resume) template.JS {
	data, err := json.Marshal(resume)
	if err != nil {
		return ""
	}
	return template.JS(data)
}
