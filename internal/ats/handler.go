package ats

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resumegen/internal/shared/server/respond"
)

// Uploaded resumes larger than this are rejected.
const maxResumeSize = 10 << 20

// Handler exposes the keyword scoring endpoint.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches ATS routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ats/score", h.score)
}

type scoreRequest struct {
	JobDescription string `json:"job_description"`
	ResumeText     string `json:"resume_text"`
}

// score accepts either a JSON body with resume_text, or a multipart form
// with a job_description field and a resume file (PDF, DOCX, or plain text).
func (h *Handler) score(c *gin.Context) {
	contentType := c.ContentType()

	var jobDescription, resumeText string
	if strings.HasPrefix(contentType, "multipart/form-data") {
		jobDescription = strings.TrimSpace(c.PostForm("job_description"))

		file, header, err := c.Request.FormFile("resume")
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required", nil)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxResumeSize+1))
		if err != nil || len(data) > maxResumeSize {
			respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is too large", nil)
			return
		}

		resumeText, err = ExtractText(data, header.Header.Get("Content-Type"), header.Filename)
		if err != nil {
			respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", err.Error(), nil)
			return
		}
	} else {
		var req scoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "malformed request body", nil)
			return
		}
		jobDescription = strings.TrimSpace(req.JobDescription)
		resumeText = req.ResumeText
	}

	if jobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job_description is required", nil)
		return
	}
	if strings.TrimSpace(resumeText) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume text is required", nil)
		return
	}

	respond.OK(c, Analyze(jobDescription, resumeText))
}
