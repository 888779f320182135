package generations

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resumegen/internal/shared/server/middleware"
	"resumegen/internal/shared/server/respond"
	"resumegen/resume/schema"
)

const maxPayloadSize = 1 << 20 // 1MB of resume JSON is already enormous

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generations", h.create)
	rg.GET("/generations", h.list)
	rg.GET("/generations/:id", h.get)
	rg.GET("/generations/:id/download", h.download)
	rg.GET("/template", h.template)
}

func (h *Handler) create(c *gin.Context) {
	clientKey := middleware.ClientKeyFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPayloadSize)

	resume, err := schema.Decode(c.Request.Body)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	result, err := h.Svc.Generate(c.Request.Context(), clientKey, resume)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal", "failed to generate resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(result.Generation))
}

func (h *Handler) list(c *gin.Context) {
	clientKey := middleware.ClientKeyFromContext(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	gens, err := h.Svc.List(c.Request.Context(), clientKey, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to list generations", nil)
		return
	}

	out := make([]generationResponse, 0, len(gens))
	for _, gen := range gens {
		out = append(out, toResponse(gen))
	}
	respond.OK(c, gin.H{"generations": out})
}

func (h *Handler) get(c *gin.Context) {
	clientKey := middleware.ClientKeyFromContext(c)

	gen, err := h.Svc.Get(c.Request.Context(), clientKey, c.Param("id"))
	if err != nil {
		respondLookupError(c, err)
		return
	}
	respond.OK(c, toResponse(gen))
}

func (h *Handler) download(c *gin.Context) {
	clientKey := middleware.ClientKeyFromContext(c)

	artifact := Artifact(c.DefaultQuery("artifact", "docx"))
	if artifact != ArtifactDocx && artifact != ArtifactJSON {
		respond.Error(c, http.StatusBadRequest, "validation_error", "artifact must be docx or json", nil)
		return
	}

	reader, fileName, contentType, err := h.Svc.OpenArtifact(c.Request.Context(), clientKey, c.Param("id"), artifact)
	if err != nil {
		respondLookupError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers are already out; nothing useful left to send.
		_ = c.Error(err)
	}
}

func (h *Handler) template(c *gin.Context) {
	respond.OK(c, schema.Template())
}

func respondLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusNotFound, "not_found", "generation not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "unexpected error", nil)
	}
}
