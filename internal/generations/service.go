package generations

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resumegen/internal/shared/metrics"
	"resumegen/internal/shared/storage/object"
	"resumegen/internal/shared/telemetry"
	"resumegen/internal/shared/util"
	"resumegen/resume/layout"
	"resumegen/resume/model"
	"resumegen/resume/render"
	"resumegen/resume/schema"
)

// Service contains business logic for resume generations.
type Service struct {
	Repo  Repo
	Store object.ObjectStore
}

// Result pairs the stored record with the rendered bytes so callers that
// stream the document back (CLI, web form) avoid a second store read.
type Result struct {
	Generation Generation
	DocxBytes  []byte
	JSONBytes  []byte
}

// Generate validates the resume, selects a formatting tier from its content
// volume, renders the DOCX, and stores the artifact plus a JSON snapshot.
func (s *Service) Generate(ctx context.Context, clientKey string, resume model.Resume) (Result, error) {
	if s.Repo == nil || s.Store == nil {
		return Result{}, errors.New("missing dependencies")
	}
	if clientKey == "" {
		return Result{}, ErrInvalidInput
	}
	if err := resume.Validate(); err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	metrics.IncGenerationStarted()
	start := time.Now()

	tier, volume := layout.Select(resume)
	fit := layout.FitToPage(tier, resume)
	if fit.Overflows {
		telemetry.Info("generation.overflow", map[string]any{
			"name":           resume.Name,
			"content_volume": volume,
			"pages":          fit.Pages,
		})
	}

	docxBytes, err := render.RenderResume(resume, fit.Tier)
	if err != nil {
		metrics.IncGenerationFailed()
		return Result{}, err
	}

	jsonBytes, err := schema.EncodeBytes(resume)
	if err != nil {
		metrics.IncGenerationFailed()
		return Result{}, err
	}

	docxName := OutputFileName(resume)
	jsonName := strings.TrimSuffix(docxName, ".docx") + "_data.json"

	docxKey, size, mimeType, err := s.Store.Save(ctx, clientKey, docxName, bytes.NewReader(docxBytes))
	if err != nil {
		metrics.IncGenerationFailed()
		return Result{}, err
	}
	jsonKey, _, _, err := s.Store.Save(ctx, clientKey, jsonName, bytes.NewReader(jsonBytes))
	if err != nil {
		metrics.IncGenerationFailed()
		return Result{}, err
	}

	gen := Generation{
		ID:            uuid.NewString(),
		ClientKey:     clientKey,
		Name:          resume.Name,
		DocxKey:       docxKey,
		JSONKey:       jsonKey,
		FileName:      docxName,
		MimeType:      mimeType,
		SizeBytes:     size,
		Tier:          fit.Tier.Name,
		ContentVolume: volume,
		PageEstimate:  fit.Pages,
		CreatedAt:     time.Now().UTC(),
	}
	if gen.MimeType == "" || gen.MimeType == "application/zip" {
		gen.MimeType = render.MimeType()
	}

	if err := s.Repo.Create(ctx, gen); err != nil {
		metrics.IncGenerationFailed()
		return Result{}, err
	}

	metrics.IncGenerationCompleted()
	metrics.ObserveRenderDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	return Result{Generation: gen, DocxBytes: docxBytes, JSONBytes: jsonBytes}, nil
}

// Get returns a generation record scoped to the client.
func (s *Service) Get(ctx context.Context, clientKey, generationID string) (Generation, error) {
	if clientKey == "" || generationID == "" {
		return Generation{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, clientKey, generationID)
}

// List returns a client's generations, newest first.
func (s *Service) List(ctx context.Context, clientKey string, limit, offset int) ([]Generation, error) {
	if clientKey == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByClient(ctx, clientKey, limit, offset)
}

// Artifact identifies which stored file of a generation to open.
type Artifact string

const (
	ArtifactDocx Artifact = "docx"
	ArtifactJSON Artifact = "json"
)

// OpenArtifact opens a stored artifact for download and returns the reader,
// the download file name, and the content type.
func (s *Service) OpenArtifact(ctx context.Context, clientKey, generationID string, artifact Artifact) (io.ReadCloser, string, string, error) {
	gen, err := s.Repo.GetByID(ctx, clientKey, generationID)
	if err != nil {
		return nil, "", "", err
	}

	switch artifact {
	case ArtifactDocx:
		reader, err := s.Store.Open(ctx, gen.DocxKey)
		if err != nil {
			return nil, "", "", err
		}
		return reader, gen.FileName, gen.MimeType, nil
	case ArtifactJSON:
		reader, err := s.Store.Open(ctx, gen.JSONKey)
		if err != nil {
			return nil, "", "", err
		}
		name := strings.TrimSuffix(gen.FileName, ".docx") + "_data.json"
		return reader, name, "application/json", nil
	default:
		return nil, "", "", ErrInvalidInput
	}
}

// OutputFileName resolves the download name for a resume: the payload's
// output_filename when present (sanitized, .docx enforced), otherwise
// "<Name>_Resume.docx" with spaces underscored.
func OutputFileName(resume model.Resume) string {
	name := strings.TrimSpace(resume.OutputFilename)
	if name != "" {
		if sanitized, err := util.SanitizeFileName(name); err == nil {
			if !strings.HasSuffix(strings.ToLower(sanitized), ".docx") {
				sanitized += ".docx"
			}
			return sanitized
		}
	}
	base := strings.ReplaceAll(strings.TrimSpace(resume.Name), " ", "_")
	if base == "" {
		base = "Resume"
	}
	return base + "_Resume.docx"
}
