package generations

import "time"

type generationResponse struct {
	GenerationID  string    `json:"generationId"`
	Name          string    `json:"name"`
	FileName      string    `json:"fileName"`
	MimeType      string    `json:"mimeType"`
	SizeBytes     int64     `json:"sizeBytes"`
	Tier          string    `json:"tier"`
	ContentVolume float64   `json:"contentVolume"`
	PageEstimate  float64   `json:"pageEstimate"`
	CreatedAt     time.Time `json:"createdAt"`
	DocxURL       string    `json:"docxUrl"`
	JSONURL       string    `json:"jsonUrl"`
}

func toResponse(gen Generation) generationResponse {
	base := "/api/v1/generations/" + gen.ID + "/download?artifact="
	return generationResponse{
		GenerationID:  gen.ID,
		Name:          gen.Name,
		FileName:      gen.FileName,
		MimeType:      gen.MimeType,
		SizeBytes:     gen.SizeBytes,
		Tier:          gen.Tier,
		ContentVolume: gen.ContentVolume,
		PageEstimate:  gen.PageEstimate,
		CreatedAt:     gen.CreatedAt,
		DocxURL:       base + "docx",
		JSONURL:       base + "json",
	}
}
