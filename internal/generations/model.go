package generations

import "time"

// Generation records one rendered resume: the stored DOCX artifact, the JSON
// snapshot it was produced from, and the layout decisions taken.
type Generation struct {
	ID            string
	ClientKey     string
	Name          string
	DocxKey       string
	JSONKey       string
	FileName      string
	MimeType      string
	SizeBytes     int64
	Tier          string
	ContentVolume float64
	PageEstimate  float64
	CreatedAt     time.Time
	DeletedAt     *time.Time
}
