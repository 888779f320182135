package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"resumegen/resume/model"
)

// ErrMalformed indicates the payload is not valid JSON.
var ErrMalformed = errors.New("not a valid JSON resume file")

// Decode reads a resume payload and validates required fields. Errors are
// phrased for end users since they surface in the form and CLI.
func Decode(r io.Reader) (model.Resume, error) {
	decoder := json.NewDecoder(r)

	var resume model.Resume
	if err := decoder.Decode(&resume); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return model.Resume{}, fmt.Errorf("field %q has the wrong type", typeErr.Field)
		}
		return model.Resume{}, ErrMalformed
	}

	if err := resume.Validate(); err != nil {
		return model.Resume{}, err
	}
	return resume, nil
}

// DecodeBytes decodes a resume payload from a byte slice.
func DecodeBytes(data []byte) (model.Resume, error) {
	return Decode(bytes.NewReader(data))
}

// Encode writes the resume as indented JSON, matching the snapshot format
// users edit and re-import.
func Encode(w io.Writer, resume model.Resume) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(resume)
}

// EncodeBytes returns the indented JSON form of the resume.
func EncodeBytes(resume model.Resume) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, resume); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Template returns a blank fill-in payload covering every section.
func Template() model.Resume {
	skills := model.NewSkillsMap()
	skills.Set("Category", []string{"Skill1", "Skill2"})

	return model.Resume{
		Name:        "",
		ContactInfo: []string{"email", "phone", "linkedin", "location"},
		WorkExperience: []model.Experience{{
			Responsibilities: []string{""},
			Achievements:     []string{""},
		}},
		TechnicalSkills: skills,
		Education: []model.Education{{
			RelevantCourses: []string{""},
		}},
		Internships: []model.Experience{{
			Responsibilities: []string{""},
			Achievements:     []string{""},
		}},
		Projects: []model.Project{{
			Technologies: []string{""},
		}},
		Certifications: []model.Certification{{}},
	}
}
