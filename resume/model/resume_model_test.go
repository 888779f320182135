package model

import "testing"

func TestValidateRequiresName(t *testing.T) {
	r := Resume{Name: "   "}
	if err := r.Validate(); err == nil {
		t.Fatalf("expected error for blank name")
	}

	r.Name = "Jane Roe"
	if err := r.Validate(); err != nil {
		t.Fatalf("expected name-only resume to validate, got %v", err)
	}
}

func TestBulletCountSpansWorkAndInternships(t *testing.T) {
	r := Resume{
		Name: "Jane Roe",
		WorkExperience: []Experience{
			{Responsibilities: []string{"a", "b"}, Achievements: []string{"c"}},
			{Responsibilities: []string{"d"}},
		},
		Internships: []Experience{
			{Responsibilities: []string{"e"}, Achievements: []string{"f", "g"}},
		},
	}
	if got := r.BulletCount(); got != 7 {
		t.Fatalf("expected 7 bullets, got %d", got)
	}
}
