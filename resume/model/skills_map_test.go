package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSkillsMapPreservesInsertionOrder(t *testing.T) {
	m := NewSkillsMap()
	m.Set("Languages", []string{"Go", "Python"})
	m.Set("Databases", []string{"PostgreSQL"})
	m.Set("Cloud", []string{"AWS"})

	want := []string{"Languages", "Databases", "Cloud"}
	if !reflect.DeepEqual(m.Keys(), want) {
		t.Fatalf("expected keys %v, got %v", want, m.Keys())
	}

	// Replacing a category keeps its original position.
	m.Set("Databases", []string{"PostgreSQL", "Redis"})
	if !reflect.DeepEqual(m.Keys(), want) {
		t.Fatalf("expected keys unchanged after replace, got %v", m.Keys())
	}
	skills, ok := m.Get("Databases")
	if !ok || len(skills) != 2 {
		t.Fatalf("expected replaced skills, got %v ok=%v", skills, ok)
	}
}

func TestSkillsMapJSONRoundTripKeepsOrder(t *testing.T) {
	m := NewSkillsMap()
	m.Set("Zeta", []string{"one"})
	m.Set("Alpha", []string{"two", "three"})
	m.Set("Mid", []string{"four"})

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded SkillsMap
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(decoded.Keys(), m.Keys()) {
		t.Fatalf("expected keys %v after round trip, got %v", m.Keys(), decoded.Keys())
	}

	again, err := json.Marshal(decoded)
	if err != nil {
		t.Fatalf("marshal again: %v", err)
	}
	if string(again) != string(data) {
		t.Fatalf("expected stable JSON across round trips:\nfirst:  %s\nsecond: %s", data, again)
	}
}

func TestSkillsMapUnmarshalRejectsNonObject(t *testing.T) {
	var m SkillsMap
	if err := json.Unmarshal([]byte(`["not","an","object"]`), &m); err == nil {
		t.Fatalf("expected error for non-object payload")
	}
}

func TestSkillsMapEmptyMarshalsToEmptyObject(t *testing.T) {
	m := NewSkillsMap()
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("expected {}, got %s", data)
	}
}
