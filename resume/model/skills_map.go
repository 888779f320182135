package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// SkillsMap is a category -> skills mapping that preserves the order in which
// categories were added. encoding/json's map type randomizes key order, which
// would break import/export round-trips.
type SkillsMap struct {
	keys   []string
	values map[string][]string
}

// NewSkillsMap returns an empty SkillsMap.
func NewSkillsMap() SkillsMap {
	return SkillsMap{values: make(map[string][]string)}
}

// Set adds or replaces a category. New categories append to the key order.
func (m *SkillsMap) Set(category string, skills []string) {
	if m.values == nil {
		m.values = make(map[string][]string)
	}
	if _, ok := m.values[category]; !ok {
		m.keys = append(m.keys, category)
	}
	m.values[category] = skills
}

// Get returns the skills for a category.
func (m SkillsMap) Get(category string) ([]string, bool) {
	skills, ok := m.values[category]
	return skills, ok
}

// Keys returns the categories in insertion order.
func (m SkillsMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of categories.
func (m SkillsMap) Len() int {
	return len(m.keys)
}

// MarshalJSON encodes the mapping as a JSON object in insertion order.
func (m SkillsMap) MarshalJSON() ([]byte, error) {
	if len(m.keys) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valJSON, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, recording key order as seen.
func (m *SkillsMap) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	token, err := decoder.Token()
	if err != nil {
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != '{' {
		return errors.New("technical_skills must be an object")
	}

	m.keys = nil
	m.values = make(map[string][]string)

	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return err
		}
		key, ok := keyToken.(string)
		if !ok {
			return errors.New("technical_skills has a non-string key")
		}

		var skills []string
		if err := decoder.Decode(&skills); err != nil {
			return fmt.Errorf("technical_skills[%q] must be a list of strings", key)
		}
		m.Set(key, skills)
	}

	if _, err := decoder.Token(); err != nil && err != io.EOF {
		return err
	}
	return nil
}
