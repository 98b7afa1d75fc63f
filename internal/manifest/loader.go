package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/quantmind-br/viteassets/internal/domain"
)

// Parse decodes raw manifest bytes into a Manifest. path is the manifest's
// absolute location; it anchors emitted file paths and is carried in errors.
// Every failure is a *domain.FormatError.
func Parse(data []byte, path string) (*Manifest, error) {
	var records map[string]json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, domain.NewFormatError(path, "", err)
	}
	if records == nil {
		return nil, domain.NewFormatError(path, "", ErrNotObject)
	}

	chunks := make([]*Chunk, 0, len(records))
	for id, raw := range records {
		c, err := parseChunk(id, raw)
		if err != nil {
			return nil, domain.NewFormatError(path, id, err)
		}
		chunks = append(chunks, c)
	}

	return New(path, chunks...), nil
}

// rawChunk mirrors a manifest record before defaults are applied
type rawChunk struct {
	Src            json.RawMessage `json:"src"`
	File           json.RawMessage `json:"file"`
	IsEntry        flexBool        `json:"isEntry"`
	IsDynamicEntry flexBool        `json:"isDynamicEntry"`
	Assets         flexStrings     `json:"assets"`
	CSS            flexStrings     `json:"css"`
	Imports        flexStrings     `json:"imports"`
	DynamicImports flexStrings     `json:"dynamicImports"`
}

func parseChunk(id string, raw json.RawMessage) (*Chunk, error) {
	if !isObject(raw) {
		return nil, ErrNotObject
	}

	var rc rawChunk
	if err := json.Unmarshal(raw, &rc); err != nil {
		return nil, err
	}

	file, err := optionalString(rc.File)
	if err != nil {
		return nil, fmt.Errorf("file: %w", err)
	}
	if file == nil || *file == "" {
		return nil, ErrMissingFile
	}

	src, err := optionalString(rc.Src)
	if err != nil {
		return nil, fmt.Errorf("src: %w", err)
	}

	return &Chunk{
		Identifier:     id,
		Src:            src,
		File:           *file,
		IsEntry:        bool(rc.IsEntry),
		IsDynamicEntry: bool(rc.IsDynamicEntry),
		Assets:         []string(rc.Assets),
		CSS:            []string(rc.CSS),
		Imports:        []string(rc.Imports),
		DynamicImports: []string(rc.DynamicImports),
	}, nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// optionalString decodes a string-or-null field
func optionalString(raw json.RawMessage) (*string, error) {
	if isNull(raw) {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, ErrInvalidField
	}
	return &s, nil
}

// flexBool accepts booleans, numbers and strings the way a loosely typed
// generator may write them: 0, "" and "0" are false.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*b = false
		return nil
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch t := v.(type) {
	case bool:
		*b = flexBool(t)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidField, t)
		}
		*b = f != 0
	case string:
		*b = t != "" && t != "0"
	default:
		return fmt.Errorf("%w: %T", ErrInvalidField, v)
	}
	return nil
}

// flexStrings accepts a list of strings, a single string or null
type flexStrings []string

func (s *flexStrings) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*s = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = flexStrings{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("%w: expected string list", ErrInvalidField)
	}
	*s = list
	return nil
}
