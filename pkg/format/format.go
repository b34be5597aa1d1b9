// Package format renders raw documents for humans and parses edited ones back
// into JSON bodies.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/chaise/pkg/core"
)

// Serializer defines how to render and read back a document body.
type Serializer interface {
	// Encode renders the document content.
	Encode(doc core.RawDocument) ([]byte, error)
	// Decode parses data into a JSON object suitable for a document body.
	Decode(data []byte) (json.RawMessage, error)
}

// Default returns the serializers by name.
func Default() map[string]Serializer {
	return map[string]Serializer{
		"json": JSON{},
		"yaml": YAML{},
		"yml":  YAML{},
	}
}

// ByName looks up one of the Default serializers.
func ByName(name string) (Serializer, error) {
	s, ok := Default()[name]
	if !ok {
		return nil, fmt.Errorf("unknown format %q", name)
	}
	return s, nil
}

// --- JSON ---

// JSON renders indented JSON.
type JSON struct{}

func (JSON) Encode(doc core.RawDocument) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, doc.Content, "", "  "); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (JSON) Decode(data []byte) (json.RawMessage, error) {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if payload == nil {
		return nil, fmt.Errorf("invalid json: document body must be an object, got null")
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return buf.Bytes(), nil
}

// --- YAML ---

// YAML renders the document as a YAML mapping.
type YAML struct{}

func (YAML) Encode(doc core.RawDocument) ([]byte, error) {
	var payload map[string]any
	dec := json.NewDecoder(bytes.NewReader(doc.Content))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(exactNumbers(payload)); err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (YAML) Decode(data []byte) (json.RawMessage, error) {
	var payload map[string]any
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	if payload == nil {
		payload = map[string]any{}
	}
	out, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("yaml content is not representable as json: %w", err)
	}
	return out, nil
}

// exactNumbers replaces json.Number values with int64 when they are integers
// in range, and float64 otherwise, so yaml.v3 emits them as plain scalars.
func exactNumbers(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = exactNumbers(e)
		}
		return x
	case []any:
		for i, e := range x {
			x[i] = exactNumbers(e)
		}
		return x
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	default:
		return v
	}
}
