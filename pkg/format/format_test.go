package format

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/chaise/pkg/core"
)

func TestSerializers(t *testing.T) {
	doc := core.RawDocument{
		ID:       "doc1",
		Revision: core.NewRevision("1-abc"),
		Content:  json.RawMessage(`{"_id":"doc1","_rev":"1-abc","title":"Test Title","tags":["a","b"],"meta":{"foo":"bar"},"count":42}`),
	}

	for name, s := range Default() {
		t.Run(name, func(t *testing.T) {
			data, err := s.Encode(doc)
			require.NoError(t, err)
			assert.Contains(t, string(data), "Test Title")

			// Parse back
			parsed, err := s.Decode(data)
			require.NoError(t, err)
			assert.JSONEq(t, string(doc.Content), string(parsed))
		})
	}
}

func TestYAML_Encode(t *testing.T) {
	doc := core.RawDocument{Content: json.RawMessage(`{"name":"Alice","nested":{"k":1}}`)}

	data, err := YAML{}.Encode(doc)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "name: Alice")
	assert.Contains(t, out, "nested:\n  k: 1")
}

func TestYAML_EncodeKeepsNumbers(t *testing.T) {
	doc := core.RawDocument{Content: json.RawMessage(`{"big":9007199254740993,"ratio":0.25,"list":[1,2.5]}`)}

	data, err := YAML{}.Encode(doc)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "big: 9007199254740993")
	assert.Contains(t, out, "ratio: 0.25")
	assert.Contains(t, out, "- 1\n")
	assert.Contains(t, out, "- 2.5\n")
	assert.NotContains(t, out, "e+")

	// Round trip keeps the exact integer.
	parsed, err := YAML{}.Decode(data)
	require.NoError(t, err)
	assert.Contains(t, string(parsed), `"big":9007199254740993`)
}

func TestDecode_Errors(t *testing.T) {
	_, err := JSON{}.Decode([]byte(`[1,2]`))
	assert.Error(t, err, "arrays are not document bodies")

	_, err = JSON{}.Decode([]byte(`{"a":`))
	assert.Error(t, err)

	_, err = JSON{}.Decode([]byte(`null`))
	assert.Error(t, err, "null is not a document body")

	_, err = YAML{}.Decode([]byte("- a\n- b\n"))
	assert.Error(t, err)
}

func TestYAML_DecodeEmpty(t *testing.T) {
	out, err := YAML{}.Decode([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, "{}", strings.TrimSpace(string(out)))
}

func TestByName(t *testing.T) {
	s, err := ByName("yml")
	require.NoError(t, err)
	assert.IsType(t, YAML{}, s)

	_, err = ByName("csv")
	assert.Error(t, err)
}
