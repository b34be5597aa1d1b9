package typed

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/aretw0/chaise/pkg/core"
)

// toRaw encodes doc.Content. Documents without an ID get a random one in the
// returned value only; doc is left untouched.
func toRaw[T any](doc *core.Document[T]) (core.RawDocument, error) {
	id := doc.ID
	if id == "" {
		id = uuid.NewString()
	}
	data, err := json.Marshal(doc.Content)
	if err != nil {
		return core.RawDocument{}, fmt.Errorf("failed to marshal typed content: %w", err)
	}
	return core.RawDocument{
		ID:       id,
		Revision: doc.Revision,
		Content:  data,
	}, nil
}

func fromRaw[T any](raw core.RawDocument) (*core.Document[T], error) {
	var content T
	if err := json.Unmarshal(raw.Content, &content); err != nil {
		return nil, fmt.Errorf("unmarshal %s into %T failed: %w", raw.ID, content, err)
	}
	return &core.Document[T]{
		ID:       raw.ID,
		Revision: raw.Revision,
		Content:  content,
	}, nil
}

// isDesign reports whether a listed ID names a design document.
func isDesign(id string) bool {
	c, _ := core.Design.PathComponent()
	return strings.HasPrefix(id, c+"/")
}
