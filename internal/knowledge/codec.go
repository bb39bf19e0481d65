package knowledge

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Marshal encodes a tree in the persisted format: indented JSON with
// non-ASCII text written as UTF-8.
func Marshal(root *Node) ([]byte, error) {
	if err := root.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encode tree: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes the persisted format. Any failure, whether bad JSON, a
// schema mismatch or an invariant violation, is returned as a
// *CorruptStateError.
func Unmarshal(data []byte) (*Node, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &CorruptStateError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := validateDocument(doc); err != nil {
		return nil, &CorruptStateError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var root Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, &CorruptStateError{Err: fmt.Errorf("decode tree: %w", err)}
	}
	if err := root.Validate(); err != nil {
		return nil, &CorruptStateError{Err: err}
	}
	return &root, nil
}
