package model

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var knownMethodIDs = map[string]string{
	"0xa9059cbb": "Token transfer",
	"0x39125215": "BitGo send",
}

// DefaultMethodLabels holds the built-in selector labels.
var DefaultMethodLabels = MethodLabels{labels: knownMethodIDs}

// MethodLabels maps 4-byte method selectors to human readable labels.
type MethodLabels struct {
	labels map[string]string
}

// Label returns the label for a contract call, the raw selector when unknown,
// and an empty string for anything that is not a contract call.
func (m MethodLabels) Label(tx Transaction) string {
	if !tx.IsContractCall() {
		return ""
	}
	id := tx.Data.MethodID()
	if label, ok := m.labels[id]; ok {
		return label
	}
	return id
}

// LoadMethodLabels reads a YAML mapping of selector to label and merges it over
// the built-in table. An empty path returns DefaultMethodLabels.
func LoadMethodLabels(path string) (MethodLabels, error) {
	if path == "" {
		return DefaultMethodLabels, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return MethodLabels{}, fmt.Errorf("read method labels: %w", err)
	}
	return ParseMethodLabels(raw)
}

// ParseMethodLabels merges YAML encoded labels over the built-in table.
func ParseMethodLabels(raw []byte) (MethodLabels, error) {
	var extra map[string]string
	if err := yaml.Unmarshal(raw, &extra); err != nil {
		return MethodLabels{}, fmt.Errorf("decode method labels: %w", err)
	}

	merged := make(map[string]string, len(knownMethodIDs)+len(extra))
	for id, label := range knownMethodIDs {
		merged[id] = label
	}
	for id, label := range extra {
		selector, err := NewHexBlob(id)
		if err != nil {
			return MethodLabels{}, err
		}
		if len(selector.String()) != methodIDLength {
			return MethodLabels{}, &ValidationError{Kind: "method id", Value: id, Reason: "must be 4 bytes"}
		}
		merged[selector.String()] = strings.TrimSpace(label)
	}
	return MethodLabels{labels: merged}, nil
}
