// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Document is a decoded API description graph with its accessor.
type Document struct {
	accessor Accessor
	root     Node
	compact  bool
}

// ParseDocument decodes JSON-LD bytes and selects accessor by serialization convention.
//
// Documents carrying "@context" on the root node are read as compacted,
// all others as expanded. An array root uses its first element.
func ParseDocument(data []byte) (*Document, error) {
	return ParseDocumentWithVocabulary(data, DefaultVocabulary())
}

// ParseDocumentWithVocabulary decodes JSON-LD bytes using custom term table.
func ParseDocumentWithVocabulary(data []byte, vocab Vocabulary) (*Document, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeDocument, err)
	}

	root, ok := documentRoot(raw)
	if !ok {
		return nil, ErrDocumentRootType
	}

	doc := &Document{root: root}
	if context, isContext := root["@context"].(map[string]any); isContext {
		doc.accessor = NewCompactAccessor(vocab, context)
		doc.compact = true
	} else {
		doc.accessor = NewExpandedAccessor(vocab)
	}

	return doc, nil
}

// documentRoot unwraps array roots to the first object.
func documentRoot(raw any) (Node, bool) {
	switch typed := raw.(type) {
	case map[string]any:
		return typed, true
	case []any:
		if len(typed) == 0 {
			return nil, false
		}

		root, ok := typed[0].(map[string]any)
		return root, ok
	default:
		return nil, false
	}
}

// Accessor returns the accessor matching document serialization.
func (doc *Document) Accessor() Accessor {
	return doc.accessor
}

// Compact reports whether document uses compacted keys.
func (doc *Document) Compact() bool {
	return doc.compact
}

// Endpoints returns endpoint nodes of the encoded API.
func (doc *Document) Endpoints() []Node {
	vocab := doc.accessor.Vocabulary()
	apis, _ := doc.accessor.Array(doc.root, vocab.Encodes)
	if len(apis) == 0 {
		// Fragments without "encodes" may carry endpoints on the root.
		endpoints, _ := doc.accessor.Array(doc.root, vocab.Endpoint)
		return endpoints
	}

	endpoints, _ := doc.accessor.Array(apis[0], vocab.Endpoint)
	return endpoints
}

// EndpointLabel returns endpoint path, falling back to name and "@id".
func (doc *Document) EndpointLabel(endpoint Node) string {
	vocab := doc.accessor.Vocabulary()
	if path, _ := doc.accessor.String(endpoint, vocab.Path); path != "" {
		return path
	}

	if name, _ := doc.accessor.String(endpoint, vocab.Name); name != "" {
		return name
	}

	return nodeID(endpoint)
}

// FindEndpoint returns first endpoint whose path or name equals selector.
func (doc *Document) FindEndpoint(selector string) (Node, bool) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return nil, false
	}

	vocab := doc.accessor.Vocabulary()
	for _, endpoint := range doc.Endpoints() {
		path, _ := doc.accessor.String(endpoint, vocab.Path)
		name, _ := doc.accessor.String(endpoint, vocab.Name)
		if path == selector || name == selector {
			return endpoint, true
		}
	}

	return nil, false
}

// Operations returns operation nodes of endpoint.
func (doc *Document) Operations(endpoint Node) []Node {
	operations, _ := doc.accessor.Array(endpoint, doc.accessor.Vocabulary().SupportedOperation)
	return operations
}

// OperationMethod returns normalized method label of operation.
func (doc *Document) OperationMethod(operation Node) string {
	method, _ := doc.accessor.String(operation, doc.accessor.Vocabulary().Method)
	return normalizeMethod(method)
}

// OperationName returns human-readable operation name.
func (doc *Document) OperationName(operation Node) string {
	name, _ := doc.accessor.String(operation, doc.accessor.Vocabulary().Name)
	return name
}

// FindOperation returns first endpoint operation with method label.
func (doc *Document) FindOperation(endpoint Node, method string) (Node, bool) {
	method = normalizeMethod(method)
	if method == "" {
		return nil, false
	}

	for _, operation := range doc.Operations(endpoint) {
		if doc.OperationMethod(operation) == method {
			return operation, true
		}
	}

	return nil, false
}

// Returns returns response nodes of operation.
func (doc *Document) Returns(operation Node) []Node {
	responses, _ := doc.accessor.Array(operation, doc.accessor.Vocabulary().Returns)
	return responses
}
