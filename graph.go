// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Node is one decoded JSON-LD object of the API description graph.
type Node = map[string]any

// Accessor reads graph node properties addressed by vocabulary terms.
//
// Implementations hide the serialization convention of the document, so the
// derivation pipeline behaves identically for expanded and compacted models.
type Accessor interface {
	// Vocabulary returns the term table the accessor was built with.
	Vocabulary() Vocabulary
	// Key resolves a term to the node property key used by the document.
	Key(term Term) string
	// Scalar returns the first value of a property, unwrapping "@value" objects.
	Scalar(node Node, term Term) (any, bool)
	// String returns the scalar value of a property formatted as text.
	String(node Node, term Term) (string, bool)
	// Array returns a property normalized to a sequence of nodes.
	Array(node Node, term Term) ([]Node, bool)
}

// ExpandedAccessor reads documents whose property keys are full term IRIs.
type ExpandedAccessor struct {
	vocab Vocabulary
}

// NewExpandedAccessor returns accessor for expanded JSON-LD documents.
func NewExpandedAccessor(vocab Vocabulary) *ExpandedAccessor {
	return &ExpandedAccessor{vocab: vocab}
}

// Vocabulary returns the accessor term table.
func (accessor *ExpandedAccessor) Vocabulary() Vocabulary {
	return accessor.vocab
}

// Key returns the term IRI unchanged.
func (accessor *ExpandedAccessor) Key(term Term) string {
	return string(term)
}

// Scalar returns the first property value.
func (accessor *ExpandedAccessor) Scalar(node Node, term Term) (any, bool) {
	return scalarValue(node, accessor.Key(term))
}

// String returns the first property value as text.
func (accessor *ExpandedAccessor) String(node Node, term Term) (string, bool) {
	return stringValue(node, accessor.Key(term))
}

// Array returns the property normalized to nodes.
func (accessor *ExpandedAccessor) Array(node Node, term Term) ([]Node, bool) {
	return arrayValue(node, accessor.Key(term))
}

// CompactAccessor reads documents compacted against a JSON-LD "@context".
type CompactAccessor struct {
	vocab       Vocabulary
	context     map[string]string
	contextKeys []string
	keys        map[Term]string
}

// NewCompactAccessor returns accessor for documents compacted with context.
//
// Context values may be plain IRIs or term definitions carrying "@id".
// Keys for every vocabulary term are resolved once here.
func NewCompactAccessor(vocab Vocabulary, context map[string]any) *CompactAccessor {
	accessor := &CompactAccessor{
		vocab:   vocab,
		context: make(map[string]string, len(context)),
	}

	for alias, raw := range context {
		iri := contextIRI(raw)
		if iri == "" {
			continue
		}

		accessor.context[alias] = iri
		accessor.contextKeys = append(accessor.contextKeys, alias)
	}

	sort.Strings(accessor.contextKeys)

	terms := vocab.terms()
	accessor.keys = make(map[Term]string, len(terms))
	for _, term := range terms {
		accessor.keys[term] = accessor.resolveKey(term)
	}

	return accessor
}

// Vocabulary returns the accessor term table.
func (accessor *CompactAccessor) Vocabulary() Vocabulary {
	return accessor.vocab
}

// Key resolves the term against the document context.
func (accessor *CompactAccessor) Key(term Term) string {
	if key, ok := accessor.keys[term]; ok {
		return key
	}

	return accessor.resolveKey(term)
}

// Scalar returns the first property value.
func (accessor *CompactAccessor) Scalar(node Node, term Term) (any, bool) {
	return scalarValue(node, accessor.Key(term))
}

// String returns the first property value as text.
func (accessor *CompactAccessor) String(node Node, term Term) (string, bool) {
	return stringValue(node, accessor.Key(term))
}

// Array returns the property normalized to nodes.
func (accessor *CompactAccessor) Array(node Node, term Term) ([]Node, bool) {
	return arrayValue(node, accessor.Key(term))
}

// resolveKey maps a term IRI to an exact alias, then a "prefix:local" key,
// then a vocab-relative name. Unknown namespaces keep the full IRI.
func (accessor *CompactAccessor) resolveKey(term Term) string {
	property := string(term)
	for _, alias := range accessor.contextKeys {
		if strings.HasPrefix(alias, "@") {
			continue
		}

		if accessor.context[alias] == property {
			return alias
		}
	}

	hashIndex := strings.LastIndex(property, "#")
	if hashIndex < 0 {
		return property
	}

	namespace := property[:hashIndex+1]
	local := property[hashIndex+1:]
	for _, alias := range accessor.contextKeys {
		if strings.HasPrefix(alias, "@") {
			continue
		}

		if accessor.context[alias] == namespace {
			return alias + ":" + local
		}
	}

	if accessor.context["@vocab"] == namespace {
		return local
	}

	return property
}

// contextIRI extracts IRI from a context entry value.
func contextIRI(raw any) string {
	switch typed := raw.(type) {
	case string:
		return typed
	case map[string]any:
		return asString(typed["@id"])
	default:
		return ""
	}
}

// scalarValue returns the first value of a property, unwrapping value objects.
func scalarValue(node Node, key string) (any, bool) {
	if node == nil {
		return nil, false
	}

	data, ok := node[key]
	if !ok || data == nil {
		return nil, false
	}

	if items, isSlice := data.([]any); isSlice {
		if len(items) == 0 {
			return nil, false
		}

		data = items[0]
	}

	switch typed := data.(type) {
	case nil:
		return nil, false
	case map[string]any:
		value, ok := typed["@value"]
		if !ok {
			return nil, false
		}

		return value, true
	default:
		return typed, true
	}
}

// stringValue returns scalar property value formatted as text.
func stringValue(node Node, key string) (string, bool) {
	value, ok := scalarValue(node, key)
	if !ok {
		return "", false
	}

	switch typed := value.(type) {
	case string:
		return typed, true
	case json.Number:
		return typed.String(), true
	case bool:
		return strconv.FormatBool(typed), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	default:
		return "", false
	}
}

// arrayValue normalizes a property to a node sequence.
//
// Missing, null, false and empty-string values are absent. An explicit empty
// array is present and empty. Entries that are not objects are dropped.
func arrayValue(node Node, key string) ([]Node, bool) {
	if node == nil {
		return nil, false
	}

	data, ok := node[key]
	if !ok || isFalsy(data) {
		return nil, false
	}

	var items []any
	switch typed := data.(type) {
	case []any:
		items = typed
	case []Node:
		return typed, true
	default:
		items = []any{typed}
	}

	out := make([]Node, 0, len(items))
	for _, item := range items {
		if child, isNode := item.(map[string]any); isNode {
			out = append(out, child)
		}
	}

	return out, true
}

// isFalsy reports values treated as "not set" by array normalization.
func isFalsy(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	case bool:
		return !typed
	default:
		return false
	}
}

// asString returns value when it is a string, otherwise empty string.
func asString(value any) string {
	text, ok := value.(string)
	if !ok {
		return ""
	}

	return text
}

// nodeID returns the "@id" of a graph node.
func nodeID(node Node) string {
	if node == nil {
		return ""
	}

	return asString(node["@id"])
}
