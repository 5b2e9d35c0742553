// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testContext is a compact document context covering every AMF namespace.
var testContext = map[string]any{
	"apiContract": NamespaceAPIContract,
	"core":        NamespaceCore,
	"doc":         NamespaceDocument,
	"shapes":      NamespaceShapes,
	"data":        NamespaceData,
	"shacl":       NamespaceShacl,
}

// testConvention builds graph nodes in one serialization convention.
type testConvention struct {
	name     string
	accessor Accessor
	compact  bool
}

func testConventions() []testConvention {
	vocab := DefaultVocabulary()
	return []testConvention{
		{name: "expanded", accessor: NewExpandedAccessor(vocab)},
		{name: "compact", accessor: NewCompactAccessor(vocab, testContext), compact: true},
	}
}

func (convention testConvention) vocab() Vocabulary {
	return convention.accessor.Vocabulary()
}

func (convention testConvention) deriver() *Deriver {
	return NewDeriver(convention.accessor, ClassifierOptions{})
}

// set stores scalar value the way the convention serializes it.
func (convention testConvention) set(node Node, term Term, value any) Node {
	key := convention.accessor.Key(term)
	if convention.compact {
		node[key] = value
		return node
	}

	node[key] = []any{map[string]any{"@value": value}}
	return node
}

// children stores child nodes as an array property.
func (convention testConvention) children(node Node, term Term, items ...Node) Node {
	values := make([]any, 0, len(items))
	for _, item := range items {
		values = append(values, map[string]any(item))
	}

	node[convention.accessor.Key(term)] = values
	return node
}

// response builds a response node; empty status leaves the property out.
func (convention testConvention) response(status string) Node {
	node := Node{}
	if status != "" {
		convention.set(node, convention.vocab().StatusCode, status)
	}

	return node
}

// blankResponse builds a response node with a present but empty status code.
func (convention testConvention) blankResponse() Node {
	return convention.set(Node{}, convention.vocab().StatusCode, "")
}

func (convention testConvention) header(name string) Node {
	return convention.set(Node{}, convention.vocab().Name, name)
}

func (convention testConvention) payload(mediaType string) Node {
	return convention.set(Node{}, convention.vocab().MediaType, mediaType)
}

func (convention testConvention) operation(method string) Node {
	return convention.set(Node{}, convention.vocab().Method, method)
}

func (convention testConvention) endpoint(operations ...Node) Node {
	return convention.children(Node{}, convention.vocab().SupportedOperation, operations...)
}

func (convention testConvention) annotate(node Node) Node {
	node[convention.accessor.Key(convention.vocab().CustomDomainProperties)] = []any{
		map[string]any{"@id": "amf://id#/declarations/annotations/deprecated"},
	}

	return node
}

// readTestdata loads fixture bytes from testdata directory.
func readTestdata(t testing.TB, name string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}

	return data
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}

func assertCodes(t *testing.T, got CodeSet, want ...string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("codes = %v, want %v", got, want)
	}

	for index := range want {
		if got[index] != want[index] {
			t.Fatalf("codes = %v, want %v", got, want)
		}
	}
}
