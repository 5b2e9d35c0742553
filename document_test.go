// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

import (
	"errors"
	"testing"
)

func TestParseDocumentSelectsAccessor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		file    string
		compact bool
	}{
		{file: "api.expanded.jsonld", compact: false},
		{file: "api.compact.jsonld", compact: true},
	}

	for _, tc := range cases {
		doc, err := ParseDocument(readTestdata(t, tc.file))
		if err != nil {
			t.Fatalf("%s: ParseDocument: %v", tc.file, err)
		}

		if doc.Compact() != tc.compact {
			t.Fatalf("%s: Compact() = %v", tc.file, doc.Compact())
		}

		if _, isCompact := doc.Accessor().(*CompactAccessor); isCompact != tc.compact {
			t.Fatalf("%s: accessor = %T", tc.file, doc.Accessor())
		}
	}
}

func TestParseDocumentErrors(t *testing.T) {
	t.Parallel()

	if _, err := ParseDocument([]byte("{")); !errors.Is(err, ErrDecodeDocument) {
		t.Fatalf("truncated json error = %v", err)
	}

	for _, input := range []string{`[]`, `"text"`, `[1]`} {
		if _, err := ParseDocument([]byte(input)); !errors.Is(err, ErrDocumentRootType) {
			t.Fatalf("%s error = %v", input, err)
		}
	}
}

func TestDocumentNavigation(t *testing.T) {
	t.Parallel()

	for _, file := range []string{"api.expanded.jsonld", "api.compact.jsonld"} {
		doc, err := ParseDocument(readTestdata(t, file))
		if err != nil {
			t.Fatalf("%s: ParseDocument: %v", file, err)
		}

		endpoints := doc.Endpoints()
		if len(endpoints) != 2 {
			t.Fatalf("%s: endpoints = %d", file, len(endpoints))
		}

		if label := doc.EndpointLabel(endpoints[0]); label != "/people" {
			t.Fatalf("%s: first endpoint = %q", file, label)
		}

		people, ok := doc.FindEndpoint("/people")
		if !ok {
			t.Fatalf("%s: /people not found", file)
		}

		if _, ok := doc.FindEndpoint("/missing"); ok {
			t.Fatalf("%s: /missing found", file)
		}

		get, ok := doc.FindOperation(people, "GET")
		if !ok {
			t.Fatalf("%s: GET /people not found", file)
		}

		if name := doc.OperationName(get); name != "listPeople" {
			t.Fatalf("%s: operation name = %q", file, name)
		}

		if returns := doc.Returns(get); len(returns) != 3 {
			t.Fatalf("%s: returns = %d", file, len(returns))
		}

		if _, ok := doc.FindOperation(people, "delete"); ok {
			t.Fatalf("%s: DELETE /people found", file)
		}

		events, _ := doc.FindEndpoint("/events")
		operations := doc.Operations(events)
		if len(operations) != 1 || doc.OperationMethod(operations[0]) != "publish" {
			t.Fatalf("%s: /events operations = %v", file, operations)
		}
	}
}

func TestDocumentEndpointsOnRootFragment(t *testing.T) {
	t.Parallel()

	doc, err := ParseDocument([]byte(`{
  "http://a.ml/vocabularies/apiContract#endpoint": [
    {"@id": "amf://frag#/ep", "http://a.ml/vocabularies/core#name": [{"@value": "Ping"}]}
  ]
}`))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	endpoints := doc.Endpoints()
	if len(endpoints) != 1 || doc.EndpointLabel(endpoints[0]) != "Ping" {
		t.Fatalf("fragment endpoints = %v", endpoints)
	}
}
