// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

import "testing"

func TestProjectLinks(t *testing.T) {
	t.Parallel()

	for _, convention := range testConventions() {
		vocab := convention.vocab()
		mapping := convention.set(Node{}, vocab.TemplateVariable, "personId")
		convention.set(mapping, vocab.LinkExpression, "$response.body#/id")

		link := convention.set(Node{}, vocab.Name, "GetPerson")
		convention.set(link, vocab.OperationID, "getPerson")
		convention.children(link, vocab.Mapping, mapping)

		bare := convention.set(Node{}, vocab.Name, "Self")

		response := convention.children(convention.response("200"), vocab.Link, link, bare)
		deriver := convention.deriver()
		views := deriver.ProjectLinks(deriver.Project(response).Links)
		if len(views) != 2 {
			t.Fatalf("%s: links = %+v", convention.name, views)
		}

		if views[0].Name != "GetPerson" || views[0].OperationID != "getPerson" {
			t.Fatalf("%s: first link = %+v", convention.name, views[0])
		}

		if len(views[0].Mappings) != 1 || views[0].Mappings[0] != (LinkMapping{Variable: "personId", Expression: "$response.body#/id"}) {
			t.Fatalf("%s: mappings = %+v", convention.name, views[0].Mappings)
		}

		if views[1].Name != "Self" || views[1].OperationID != "" || views[1].Mappings != nil {
			t.Fatalf("%s: second link = %+v", convention.name, views[1])
		}
	}
}

func TestProjectLinksEmpty(t *testing.T) {
	t.Parallel()

	deriver := testConventions()[0].deriver()
	if views := deriver.ProjectLinks(nil); views != nil {
		t.Fatalf("ProjectLinks(nil) = %+v", views)
	}

	if views := deriver.ProjectLinks([]Node{}); views != nil {
		t.Fatalf("ProjectLinks([]) = %+v", views)
	}
}
