// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

// FacetSnapshot holds documentation facets of one response node.
//
// Headers and Payload are nil when the node has no such property and
// non-nil (possibly empty) when it declares one. Links is nil only when no
// response is selected.
type FacetSnapshot struct {
	Description    string
	DescriptionSet bool
	Headers        []Node
	Payload        []Node
	HasAnnotations bool
	Links          []Node
}

// Project derives the facet snapshot of a response node.
func (deriver *Deriver) Project(response Node) FacetSnapshot {
	if response == nil {
		return FacetSnapshot{}
	}

	vocab := deriver.accessor.Vocabulary()
	facets := FacetSnapshot{}
	facets.Description, facets.DescriptionSet = deriver.accessor.String(response, vocab.Description)
	facets.Headers, _ = deriver.accessor.Array(response, vocab.Header)
	facets.Payload, _ = deriver.accessor.Array(response, vocab.Payload)
	facets.HasAnnotations = deriver.hasAnnotations(response)

	links, _ := deriver.accessor.Array(response, vocab.Link)
	if links == nil {
		links = []Node{}
	}

	facets.Links = links
	return facets
}

// hasAnnotations reports whether node carries custom domain properties.
func (deriver *Deriver) hasAnnotations(node Node) bool {
	key := deriver.accessor.Key(deriver.accessor.Vocabulary().CustomDomainProperties)
	switch typed := node[key].(type) {
	case []any:
		return len(typed) > 0
	case map[string]any:
		return true
	case string:
		return typed != ""
	default:
		return false
	}
}

// HasDescription reports whether description text is set and not empty.
func (facets FacetSnapshot) HasDescription() bool {
	return facets.DescriptionSet && facets.Description != ""
}

// HasHeaders reports whether at least one header is declared.
func (facets FacetSnapshot) HasHeaders() bool {
	return len(facets.Headers) > 0
}

// HasPayload reports whether at least one payload is declared.
func (facets FacetSnapshot) HasPayload() bool {
	return len(facets.Payload) > 0
}

// HasLinks reports whether at least one follow-up link is declared.
func (facets FacetSnapshot) HasLinks() bool {
	return len(facets.Links) > 0
}

// NoDocumentation reports whether response has nothing to document.
func (facets FacetSnapshot) NoDocumentation() bool {
	return !(facets.HasAnnotations || facets.HasHeaders() || facets.HasPayload() || facets.HasDescription())
}
