// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

// LinkView describes one follow-up operation link of a response.
type LinkView struct {
	Name        string
	OperationID string
	Mappings    []LinkMapping
}

// LinkMapping is one template variable to runtime expression mapping.
type LinkMapping struct {
	Variable   string
	Expression string
}

// ProjectLinks converts link nodes into link views, keeping input order.
func (deriver *Deriver) ProjectLinks(links []Node) []LinkView {
	if len(links) == 0 {
		return nil
	}

	vocab := deriver.accessor.Vocabulary()
	out := make([]LinkView, 0, len(links))
	for _, link := range links {
		view := LinkView{}
		view.Name, _ = deriver.accessor.String(link, vocab.Name)
		view.OperationID, _ = deriver.accessor.String(link, vocab.OperationID)

		mappings, _ := deriver.accessor.Array(link, vocab.Mapping)
		for _, mapping := range mappings {
			variable, _ := deriver.accessor.String(mapping, vocab.TemplateVariable)
			expression, _ := deriver.accessor.String(mapping, vocab.LinkExpression)
			view.Mappings = append(view.Mappings, LinkMapping{
				Variable:   variable,
				Expression: expression,
			})
		}

		out = append(out, view)
	}

	return out
}
