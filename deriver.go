// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

// Deriver computes codes, selection and facets from response nodes.
//
// All methods are pure functions of their arguments and the accessor.
type Deriver struct {
	accessor   Accessor
	classifier ProtocolClassifier
}

// NewDeriver builds deriver for accessor and classifier options.
func NewDeriver(accessor Accessor, opt ClassifierOptions) *Deriver {
	return &Deriver{
		accessor:   accessor,
		classifier: NewProtocolClassifier(accessor, opt),
	}
}

// Accessor returns the graph accessor used by the deriver.
func (deriver *Deriver) Accessor() Accessor {
	return deriver.accessor
}

// IsStreamingStyle classifies endpoint protocol style.
func (deriver *Deriver) IsStreamingStyle(endpoint Node) bool {
	return deriver.classifier.IsStreamingStyle(endpoint)
}

// statusCode reads the status code scalar of a response node.
func (deriver *Deriver) statusCode(response Node) (string, bool) {
	return deriver.accessor.String(response, deriver.accessor.Vocabulary().StatusCode)
}
