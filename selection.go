// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

// Selection is an optional index into a CodeSet.
//
// The zero value is unset; index 0 is a valid selection distinct from it.
type Selection struct {
	Index int
	Valid bool
}

// NoSelection is the unset selection.
var NoSelection = Selection{}

// SelectIndex returns a set selection for index.
func SelectIndex(index int) Selection {
	return Selection{Index: index, Valid: true}
}

// OnCodesChanged returns the default selection for a freshly derived code set.
func OnCodesChanged(codes CodeSet) Selection {
	if len(codes) == 0 {
		return NoSelection
	}

	return SelectIndex(0)
}

// ResolveSelected returns the response node addressed by selection.
//
// The first response whose status equals the selected code wins. The
// SuccessCode label matches the first response with an empty or missing
// status code, the same responses deriveCodes labels with it.
func (deriver *Deriver) ResolveSelected(selection Selection, codes CodeSet, responses []Node) Node {
	if responses == nil || codes == nil || !selection.Valid {
		return nil
	}

	status, ok := codes.At(selection.Index)
	if !ok {
		return nil
	}

	for _, response := range responses {
		if deriver.statusMatches(response, status) {
			return response
		}
	}

	return nil
}

// statusMatches reports whether response carries status code label.
func (deriver *Deriver) statusMatches(response Node, status string) bool {
	if response == nil {
		return false
	}

	value, ok := deriver.statusCode(response)
	if status == SuccessCode && value == "" {
		return true
	}

	return ok && value == status
}
