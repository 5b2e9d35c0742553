// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

import "sort"

// SuccessCode labels responses of streaming-style operations without status code.
const SuccessCode = "success"

// CodeSet is an ascending, lexicographically sorted list of status code labels.
//
// A nil CodeSet means no responses were given. A non-nil empty CodeSet means
// responses were given but none produced a label. Duplicate codes are kept.
type CodeSet []string

// Len returns number of codes.
func (codes CodeSet) Len() int {
	return len(codes)
}

// At returns code at index, or false when index is out of range.
func (codes CodeSet) At(index int) (string, bool) {
	if index < 0 || index >= len(codes) {
		return "", false
	}

	return codes[index], true
}

// DeriveCodes computes the code set for responses of an operation on endpoint.
func (deriver *Deriver) DeriveCodes(responses []Node, endpoint Node) CodeSet {
	if len(responses) == 0 {
		return nil
	}

	return deriver.deriveCodes(responses, deriver.IsStreamingStyle(endpoint))
}

// deriveCodes computes the code set with a precomputed protocol verdict.
func (deriver *Deriver) deriveCodes(responses []Node, streaming bool) CodeSet {
	if len(responses) == 0 {
		return nil
	}

	codes := make(CodeSet, 0, len(responses))
	for _, response := range responses {
		if response == nil {
			continue
		}

		status, _ := deriver.statusCode(response)
		if status != "" {
			codes = append(codes, status)
			continue
		}

		if streaming {
			codes = append(codes, SuccessCode)
		}
	}

	// Lexicographic order: "1000" sorts before "200".
	sort.Strings(codes)
	return codes
}
