// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

import (
	"fmt"
	"log/slog"
	"strings"
)

// operationTarget is one endpoint operation selected for rendering.
type operationTarget struct {
	Endpoint      Node
	EndpointIndex int
	EndpointLabel string
	Operation     Node
	Method        string
	Name          string
}

// responseSection pairs one code label with the snapshot selecting it.
type responseSection struct {
	Code     string
	Snapshot *Snapshot
}

// operationState is the derived state of every code of one operation.
type operationState struct {
	Target           operationTarget
	Streaming        bool
	Codes            CodeSet
	ShowCodeSelector bool
	Sections         []responseSection
}

// collectOperations selects operations by endpoint and method filters in document order.
func collectOperations(doc *Document, opt Options) ([]operationTarget, error) {
	endpoints := doc.Endpoints()
	if selector := strings.TrimSpace(opt.Endpoint); selector != "" {
		endpoint, ok := doc.FindEndpoint(selector)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrEndpointNotFound, selector)
		}

		endpoints = []Node{endpoint}
	}

	method := normalizeMethod(opt.Method)
	targets := make([]operationTarget, 0, len(endpoints))
	for endpointIndex, endpoint := range endpoints {
		label := doc.EndpointLabel(endpoint)
		for _, operation := range doc.Operations(endpoint) {
			operationMethod := doc.OperationMethod(operation)
			if method != "" && operationMethod != method {
				continue
			}

			targets = append(targets, operationTarget{
				Endpoint:      endpoint,
				EndpointIndex: endpointIndex,
				EndpointLabel: label,
				Operation:     operation,
				Method:        operationMethod,
				Name:          doc.OperationName(operation),
			})
		}
	}

	if len(targets) == 0 {
		if method != "" {
			return nil, fmt.Errorf("%w %q", ErrOperationNotFound, opt.Method)
		}

		return nil, ErrNothingToRender
	}

	return targets, nil
}

// protocolCache memoizes endpoint protocol verdicts within one derivation pass.
type protocolCache struct {
	deriver  *Deriver
	verdicts map[int]bool
}

func newProtocolCache(deriver *Deriver) *protocolCache {
	return &protocolCache{
		deriver:  deriver,
		verdicts: make(map[int]bool),
	}
}

// streaming classifies the target endpoint once per pass.
func (cache *protocolCache) streaming(target operationTarget) bool {
	if verdict, ok := cache.verdicts[target.EndpointIndex]; ok {
		return verdict
	}

	verdict := cache.deriver.IsStreamingStyle(target.Endpoint)
	cache.verdicts[target.EndpointIndex] = verdict
	return verdict
}

// deriveOperation walks every code of an operation through a controller.
func deriveOperation(doc *Document, protocols *protocolCache, target operationTarget, logger *slog.Logger) operationState {
	controller := NewController(protocols.deriver, logger)
	initial := controller.setResponses(doc.Returns(target.Operation), target.Endpoint, protocols.streaming(target))

	state := operationState{
		Target:           target,
		Streaming:        initial.Streaming,
		Codes:            initial.Codes,
		ShowCodeSelector: initial.ShowCodeSelector(),
		Sections:         make([]responseSection, 0, len(initial.Codes)),
	}

	if initial.State() == StateEmpty {
		logger.Warn("operation has no documented responses",
			slog.String("endpoint", target.EndpointLabel),
			slog.String("method", target.Method),
		)

		return state
	}

	for index := range initial.Codes {
		snapshot, ok := controller.SetSelectionIndex(index)
		if !ok {
			break
		}

		code, _ := snapshot.SelectedCode()
		state.Sections = append(state.Sections, responseSection{
			Code:     code,
			Snapshot: snapshot,
		})
	}

	return state
}
