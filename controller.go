// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

import (
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
)

// State is the lifecycle state of a derived snapshot.
type State int

const (
	// StateEmpty means no codes are available.
	StateEmpty State = iota
	// StateCodesReady means codes exist but selection did not resolve to a response.
	StateCodesReady
	// StateSelected means a response is selected and facets are projected.
	StateSelected
)

// String returns state name.
func (state State) String() string {
	switch state {
	case StateEmpty:
		return "empty"
	case StateCodesReady:
		return "codes-ready"
	case StateSelected:
		return "selected"
	default:
		return "unknown"
	}
}

// Snapshot is one consistent derived state of the responses document.
//
// Snapshots are immutable once published by a Controller. Every snapshot a
// Controller hands out owns its slices; graph nodes are shared read-only.
type Snapshot struct {
	Responses []Node
	Endpoint  Node
	Streaming bool
	Codes     CodeSet
	Selection Selection
	Selected  Node
	Facets    FacetSnapshot
}

// State returns the lifecycle state of the snapshot.
func (snapshot *Snapshot) State() State {
	switch {
	case snapshot == nil || snapshot.Codes.Len() == 0:
		return StateEmpty
	case snapshot.Selected == nil:
		return StateCodesReady
	default:
		return StateSelected
	}
}

// ShowCodeSelector reports whether a status code selector should be displayed.
//
// Streaming-style operations still have codes but no selector.
func (snapshot *Snapshot) ShowCodeSelector() bool {
	return snapshot != nil && snapshot.Codes.Len() > 0 && !snapshot.Streaming
}

// SelectedCode returns the code label of the current selection.
func (snapshot *Snapshot) SelectedCode() (string, bool) {
	if snapshot == nil || !snapshot.Selection.Valid {
		return "", false
	}

	return snapshot.Codes.At(snapshot.Selection.Index)
}

// clone copies snapshot with its own slices so callers cannot reach published state.
func (snapshot *Snapshot) clone() *Snapshot {
	out := *snapshot
	out.Responses = slices.Clone(snapshot.Responses)
	out.Codes = slices.Clone(snapshot.Codes)
	out.Facets.Headers = slices.Clone(snapshot.Facets.Headers)
	out.Facets.Payload = slices.Clone(snapshot.Facets.Payload)
	out.Facets.Links = slices.Clone(snapshot.Facets.Links)
	return &out
}

// Controller orchestrates derivation and publishes snapshots atomically.
type Controller struct {
	deriver *Deriver
	logger  *slog.Logger

	mu      sync.Mutex
	current atomic.Pointer[Snapshot]
}

// NewController returns controller in empty state.
//
// A nil logger disables logging.
func NewController(deriver *Deriver, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	controller := &Controller{
		deriver: deriver,
		logger:  logger,
	}

	controller.current.Store(&Snapshot{})
	return controller
}

// Snapshot returns a copy of the latest published snapshot.
func (controller *Controller) Snapshot() *Snapshot {
	return controller.current.Load().clone()
}

// SetResponses replaces response list and endpoint and derives a new snapshot.
//
// The response list is copied; later changes to it do not reach the controller.
func (controller *Controller) SetResponses(responses []Node, endpoint Node) *Snapshot {
	return controller.setResponses(responses, endpoint, controller.deriver.IsStreamingStyle(endpoint))
}

// setResponses derives a new snapshot with a precomputed protocol verdict.
func (controller *Controller) setResponses(responses []Node, endpoint Node, streaming bool) *Snapshot {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	snapshot := controller.derive(slices.Clone(responses), endpoint, streaming)
	controller.publish(snapshot, "responses")
	return snapshot.clone()
}

// SetSelectionIndex selects a code by index without recomputing codes.
//
// It is rejected in StateEmpty and returns the unchanged snapshot with false.
func (controller *Controller) SetSelectionIndex(index int) (*Snapshot, bool) {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	previous := controller.current.Load()
	if previous.State() == StateEmpty {
		controller.logger.Debug("selection ignored without codes", slog.Int("index", index))
		return previous.clone(), false
	}

	snapshot := *previous
	snapshot.Selection = SelectIndex(index)
	snapshot.Selected = controller.deriver.ResolveSelected(snapshot.Selection, snapshot.Codes, snapshot.Responses)
	snapshot.Facets = controller.deriver.Project(snapshot.Selected)

	controller.publish(&snapshot, "selection")
	return snapshot.clone(), true
}

// SetEndpoint replaces endpoint; codes are recomputed when the protocol verdict changes.
func (controller *Controller) SetEndpoint(endpoint Node) *Snapshot {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	previous := controller.current.Load()
	streaming := controller.deriver.IsStreamingStyle(endpoint)
	if streaming != previous.Streaming {
		snapshot := controller.derive(previous.Responses, endpoint, streaming)
		controller.publish(snapshot, "endpoint")
		return snapshot.clone()
	}

	snapshot := *previous
	snapshot.Endpoint = endpoint
	controller.publish(&snapshot, "endpoint")
	return snapshot.clone()
}

// derive runs codes, selection and facets in order for one input pair.
//
// responses must already be owned by the controller.
func (controller *Controller) derive(responses []Node, endpoint Node, streaming bool) *Snapshot {
	snapshot := &Snapshot{
		Responses: responses,
		Endpoint:  endpoint,
		Streaming: streaming,
	}

	snapshot.Codes = controller.deriver.deriveCodes(responses, streaming)
	snapshot.Selection = OnCodesChanged(snapshot.Codes)
	snapshot.Selected = controller.deriver.ResolveSelected(snapshot.Selection, snapshot.Codes, responses)
	snapshot.Facets = controller.deriver.Project(snapshot.Selected)
	return snapshot
}

// publish swaps the current snapshot in one store.
func (controller *Controller) publish(snapshot *Snapshot, cause string) {
	controller.current.Store(snapshot)
	controller.logger.Debug("snapshot published",
		slog.String("cause", cause),
		slog.String("state", snapshot.State().String()),
		slog.Int("codes", len(snapshot.Codes)),
		slog.Bool("streaming", snapshot.Streaming),
	)
}
