// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

import "strings"

// defaultStreamingMethods are method labels used by message based operations.
var defaultStreamingMethods = []string{"publish", "subscribe", "pubsub"}

// defaultStreamingMediaTypes are media type prefixes used by gRPC payloads.
var defaultStreamingMediaTypes = []string{"application/grpc"}

// OperationPredicate reports whether one operation node is streaming-style.
type OperationPredicate func(accessor Accessor, operation Node) bool

// ClassifierOptions configures streaming-style operation detection.
type ClassifierOptions struct {
	// StreamingMethods lists method labels of streaming-style operations.
	// Defaults to publish, subscribe and pubsub.
	StreamingMethods []string
	// StreamingMediaTypes lists payload media type prefixes of streaming-style
	// operations. Defaults to application/grpc.
	StreamingMediaTypes []string
	// Operation replaces the method and media type rules entirely.
	Operation OperationPredicate
}

// ProtocolClassifier decides whether an endpoint is streaming/RPC-style.
type ProtocolClassifier struct {
	accessor   Accessor
	methods    map[string]struct{}
	mediaTypes []string
	operation  OperationPredicate
}

// NewProtocolClassifier builds classifier with normalized options.
func NewProtocolClassifier(accessor Accessor, opt ClassifierOptions) ProtocolClassifier {
	methods := opt.StreamingMethods
	if len(methods) == 0 {
		methods = defaultStreamingMethods
	}

	mediaTypes := opt.StreamingMediaTypes
	if len(mediaTypes) == 0 {
		mediaTypes = defaultStreamingMediaTypes
	}

	classifier := ProtocolClassifier{
		accessor:  accessor,
		methods:   make(map[string]struct{}, len(methods)),
		operation: opt.Operation,
	}

	for _, method := range methods {
		method = normalizeMethod(method)
		if method == "" {
			continue
		}

		classifier.methods[method] = struct{}{}
	}

	for _, mediaType := range mediaTypes {
		mediaType = strings.ToLower(strings.TrimSpace(mediaType))
		if mediaType == "" {
			continue
		}

		classifier.mediaTypes = append(classifier.mediaTypes, mediaType)
	}

	return classifier
}

// IsStreamingStyle reports whether any operation of endpoint is streaming-style.
func (classifier ProtocolClassifier) IsStreamingStyle(endpoint Node) bool {
	if endpoint == nil {
		return false
	}

	operations, ok := classifier.accessor.Array(endpoint, classifier.accessor.Vocabulary().SupportedOperation)
	if !ok || len(operations) == 0 {
		return false
	}

	for _, operation := range operations {
		if classifier.IsStreamingOperation(operation) {
			return true
		}
	}

	return false
}

// IsStreamingOperation reports whether one operation node is streaming-style.
func (classifier ProtocolClassifier) IsStreamingOperation(operation Node) bool {
	if operation == nil {
		return false
	}

	if classifier.operation != nil {
		return classifier.operation(classifier.accessor, operation)
	}

	vocab := classifier.accessor.Vocabulary()
	if method, ok := classifier.accessor.String(operation, vocab.Method); ok {
		if _, streaming := classifier.methods[normalizeMethod(method)]; streaming {
			return true
		}
	}

	return classifier.hasStreamingPayload(operation)
}

// hasStreamingPayload checks expected and returned payload media types.
func (classifier ProtocolClassifier) hasStreamingPayload(operation Node) bool {
	if len(classifier.mediaTypes) == 0 {
		return false
	}

	vocab := classifier.accessor.Vocabulary()
	carriers := make([]Node, 0, 4)
	if requests, ok := classifier.accessor.Array(operation, vocab.Expects); ok {
		carriers = append(carriers, requests...)
	}

	if responses, ok := classifier.accessor.Array(operation, vocab.Returns); ok {
		carriers = append(carriers, responses...)
	}

	for _, carrier := range carriers {
		payloads, _ := classifier.accessor.Array(carrier, vocab.Payload)
		for _, payload := range payloads {
			mediaType, _ := classifier.accessor.String(payload, vocab.MediaType)
			if classifier.isStreamingMediaType(mediaType) {
				return true
			}
		}
	}

	return false
}

// isStreamingMediaType matches media type against configured prefixes.
func (classifier ProtocolClassifier) isStreamingMediaType(mediaType string) bool {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if mediaType == "" {
		return false
	}

	for _, prefix := range classifier.mediaTypes {
		if strings.HasPrefix(mediaType, prefix) {
			return true
		}
	}

	return false
}

// normalizeMethod normalizes operation method labels.
func normalizeMethod(method string) string {
	return strings.ToLower(strings.TrimSpace(method))
}
