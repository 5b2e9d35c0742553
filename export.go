// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ExportFormatJSON encodes derived state as JSON.
	ExportFormatJSON ExportFormat = "json"
	// ExportFormatYAML encodes derived state as YAML.
	ExportFormatYAML ExportFormat = "yaml"
)

// ExportFormat configures output format of derived state export.
type ExportFormat string

// ExportDocument is the machine-readable derived state of selected operations.
type ExportDocument struct {
	Serialization string            `json:"serialization" yaml:"serialization"`
	Operations    []ExportOperation `json:"operations" yaml:"operations"`
}

// ExportOperation is the derived state of one operation.
type ExportOperation struct {
	Endpoint         string           `json:"endpoint" yaml:"endpoint"`
	Method           string           `json:"method,omitempty" yaml:"method,omitempty"`
	Name             string           `json:"name,omitempty" yaml:"name,omitempty"`
	Streaming        bool             `json:"streaming" yaml:"streaming"`
	ShowCodeSelector bool             `json:"showCodeSelector" yaml:"showCodeSelector"`
	Codes            []string         `json:"codes" yaml:"codes"`
	Responses        []ExportResponse `json:"responses" yaml:"responses"`
}

// ExportResponse is the facet summary of one code.
type ExportResponse struct {
	Code            string       `json:"code" yaml:"code"`
	Description     string       `json:"description,omitempty" yaml:"description,omitempty"`
	HasAnnotations  bool         `json:"hasAnnotations" yaml:"hasAnnotations"`
	Headers         []string     `json:"headers,omitempty" yaml:"headers,omitempty"`
	Payload         []string     `json:"payload,omitempty" yaml:"payload,omitempty"`
	Links           []ExportLink `json:"links,omitempty" yaml:"links,omitempty"`
	NoDocumentation bool         `json:"noDocumentation" yaml:"noDocumentation"`
}

// ExportLink is one follow-up link with its parameter mappings.
type ExportLink struct {
	Name        string            `json:"name" yaml:"name"`
	OperationID string            `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Mappings    map[string]string `json:"mappings,omitempty" yaml:"mappings,omitempty"`
}

// Export derives state of selected operations and encodes it in format.
func Export(data []byte, opt Options, format ExportFormat) ([]byte, error) {
	format, err := normalizeExportFormat(format)
	if err != nil {
		return nil, err
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return nil, err
	}

	state, err := BuildExport(doc, opt)
	if err != nil {
		return nil, err
	}

	switch format {
	case ExportFormatYAML:
		out, err := marshalExportYAML(state)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeExportYAML, err)
		}

		return out, nil
	default:
		out, err := marshalExportJSON(state)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeExportJSON, err)
		}

		return out, nil
	}
}

// BuildExport derives the export model for a parsed document.
func BuildExport(doc *Document, opt Options) (ExportDocument, error) {
	targets, err := collectOperations(doc, opt)
	if err != nil {
		return ExportDocument{}, err
	}

	out := ExportDocument{
		Serialization: "expanded",
		Operations:    make([]ExportOperation, 0, len(targets)),
	}

	if doc.Compact() {
		out.Serialization = "compact"
	}

	deriver := NewDeriver(doc.Accessor(), opt.Classifier)
	logger := opt.logger()
	protocols := newProtocolCache(deriver)
	for _, target := range targets {
		state := deriveOperation(doc, protocols, target, logger)
		operation := ExportOperation{
			Endpoint:         target.EndpointLabel,
			Method:           target.Method,
			Name:             target.Name,
			Streaming:        state.Streaming,
			ShowCodeSelector: state.ShowCodeSelector,
			Codes:            append([]string{}, state.Codes...),
			Responses:        make([]ExportResponse, 0, len(state.Sections)),
		}

		for _, section := range state.Sections {
			operation.Responses = append(operation.Responses, exportResponse(deriver, section))
		}

		out.Operations = append(out.Operations, operation)
	}

	return out, nil
}

// exportResponse summarizes facets of one response section.
func exportResponse(deriver *Deriver, section responseSection) ExportResponse {
	facets := section.Snapshot.Facets
	vocab := deriver.accessor.Vocabulary()
	response := ExportResponse{
		Code:            section.Code,
		HasAnnotations:  facets.HasAnnotations,
		NoDocumentation: facets.NoDocumentation(),
	}

	if facets.HasDescription() {
		response.Description = facets.Description
	}

	for _, header := range facets.Headers {
		name, _ := deriver.accessor.String(header, vocab.Name)
		response.Headers = append(response.Headers, name)
	}

	for _, payload := range facets.Payload {
		mediaType, _ := deriver.accessor.String(payload, vocab.MediaType)
		response.Payload = append(response.Payload, mediaType)
	}

	for _, link := range deriver.ProjectLinks(facets.Links) {
		exported := ExportLink{
			Name:        link.Name,
			OperationID: link.OperationID,
		}

		if len(link.Mappings) > 0 {
			exported.Mappings = make(map[string]string, len(link.Mappings))
			for _, mapping := range link.Mappings {
				exported.Mappings[mapping.Variable] = mapping.Expression
			}
		}

		response.Links = append(response.Links, exported)
	}

	return response
}

// normalizeExportFormat validates and normalizes caller format value.
func normalizeExportFormat(format ExportFormat) (ExportFormat, error) {
	normalized := ExportFormat(strings.ToLower(strings.TrimSpace(string(format))))
	switch normalized {
	case "":
		return ExportFormatJSON, nil
	case ExportFormatJSON, ExportFormatYAML:
		return normalized, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownExportFormat, format)
	}
}

// marshalExportJSON serializes export model as pretty JSON.
func marshalExportJSON(value ExportDocument) ([]byte, error) {
	var out bytes.Buffer
	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// marshalExportYAML serializes export model as YAML with operation heading comments.
func marshalExportYAML(value ExportDocument) ([]byte, error) {
	var root yaml.Node
	if err := root.Encode(value); err != nil {
		return nil, err
	}

	annotateExportOperations(&root, value.Operations)

	document := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{&root},
	}

	var out bytes.Buffer
	encoder := yaml.NewEncoder(&out)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// annotateExportOperations puts "METHOD endpoint" head comments on operation items.
func annotateExportOperations(root *yaml.Node, operations []ExportOperation) {
	if root.Kind != yaml.MappingNode {
		return
	}

	for index := 0; index+1 < len(root.Content); index += 2 {
		if root.Content[index].Value != "operations" {
			continue
		}

		items := root.Content[index+1]
		if items.Kind != yaml.SequenceNode {
			return
		}

		for position, item := range items.Content {
			if position >= len(operations) {
				return
			}

			operation := operations[position]
			item.HeadComment = strings.TrimSpace(strings.ToUpper(operation.Method) + " " + operation.Endpoint)
		}

		return
	}
}
