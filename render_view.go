// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

import "strings"

// renderView is the root view model passed to markdown templates.
type renderView struct {
	Title          string
	SourceDocument string
	Serialization  string
	ListMarker     string
	Endpoints      []endpointView
}

// endpointView groups rendered operations of one endpoint.
type endpointView struct {
	Label      string
	Streaming  bool
	Operations []operationView
}

// operationView represents one operation section with its responses.
type operationView struct {
	Heading          string
	Method           string
	Name             string
	Codes            []string
	ShowCodeSelector bool
	Responses        []responseView
}

// responseView represents one status code section.
type responseView struct {
	Code            string
	Description     string
	Annotations     []attributeView
	Headers         []headerView
	Payloads        []payloadView
	Links           []LinkView
	NoDocumentation bool
}

// headerView is one response header row.
type headerView struct {
	Name        string
	Required    string
	Description string
}

// payloadView is one response body variant.
type payloadView struct {
	MediaType string
	Schema    string
}

// attributeView is a single rendered name/value metadata item.
type attributeView struct {
	Name  string
	Value string
}

// buildRenderView prepares data for markdown template rendering.
func buildRenderView(doc *Document, opt Options) (renderView, error) {
	targets, err := collectOperations(doc, opt)
	if err != nil {
		return renderView{}, err
	}

	title := sanitizeText(opt.Title)
	if title == "" {
		title = defaultTitle
	}

	view := renderView{
		Title:          title,
		SourceDocument: escapeInline(strings.TrimSpace(opt.SourcePath)),
		Serialization:  "expanded",
		ListMarker:     normalizeListMarker(opt.ListMarker),
	}

	if doc.Compact() {
		view.Serialization = "compact"
	}

	wrapWidth := normalizeWrapWidth(opt.WrapWidth)
	deriver := NewDeriver(doc.Accessor(), opt.Classifier)
	logger := opt.logger()
	protocols := newProtocolCache(deriver)

	for _, target := range targets {
		state := deriveOperation(doc, protocols, target, logger)
		operation := operationView{
			Heading:          operationHeading(target),
			Method:           target.Method,
			Name:             sanitizeText(target.Name),
			Codes:            state.Codes,
			ShowCodeSelector: state.ShowCodeSelector,
			Responses:        make([]responseView, 0, len(state.Sections)),
		}

		for _, section := range state.Sections {
			operation.Responses = append(operation.Responses,
				buildResponseView(deriver, section, wrapWidth, view.ListMarker))
		}

		view.Endpoints = appendOperation(view.Endpoints, target.EndpointLabel, state.Streaming, operation)
	}

	return view, nil
}

// appendOperation adds operation to the trailing endpoint group or opens a new one.
func appendOperation(endpoints []endpointView, label string, streaming bool, operation operationView) []endpointView {
	if last := len(endpoints) - 1; last >= 0 && endpoints[last].Label == label {
		endpoints[last].Operations = append(endpoints[last].Operations, operation)
		endpoints[last].Streaming = endpoints[last].Streaming || streaming
		return endpoints
	}

	return append(endpoints, endpointView{
		Label:      label,
		Streaming:  streaming,
		Operations: []operationView{operation},
	})
}

// operationHeading formats "METHOD label" heading for one operation.
func operationHeading(target operationTarget) string {
	method := strings.ToUpper(target.Method)
	if method == "" {
		method = "OPERATION"
	}

	return strings.TrimSpace(method + " " + target.EndpointLabel)
}

// buildResponseView projects one selected response snapshot into a view.
func buildResponseView(deriver *Deriver, section responseSection, wrapWidth int, listMarker string) responseView {
	facets := section.Snapshot.Facets
	response := responseView{
		Code:            section.Code,
		Annotations:     annotationAttributes(deriver.accessor, section.Snapshot.Selected),
		Links:           deriver.ProjectLinks(facets.Links),
		NoDocumentation: facets.NoDocumentation(),
	}

	if facets.HasDescription() {
		response.Description = formatDescriptionMarkdown(facets.Description, wrapWidth, listMarker)
	}

	vocab := deriver.accessor.Vocabulary()
	for _, header := range facets.Headers {
		name, _ := deriver.accessor.String(header, vocab.Name)
		description, _ := deriver.accessor.String(header, vocab.Description)
		required := "no"
		if value, ok := deriver.accessor.Scalar(header, vocab.Required); ok {
			if flag, isBool := value.(bool); isBool {
				required = yesNo(flag)
			}
		}

		response.Headers = append(response.Headers, headerView{
			Name:        orNone(name),
			Required:    required,
			Description: sanitizeText(description),
		})
	}

	for _, payload := range facets.Payload {
		mediaType, _ := deriver.accessor.String(payload, vocab.MediaType)
		response.Payloads = append(response.Payloads, payloadView{
			MediaType: orNone(mediaType),
			Schema:    payloadSchemaName(deriver.accessor, payload),
		})
	}

	return response
}

// payloadSchemaName returns shape name of payload schema.
func payloadSchemaName(accessor Accessor, payload Node) string {
	vocab := accessor.Vocabulary()
	schemas, _ := accessor.Array(payload, vocab.Schema)
	if len(schemas) == 0 {
		return ""
	}

	if name, _ := accessor.String(schemas[0], vocab.ShapeName); name != "" {
		return name
	}

	name, _ := accessor.String(schemas[0], vocab.Name)
	return name
}

// annotationAttributes lists custom domain property values attached to node.
//
// Each entry references the domain property by "@id"; the value lives on the
// node under that same IRI.
func annotationAttributes(accessor Accessor, node Node) []attributeView {
	if node == nil {
		return nil
	}

	vocab := accessor.Vocabulary()
	raw := node[accessor.Key(vocab.CustomDomainProperties)]
	refs := annotationRefs(raw)
	if len(refs) == 0 {
		return nil
	}

	out := make([]attributeView, 0, len(refs))
	for _, ref := range refs {
		name := ref
		if index := strings.LastIndexAny(ref, "#/"); index >= 0 && index+1 < len(ref) {
			name = ref[index+1:]
		}

		value := ""
		values, _ := arrayValue(node, ref)
		if len(values) > 0 {
			if extension, _ := accessor.String(values[0], vocab.ExtensionName); extension != "" {
				name = extension
			}

			value, _ = accessor.String(values[0], vocab.DataValue)
		}

		out = append(out, attributeView{
			Name:  sanitizeText(name),
			Value: sanitizeText(value),
		})
	}

	return out
}

// annotationRefs extracts referenced IRIs from custom domain properties value.
func annotationRefs(raw any) []string {
	var items []any
	switch typed := raw.(type) {
	case []any:
		items = typed
	case nil:
		return nil
	default:
		items = []any{typed}
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		var ref string
		switch typed := item.(type) {
		case string:
			ref = typed
		case map[string]any:
			ref = asString(typed["@id"])
		}

		if strings.TrimSpace(ref) != "" {
			out = append(out, ref)
		}
	}

	return out
}
