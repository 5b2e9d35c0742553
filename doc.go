// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

/*
Package responsesdoc derives and renders response documentation of API
operations from AMF JSON-LD graphs.

The core is a pure derivation pipeline over decoded JSON-LD nodes. A Deriver
reads the graph through an Accessor (full IRI keys for expanded documents,
context aliases for compact ones), classifies the endpoint protocol style,
builds the sorted list of status codes, resolves the selected response and
projects its documentation facets. A Controller keeps that derived state
consistent under input changes and publishes immutable snapshots.

Derive state for raw response nodes:

	deriver := responsesdoc.NewDeriver(
		responsesdoc.NewExpandedAccessor(responsesdoc.DefaultVocabulary()),
		responsesdoc.ClassifierOptions{},
	)

	controller := responsesdoc.NewController(deriver, nil)
	snapshot := controller.SetResponses(responses, endpoint)
	fmt.Println(snapshot.Codes, snapshot.Facets.NoDocumentation())

	snapshot, ok := controller.SetSelectionIndex(1)
	if ok {
		code, _ := snapshot.SelectedCode()
		fmt.Println(code)
	}

Render markdown from an API model file:

	md, err := responsesdoc.RenderFile("api.jsonld", responsesdoc.Options{
		TemplateName: "table",
		Endpoint:     "/people",
		Method:       "get",
	})
	if err != nil {
		return err
	}

	fmt.Println(md)

Export derived state as YAML:

	out, err := responsesdoc.Export(modelBytes, responsesdoc.Options{}, responsesdoc.ExportFormatYAML)
	if err != nil {
		return err
	}

	fmt.Println(string(out))
*/
package responsesdoc
