// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

import (
	"path/filepath"
	"strconv"
	"testing"
)

// BenchmarkParseDocument measures JSON-LD decoding and accessor selection cost.
func BenchmarkParseDocument(b *testing.B) {
	for _, fixture := range fixtureFiles {
		b.Run(fixture, func(b *testing.B) {
			data := readTestdata(b, fixture)

			b.ReportAllocs()
			b.SetBytes(int64(len(data)))

			for i := 0; i < b.N; i++ {
				if _, err := ParseDocument(data); err != nil {
					b.Fatalf("ParseDocument: %v", err)
				}
			}
		})
	}
}

// BenchmarkRenderListTemplate measures full in-memory render flow for list template.
func BenchmarkRenderListTemplate(b *testing.B) {
	benchmarkRenderTemplate(b, "list")
}

// BenchmarkRenderTableTemplate measures full in-memory render flow for table template.
func BenchmarkRenderTableTemplate(b *testing.B) {
	benchmarkRenderTemplate(b, "table")
}

// BenchmarkRenderFileListTemplate measures read + render flow from file path.
func BenchmarkRenderFileListTemplate(b *testing.B) {
	path := filepath.Join("testdata", "api.expanded.jsonld")

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := RenderFile(path, Options{TemplateName: "list"}); err != nil {
			b.Fatalf("RenderFile: %v", err)
		}
	}
}

// BenchmarkControllerSetResponses measures one full derivation pass over many responses.
func BenchmarkControllerSetResponses(b *testing.B) {
	convention := testConventions()[0]
	responses := make([]Node, 0, 512)
	for index := 0; index < cap(responses); index++ {
		responses = append(responses, convention.response(strconv.Itoa(100+index)))
	}

	endpoint := convention.endpoint(convention.operation("get"), convention.operation("post"))
	controller := NewController(convention.deriver(), nil)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		controller.SetResponses(responses, endpoint)
	}
}

// benchmarkRenderTemplate runs common in-memory benchmark for selected template.
func benchmarkRenderTemplate(b *testing.B, templateName string) {
	data := readTestdata(b, "api.expanded.jsonld")
	options := Options{
		SourcePath:   "api.expanded.jsonld",
		TemplateName: templateName,
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	for i := 0; i < b.N; i++ {
		if _, err := Render(data, options); err != nil {
			b.Fatalf("Render: %v", err)
		}
	}
}
