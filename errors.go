// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

import "errors"

var (
	// ErrReadDocumentFile is returned when API description file loading fails.
	ErrReadDocumentFile = errors.New("read document file")
	// ErrDecodeDocument is returned when API description JSON decoding fails.
	ErrDecodeDocument = errors.New("decode document")
	// ErrDocumentRootType is returned when document root is not an object or array of objects.
	ErrDocumentRootType = errors.New("document root must be object or array of objects")
	// ErrEndpointNotFound is returned when requested endpoint is not present in document.
	ErrEndpointNotFound = errors.New("endpoint not found")
	// ErrOperationNotFound is returned when requested operation method is not present on endpoint.
	ErrOperationNotFound = errors.New("operation not found")
	// ErrNothingToRender is returned when document has no operations to render.
	ErrNothingToRender = errors.New("document has no operations to render")
	// ErrExecuteMarkdownTemplate is returned when markdown template execution fails.
	ErrExecuteMarkdownTemplate = errors.New("execute markdown template")
	// ErrUnknownBuiltinTemplate is returned when requested built-in template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrReadBuiltinTemplate is returned when built-in template file loading fails.
	ErrReadBuiltinTemplate = errors.New("read built-in template")
	// ErrParseBuiltinTemplate is returned when built-in template parsing fails.
	ErrParseBuiltinTemplate = errors.New("parse built-in template")
	// ErrParseCustomTemplate is returned when caller template parsing fails.
	ErrParseCustomTemplate = errors.New("parse custom template")
	// ErrUnknownExportFormat is returned when export format is not supported.
	ErrUnknownExportFormat = errors.New("unknown export format")
	// ErrEncodeExportJSON is returned when export JSON encoding fails.
	ErrEncodeExportJSON = errors.New("encode export json")
	// ErrEncodeExportYAML is returned when export YAML encoding fails.
	ErrEncodeExportYAML = errors.New("encode export yaml")
)
