// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

import "log/slog"

// Options configures markdown rendering and export of response documentation.
type Options struct {
	// Title is the document heading. Defaults to "responses reference".
	Title string
	// SourcePath is shown as source marker; empty hides the marker.
	SourcePath string
	// TemplateName selects built-in template ("list" or "table").
	TemplateName string
	// TemplateText overrides built-in template with custom template text.
	TemplateText string
	// WrapWidth wraps plain description paragraphs. Defaults to 80.
	WrapWidth int
	// ListMarker is the unordered list marker, "*" or "-".
	ListMarker string
	// Endpoint limits output to the endpoint with this path or name.
	Endpoint string
	// Method limits output to operations with this method label.
	Method string
	// Classifier configures streaming-style operation detection.
	Classifier ClassifierOptions
	// Logger receives warnings and debug traces; nil disables logging.
	Logger *slog.Logger
}

// logger returns configured logger or a discarding one.
func (opt Options) logger() *slog.Logger {
	if opt.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return opt.Logger
}
