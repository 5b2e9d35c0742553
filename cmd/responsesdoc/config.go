// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"

	"github.com/woozymasta/responsesdoc"
)

// validate is the shared config validator instance.
var validate = validator.New()

// fileConfig is the optional TOML configuration loaded with --config.
type fileConfig struct {
	Title        string          `toml:"title"`
	Template     string          `toml:"template" validate:"omitempty,oneof=list table"`
	TemplateFile string          `toml:"template_file"`
	WrapWidth    int             `toml:"wrap" validate:"min=0,max=1000"`
	ListMarker   string          `toml:"list_marker" validate:"omitempty,oneof=- *"`
	Format       string          `toml:"format" validate:"omitempty,oneof=json yaml"`
	Streaming    streamingConfig `toml:"streaming"`
}

// streamingConfig overrides streaming-style operation detection rules.
type streamingConfig struct {
	Methods    []string `toml:"methods" validate:"omitempty,dive,required"`
	MediaTypes []string `toml:"media_types" validate:"omitempty,dive,required"`
}

// settings is the merged result of flags, config file and defaults.
type settings struct {
	Title        string
	TemplateName string
	TemplatePath string
	WrapWidth    int
	ListMarker   string
	Format       string
	Classifier   responsesdoc.ClassifierOptions
}

// loadConfig reads and validates TOML config; empty path yields zero config.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("decode config %q: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fileConfig{}, fmt.Errorf("config %q: unknown key %q", path, undecoded[0].String())
	}

	if err := validate.Struct(cfg); err != nil {
		return fileConfig{}, fmt.Errorf("config %q: %w", path, formatValidationError(err))
	}

	return cfg, nil
}

// formatValidationError reports the first failed config field.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	first := validationErrs[0]
	switch first.Tag() {
	case "oneof":
		return fmt.Errorf("%s: must be one of %q", first.Namespace(), first.Param())
	case "min":
		return fmt.Errorf("%s: must be at least %s", first.Namespace(), first.Param())
	case "max":
		return fmt.Errorf("%s: must not exceed %s", first.Namespace(), first.Param())
	case "required":
		return fmt.Errorf("%s: empty value", first.Namespace())
	default:
		return fmt.Errorf("%s: validation failed (%s)", first.Namespace(), first.Tag())
	}
}

// mergeSettings applies flag values over config values; library defaults fill the rest.
func mergeSettings(flagValues settings, cfg fileConfig) settings {
	merged := settings{
		Title:        firstNonEmpty(flagValues.Title, cfg.Title),
		TemplateName: firstNonEmpty(flagValues.TemplateName, cfg.Template),
		TemplatePath: firstNonEmpty(flagValues.TemplatePath, cfg.TemplateFile),
		WrapWidth:    flagValues.WrapWidth,
		ListMarker:   firstNonEmpty(flagValues.ListMarker, cfg.ListMarker),
		Format:       firstNonEmpty(flagValues.Format, cfg.Format),
		Classifier: responsesdoc.ClassifierOptions{
			StreamingMethods:    cfg.Streaming.Methods,
			StreamingMediaTypes: cfg.Streaming.MediaTypes,
		},
	}

	if merged.WrapWidth <= 0 {
		merged.WrapWidth = cfg.WrapWidth
	}

	return merged
}

// firstNonEmpty returns the first value that is not blank.
func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}

	return ""
}

// newLogger builds text logger on stderr; verbose enables debug traces.
func newLogger(output io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level}))
}
