// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package responsesdoc

import (
	"strings"
	"unicode/utf8"
)

// descriptionFormatter rewraps markdown descriptions taken from the API model.
type descriptionFormatter struct {
	out        []string
	paragraph  []string
	listMarker string
	wrapWidth  int
}

// sanitizeText trims and squashes repeated whitespace in plain text fields.
func sanitizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// normalizeWrapWidth validates wrap width and falls back to default.
func normalizeWrapWidth(value int) int {
	if value <= 0 {
		return defaultWrapWidth
	}

	return value
}

// normalizeListMarker validates list marker and falls back to default.
func normalizeListMarker(value string) string {
	switch strings.TrimSpace(value) {
	case "-":
		return "-"
	case "*":
		return "*"
	default:
		return defaultListMarker
	}
}

// formatDescriptionMarkdown wraps plain paragraphs and keeps markdown blocks intact.
func formatDescriptionMarkdown(text string, wrapWidth int, listMarker string) string {
	text = strings.TrimSpace(normalizeLineEndings(text))
	if text == "" {
		return ""
	}

	formatter := descriptionFormatter{
		listMarker: normalizeListMarker(listMarker),
		wrapWidth:  wrapWidth,
	}

	inFence := false
	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimRight(rawLine, " \t")
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "```"):
			formatter.flush()
			formatter.out = append(formatter.out, line)
			inFence = !inFence
		case inFence:
			formatter.out = append(formatter.out, line)
		case trimmed == "":
			formatter.flush()
			formatter.blank()
		case isStructuredLine(line):
			formatter.flush()
			formatter.out = append(formatter.out, formatter.normalizeListLine(line))
		default:
			formatter.paragraph = append(formatter.paragraph, trimmed)
		}
	}

	formatter.flush()
	return strings.Join(formatter.out, "\n")
}

// flush wraps pending paragraph lines into output.
func (formatter *descriptionFormatter) flush() {
	if len(formatter.paragraph) == 0 {
		return
	}

	joined := strings.Join(formatter.paragraph, " ")
	formatter.out = append(formatter.out, wrapWords(joined, formatter.wrapWidth)...)
	formatter.paragraph = formatter.paragraph[:0]
}

// blank appends one separator line unless output already ends with it.
func (formatter *descriptionFormatter) blank() {
	if len(formatter.out) == 0 || formatter.out[len(formatter.out)-1] == "" {
		return
	}

	formatter.out = append(formatter.out, "")
}

// normalizeListLine rewrites unordered list markers to the configured marker.
func (formatter *descriptionFormatter) normalizeListLine(line string) string {
	if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		return line
	}

	trimmed := strings.TrimLeft(line, " ")
	indent := len(line) - len(trimmed)
	if len(trimmed) < 2 || trimmed[1] != ' ' {
		return line
	}

	switch trimmed[0] {
	case '-', '*', '+':
		return strings.Repeat("  ", indent/2) + formatter.listMarker + " " + strings.TrimSpace(trimmed[1:])
	default:
		return line
	}
}

// isStructuredLine reports whether line must bypass paragraph wrapping.
func isStructuredLine(line string) bool {
	if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		return true
	}

	trimmed := strings.TrimSpace(line)
	for _, prefix := range []string{"#", ">", "- ", "* ", "+ ", "|", "---", "***", "___"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	digits := 0
	for digits < len(trimmed) && trimmed[digits] >= '0' && trimmed[digits] <= '9' {
		digits++
	}

	return digits > 0 && digits+1 < len(trimmed) &&
		(trimmed[digits] == '.' || trimmed[digits] == ')') && trimmed[digits+1] == ' '
}

// wrapWords wraps one plain paragraph to max rune width.
func wrapWords(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, 2)
	current := words[0]
	currentLen := utf8.RuneCountInString(current)
	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if width <= 0 || currentLen+1+wordLen <= width {
			current += " " + word
			currentLen += 1 + wordLen
			continue
		}

		lines = append(lines, current)
		current = word
		currentLen = wordLen
	}

	return append(lines, current)
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// normalizeMarkdownOutput collapses repeated blank lines outside fenced blocks.
func normalizeMarkdownOutput(text string) string {
	lines := strings.Split(normalizeLineEndings(text), "\n")
	out := make([]string, 0, len(lines))

	inFence := false
	previousBlank := false
	for _, rawLine := range lines {
		line := strings.TrimRight(rawLine, " \t")
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
		}

		if !inFence && trimmed == "" {
			if !previousBlank && len(out) > 0 {
				out = append(out, "")
			}

			previousBlank = true
			continue
		}

		previousBlank = false
		out = append(out, line)
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}

// escapeInline escapes backticks in inline code markdown segments.
func escapeInline(value string) string {
	return strings.ReplaceAll(value, "`", "\\`")
}

// escapeTableCell escapes pipes and newlines inside markdown table cells.
func escapeTableCell(value string) string {
	value = strings.ReplaceAll(value, "|", "\\|")
	return strings.Join(strings.Fields(value), " ")
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	return strings.TrimRight(value, "\n") + "\n"
}

// yesNo renders bool as "yes" or "no".
func yesNo(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}

// orNone renders empty values as explicit (none) marker.
func orNone(value string) string {
	if strings.TrimSpace(value) == "" {
		return "(none)"
	}

	return value
}
