// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var (
	expandedFixture = filepath.Join("..", "..", "testdata", "api.expanded.jsonld")
	compactFixture  = filepath.Join("..", "..", "testdata", "api.compact.jsonld")
)

func TestRunRenderWritesMarkdownToStdout(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", expandedFixture}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "# responses reference")
	assertContains(t, stdout.String(), "Status codes: `1000`, `200`, `404`")
	assertContains(t, stderr.String(), "operation has no documented responses")
}

func TestRunRenderTemplateTable(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", "--template", "table", compactFixture}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "| Attribute | Value |")
}

func TestRunRenderFromStdin(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(expandedFixture)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"render", "-e", "/events"}, bytes.NewReader(data), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "Source document: `(stdin)`")
	assertContains(t, stdout.String(), "#### Response `success`")
	assertNotContains(t, stdout.String(), "Status codes:")
}

func TestRunRenderWritesOutputFile(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "responses.md")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", "--title", "People", "-m", "get", expandedFixture, outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	if stdout.Len() != 0 {
		t.Fatalf("stdout should be empty when output path is provided, got: %s", stdout.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read out file: %v", err)
	}

	assertContains(t, string(content), "# People")
	assertNotContains(t, string(content), "### POST /people")
}

func TestRunRenderWithTemplateFile(t *testing.T) {
	t.Parallel()

	templatePath := filepath.Join(t.TempDir(), "custom.gotmpl")
	if err := os.WriteFile(templatePath, []byte("# custom\n{{ range .Endpoints }}- {{ .Label }}\n{{ end }}\n"), 0o600); err != nil {
		t.Fatalf("write custom template: %v", err)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", "--template-file", templatePath, expandedFixture}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "# custom\n- /people\n- /events\n")
}

func TestRunRenderListMarker(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", "--list-marker", "-", expandedFixture}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "- `X-Rate-Limit` (required: yes)")
}

func TestRunExportJSON(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"export", "-e", "/people", expandedFixture}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	var decoded struct {
		Operations []struct {
			Method string   `json:"method"`
			Codes  []string `json:"codes"`
		} `json:"operations"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &decoded); err != nil {
		t.Fatalf("decode export: %v\n%s", err, stdout.String())
	}

	if len(decoded.Operations) != 2 || decoded.Operations[0].Method != "get" || len(decoded.Operations[0].Codes) != 3 {
		t.Fatalf("unexpected export: %+v", decoded)
	}
}

func TestRunExportYAMLToFile(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "state.yaml")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"export", "--format", "yaml", compactFixture, outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read out file: %v", err)
	}

	assertContains(t, string(content), "serialization: compact")
	assertContains(t, string(content), "# PUBLISH /events")
}

func TestRunCodes(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"codes", compactFixture}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	want := "GET /people: 1000, 200, 404\nPOST /people: (none)\nPUBLISH /events [streaming]: success\n"
	if stdout.String() != want {
		t.Fatalf("codes output = %q, want %q", stdout.String(), want)
	}
}

func TestRunVerboseLogsDerivation(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"--verbose", "codes", "-e", "/events", expandedFixture}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stderr.String(), "level=DEBUG")
	assertContains(t, stderr.String(), "snapshot published")
}

func TestRunTemplateStdout(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"template"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "{{ .Title }}")
	assertContains(t, stdout.String(), "codeList .Codes")
}

func TestRunTemplateToOutputFile(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(t.TempDir(), "table.gotmpl")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"template", "--template", "table", outPath}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	content, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read out file: %v", err)
	}

	assertContains(t, string(content), "| Status code |")
}

func TestRunVersion(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"version"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr: %s", code, stderr.String())
	}

	assertContains(t, stdout.String(), "version:  dev")
}

func TestRunHelpExitsZero(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", "--help"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}

	assertContains(t, stdout.String(), "Usage:")
}

func TestRunReturnsErrorForMissingInputFile(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", filepath.Join(t.TempDir(), "missing.jsonld")}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	assertContains(t, stderr.String(), "read model file")
}

func TestRunReturnsErrorForEmptyStdin(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := runWithIO([]string{"codes"}, strings.NewReader("  \n"), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	assertContains(t, stderr.String(), "empty input")
}

func TestRunReturnsErrorForUnknownEndpoint(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"render", "-e", "/nowhere", expandedFixture}, &stdout, &stderr)
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}

	assertContains(t, stderr.String(), `endpoint not found "/nowhere"`)
}

func TestRunReturnsErrorForMissingCommand(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d, stderr: %s", code, stderr.String())
	}
}

func TestRunReturnsErrorForUnknownTemplate(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	code := run([]string{"template", "--template", "missing"}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("expected exit code 2, got %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stderr.String(), "Invalid value") {
		t.Fatalf("unexpected stderr: %s", stderr.String())
	}
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if !strings.Contains(haystack, needle) {
		t.Fatalf("missing substring %q in:\n%s", needle, haystack)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()

	if strings.Contains(haystack, needle) {
		t.Fatalf("unexpected substring %q in:\n%s", needle, haystack)
	}
}
