// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/responsesdoc

// responsesdoc generates response documentation from AMF JSON-LD API models.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/responsesdoc"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/responsesdoc"
	_buildTime string
)

// cliOptions describes responsesdoc CLI flags and subcommands.
type cliOptions struct {
	Global globalFlags `group:"Global"`

	Version  versionCommand  `command:"version" description:"Print version information"`
	Template templateCommand `command:"template" description:"Print built-in markdown template"`
	Render   renderCommand   `command:"render" description:"Render response documentation as markdown"`
	Export   exportCommand   `command:"export" description:"Export derived response state as JSON or YAML"`
	Codes    codesCommand    `command:"codes" description:"List status codes of every operation"`
}

// globalFlags groups flags shared by every subcommand.
type globalFlags struct {
	ConfigPath string `short:"c" long:"config" env:"RESPONSESDOC_CONFIG" description:"Path to TOML config file"`
	Verbose    bool   `short:"v" long:"verbose" description:"Log derivation steps at debug level"`
}

// selectFlags groups endpoint and operation filters.
type selectFlags struct {
	Endpoint string `short:"e" long:"endpoint" description:"Endpoint path or name to document (all when omitted)"`
	Method   string `short:"m" long:"method" description:"Operation method label to document (all when omitted)"`
}

// markdownRenderFlags groups markdown rendering flags.
type markdownRenderFlags struct {
	TemplatePath string `short:"f" long:"template-file" env:"RESPONSESDOC_TEMPLATE_FILE" description:"Path to custom markdown template (.gotmpl)"`
	Title        string `short:"T" long:"title" description:"Markdown document title (default: responses reference)"`
	ListMarker   string `short:"l" long:"list-marker" description:"Unordered list marker for normalized descriptions" choice:"-" choice:"*"`
	WrapWidth    int    `short:"w" long:"wrap" description:"Wrap width for plain text descriptions (default: 80)"`
}

// templateSelectFlags groups built-in template selection flags.
type templateSelectFlags struct {
	TemplateName string `short:"t" long:"template" env:"RESPONSESDOC_TEMPLATE" description:"Built-in template style (default: list)" choice:"list" choice:"table"`
}

// ioArgs are the optional input and output positional paths.
type ioArgs struct {
	Input  string `positional-arg-name:"input" description:"Input JSON-LD model file path (optional; stdin when omitted)"`
	Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
}

// renderCommand converts an API model to markdown.
type renderCommand struct {
	runner *cliRunner
	Args   ioArgs `positional-args:"yes"`

	SelectFlags   selectFlags         `group:"Select"`
	TemplateFlags templateSelectFlags `group:"Template Select"`
	RenderFlags   markdownRenderFlags `group:"Markdown Render"`
}

// Execute runs render subcommand.
func (command *renderCommand) Execute(_ []string) error {
	return command.runner.runRender(command.SelectFlags, settings{
		Title:        command.RenderFlags.Title,
		TemplateName: command.TemplateFlags.TemplateName,
		TemplatePath: command.RenderFlags.TemplatePath,
		WrapWidth:    command.RenderFlags.WrapWidth,
		ListMarker:   command.RenderFlags.ListMarker,
	}, command.Args)
}

// exportCommand writes derived state in a machine-readable format.
type exportCommand struct {
	runner *cliRunner
	Args   ioArgs `positional-args:"yes"`

	SelectFlags selectFlags `group:"Select"`
	Format      string      `short:"F" long:"format" description:"Export format (default: json)" choice:"json" choice:"yaml"`
}

// Execute runs export subcommand.
func (command *exportCommand) Execute(_ []string) error {
	return command.runner.runExport(command.SelectFlags, settings{Format: command.Format}, command.Args)
}

// codesCommand prints derived status codes per operation.
type codesCommand struct {
	runner *cliRunner
	Args   struct {
		Input string `positional-arg-name:"input" description:"Input JSON-LD model file path (optional; stdin when omitted)"`
	} `positional-args:"yes"`

	SelectFlags selectFlags `group:"Select"`
}

// Execute runs codes subcommand.
func (command *codesCommand) Execute(_ []string) error {
	return command.runner.runCodes(command.SelectFlags, command.Args.Input)
}

// templateCommand exports built-in markdown template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateFlags templateSelectFlags `group:"Template Select"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateFlags.TemplateName, command.Args.Output)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	return command.runner.printVersionInfo()
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	global      *globalFlags
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "responsesdoc"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
		global:      &globalFlags{},
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// prepare loads config and merges it with flag values.
func (runner *cliRunner) prepare(flagValues settings) (settings, *slog.Logger, error) {
	cfg, err := loadConfig(runner.global.ConfigPath)
	if err != nil {
		return settings{}, nil, err
	}

	logger := newLogger(runner.stderr, runner.global.Verbose)
	if path := strings.TrimSpace(runner.global.ConfigPath); path != "" {
		logger.Debug("loaded config", slog.String("path", path))
	}

	return mergeSettings(flagValues, cfg), logger, nil
}

// libraryOptions converts merged settings to library options.
func libraryOptions(selection selectFlags, merged settings, logger *slog.Logger) responsesdoc.Options {
	return responsesdoc.Options{
		Title:        merged.Title,
		TemplateName: merged.TemplateName,
		WrapWidth:    merged.WrapWidth,
		ListMarker:   merged.ListMarker,
		Endpoint:     selection.Endpoint,
		Method:       selection.Method,
		Classifier:   merged.Classifier,
		Logger:       logger,
	}
}

// runRender renders markdown and writes result to stdout or file.
func (runner *cliRunner) runRender(selection selectFlags, flagValues settings, paths ioArgs) error {
	merged, logger, err := runner.prepare(flagValues)
	if err != nil {
		return err
	}

	data, sourcePath, err := runner.readDocumentInput(paths.Input)
	if err != nil {
		return fmt.Errorf("read model input: %w", err)
	}

	renderOptions := libraryOptions(selection, merged, logger)
	renderOptions.SourcePath = sourcePath

	if merged.TemplatePath != "" {
		customTemplate, err := os.ReadFile(merged.TemplatePath)
		if err != nil {
			return fmt.Errorf("read template file %q: %w", merged.TemplatePath, err)
		}

		renderOptions.TemplateText = string(customTemplate)
	}

	rendered, err := responsesdoc.Render(data, renderOptions)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	return runner.writeOutput("markdown", paths.Output, []byte(rendered))
}

// runExport encodes derived state and writes result to stdout or file.
func (runner *cliRunner) runExport(selection selectFlags, flagValues settings, paths ioArgs) error {
	merged, logger, err := runner.prepare(flagValues)
	if err != nil {
		return err
	}

	data, _, err := runner.readDocumentInput(paths.Input)
	if err != nil {
		return fmt.Errorf("read model input: %w", err)
	}

	out, err := responsesdoc.Export(data, libraryOptions(selection, merged, logger), responsesdoc.ExportFormat(merged.Format))
	if err != nil {
		return fmt.Errorf("export state: %w", err)
	}

	return runner.writeOutput("export", paths.Output, out)
}

// runCodes prints one line with derived codes per operation.
func (runner *cliRunner) runCodes(selection selectFlags, inputPath string) error {
	merged, logger, err := runner.prepare(settings{})
	if err != nil {
		return err
	}

	data, _, err := runner.readDocumentInput(inputPath)
	if err != nil {
		return fmt.Errorf("read model input: %w", err)
	}

	doc, err := responsesdoc.ParseDocument(data)
	if err != nil {
		return fmt.Errorf("parse model: %w", err)
	}

	state, err := responsesdoc.BuildExport(doc, libraryOptions(selection, merged, logger))
	if err != nil {
		return fmt.Errorf("derive codes: %w", err)
	}

	var out strings.Builder
	for _, operation := range state.Operations {
		codes := "(none)"
		if len(operation.Codes) > 0 {
			codes = strings.Join(operation.Codes, ", ")
		}

		label := strings.TrimSpace(strings.ToUpper(operation.Method) + " " + operation.Endpoint)
		if operation.Streaming {
			label += " [streaming]"
		}

		_, _ = fmt.Fprintf(&out, "%s: %s\n", label, codes)
	}

	if _, err := io.WriteString(runner.stdout, out.String()); err != nil {
		return fmt.Errorf("write codes to stdout: %w", err)
	}

	return nil
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	if strings.TrimSpace(templateName) == "" {
		templateName = "list"
	}

	tpl, err := responsesdoc.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput("template", outputPath, []byte(tpl))
}

// writeOutput writes payload to file path or stdout when path is empty.
func (runner *cliRunner) writeOutput(kind, outputPath string, payload []byte) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := runner.stdout.Write(payload); err != nil {
			return fmt.Errorf("write %s to stdout: %w", kind, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, payload, 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", kind, outputPath, err)
	}

	return nil
}

// readDocumentInput reads model from file path or stdin and returns source marker.
func (runner *cliRunner) readDocumentInput(path string) ([]byte, string, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read model file %q: %w", path, err)
		}

		return data, path, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read model from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, "", errors.New("read model from stdin: empty input")
	}

	return data, "(stdin)", nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Render.runner = runner
	options.Export.runner = runner
	options.Codes.runner = runner
	options.Template.runner = runner
	options.Version.runner = runner
	runner.global = &options.Global

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in markdown template text (`+"`list` or `table`"+`).
Use it as a starting point for a custom template file.

Examples:
> $ %s template > list.gotmpl
> $ %s template -t table templates/table.gotmpl
`, programName, programName)),
		"render": strings.TrimSpace(fmt.Sprintf(`
Render response documentation of API operations as markdown.
Reads the JSON-LD model from file argument or stdin; writes markdown to file argument or stdout.
Settings from --config apply unless the matching flag is given.

Examples:
> $ %s render api.jsonld > responses.md
> $ cat api.jsonld | %s render -t table -e /people -m get > people.md
`, programName, programName)),
		"export": strings.TrimSpace(fmt.Sprintf(`
Export derived codes and response facets of every operation.

Examples:
> $ %s export api.jsonld > state.json
> $ %s export -F yaml -e /people api.jsonld state.yaml
`, programName, programName)),
		"codes": strings.TrimSpace(fmt.Sprintf(`
Print sorted status codes per operation; streaming-style endpoints are tagged.

Examples:
> $ %s codes api.jsonld
> $ %s codes -e /people -m get api.jsonld
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

// printVersionInfo writes build metadata to stdout.
func (runner *cliRunner) printVersionInfo() error {
	_, err := fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)

	return err
}
