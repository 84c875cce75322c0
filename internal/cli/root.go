// Package cli implements the sysctlint command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/uonr/sysctl-parser/internal/conf"
	"github.com/uonr/sysctl-parser/internal/render"
	"github.com/uonr/sysctl-parser/internal/schema"
	"github.com/uonr/sysctl-parser/internal/validator"
)

// Process exit codes, one per failure class.
const (
	ExitOK          = 0
	ExitUsage       = 1 // bad invocation or I/O failure
	ExitParseFault  = 2 // configuration syntax or duplicate-key fault
	ExitSchemaFault = 3 // schema could not be loaded or parsed
	ExitViolations  = 4 // validation produced one or more violations
)

// exitError carries a specific exit code out of a command run. The message
// has already been written to stderr by the time it is returned.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

type options struct {
	schemaPath  string
	strict      bool
	duplicates  string
	format      string
	nested      bool
	fingerprint bool
}

// NewRootCmd creates the sysctlint command.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "sysctlint [flags] [config-path]",
		Short: "Lint and transform sysctl-style configuration files",
		Long: `sysctlint parses sysctl-style configuration text (key = value lines,
# or ; full-line comments) into an ordered document and prints it to stdout.
With --schema it also validates the document against a schema of permitted
key patterns and value types, reporting every violation to stderr.

The configuration is read from config-path, or from stdin when the path is
absent or "-".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.schemaPath, "schema", "", "schema file to validate against (line format, or YAML by extension)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "treat keys without a matching schema rule as violations")
	cmd.Flags().StringVar(&opts.duplicates, "duplicates", "reject", "duplicate-key policy: reject or last-wins")
	cmd.Flags().StringVar(&opts.format, "format", "json", "output format: json, yaml or toml")
	cmd.Flags().BoolVar(&opts.nested, "nested", false, "render dotted keys as a nested tree instead of an ordered list")
	cmd.Flags().BoolVar(&opts.fingerprint, "fingerprint", false, "print the document's canonical content hash instead of the document")

	return cmd
}

func runLint(cmd *cobra.Command, args []string, opts *options) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return fail(cmd, ExitUsage, err)
	}
	policy, err := parseDuplicatePolicy(opts.duplicates)
	if err != nil {
		return fail(cmd, ExitUsage, err)
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return fail(cmd, ExitUsage, fmt.Errorf("reading input: %w", err))
	}

	doc, err := conf.Parse(text, conf.Options{Duplicates: policy})
	if err != nil {
		return fail(cmd, ExitParseFault, err)
	}

	if opts.schemaPath != "" {
		s, err := schema.LoadPath(opts.schemaPath)
		if err != nil {
			return fail(cmd, ExitSchemaFault, err)
		}
		result := validator.Validate(doc, s, validator.Options{Strict: opts.strict})
		if !result.Valid {
			for _, msg := range validator.FormatViolations(result) {
				fmt.Fprintln(cmd.ErrOrStderr(), msg)
			}
			return &exitError{
				code: ExitViolations,
				err:  fmt.Errorf("validation failed: %d violation(s)", len(result.Violations)),
			}
		}
	}

	if opts.fingerprint {
		fmt.Fprintln(cmd.OutOrStdout(), render.Fingerprint(doc))
		return nil
	}
	return render.Document(cmd.OutOrStdout(), doc, format, opts.nested)
}

// fail reports err on stderr and wraps it with the process exit code.
func fail(cmd *cobra.Command, code int, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err)
	return &exitError{code: code, err: err}
}

func parseDuplicatePolicy(name string) (conf.DuplicatePolicy, error) {
	switch name {
	case "reject":
		return conf.DuplicateReject, nil
	case "last-wins":
		return conf.DuplicateLastWins, nil
	}
	return 0, fmt.Errorf("unsupported duplicate policy %q (want reject or last-wins)", name)
}

// readInput reads the configuration text from the path argument, or from
// stdin when the argument is absent or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(content), nil
	}
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Run executes the command against explicit streams and returns the process
// exit code. Separated from main to enable testing.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		// Already reported to stderr.
		return ee.code
	}
	fmt.Fprintln(stderr, "Error:", err)
	return ExitUsage
}
