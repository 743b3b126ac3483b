package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var consistencyCmd = &cobra.Command{
	Use:   "consistency",
	Short: "Write the documentation consistency report",
	Long: `Compares capitalised terms, quoted phrases and requirement IDs across
the planning documents and reports what each document is missing.`,
	Args: cobra.NoArgs,
	RunE: runConsistency,
}

var traceCmd = &cobra.Command{
	Use:     "trace",
	Aliases: []string{"traceability"},
	Short:   "Write the requirements traceability matrix",
	Long: `Classifies every requirement ID as fully, partially or not covered in
each planning document and lists the sections and headings referencing it.`,
	Args: cobra.NoArgs,
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(consistencyCmd)
	rootCmd.AddCommand(traceCmd)
}

func runConsistency(cmd *cobra.Command, _ []string) error {
	svc, err := reportService(cmd)
	if err != nil {
		return err
	}

	result, err := svc.RunConsistency(cmd.Context())
	if err != nil {
		return fmt.Errorf("consistency report failed: %w", err)
	}

	printer(cmd).PrintResult(result)
	return nil
}

func runTrace(cmd *cobra.Command, _ []string) error {
	svc, err := reportService(cmd)
	if err != nil {
		return err
	}

	result, err := svc.RunTraceability(cmd.Context())
	if err != nil {
		return fmt.Errorf("traceability matrix failed: %w", err)
	}

	printer(cmd).PrintResult(result)
	return nil
}
