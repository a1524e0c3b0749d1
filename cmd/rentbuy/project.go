package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cloud-ru/rentbuy-go/internal/calculations"
	"github.com/cloud-ru/rentbuy-go/internal/report"
)

func newProjectCmd(a *app) *cobra.Command {
	var scenarioPath, pdfPath string

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Compute a rent vs buy projection for a scenario file",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadScenario(scenarioPath)
			if err != nil {
				return err
			}

			result, err := calculations.Compute(s.Inputs)
			if err != nil {
				return err
			}

			if err := report.WriteText(cmd.OutOrStdout(), s.Name, s.Inputs, result); err != nil {
				return err
			}

			if pdfPath == "" {
				return nil
			}
			data, err := report.GeneratePDF(s.Name, s.Inputs, result)
			if err != nil {
				return err
			}
			if err := os.WriteFile(pdfPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write pdf: %w", err)
			}
			a.logger.Info("pdf report written", zap.String("path", pdfPath), zap.Int("bytes", len(data)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "YAML scenario file (default: built-in scenario)")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "also write a PDF report to this path")
	return cmd
}

func newBreakEvenCmd(a *app) *cobra.Command {
	var scenarioPath string

	cmd := &cobra.Command{
		Use:   "break-even",
		Short: "Find the first year in which buying is no more expensive than renting",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.loadScenario(scenarioPath)
			if err != nil {
				return err
			}
			if !calculations.Ready(s.Inputs) {
				return calculations.ErrNoResult
			}

			years, reached := calculations.BreakEven(s.Inputs)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: break-even in %s\n", s.Name, report.BreakEvenLabel(years, reached))
			return err
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "YAML scenario file (default: built-in scenario)")
	return cmd
}
