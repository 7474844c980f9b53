package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/nulldecimal/internal/config"
	"github.com/rpgo/nulldecimal/internal/output"
	nulldec "github.com/rpgo/nulldecimal/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTotalCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "total FILE",
		Short: "Total one field across the records of a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			field := a.v.GetString("field")
			if field == "" {
				return fmt.Errorf("--field is required")
			}
			format := a.v.GetString("format")
			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(output.AvailableFormatterNames(), ", "))
			}

			parser := config.NewInputParser(a.log.Sugar())
			records, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("loaded records",
				zap.String("op", "total"),
				zap.String("file", args[0]),
				zap.Int("records", len(records)),
			)

			summary := output.NewSummary(field, nulldec.ExtractField(records, field))
			data, err := f.Format(summary)
			if err != nil {
				return fmt.Errorf("failed to format %s output: %w", f.Name(), err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().String("field", "", "record key to total")
	cmd.Flags().String("format", "console", "output format (console, csv, json)")
	_ = a.v.BindPFlag("field", cmd.Flags().Lookup("field"))
	_ = a.v.BindPFlag("format", cmd.Flags().Lookup("format"))
	return cmd
}

func newSumCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sum [VALUE...]",
		Short: "Sum decimal values; empty arguments count as absent",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(a, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), nulldec.TotalOf(values).String())
			return nil
		},
	}
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two decimal values ignoring scale",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(a, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), compareResult(values[0], values[1]))
			return nil
		},
	}
}

func parseArgs(a *app, args []string) ([]decimal.NullDecimal, error) {
	values := make([]decimal.NullDecimal, 0, len(args))
	for _, s := range args {
		v, err := nulldec.ParseOrNull(s, a.log.Sugar())
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// compareResult names the ordering of x and y. An absent side is unordered
// unless both are absent.
func compareResult(x, y decimal.NullDecimal) string {
	switch {
	case nulldec.Equal(x, y):
		return "equal"
	case nulldec.LessThan(x, y):
		return "less"
	case nulldec.GreaterThan(x, y):
		return "greater"
	}
	return "unordered"
}
