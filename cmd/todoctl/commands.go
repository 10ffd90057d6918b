package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"todo-tracker/internal/naturallanguage"
)

func rootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Todo tracker command line tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)

	cmd.AddCommand(parseCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	})

	return cmd
}

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

type parseOutput struct {
	Title    string  `json:"title"    yaml:"title"`
	DueDate  *string `json:"due_date" yaml:"due_date"`
	Priority *string `json:"priority" yaml:"priority"`
	Labels   *string `json:"labels"   yaml:"labels"`
}

func parseCmd() *cobra.Command {
	var (
		engine   string
		timezone string
		now      string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "parse <text...>",
		Short: "Extract title, due date, priority and labels from free text",
		Example: `  todoctl parse "Buy milk tomorrow at 5pm p:high #groceries"
  todoctl parse --engine when --now 2024-05-01T15:30:00Z call mom next friday`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputJSON && output != outputYAML {
				return fmt.Errorf("--output must be %s or %s", outputJSON, outputYAML)
			}

			resolver, err := naturallanguage.NewResolver(engine, timezone)
			if err != nil {
				return err
			}

			var opts []naturallanguage.Option
			if now != "" {
				ref, err := time.Parse(time.RFC3339, now)
				if err != nil {
					return fmt.Errorf("--now: %w", err)
				}
				opts = append(opts, naturallanguage.WithClock(func() time.Time { return ref }))
			}

			res, err := naturallanguage.New(resolver, opts...).Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), output, newParseOutput(res))
		},
	}

	cmd.Flags().StringVar(&engine, "engine", naturallanguage.EngineDatemath, "Date engine ("+strings.Join(naturallanguage.Engines(), ", ")+")")
	cmd.Flags().StringVar(&timezone, "tz", "UTC", "IANA timezone for relative dates")
	cmd.Flags().StringVar(&now, "now", "", "Reference time in RFC 3339 (default: current time)")
	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "Output format (json, yaml)")

	return cmd
}

func newParseOutput(res naturallanguage.Result) parseOutput {
	out := parseOutput{Title: res.Title, Labels: res.Labels}
	if res.DueDate != nil {
		d := res.DueDate.Format(time.RFC3339)
		out.DueDate = &d
	}
	if res.Priority != nil {
		p := res.Priority.String()
		out.Priority = &p
	}
	return out
}

func render(w io.Writer, format string, v any) error {
	if format == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
