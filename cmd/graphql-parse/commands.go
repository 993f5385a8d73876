package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	gqlerrors "github.com/graph-gophers/graphql-parser/errors"
	"github.com/graph-gophers/graphql-parser/printer"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "parse [file...]",
		Short:   "parse prints the syntax tree of each document",
		Example: "graphql-parse parse query.graphql",
		RunE: func(cmd *cobra.Command, args []string) error {
			ins, err := inputs(cmd, args)
			if err != nil {
				return err
			}
			for _, in := range ins {
				doc, err := a.parse(cmd.Context(), in)
				if err != nil {
					return fmt.Errorf("%s: %w", in.name, err)
				}
				if len(ins) > 1 {
					fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", in.name)
				}
				dumper.Fdump(cmd.OutOrStdout(), doc)
			}
			return nil
		},
	}
}

func newFmtCmd(a *app) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:     "fmt [file...]",
		Short:   "fmt prints each document in canonical form",
		Example: "graphql-parse fmt -w schema.graphql",
		RunE: func(cmd *cobra.Command, args []string) error {
			ins, err := inputs(cmd, args)
			if err != nil {
				return err
			}
			for _, in := range ins {
				doc, err := a.parse(cmd.Context(), in)
				if err != nil {
					return fmt.Errorf("%s: %w", in.name, err)
				}
				out := printer.Print(doc)
				if !write || len(args) == 0 {
					fmt.Fprint(cmd.OutOrStdout(), out)
					continue
				}
				if out == in.src {
					continue
				}
				if err := os.WriteFile(in.name, []byte(out), 0o644); err != nil {
					return err
				}
				a.logger.Info("formatted", zap.String("file", in.name))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result to the source files instead of stdout")
	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "check [file...]",
		Short:   "check reports the syntax errors of each document",
		Example: "graphql-parse check schema.graphql queries/*.graphql",
		RunE: func(cmd *cobra.Command, args []string) error {
			ins, err := inputs(cmd, args)
			if err != nil {
				return err
			}
			failed := 0
			for _, in := range ins {
				_, err := a.parse(cmd.Context(), in)
				if err == nil {
					continue
				}
				failed++
				var qerr *gqlerrors.QueryError
				if errors.As(err, &qerr) && len(qerr.Locations) > 0 {
					loc := qerr.Locations[0]
					fmt.Fprintf(cmd.OutOrStdout(), "%s:%d:%d: %s\n", in.name, loc.Line, loc.Column, qerr.Message)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", in.name, err)
				}
			}
			a.logger.Info("checked", zap.Int("documents", len(ins)), zap.Int("failed", failed))
			if failed > 0 {
				return fmt.Errorf("%d of %d documents have syntax errors", failed, len(ins))
			}
			return nil
		},
	}
}
