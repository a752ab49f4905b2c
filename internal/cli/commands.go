// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpgm/algebra"
	"github.com/katalvlaran/lvpgm/discrete"
	"github.com/katalvlaran/lvpgm/internal/fixture"
)

const flagFile = "file"

// addFileFlag registers the mandatory --file flag.
func addFileFlag(cmd *cobra.Command, path *string) {
	cmd.Flags().StringVarP(path, flagFile, "f", "", "YAML factor file (required)")
	_ = cmd.MarkFlagRequired(flagFile)
}

func (e *env) load(path string) (fixture.Set, error) {
	set, err := fixture.Load(path)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("factors loaded", zap.String("file", path), zap.Int("count", len(set)))

	return set, nil
}

func maybeNormalize(phi *discrete.Factor, normalize bool) (*discrete.Factor, error) {
	if !normalize {
		return phi, nil
	}

	return phi.Normalize(true)
}

func newProductCmd(e *env) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Multiply every factor in the file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := e.load(path)
			if err != nil {
				return err
			}
			phi, err := algebra.Product(set.Factors()...)
			if err != nil {
				return err
			}

			return fixture.Write(cmd.OutOrStdout(), fixture.EntryOf("product", phi))
		},
	}
	addFileFlag(cmd, &path)

	return cmd
}

func newLogSumCmd(e *env) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "logsum",
		Short: "Sum the natural logs of every factor in the file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := e.load(path)
			if err != nil {
				return err
			}
			phi, err := algebra.LogSum(set.Factors()...)
			if err != nil {
				return err
			}

			return fixture.Write(cmd.OutOrStdout(), fixture.EntryOf("logsum", phi))
		},
	}
	addFileFlag(cmd, &path)

	return cmd
}

func newDivideCmd(e *env) *cobra.Command {
	var path, dividend, divisor string
	cmd := &cobra.Command{
		Use:   "divide",
		Short: "Divide one named factor by another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := e.load(path)
			if err != nil {
				return err
			}
			num, err := set.Get(dividend)
			if err != nil {
				return err
			}
			den, err := set.Get(divisor)
			if err != nil {
				return err
			}
			phi, err := algebra.Divide(num, den)
			if err != nil {
				return err
			}

			return fixture.Write(cmd.OutOrStdout(), fixture.EntryOf(dividend+"/"+divisor, phi))
		},
	}
	addFileFlag(cmd, &path)
	cmd.Flags().StringVar(&dividend, "dividend", "", "name of the dividend factor (required)")
	cmd.Flags().StringVar(&divisor, "divisor", "", "name of the divisor factor (required)")
	_ = cmd.MarkFlagRequired("dividend")
	_ = cmd.MarkFlagRequired("divisor")

	return cmd
}

func newSumProductCmd(e *env) *cobra.Command {
	var (
		path      string
		output    []string
		normalize bool
	)
	cmd := &cobra.Command{
		Use:   "sumproduct",
		Short: "Multiply every factor and sum out all variables not in --output",
		Long: "sumproduct contracts all factors in one pass. With no --output the\n" +
			"result is a scalar factor holding the total mass.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := e.load(path)
			if err != nil {
				return err
			}
			phi, err := algebra.SumProduct(output, set.Factors(), e.algebraOptions()...)
			if err != nil {
				return err
			}
			if phi, err = maybeNormalize(phi, normalize); err != nil {
				return err
			}

			return fixture.Write(cmd.OutOrStdout(), fixture.EntryOf("sumproduct", phi))
		},
	}
	addFileFlag(cmd, &path)
	cmd.Flags().StringSliceVarP(&output, "output", "o", nil, "comma-separated output variables, in order")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "normalize the result to sum to one")

	return cmd
}

func newMarginalsCmd(e *env) *cobra.Command {
	var (
		path      string
		vars      []string
		normalize bool
	)
	cmd := &cobra.Command{
		Use:   "marginals",
		Short: "Compute the single-variable marginal of every variable concurrently",
		Long: "marginals runs one sum-product query per variable, bounded by\n" +
			"batch.concurrency. --vars restricts the variables queried.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := e.load(path)
			if err != nil {
				return err
			}
			phis := set.Factors()
			if len(vars) == 0 {
				vars = variables(set)
			}

			queries := make([]algebra.Query, len(vars))
			for i, v := range vars {
				queries[i] = algebra.Query{Output: []string{v}, Factors: phis}
			}
			results, err := algebra.SumProductAll(cmd.Context(), queries, e.algebraOptions()...)
			if err != nil {
				return err
			}

			entries := make([]fixture.Entry, len(results))
			for i, phi := range results {
				if phi, err = maybeNormalize(phi, normalize); err != nil {
					return fmt.Errorf("marginal of %q: %w", vars[i], err)
				}
				entries[i] = fixture.EntryOf("P("+strings.Join(phi.Scope(), ",")+")", phi)
			}

			return fixture.Write(cmd.OutOrStdout(), entries...)
		},
	}
	addFileFlag(cmd, &path)
	cmd.Flags().StringSliceVar(&vars, "vars", nil, "comma-separated variables (default: all, in first-seen order)")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "normalize each marginal to sum to one")

	return cmd
}

// variables lists every variable of set in first-seen order.
func variables(set fixture.Set) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, n := range set {
		for _, v := range n.Factor.Scope() {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				out = append(out, v)
			}
		}
	}

	return out
}
