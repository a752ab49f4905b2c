// SPDX-License-Identifier: MIT

package algebra

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpgm/discrete"
	"github.com/katalvlaran/lvpgm/factor"
)

// Query is one SumProduct request.
type Query struct {
	Output  []string
	Factors []factor.Factor
}

// SumProductAll runs every query through SumProduct, at most
// WithConcurrency(n) at a time, and returns results in query order.
//
// Factors may be shared between queries: SumProduct only reads its operands.
// The first failing query cancels the rest and its error is returned,
// tagged with the query index. A cancelled ctx stops scheduling new queries
// and yields ctx.Err().
func SumProductAll(ctx context.Context, queries []Query, opts ...Option) ([]*discrete.Factor, error) {
	o := gatherOptions(opts...)
	o.logger.Debug("algebra: sum-product batch",
		zap.Int("queries", len(queries)),
		zap.Int("concurrency", o.concurrency),
	)

	results := make([]*discrete.Factor, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for i, q := range queries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := SumProduct(q.Output, q.Factors, opts...)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
