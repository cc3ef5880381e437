package analyzer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/gso-insight/gsoscan/internal/model"
)

// DefaultConcurrency is the batch fan-out limit when none is given.
const DefaultConcurrency = 5

// AnalyzeAll analyzes multiple domains concurrently, at most concurrency
// at a time, and returns results in input order. A domain that fails
// validation fails the whole batch; crawl failures do not, since those
// fall back to deterministic scoring like single runs do.
func (s *Service) AnalyzeAll(ctx context.Context, domains []string, concurrency int) ([]*model.AnalysisResult, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	s.logger.Info("starting batch analysis", "domains", len(domains), "concurrency", concurrency)

	results := make([]*model.AnalysisResult, len(domains))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, domain := range domains {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			result, err := s.Analyze(ctx, domain)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
