package underwriting

import (
	"context"

	"github.com/Dan9191/underwriting-service/internal/models"
	"golang.org/x/sync/errgroup"
)

// Job is one property to analyze in a batch
type Job struct {
	Property    models.Property
	Assumptions models.FinancialAssumptions
	Requirement models.ClientRequirement
	Catalog     []models.OptimizationAction
}

// BatchResult carries the outcome of one job. Exactly one of Analysis and Err is set.
type BatchResult struct {
	PropertyID string
	Analysis   *models.Analysis
	Err        error
}

// AnalyzeBatch analyzes jobs on at most workers goroutines. Results are returned
// in job order and keep the job's property ID. A failing job never affects the
// others; once ctx is done no further jobs are started and the unstarted ones
// carry ctx.Err().
func AnalyzeBatch(ctx context.Context, jobs []Job, workers int) ([]BatchResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]BatchResult, len(jobs))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, job := range jobs {
		i, job := i, job
		results[i].PropertyID = job.Property.ID
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		g.Go(func() error {
			analysis, err := Analyze(job.Property, job.Assumptions, job.Requirement, job.Catalog)
			if err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Analysis = &analysis
			return nil
		})
	}
	_ = g.Wait()
	return results, ctx.Err()
}
