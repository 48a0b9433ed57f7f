package sim

import (
	"context"
	"slices"

	"github.com/Safa30/Lab-2-CSE366/internal/model"
)

// MemoryRecorder collects step records in memory. The run command feeds it to
// the loop alongside the archive recorder so the report layer can render the
// trace without re-reading the database.
type MemoryRecorder struct {
	records []model.StepRecord
}

// RecordStep appends one record. It never fails.
func (r *MemoryRecorder) RecordStep(_ context.Context, rec model.StepRecord) error {
	r.records = append(r.records, rec)
	return nil
}

// Records returns a copy of the collected records in step order.
func (r *MemoryRecorder) Records() []model.StepRecord {
	return slices.Clone(r.records)
}
