package repository

import (
	"sync"
	"time"

	"deal-engine/domain"
)

// AnalysisRecord pairs a served deal analysis with its input.
type AnalysisRecord struct {
	Input      domain.DealAnalysisInput
	Result     domain.DealAnalysisResult
	AnalyzedAt time.Time
}

type AnalysisRepository interface {
	Save(input domain.DealAnalysisInput, result domain.DealAnalysisResult) error
}

// AnalysisRepositoryMemory keeps served analyses in memory. It is a session
// log, not durable storage.
type AnalysisRepositoryMemory struct {
	mu   sync.Mutex
	data []AnalysisRecord
}

// NewAnalysisRepositoryMemory creates a new in-memory analysis log.
func NewAnalysisRepositoryMemory() *AnalysisRepositoryMemory {
	return &AnalysisRepositoryMemory{
		data: []AnalysisRecord{},
	}
}

// Save records a served analysis.
func (r *AnalysisRepositoryMemory) Save(
	input domain.DealAnalysisInput,
	result domain.DealAnalysisResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, AnalysisRecord{
		Input:      input,
		Result:     result,
		AnalyzedAt: time.Now(),
	})
	return nil
}

// All returns a copy of every recorded analysis.
func (r *AnalysisRepositoryMemory) All() []AnalysisRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]AnalysisRecord, len(r.data))
	copy(out, r.data)
	return out
}
