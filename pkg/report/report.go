// Package report produces a human- and log-friendly summary of a completed
// batch verification run, stamped with a unique run identifier the way the
// teacher stamps each closed batch with a uuid.UUID before handing it to
// anchoring.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/certen/leansig-verifier/pkg/xmss"
)

// Run is a single VerifyBatch invocation's outcome, identified by a random
// UUID so independent runs over the same batch bytes remain distinguishable
// in logs.
type Run struct {
	RunID                 uuid.UUID     `json:"run_id"`
	StartedAt             time.Time     `json:"started_at"`
	Duration              time.Duration `json:"duration"`
	AllSignaturesValid    bool          `json:"all_signatures_valid"`
	NumSignaturesClaimed  uint32        `json:"num_signatures_claimed"`
	NumSignaturesVerified uint32        `json:"num_signatures_verified"`
	StatementCommitment   [32]byte      `json:"statement_commitment"`
}

// NewRun executes VerifyBatch against the given batch and wraps the result
// in a Run, recording wall-clock duration and a fresh run identifier.
func NewRun(batch xmss.VerificationBatch) Run {
	start := time.Now()
	allValid, count := xmss.VerifyBatch(batch)
	return Run{
		RunID:                 uuid.New(),
		StartedAt:             start,
		Duration:              time.Since(start),
		AllSignaturesValid:    allValid,
		NumSignaturesClaimed:  batch.Statement.K,
		NumSignaturesVerified: count,
		StatementCommitment:   xmss.StatementCommitment(batch.Statement),
	}
}

// String renders the run as a single log line.
func (r Run) String() string {
	return fmt.Sprintf(
		"run=%s valid=%t verified=%d/%d commitment=%x duration=%s",
		r.RunID, r.AllSignaturesValid, r.NumSignaturesVerified, r.NumSignaturesClaimed,
		r.StatementCommitment, r.Duration,
	)
}
