// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for the options snapshot.
//
// Purpose:
//   - Expose a read-only view of the resolved Options to matrix_test without
//     widening the production API.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with the Options fields; tests catch drift.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly       = panicEpsilonInvalid
	PanicRankToleranceInvalid_TestOnly = panicRankToleranceInvalid
)

// OptionsSnapshot mirrors the unexported Options fields.
type OptionsSnapshot struct {
	Eps            float64
	RankTol        float64
	ValidateNaNInf bool
	HasLogger      bool
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Eps:            o.eps,
		RankTol:        o.rankTol,
		ValidateNaNInf: o.validateNaNInf,
		HasLogger:      o.logger != nil,
	}
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}
