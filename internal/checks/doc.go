// Package checks implements the validation rule set for the simulated QPU
// lease dataset: a fixed collection of independent predicates over one
// tabular dataset of daily records.
//
// # Rules
//
// The rule set covers five concerns plus one partition rule:
//
//   - schema: the seven required columns are present
//   - date_range: the records span roughly six months (170-190 days)
//   - block_volume: total blocks leased per day is within 1,000-10,000
//   - workload_volume: workloads executed per day is within 1M-50M
//   - distribution: cumulative Atom/Photon/Spin totals are balanced within
//     a configurable tolerance of their three-way average
//   - assignment: each day's workloads partition exactly into new-block and
//     older-pool shares of 50-60% and 40-50%
//
// # Purity
//
// Every check computes its own derived values (parsed dates, per-record
// block totals, cumulative sums) from the immutable dataset and stores
// nothing back. Checks are therefore order-independent and idempotent:
// running any check twice on the same dataset yields the same Result.
//
// # Failure model
//
// A missing column, an out-of-range record, or an unbalanced distribution
// is recovered locally: the check returns a failed Result carrying
// diagnostic detail and sibling checks still run. Only an unparseable date
// is fatal - the date_range check propagates it as an error and the run
// aborts, since every date-dependent diagnostic downstream would be
// meaningless.
package checks
