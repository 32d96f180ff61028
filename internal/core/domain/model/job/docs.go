// Package job contains the Job aggregate and its lifecycle state machine.
// A job is a bookable unit of interpretation work with a due time, a computed
// expiration instant and an optional assigned translator.
//
// The lifecycle is:
//
//	pending ──> assigned ──> in_progress ──> completed
//	   │            │              │
//	   │            └──────────────┴──> completed (early end)
//	   ├──> cancelled (also from assigned)
//	   └──> expired (automatic, via the expiration sweep)
//
// completed, cancelled and expired are terminal unless the job is explicitly
// reopened, which clears the translator assignment, recomputes the expiration
// instant and returns the job to pending.
//
// All transitions are enforced by the Status value object; the aggregate can
// never hold a translator reference outside the assigned, in_progress and
// completed states.
package job
