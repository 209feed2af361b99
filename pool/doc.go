// SPDX-License-Identifier: MIT

// Package pool runs one prediction task per query row across a bounded
// worker pool, honoring a host-owned cancellation predicate and reducing
// per-task return codes into a single worst-case aggregate.
package pool
