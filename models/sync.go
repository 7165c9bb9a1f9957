// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncAttemptResult is the outcome of a single authenticated fetch and
// reconcile attempt. It is never persisted.
type SyncAttemptResult int

const (
	// SyncTransportError covers every failure other than a rejected
	// credential: network errors, unexpected statuses, malformed bodies and
	// local storage failures during reconciliation.
	SyncTransportError SyncAttemptResult = iota
	// SyncSuccess means the remote set was fetched and reconciled.
	SyncSuccess
	// SyncUnauthorized means the remote authority rejected the credential.
	SyncUnauthorized
)

func (r SyncAttemptResult) String() string {
	switch r {
	case SyncSuccess:
		return "success"
	case SyncUnauthorized:
		return "unauthorized"
	default:
		return "transport_error"
	}
}

// CycleOutcome is the terminal label of one sync cycle, used in logs and
// metrics.
type CycleOutcome string

const (
	CycleSynced         CycleOutcome = "synced"
	CycleUnauthorized   CycleOutcome = "unauthorized"
	CycleTransportError CycleOutcome = "transport_error"
	CycleAuthFailed     CycleOutcome = "auth_failed"
)

// ReconcileReport summarizes one reconciliation pass.
type ReconcileReport struct {
	// Fetched is the number of devices received from the remote authority.
	Fetched int
	// Written is the number of local upserts performed.
	Written int
}
