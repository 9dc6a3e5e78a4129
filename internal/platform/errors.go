package platform

import (
	"errors"
)

var (
	// ErrNotFound is returned when a product does not exist in the local store.
	ErrNotFound = errors.New("product not found")
	// ErrValidation is returned when an operation is rejected before touching any store.
	ErrValidation = errors.New("validation failed")
	// ErrLocalWriteFailed is returned when the local store rejects or no-ops a write.
	ErrLocalWriteFailed = errors.New("local store write failed")
	// ErrRemoteWriteFailed is returned when propagation to the remote store fails.
	// It never fails a save on its own.
	ErrRemoteWriteFailed = errors.New("remote store write failed")
	// ErrAuditWriteFailed is returned when the audit entry can't be written.
	// It never fails a save on its own.
	ErrAuditWriteFailed = errors.New("audit write failed")
	// ErrSaveInFlight is returned when save is called while another save is still running.
	ErrSaveInFlight = errors.New("save already in flight")
	// ErrSessionClosed is returned when a closed edit session is used.
	ErrSessionClosed = errors.New("edit session is closed")
	// ErrRestoreWindowExpired is returned when a soft-deleted product is restored too late.
	ErrRestoreWindowExpired = errors.New("restore window expired")
	// ErrAlreadyRunning is returned when a reconcile run can't be started
	// because previous run for the project is not finished yet.
	ErrAlreadyRunning = errors.New("reconciliation already running for this project")
)
