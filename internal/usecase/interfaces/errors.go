package interfaces

import "errors"

var (
	// ErrDebtorNotAvailable is returned by IPaymentRepository.Create when a
	// settlement was requested and no unsettled debtor matches the identifier.
	ErrDebtorNotAvailable = errors.New("no unsettled debtor for identifier")
	// ErrCloseInProgress is returned by ICloseLock.Acquire while another
	// accounting close holds the lock.
	ErrCloseInProgress = errors.New("accounting close already in progress")
)
