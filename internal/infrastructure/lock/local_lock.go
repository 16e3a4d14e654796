package lock

import (
	"context"
	"sync"

	"pagalotodo/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// LocalLock guards closes inside a single process when Redis is not configured.
type LocalLock struct {
	mu    sync.Mutex
	guard sync.Mutex
	token string
}

var _ interfaces.ICloseLock = (*LocalLock)(nil)

func NewLocalLock() *LocalLock {
	return &LocalLock{}
}

func (l *LocalLock) Acquire(_ context.Context) (string, error) {
	if !l.mu.TryLock() {
		return "", interfaces.ErrCloseInProgress
	}
	token := uuid.NewString()
	l.guard.Lock()
	l.token = token
	l.guard.Unlock()
	return token, nil
}

func (l *LocalLock) Release(_ context.Context, token string) error {
	l.guard.Lock()
	defer l.guard.Unlock()
	if l.token == "" || l.token != token {
		return ErrLockNotHeld
	}
	l.token = ""
	l.mu.Unlock()
	return nil
}
