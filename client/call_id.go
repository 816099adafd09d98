package client

import (
	"sync/atomic"
)

// callIDManager numbers the remote calls made by one Client.
// The sequence number is logged next to the call's uuid.
type callIDManager struct {
	id atomic.Int64
}

func newCallIDManager() *callIDManager {
	return &callIDManager{}
}

// Next increments and returns the next sequence number.
func (m *callIDManager) Next() int64 {
	return m.id.Add(1)
}

// Current returns the number of calls issued so far.
func (m *callIDManager) Current() int64 {
	return m.id.Load()
}
