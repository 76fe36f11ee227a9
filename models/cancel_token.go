// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "sync"

// CancelToken releases a live subscription or listener registration.
// Cancel is idempotent: calls after the first are no-ops.
type CancelToken interface {
	Cancel()
}

type cancelToken struct {
	once sync.Once
	fn   func()
}

// NewCancelToken wraps fn so that it runs at most once.
// A nil fn produces a token whose Cancel does nothing.
func NewCancelToken(fn func()) CancelToken {
	return &cancelToken{fn: fn}
}

func (c *cancelToken) Cancel() {
	c.once.Do(func() {
		if c.fn != nil {
			c.fn()
		}
	})
}
