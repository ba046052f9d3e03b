// SPDX-License-Identifier: MIT
// Package: udsp/media
//
// shared.go - short-lived shared ownership of one decoded buffer.
//
// Lifecycle (single writer, then K readers, then release):
//   - Share(items, holders) wraps the decoded channels/planes for exactly
//     `holders` consumers.
//   - Each consumer calls Take(i) once to capture its own element; the handle
//     counts takes and drops the buffer when the last holder is served.
//   - The owner defers Release() so the buffer is dropped on every error path.
//   - Any Take after the buffer is dropped fails with ErrBufferReleased.
//
// All methods are safe for concurrent use.

package media

import (
	"fmt"
	"sync"
)

// Shared is a reference-counted handle over a decoded buffer.
type Shared[T any] struct {
	mu      sync.Mutex
	items   []T
	pending int
}

// Share wraps items for holders consumers. holders < 1 yields a handle that
// is already released.
func Share[T any](items []T, holders int) *Shared[T] {
	s := &Shared[T]{items: items, pending: holders}
	if holders < 1 {
		s.items = nil
	}
	return s
}

// Len returns the number of elements, or 0 once released.
func (s *Shared[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Take returns element i and consumes one holder slot. The buffer is dropped
// as soon as the last slot is consumed.
// Errors: ErrBufferReleased after release; ErrUnsupportedChannelLayout for i out of range.
func (s *Shared[T]) Take(i int) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if s.items == nil {
		return zero, fmt.Errorf("Shared.Take(%d): %w", i, ErrBufferReleased)
	}
	if i < 0 || i >= len(s.items) {
		return zero, fmt.Errorf("Shared.Take(%d): %d elements: %w", i, len(s.items), ErrUnsupportedChannelLayout)
	}
	item := s.items[i]
	s.pending--
	if s.pending <= 0 {
		s.items = nil
	}

	return item, nil
}

// Release drops the buffer immediately. Idempotent.
func (s *Shared[T]) Release() {
	s.mu.Lock()
	s.items = nil
	s.pending = 0
	s.mu.Unlock()
}

// Released reports whether the buffer has been dropped.
func (s *Shared[T]) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items == nil
}
