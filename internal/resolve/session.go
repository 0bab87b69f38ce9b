// SPDX-License-Identifier: Apache-2.0

package resolve

import "github.com/google/uuid"

// Grouped birth-date subcomponent keys; each may be claimed at most once
// per session.
const (
	KeyBirthDay   = "birthDay"
	KeyBirthMonth = "birthMonth"
	KeyBirthYear  = "birthYear"
)

// Session is the mutable state of one form traversal: the set of grouped
// subcomponent keys already assigned to a field. A session belongs to
// exactly one traversal; concurrent traversals each get their own.
type Session struct {
	id      string
	claimed map[string]struct{}
}

// NewSession creates an empty session with a fresh correlation id.
func NewSession() *Session {
	return &Session{
		id:      uuid.NewString(),
		claimed: make(map[string]struct{}),
	}
}

// ID returns the session's correlation id, used in log records.
func (s *Session) ID() string {
	return s.id
}

// Claim records key as assigned. It returns false when the key was already
// claimed in this session.
func (s *Session) Claim(key string) bool {
	if _, ok := s.claimed[key]; ok {
		return false
	}
	s.claimed[key] = struct{}{}
	return true
}

// Claimed reports whether key has been assigned in this session.
func (s *Session) Claimed(key string) bool {
	_, ok := s.claimed[key]
	return ok
}

// grouped reports whether key is a birth-date subcomponent.
func grouped(key string) bool {
	switch key {
	case KeyBirthDay, KeyBirthMonth, KeyBirthYear:
		return true
	}
	return false
}
