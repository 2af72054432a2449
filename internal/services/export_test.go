package services

import "time"

// SetClock replaces the clock used for project timestamps and default names.
func (s *ProjectService) SetClock(now func() time.Time) {
	s.now = now
}

// PasswordDigest exposes the bcrypt input derived from a password.
var PasswordDigest = passwordDigest
