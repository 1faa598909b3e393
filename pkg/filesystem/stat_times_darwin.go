package filesystem

import (
	"time"

	"golang.org/x/sys/unix"
)

// StatTimes extracts the access, change, and modification times from a raw
// stat structure.
func StatTimes(s *unix.Stat_t) (accessTime, changeTime, modificationTime time.Time) {
	accessTime = time.Unix(int64(s.Atimespec.Sec), int64(s.Atimespec.Nsec))
	changeTime = time.Unix(int64(s.Ctimespec.Sec), int64(s.Ctimespec.Nsec))
	modificationTime = time.Unix(int64(s.Mtimespec.Sec), int64(s.Mtimespec.Nsec))
	return
}
