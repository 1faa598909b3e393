package filesystem

import (
	"time"

	"golang.org/x/sys/unix"
)

// StatTimes extracts the access, change, and modification times from a raw
// stat structure.
func StatTimes(s *unix.Stat_t) (accessTime, changeTime, modificationTime time.Time) {
	accessTime = time.Unix(int64(s.Atim.Sec), int64(s.Atim.Nsec))
	changeTime = time.Unix(int64(s.Ctim.Sec), int64(s.Ctim.Nsec))
	modificationTime = time.Unix(int64(s.Mtim.Sec), int64(s.Mtim.Nsec))
	return
}
