//go:build unix

package secret

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// allocate maps anonymous memory and tries to lock it. A failed mlock (for example
// under a low RLIMIT_MEMLOCK in containers) leaves the mapping usable but unlocked.
func allocate(size int) ([]byte, bool, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, false, fmt.Errorf("secret: mmap failed: %w", err)
	}

	locked := unix.Mlock(data) == nil
	excludeFromCoreDump(data)

	return data, locked, nil
}

func release(data []byte, locked bool) error {
	var firstErr error
	if locked {
		if err := unix.Munlock(data); err != nil {
			firstErr = fmt.Errorf("secret: munlock failed: %w", err)
		}
	}
	if err := unix.Munmap(data); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("secret: munmap failed: %w", err)
	}
	return firstErr
}
