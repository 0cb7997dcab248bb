package ondisk

import "fmt"

func errShortBuffer(what string, want, got int) error {
	return fmt.Errorf("%s: expected a %d-byte buffer, got %d", what, want, got)
}
