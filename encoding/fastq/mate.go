package fastq

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Mate identifies which side of a read pair a record belongs to. The
// zero value means the mate is unknown.
type Mate uint8

const (
	// R1 is a first-in-pair read, marked by the header suffix "/1".
	R1 Mate = iota + 1
	// R2 is a second-in-pair read, marked by the header suffix "/2".
	R2
)

func (m Mate) String() string {
	switch m {
	case R1:
		return "R1"
	case R2:
		return "R2"
	}
	return fmt.Sprintf("Mate(%d)", uint8(m))
}

// Other returns the mate on the opposite side of the pair.
func (m Mate) Other() Mate {
	if m == R1 {
		return R2
	}
	return R1
}

// SplitMate splits a FASTQ header into the read name and the mate. The
// leading "@" (if present) and the trailing mate suffix are stripped, so
// "@frag3/1" yields ("frag3", R1). The name itself may contain "/"; only
// the final two characters are interpreted as the suffix. Headers without
// a "/1" or "/2" suffix fail with ErrMateSuffix, and headers with a
// suffix but no name fail with ErrInvalid.
func SplitMate(id string) (string, Mate, error) {
	name := strings.TrimPrefix(id, "@")
	var mate Mate
	switch {
	case strings.HasSuffix(name, "/1"):
		mate = R1
	case strings.HasSuffix(name, "/2"):
		mate = R2
	default:
		return "", 0, errors.Wrapf(ErrMateSuffix, "header %q", id)
	}
	name = name[:len(name)-len("/1")]
	if name == "" {
		return "", 0, errors.Wrapf(ErrInvalid, "header %q has no read name", id)
	}
	return name, mate, nil
}

// Header reconstructs the raw FASTQ header line for a read name and
// mate, the inverse of SplitMate.
func Header(name string, mate Mate) string {
	return fmt.Sprintf("@%s/%d", name, uint8(mate))
}
