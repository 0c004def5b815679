package detangle

import (
	"fmt"
	"io"

	"github.com/grailbio/base/tsv"
)

// Summary counts the reads routed to each output by one detangle run.
type Summary struct {
	// Records is the total number of reads scanned from the input.
	Records    int
	UnpairedR1 int
	UnpairedR2 int
	PairedR1   int
	PairedR2   int
}

func newSummary(records int, bks *buckets) Summary {
	return Summary{
		Records:    records,
		UnpairedR1: len(bks[UnpairedR1]),
		UnpairedR2: len(bks[UnpairedR2]),
		PairedR1:   len(bks[PairedR1]),
		PairedR2:   len(bks[PairedR2]),
	}
}

// counts returns the per-bucket counts in Bucket order.
func (s Summary) counts() [numBuckets]int {
	return [numBuckets]int{
		UnpairedR1: s.UnpairedR1,
		UnpairedR2: s.UnpairedR2,
		PairedR1:   s.PairedR1,
		PairedR2:   s.PairedR2,
	}
}

// String renders the summary as a single log line.
func (s Summary) String() string {
	return fmt.Sprintf("%d pairs, %d unpaired R1, %d unpaired R2",
		s.PairedR1, s.UnpairedR1, s.UnpairedR2)
}

// WriteTSV writes the summary as a bucket/reads table with one row
// per output plus a total row.
func (s Summary) WriteTSV(w io.Writer) error {
	tw := tsv.NewWriter(w)
	tw.WriteString("bucket\treads")
	if err := tw.EndLine(); err != nil {
		return err
	}
	for b, n := range s.counts() {
		tw.WriteString(Bucket(b).String())
		tw.WriteUint32(uint32(n))
		if err := tw.EndLine(); err != nil {
			return err
		}
	}
	tw.WriteString("total")
	tw.WriteUint32(uint32(s.Records))
	if err := tw.EndLine(); err != nil {
		return err
	}
	return tw.Flush()
}
