// Package detangle separates the reads of an interleaved FASTQ file
// into paired and unpaired outputs.
//
// Two reads pair when they share a read name and carry opposite mate
// suffixes. Every input read lands in exactly one of four outputs
// (paired R1, paired R2, unpaired R1, unpaired R2), and each output
// is sorted by read name, so the Nth read of the paired R1 output and
// the Nth read of the paired R2 output are mates.
package detangle

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/jbk708/fastq-detangler/encoding/fastq"
	"github.com/pkg/errors"
)

// ErrDuplicateMate is returned when the same read name carries the
// same mate suffix more than once in the input.
var ErrDuplicateMate = errors.New("duplicate mate record")

// Bucket identifies one of the four output groups.
type Bucket int

const (
	// UnpairedR1 holds R1 reads whose R2 mate is missing.
	UnpairedR1 Bucket = iota
	// UnpairedR2 holds R2 reads whose R1 mate is missing.
	UnpairedR2
	// PairedR1 holds R1 reads whose R2 mate is present.
	PairedR1
	// PairedR2 holds R2 reads whose R1 mate is present.
	PairedR2
	numBuckets
)

func (b Bucket) String() string {
	switch b {
	case UnpairedR1:
		return "unpaired_r1"
	case UnpairedR2:
		return "unpaired_r2"
	case PairedR1:
		return "paired_r1"
	case PairedR2:
		return "paired_r2"
	}
	return fmt.Sprintf("Bucket(%d)", int(b))
}

// mateBits records which mates have been seen for one read name.
type mateBits uint8

func bit(m fastq.Mate) mateBits {
	return 1 << (m - 1)
}

type buckets [numBuckets][]fastq.Read

// Detangle reads the interleaved FASTQ file at inputPath and routes
// its reads to the four output files named by outputPrefix (see
// OutputPaths). Outputs are all or nothing: no output file survives
// unless all four were written. The returned summary counts the reads
// routed to each output.
func Detangle(ctx context.Context, inputPath, outputPrefix string) (Summary, error) {
	start := time.Now()
	log.Printf("reading %s", inputPath)
	reads, mates, err := readAll(ctx, inputPath)
	if err != nil {
		return Summary{}, err
	}
	log.Printf("read %d reads (%d names) in %s", len(reads), len(mates), time.Since(start))
	bks := classify(reads, mates)
	if err := bks.sortByName(); err != nil {
		return Summary{}, err
	}
	for b, bucket := range bks {
		log.Debug.Printf("bucket %s: %d reads", Bucket(b), len(bucket))
	}
	if err := emit(ctx, outputPrefix, &bks); err != nil {
		return Summary{}, err
	}
	summary := newSummary(len(reads), &bks)
	log.Printf("detangled %s in %s: %s", inputPath, time.Since(start), summary)
	return summary, nil
}

// readAll scans every read at path into memory and records which
// mates appear for each read name. Pairing needs global knowledge of
// the input, so the whole file is buffered before classification.
func readAll(ctx context.Context, path string) (reads []fastq.Read, mates map[string]mateBits, err error) {
	var in file.File
	if in, err = file.Open(ctx, path); err != nil {
		return nil, nil, err
	}
	defer file.CloseAndReport(ctx, in, &err)

	scan := fastq.NewScanner(in.Reader(ctx), fastq.All|fastq.Name)
	mates = make(map[string]mateBits)
	var r fastq.Read
	for scan.Scan(&r) {
		b := bit(r.Mate)
		if mates[r.Name]&b != 0 {
			return nil, nil, errors.Wrapf(ErrDuplicateMate, "%s: second %s read for %q", path, r.Mate, r.Name)
		}
		mates[r.Name] |= b
		reads = append(reads, r)
	}
	if err = scan.Err(); err != nil {
		return nil, nil, errors.Wrapf(err, "%s", path)
	}
	if len(reads) == 0 {
		return nil, nil, errors.Errorf("%s: no FASTQ records found", path)
	}
	return reads, mates, nil
}

// classify routes every read to its bucket. A read is paired when the
// opposite mate was seen for its name.
func classify(reads []fastq.Read, mates map[string]mateBits) buckets {
	var bks buckets
	for _, r := range reads {
		b := bucketFor(&r, mates)
		bks[b] = append(bks[b], r)
	}
	return bks
}

func bucketFor(r *fastq.Read, mates map[string]mateBits) Bucket {
	paired := mates[r.Name]&bit(r.Mate.Other()) != 0
	switch {
	case paired && r.Mate == fastq.R1:
		return PairedR1
	case paired:
		return PairedR2
	case r.Mate == fastq.R1:
		return UnpairedR1
	}
	return UnpairedR2
}

// sortByName orders each bucket by read name. The buckets are
// independent, so the four sorts run concurrently. Read names within
// a bucket are unique once duplicate mates have been rejected, which
// makes the order total and keeps the two paired buckets in
// positional correspondence.
func (b *buckets) sortByName() error {
	return traverse.Each(int(numBuckets), func(i int) error {
		reads := b[i]
		sort.Slice(reads, func(j, k int) bool { return reads[j].Name < reads[k].Name })
		return nil
	})
}
