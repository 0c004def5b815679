package detangle

import (
	"context"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/jbk708/fastq-detangler/encoding/fastq"
)

// Output name suffixes, in Bucket order. Each unpaired output is
// named for the mate it is missing.
var outputSuffixes = [numBuckets]string{
	UnpairedR1: "_R1_ordered_with_missing_R2.fastq",
	UnpairedR2: "_R2_ordered_with_missing_R1.fastq",
	PairedR1:   "_R1_paired.fastq",
	PairedR2:   "_R2_paired.fastq",
}

// OutputPaths returns the four output paths written for prefix, in
// Bucket order (unpaired R1, unpaired R2, paired R1, paired R2).
func OutputPaths(prefix string) [4]string {
	var paths [4]string
	for b, suffix := range outputSuffixes {
		paths[b] = prefix + suffix
	}
	return paths
}

// emit writes each bucket to its output path. Output is all or
// nothing: on the first error every file created so far is removed.
func emit(ctx context.Context, prefix string, bks *buckets) error {
	paths := OutputPaths(prefix)
	var created []string
	for b, reads := range bks {
		out, err := file.Create(ctx, paths[b])
		if err != nil {
			removeAll(ctx, created)
			return errors.E(err, "creating output:", paths[b])
		}
		created = append(created, paths[b])
		if err := writeReads(ctx, out, reads); err != nil {
			removeAll(ctx, created)
			return errors.E(err, "writing output:", paths[b])
		}
		log.Printf("wrote %s: %d reads", paths[b], len(reads))
	}
	return nil
}

// writeReads writes reads to out and closes it. The first error from
// writing, flushing, or closing is returned.
func writeReads(ctx context.Context, out file.File, reads []fastq.Read) error {
	w := fastq.NewWriter(out.Writer(ctx))
	e := errors.Once{}
	for i := range reads {
		if err := w.Write(&reads[i]); err != nil {
			e.Set(err)
			break
		}
	}
	e.Set(w.Flush())
	e.Set(out.Close(ctx))
	return e.Err()
}

// removeAll best-effort deletes the named files so that a failed run
// leaves no partial outputs behind.
func removeAll(ctx context.Context, paths []string) {
	for _, path := range paths {
		if err := file.Remove(ctx, path); err != nil {
			log.Error.Printf("removing %s: %v", path, err)
		}
	}
}
