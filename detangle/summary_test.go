package detangle_test

import (
	"bytes"
	"testing"

	"github.com/jbk708/fastq-detangler/detangle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryTSV(t *testing.T) {
	s := detangle.Summary{Records: 7, UnpairedR1: 2, UnpairedR2: 1, PairedR1: 2, PairedR2: 2}
	var buf bytes.Buffer
	require.NoError(t, s.WriteTSV(&buf))
	want := "bucket\treads\n" +
		"unpaired_r1\t2\n" +
		"unpaired_r2\t1\n" +
		"paired_r1\t2\n" +
		"paired_r2\t2\n" +
		"total\t7\n"
	assert.Equal(t, want, buf.String())
}

func TestSummaryString(t *testing.T) {
	s := detangle.Summary{Records: 7, UnpairedR1: 2, UnpairedR2: 1, PairedR1: 2, PairedR2: 2}
	assert.Equal(t, "2 pairs, 2 unpaired R1, 1 unpaired R2", s.String())
}

func TestOutputPaths(t *testing.T) {
	paths := detangle.OutputPaths("/tmp/sampleA")
	require.Equal(t, [4]string{
		"/tmp/sampleA_R1_ordered_with_missing_R2.fastq",
		"/tmp/sampleA_R2_ordered_with_missing_R1.fastq",
		"/tmp/sampleA_R1_paired.fastq",
		"/tmp/sampleA_R2_paired.fastq",
	}, paths)
}
