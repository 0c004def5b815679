/*Command fastq-detangler separates an interleaved FASTQ file into
  paired and unpaired reads. It writes four files next to the given
  output prefix:

    <prefix>_R1_ordered_with_missing_R2.fastq  R1 reads missing their R2 mate
    <prefix>_R2_ordered_with_missing_R1.fastq  R2 reads missing their R1 mate
    <prefix>_R1_paired.fastq                   R1 reads with an R2 mate
    <prefix>_R2_paired.fastq                   R2 reads with an R1 mate

  Reads pair when they share a read name and carry opposite "/1", "/2"
  header suffixes. Each output is sorted by read name, so the paired
  files line up read for read.

  Usage: fastq-detangler [flags] <input.fastq> <output-prefix>
*/
package main
