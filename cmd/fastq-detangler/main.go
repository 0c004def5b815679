package main

// See doc.go for documentation.

import (
	"context"
	"flag"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/jbk708/fastq-detangler/detangle"
)

var summaryFile = flag.String("summary", "", "Write per-bucket read counts to this TSV file")

func main() {
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() != 2 {
		log.Fatalf("usage: fastq-detangler [flags] <input.fastq> <output-prefix>")
	}
	inputPath := flag.Arg(0)
	outputPrefix := flag.Arg(1)

	ctx := vcontext.Background()
	summary, err := detangle.Detangle(ctx, inputPath, outputPrefix)
	if err != nil {
		log.Fatalf("detangle %s: %v", inputPath, err)
	}
	if *summaryFile != "" {
		if err := writeSummary(ctx, *summaryFile, summary); err != nil {
			log.Fatalf("write summary %s: %v", *summaryFile, err)
		}
	}
	log.Debug.Printf("exiting")
}

func writeSummary(ctx context.Context, path string, summary detangle.Summary) (err error) {
	var out file.File
	if out, err = file.Create(ctx, path); err != nil {
		return err
	}
	defer file.CloseAndReport(ctx, out, &err)
	return summary.WriteTSV(out.Writer(ctx))
}
