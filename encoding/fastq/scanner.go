package fastq

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	maxLineSize = 1024 * 1024 * 64 // 64 MB
)

var (
	// ErrShort is returned when a truncated FASTQ record is encountered.
	ErrShort = errors.New("short FASTQ file")
	// ErrInvalid is returned when an invalid FASTQ record is encountered.
	ErrInvalid = errors.New("invalid FASTQ file")
	// ErrMateSuffix is returned when a header does not end in a
	// recognized mate suffix ("/1" or "/2").
	ErrMateSuffix = errors.New("unrecognized mate suffix")
)

// A Read is a FASTQ read, comprising an ID, sequence, line 3
// ("unknown"), and a quality string. When scanned with the Name field,
// Name holds the ID with the leading "@" and the trailing mate suffix
// stripped, and Mate records which side of the pair the read is on.
type Read struct {
	ID, Seq, Unk, Qual string
	Name               string
	Mate               Mate
}

var errEOF = errors.New("eof")

// Scanner provides a convenient interface for reading FASTQ read
// data. The Scan method returns the next read, returning a boolean
// indicating whether the read succeeded. Scanners are not
// threadsafe.
//
// Scanner validates record framing: it requires ID lines to begin
// with "@" and that line 3 begins with "+". When the Name field is
// requested it also parses the header into the read name and mate,
// rejecting headers without a recognized mate suffix. It does not
// perform further validation (e.g., seq/qual being of equal length,
// containing only data in range, etc.)
type Scanner struct {
	b      *bufio.Scanner
	err    error
	fields Field
	line   int
}

// Field enumerates FASTQ fields. It is used to specify fields to read in
// NewScanner.
type Field uint

const (
	// ID causes the Read.ID field to be filled
	ID Field = 1 << iota
	// Seq causes the Read.Seq field to be filled
	Seq
	// Unk causes the Read.Unk field to be filled
	Unk
	// Qual causes the Read.Qual field to be filled
	Qual
	// Name causes the Read.Name and Read.Mate fields to be filled from
	// the header, enforcing the mate suffix convention.
	Name
	// All equals ID|Seq|Unk|Qual.
	All = ID | Seq | Unk | Qual
)

// NewScanner constructs a new Scanner that reads raw FASTQ data from the
// provided reader. Fields is a bitset of the fields to read. A typical value
// would be All or All|Name. Lines of up to maxLineSize are accepted, so
// long-read sequence and quality lines scan without truncation.
func NewScanner(r io.Reader, fields Field) *Scanner {
	b := bufio.NewScanner(r)
	b.Buffer(nil, maxLineSize)
	return &Scanner{b: b, fields: fields}
}

// Scan the next read into the provided read. Scan returns a boolean
// indicating whether the scan succeeded. Once Scan returns false, it
// never returns true again. Upon completion, the user should check
// the Err method to determine whether scanning stopped because of an
// error or because the end of the stream was reached.
func (f *Scanner) Scan(read *Read) bool {
	if f.err != nil {
		return false
	}
	if !f.b.Scan() {
		if f.err = f.b.Err(); f.err == nil {
			f.err = errEOF
		}
		return false
	}
	f.line++
	recLine := f.line
	id := f.b.Bytes()
	if len(id) == 0 || id[0] != '@' {
		f.err = errors.Wrapf(ErrInvalid, "line %d: header %q does not begin with '@'", f.line, f.b.Text())
		return false
	}
	if f.fields&ID != 0 {
		read.ID = string(id)
	}
	if f.fields&Name != 0 {
		name, mate, err := SplitMate(string(id))
		if err != nil {
			f.err = errors.Wrapf(err, "line %d", f.line)
			return false
		}
		read.Name = name
		read.Mate = mate
	}
	if !f.scan(recLine, 1) {
		return false
	}
	if f.fields&Seq != 0 {
		read.Seq = f.b.Text()
	}
	if !f.scan(recLine, 2) {
		return false
	}
	unk := f.b.Bytes()
	if len(unk) == 0 || unk[0] != '+' {
		f.err = errors.Wrapf(ErrInvalid, "line %d: separator %q does not begin with '+'", f.line, f.b.Text())
		return false
	}
	if f.fields&Unk != 0 {
		read.Unk = string(unk)
	}
	if !f.scan(recLine, 3) {
		return false
	}
	if f.fields&Qual != 0 {
		read.Qual = f.b.Text()
	}
	return true
}

func (f *Scanner) scan(recLine, got int) bool {
	if f.b.Scan() {
		f.line++
		return true
	}
	if f.err = f.b.Err(); f.err == nil {
		f.err = errors.Wrapf(ErrShort, "record at line %d truncated after %d of 4 lines", recLine, got)
	}
	return false
}

// Err returns the scanning error, if any.
func (f *Scanner) Err() error {
	if f.err == errEOF {
		return nil
	}
	return f.err
}
