package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SeqID is the structured form of a human-readable sequential identifier
// such as EQ001 or RENT102. Raw IDs are parsed once at the read boundary;
// malformed stored IDs are a fatal data-integrity condition.
type SeqID struct {
	Prefix string
	Number int
	Width  int
}

// ParseSeqID parses a stored identifier against the expected prefix.
// The numeric suffix may exceed width once a sequence outgrows its padding.
func ParseSeqID(prefix string, width int, raw string) (SeqID, error) {
	suffix, ok := strings.CutPrefix(raw, prefix)
	if !ok || suffix == "" {
		return SeqID{}, &DataIntegrityError{Detail: fmt.Sprintf("identifier %q does not match prefix %q", raw, prefix)}
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 1 {
		return SeqID{}, &DataIntegrityError{Detail: fmt.Sprintf("identifier %q has a malformed sequence number", raw), Err: err}
	}
	return SeqID{Prefix: prefix, Number: n, Width: width}, nil
}

func (id SeqID) String() string {
	return fmt.Sprintf("%s%0*d", id.Prefix, id.Width, id.Number)
}

func (id SeqID) Next() SeqID {
	id.Number++
	return id
}

// NextSeqIDs allocates n consecutive identifiers after the given highest
// existing one. highest == "" starts the sequence at 1. The caller is
// responsible for running the read and the subsequent inserts inside one
// transaction so concurrent writers cannot race to the same ID.
func NextSeqIDs(prefix string, width int, highest string, n int) ([]string, error) {
	if n < 1 {
		return nil, &ValidationError{Field: "count", Reason: "must allocate at least one identifier"}
	}
	next := SeqID{Prefix: prefix, Number: 1, Width: width}
	if highest != "" {
		last, err := ParseSeqID(prefix, width, highest)
		if err != nil {
			return nil, err
		}
		next = last.Next()
	}
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, next.String())
		next = next.Next()
	}
	return ids, nil
}
