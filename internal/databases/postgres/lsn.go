package postgres

import (
	"strconv"
	"strings"

	"github.com/jackc/pglogrepl"
)

// LSN is a 64-bit position in the write-ahead log, written as two hex halves "hi/lo".
type LSN pglogrepl.LSN

func (lsn LSN) String() string {
	return pglogrepl.LSN(lsn).String()
}

func (lsn LSN) MarshalText() ([]byte, error) {
	return []byte(lsn.String()), nil
}

// ParseLSN parses "hi/lo" where each half is a hexadecimal number of at most 32 bits.
// Signs, "0x" prefixes, spaces and empty halves are rejected.
func ParseLSN(s string) (LSN, error) {
	hiText, loText, found := strings.Cut(s, "/")
	if !found {
		return 0, NewMalformedLSNError(s, "expected <hi>/<lo>")
	}
	hi, err := parseLSNHalf(hiText)
	if err != nil {
		return 0, NewMalformedLSNError(s, "high half: "+err.Error())
	}
	lo, err := parseLSNHalf(loText)
	if err != nil {
		return 0, NewMalformedLSNError(s, "low half: "+err.Error())
	}
	return LSN(hi<<32 | lo), nil
}

func parseLSNHalf(half string) (uint64, error) {
	if half == "" {
		return 0, strconv.ErrSyntax
	}
	value, err := strconv.ParseUint(half, 16, 32)
	if err != nil {
		return 0, err.(*strconv.NumError).Err
	}
	return value, nil
}
