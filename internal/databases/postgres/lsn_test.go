package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wal-g/pitr-resolver/internal/databases/postgres"
)

func TestParseLSN(t *testing.T) {
	cases := map[string]postgres.LSN{
		"0/0":               0,
		"0/1000":            0x1000,
		"16/B374D848":       0x16B374D848,
		"ffffffff/ffffffff": postgres.LSN(^uint64(0)),
		"00000001/0000000A": 0x10000000A,
	}
	for input, expected := range cases {
		lsn, err := postgres.ParseLSN(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, lsn, input)
	}
}

func TestParseLSN_Malformed(t *testing.T) {
	for _, input := range []string{
		"", "0", "/", "0/", "/0", "zz/10", "0x1/0", "1/0x1", "-1/0", "+1/0", "1/2/3",
		" 1/0", "1/0 ", "100000000/0", "0/100000000", "1_0/0",
	} {
		_, err := postgres.ParseLSN(input)
		assert.IsType(t, postgres.MalformedLSNError{}, err, input)
	}
}

func TestLSN_StringRoundTrip(t *testing.T) {
	lsn := postgres.LSN(0x16B374D848)

	assert.Equal(t, "16/B374D848", lsn.String())
	parsed, err := postgres.ParseLSN(lsn.String())
	require.NoError(t, err)
	assert.Equal(t, lsn, parsed)

	text, err := lsn.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "16/B374D848", string(text))
}
