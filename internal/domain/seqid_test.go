package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeqID(t *testing.T) {
	id, err := ParseSeqID(RentalIDPrefix, SeqIDWidth, "RENT007")
	require.NoError(t, err)
	assert.Equal(t, 7, id.Number)
	assert.Equal(t, "RENT007", id.String())
}

func TestParseSeqID_BeyondPadding(t *testing.T) {
	id, err := ParseSeqID(EquipmentIDPrefix, SeqIDWidth, "EQ1042")
	require.NoError(t, err)
	assert.Equal(t, 1042, id.Number)
	assert.Equal(t, "EQ1042", id.String())
}

func TestParseSeqID_Malformed(t *testing.T) {
	cases := []string{"RENT", "RENTabc", "EQ001", "RENT-01", "RENT000"}
	for _, raw := range cases {
		_, err := ParseSeqID(RentalIDPrefix, SeqIDWidth, raw)
		var integrity *DataIntegrityError
		assert.True(t, errors.As(err, &integrity), "expected DataIntegrityError for %q", raw)
	}
}

func TestNextSeqIDs_FromExisting(t *testing.T) {
	ids, err := NextSeqIDs(RentalIDPrefix, SeqIDWidth, "RENT007", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"RENT008", "RENT009", "RENT010"}, ids)
}

func TestNextSeqIDs_EmptySequence(t *testing.T) {
	ids, err := NextSeqIDs(CustomerIDPrefix, SeqIDWidth, "", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"CUST001"}, ids)
}

func TestNextSeqIDs_PaddingRollover(t *testing.T) {
	ids, err := NextSeqIDs(EquipmentIDPrefix, SeqIDWidth, "EQ999", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"EQ1000", "EQ1001"}, ids)
}

func TestNextSeqIDs_MalformedHighest(t *testing.T) {
	_, err := NextSeqIDs(RentalIDPrefix, SeqIDWidth, "EQ007", 1)
	var integrity *DataIntegrityError
	assert.True(t, errors.As(err, &integrity))
}
