package ingest

import (
	"strings"
	"testing"

	"github.com/hupe1980/dynoq/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gtr = model.EntryKey{Year: 2010, Make: "Nissan", Model: "GT-R"}

func TestParseRunSheet(t *testing.T) {
	t.Run("full sheet", func(t *testing.T) {
		sheet := strings.Join([]string{
			"RPM,HP,Torque,AFR,Boost",
			"3200,312.4,298.7,14.7,5.3",
			"6400,485.1,434.2,11.2,14.8",
		}, "\n")

		records, err := ParseRunSheet(strings.NewReader(sheet), gtr)
		require.NoError(t, err)
		require.Len(t, records, 8)

		assert.Equal(t, model.Record{Entry: gtr, Attribute: model.AttributeHP, Value: 312.4, RPM: 3200}, records[0])
		assert.Equal(t, model.Record{Entry: gtr, Attribute: model.AttributeBoost, Value: 14.8, RPM: 6400}, records[7])
	})

	t.Run("missing attribute columns are tolerated", func(t *testing.T) {
		sheet := strings.Join([]string{
			"RPM,HP",
			"3200,312.4",
			"6400,485.1",
		}, "\n")

		records, err := ParseRunSheet(strings.NewReader(sheet), gtr)
		require.NoError(t, err)
		require.Len(t, records, 2)
		for _, rec := range records {
			assert.Equal(t, model.AttributeHP, rec.Attribute)
		}
	})

	t.Run("unknown columns are skipped", func(t *testing.T) {
		sheet := strings.Join([]string{
			"RPM,HP,IAT,Boost",
			"3200,312.4,38,5.3",
		}, "\n")

		records, err := ParseRunSheet(strings.NewReader(sheet), gtr)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, model.AttributeHP, records[0].Attribute)
		assert.Equal(t, model.AttributeBoost, records[1].Attribute)
	})

	t.Run("empty cells are skipped", func(t *testing.T) {
		sheet := strings.Join([]string{
			"RPM,HP,Boost",
			"3200,312.4,",
			"6400,,14.8",
		}, "\n")

		records, err := ParseRunSheet(strings.NewReader(sheet), gtr)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, model.AttributeHP, records[0].Attribute)
		assert.Equal(t, 3200.0, records[0].RPM)
		assert.Equal(t, model.AttributeBoost, records[1].Attribute)
		assert.Equal(t, 6400.0, records[1].RPM)
	})

	t.Run("ragged rows are tolerated", func(t *testing.T) {
		sheet := strings.Join([]string{
			"RPM,HP,Boost",
			"3200,312.4",
		}, "\n")

		records, err := ParseRunSheet(strings.NewReader(sheet), gtr)
		require.NoError(t, err)
		require.Len(t, records, 1)
	})

	t.Run("missing RPM column", func(t *testing.T) {
		sheet := "HP,Boost\n312.4,5.3\n"

		_, err := ParseRunSheet(strings.NewReader(sheet), gtr)
		assert.ErrorIs(t, err, ErrMissingRPMColumn)
	})

	t.Run("malformed value", func(t *testing.T) {
		sheet := strings.Join([]string{
			"RPM,HP",
			"3200,312.4",
			"6400,n/a",
		}, "\n")

		_, err := ParseRunSheet(strings.NewReader(sheet), gtr)
		var mr *ErrMalformedRow
		require.ErrorAs(t, err, &mr)
		assert.Equal(t, 3, mr.Line)
	})

	t.Run("malformed RPM", func(t *testing.T) {
		sheet := "RPM,HP\nidle,312.4\n"

		_, err := ParseRunSheet(strings.NewReader(sheet), gtr)
		var mr *ErrMalformedRow
		assert.ErrorAs(t, err, &mr)
	})

	t.Run("header only", func(t *testing.T) {
		records, err := ParseRunSheet(strings.NewReader("RPM,HP\n"), gtr)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
