package ingest

import (
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajwalkiewicz/tcomp/internal/model"
)

func TestJSONFile(t *testing.T) {
	txns, err := JSONFile("../../testdata/budget.json")
	require.NoError(t, err)
	require.Len(t, txns, 3)

	// Integer amounts are milliunits already.
	assert.Equal(t, int64(-100500), txns[0].Amount)
	assert.Equal(t, "Biedronka weekly shop", txns[0].Description)

	// Null memo collapses to the empty string, keeping the trailing space.
	assert.Equal(t, "Employer ", txns[1].Description)

	// Fractional amounts are major units, scaled and truncated.
	assert.Equal(t, int64(-210370), txns[2].Amount)
	assert.Equal(t, time.Date(2023, 10, 5, 0, 0, 0, 0, time.UTC), txns[2].Date)
}

func TestJSONFile_Missing(t *testing.T) {
	_, err := JSONFile("../../testdata/nope.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestJSON_NullMemoTrailingSpace(t *testing.T) {
	in := `{"data": {"transactions": [
		{"date": "2023-01-01", "amount": 100, "payee_name": "Payee1", "memo": null}
	]}}`

	txns, err := JSON(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, txns, 1)

	assert.Equal(t, "Payee1 ", txns[0].Description)
	assert.Equal(t, int64(100), txns[0].Amount)
}

func TestJSON_FloatAmountScaled(t *testing.T) {
	in := `{"data": {"transactions": [
		{"date": "2023-01-01", "amount": 100.1239, "payee_name": "P", "memo": "m"}
	]}}`

	txns, err := JSON(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, int64(100123), txns[0].Amount)
}

func TestJSON_BadDateAborts(t *testing.T) {
	in := `{"data": {"transactions": [
		{"date": "01/01/2023", "amount": 100, "payee_name": "P", "memo": null}
	]}}`

	_, err := JSON(strings.NewReader(in))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDateFormat)
	assert.Contains(t, err.Error(), "transaction 1")
}

func TestJSON_Malformed(t *testing.T) {
	_, err := JSON(strings.NewReader(`{"data": {`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding JSON")
}

func TestJSON_EmptyTransactions(t *testing.T) {
	txns, err := JSON(strings.NewReader(`{"data": {"transactions": []}}`))
	require.NoError(t, err)
	assert.Nil(t, txns)
}
