package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ajwalkiewicz/tcomp/internal/model"
)

func TestTable(t *testing.T) {
	txns := []model.Transaction{
		model.New(time.Date(2023, 10, 1, 12, 0, 0, 0, time.UTC), 100500, "Groceries"),
		model.New(time.Date(2023, 10, 3, 0, 0, 0, 0, time.UTC), -50750, "Refund"),
	}

	var sb strings.Builder
	Table(&sb, "In a.json but not in b.csv", "2006-01-02 15:04:05", txns)
	out := sb.String()

	assert.Contains(t, out, "# In a.json but not in b.csv:")
	assert.Contains(t, out, "DATE")
	assert.Contains(t, out, "AMOUNT")
	assert.Contains(t, out, "DESCRIPTION")
	assert.Contains(t, out, "2023-10-01 12:00:00")
	assert.Contains(t, out, "100.5")
	assert.Contains(t, out, "-50.75")
	assert.Contains(t, out, "Groceries")
}

func TestTable_Empty(t *testing.T) {
	var sb strings.Builder
	Table(&sb, "nothing here", "2006-01-02", nil)
	out := sb.String()

	assert.Contains(t, out, "# nothing here:")
	assert.Contains(t, out, "DATE")
}
