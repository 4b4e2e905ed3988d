// Package render prints reconciliation results as tables.
package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/ajwalkiewicz/tcomp/internal/model"
)

// Table writes one result table with a title line above it. Amounts are
// shown in major currency units.
func Table(w io.Writer, title, dateLayout string, txns []model.Transaction) {
	fmt.Fprintf(w, "# %s:\n", title)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", "Amount", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("|")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, txn := range txns {
		table.Append([]string{
			txn.Date.Format(dateLayout),
			txn.MajorUnits().String(),
			txn.Description,
		})
	}
	table.Render()
}
