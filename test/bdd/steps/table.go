package steps

import (
	"fmt"
	"strconv"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"
)

// cellValue returns the cell of row under the header named column, or "" when
// the table has no such column
func cellValue(table *godog.Table, row *messages.PickleTableRow, column string) string {
	if len(table.Rows) == 0 {
		return ""
	}
	for i, header := range table.Rows[0].Cells {
		if header.Value == column && i < len(row.Cells) {
			return row.Cells[i].Value
		}
	}
	return ""
}

func cellInt(table *godog.Table, row *messages.PickleTableRow, column string) (int, error) {
	raw := cellValue(table, row, column)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("column %s: %q is not a number", column, raw)
	}
	return n, nil
}
