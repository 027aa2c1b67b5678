package repositories

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dealsDDLColumns parses the deals CREATE TABLE out of the init migration and
// returns column name -> full definition line.
func tableDDLColumns(t *testing.T, table string) map[string]string {
	t.Helper()

	raw, err := os.ReadFile("../database/migration/000001_init.up.sql")
	require.NoError(t, err)

	marker := "CREATE TABLE IF NOT EXISTS " + table + " ("
	start := strings.Index(string(raw), marker)
	require.GreaterOrEqual(t, start, 0, "migration has no %s table", table)

	block := string(raw)[start+len(marker):]
	end := strings.Index(block, ");")
	require.GreaterOrEqual(t, end, 0)
	block = block[:end]

	cols := map[string]string{}
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ","))
		if line == "" || strings.HasPrefix(line, "PRIMARY KEY") {
			continue
		}
		name := strings.Fields(line)[0]
		cols[name] = line
	}
	return cols
}

func TestDealQueriesOnlyReferenceMigratedColumns(t *testing.T) {
	cols := tableDDLColumns(t, "deals")

	selected := regexp.MustCompile(`d\.(\w+)`).FindAllStringSubmatch(dealColumns, -1)
	require.NotEmpty(t, selected)
	for _, m := range selected {
		assert.Contains(t, cols, m[1], "deal query selects %q, missing from migration", m[1])
	}

	written := []string{
		"product_id", "original_price", "deal_price", "discount_percent",
		"end_date", "is_flash_sale", "original_stock", "remaining_stock",
		"sold_count", "is_active", "created_at", "updated_at",
	}
	for _, col := range written {
		assert.Contains(t, cols, col, "deal writes touch %q, missing from migration", col)
	}
}

func TestPriceColumnsMatchIntegerModels(t *testing.T) {
	deals := tableDDLColumns(t, "deals")
	products := tableDDLColumns(t, "products")

	// Prices are scanned into Go int fields; a fractional NUMERIC value would
	// fail the scan, so the columns must be integral.
	for _, line := range []string{deals["original_price"], deals["deal_price"], products["price"]} {
		require.NotEmpty(t, line)
		assert.Contains(t, line, " INT ", "price column must be INT: %q", line)
	}
}
