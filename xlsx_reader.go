package fundcompare

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adikshith/fundcompare/date"
	"github.com/xuri/excelize/v2"
)

// Registrar exports (CAMS, KFintech) name their columns inconsistently and
// put a few banner rows above the table, so the loader searches for the
// header row and accepts alternate column names.

var columnAliases = map[string][]string{
	"date":   {"Transaction Date", "Date"},
	"scheme": {"Scheme", "Fund Name", "Scheme Name"},
	"amount": {"Gross Amount", "Amount"},
	"units":  {"Units"},
	"type":   {"Transaction Type", "Type", "Transaction"},
}

// required columns; the others are optional.
var requiredColumns = []string{"date", "amount"}

// headerSearchRows caps how deep the loader scans for the header row.
const headerSearchRows = 20

// ReadTransactions loads and validates the investor's transaction history
// from an xlsx workbook. Rows come back chronologically sorted. The first
// invalid row aborts the load with an InvalidInputError.
func ReadTransactions(path string) ([]Transaction, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &InvalidInputError{Path: path, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &InvalidInputError{Path: path, Err: fmt.Errorf("workbook has no sheets")}
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &InvalidInputError{Path: path, Err: err}
	}

	headerRow, cols, err := findHeader(rows)
	if err != nil {
		return nil, &InvalidInputError{Path: path, Err: err}
	}

	var txs []Transaction
	for i, row := range rows[headerRow+1:] {
		rowNum := headerRow + i + 2 // 1-based spreadsheet row
		if blankRow(row) {
			continue
		}
		tx, err := parseRow(row, cols)
		if err != nil {
			return nil, &InvalidInputError{Path: path, Row: rowNum, Err: err}
		}
		txs = append(txs, tx)
	}
	if len(txs) == 0 {
		return nil, &InvalidInputError{Path: path, Err: fmt.Errorf("no transaction rows found")}
	}

	SortTransactions(txs)
	return txs, nil
}

// findHeader scans the first rows for one containing a date and an amount
// column, and returns its index plus the field→column mapping.
func findHeader(rows [][]string) (int, map[string]int, error) {
	limit := min(len(rows), headerSearchRows)
	for r := 0; r < limit; r++ {
		cols := make(map[string]int)
		for field, aliases := range columnAliases {
			for c, cell := range rows[r] {
				if hasAlias(aliases, cell) {
					cols[field] = c
					break
				}
			}
		}
		ok := true
		for _, field := range requiredColumns {
			if _, found := cols[field]; !found {
				ok = false
				break
			}
		}
		if ok {
			return r, cols, nil
		}
	}
	return 0, nil, fmt.Errorf("no header row with %q and %q columns in the first %d rows",
		columnAliases["date"], columnAliases["amount"], limit)
}

func hasAlias(aliases []string, cell string) bool {
	cell = strings.TrimSpace(cell)
	for _, a := range aliases {
		if strings.EqualFold(cell, a) {
			return true
		}
	}
	return false
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseRow validates and normalizes one data row.
func parseRow(row []string, cols map[string]int) (Transaction, error) {
	get := func(field string) string {
		c, ok := cols[field]
		if !ok || c >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[c])
	}

	on, err := date.Parse(get("date"))
	if err != nil {
		return Transaction{}, err
	}

	amount, err := parseNumber(get("amount"))
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid amount: %w", err)
	}

	txType := ParseTxType(get("type"))
	if amount < 0 {
		// Registrars that skip the type column sign the amount instead.
		txType = Redemption
		amount = -amount
	}
	if amount == 0 {
		return Transaction{}, fmt.Errorf("zero amount")
	}

	var units Quantity
	if raw := get("units"); raw != "" {
		u, err := parseNumber(raw)
		if err != nil {
			return Transaction{}, fmt.Errorf("invalid units: %w", err)
		}
		if u < 0 {
			u = -u
		}
		units = Q(u)
	}

	return Transaction{
		Date:   on,
		Type:   txType,
		Scheme: get("scheme"),
		Amount: M(amount, INR),
		Units:  units,
	}, nil
}

// parseNumber accepts statement figures with thousands separators.
func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
}
