package report

import "strings"

// csvHeader matches the export format downloaded by the web client.
var csvHeader = []string{"Date", "Type", "Category", "Amount", "Note"}

// escapeCSV wraps a field in double quotes with inner quotes doubled.
// Every field is quoted, including ones that would not need it; a standard
// CSV reader round-trips commas, quotes and newlines exactly.
func escapeCSV(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// CSV projects transactions into an exportable document: a header row plus
// one row per transaction, comma-separated, newline-joined. A transaction
// with an unresolvable date keeps its row with an empty Date field; the
// amount is the normalized magnitude-as-stored (sign dropped by callers
// filtering, not here — exports show the value the user entered, cleaned).
func CSV(txs []Transaction) string {
	var sb strings.Builder

	writeRow := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(escapeCSV(f))
		}
	}

	writeRow(csvHeader)
	for _, tx := range txs {
		iso := ""
		if date, ok := Resolve(tx.Date); ok {
			iso = date.ISO()
		}
		sb.WriteByte('\n')
		writeRow([]string{
			iso,
			string(tx.Kind),
			tx.Category,
			Amount(tx.Amount).String(),
			tx.Note,
		})
	}
	return sb.String()
}
