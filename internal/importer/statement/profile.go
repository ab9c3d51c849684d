package statement

// amountMode determines how amounts are extracted from a row.
type amountMode int

const (
	// amountSigned means one signed column ("Amount" with value "-10.00").
	amountSigned amountMode = iota
	// amountSplit means separate debit and credit columns.
	amountSplit
)

// Profile describes the column layout of a statement CSV export.
// Supporting a new bank's layout is just another entry in the profiles slice.
type Profile struct {
	Name       string
	DateCol    string
	DescCol    string
	AmountMode amountMode
	AmountCol  string // used when AmountMode == amountSigned
	DebitCol   string // used when AmountMode == amountSplit
	CreditCol  string // used when AmountMode == amountSplit
}

// requiredCols returns the columns that must be present for this profile to match.
func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.DescCol}

	switch p.AmountMode {
	case amountSigned:
		cols = append(cols, p.AmountCol)
	case amountSplit:
		cols = append(cols, p.DebitCol, p.CreditCol)
	}

	return cols
}

// profiles is the ordered list of layouts tried during auto-detection.
// More specific profiles come first to avoid false matches.
var profiles = []Profile{
	{
		Name:       "split",
		DateCol:    "Date",
		DescCol:    "Description",
		AmountMode: amountSplit,
		DebitCol:   "Debit",
		CreditCol:  "Credit",
	},
	{
		Name:       "signed",
		DateCol:    "Date",
		DescCol:    "Description",
		AmountMode: amountSigned,
		AmountCol:  "Amount",
	},
}
