package schema

// The 2012 mutaties export: 19 columns, no header row, unsigned amount
// with a dot decimal separator and a separate debit/credit letter.
var rabo2012 = &Schema{
	Version: Rabo2012,
	Fields: []Field{
		field("rekeningnummer", 34, "account number", reAccount),
		field("muntsoort", 3, "currency code", reCurrency),
		field("rentedatum", 10, "date (YYYYMMDD)", reDate),
		field("debet/credit", 1, "D or C", reDC),
		field("bedrag", 14, "amount with dot decimals", reAmountDot),
		field("tegenrekening", 34, "account number or empty", reAccount),
		text("naam tegenpartij", 70),
		field("boekdatum", 10, "date (YYYYMMDD)", reDate),
		field("boekcode", 2, "two-letter booking code or empty", reLetters),
		text("omschrijving 1", 35),
		text("omschrijving 2", 35),
		text("omschrijving 3", 35),
		text("omschrijving 4", 35),
		text("omschrijving 5", 35),
		text("omschrijving 6", 35),
		text("omschrijving 7", 35),
		text("end-to-end id", 35),
		text("id tegenpartij", 35),
		text("machtigingskenmerk", 35),
	},

	Account:        0,
	Date:           2,
	Amount:         4,
	DebitCredit:    3,
	CounterAccount: 5,
	CounterName:    6,
	Code:           8,
	SeqNo:          -1,
	PaymentRef:     -1,
	Descriptions:   []int{9, 10, 11, 12, 13, 14, 15},
	Identifiers:    []int{16, 17, 18},
}
