package schema

// The 2013 revision keeps the 19-column shape of the 2012 export but
// swaps the two date columns: the booking date moves to the front and
// the interest date to position 8. Dates may also appear ISO-dashed.
var rabo2013 = &Schema{
	Version: Rabo2013,
	Fields: []Field{
		field("rekeningnummer", 34, "account number", reAccount),
		field("muntsoort", 3, "currency code", reCurrency),
		field("boekdatum", 10, "date (YYYYMMDD or YYYY-MM-DD)", reDate),
		field("debet/credit", 1, "D or C", reDC),
		field("bedrag", 14, "amount with dot decimals", reAmountDot),
		field("tegenrekening", 34, "account number or empty", reAccount),
		text("naam tegenpartij", 70),
		field("rentedatum", 10, "date (YYYYMMDD or YYYY-MM-DD)", reDate),
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
