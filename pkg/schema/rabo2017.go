package schema

// The 2017 CAMT-based export: 26 columns, header row, a sequence number
// (volgnr) per booking and a signed amount with a comma decimal
// separator instead of a debit/credit letter.
var rabo2017 = &Schema{
	Version:   Rabo2017,
	HasHeader: true,
	Fields: []Field{
		field("IBAN/BBAN", 34, "account number", reAccount),
		field("munt", 3, "currency code", reCurrency),
		field("BIC", 11, "BIC or empty", reBIC),
		field("volgnr", 18, "numeric sequence number or empty", reNumeric),
		field("datum", 10, "date (YYYY-MM-DD)", reDate),
		field("rentedatum", 10, "date (YYYY-MM-DD)", reDate),
		field("bedrag", 18, "signed amount with comma decimals", reAmountCom),
		field("saldo na trn", 18, "signed amount with comma decimals", reAmountCom),
		field("tegenrekening IBAN/BBAN", 34, "account number or empty", reAccount),
		text("naam tegenpartij", 70),
		text("naam uiteindelijke partij", 70),
		text("naam initiërende partij", 70),
		field("BIC tegenpartij", 11, "BIC or empty", reBIC),
		field("code", 2, "two-letter transaction code or empty", reLetters),
		text("batch id", 35),
		text("transactiereferentie", 35),
		text("machtigingskenmerk", 35),
		text("incassant id", 35),
		text("betalingskenmerk", 35),
		text("omschrijving-1", 0),
		text("omschrijving-2", 0),
		text("omschrijving-3", 0),
		text("reden retour", 75),
		field("oorspr bedrag", 18, "amount with comma decimals or empty", reOptAmount),
		field("oorspr munt", 3, "currency code or empty", reOptCurrency),
		field("koers", 12, "exchange rate or empty", reOptAmount),
	},

	Account:        0,
	Date:           4,
	Amount:         6,
	DebitCredit:    -1,
	CounterAccount: 8,
	CounterName:    9,
	Code:           13,
	SeqNo:          3,
	PaymentRef:     18,
	Descriptions:   []int{19, 20, 21},
	Identifiers:    []int{16, 17},
}
