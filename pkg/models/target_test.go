package models

import "testing"

func TestRenderQuotesAndBlanks(t *testing.T) {
	r := &TargetRecord{
		Date:  "20200101",
		Debit: "100,00",
		Code:  "XX",
		Payee: "Jane Doe",
		Memo:  "[NL99X] note1",
	}

	want := `"20200101","100,00"," ","XX","Jane Doe","[NL99X] note1"`
	if got := r.Render(); got != want {
		t.Errorf("Render() = %s, want %s", got, want)
	}
}

func TestRenderWithSequenceNumber(t *testing.T) {
	r := &TargetRecord{
		HasNumber: true,
		Number:    "42",
		Date:      "2020-01-01",
		Debit:     "-12,50",
	}

	want := `"42","2020-01-01","-12,50"," "," "," "," "`
	if got := r.Render(); got != want {
		t.Errorf("Render() = %s, want %s", got, want)
	}
}

func TestRecordGetBeyondLength(t *testing.T) {
	r := Record{"a", "b"}
	if got := r.Get(5); got != "" {
		t.Errorf("Get(5) = %q, want empty", got)
	}
	if got := r.Get(-1); got != "" {
		t.Errorf("Get(-1) = %q, want empty", got)
	}
	if got := r.Get(1); got != "b" {
		t.Errorf("Get(1) = %q, want b", got)
	}
}
