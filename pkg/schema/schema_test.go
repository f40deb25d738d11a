package schema

import "testing"

func TestGetUnknownVersion(t *testing.T) {
	if _, err := Get("rabo1999"); err == nil {
		t.Error("expected an error for an unknown version")
	}
}

func TestColumnCounts(t *testing.T) {
	counts := map[Version]int{
		Rabo2012: 19,
		Rabo2013: 19,
		Rabo2017: 26,
	}

	for v, want := range counts {
		s, err := Get(v)
		if err != nil {
			t.Fatalf("Get(%s) failed: %v", v, err)
		}
		if len(s.Fields) != want {
			t.Errorf("%s has %d fields, want %d", v, len(s.Fields), want)
		}
	}
}

func TestAccountRule(t *testing.T) {
	s, _ := Get(Rabo2012)
	f := s.Fields[s.Account]

	for _, ok := range []string{"", "123456789", "NL00RABO0123456789", "NL99X"} {
		if !f.Matches(ok) {
			t.Errorf("account rule rejected %q", ok)
		}
	}
	for _, bad := range []string{"nl00rabo", "NL0A1234", "12-34"} {
		if f.Matches(bad) {
			t.Errorf("account rule accepted %q", bad)
		}
	}
}

func TestAmountRulesPerVersion(t *testing.T) {
	v2012, _ := Get(Rabo2012)
	if !v2012.Fields[v2012.Amount].Matches("100.00") {
		t.Error("rabo2012 should accept dot decimals")
	}
	if v2012.Fields[v2012.Amount].Matches("100,00") {
		t.Error("rabo2012 should reject comma decimals")
	}

	v2017, _ := Get(Rabo2017)
	if !v2017.Fields[v2017.Amount].Matches("-12,50") {
		t.Error("rabo2017 should accept signed comma decimals")
	}
	if v2017.Fields[v2017.Amount].Matches("12.50") {
		t.Error("rabo2017 should reject dot decimals")
	}
}

func TestTransformPositionsInsideLayout(t *testing.T) {
	for _, v := range Versions() {
		s, _ := Get(v)

		positions := append([]int{s.Account, s.Date, s.Amount, s.CounterAccount, s.CounterName, s.Code}, s.Descriptions...)
		positions = append(positions, s.Identifiers...)
		for _, i := range positions {
			if i < 0 || i >= len(s.Fields) {
				t.Errorf("%s: position %d outside layout of %d fields", v, i, len(s.Fields))
			}
		}
	}
}

func TestOnlyNewestHasHeaderAndSeqNo(t *testing.T) {
	for _, v := range []Version{Rabo2012, Rabo2013} {
		s, _ := Get(v)
		if s.HasHeader || s.SeqNo != -1 || s.PaymentRef != -1 || s.DebitCredit < 0 {
			t.Errorf("%s: unexpected layout traits %+v", v, s)
		}
	}

	s, _ := Get(Rabo2017)
	if !s.HasHeader || s.SeqNo < 0 || s.PaymentRef < 0 || s.DebitCredit != -1 {
		t.Errorf("rabo2017: unexpected layout traits")
	}
}
