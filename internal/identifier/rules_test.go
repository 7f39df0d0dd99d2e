package identifier

import "testing"

func TestDefaultRulesCorrectKnownIdentifiers(t *testing.T) {
	n := DefaultNormalizer()
	if n.Len() != 21 {
		t.Fatalf("expected 21 rules, got %d", n.Len())
	}
	tests := []struct {
		in   string
		want string
	}{
		{"Simor 2010-05-25", "Simor 2010-05-26"},
		{"Mario 2012-07-26", "Draghi 2012-07-26"},
		{"PM 2013-01-23", "Cameron 2013-01-23"},
		{"Thorning 2012-01-18", "Thorning-Schmidt 2012-01-18"},
		{"Remarks 2009-12-11", "Honohan 2009-12-11"},
		{"This 2013-02-11", "Cameron 2013-02-11"},
		{"Mervyn 2010-06-16", "King 2010-06-16"},
		{"Patrick 2013-03-19", "Honohan 2013-03-19"},
		{"Statement 2014-12-18", "Kenny 2014-12-19"},
		{"Speech 2012-06-29", "Cameron 2012-06-29"},
		{"The 2012-01-30", "Cameron 2012-01-30"},
		{"Orban 2014-07-26", "Orbán 2014-07-26"},
		{"The 2014-10-24", "Cameron 2014-10-24"},
		{"Speech 2013-03-07", "Kenny 2013-07-03"},
		{"David 2014-11-10", "Cameron 2014-11-10"},
		{"Statement 2012-07-04", "Kenny 2012-07-04"},
		{"Schröder 2003-03-14", "Schroeder 2003-03-14"},
		{"Schröder 1998-12-14", "Schroeder 1999-12-14"},
		{"Schroeder 2001-10-26", "Schroeder 2001-10-16"},
		{"Hollande 2015-05-19", "Hollande 2015-03-19"},
		{"Fernandez 2009-11-23", "Fernández Ordóñez  2009-11-23"},
	}
	for _, tt := range tests {
		if got := n.Normalize(tt.in); got != tt.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePassesThroughUnaffected(t *testing.T) {
	n := DefaultNormalizer()
	for _, in := range []string{"Merkel 2011-10-26", "Cameron 2012-06-29", "", "PMs 2013-01-23", "The 2015-01-01"} {
		if got := n.Normalize(in); got != in {
			t.Fatalf("Normalize(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestNormalizeAnchoredRules(t *testing.T) {
	n := DefaultNormalizer()
	if got := n.Normalize("Super Mario 2012-07-26"); got != "Super Mario 2012-07-26" {
		t.Fatalf("anchored rule applied mid-string: %q", got)
	}
}

func TestNewNormalizerRejectsBadPattern(t *testing.T) {
	if _, err := NewNormalizer([]Rule{{Pattern: "(", Replacement: ""}}); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestNormalizerAppliesRulesInOrder(t *testing.T) {
	n, err := NewNormalizer([]Rule{{"a", "b"}, {"b", "c"}})
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}
	if got := n.Normalize("a"); got != "c" {
		t.Fatalf("Normalize(a) = %q, want c", got)
	}
}
