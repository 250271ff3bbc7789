package i18n

import "testing"

func TestTable_KnownLanguages(t *testing.T) {
	for _, lang := range []Language{English, Hindi, Gujarati} {
		s := Table(lang)
		if s.AppTitle == "" || s.DashBMICalc == "" {
			t.Errorf("table for %q has empty required strings: %+v", lang, s)
		}
	}
}

func TestTable_FallbackToEnglish(t *testing.T) {
	got := Table("fr")
	want := Table(English)
	if got != want {
		t.Errorf("unknown language should fall back to English, got %+v", got)
	}
}

func TestValid(t *testing.T) {
	if !Valid(Hindi) {
		t.Error("hi should be valid")
	}
	if Valid("xx") {
		t.Error("xx should not be valid")
	}
}
