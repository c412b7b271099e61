package model

import "testing"

func TestNewTokenDefaults(t *testing.T) {
	tk := NewToken("ほげ", []string{"名詞"})
	if tk.POS != "名詞" {
		t.Errorf("POS = %q, want 名詞", tk.POS)
	}
	if tk.POSDetail1 != "*" || tk.POSDetail2 != "*" || tk.POSDetail3 != "*" {
		t.Errorf("detail fields = %q,%q,%q, want *", tk.POSDetail1, tk.POSDetail2, tk.POSDetail3)
	}
	if tk.ConjugatedType != "*" || tk.ConjugatedForm != "*" {
		t.Errorf("conjugation = %q,%q, want *", tk.ConjugatedType, tk.ConjugatedForm)
	}
	if tk.BasicForm != "ほげ" {
		t.Errorf("BasicForm = %q, want surface", tk.BasicForm)
	}
	if tk.Reading != "" || tk.Pronunciation != "" {
		t.Errorf("reading/pronunciation = %q/%q, want empty", tk.Reading, tk.Pronunciation)
	}
}

func TestNewTokenFullAndExtraFields(t *testing.T) {
	fields := []string{"動詞", "自立", "*", "*", "五段・ラ行", "基本形", "のぼる", "ノボル", "ノボル", "extra", "more"}
	tk := NewToken("のぼる", fields)
	want := Token{
		Surface:        "のぼる",
		POS:            "動詞",
		POSDetail1:     "自立",
		POSDetail2:     "*",
		POSDetail3:     "*",
		ConjugatedType: "五段・ラ行",
		ConjugatedForm: "基本形",
		BasicForm:      "のぼる",
		Reading:        "ノボル",
		Pronunciation:  "ノボル",
	}
	if tk != want {
		t.Errorf("NewToken() = %+v, want %+v", tk, want)
	}
}

func TestNewTokenEmptyFields(t *testing.T) {
	tk := NewToken("。", nil)
	if tk.POS != "" || tk.BasicForm != "。" || tk.Detail() != "*,*,*" {
		t.Errorf("NewToken(nil) = %+v", tk)
	}
}

func TestTokenDetail(t *testing.T) {
	tk := NewToken("さん", []string{"名詞", "接尾", "人名"})
	if got := tk.Detail(); got != "接尾,人名,*" {
		t.Errorf("Detail() = %q, want %q", got, "接尾,人名,*")
	}
}
