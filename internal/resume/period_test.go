package resume

import "testing"

func TestParsePeriod(t *testing.T) {
	cases := []struct {
		in   string
		want Period
	}{
		{"07/2023 - Present", Period{Start: "07/2023", Current: true}},
		{"10/2021 - 03/2023", Period{Start: "10/2021", End: "03/2023"}},
		{"2020", Period{Start: "2020"}},
		{"", Period{}},
	}
	for _, tc := range cases {
		if got := ParsePeriod(tc.in); got != tc.want {
			t.Errorf("ParsePeriod(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestPeriodFormatRoundTrip(t *testing.T) {
	inputs := []string{
		"07/2023 - Present",
		"10/2021 - 03/2023",
		"2020",
	}
	for _, in := range inputs {
		if got := ParsePeriod(in).Format(); got != in {
			t.Errorf("round trip %q -> %q", in, got)
		}
	}
}

func TestPeriodFormatWithoutEnd(t *testing.T) {
	p := Period{Start: "05/2024"}
	if got := p.Format(); got != "05/2024" {
		t.Errorf("Format() = %q, want start only", got)
	}
}

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		in   string
		want Language
	}{
		{"English", Language{Name: "English", Proficiency: "Fluent"}},
		{"German (Basic)", Language{Name: "German", Proficiency: "Basic"}},
		{"French ()", Language{Name: "French", Proficiency: "Fluent"}},
		{"  Hindi  ", Language{Name: "Hindi", Proficiency: "Fluent"}},
	}
	for _, tc := range cases {
		if got := ParseLanguage(tc.in); got != tc.want {
			t.Errorf("ParseLanguage(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestLanguageFormat(t *testing.T) {
	if got := (Language{Name: "German", Proficiency: "Basic"}).Format(); got != "German (Basic)" {
		t.Errorf("Format() = %q", got)
	}
	// 默认熟练度不追加括号，保证内置文档往返一致。
	if got := (Language{Name: "English", Proficiency: "Fluent"}).Format(); got != "English" {
		t.Errorf("Format() = %q", got)
	}
}
