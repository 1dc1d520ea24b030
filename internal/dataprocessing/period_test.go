package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPeriod(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  PeriodForm
	}{
		{name: "quarter with dash", input: "2025-Q1", want: QuarterForm},
		{name: "quarter with slash", input: "2025/Q3", want: QuarterForm},
		{name: "quarter without separator", input: "2025Q4", want: QuarterForm},
		{name: "quarter lowercase", input: "2024q2", want: QuarterForm},
		{name: "quarter five", input: "2025-Q5", want: NotAPeriod},
		{name: "iso date dashes", input: "2025-03-31", want: IsoForm},
		{name: "iso month dashes", input: "2025-03", want: IsoForm},
		{name: "iso date slashes", input: "2025/03/31", want: IsoForm},
		{name: "iso mixed separators", input: "2025-03/31", want: NotAPeriod},
		{name: "polish numeric date", input: "31.03.2025", want: PolishDateForm},
		{name: "polish long form date", input: "31 marca 2025 r.", want: PolishDateForm},
		{name: "bare year", input: "2025", want: YearOnlyForm},
		{name: "bare year with spaces", input: " 2024 ", want: YearOnlyForm},
		{name: "free text", input: "brak danych", want: NotAPeriod},
		{name: "empty", input: "", want: NotAPeriod},
		{name: "five digits", input: "20255", want: NotAPeriod},
		{name: "measure-like header", input: "Q1 2025", want: NotAPeriod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPeriod(tt.input))
		})
	}
}

func TestIsPeriodToken_QuarterGrid(t *testing.T) {
	for _, q := range []string{"2024-Q1", "2024Q2", "2025-q3", "2025q4", "2024/Q1"} {
		assert.True(t, IsPeriodToken(q), q)
	}
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   int
		wantOK bool
	}{
		{name: "quarter", input: "2025-Q1", want: 2025, wantOK: true},
		{name: "dotted date", input: "31.03.2025", want: 2025, wantOK: true},
		{name: "dotted date wins over leading digits", input: "01.01.2024", want: 2024, wantOK: true},
		{name: "year inside text", input: "jakiś 2025 tekst", want: 2025, wantOK: true},
		{name: "leading year with garbage suffix", input: "2024 (wstępne)", want: 2024, wantOK: true},
		{name: "no year", input: "brak danych", wantOK: false},
		{name: "short digits only", input: "123", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractYear(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
