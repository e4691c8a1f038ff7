package dictation

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "punctuation and spaces stripped",
			input:    " 안녕, 하세요! ",
			expected: "안녕하세요",
		},
		{
			name:     "question mark stripped",
			input:    "밥 먹었어요?",
			expected: "밥먹었어요",
		},
		{
			name:     "interior whitespace removed",
			input:    "오늘은 날씨가 참 맑습니다.",
			expected: "오늘은날씨가참맑습니다",
		},
		{
			name:     "tabs and newlines removed",
			input:    "학교에\t갑니다\n",
			expected: "학교에갑니다",
		},
		{
			name:     "decomposed jamo composes to syllable",
			input:    "한", // ㅎ + ㅏ + ㄴ
			expected: "한",
		},
		{
			name:     "only punctuation",
			input:    "?!.,",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		" 안녕, 하세요! ",
		"동생과 함께 시장에 갔습니다.",
		"한글", // decomposed 한글
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		target string
		want   bool
	}{
		{"exact", "안녕하세요", "안녕하세요", true},
		{"spacing differences ignored", "안녕 하세요", "안녕하세요.", true},
		{"wrong syllable", "안녕하셰요", "안녕하세요", false},
		{"empty answer against sentence", "", "안녕하세요", false},
		{"decomposed input matches composed target", "한글", "한글", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.answer, tt.target); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.answer, tt.target, got, tt.want)
			}
		})
	}
}
