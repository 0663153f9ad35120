package utils

import "testing"

func TestNormalizeTextStripsWhitespace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"협 찬", "협찬"},
		{"제공\t받아\n작성", "제공받아작성"},
		{"  plain  ", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeText(tt.input); got != tt.want {
			t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestHasKoreanText(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"협찬 후기입니다", true},
		{"sponsored post", false},
		{"한 a b c", false}, // 연속 두 글자 미만
		{"", false},
	}

	for _, tt := range tests {
		if got := HasKoreanText(tt.input); got != tt.want {
			t.Errorf("HasKoreanText(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestRemoveHTMLTags(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<b>맛집</b> 후기", "맛집 후기"},
		{"줄바꿈<br/>없이", "줄바꿈없이"},
		{"&lt;태그&gt; &amp; 엔티티", "<태그> & 엔티티"},
		{"태그 없음", "태그 없음"},
	}

	for _, tt := range tests {
		if got := RemoveHTMLTags(tt.input); got != tt.want {
			t.Errorf("RemoveHTMLTags(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
