package api

import "testing"

func TestAnalyzeTextExactKeyword(t *testing.T) {
	svc := NewAnalyzeService()

	isSponsored, probability, indicators := svc.AnalyzeText("스폰서로 제공받아 작성한 후기입니다")

	if !isSponsored {
		t.Error("정확 키워드 문장은 협찬으로 판정되어야 합니다")
	}
	if probability < 0.85 {
		t.Errorf("확률 %.2f는 0.85 이상이어야 합니다", probability)
	}
	if len(indicators) != 1 {
		t.Errorf("지표 %d개, 1개여야 합니다", len(indicators))
	}
}

func TestAnalyzeTextNeutral(t *testing.T) {
	svc := NewAnalyzeService()

	isSponsored, probability, indicators := svc.AnalyzeText("오늘 공원에서 산책을 하고 왔습니다")

	if isSponsored {
		t.Error("평범한 문장이 협찬으로 판정되었습니다")
	}
	if probability != 0 {
		t.Errorf("확률 %.2f, 0이어야 합니다", probability)
	}
	if len(indicators) != 0 {
		t.Errorf("지표 %d개, 비어 있어야 합니다", len(indicators))
	}
}

func TestAnalyzeTextSkipsShortOrForeignText(t *testing.T) {
	svc := NewAnalyzeService()

	tests := []struct {
		name string
		text string
	}{
		{"너무 짧은 텍스트", "협찬"},
		{"한국어 없음", "this post was sponsored by a brand"},
		{"빈 텍스트", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isSponsored, probability, indicators := svc.AnalyzeText(tt.text)
			if isSponsored || probability != 0 || len(indicators) != 0 {
				t.Errorf("검사 대상이 아닌 텍스트는 무확신 결과여야 합니다 (%q)", tt.text)
			}
		})
	}
}
