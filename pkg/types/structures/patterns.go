package structure

// 정확한 협찬 키워드 (발견 즉시 단일 지표로 확정)
var EXACT_SPONSOR_KEYWORDS = []string{
	"원고료",
	"소정의",
	"체험단",
	"협찬",
	"스폰서",
	"제공받아",
	// ocr로 잘못 읽었지만 협찬 패턴
	"[현산",
	"현찬",
	"[.싫헐진",
}

// SpecialCasePattern은 두 용어 그룹의 동시 출현 규칙을 정의합니다
type SpecialCasePattern struct {
	Name   string
	Terms1 []string
	Terms2 []string
}

// SPECIAL_CASE_PATTERNS는 특수한 경우의 협찬 패턴을 정의합니다.
// 슬라이스 순서가 지표 출력 순서를 고정합니다
var SPECIAL_CASE_PATTERNS = []SpecialCasePattern{
	{
		Name:   "업체 + 지원/제공",
		Terms1: []string{"업체"},
		Terms2: []string{"지원", "제공"},
	},
	{
		Name:   "후기 + 지원/제공",
		Terms1: []string{"후기"},
		Terms2: []string{"지원", "제공"},
	},
	{
		Name:   "광고 + 콘텐츠",
		Terms1: []string{"광고"},
		Terms2: []string{"콘텐츠", "포스팅", "게시물"},
	},
	{
		Name:   "AD + 포스팅",
		Terms1: []string{"ad"},
		Terms2: []string{"포스팅", "콘텐츠", "게시물"},
	},
}

// WeightedKeyword는 단일 키워드와 그 가중치 한 쌍입니다
type WeightedKeyword struct {
	Keyword string
	Weight  float64
}

// 협찬 단일 키워드 (모호하고 일반적인 단어일수록 낮은 가중치).
// 슬라이스 순서가 지표 출력 순서를 고정합니다
var SPONSOR_KEYWORDS = []WeightedKeyword{
	// 협찬 관련 키워드
	{"체험", 0.3},
	{"지원", 0.4},
	{"제공", 0.4},
	{"무상", 0.4},
	{"무료제공", 0.6},
	{"고료", 0.6},
	{"제품제공", 0.7},
	// 유료 광고 관련 키워드
	{"광고", 0.01},
	{"유료광고", 0.8},
	// 공통 키워드 (매우 낮은 가중치)
	{"작성", 0.01},
	{"후기", 0.01},
	{"받았습니다", 0.2},
	{"받아", 0.01},
	{"받고", 0.01},
	{"로부터", 0.01},
	{"업체", 0.4},
	{"업제", 0.4},
}

// KeywordWeight는 키워드의 가중치를 조회합니다
func KeywordWeight(keyword string) float64 {
	for _, wk := range SPONSOR_KEYWORDS {
		if wk.Keyword == keyword {
			return wk.Weight
		}
	}
	return 0
}

// 협찬 문구 정규식 패턴 (토큰 경계가 필요해 원문 텍스트에 적용)
var SPONSOR_TEXT_PATTERNS = []string{
	`(제공|지원)\s*받아`,
	`(원고료|소정의).{0,10}(제공|지원)`,
	`(체험|방문).{0,10}후기`,
	`(업체|제품).{0,10}(제공|지원)`,
	`(무상|무료).{0,10}(제공|지원)`,
	`(협찬|스폰서).{0,10}(포스팅|후기)`,
	`업체.{0,15}(제공|지원)받아`,
	`(제공|지원).{0,5}받아.{0,10}후기`,
}

// 협찬 관련 클래스 패턴
var SPONSOR_CLASS_PATTERNS = []string{
	`sponsor`,
	`ad-tag`,
	`promotion`,
	`체험단`,
	`협찬`,
	`revu`,
	`advertisement`,
	`paid`,
	`ppl`,
	`ad-content`,
}

// 협찬과 무관한 클래스 패턴 (구조 스캔에서 제외)
var NON_SPONSOR_CLASS_PATTERNS = []string{
	`buddy`,
	`loading`,
	`head`,
	`map`,
	`lazy`,
}

// 학술/정보성 문맥 용어 (일반 키워드 오탐을 완화하는 데 사용)
var ACADEMIC_CONTEXT_TERMS = []string{
	"연구",
	"강의",
	"참고",
	"자료",
	"논문",
	"아카이브",
	"research",
	"lecture",
	"reference",
	"archive",
}
