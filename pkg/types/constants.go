package constants

import "time"

// 스티커/배지 호스팅 도메인 패턴
var STICKER_DOMAINS = []string{
	"storep-phinf.pstatic.net",
	"post-phinf.pstatic.net",
	"ssl.pstatic.net",
	"cometoplay.kr",
	"reviewnote.co.kr",
}

// 협찬 업체(배지 발급) 도메인 패턴
var SPONSOR_DOMAINS = []string{
	"cometoplay.kr",
	"xn--939au0g4vj8sq.net",
	"revu.net",
	"storyn.kr",
	"dinnerqueen.net",
	"reviewnote.co.kr",
	"ringble",
}

// 네이버 이미지 호스트 패턴
var NAVER_IMAGE_PATTERNS = []string{
	"blogfiles.naver.net",
	"postfiles.pstatic.net",
	"phinf.pstatic.net",
}

// 본문 이미지에서 제외할 패턴 (지도, 아이콘, 프로필 등)
var EXCLUDE_IMAGE_PATTERNS = []string{
	"simg.pstatic.net",
	"icon",
	"profile",
	"avatar",
	"logo",
	"blank.gif",
	"emot",
}

// 스티커 클래스 패턴
var STICKER_CLASSES = []string{
	"se-sticker",
	"sticker",
	"_img",
	"sponsor-tag",
	"ad-tag",
}

// 콘텐츠 영역 선택자 (우선순위 순)
var CONTENT_SELECTORS = []string{
	".se-main-container", // 스마트에디터 2.0
	".post_ct",           // 구버전 모바일
	"#viewTypeSelector",  // 구버전 PC
	".se_component_wrap", // 구버전 PC (스마트에디터 1.0)
	".se-module-text",    // 텍스트 모듈
	".sect_dsc",          // 모바일 본문
	".se_card_container", // 카드 컨테이너
	"#postViewArea",      // 일반 포스트
	".post-content",      // 일반적인 블로그 본문 클래스
}

// 인용구 선택자 (우선순위 순)
var QUOTATION_SELECTORS = []string{
	".se-quotation-container", // 스마트에디터 2.0 인용구
	"blockquote",              // 일반 인용구
}

// 문단 선택자 (우선순위 순)
var PARAGRAPH_SELECTORS = []string{
	".se-text-paragraph", // 스마트에디터 2.0 문단
	".se-module-text p",  // 스마트에디터 모듈 내 문단
	".post_ct p",         // 일반 모바일 블로그 문단
	".sect_dsc p",        // 모바일 본문 문단
	"p",                  // 일반 문단 태그
}

// 접근 차단 페이지 마커
var BLOCK_MARKERS = []string{
	"비정상적인 접근",
	"로봇",
	"자동화된 접근",
}

// 네트워크 타임아웃
var (
	CRAWL_TIMEOUT = 10 * time.Second
	IMAGE_TIMEOUT = 30 * time.Second
)

// 동시 처리 포스트 수 제한
const MAX_CONCURRENT_POSTS = 5

// 첫 문단/인용구로 인정하는 최소 텍스트 길이
const MIN_PARAGRAPH_LENGTH = 5

// 구조 스캔 시 기록할 텍스트 발췌 최대 길이
const ELEMENT_EXCERPT_LENGTH = 100
