package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kmsong-dev/nbsf-go/pkg/configs"
	_interface "github.com/kmsong-dev/nbsf-go/pkg/interfaces"
	structure "github.com/kmsong-dev/nbsf-go/pkg/types/structures"
	"github.com/kmsong-dev/nbsf-go/pkg/utils"
)

// NaverAPIClient는 네이버 검색 API 요청을 처리하는 클라이언트입니다.
type NaverAPIClient struct {
	_interface.Service
}

// NewNaverAPIClient는 새로운 네이버 API 클라이언트를 생성합니다.
func NewNaverAPIClient(config *configs.EnvConfig) *NaverAPIClient {
	return &NaverAPIClient{
		Service: _interface.Service{
			Client: &http.Client{
				Timeout: time.Second * 10,
			},
			Config: config,
		},
	}
}

// SearchBlog는 네이버 블로그 검색 API를 호출하여 결과를 반환합니다.
func (c *NaverAPIClient) SearchBlog(query string, display int, start int) (*structure.NaverSearchResponse, error) {
	searchURL := c.Config.Naver.SearchURL

	params := url.Values{}
	params.Add("query", query)
	params.Add("display", fmt.Sprintf("%d", display))
	params.Add("start", fmt.Sprintf("%d", start))
	params.Add("sort", "sim") // 정확도순 정렬

	reqURL := searchURL + "?" + params.Encode()

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("요청 생성 실패: %v", err)
	}

	// API 인증 헤더 추가
	req.Header.Add("X-Naver-Client-Id", c.Config.Naver.ClientID)
	req.Header.Add("X-Naver-Client-Secret", c.Config.Naver.ClientSecret)

	start2 := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		utils.RecordApiCall("naver_search", 0, time.Since(start2).Seconds())
		return nil, fmt.Errorf("요청 실행 실패: %v", err)
	}
	defer resp.Body.Close()

	utils.RecordApiCall("naver_search", resp.StatusCode, time.Since(start2).Seconds())

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("응답 읽기 실패: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API 오류 (%d): %s", resp.StatusCode, string(body))
	}

	var searchResp structure.NaverSearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("응답 파싱 실패: %v", err)
	}

	return &searchResp, nil
}
