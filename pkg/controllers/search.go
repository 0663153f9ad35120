package controller

import (
	"github.com/gofiber/fiber/v2"
	_interface "github.com/kmsong-dev/nbsf-go/pkg/interfaces"
	requestDto "github.com/kmsong-dev/nbsf-go/pkg/types/dtos/requests"
	responseDto "github.com/kmsong-dev/nbsf-go/pkg/types/dtos/responses"
	"github.com/kmsong-dev/nbsf-go/pkg/utils"
)

// Search는 검색 요청을 처리하는 핸들러입니다
func Search(searchService _interface.SearchService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.SearchQuery
		if err := utils.ParseAndValidate(c.Queries(), &req); err != nil {
			return err
		}

		limit, offset := utils.PaginationRequest(req.Limit, req.Offset)

		posts, totalResults, err := searchService.SearchBlogPosts(req)
		if err != nil {
			utils.RecordError("search", "upstream")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "검색 중 오류 발생: " + err.Error(),
			})
		}

		var sponsoredResults int
		for _, post := range posts {
			if post.IsSponsored {
				sponsoredResults++
			}
		}

		response := responseDto.Search{
			Keyword:          req.Query,
			TotalResults:     totalResults,
			SponsoredResults: sponsoredResults,
			Page:             offset/limit + 1,
			ItemsPerPage:     limit,
			Posts:            posts,
		}

		return c.JSON(response)
	}
}

// AnalyzeText는 단일 텍스트 판정 핸들러입니다
func AnalyzeText(analyzeService _interface.AnalyzeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.AnalyzeTextParam
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "요청 본문 파싱 실패: "+err.Error())
		}

		isSponsored, probability, indicators := analyzeService.AnalyzeText(req.Text)

		response := responseDto.AnalyzeText{
			IsSponsored: isSponsored,
			Probability: probability,
			Indicators:  indicators,
		}
		return c.JSON(response)
	}
}
