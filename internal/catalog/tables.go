package catalog

import "github.com/freightdash/dashboard-etl/internal/domain"

// SummaryTables describes the weekly summary blocks of the Crawling_Data2
// worksheet. Every block has the same shape: a marker row with the section
// title in column A, the current reading one row below it, and the previous
// reading one row below that. Each route reads the same column in both rows.
var SummaryTables = []domain.TableSpec{
	{
		Name:           "KCCI",
		AnchorText:     "KCCI",
		CurrentOffset:  1,
		PreviousOffset: 2,
		Routes: []domain.RouteColumn{
			{Route: "종합지수", Col: 1},
			{Route: "미주서안", Col: 2},
			{Route: "미주동안", Col: 3},
			{Route: "유럽", Col: 4},
			{Route: "지중해", Col: 5},
			{Route: "중동", Col: 6},
			{Route: "호주", Col: 7},
			{Route: "남미동안", Col: 8},
			{Route: "남미서안", Col: 9},
			{Route: "남아프리카", Col: 10},
			{Route: "서아프리카", Col: 11},
			{Route: "중국", Col: 12},
			{Route: "일본", Col: 13},
			{Route: "동남아시아", Col: 14},
		},
	},
	{
		Name:           "SCFI",
		AnchorText:     "SCFI",
		CurrentOffset:  1,
		PreviousOffset: 2,
		Routes: []domain.RouteColumn{
			{Route: "종합지수", Col: 1},
			{Route: "유럽 (기본항)", Col: 2},
			{Route: "지중해 (기본항)", Col: 3},
			{Route: "미주서안 (기본항)", Col: 4},
			{Route: "미주동안 (기본항)", Col: 5},
			{Route: "페르시아만/홍해 (두바이)", Col: 6},
			{Route: "호주/뉴질랜드 (멜버른)", Col: 7},
			{Route: "동/서 아프리카 (라고스)", Col: 8},
			{Route: "남아프리카 (더반)", Col: 9},
			{Route: "서일본 (기본항)", Col: 10},
			{Route: "동일본 (기본항)", Col: 11},
			{Route: "동남아시아 (싱가포르)", Col: 12},
			{Route: "한국 (부산)", Col: 13},
			{Route: "중남미서안 (만사니요)", Col: 14},
		},
	},
	{
		Name:           "WCI",
		AnchorText:     "WCI",
		CurrentOffset:  1,
		PreviousOffset: 2,
		Routes: []domain.RouteColumn{
			{Route: "종합지수", Col: 1},
			{Route: "상하이 → 로테르담", Col: 2},
			{Route: "로테르담 → 상하이", Col: 3},
			{Route: "상하이 → 제노바", Col: 4},
			{Route: "상하이 → 로스엔젤레스", Col: 5},
			{Route: "로스엔젤레스 → 상하이", Col: 6},
			{Route: "상하이 → 뉴욕", Col: 7},
			{Route: "뉴욕 → 로테르담", Col: 8},
			{Route: "로테르담 → 뉴욕", Col: 9},
		},
	},
	{
		Name:           "IACI",
		AnchorText:     "IACI",
		CurrentOffset:  1,
		PreviousOffset: 2,
		Routes: []domain.RouteColumn{
			{Route: "종합지수", Col: 1},
		},
	},
	{
		Name:           "BLANK_SAILING",
		AnchorText:     "BLANK SAILING",
		CurrentOffset:  1,
		PreviousOffset: 2,
		Routes: []domain.RouteColumn{
			{Route: "Gemini Cooperation", Col: 1},
			{Route: "MSC", Col: 2},
			{Route: "OCEAN Alliance", Col: 3},
			{Route: "Premier Alliance", Col: 4},
			{Route: "Others/Independent", Col: 5},
			{Route: "Total", Col: 6},
		},
	},
	{
		Name:           "FBX",
		AnchorText:     "FBX",
		CurrentOffset:  1,
		PreviousOffset: 2,
		Routes: []domain.RouteColumn{
			{Route: "종합지수", Col: 1},
			{Route: "중국/동아시아 → 미주서안", Col: 2},
			{Route: "미주서안 → 중국/동아시아", Col: 3},
			{Route: "중국/동아시아 → 미주동안", Col: 4},
			{Route: "미주동안 → 중국/동아시아", Col: 5},
			{Route: "중국/동아시아 → 북유럽", Col: 6},
			{Route: "북유럽 → 중국/동아시아", Col: 7},
			{Route: "중국/동아시아 → 지중해", Col: 8},
			{Route: "지중해 → 중국/동아시아", Col: 9},
			{Route: "미주동안 → 북유럽", Col: 10},
			{Route: "북유럽 → 미주동안", Col: 11},
			{Route: "유럽 → 남미동안", Col: 12},
			{Route: "유럽 → 남미서안", Col: 13},
		},
	},
	{
		Name:           "XSI",
		AnchorText:     "XSI",
		CurrentOffset:  1,
		PreviousOffset: 2,
		Routes: []domain.RouteColumn{
			{Route: "동아시아 → 북유럽", Col: 1},
			{Route: "북유럽 → 동아시아", Col: 2},
			{Route: "동아시아 → 미주서안", Col: 3},
			{Route: "미주서안 → 동아시아", Col: 4},
			{Route: "동아시아 → 남미동안", Col: 5},
			{Route: "북유럽 → 미주동안", Col: 6},
			{Route: "미주동안 → 북유럽", Col: 7},
			{Route: "북유럽 → 남미동안", Col: 8},
		},
	},
	{
		Name:           "MBCI",
		AnchorText:     "MBCI",
		CurrentOffset:  1,
		PreviousOffset: 2,
		Routes: []domain.RouteColumn{
			{Route: "MBCI", Col: 6},
		},
	},
}
