package catalog

import "github.com/freightdash/dashboard-etl/internal/domain"

// ChartSections describes the side-by-side chart sections of the
// Crawling_Data worksheet. Column indices are 0-based sheet positions; the
// first header mapping of each spec identifies the section's date column.
// Raw headers repeat across sections (every index has a "종합지수" column),
// which is why extraction selects columns by position and only uses these
// mappings to name the output fields.
var ChartSections = []domain.SectionSpec{
	{
		Name:         "KCCI",
		HeaderRow:    chartHeaderRow,
		DateCol:      0,
		DataStartCol: 1,
		DataEndCol:   14,
		Headers: []domain.HeaderMapping{
			{Raw: "종합지수(Point)와 그 외 항로별($/FEU)", Canonical: "KCCI_날짜"},
			{Raw: "종합지수", Canonical: "KCCI_종합지수"},
			{Raw: "미주서안", Canonical: "KCCI_미주서안"},
			{Raw: "미주동안", Canonical: "KCCI_미주동안"},
			{Raw: "유럽", Canonical: "KCCI_유럽"},
			{Raw: "지중해", Canonical: "KCCI_지중해"},
			{Raw: "중동", Canonical: "KCCI_중동"},
			{Raw: "호주", Canonical: "KCCI_호주"},
			{Raw: "남미동안", Canonical: "KCCI_남미동안"},
			{Raw: "남미서안", Canonical: "KCCI_남미서안"},
			{Raw: "남아프리카", Canonical: "KCCI_남아프리카"},
			{Raw: "서아프리카", Canonical: "KCCI_서아프리카"},
			{Raw: "중국", Canonical: "KCCI_중국"},
			{Raw: "일본", Canonical: "KCCI_일본"},
			{Raw: "동남아시아", Canonical: "KCCI_동남아시아"},
		},
	},
	{
		Name:         "SCFI",
		HeaderRow:    chartHeaderRow,
		DateCol:      15,
		DataStartCol: 17,
		DataEndCol:   30,
		Headers: []domain.HeaderMapping{
			// The SCFI date column has an empty raw header in the sheet.
			{Raw: "", Canonical: "SCFI_날짜"},
			{Raw: "종합지수", Canonical: "SCFI_종합지수"},
			{Raw: "미주서안", Canonical: "SCFI_미주서안"},
			{Raw: "미주동안", Canonical: "SCFI_미주동안"},
			{Raw: "북유럽", Canonical: "SCFI_북유럽"},
			{Raw: "지중해", Canonical: "SCFI_지중해"},
			{Raw: "동남아시아", Canonical: "SCFI_동남아시아"},
			{Raw: "중동", Canonical: "SCFI_중동"},
			{Raw: "호주/뉴질랜드", Canonical: "SCFI_호주/뉴질랜드"},
			{Raw: "남아메리카", Canonical: "SCFI_남아메리카"},
			{Raw: "일본서안", Canonical: "SCFI_일본서안"},
			{Raw: "일본동안", Canonical: "SCFI_일본동안"},
			{Raw: "한국", Canonical: "SCFI_한국"},
			{Raw: "동부/서부 아프리카", Canonical: "SCFI_동부/서부 아프리카"},
			{Raw: "남아공", Canonical: "SCFI_남아공"},
		},
	},
	{
		Name:         "WCI",
		HeaderRow:    chartHeaderRow,
		DateCol:      32,
		DataStartCol: 33,
		DataEndCol:   41,
		Headers: []domain.HeaderMapping{
			{Raw: "종합지수와 각 항로별($/FEU)", Canonical: "WCI_날짜"},
			{Raw: "종합지수", Canonical: "WCI_종합지수"},
			{Raw: "상하이 → 로테르담", Canonical: "WCI_상하이 → 로테르담"},
			{Raw: "로테르담 → 상하이", Canonical: "WCI_로테르담 → 상하이"},
			{Raw: "상하이 → 제노바", Canonical: "WCI_상하이 → 제노바"},
			{Raw: "상하이 → 로스엔젤레스", Canonical: "WCI_상하이 → 로스엔젤레스"},
			{Raw: "로스엔젤레스 → 상하이", Canonical: "WCI_로스엔젤레스 → 상하이"},
			{Raw: "상하이 → 뉴욕", Canonical: "WCI_상하이 → 뉴욕"},
			{Raw: "뉴욕 → 로테르담", Canonical: "WCI_뉴욕 → 로테르담"},
			{Raw: "로테르담 → 뉴욕", Canonical: "WCI_로테르담 → 뉴욕"},
		},
	},
	{
		Name:         "IACI",
		HeaderRow:    chartHeaderRow,
		DateCol:      43,
		DataStartCol: 44,
		DataEndCol:   44,
		Headers: []domain.HeaderMapping{
			{Raw: "date", Canonical: "IACI_날짜"},
			{Raw: "종합지수", Canonical: "IACI_종합지수"},
		},
	},
	{
		Name:         "BLANK_SAILING",
		HeaderRow:    chartHeaderRow,
		DateCol:      46,
		DataStartCol: 47,
		DataEndCol:   52,
		Headers: []domain.HeaderMapping{
			{Raw: "Index", Canonical: "BLANK_SAILING_날짜"},
			{Raw: "Gemini Cooperation", Canonical: "BLANK_SAILING_Gemini_Cooperation"},
			{Raw: "MSC", Canonical: "BLANK_SAILING_MSC"},
			{Raw: "OCEAN Alliance", Canonical: "BLANK_SAILING_OCEAN_Alliance"},
			{Raw: "Premier Alliance", Canonical: "BLANK_SAILING_Premier_Alliance"},
			{Raw: "Others/Independent", Canonical: "BLANK_SAILING_Others_Independent"},
			{Raw: "Total", Canonical: "BLANK_SAILING_종합지수"},
		},
	},
	{
		Name:         "FBX",
		HeaderRow:    chartHeaderRow,
		DateCol:      54,
		DataStartCol: 55,
		DataEndCol:   67,
		Headers: []domain.HeaderMapping{
			{Raw: "종합지수와 각 항로별($/FEU)", Canonical: "FBX_날짜"},
			{Raw: "종합지수", Canonical: "FBX_종합지수"},
			{Raw: "중국/동아시아 → 미주서안", Canonical: "FBX_중국/동아시아 → 미주서안"},
			{Raw: "미주서안 → 중국/동아시아", Canonical: "FBX_미주서안 → 중국/동아시아"},
			{Raw: "중국/동아시아 → 미주동안", Canonical: "FBX_중국/동아시아 → 미주동안"},
			{Raw: "미주동안 → 중국/동아시아", Canonical: "FBX_미주동안 → 중국/동아시아"},
			{Raw: "중국/동아시아 → 북유럽", Canonical: "FBX_중국/동아시아 → 북유럽"},
			{Raw: "북유럽 → 중국/동아시아", Canonical: "FBX_북유럽 → 중국/동아시아"},
			{Raw: "중국/동아시아 → 지중해", Canonical: "FBX_중국/동아시아 → 지중해"},
			{Raw: "지중해 → 중국/동아시아", Canonical: "FBX_지중해 → 중국/동아시아"},
			{Raw: "미주동안 → 북유럽", Canonical: "FBX_미주동안 → 북유럽"},
			{Raw: "북유럽 → 미주동안", Canonical: "FBX_북유럽 → 미주동안"},
			{Raw: "유럽 → 남미동안", Canonical: "FBX_유럽 → 남미동안"},
			{Raw: "유럽 → 남미서안", Canonical: "FBX_유럽 → 남미서안"},
		},
	},
	{
		Name:         "XSI",
		HeaderRow:    chartHeaderRow,
		DateCol:      69,
		DataStartCol: 70,
		DataEndCol:   77,
		Headers: []domain.HeaderMapping{
			{Raw: "각 항로별($/FEU)", Canonical: "XSI_날짜"},
			{Raw: "동아시아 → 북유럽", Canonical: "XSI_동아시아 → 북유럽"},
			{Raw: "북유럽 → 동아시아", Canonical: "XSI_북유럽 → 동아시아"},
			{Raw: "동아시아 → 미주서안", Canonical: "XSI_동아시아 → 미주서안"},
			{Raw: "미주서안 → 동아시아", Canonical: "XSI_미주서안 → 동아시아"},
			{Raw: "동아시아 → 남미동안", Canonical: "XSI_동아시아 → 남미동안"},
			{Raw: "북유럽 → 미주동안", Canonical: "XSI_북유럽 → 미주동안"},
			{Raw: "미주동안 → 북유럽", Canonical: "XSI_미주동안 → 북유럽"},
			{Raw: "북유럽 → 남미동안", Canonical: "XSI_북유럽 → 남미동안"},
		},
	},
	{
		Name:         "MBCI",
		HeaderRow:    chartHeaderRow,
		DateCol:      79,
		DataStartCol: 80,
		DataEndCol:   80,
		Headers: []domain.HeaderMapping{
			{Raw: "Index(종합지수)", Canonical: "MBCI_날짜"},
			{Raw: "MBCI", Canonical: "MBCI_종합지수"},
		},
	},
}
