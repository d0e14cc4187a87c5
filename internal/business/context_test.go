package business

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalDataset() *Dataset {
	return &Dataset{
		Profile: Profile{
			Name:      "테스트 가게",
			Brand:     "Test",
			Industry:  IndustryRetail,
			FoundedAt: "2024-01-01",
			Location:  Location{City: "서울", District: "중구", AddressLine1: "테스트로 1"},
		},
	}
}

func TestFormatKRW(t *testing.T) {
	assert.Equal(t, "₩1,234,567", FormatKRW(1_234_567))
	assert.Equal(t, "₩0", FormatKRW(0))
	assert.Equal(t, "₩4,500", FormatKRW(4_500))
}

func TestBuildContext_Deterministic(t *testing.T) {
	resolved := Resolve("cafe-owner")

	first := BuildContext(resolved.Dataset)
	second := BuildContext(resolved.Dataset)

	assert.Equal(t, first, second)
}

func TestBuildContext_SectionOrder(t *testing.T) {
	out := BuildContext(Resolve("").Dataset)

	headers := []string{
		"사업장:",
		"위치:",
		"업종:",
		"월 고정비:",
		"직원 및 스케줄:",
		"세무 일정:",
		"주요 상품:",
		"기억해야 할 사실:",
	}

	last := -1
	for _, header := range headers {
		idx := strings.Index(out, header)
		require.GreaterOrEqual(t, idx, 0, "missing section %q", header)
		assert.Greater(t, idx, last, "section %q out of order", header)
		last = idx
	}
}

func TestBuildContext_FinancialRange(t *testing.T) {
	out := BuildContext(Resolve("").Dataset)

	assert.Contains(t, out, "2024-11부터 2025-04까지 매출이 기록되어 있고")
	assert.Contains(t, out, "최신 월 매출은 ₩28,400,000입니다.")
}

func TestBuildContext_EmptyFinancials(t *testing.T) {
	d := minimalDataset()

	out := BuildContext(d)

	assert.Contains(t, out, "재무 데이터가 없습니다.")
	assert.NotContains(t, out, "부터")
}

func TestBuildContext_PartTimeWithoutRate(t *testing.T) {
	d := minimalDataset()
	d.Employees = []Employee{
		{
			Name: "홍길동",
			Role: "바리스타",
			Type: EmployeePartTime,
			Schedule: []ScheduleSlot{
				{Day: Sat, StartTime: "10:00", EndTime: "14:00", TotalHours: 4},
			},
		},
	}

	out := BuildContext(d)

	assert.Contains(t, out, "바리스타 홍길동 (알바, 시급 ₩0) - 근무: 토 10:00-14:00")
}

func TestBuildContext_FullTimeWithoutSalary(t *testing.T) {
	d := minimalDataset()
	d.Employees = []Employee{
		{Name: "김직원", Role: "매니저", Type: EmployeeFullTime},
	}

	out := BuildContext(d)

	assert.Contains(t, out, "매니저 김직원 (정직원, 월급 ₩0)")
}

func TestBuildContext_EmployeeLine(t *testing.T) {
	out := BuildContext(Resolve("").Dataset)

	assert.Contains(t, out, "매니저 박서준 (정직원, 월급 ₩2,900,000) - 근무: 월 08:00-17:00, 화 08:00-17:00, 수 08:00-17:00, 목 08:00-17:00, 금 08:00-17:00")
	assert.Contains(t, out, "바리스타 이하늘 (알바, 시급 ₩11,000) - 근무: 토 09:00-15:00, 일 09:00-15:00")
}

func TestBuildContext_TaxAndProductLines(t *testing.T) {
	out := BuildContext(Resolve("").Dataset)

	assert.Contains(t, out, "부가가치세 예정신고 (2025년 1기 예정) - 금액 ₩3,120,000, 납부기한 2025-04-25, 상태 예정")
	assert.Contains(t, out, "시그니처 김비서 라떼 (signature) - 평균 월 판매 1240개, 마진 72.0%, 가격 ₩6,500")
}

func TestBuildContext_FixedCostLine(t *testing.T) {
	out := BuildContext(Resolve("").Dataset)

	assert.Contains(t, out, "월 고정비: 매장 월세 (monthly): ₩3,300,000; 전기·수도 요금 (monthly): ₩480,000")
}

func TestBuildContext_RAGFactsVerbatim(t *testing.T) {
	resolved := Resolve("it-founder")

	out := BuildContext(resolved.Dataset)

	for _, fact := range resolved.Dataset.RAGFacts {
		assert.Contains(t, out, fact)
	}
}
