package business

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var krw = message.NewPrinter(language.Korean)

// FormatKRW renders a whole-unit KRW amount with locale grouping,
// e.g. 1234567 -> "₩1,234,567".
func FormatKRW(amount int64) string {
	return krw.Sprintf("₩%d", amount)
}

// BuildContext flattens a dataset into the newline-delimited text
// block injected into the model prompt. Deterministic: same dataset,
// same output.
func BuildContext(d *Dataset) string {
	p := d.Profile
	sections := []string{
		fmt.Sprintf("사업장: %s (%s)", p.Name, p.Brand),
		fmt.Sprintf("위치: %s %s %s", p.Location.City, p.Location.District, p.Location.AddressLine1),
		fmt.Sprintf("업종: %s, 개업일: %s", p.Industry, p.FoundedAt),
		financialRangeLine(d.Financials),
		"월 고정비: " + fixedCostLines(d.FixedCosts),
		"직원 및 스케줄:",
		employeeLines(d.Employees),
		"세무 일정:",
		taxLines(d.TaxObligations),
		"주요 상품:",
		productLines(d.Products),
		"기억해야 할 사실:",
		strings.Join(d.RAGFacts, "\n"),
	}
	return strings.Join(sections, "\n")
}

func financialRangeLine(financials []FinancialSnapshot) string {
	if len(financials) == 0 {
		return "재무 데이터가 없습니다."
	}
	first := financials[0]
	last := financials[len(financials)-1]
	return fmt.Sprintf(
		"%s부터 %s까지 매출이 기록되어 있고, 최신 월 매출은 %s입니다.",
		first.Month, last.Month, FormatKRW(last.GrossRevenue),
	)
}

func fixedCostLines(costs []FixedCost) string {
	items := make([]string, 0, len(costs))
	for _, c := range costs {
		items = append(items, fmt.Sprintf("%s (%s): %s", c.Description, c.BillingCycle, FormatKRW(c.Amount)))
	}
	return strings.Join(items, "; ")
}

func employeeLines(employees []Employee) string {
	lines := make([]string, 0, len(employees))
	for _, emp := range employees {
		slots := make([]string, 0, len(emp.Schedule))
		for _, slot := range emp.Schedule {
			slots = append(slots, fmt.Sprintf("%s %s-%s", slot.Day, slot.StartTime, slot.EndTime))
		}

		// Zero-valued pay fields format as ₩0 instead of leaking
		// garbage into the prompt.
		var pay string
		if emp.Type == EmployeeFullTime {
			pay = "월급 " + FormatKRW(emp.MonthlySalary)
		} else {
			pay = "시급 " + FormatKRW(emp.HourlyRate)
		}

		lines = append(lines, fmt.Sprintf(
			"%s %s (%s, %s) - 근무: %s",
			emp.Role, emp.Name, emp.Type.Label(), pay, strings.Join(slots, ", "),
		))
	}
	return strings.Join(lines, "\n")
}

func taxLines(taxes []TaxObligation) string {
	lines := make([]string, 0, len(taxes))
	for _, tax := range taxes {
		lines = append(lines, fmt.Sprintf(
			"%s (%s) - 금액 %s, 납부기한 %s, 상태 %s",
			tax.Name, tax.Period, FormatKRW(tax.Amount), tax.DueDate, tax.Status,
		))
	}
	return strings.Join(lines, "\n")
}

func productLines(products []Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf(
			"%s (%s) - 평균 월 판매 %d개, 마진 %.1f%%, 가격 %s",
			p.Name, p.Category, p.AvgMonthlySales, p.GrossMargin*100, FormatKRW(p.Price),
		))
	}
	return strings.Join(lines, "\n")
}
