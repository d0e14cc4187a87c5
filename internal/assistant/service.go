package assistant

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kimbiseo/assistant-api/internal/ai"
	"github.com/kimbiseo/assistant-api/internal/business"
)

const (
	SourceOpenAI   = "openai"
	SourceFallback = "fallback"
)

// ErrEmptyCompletion marks a model call that succeeded at the
// transport level but produced no usable text.
var ErrEmptyCompletion = errors.New("model returned no content")

type ChatResult struct {
	Message string
	Source  string
	Role    business.Role
}

// Service orchestrates one chat turn: resolve the dataset, flatten it
// into context, then answer via OpenAI or the local fallback. A nil
// completer means no API key is configured and every request takes
// the fallback path.
type Service struct {
	completer ai.Completer
	log       *zap.Logger
}

func NewService(completer ai.Completer, log *zap.Logger) *Service {
	return &Service{
		completer: completer,
		log:       log,
	}
}

func (s *Service) Chat(ctx context.Context, roleHint string, messages []ai.Message) (*ChatResult, error) {
	resolved := business.Resolve(roleHint)
	contextBlock := business.BuildContext(resolved.Dataset)

	if s.completer == nil {
		return &ChatResult{
			Message: fmt.Sprintf(fallbackTemplate, resolved.DisplayName, lastUserContent(messages), contextBlock),
			Source:  SourceFallback,
			Role:    resolved.Role,
		}, nil
	}

	system := ai.Message{
		Role:    ai.RoleSystem,
		Content: fmt.Sprintf("%s\n\n대상 사업장: %s\n\n데이터셋:\n%s", personaPrompt, resolved.DisplayName, contextBlock),
	}
	prompt := append([]ai.Message{system}, messages...)

	completion, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if completion == "" {
		return nil, ErrEmptyCompletion
	}

	return &ChatResult{
		Message: completion,
		Source:  SourceOpenAI,
		Role:    resolved.Role,
	}, nil
}

// lastUserContent scans from the end for the most recent user turn.
func lastUserContent(messages []ai.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == ai.RoleUser {
			return messages[i].Content
		}
	}
	return noRequestPlaceholder
}

// Metric is one dashboard card.
type Metric struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Helper string `json:"helper,omitempty"`
}

type DashboardResult struct {
	Role        business.Role `json:"role"`
	DisplayName string        `json:"displayName"`
	Metrics     []Metric      `json:"metrics"`
}

// Dashboard summarizes the resolved dataset into the three snapshot
// metrics: latest month revenue, headcount split, next tax due.
func (s *Service) Dashboard(roleHint string) *DashboardResult {
	resolved := business.Resolve(roleHint)
	d := resolved.Dataset

	revenue := Metric{Title: "최근 월 매출", Value: "데이터 없음"}
	if len(d.Financials) > 0 {
		latest := d.Financials[len(d.Financials)-1]
		revenue.Value = business.FormatKRW(latest.GrossRevenue)
		revenue.Helper = latest.Month
	}

	fullTime := 0
	for _, emp := range d.Employees {
		if emp.Type == business.EmployeeFullTime {
			fullTime++
		}
	}
	partTime := len(d.Employees) - fullTime
	headcount := Metric{Title: "현재 팀 구성", Value: fmt.Sprintf("%d명", len(d.Employees))}
	parts := make([]string, 0, 2)
	if fullTime > 0 {
		parts = append(parts, fmt.Sprintf("정직원 %d", fullTime))
	}
	if partTime > 0 {
		parts = append(parts, fmt.Sprintf("알바 %d", partTime))
	}
	headcount.Helper = strings.Join(parts, " · ")

	tax := Metric{Title: "다가오는 세무 일정", Value: "예정 없음", Helper: "세무 일정"}
	if upcoming, ok := nextTaxDue(d.TaxObligations); ok {
		tax.Value = fmt.Sprintf("%d월 %d일 · %s",
			int(upcoming.due.Month()), upcoming.due.Day(), business.FormatKRW(upcoming.item.Amount))
		tax.Helper = upcoming.item.Name
	}

	return &DashboardResult{
		Role:        resolved.Role,
		DisplayName: resolved.DisplayName,
		Metrics:     []Metric{revenue, headcount, tax},
	}
}

type dueTax struct {
	item business.TaxObligation
	due  time.Time
}

func nextTaxDue(taxes []business.TaxObligation) (dueTax, bool) {
	if len(taxes) == 0 {
		return dueTax{}, false
	}
	sorted := make([]dueTax, 0, len(taxes))
	for _, t := range taxes {
		due, err := time.Parse("2006-01-02", t.DueDate)
		if err != nil {
			// Unparseable fixture dates sort last.
			due = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
		}
		sorted = append(sorted, dueTax{item: t, due: due})
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].due.Before(sorted[j].due) })
	return sorted[0], true
}
