package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/kimbiseo/assistant-api/internal/ai"
	"github.com/kimbiseo/assistant-api/internal/business"
)

type fakeCompleter struct {
	reply string
	err   error
	got   []ai.Message
}

var _ ai.Completer = (*fakeCompleter)(nil)

func (f *fakeCompleter) Complete(_ context.Context, messages []ai.Message) (string, error) {
	f.got = messages
	return f.reply, f.err
}

func TestChat_FallbackMode(t *testing.T) {
	svc := NewService(nil, zaptest.NewLogger(t))

	result, err := svc.Chat(context.Background(), "", []ai.Message{
		{Role: ai.RoleUser, Content: "이번 달 부가세 얼마야?"},
	})

	require.NoError(t, err)
	assert.Equal(t, SourceFallback, result.Source)
	assert.Equal(t, business.RoleCafeOwner, result.Role)
	assert.Contains(t, result.Message, "이번 달 부가세 얼마야?")
	assert.Contains(t, result.Message, "카페 김비서랩 사장님")
	assert.Contains(t, result.Message, "사업장: 카페 김비서랩")
	assert.Contains(t, result.Message, "OPENAI_API_KEY")
}

func TestChat_FallbackUsesLastUserTurn(t *testing.T) {
	svc := NewService(nil, zaptest.NewLogger(t))

	result, err := svc.Chat(context.Background(), "", []ai.Message{
		{Role: ai.RoleUser, Content: "첫 번째 질문"},
		{Role: ai.RoleAssistant, Content: "첫 번째 답변"},
		{Role: ai.RoleUser, Content: "두 번째 질문"},
	})

	require.NoError(t, err)
	assert.Contains(t, result.Message, "요청: 두 번째 질문")
	assert.NotContains(t, result.Message, "요청: 첫 번째 질문")
}

func TestChat_FallbackWithoutUserTurn(t *testing.T) {
	svc := NewService(nil, zaptest.NewLogger(t))

	result, err := svc.Chat(context.Background(), "", []ai.Message{
		{Role: ai.RoleAssistant, Content: "안녕하세요"},
	})

	require.NoError(t, err)
	assert.Contains(t, result.Message, "요청: 요청 없음")
}

func TestChat_FallbackResolvesITFounder(t *testing.T) {
	svc := NewService(nil, zaptest.NewLogger(t))

	result, err := svc.Chat(context.Background(), "it-founder", []ai.Message{
		{Role: ai.RoleUser, Content: "이번 분기 투자 집행 현황 정리해줘"},
	})

	require.NoError(t, err)
	assert.Equal(t, business.RoleITFounder, result.Role)
	assert.Contains(t, result.Message, "서울체인랩스 대표님")
}

func TestChat_OpenAIPromptShape(t *testing.T) {
	fake := &fakeCompleter{reply: "4월 예정 부가세는 312만원입니다."}
	svc := NewService(fake, zaptest.NewLogger(t))

	incoming := []ai.Message{
		{Role: ai.RoleUser, Content: "부가세 언제까지 내야 해?"},
		{Role: ai.RoleAssistant, Content: "4월 25일까지입니다."},
		{Role: ai.RoleUser, Content: "금액은?"},
	}

	result, err := svc.Chat(context.Background(), "cafe-owner", incoming)

	require.NoError(t, err)
	assert.Equal(t, SourceOpenAI, result.Source)
	assert.Equal(t, "4월 예정 부가세는 312만원입니다.", result.Message)

	require.Len(t, fake.got, len(incoming)+1)
	system := fake.got[0]
	assert.Equal(t, ai.RoleSystem, system.Role)
	assert.Contains(t, system.Content, "김비서")
	assert.Contains(t, system.Content, "대상 사업장: 카페 김비서랩 사장님")
	assert.Contains(t, system.Content, "데이터셋:")
	assert.True(t, strings.Contains(system.Content, "사업장: 카페 김비서랩"))

	// Incoming turns are forwarded verbatim after the system message.
	assert.Equal(t, incoming, fake.got[1:])
}

func TestChat_EmptyCompletion(t *testing.T) {
	svc := NewService(&fakeCompleter{reply: ""}, zaptest.NewLogger(t))

	_, err := svc.Chat(context.Background(), "", []ai.Message{
		{Role: ai.RoleUser, Content: "질문"},
	})

	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestChat_CompleterError(t *testing.T) {
	boom := errors.New("network down")
	svc := NewService(&fakeCompleter{err: boom}, zaptest.NewLogger(t))

	_, err := svc.Chat(context.Background(), "", []ai.Message{
		{Role: ai.RoleUser, Content: "질문"},
	})

	assert.ErrorIs(t, err, boom)
}

func TestDashboard_CafeMetrics(t *testing.T) {
	svc := NewService(nil, zaptest.NewLogger(t))

	result := svc.Dashboard("")

	assert.Equal(t, business.RoleCafeOwner, result.Role)
	assert.Equal(t, "카페 김비서랩 사장님", result.DisplayName)
	require.Len(t, result.Metrics, 3)

	revenue := result.Metrics[0]
	assert.Equal(t, "최근 월 매출", revenue.Title)
	assert.Equal(t, "₩28,400,000", revenue.Value)
	assert.Equal(t, "2025-04", revenue.Helper)

	headcount := result.Metrics[1]
	assert.Equal(t, "3명", headcount.Value)
	assert.Equal(t, "정직원 1 · 알바 2", headcount.Helper)

	tax := result.Metrics[2]
	// Earliest due date across the cafe obligations is 2025-04-10.
	assert.Equal(t, "4월 10일 · ₩284,000", tax.Value)
	assert.Equal(t, "원천세 신고·납부", tax.Helper)
}

func TestDashboard_ITFounder(t *testing.T) {
	svc := NewService(nil, zaptest.NewLogger(t))

	result := svc.Dashboard("it-founder")

	assert.Equal(t, business.RoleITFounder, result.Role)
	assert.Equal(t, "₩85,300,000", result.Metrics[0].Value)
}
