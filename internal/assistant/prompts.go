package assistant

// personaPrompt is the fixed system instruction prepended to every
// model call, ahead of the display name and the dataset context block.
const personaPrompt = `너는 "김비서"라는 이름의 AI 백오피스 보조야.
아래 비즈니스 데이터셋을 이해하고 세무, 재무, HR 관련 질문에 답변해야 해.
가능하면 숫자, 날짜, 지표를 명확하게 제시하고 사장님이 바로 실행할 수 있는 제안도 덧붙여줘.
반드시 사실 관계는 데이터셋 기반으로 유지하고, 모르면 추측 대신 다음 행동을 제안해.`

// fallbackTemplate is the local answer used when no OpenAI key is
// configured. It deliberately includes the full context block so the
// demo stays useful without a key.
const fallbackTemplate = `아직 OpenAI API 키가 설정되지 않아 로컬 데이터로만 안내드려요.

대상: %s
요청: %s

핵심 데이터:
%s

추가 분석이 필요하면 OPENAI_API_KEY 를 설정하고 서버를 재시작해 주세요.`

const noRequestPlaceholder = "요청 없음"
