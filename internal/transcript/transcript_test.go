package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendDecodeRoundTrip(t *testing.T) {
	blob := ""
	blob = Append(blob, TagSystem, "Resume parsed for: Jane Doe")
	blob = Append(blob, TagSystem, "Job description: Backend engineer")
	blob = Append(blob, TagQuestion, "q-123")
	blob = Append(blob, TagAI, "Tell me about yourself")
	blob = Append(blob, TagCandidate, "I am an engineer")

	lines := Decode(blob)
	require.Len(t, lines, 5)
	assert.Equal(t, Line{TagSystem, "Resume parsed for: Jane Doe"}, lines[0])
	assert.Equal(t, Line{TagQuestion, "q-123"}, lines[2])
	assert.Equal(t, Line{TagAI, "Tell me about yourself"}, lines[3])
	assert.Equal(t, Line{TagCandidate, "I am an engineer"}, lines[4])

	assert.Equal(t, blob, Encode(lines))
	assert.Equal(t, lines, Decode(Encode(lines)))
}

func TestAppendFlattensNewlines(t *testing.T) {
	blob := Append("", TagCandidate, "line one\nline two\r\nline three")
	lines := Decode(blob)
	require.Len(t, lines, 1)
	assert.Equal(t, "line one line two line three", lines[0].Content)
}

func TestDecodeSkipsUnknownLines(t *testing.T) {
	blob := "[AI] First question\ngarbage line\n[LEGACY] something else\n[CANDIDATE] Answer\n"
	lines := Decode(blob)
	require.Len(t, lines, 2)
	assert.Equal(t, TagAI, lines[0].Tag)
	assert.Equal(t, TagCandidate, lines[1].Tag)
}

func TestDecodeEmpty(t *testing.T) {
	assert.Nil(t, Decode(""))
}

func TestHistoryInterleavedOrder(t *testing.T) {
	blob := "[SYSTEM] Resume parsed for: Jane\n" +
		"[QID] q-1\n" +
		"[AI] Tell me about yourself\n" +
		"[CANDIDATE] I am an engineer\n" +
		"[QID] q-2\n" +
		"[AI] What databases have you used?\n"

	h := History(blob)
	require.Len(t, h, 3)
	assert.Equal(t, Turn{TurnQuestion, "Tell me about yourself"}, h[0])
	assert.Equal(t, Turn{TurnAnswer, "I am an engineer"}, h[1])
	assert.Equal(t, Turn{TurnQuestion, "What databases have you used?"}, h[2])

	assert.Equal(t, 1, AnswerCount(blob))
}

func TestHistoryEmptyTranscript(t *testing.T) {
	assert.Empty(t, History(""))
	assert.Zero(t, AnswerCount(""))

	_, ok := LastQuestion("")
	assert.False(t, ok)
	_, ok = LastQuestionID("")
	assert.False(t, ok)
}

func TestLastQuestionAndID(t *testing.T) {
	blob := "[QID] q-1\n[AI] First\n[CANDIDATE] a1\n[QID] q-2\n[AI] Second\n"

	q, ok := LastQuestion(blob)
	require.True(t, ok)
	assert.Equal(t, "Second", q)

	id, ok := LastQuestionID(blob)
	require.True(t, ok)
	assert.Equal(t, "q-2", id)
}

func TestContextExtraction(t *testing.T) {
	blob := Append("", TagSystem, SystemResumeLine("Jane Doe"))
	blob = Append(blob, TagSystem, SystemJobLine("Senior Go engineer"))

	assert.Equal(t, "Candidate: Jane Doe", ResumeContext(blob))
	assert.Equal(t, "Senior Go engineer", JobDescription(blob))
}

func TestContextExtractionFallbacks(t *testing.T) {
	assert.Equal(t, defaultResumeContext, ResumeContext(""))
	assert.Equal(t, defaultJobDescription, JobDescription(""))
	assert.Equal(t, defaultJobDescription, JobDescription("[AI] Hello\n"))
}
