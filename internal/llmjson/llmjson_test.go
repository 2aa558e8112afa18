package llmjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Question string `json:"question"`
	Stop     bool   `json:"stop_interview"`
}

func TestUnmarshalPlainJSON(t *testing.T) {
	var p payload
	ok := Unmarshal(`{"question":"Why Go?","stop_interview":false}`, &p)
	require.True(t, ok)
	assert.Equal(t, "Why Go?", p.Question)
	assert.False(t, p.Stop)
}

func TestUnmarshalFencedJSON(t *testing.T) {
	raw := "```json\n{\"question\":\"Why Go?\",\"stop_interview\":true}\n```"
	var p payload
	ok := Unmarshal(raw, &p)
	require.True(t, ok)
	assert.Equal(t, "Why Go?", p.Question)
	assert.True(t, p.Stop)
}

func TestUnmarshalSalvagesBraceRegion(t *testing.T) {
	raw := "Sure! Here is the result:\n{\"question\":\"Describe a hard bug.\"}\nHope that helps."
	var p payload
	ok := Unmarshal(raw, &p)
	require.True(t, ok)
	assert.Equal(t, "Describe a hard bug.", p.Question)
}

func TestUnmarshalGarbageLeavesDstUntouched(t *testing.T) {
	p := payload{Question: "unchanged"}
	ok := Unmarshal("no json here at all", &p)
	assert.False(t, ok)
	assert.Equal(t, "unchanged", p.Question)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences(`{"a":1}`))
}
