// Package transcript encodes and decodes the append-only interview log.
//
// The transcript is the sole persisted record of a conversation: every turn is
// reconstructed from it, never from in-memory state. The format is one tagged
// line per entry, newline separated:
//
//	[SYSTEM] Resume parsed for: Jane Doe
//	[SYSTEM] Job description: Backend engineer ...
//	[QID] 6f1c...-uuid
//	[AI] Hello Jane! Please introduce yourself.
//	[CANDIDATE] I am a backend engineer with ...
//
// A [QID] line associates the next [AI] line with a persisted question row.
// Unrecognized lines are skipped on decode so the format can grow without
// breaking old readers.
package transcript

import "strings"

type Tag string

const (
	TagSystem    Tag = "SYSTEM"
	TagQuestion  Tag = "QID"
	TagAI        Tag = "AI"
	TagCandidate Tag = "CANDIDATE"
)

// Line is one decoded transcript entry.
type Line struct {
	Tag     Tag
	Content string
}

var prefixes = []struct {
	tag    Tag
	prefix string
}{
	{TagSystem, "[SYSTEM] "},
	{TagQuestion, "[QID] "},
	{TagAI, "[AI] "},
	{TagCandidate, "[CANDIDATE] "},
}

// Append returns the transcript with one more tagged line. Newlines inside the
// content are flattened to spaces first; an embedded separator would corrupt
// every later decode.
func Append(transcript string, tag Tag, content string) string {
	content = strings.ReplaceAll(content, "\r\n", " ")
	content = strings.ReplaceAll(content, "\n", " ")
	return transcript + "[" + string(tag) + "] " + content + "\n"
}

// Decode splits a transcript into tagged lines, in order. Lines that carry no
// known tag are ignored. An empty transcript decodes to nil.
func Decode(transcript string) []Line {
	if transcript == "" {
		return nil
	}

	var out []Line
	for _, raw := range strings.Split(strings.TrimRight(transcript, "\n"), "\n") {
		for _, p := range prefixes {
			if strings.HasPrefix(raw, p.prefix) {
				out = append(out, Line{Tag: p.tag, Content: strings.TrimPrefix(raw, p.prefix)})
				break
			}
		}
	}
	return out
}

// Encode rebuilds a transcript blob from decoded lines. Decode(Encode(lines))
// round-trips as long as no content embeds a newline.
func Encode(lines []Line) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString("[")
		b.WriteString(string(l.Tag))
		b.WriteString("] ")
		b.WriteString(l.Content)
		b.WriteString("\n")
	}
	return b.String()
}
