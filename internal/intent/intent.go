package intent

import "strings"

var newsKeywords = []string{
	"latest", "today", "this week", "recent", "news", "announce", "announced",
	"earnings", "quarter", "q1", "q2", "q3", "q4", "revenue", "guidance",
	"press release", "launch", "just released",
}

// Plain substring matching; a keyword inside a longer word still counts.
func TimeSensitive(question string) bool {
	q := strings.ToLower(question)
	for _, keyword := range newsKeywords {
		if strings.Contains(q, keyword) {
			return true
		}
	}
	return false
}
