package intent

import "testing"

func TestTimeSensitive(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     bool
	}{
		{
			name:     "plain technical question",
			question: "How does unified memory work?",
			want:     false,
		},
		{
			name:     "latest keyword",
			question: "What are the latest driver updates?",
			want:     true,
		},
		{
			name:     "uppercase keyword",
			question: "Anything NEW in the NEWS?",
			want:     true,
		},
		{
			name:     "quarter shorthand",
			question: "How did Q3 go?",
			want:     true,
		},
		{
			name:     "multi word keyword",
			question: "Was there a press release about the acquisition?",
			want:     true,
		},
		{
			name:     "keyword inside a longer word",
			question: "Tell me about the product launchpad",
			want:     true,
		},
		{
			name:     "empty question",
			question: "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeSensitive(tt.question)
			if got != tt.want {
				t.Errorf("TimeSensitive(%q) = %v, want %v", tt.question, got, tt.want)
			}
		})
	}
}
