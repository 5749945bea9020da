package watcher

import (
	"testing"
)

func TestIsDeckFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/in/talk.pptx", true},
		{"/in/legacy.ppt", true},
		{"/in/TALK.PPTX", true},
		{"/in/notes.pdf", false},
		{"/in/image.png", false},
		{"/in/pptx", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isDeckFile(tt.path); got != tt.want {
				t.Errorf("isDeckFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
