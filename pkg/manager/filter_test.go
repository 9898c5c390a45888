package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterAccept(t *testing.T) {
	tests := []struct {
		name    string
		include []string
		exclude []string
		title   string
		want    bool
	}{
		{
			name:  "no constraints passes",
			title: "[Group] Show - 07 [1080p]",
			want:  true,
		},
		{
			name:    "all includes present",
			include: []string{"1080p", "BDRip"},
			title:   "[Group] Show - 07 [BDRip 1080p]",
			want:    true,
		},
		{
			name:    "include is AND not any",
			include: []string{"1080p", "BDRip"},
			title:   "[Group] Show - 07 [1080p]",
			want:    false,
		},
		{
			name:    "single exclude match rejects despite includes",
			include: []string{"1080p"},
			exclude: []string{"CHT"},
			title:   "[Group] Show - 07 [1080p][CHT]",
			want:    false,
		},
		{
			name:    "matching is case-sensitive",
			include: []string{"1080P"},
			title:   "[Group] Show - 07 [1080p]",
			want:    false,
		},
		{
			name:    "exclude miss passes",
			exclude: []string{"720p"},
			title:   "[Group] Show - 07 [1080p]",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewFilter(tt.include, tt.exclude).Accept(tt.title)
			assert.Equal(t, tt.want, got)
		})
	}
}
