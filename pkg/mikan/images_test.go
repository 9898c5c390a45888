package mikan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageURL(t *testing.T) {
	tests := []struct {
		name string
		opts []ClientOption
		ref  string
		want string
	}{
		{
			name: "relative path gets canonical origin",
			ref:  "/images/Bangumi/202310/poster.jpg",
			want: "https://mikanani.me/images/Bangumi/202310/poster.jpg",
		},
		{
			name: "mirror origin is swapped",
			ref:  "https://mikanime.tv/images/Bangumi/202310/poster.jpg",
			want: "https://mikanani.me/images/Bangumi/202310/poster.jpg",
		},
		{
			name: "query survives the swap",
			ref:  "/images/Bangumi/202310/poster.jpg?width=400",
			want: "https://mikanani.me/images/Bangumi/202310/poster.jpg?width=400",
		},
		{
			name: "proxy wraps the canonical url",
			opts: []ClientOption{WithImageProxy("https://proxy.example.com/img")},
			ref:  "/images/Bangumi/202310/poster.jpg",
			want: "https://proxy.example.com/img?url=https://mikanani.me/images/Bangumi/202310/poster.jpg",
		},
		{
			name: "empty ref stays empty",
			ref:  "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.opts...)
			assert.Equal(t, tt.want, c.imageURL(tt.ref))
		})
	}
}
