package gitlab

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextLink(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "empty header",
			header: "",
			want:   "",
		},
		{
			name:   "next among other rels",
			header: `<https://gitlab.com/api/v4/projects/1/merge_requests?page=1>; rel="prev", <https://gitlab.com/api/v4/projects/1/merge_requests?page=3>; rel="next", <https://gitlab.com/api/v4/projects/1/merge_requests?page=9>; rel="last"`,
			want:   "https://gitlab.com/api/v4/projects/1/merge_requests?page=3",
		},
		{
			name:   "last page",
			header: `<https://gitlab.com/api/v4/projects/1/merge_requests?page=8>; rel="prev", <https://gitlab.com/api/v4/projects/1/merge_requests?page=9>; rel="first"`,
			want:   "",
		},
		{
			name:   "only next",
			header: `<https://example.com/x?page=2>; rel="next"`,
			want:   "https://example.com/x?page=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextLink(tt.header))
		})
	}
}
