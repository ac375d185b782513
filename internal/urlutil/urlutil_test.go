package urlutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		parts []string
		want  string
	}{
		{
			name:  "simple join",
			base:  "https://docs.acme.dev",
			parts: []string{"dossiers", "portfolio-app"},
			want:  "https://docs.acme.dev/dossiers/portfolio-app",
		},
		{
			name:  "trailing slash on base",
			base:  "https://docs.acme.dev/",
			parts: []string{"dossiers"},
			want:  "https://docs.acme.dev/dossiers",
		},
		{
			name:  "slashes around parts",
			base:  "https://docs.acme.dev",
			parts: []string{"/dossiers/", "/portfolio-app"},
			want:  "https://docs.acme.dev/dossiers/portfolio-app",
		},
		{
			name:  "multi-segment part",
			base:  "https://docs.acme.dev",
			parts: []string{"docs/dossiers/portfolio-app"},
			want:  "https://docs.acme.dev/docs/dossiers/portfolio-app",
		},
		{
			name:  "empty parts skipped",
			base:  "https://docs.acme.dev",
			parts: []string{"", "dossiers", ""},
			want:  "https://docs.acme.dev/dossiers",
		},
		{
			name:  "no parts",
			base:  "https://docs.acme.dev/",
			parts: nil,
			want:  "https://docs.acme.dev",
		},
		{
			name:  "empty base yields empty",
			base:  "",
			parts: []string{"dossiers"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Join(tt.base, tt.parts...))
		})
	}
}
