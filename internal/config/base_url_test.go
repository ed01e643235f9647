package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name      string
		explicit  string
		persisted string
		want      string
	}{
		{name: "explicit wins", explicit: "http://a/api/", persisted: "http://b/api", want: "http://a/api"},
		{name: "persisted override", explicit: "  ", persisted: "http://b/api//", want: "http://b/api"},
		{name: "compiled-in default", want: DefaultBaseURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveBaseURL(tt.explicit, tt.persisted))
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := NormalizeBaseURL("localhost:8080/api/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", got)

	got, err = NormalizeBaseURL("https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", got)

	for _, bad := range []string{"", "   ", "http://", "ftp://example.com"} {
		_, err = NormalizeBaseURL(bad)
		assert.Error(t, err, bad)
	}
}
