package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"single", "service", []string{"service"}, false},
		{"nested", "service.botId", []string{"service", "botId"}, false},
		{"deep", "a.b.c", []string{"a", "b", "c"}, false},
		{"empty", "", nil, true},
		{"empty_segment", "service..botId", nil, true},
		{"trailing_dot", "service.", nil, true},
		{"blocked_proto", "__proto__.x", nil, true},
		{"blocked_constructor", "a.constructor", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfigPath(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetValueAtPath(t *testing.T) {
	root := map[string]any{
		"service": map[string]any{
			"botId": "bot-1",
		},
	}

	val, ok := GetValueAtPath(root, []string{"service", "botId"})
	require.True(t, ok)
	assert.Equal(t, "bot-1", val)

	_, ok = GetValueAtPath(root, []string{"service", "missing"})
	assert.False(t, ok)

	_, ok = GetValueAtPath(root, []string{"service", "botId", "deeper"})
	assert.False(t, ok)
}

func TestSetValueAtPath(t *testing.T) {
	root := map[string]any{}
	SetValueAtPath(root, []string{"chat", "quitLabel"}, "Quit")

	val, ok := GetValueAtPath(root, []string{"chat", "quitLabel"})
	require.True(t, ok)
	assert.Equal(t, "Quit", val)

	// overwriting a scalar with a map path
	SetValueAtPath(root, []string{"chat", "quitLabel", "nested"}, 1)
	val, ok = GetValueAtPath(root, []string{"chat", "quitLabel", "nested"})
	require.True(t, ok)
	assert.Equal(t, 1, val)
}

func TestUnsetValueAtPath(t *testing.T) {
	root := map[string]any{
		"chat": map[string]any{"backLabel": "Kembali"},
	}

	assert.True(t, UnsetValueAtPath(root, []string{"chat", "backLabel"}))
	assert.False(t, UnsetValueAtPath(root, []string{"chat", "backLabel"}))
	assert.False(t, UnsetValueAtPath(root, []string{"nope", "x"}))
}
