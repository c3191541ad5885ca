package operation_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/retoken/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

func TestReplaceInFile(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		want        string
		wantUpdated bool
	}{
		{
			name:        "button_classes",
			content:     `<button class="bg-blue-600 text-blue-700 hover:bg-blue-50">Save</button>`,
			want:        `<button class="bg-green-600 text-green-700 hover:bg-green-50">Save</button>`,
			wantUpdated: true,
		},
		{
			name:        "gradient",
			content:     `<div className="bg-gradient-to-r from-blue-600 to-indigo-600" />`,
			want:        `<div className="bg-gradient-to-r from-green-600 to-emerald-600" />`,
			wantUpdated: true,
		},
		{
			name:        "light_gradient",
			content:     "from-blue-50 to-indigo-50",
			want:        "from-green-50 to-emerald-50",
			wantUpdated: true,
		},
		{
			name:        "longer_key_first",
			content:     "bg-blue-500 bg-blue-50",
			want:        "bg-green-500 bg-green-50",
			wantUpdated: true,
		},
		{
			name:        "left_border",
			content:     "border-l-4 border-l-blue-600",
			want:        "border-l-4 border-l-green-600",
			wantUpdated: true,
		},
		{
			name:        "no_tokens",
			content:     `<p className="text-gray-600">Hello</p>`,
			want:        `<p className="text-gray-600">Hello</p>`,
			wantUpdated: false,
		},
		{
			name:        "empty_file",
			content:     "",
			want:        "",
			wantUpdated: false,
		},
		{
			name:        "byte_order_mark_kept",
			content:     "\ufeffbg-blue-600",
			want:        "\ufeffbg-green-600",
			wantUpdated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, afero.NewMemMapFs())
			env.write(t, "components/App.tsx", tt.content)

			updated, err := env.replacer.ReplaceInFile(env.ctx, "components/App.tsx")
			require.NoError(t, err)

			assert.Equal(t, tt.wantUpdated, updated, "updated flag should match")
			assert.Equal(t, tt.want, env.read(t, "components/App.tsx"), "content should match")

			if tt.wantUpdated {
				assert.Equal(t, []string{"Updated: components/App.tsx"}, env.lines())
			} else {
				assert.Empty(t, env.lines(), "unchanged files should not be reported")
			}
		})
	}
}

func TestReplaceInFile_MissingFile(t *testing.T) {
	env := newTestEnv(t, afero.NewMemMapFs())

	updated, err := env.replacer.ReplaceInFile(env.ctx, "components/Gone.tsx")
	require.Error(t, err)
	assert.False(t, updated)
	assert.Contains(t, err.Error(), "components/Gone.tsx")
}

func TestReplaceInFile_InvalidEncoding(t *testing.T) {
	env := newTestEnv(t, afero.NewMemMapFs())
	content := string([]byte{'b', 'g', '-', 'b', 'l', 'u', 'e', '-', '6', '0', '0', 0xff, 0xfe})
	env.write(t, "components/Bad.tsx", content)

	updated, err := env.replacer.ReplaceInFile(env.ctx, "components/Bad.tsx")
	require.Error(t, err)
	assert.False(t, updated)
	assert.True(t, errors.Is(err, operation.ErrInvalidEncoding), "error should be an encoding error")
	assert.Equal(t, content, env.read(t, "components/Bad.tsx"), "file should be untouched")
}

func TestReplaceInFile_ReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "components/App.tsx", []byte("bg-blue-600"), 0o644))

	env := newTestEnv(t, afero.NewReadOnlyFs(base))

	updated, err := env.replacer.ReplaceInFile(env.ctx, "components/App.tsx")
	require.Error(t, err)
	assert.False(t, updated)
	assert.Contains(t, err.Error(), "writing components/App.tsx")
	assert.Empty(t, env.lines(), "failed writes should not be reported")
}
