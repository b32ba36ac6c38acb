package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_PreviewData(t *testing.T) {
	for _, name := range Templates() {
		t.Run(string(name), func(t *testing.T) {
			data, ok := PreviewData[name]
			require.True(t, ok)

			body, err := Render(name, data)
			require.NoError(t, err)
			assert.NotEmpty(t, body)
		})
	}
}

func TestRender_EscapesValues(t *testing.T) {
	body, err := Render(TemplateWelcome, map[string]string{"UserFirstName": "<b>Eve</b>"})
	require.NoError(t, err)

	assert.Contains(t, body, "&lt;b&gt;Eve&lt;/b&gt;")
	assert.NotContains(t, body, "<b>Eve</b>")
}

func TestRender_ResetLink(t *testing.T) {
	body, err := Render(TemplatePasswordReset, map[string]string{
		"ResetLink": "https://example.com/reset?token=abc",
		"ExpiresIn": "1h0m0s",
	})
	require.NoError(t, err)

	assert.Contains(t, body, `href="https://example.com/reset?token=abc"`)
	assert.Contains(t, body, "1h0m0s")
}

func TestRender_Unknown(t *testing.T) {
	_, err := Render("missing", nil)
	assert.Error(t, err)
}
