package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/internal/domain/entity"
)

func TestRenderer_Render(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	tests := []struct {
		name        string
		msg         *entity.MailMessage
		wantSubject string
		wantLink    string
	}{
		{
			name: "confirmation link",
			msg: &entity.MailMessage{
				Kind: entity.MailKindConfirmation, To: "ann@example.com", Username: "ann",
				BaseURL: "http://localhost:8000/", Token: "abc.def",
			},
			wantSubject: "Confirm your email",
			wantLink:    "http://localhost:8000/api/auth/confirmed_email/abc.def",
		},
		{
			name: "reset link without trailing slash",
			msg: &entity.MailMessage{
				Kind: entity.MailKindPasswordReset, To: "ann@example.com", Username: "ann",
				BaseURL: "https://contacts.example.com", Token: "xyz",
			},
			wantSubject: "Reset your password",
			wantLink:    "https://contacts.example.com/api/auth/change_password/xyz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered, err := renderer.Render(tt.msg)
			require.NoError(t, err)

			assert.Equal(t, tt.msg.To, rendered.To)
			assert.Equal(t, tt.wantSubject, rendered.Subject)
			assert.Contains(t, rendered.HTML, `href="`+tt.wantLink+`"`)
			assert.Contains(t, rendered.HTML, "Hi ann,")
		})
	}
}

func TestRenderer_EscapesUsername(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	rendered, err := renderer.Render(&entity.MailMessage{
		Kind: entity.MailKindConfirmation, To: "x@example.com", Username: "<script>",
		BaseURL: "http://localhost/", Token: "t",
	})
	require.NoError(t, err)

	assert.NotContains(t, rendered.HTML, "<script>")
	assert.Contains(t, rendered.HTML, "&lt;script&gt;")
}

func TestRenderer_Errors(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	_, err = renderer.Render(&entity.MailMessage{Kind: "newsletter", To: "x@example.com", BaseURL: "http://a/"})
	assert.Error(t, err)

	_, err = renderer.Render(&entity.MailMessage{Kind: entity.MailKindConfirmation, BaseURL: "http://a/"})
	assert.Error(t, err)

	_, err = renderer.Render(&entity.MailMessage{Kind: entity.MailKindConfirmation, To: "x@example.com", BaseURL: "not a url"})
	assert.Error(t, err)
}
