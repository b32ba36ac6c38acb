package email

// PreviewData holds sample values for rendering each template locally.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"UserFirstName": "John",
	},
	TemplatePasswordReset: {
		"ResetLink": "http://localhost:3000/reset-password?token=00000000-0000-0000-0000-000000000000&email=john@example.com",
		"ExpiresIn": "1h0m0s",
	},
}
