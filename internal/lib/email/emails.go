package email

func (c *Client) SendWelcomeEmail(to, firstName string) error {
	return c.SendEmail(to, "Welcome to Hotel Booking!", TemplateWelcome, map[string]string{
		"UserFirstName": firstName,
	})
}

// SendPasswordResetEmail sends the reset link. expiresIn is a human readable
// duration such as "1h0m0s".
func (c *Client) SendPasswordResetEmail(to, resetLink, expiresIn string) error {
	return c.SendEmail(to, "Password Reset Request", TemplatePasswordReset, map[string]string{
		"ResetLink": resetLink,
		"ExpiresIn": expiresIn,
	})
}
