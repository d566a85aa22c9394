package verification

import "fmt"

const MailSubject = "Edumate Verification Code"

// RenderMail builds the HTML body carrying the literal code.
func RenderMail(code string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #555;">
			<h1>Welcome to Edumate!</h1>
			<p>Dear User,</p>
			<p>Thank you for signing up! Your verification code is:</p>
			<p style="font-size: 28px; font-weight: bold; text-align: center;">%s</p>
			<p>Please enter this code in the verification field to activate your account.</p>
			<p>If you did not request this email, please ignore it.</p>
			<p>Best regards,</p>
			<p><strong>Edumate Team</strong></p>
		</div>
	`, code)
}
