// Package mailer delivers verification emails through a Resend-style
// HTTP API.
package mailer

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"agentsync/server/internal/config"
	"agentsync/server/internal/domain/verification"
	"agentsync/server/internal/infrastructure/logger"
	"agentsync/server/internal/utils/apperrors"
	"agentsync/server/internal/utils/httpclients"
)

const otpEmailHTMLFormat = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Email Verification - AgentSync</title>
</head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; color: #333333; background-color: #f8fafc; margin: 0; padding: 0;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff;">
    <div style="background: linear-gradient(135deg, #667eea 0%%, #764ba2 100%%); padding: 40px 30px; text-align: center; color: white;">
      <div style="font-size: 28px; font-weight: bold;">AgentSync</div>
      <div style="font-size: 16px;">Secure Email Verification</div>
    </div>
    <div style="padding: 40px 30px;">
      <div style="font-size: 20px; font-weight: 600; margin-bottom: 20px;">Hello!</div>
      <div style="font-size: 16px; margin-bottom: 30px; color: #6b7280;">
        We received a request to verify your email address. To complete the verification process, please use the verification code below:
      </div>
      <div style="background-color: #f9fafb; border: 2px dashed #d1d5db; border-radius: 12px; padding: 30px; text-align: center;">
        <div style="font-size: 14px; font-weight: 600; color: #6b7280; text-transform: uppercase;">Your Verification Code</div>
        <div style="font-size: 36px; font-weight: bold; letter-spacing: 8px; font-family: 'Courier New', monospace;">%s</div>
      </div>
      <div style="color: #92400e; font-size: 14px; margin: 25px 0;">This code will expire in 5 minutes for your security.</div>
      <div style="font-size: 14px; color: #6b7280;">
        Never share this code with anyone. AgentSync will never ask for this code via phone or email.
        If you didn't request this verification, please ignore this email.
      </div>
    </div>
    <div style="padding: 30px; text-align: center; border-top: 1px solid #e5e7eb; font-size: 14px; color: #9ca3af;">
      This email was sent by AgentSync. This is an automated email, please do not reply.
    </div>
  </div>
</body>
</html>`

const otpEmailTextFormat = `Email Verification - AgentSync

Hello!

We received a request to verify your email address. To complete the verification process, please use the verification code below:

YOUR VERIFICATION CODE: %s

This code will expire in 5 minutes for your security.

SECURITY NOTICE:
- Never share this code with anyone
- AgentSync will never ask for this code via phone or email
- If you didn't request this verification, please ignore this email

---
This email was sent by AgentSync.
This is an automated email, please do not reply.`

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

type sendEmailResponse struct {
	ID string `json:"id"`
}

// OTPMailer sends verification codes through the configured mail API.
// When no API key is configured it logs the code instead, which keeps
// local development working without a mail account.
type OTPMailer struct {
	client *resty.Client
	apiURL string
	apiKey string
	from   string
}

var _ verification.Mailer = (*OTPMailer)(nil)

func NewOTPMailer(cfg *config.Config) *OTPMailer {
	return &OTPMailer{
		client: httpclients.NewClient("mailer"),
		apiURL: cfg.MailAPIURL,
		apiKey: cfg.MailAPIKey,
		from:   cfg.MailFrom,
	}
}

func (m *OTPMailer) SendOTP(ctx context.Context, email, code string) error {
	log := logger.GetLogger()

	if m.apiKey == "" {
		log.Warn().
			Str("email", email).
			Str("code", code).
			Msg("mail API key not configured, logging OTP instead of sending")
		return nil
	}

	body := sendEmailRequest{
		From:    m.from,
		To:      []string{email},
		Subject: fmt.Sprintf("Your AgentSync Verification Code: %s", code),
		HTML:    fmt.Sprintf(otpEmailHTMLFormat, code),
		Text:    fmt.Sprintf(otpEmailTextFormat, code),
	}

	var result sendEmailResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+m.apiKey).
		SetBody(body).
		SetResult(&result).
		Post(m.apiURL + "/emails")
	if err != nil {
		return apperrors.NewError(
			ctx,
			apperrors.LayerInfrastructure,
			apperrors.ErrorTypeUpstream,
			"mail API call failed",
			err,
			"72874381-56fe-450d-8846-5294d63f776d",
		)
	}
	if resp.StatusCode() >= 400 {
		log.Error().
			Int("status", resp.StatusCode()).
			Str("body", resp.String()).
			Msg("mail API rejected OTP email")
		return apperrors.NewError(
			ctx,
			apperrors.LayerInfrastructure,
			apperrors.ErrorTypeUpstream,
			fmt.Sprintf("mail API returned status %d", resp.StatusCode()),
			nil,
			"d773b2ad-3408-47c9-8ae3-db85b8d9ea3c",
		)
	}

	log.Info().
		Str("email", email).
		Str("message_id", result.ID).
		Msg("OTP email sent")
	return nil
}
