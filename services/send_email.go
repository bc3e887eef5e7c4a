package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/rpupo63/design-portfolio-backend/config"
	"github.com/rpupo63/design-portfolio-backend/models"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// SendEmail sends an email using the Resend API
//
// Requires configuration:
//   - RESEND_API_KEY: Your Resend API key
//   - RESEND_FROM_EMAIL: The sender address (e.g. "Portfolio <onboarding@resend.dev>")
func SendEmail(cfg map[string]string, subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	apiKey := config.GetString(cfg, "RESEND_API_KEY", "")
	if apiKey == "" {
		return fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	fromEmail := config.GetString(cfg, "RESEND_FROM_EMAIL", "")
	if fromEmail == "" {
		return fmt.Errorf("RESEND_FROM_EMAIL environment variable is required")
	}

	payload := ResendEmailRequest{
		From:    fromEmail,
		To:      recipients,
		Subject: subject,
		Html:    body,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var resendErr ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &resendErr); err == nil && resendErr.Message != "" {
			return fmt.Errorf("resend API error (%d): %s", resp.StatusCode, resendErr.Message)
		}
		return fmt.Errorf("resend API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var resendResp ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &resendResp); err != nil {
		return fmt.Errorf("failed to parse Resend API response: %w", err)
	}

	log.Debug().Str("emailID", resendResp.ID).Msg("Email sent via Resend")
	return nil
}

// NotifyInquiry emails the configured notification address about a new
// contact-form inquiry. Requires INQUIRY_NOTIFY_EMAIL in addition to the
// Resend configuration.
func NotifyInquiry(cfg map[string]string, inquiry models.Inquiry) error {
	notifyEmail := config.GetString(cfg, "INQUIRY_NOTIFY_EMAIL", "")
	if notifyEmail == "" {
		return fmt.Errorf("INQUIRY_NOTIFY_EMAIL environment variable is required")
	}

	subject := "New portfolio inquiry"
	if inquiry.Project != nil {
		subject = fmt.Sprintf("New inquiry about %s", *inquiry.Project)
	}

	var body strings.Builder
	body.WriteString(`<div style="font-family: Arial, sans-serif; line-height: 1.6;">`)
	body.WriteString(`<h2 style="margin-bottom: 8px;">New inquiry</h2>`)
	fmt.Fprintf(&body, "<p><strong>Name:</strong> %s</p>", html.EscapeString(inquiry.Name))
	fmt.Fprintf(&body, "<p><strong>Email:</strong> %s</p>", html.EscapeString(inquiry.Email))
	if inquiry.Project != nil {
		fmt.Fprintf(&body, "<p><strong>Project:</strong> %s</p>", html.EscapeString(*inquiry.Project))
	}
	body.WriteString("<p><strong>Message:</strong></p>")
	message := strings.ReplaceAll(html.EscapeString(inquiry.Message), "\n", "<br />")
	fmt.Fprintf(&body, "<p>%s</p>", message)
	body.WriteString("</div>")

	return SendEmail(cfg, subject, body.String(), []string{notifyEmail})
}
