package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

type EmailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func GetEmailConfig() *EmailConfig {
	return &EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

func SendEmail(to, subject, htmlBody string) error {
	config := GetEmailConfig()
	if config.Host == "" || config.Port == "" || config.From == "" {
		return fmt.Errorf("SMTP not configured")
	}

	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n",
		config.From, to, subject)
	msg := []byte(headers + htmlBody)

	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	addr := config.Host + ":" + config.Port
	return smtp.SendMail(addr, auth, config.From, []string{to}, msg)
}

func SendWelcomeEmail(email, name string) {
	go func() {
		subject := "Welcome to Rating Voyage!"
		body := fmt.Sprintf(`<h2>Welcome to Rating Voyage, %s!</h2>
<p>Thank you for creating your account. You can now:</p>
<ul>
<li>Discover and rate local stores</li>
<li>Share reviews with the community</li>
<li>Track the stores you love</li>
</ul>
<p>Happy rating!</p>
<p>The Rating Voyage Team</p>`, strings.Split(name, " ")[0])
		if err := SendEmail(email, subject, body); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", email, err)
		}
	}()
}

func SendNewRatingEmail(email, ownerName, storeName string, score int) {
	go func() {
		subject := fmt.Sprintf("New rating for %s", storeName)
		body := fmt.Sprintf(`<h2>Your store received a new rating</h2>
<p>Hi %s,</p>
<p><strong>%s</strong> just received a <strong>%d-star</strong> rating.</p>
<p>Log in to see the full review and your updated average.</p>
<p>The Rating Voyage Team</p>`, strings.Split(ownerName, " ")[0], storeName, score)
		if err := SendEmail(email, subject, body); err != nil {
			log.Printf("Failed to send new rating email to %s: %v", email, err)
		}
	}()
}
