// Package smtp provides a mailer.Transport backed by the standard SMTP
// protocol, supporting STARTTLS, direct TLS, and plain connections.
//
//	transport := smtp.MustNew(smtp.Config{
//		Host:        "smtp.example.com",
//		Port:        587,
//		Username:    "mailer@example.com",
//		Password:    "secret",
//		TLSMode:     "starttls",
//		SenderEmail: "no-reply@example.com",
//	})
//
//	m := mailer.New(cfg, reg, transport)
//
// Configuration is validated eagerly so a broken mailer never starts.
package smtp
