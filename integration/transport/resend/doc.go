// Package resend provides a mailer.Transport backed by the Resend email API.
package resend
