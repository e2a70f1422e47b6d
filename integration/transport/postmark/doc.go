// Package postmark provides a mailer.Transport backed by Postmark's
// transactional email API.
package postmark
