package email

import "gopkg.in/gomail.v2"

// Sender интерфейс отправки писем. Реализуется *gomail.Dialer,
// в тестах подменяется фейком.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
