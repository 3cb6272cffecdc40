package whatsapp

// LinkOpener открывает построенную ссылку во внешнем приложении.
// Реализация по умолчанию — системный браузер.
type LinkOpener interface {
	Open(rawURL string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
