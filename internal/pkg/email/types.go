package email

// Email представляет структуру email сообщения
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData базовая структура для данных шаблонов
type TemplateData struct {
	UserName     string
	Message      string
	SupportEmail string
	CompanyName  string
}

// AccountApprovedData данные письма об одобрении заявки
type AccountApprovedData struct {
	TemplateData
	LoginEmail   string
	TempPassword string
	LoginURL     string
}

// ApplicationRejectedData данные письма об отклонении заявки
type ApplicationRejectedData struct {
	TemplateData
	Reason string
}

// Sender интерфейс для отправки email.
// Все отправки в приложении fire-and-forget: вызывающая сторона логирует
// ошибку, но никогда не откатывает основную операцию.
type Sender interface {
	Send(email *Email) error
	SendAccountApproved(to, name, loginEmail, tempPassword string) error
	SendApplicationRejected(to, name, reason string) error
}
