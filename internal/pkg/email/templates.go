package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateManager управляет встроенными шаблонами email
type TemplateManager struct {
	templates map[string]*template.Template
}

// NewTemplateManager создает новый менеджер шаблонов
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	builtins := map[string]string{
		"account_approved":     accountApprovedTemplate,
		"application_rejected": applicationRejectedTemplate,
	}

	for name, text := range builtins {
		tpl, err := template.New(name).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		tm.templates[name] = tpl
	}

	return tm, nil
}

// Render рендерит шаблон с данными
func (tm *TemplateManager) Render(name string, data interface{}) (string, error) {
	tpl, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("template %s not found", name)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}

	return buf.String(), nil
}

const accountApprovedTemplate = `
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Добро пожаловать, {{.UserName}}!</h2>
	<p>Ваша заявка на доступ к платформе {{.CompanyName}} одобрена.</p>
	<p>Данные для входа:</p>
	<ul>
		<li>Email: <b>{{.LoginEmail}}</b></li>
		<li>Временный пароль: <b>{{.TempPassword}}</b></li>
	</ul>
	<p>После первого входа система попросит вас установить собственный пароль.</p>
	<p>Вопросы: {{.SupportEmail}}</p>
</body>
</html>
`

const applicationRejectedTemplate = `
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Здравствуйте, {{.UserName}}</h2>
	<p>К сожалению, ваша заявка на доступ к платформе {{.CompanyName}} отклонена.</p>
	{{if .Reason}}<p>Причина: {{.Reason}}</p>{{end}}
	<p>Вопросы: {{.SupportEmail}}</p>
</body>
</html>
`
