package email

import (
	"bytes"
	"fmt"
	"text/template"
	"time"
)

const (
	TemplateAuthCode      = "auth_code"
	TemplateContactNotify = "contact_notify"
	TemplateContactReply  = "contact_reply"
)

var (
	authCodeTmpl = template.Must(template.New(TemplateAuthCode).Parse(
		"管理画面へのログイン認証コードです。\n\nコード: {{.Code}}\n\n有効期限は{{.Minutes}}分間です。"))

	contactNotifyTmpl = template.Must(template.New(TemplateContactNotify).Parse(`Webサイトよりお問い合わせがありました。

■お名前: {{.Name}}
■メール: {{.Email}}
■電話番号: {{if .Tel}}{{.Tel}}{{else}}なし{{end}}

■お問い合わせ内容:
{{.Message}}
`))

	contactReplyTmpl = template.Must(template.New(TemplateContactReply).Parse(`{{.Name}} 様

お問い合わせありがとうございます。
以下の内容で受け付けいたしました。
担当者より折り返しご連絡させていただきます。

--------------------------------------------------
■お問い合わせ内容:
{{.Message}}
--------------------------------------------------

※このメールは自動送信されています。
`))
)

// Composer builds the site's messages from one sender address.
type Composer struct {
	From string
}

// Contact is a submission from the public contact form.
type Contact struct {
	Name    string
	Email   string
	Tel     string
	Message string
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func (c Composer) AuthCode(to, code string, ttl time.Duration) (*Message, error) {
	body, err := render(authCodeTmpl, struct {
		Code    string
		Minutes int
	}{code, int(ttl.Minutes())})
	if err != nil {
		return nil, err
	}
	return &Message{
		Template: TemplateAuthCode,
		From:     Address{Name: "Bright House Admin", Email: c.From},
		To:       []string{to},
		Subject:  "【管理画面】認証コードのお知らせ",
		Text:     body,
	}, nil
}

// ContactNotification goes to the site owner with Reply-To set to the sender.
func (c Composer) ContactNotification(to string, in Contact) (*Message, error) {
	body, err := render(contactNotifyTmpl, in)
	if err != nil {
		return nil, err
	}
	return &Message{
		Template: TemplateContactNotify,
		From:     Address{Name: "Webサイトお問い合わせ", Email: c.From},
		To:       []string{to},
		ReplyTo:  in.Email,
		Subject:  fmt.Sprintf("【お問い合わせ】%s様より", in.Name),
		Text:     body,
	}, nil
}

func (c Composer) ContactAutoReply(in Contact) (*Message, error) {
	body, err := render(contactReplyTmpl, in)
	if err != nil {
		return nil, err
	}
	return &Message{
		Template: TemplateContactReply,
		From:     Address{Name: "北海道ブライトオブハウス", Email: c.From},
		To:       []string{in.Email},
		Subject:  "【自動返信】お問い合わせありがとうございます",
		Text:     body,
	}, nil
}
