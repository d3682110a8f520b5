package email

type EmailRequest struct {
	To      []string // Recipients
	Subject string
	Body    string // HTML or plain text
	IsHTML  bool
}
