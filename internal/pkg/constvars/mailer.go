package constvars

const (
	EmailInvitationSubjectMessage = "[CROOLY] Invitación al portal de clientes"
)

const (
	EmailInvitationHTMLFormat = "<html><body>Hola,<br><br>Has sido invitado al portal de <strong>%s</strong> del Crooly Traction Method.<br><br>Para activar tu cuenta define tu contraseña en el siguiente enlace:<br><br><a href=\"%s\">%s</a><br><br>El enlace es válido por %d horas y solo puede usarse una vez.</body></html>"
	InvitationSetupPathFormat = "%s%s?token=%s"
)

const (
	RabbitMQMessageTypeJSON       = "JSON"
	RabbitMQRequeueStrategyDrop   = "DROP"
	RabbitMQHeaderMessageType     = "message_type"
	RabbitMQHeaderRequeueStrategy = "requeue_strategy"
)
