package domain

// MailQueueName is the queue the api publishes to and the mail worker consumes.
const MailQueueName = "email_queue"

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type StaffAccountMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type RegistrationDecisionMailData struct {
	FullName    string `json:"fullName"`
	WorkingDate string `json:"workingDate"`
	Status      string `json:"status"`
	ZoneName    string `json:"zoneName,omitempty"`
}

type SwapDecisionMailData struct {
	FullName    string `json:"fullName"`
	PartnerName string `json:"partnerName"`
	Status      string `json:"status"`
}
