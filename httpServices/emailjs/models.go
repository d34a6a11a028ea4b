package httpServices

// SendRequest is the EmailJS REST send payload: a fixed public
// service/template pair plus a flat key/value parameter map the
// template interpolates.
type SendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}
