package httpServices

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.emailjs.com"

type EmailJSClient struct {
	httpClient *http.Client
	baseURL    string
	serviceID  string
	publicKey  string
}

func NewClient(serviceID, publicKey string) *EmailJSClient {
	return &EmailJSClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:   defaultBaseURL,
		serviceID: serviceID,
		publicKey: publicKey,
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub
// server.
func NewClientWithBaseURL(baseURL, serviceID, publicKey string) *EmailJSClient {
	c := NewClient(serviceID, publicKey)
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// ConfigValid reports whether the account pair is usable. Placeholder
// values left over from setup are treated as unconfigured.
func (c *EmailJSClient) ConfigValid() bool {
	for _, v := range []string{c.serviceID, c.publicKey} {
		if v == "" || strings.Contains(v, "YOUR_") {
			return false
		}
	}
	return true
}

// Send posts one templated email. EmailJS answers a bare 200 "OK" on
// success.
func (c *EmailJSClient) Send(templateID string, params map[string]string) error {
	body, err := json.Marshal(SendRequest{
		ServiceID:      c.serviceID,
		TemplateID:     templateID,
		UserID:         c.publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequest("POST", c.baseURL+"/api/v1.0/email/send", bytes.NewBuffer(body))
	if err != nil {
		return err
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return errors.New("EmailJS API returned non-OK status: " + resp.Status + " " + string(respBody))
	}

	return nil
}
