package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

type sendRequest struct {
	PhoneNumbers  string `json:"phone_numbers"`
	SignName      string `json:"sign_name"`
	TemplateCode  string `json:"template_code"`
	TemplateParam string `json:"template_param"`
}

type sendResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	BizID     string `json:"biz_id"`
}

type Client struct {
	baseURL      string
	apiKey       string
	signName     string
	templateCode string
	http         *http.Client
}

func New(baseURL, apiKey, signName, templateCode string) *Client {
	return &Client{
		baseURL:      baseURL,
		apiKey:       apiKey,
		signName:     signName,
		templateCode: templateCode,
		http: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// SendCode delivers a verification code through the SMS gateway.
// Endpoint: POST {base}/v1/sms/send
func (c *Client) SendCode(ctx context.Context, phone, code string) error {
	if c.apiKey == "" {
		return errors.New("missing sms api key")
	}

	param, err := json.Marshal(map[string]string{"code": code})
	if err != nil {
		return err
	}

	payload, err := json.Marshal(sendRequest{
		PhoneNumbers:  phone,
		SignName:      c.signName,
		TemplateCode:  c.templateCode,
		TemplateParam: string(param),
	})
	if err != nil {
		return err
	}

	url := c.baseURL + "/v1/sms/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e sendResponse
		if json.Unmarshal(body, &e) == nil && e.Message != "" {
			return fmt.Errorf("sms gateway error (%d): %s", resp.StatusCode, e.Message)
		}
		return fmt.Errorf("sms gateway http error (%d): %s", resp.StatusCode, string(body))
	}

	var out sendResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return err
	}

	// gateway reports delivery result in-band even on 200
	if out.Code != "OK" {
		return fmt.Errorf("sms gateway rejected send: %s %s", out.Code, out.Message)
	}

	return nil
}
