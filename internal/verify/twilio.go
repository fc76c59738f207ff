// Package verify wraps the Twilio Verify v2 API behind the PhoneVerifier
// interface: one call to dispatch an SMS code, one to check it.
package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://verify.twilio.com/v2"

type TwilioVerifier struct {
	accountSID string
	authToken  string
	serviceSID string
	baseURL    string
	httpClient *http.Client
}

func NewTwilioVerifier(accountSID, authToken, serviceSID string) *TwilioVerifier {
	return &TwilioVerifier{
		accountSID: accountSID,
		authToken:  authToken,
		serviceSID: serviceSID,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithBaseURL overrides the API endpoint. Used in tests.
func (v *TwilioVerifier) WithBaseURL(u string) *TwilioVerifier {
	v.baseURL = u
	return v
}

type verificationResponse struct {
	Status string `json:"status"`
}

// SendCode dispatches a verification code to phoneNumber over SMS.
func (v *TwilioVerifier) SendCode(ctx context.Context, phoneNumber string) error {
	form := url.Values{}
	form.Set("To", NormalizePhone(phoneNumber))
	form.Set("Channel", "sms")

	endpoint := fmt.Sprintf("%s/Services/%s/Verifications", v.baseURL, v.serviceSID)
	resp, err := v.post(ctx, endpoint, form)
	if err != nil {
		return err
	}
	if resp.Status == "" {
		return fmt.Errorf("verify: empty verification status")
	}
	return nil
}

// CheckCode validates a previously dispatched code. It returns false without
// error when the code simply does not match.
func (v *TwilioVerifier) CheckCode(ctx context.Context, phoneNumber, code string) (bool, error) {
	form := url.Values{}
	form.Set("To", NormalizePhone(phoneNumber))
	form.Set("Code", code)

	endpoint := fmt.Sprintf("%s/Services/%s/VerificationCheck", v.baseURL, v.serviceSID)
	resp, err := v.post(ctx, endpoint, form)
	if err != nil {
		return false, err
	}
	return resp.Status == "approved", nil
}

func (v *TwilioVerifier) post(ctx context.Context, endpoint string, form url.Values) (*verificationResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(v.accountSID, v.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := v.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("verify: request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("verify: provider returned status %d", res.StatusCode)
	}

	var out verificationResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("verify: decoding response: %w", err)
	}
	return &out, nil
}

// NormalizePhone ensures the number carries the leading international-format
// marker the provider requires.
func NormalizePhone(phoneNumber string) string {
	n := strings.TrimSpace(phoneNumber)
	if !strings.HasPrefix(n, "+") {
		n = "+" + n
	}
	return n
}
