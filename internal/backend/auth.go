package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"console/internal/domain"
)

type emailRequest struct {
	Email string `json:"email"`
}

type otpRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// Login is a verified OTP: the bearer token and the identity document, kept
// as raw JSON because the console stores it opaquely.
type Login struct {
	Token   string
	Profile json.RawMessage
}

type messageResponse struct {
	Message string `json:"message"`
}

// AdminLogin asks the backend to mail an OTP to an admin.
func (c *Client) AdminLogin(ctx context.Context, email string) (string, error) {
	return c.sendMessage(ctx, "send OTP", "/admins/login", emailRequest{Email: email})
}

// AdminResendOTP mails a fresh OTP to an admin.
func (c *Client) AdminResendOTP(ctx context.Context, email string) (string, error) {
	return c.sendMessage(ctx, "resend OTP", "/admins/resend-otp", emailRequest{Email: email})
}

// AdminVerifyOTP exchanges an admin OTP for a token.
func (c *Client) AdminVerifyOTP(ctx context.Context, email, otp string) (Login, error) {
	var resp struct {
		Token string          `json:"token"`
		Admin json.RawMessage `json:"admin"`
	}
	if err := c.do(ctx, "verify OTP", http.MethodPost, "/admins/verify-otp", "", otpRequest{Email: email, OTP: otp}, &resp); err != nil {
		return Login{}, err
	}
	if resp.Token == "" {
		return Login{}, domain.RejectedError{Op: "verify OTP", Msg: "Invalid OTP or server error."}
	}
	return Login{Token: resp.Token, Profile: resp.Admin}, nil
}

// UserSendOTP mails an OTP to a customer.
func (c *Client) UserSendOTP(ctx context.Context, email string) (string, error) {
	return c.sendMessage(ctx, "send OTP", "/users/send-otp", emailRequest{Email: email})
}

// UserVerifyOTP exchanges a customer OTP for a token.
func (c *Client) UserVerifyOTP(ctx context.Context, email, otp string) (Login, error) {
	var resp struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	if err := c.do(ctx, "verify OTP", http.MethodPost, "/users/verify-otp", "", otpRequest{Email: email, OTP: otp}, &resp); err != nil {
		return Login{}, err
	}
	if resp.Token == "" {
		return Login{}, domain.RejectedError{Op: "verify OTP", Msg: "Invalid OTP"}
	}
	return Login{Token: resp.Token, Profile: resp.User}, nil
}

func (c *Client) sendMessage(ctx context.Context, op, path string, body any) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, op, http.MethodPost, path, "", body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
