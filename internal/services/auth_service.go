package services

import (
	"context"
	"regexp"
	"strings"

	"console/internal/domain"
	"console/internal/session"
	"console/internal/utils"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	otpPattern   = regexp.MustCompile(`^\d{6}$`)
)

// AuthService drives the admin and customer OTP sign-in flows and keeps the
// resulting credentials in the session.
type AuthService struct {
	Client    AuthClient
	RequestID string
}

func requireEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", domain.ValidationError{Field: "email", Msg: "Email is required"}
	}
	return email, nil
}

func (s AuthService) AdminLogin(ctx context.Context, email string) (string, error) {
	email, err := requireEmail(email)
	if err != nil {
		return "", err
	}
	msg, err := s.Client.AdminLogin(ctx, email)
	if err != nil {
		return "", err
	}
	utils.LogEvent(s.RequestID, "auth", "admin_login", "otp sent")
	return utils.FirstNonEmpty(msg, "OTP sent to your email"), nil
}

func (s AuthService) AdminResendOTP(ctx context.Context, email string) (string, error) {
	email, err := requireEmail(email)
	if err != nil {
		return "", err
	}
	msg, err := s.Client.AdminResendOTP(ctx, email)
	if err != nil {
		return "", err
	}
	return utils.FirstNonEmpty(msg, "OTP resent"), nil
}

// AdminVerifyOTP signs the admin in and stores adminToken and adminData.
func (s AuthService) AdminVerifyOTP(ctx context.Context, sess *session.Context, email, otp string) error {
	email, err := requireEmail(email)
	if err != nil {
		return err
	}
	otp = strings.TrimSpace(otp)
	if otp == "" {
		return domain.ValidationError{Field: "otp", Msg: "OTP is required"}
	}
	login, err := s.Client.AdminVerifyOTP(ctx, email, otp)
	if err != nil {
		return err
	}
	sess.SetAdmin(login.Token, login.Profile)
	utils.LogEvent(s.RequestID, "auth", "admin_verify", "signed in")
	return nil
}

func (s AuthService) AdminLogout(sess *session.Context) {
	sess.ClearAdmin()
}

// UserSendOTP mails a customer OTP after a basic email shape check.
func (s AuthService) UserSendOTP(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return "", domain.ValidationError{Field: "email", Msg: "Please enter a valid email"}
	}
	msg, err := s.Client.UserSendOTP(ctx, email)
	if err != nil {
		return "", err
	}
	return utils.FirstNonEmpty(msg, "OTP sent"), nil
}

// UserVerifyOTP signs the customer in and stores token and user.
func (s AuthService) UserVerifyOTP(ctx context.Context, sess *session.Context, email, otp string) error {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return domain.ValidationError{Field: "email", Msg: "Please enter a valid email"}
	}
	otp = strings.TrimSpace(otp)
	if !otpPattern.MatchString(otp) {
		return domain.ValidationError{Field: "otp", Msg: "OTP must be 6 digits"}
	}
	login, err := s.Client.UserVerifyOTP(ctx, email, otp)
	if err != nil {
		return err
	}
	sess.SetUser(login.Token, login.Profile)
	utils.LogEvent(s.RequestID, "auth", "user_verify", "signed in")
	return nil
}

func (s AuthService) UserLogout(sess *session.Context) {
	sess.ClearUser()
}
