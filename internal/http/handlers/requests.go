package handlers

// =======================
// DTO
// =======================

type emailRequest struct {
	Email string `json:"email"`
}

type otpRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type verifyPaymentRequest struct {
	Reference string `json:"reference"`
}
