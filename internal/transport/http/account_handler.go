package http

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/averoza/account-api/internal/service"
	"github.com/averoza/account-api/internal/util"
)

type accountHandler struct {
	accounts *service.AccountService
}

func RegisterAccounts(e *echo.Echo, accounts *service.AccountService) {
	h := &accountHandler{accounts: accounts}

	g := e.Group("/user")
	g.POST("/signup", h.signUp)
	g.POST("/signin", h.signIn)
	g.GET("/verify/:accountId/:secret", h.verify)
	g.GET("/verified", h.verifiedPage)
	g.POST("/requestPasswordReset", h.requestPasswordReset)
	g.POST("/resetPassword", h.resetPassword)
}

func (h *accountHandler) signUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Failed("Invalid request body!"))
	}

	_, err := h.accounts.SignUp(c.Request().Context(), service.SignUpParams{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, util.Pending("Verification email sent!"))
}

func (h *accountHandler) signIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Failed("Invalid request body!"))
	}

	account, err := h.accounts.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, util.Success("Signed in successfully!", accountPayload(account)))
}

func (h *accountHandler) verify(c echo.Context) error {
	err := h.accounts.ConfirmVerification(c.Request().Context(), c.Param("accountId"), c.Param("secret"))
	if err != nil {
		status, message := classify(err)
		if status == http.StatusInternalServerError {
			log.Printf("verify: %v", err)
		}
		q := url.Values{}
		q.Set("error", "true")
		q.Set("message", message)
		return c.Redirect(http.StatusSeeOther, "/user/verified?"+q.Encode())
	}
	return c.Redirect(http.StatusSeeOther, "/user/verified")
}

func (h *accountHandler) requestPasswordReset(c echo.Context) error {
	var req PasswordResetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Failed("Invalid request body!"))
	}

	if err := h.accounts.RequestPasswordReset(c.Request().Context(), req.Email, req.RedirectURL); err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, util.Pending("Password reset email sent!"))
}

func (h *accountHandler) resetPassword(c echo.Context) error {
	var req PasswordResetConfirmRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Failed("Invalid request body!"))
	}

	if err := h.accounts.ResetPassword(c.Request().Context(), req.UserID, req.ResetString, req.NewPassword); err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, util.Success("Password has been reset successfully!", nil))
}

func (h *accountHandler) fail(c echo.Context, err error) error {
	status, message := classify(err)
	if status == http.StatusInternalServerError {
		log.Printf("account: %v", err)
	}
	return c.JSON(status, util.Failed(message))
}

// classify maps service outcomes onto the envelope. Anything unrecognized is
// an infrastructure failure and stays generic toward the client.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrEmptyInput):
		return http.StatusBadRequest, "Empty input fields!"
	case errors.Is(err, service.ErrInvalidName):
		return http.StatusBadRequest, "Invalid name entered!"
	case errors.Is(err, service.ErrInvalidEmail):
		return http.StatusBadRequest, "Invalid email entered!"
	case errors.Is(err, service.ErrInvalidDate):
		return http.StatusBadRequest, "Invalid date of birth entered!"
	case errors.Is(err, service.ErrWeakPassword):
		return http.StatusBadRequest, "Password is too short!"
	case errors.Is(err, service.ErrDuplicateAccount):
		return http.StatusConflict, "User with the provided email already exists!"
	case errors.Is(err, service.ErrMissingCredentials):
		return http.StatusBadRequest, "Email and password are required!"
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid credentials entered!"
	case errors.Is(err, service.ErrNotVerified):
		return http.StatusBadRequest, "Email hasn't been verified yet. Check your inbox."
	case errors.Is(err, service.ErrUnknownAccount):
		return http.StatusBadRequest, "No account with the provided email exists!"
	case errors.Is(err, service.ErrNoPendingVerification):
		return http.StatusBadRequest, "Account record doesn't exist or has been verified already. Please sign up or sign in."
	case errors.Is(err, service.ErrVerificationExpired):
		return http.StatusBadRequest, "Verification link has expired. Please sign up again."
	case errors.Is(err, service.ErrInvalidVerificationToken):
		return http.StatusBadRequest, "Invalid verification details passed. Check your inbox."
	case errors.Is(err, service.ErrNoPendingReset):
		return http.StatusBadRequest, "Password reset request not found."
	case errors.Is(err, service.ErrResetExpired):
		return http.StatusBadRequest, "Password reset link has expired."
	case errors.Is(err, service.ErrInvalidResetToken):
		return http.StatusBadRequest, "Invalid password reset details passed."
	case errors.Is(err, service.ErrVerificationDispatch):
		return http.StatusInternalServerError, "Verification email failed!"
	case errors.Is(err, service.ErrResetDispatch):
		return http.StatusInternalServerError, "Password reset email failed!"
	default:
		return http.StatusInternalServerError, "An error occurred while processing the request."
	}
}
