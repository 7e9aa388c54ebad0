package handler

import (
	"net/http"

	"khata-ledger/internal/middleware"
	"khata-ledger/internal/models"
	"khata-ledger/internal/service"
	"khata-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler owns the register/login/logout endpoints.
type AuthHandler struct {
	Auth       *service.AuthService
	CookieName string
}

func NewAuthHandler(auth *service.AuthService, cookieName string) *AuthHandler {
	return &AuthHandler{
		Auth:       auth,
		CookieName: cookieName,
	}
}

type registerReq struct {
	PhoneNumber string `form:"phone_number" json:"phone_number" binding:"required"`
	Name        string `form:"name" json:"name" binding:"required"`
	Password    string `form:"password" json:"password" binding:"required"`
}

type loginReq struct {
	PhoneNumber string `form:"phone_number" json:"phone_number" binding:"required"`
	Password    string `form:"password" json:"password" binding:"required"`
}

func userResp(user *models.User) gin.H {
	return gin.H{
		"id":           user.ID,
		"phone_number": user.PhoneNumber,
		"name":         user.Name,
	}
}

// setSessionCookie hands the opaque token to the browser. MaxAge 0 makes
// it a session cookie; server-side state decides validity either way.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(h.CookieName, token, 0, "/", "", false, true)
}

// Register creates the lender account and logs it in straight away.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBind(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "phone_number, name and password are required")
		return
	}

	session, user, err := h.Auth.Register(c.Request.Context(), req.PhoneNumber, req.Name, req.Password)
	if err != nil {
		respondErr(c, err)
		return
	}

	h.setSessionCookie(c, session.ID)
	util.Success(c, util.Response{
		"token": session.ID,
		"user":  userResp(user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBind(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "phone_number and password are required")
		return
	}

	session, user, err := h.Auth.Login(c.Request.Context(), req.PhoneNumber, req.Password)
	if err != nil {
		respondErr(c, err)
		return
	}

	h.setSessionCookie(c, session.ID)
	util.Success(c, util.Response{
		"token": session.ID,
		"user":  userResp(user),
	})
}

// Logout revokes the current session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if v, ok := c.Get(middleware.CtxTokenKey); ok {
		if token, ok := v.(string); ok && token != "" {
			if err := h.Auth.Logout(c.Request.Context(), token); err != nil {
				respondErr(c, err)
				return
			}
		}
	}

	c.SetCookie(h.CookieName, "", -1, "/", "", false, true)
	util.Success(c, util.Response{
		"message": "logged out",
	})
}
