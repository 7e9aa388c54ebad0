package handler

import (
	"errors"
	"net/http"
	"strconv"

	"khata-ledger/internal/middleware"
	"khata-ledger/internal/models"
	"khata-ledger/internal/service"
	"khata-ledger/internal/store"
	"khata-ledger/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the user placed in context by the auth middleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(middleware.CtxUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

// entryID parses the :entry_id path parameter.
func entryID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("entry_id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid entry id")
		return 0, false
	}
	return uint(id), true
}

// respondErr maps service/store errors onto the uniform envelope.
// Ownership mismatches already arrive as not-found, so nothing here can
// confirm the existence of another lender's records.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "invalid phone number or password")
	case errors.Is(err, service.ErrUnauthenticated):
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
	case errors.Is(err, store.ErrDuplicatePhone):
		util.Error(c, http.StatusConflict, util.CodeDuplicate, "phone number already registered")
	case errors.Is(err, store.ErrEntryNotFound), errors.Is(err, store.ErrPaymentNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "record not found")
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal error")
	}
}
