package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/authkeeper/internal/common"
)

func (s *Server) createUser(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope{
			Success: false,
			Message: msgValidationsErrors,
			Errors:  map[string][]string{"json": {msgInvalidJSON}},
		})
		return
	}

	s.logger.Info(ctx, "create_user request received", "username", req.Username)

	if errs := s.validateRequest(&req); errs != nil {
		s.logger.Warn(ctx, "create_user validation failed", "errors", errs)
		c.JSON(http.StatusBadRequest, envelope{Success: false, Message: msgValidationsErrors, Errors: errs})
		return
	}

	user, err := s.auth.Register(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			errs := map[string][]string{"username": {msgUsernameTaken}}
			s.logger.Warn(ctx, "create_user rejected", "errors", errs)
			c.JSON(http.StatusConflict, envelope{Success: false, Message: msgValidationsErrors, Errors: errs})
			return
		}
		s.logger.Error(ctx, "unexpected error on create_user", "error", err.Error())
		c.JSON(http.StatusInternalServerError, newInternalError())
		return
	}

	s.logger.Info(ctx, "user registered", "id", user.ID, "username", user.Username)
	c.JSON(http.StatusCreated, envelope{
		Success: true,
		Message: msgUserRegistered,
		Data: userData{
			ID:          user.ID,
			Username:    user.Username,
			DateCreated: user.CreatedAt.Format(dateCreatedLayout),
		},
	})
}

func (s *Server) userLogin(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope{
			Success: false,
			Message: msgValidationErrors,
			Errors:  map[string][]string{"json": {msgInvalidJSON}},
			Code:    http.StatusBadRequest,
		})
		return
	}

	s.logger.Info(ctx, "user_login request", "username", req.Username)

	if errs := s.validateRequest(&req); errs != nil {
		s.logger.Warn(ctx, "user_login validation failed", "errors", errs)
		c.JSON(http.StatusBadRequest, envelope{
			Success: false,
			Message: msgValidationErrors,
			Errors:  errs,
			Code:    http.StatusBadRequest,
		})
		return
	}

	token, err := s.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			// Uniform body for unknown user and wrong password; the cause
			// was already logged by the service.
			c.JSON(http.StatusUnauthorized, envelope{Success: false, Message: msgInvalidCredentials})
			return
		}
		s.logger.Error(ctx, "unexpected error on user_login", "error", err.Error())
		c.JSON(http.StatusInternalServerError, newInternalError())
		return
	}

	s.logger.Info(ctx, "user logged in", "username", req.Username)
	c.JSON(http.StatusOK, envelope{Success: true, Message: msgLoginSuccessful, AccessToken: token})
}

func (s *Server) userLogout(c *gin.Context) {
	ctx := c.Request.Context()

	var req logoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, envelope{
			Success: false,
			Message: msgValidationErrors,
			Errors:  map[string][]string{"json": {msgInvalidJSON}},
			Code:    http.StatusBadRequest,
		})
		return
	}

	s.logger.Info(ctx, "user_logout request", "username", req.Username)

	if errs := s.validateRequest(&req); errs != nil {
		s.logger.Warn(ctx, "user_logout validation failed", "errors", errs)
		c.JSON(http.StatusBadRequest, envelope{
			Success: false,
			Message: msgValidationErrors,
			Errors:  errs,
			Code:    http.StatusBadRequest,
		})
		return
	}

	jti := c.GetString(ctxKeyTokenID)

	if err := s.auth.Logout(ctx, req.Username, jti); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			c.JSON(http.StatusUnauthorized, envelope{Success: false, Message: msgUserNotFound})
			return
		}
		s.logger.Error(ctx, "unexpected error on user_logout", "error", err.Error())
		c.JSON(http.StatusInternalServerError, newInternalError())
		return
	}

	c.JSON(http.StatusOK, envelope{Success: true, Message: msgUserLoggedOut})
}
