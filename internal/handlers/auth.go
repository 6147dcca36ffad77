package handlers

import (
  "fmt"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/neuroscale/neuroscale-site/internal/services"
)

type AuthHandler struct {
  authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
  return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Login(c *gin.Context) {
  var body struct {
    Email    string `json:"email" binding:"required"`
    Password string `json:"password" binding:"required"`
  }
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, "invalid_request", fmt.Errorf("email and password are required"))
    return
  }
  token, user, err := ah.authService.Login(c.Request.Context(), body.Email, body.Password)
  if err != nil {
    RespondError(c, http.StatusUnauthorized, "invalid_credentials", err)
    return
  }
  RespondOK(c, gin.H{"token": token, "user": user})
}
