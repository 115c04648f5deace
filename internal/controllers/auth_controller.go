package controllers

import (
	"net/http"

	"github.com/Aslam-01/Food-Managment/internal/auth"
	"github.com/Aslam-01/Food-Managment/internal/models"
	"github.com/Aslam-01/Food-Managment/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthController handles signup and login.
type AuthController struct {
	users  services.UserService
	issuer *auth.Issuer
}

func NewAuthController(users services.UserService, issuer *auth.Issuer) *AuthController {
	return &AuthController{users: users, issuer: issuer}
}

type signupRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FullName  string `json:"full_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required,eqfield=Password"`
	Age       int    `json:"age" binding:"required"`
	City      string `json:"city" binding:"required"`
}

// Mismatched password2 surfaces as a "password" field error.
var signupFieldNames = map[string]string{
	"FullName":  "full_name",
	"Password2": "password",
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup creates an account and returns a fresh token pair.
func (ac *AuthController) Signup(ctx *gin.Context) {
	var req signupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, validationFields(err, signupFieldNames))
		return
	}

	user := models.User{
		Email:    req.Email,
		FullName: req.FullName,
		Age:      req.Age,
		City:     req.City,
		Password: req.Password,
	}
	if err := ac.users.Register(&user); err != nil {
		respondError(ctx, err)
		return
	}

	token, err := ac.issuer.IssueFor(&user)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"msg": "Register Successful", "token": token})
}

// Login authenticates by email+password and returns a fresh token pair.
// Unknown email and wrong password produce the identical response so the
// endpoint cannot be used to enumerate accounts.
func (ac *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, validationFields(err, nil))
		return
	}

	user, err := ac.users.Authenticate(req.Email, req.Password)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{
			"errors": gin.H{"validation_errors": []string{"password and email is not valid"}},
		})
		return
	}

	token, err := ac.issuer.IssueFor(user)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token, "msg": "Login Successful"})
}
