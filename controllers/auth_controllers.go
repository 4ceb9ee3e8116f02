package controllers

import (
	"context"
	"errors"
	"log"
	"os"
	"stayhub/config"
	"stayhub/constants"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

func convertToUserLoginResponse(user models.User) dto.UserLoginResponse {
	return dto.UserLoginResponse{
		UserID:       user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PhoneNumber:  user.PhoneNumber,
		PersonalCode: user.PersonalCode,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidatePassword(input.Password); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validator.ValidatePersonalCode(input.PersonalCode); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validator.ValidatePhone(input.PhoneNumber); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := services.CreateUser(config.DB, models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        strings.ToLower(input.Email),
		Password:     input.Password,
		PhoneNumber:  input.PhoneNumber,
		PersonalCode: input.PersonalCode,
		Role:         constants.RoleGuest,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Created(c, convertToUserLoginResponse(user))
}

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Invalid email or password")
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, refreshToken, err := services.IssueTokenPair(userInfo)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"user_info":    convertToUserLoginResponse(user),
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// RefreshTokenData rotates the caller's token pair. The presented refresh
// token must match the one currently stored for that user.
func RefreshTokenData(c *gin.Context) {
	var input dto.RefreshInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userInfo, err := services.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	accessToken, refreshToken, err := services.IssueTokenPair(userInfo)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func Logout(c *gin.Context) {
	userID := c.GetUint("userID")
	if err := services.RevokeRefreshToken(userID); err != nil {
		log.Printf("Failed to revoke refresh token for user %d: %v", userID, err)
	}

	response.Success(c, nil)
}

// AuthGoogle signs a user in with a Google ID token, creating a guest
// account on first sign-in.
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := verifyGoogleIDToken(input.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	givenName, _ := payload.Claims["given_name"].(string)
	familyName, _ := payload.Claims["family_name"].(string)

	if !verified {
		response.BadRequest(c, "Email has not been verified")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", strings.ToLower(email)).First(&user)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		// No national personal code is available from Google; the stable
		// subject claim stands in so the unique index holds.
		user = models.User{
			FirstName:    givenName,
			LastName:     familyName,
			Email:        strings.ToLower(email),
			PersonalCode: "google:" + payload.Subject,
			Role:         constants.RoleGuest,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			response.ServerError(c)
			return
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	userInfo := services.UserInfo{
		UserId: user.ID,
		Role:   user.Role,
	}

	accessToken, refreshToken, err := services.IssueTokenPair(userInfo)
	if err != nil {
		log.Println("Error generating tokens:", err)
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"user_info":    convertToUserLoginResponse(user),
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

func verifyGoogleIDToken(tokenID string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	return idtoken.Validate(context.Background(), tokenID, clientID)
}
