package services

import (
	stderrors "errors"
	"fmt"
	"net/smtp"
	"stayhub/config"
	"stayhub/models"
	"stayhub/utils"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	accessTokenMinutes  = 60
	refreshTokenMinutes = 60 * 24 * 7
)

func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func GetUserByEmail(db *gorm.DB, email string) (models.User, error) {
	var user models.User
	result := db.Where("email = ?", email).First(&user)

	if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
		return user, fmt.Errorf("no user found with email %s", email)
	}

	if result.Error != nil {
		return user, result.Error
	}

	return user, nil
}

// CreateUser registers a new user with a hashed password. Email and
// personal code must be unused.
func CreateUser(db *gorm.DB, input models.User) (models.User, error) {
	if input.Email == "" || input.Password == "" || input.PersonalCode == "" {
		return models.User{}, stderrors.New("email, password and personal code must not be empty")
	}

	if _, err := GetUserByEmail(db, input.Email); err == nil {
		return models.User{}, fmt.Errorf("email %s is already in use", input.Email)
	}

	var existing models.User
	if err := db.Where("personal_code = ?", input.PersonalCode).First(&existing).Error; err == nil {
		return models.User{}, fmt.Errorf("personal code %s is already in use", input.PersonalCode)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Password:     hashedPassword,
		PhoneNumber:  input.PhoneNumber,
		PersonalCode: input.PersonalCode,
		Role:         input.Role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if result := db.Create(&user); result.Error != nil {
		return user, result.Error
	}

	utils.LogInfo("Registered user %d (%s)", user.ID, user.Email)

	return user, nil
}

// IssueTokenPair signs an access/refresh token pair and stores the refresh
// token in Redis keyed by user, so rotation can invalidate the old one.
func IssueTokenPair(userInfo UserInfo) (accessToken string, refreshToken string, err error) {
	accessToken, err = GenerateToken(userInfo, accessTokenMinutes, true)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = GenerateToken(userInfo, refreshTokenMinutes, false)
	if err != nil {
		return "", "", err
	}

	key := refreshTokenKey(userInfo.UserId)
	ttl := time.Duration(refreshTokenMinutes) * time.Minute
	if err = SetToRedis(config.Ctx, config.RedisClient, key, refreshToken, ttl); err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateRefreshToken verifies the token's signature and that it is the
// currently stored token for that user.
func ValidateRefreshToken(tokenString string) (UserInfo, error) {
	claims, err := ParseToken(tokenString, false)
	if err != nil {
		return UserInfo{}, err
	}

	var stored string
	if err := GetFromRedis(config.Ctx, config.RedisClient, refreshTokenKey(claims.UserInfo.UserId), &stored); err != nil {
		return UserInfo{}, err
	}
	if stored == "" || stored != tokenString {
		return UserInfo{}, stderrors.New("refresh token has been revoked")
	}

	return claims.UserInfo, nil
}

// RevokeRefreshToken drops the stored refresh token, ending the session.
func RevokeRefreshToken(userID uint) error {
	return DeleteFromRedis(config.Ctx, config.RedisClient, refreshTokenKey(userID))
}

func refreshTokenKey(userID uint) string {
	return fmt.Sprintf("auth:refresh:%d", userID)
}

func sendMail(to string, subject string, body string) error {
	from := config.GetEnv("SMTP_FROM")
	password := config.GetEnv("SMTP_PASSWORD")
	host := config.GetEnv("SMTP_HOST")
	port := config.GetEnv("SMTP_PORT")

	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" +
		"Subject: " + subject + "\n\n" + body)

	auth := smtp.PlainAuth("", from, password, host)

	if err := smtp.SendMail(host+":"+port, auth, from, []string{to}, msg); err != nil {
		utils.LogError("Failed to send mail to %s: %v", to, err)
		return err
	}
	return nil
}

// SendBookingEmail mails a booking confirmation to the guest.
func SendBookingEmail(email string, bookingID uint, roomNumber int, startDate, endDate string) error {
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Booking confirmed</title>
	</head>
	<body>
		<p>Hello,</p>
		<p>Your booking has been confirmed.</p>
		<ul>
			<li>Booking number: <strong>%d</strong></li>
			<li>Room: <strong>%d</strong></li>
			<li>Check-in: <strong>%s</strong></li>
			<li>Check-out: <strong>%s</strong></li>
		</ul>
		<p>We will let you know if anything about your booking changes.</p>
		<p>Thank you,<br>The booking team</p>
	</body>
	</html>`, bookingID, roomNumber, startDate, endDate)

	return sendMail(email, "Booking confirmed", body)
}

// SendCheckInReminderEmail mails an upcoming check-in reminder to the guest.
func SendCheckInReminderEmail(email string, roomNumber int, startDate string) error {
	body := fmt.Sprintf(`<!DOCTYPE html>
	<html>
	<head>
		<meta charset="UTF-8">
		<title>Check-in reminder</title>
	</head>
	<body>
		<p>Hello,</p>
		<p>A reminder that your stay in room <strong>%d</strong> starts on <strong>%s</strong>.</p>
		<p>Thank you,<br>The booking team</p>
	</body>
	</html>`, roomNumber, startDate)

	return sendMail(email, "Your stay starts soon", body)
}
