package controllers

import (
	stderrors "errors"
	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/validator"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func convertToClientResponse(user models.User) dto.ClientResponse {
	return dto.ClientResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PhoneNumber:  user.PhoneNumber,
		PersonalCode: user.PersonalCode,
		Role:         user.Role,
	}
}

// GetClients lists registered users ordered by last name, paginated.
// Admin only.
func GetClients(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	var users []models.User
	err = config.DB.Order("last_name ASC, first_name ASC").Find(&users).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	total := len(users)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	clients := make([]dto.ClientResponse, 0, end-start)
	for _, user := range users[start:end] {
		clients = append(clients, convertToClientResponse(user))
	}

	response.SuccessWithPagination(c, clients, page, limit, total)
}

func GetClientByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid client id")
		return
	}

	var user models.User
	if err := config.DB.First(&user, uint(id)).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, convertToClientResponse(user))
}

// UpdateClient edits a client's name and personal code. Admin only; email
// and role are not editable here.
func UpdateClient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid client id")
		return
	}

	var request dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if uint(id) != request.ID {
		response.BadRequest(c, "Client ID does not match the ID in the request")
		return
	}

	if err := validator.ValidatePersonalCode(request.PersonalCode); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, uint(id)).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	var existing models.User
	err = config.DB.Where("personal_code = ? AND id <> ?", request.PersonalCode, user.ID).
		First(&existing).Error
	if err == nil {
		response.BadRequest(c, "Personal code is already in use")
		return
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		response.ServerError(c)
		return
	}

	user.FirstName = request.FirstName
	user.LastName = request.LastName
	user.PersonalCode = request.PersonalCode

	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToClientResponse(user))
}
