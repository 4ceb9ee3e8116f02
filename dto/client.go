package dto

type UpdateClientRequest struct {
	ID           uint   `json:"id" binding:"required"`
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	PersonalCode string `json:"personalCode" binding:"required"`
}

type ClientResponse struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	PersonalCode string `json:"personalCode"`
	Role         int    `json:"role"`
}
