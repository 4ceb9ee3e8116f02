package dto

type CreateRoomRequest struct {
	HotelID    uint    `json:"hotelId" binding:"required"`
	RoomNumber int     `json:"roomNumber" binding:"required"`
	RoomName   string  `json:"roomName"`
	BedCount   int     `json:"bedCount" binding:"required"`
	Price      float64 `json:"price"`
	ImageUrl   string  `json:"imageUrl"`
}

type UpdateRoomRequest struct {
	ID         uint    `json:"id" binding:"required"`
	HotelID    uint    `json:"hotelId" binding:"required"`
	RoomNumber int     `json:"roomNumber" binding:"required"`
	RoomName   string  `json:"roomName"`
	BedCount   int     `json:"bedCount" binding:"required"`
	Price      float64 `json:"price"`
	ImageUrl   string  `json:"imageUrl"`
}

type RoomResponse struct {
	ID         uint    `json:"id"`
	HotelID    uint    `json:"hotelId"`
	HotelName  string  `json:"hotelName,omitempty"`
	RoomNumber int     `json:"roomNumber"`
	RoomName   string  `json:"roomName"`
	BedCount   int     `json:"bedCount"`
	Price      float64 `json:"price"`
	ImageUrl   string  `json:"imageUrl"`
}
