package dto

type HotelResponse struct {
	HotelID int     `json:"hotel_id"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Rating  float64 `json:"rating"`
	Price   string  `json:"price"`
}

type ListHotelsResponse struct {
	Hotels []HotelResponse `json:"hotels"`
}
