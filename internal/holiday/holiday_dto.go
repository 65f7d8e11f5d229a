package holiday

type CreateHolidayRequest struct {
	Date      string `json:"date" binding:"required,datetime=2006-01-02"`
	Name      string `json:"name" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=national state municipal company"`
	Recurring bool   `json:"recurring"`
}

type HolidayResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Recurring bool   `json:"recurring"`
}
