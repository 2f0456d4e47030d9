package profileservice

// Client модель профиля клиента из ProfileService
type ClientProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// PhotographerProfile модель профиля фотографа из ProfileService
type PhotographerProfile struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Specialties  []string `json:"specialties,omitempty"`
	IsActive     bool     `json:"is_active"`
	PortfolioURL string   `json:"portfolio_url,omitempty"`
}

// ErrorResponse модель ошибки от ProfileService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
