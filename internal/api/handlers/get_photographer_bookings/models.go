package get_photographer_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-PhotographerService/internal/domain"
	"github.com/m04kA/SMC-PhotographerService/internal/service/bookings/models"
)

// ToServiceRequest создает запрос к сервису из path и query параметров
func ToServiceRequest(photographerID string, actor domain.Actor, query url.Values) (*models.GetPhotographerBookingsRequest, error) {
	req := &models.GetPhotographerBookingsRequest{
		PhotographerID: photographerID,
		Actor:          actor,
	}

	if startDate := query.Get("startDate"); startDate != "" {
		parsed, err := time.Parse(domain.DateFormat, startDate)
		if err != nil {
			return nil, err
		}
		req.StartDate = &parsed
	}

	if endDate := query.Get("endDate"); endDate != "" {
		parsed, err := time.Parse(domain.DateFormat, endDate)
		if err != nil {
			return nil, err
		}
		req.EndDate = &parsed
	}

	// Одиночный параметр date эквивалентен периоду из одной даты
	if date := query.Get("date"); date != "" {
		parsed, err := time.Parse(domain.DateFormat, date)
		if err != nil {
			return nil, err
		}
		req.StartDate = &parsed
		req.EndDate = &parsed
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if includeInactive := query.Get("includeInactive"); includeInactive != "" {
		parsed, err := strconv.ParseBool(includeInactive)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = parsed
	}

	return req, nil
}
