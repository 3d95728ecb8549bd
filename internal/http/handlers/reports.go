package handlers

import (
	"net/http"

	"haulhub/internal/repositories"
	"haulhub/internal/services"

	"github.com/gin-gonic/gin"
)

func reportFilter(c *gin.Context) (services.ReportFilter, bool) {
	start, ok := dateQuery(c, "startDate")
	if !ok {
		return services.ReportFilter{}, false
	}
	end, ok := dateQuery(c, "endDate")
	if !ok {
		return services.ReportFilter{}, false
	}
	return services.ReportFilter{
		StartDate: start,
		EndDate:   end,
		TruckID:   legacyQuery(c, "lorryId"),
	}, true
}

// GET /api/reports/fuel
func GetFuelReport(c *gin.Context) {
	filter, ok := reportFilter(c)
	if !ok {
		return
	}
	svc := services.ReportService{TripRepo: repositories.TripRepository{}}
	rows, err := svc.FuelReport(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/reports/finance
func GetFinanceReport(c *gin.Context) {
	filter, ok := reportFilter(c)
	if !ok {
		return
	}
	svc := services.ReportService{TripRepo: repositories.TripRepository{}}
	sum, err := svc.FinanceReport(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}
