package handlers

import (
	"net/http"

	"haulhub/internal/http/middleware"
	"haulhub/internal/repositories"
	"haulhub/internal/services"

	"github.com/gin-gonic/gin"
)

func exportService(c *gin.Context) services.ExportService {
	return services.ExportService{
		TripRepo:  repositories.TripRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

func exportTripFilter(c *gin.Context) (repositories.TripFilter, bool) {
	start, ok := dateQuery(c, "startDate")
	if !ok {
		return repositories.TripFilter{}, false
	}
	end, ok := dateQuery(c, "endDate")
	if !ok {
		return repositories.TripFilter{}, false
	}
	return repositories.TripFilter{
		Status:    c.Query("status"),
		TruckID:   legacyQuery(c, "lorryId"),
		StartDate: start,
		EndDate:   end,
	}, true
}

// GET /api/exports/trips.xlsx
func ExportTripsXLSX(c *gin.Context) {
	filter, ok := exportTripFilter(c)
	if !ok {
		return
	}
	data, name, err := exportService(c).TripsXLSX(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// GET /api/exports/trips.csv
func ExportTripsCSV(c *gin.Context) {
	filter, ok := exportTripFilter(c)
	if !ok {
		return
	}
	data, name, err := exportService(c).TripsCSV(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}
