package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"haulhub/internal/compat"
	"haulhub/internal/domain/models"
	"haulhub/internal/http/middleware"
	"haulhub/internal/projection"
	"haulhub/internal/repositories"
	"haulhub/internal/services"
	"haulhub/internal/utils"

	"github.com/gin-gonic/gin"
)

func tripService(c *gin.Context) services.TripService {
	return services.TripService{
		TripRepo:  repositories.TripRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

func callerRole(c *gin.Context) projection.Role {
	return projection.ParseRole(middleware.GetUserRole(c))
}

// bindTripInput decodes a trip payload, translating legacy field names
// (lorryOwnerPayment, mileageOrder, lorryId) onto the canonical schema
// before binding.
func bindTripInput(c *gin.Context, dst *services.TripInput) bool {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "empty body")
		return false
	}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid json: "+err.Error())
		return false
	}

	canonical, err := json.Marshal(compat.NormalizeRecord(raw))
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid payload")
		return false
	}
	if err := json.Unmarshal(canonical, dst); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid payload: "+err.Error())
		return false
	}
	return true
}

// legacyQuery reads a filter param that still has a legacy spelling in the
// wild (lorryId and friends). The canonical name wins when both are sent.
func legacyQuery(c *gin.Context, legacy string) string {
	if v := c.Query(compat.CanonicalKey(legacy)); v != "" {
		return v
	}
	return c.Query(legacy)
}

// dateQuery validates an optional YYYY-MM-DD query param and returns it
// normalized.
func dateQuery(c *gin.Context, key string) (string, bool) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return "", true
	}
	d, err := utils.ParseDate(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", key+" must be YYYY-MM-DD")
		return "", false
	}
	return utils.FormatDate(d), true
}

// GET /api/trips
func GetTrips(c *gin.Context) {
	start, ok := dateQuery(c, "startDate")
	if !ok {
		return
	}
	end, ok := dateQuery(c, "endDate")
	if !ok {
		return
	}
	filter := repositories.TripFilter{
		Status:    c.Query("status"),
		DriverID:  c.Query("driverId"),
		TruckID:   legacyQuery(c, "lorryId"),
		StartDate: start,
		EndDate:   end,
	}

	out, err := tripService(c).ListProjected(filter, callerRole(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/trips/:id
func GetTripByID(c *gin.Context) {
	out, err := tripService(c).GetProjected(c.Param("id"), callerRole(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/trips
func CreateTrip(c *gin.Context) {
	var in services.TripInput
	if !bindTripInput(c, &in) {
		return
	}

	t, err := tripService(c).Create(in, middleware.RequestContext(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, projection.Apply(t.ToRecord(), callerRole(c)))
}

// PUT /api/trips/:id
func UpdateTrip(c *gin.Context) {
	var in services.TripInput
	if !bindTripInput(c, &in) {
		return
	}

	t, err := tripService(c).Update(c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, projection.Apply(t.ToRecord(), callerRole(c)))
}

type statusRequest struct {
	OrderStatus string `json:"orderStatus"`
	TripStatus  string `json:"tripStatus"` // legacy spelling
}

// POST /api/trips/:id/status
func TransitionTrip(c *gin.Context) {
	var req statusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	raw := req.OrderStatus
	if raw == "" {
		raw = req.TripStatus
	}

	status, ok := models.ParseOrderStatus(raw)
	if !ok {
		respondError(c, http.StatusBadRequest, "validation_error", "unknown order status")
		return
	}

	t, err := tripService(c).Transition(c.Param("id"), status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, projection.Apply(t.ToRecord(), callerRole(c)))
}

type processPaymentsRequest struct {
	TripIDs []string `json:"tripIds"`
}

// POST /api/trips/process-payments — bulk Delivered -> Paid.
func ProcessPayments(c *gin.Context) {
	var req processPaymentsRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if len(req.TripIDs) == 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "tripIds required")
		return
	}

	n, err := tripService(c).ProcessPayments(req.TripIDs)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"processed": n})
}
