package handlers

import (
	"bytes"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"rental-server/filter"
	"rental-server/models"
	services "rental-server/service"
	"rental-server/util"
)

const (
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"
	FROM_QUERY_ARG   = "from"
	TO_QUERY_ARG     = "to"
	ID_PATH_VAR      = "id"
)

type ListingHandler struct {
	listingService    *services.ListingService
	submissionService *services.SubmissionService
}

func NewListingHandler(listingService *services.ListingService, submissionService *services.SubmissionService) *ListingHandler {
	return &ListingHandler{listingService: listingService, submissionService: submissionService}
}

// StayRequest is the body of the quote and reservation endpoints.
type StayRequest struct {
	CheckIn  models.Date `json:"check_in"`
	CheckOut models.Date `json:"check_out"`
	Guests   int         `json:"guests"`
	Message  string      `json:"message,omitempty"`
}

// Search handles GET /v1/listings/search
func (h *ListingHandler) Search(w http.ResponseWriter, r *http.Request) {
	res, ok := h.search(w, r)
	if !ok {
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

// Map handles GET /v1/listings/map and renders the same result set as Search.
func (h *ListingHandler) Map(w http.ResponseWriter, r *http.Request) {
	res, ok := h.search(w, r)
	if !ok {
		return
	}
	region := h.listingService.Region()
	var buf bytes.Buffer
	err := util.RenderListingsMap(&buf, res.Listings, util.MapOptions{
		Title:    region.Name,
		Center:   models.Coordinates(region.MapCenter),
		Currency: region.Currency,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}

func (h *ListingHandler) search(w http.ResponseWriter, r *http.Request) (*services.SearchResult, bool) {
	vals := r.URL.Query()
	order, ok := filter.ParseSortOrder(vals.Get(filter.SORT_QUERY_ARG))
	if !ok {
		BadRequest(w, r, "Invalid argument "+filter.SORT_QUERY_ARG)
		return nil, false
	}
	c := filter.FromQuery(vals, h.listingService.PriceSpan())

	res, err := h.listingService.Search(c, order)
	if err != nil {
		writeServiceError(w, r, err)
		return nil, false
	}
	return res, true
}

// GetListing handles GET /v1/listings/{id}
func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	l, err := h.listingService.Get(mux.Vars(r)[ID_PATH_VAR])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, l)
}

// Nearby handles GET /v1/listings/nearby?lat={float}&lon={float}&radius={km}
func (h *ListingHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	var coords [3]float64
	for i, name := range []string{LAT_QUERY_ARG, LON_QUERY_ARG, RADIUS_QUERY_ARG} {
		v, err := parseArgFloat64(vals, name)
		if err != nil {
			BadRequest(w, r, "Invalid argument "+name)
			return
		}
		coords[i] = v
	}

	listings, err := h.listingService.Nearby(coords[0], coords[1], coords[2])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, listings)
}

// Availability handles GET /v1/listings/{id}/availability?from&to
func (h *ListingHandler) Availability(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	from, err := parseArgDate(vals, FROM_QUERY_ARG)
	if err != nil {
		BadRequest(w, r, "Invalid argument "+FROM_QUERY_ARG)
		return
	}
	to, err := parseArgDate(vals, TO_QUERY_ARG)
	if err != nil {
		BadRequest(w, r, "Invalid argument "+TO_QUERY_ARG)
		return
	}

	a, err := h.listingService.Availability(mux.Vars(r)[ID_PATH_VAR], from, to)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, a)
}

// Quote handles POST /v1/listings/{id}/quote
func (h *ListingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req StayRequest
	if err := decodeJSON(w, r, &req); err != nil {
		BadRequest(w, r, err.Error())
		return
	}
	q, err := h.listingService.Quote(mux.Vars(r)[ID_PATH_VAR], req.CheckIn, req.CheckOut, req.Guests)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, q)
}

// Reserve handles POST /v1/listings/{id}/reservations
func (h *ListingHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	var req StayRequest
	if err := decodeJSON(w, r, &req); err != nil {
		BadRequest(w, r, err.Error())
		return
	}
	res, err := h.listingService.Reserve(mux.Vars(r)[ID_PATH_VAR], req.CheckIn, req.CheckOut, req.Guests, req.Message)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusAccepted, res)
}

// Submit handles POST /v1/listings
func (h *ListingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var s models.PropertySubmission
	if err := decodeJSON(w, r, &s); err != nil {
		BadRequest(w, r, err.Error())
		return
	}
	receipt, err := h.submissionService.Submit(s)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusAccepted, receipt)
}

// Cities handles GET /v1/cities
func (h *ListingHandler) Cities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.listingService.Cities()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, cities)
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	return strconv.ParseFloat(vals.Get(name), 64)
}

// parseArgDate returns the zero date when the argument is absent.
func parseArgDate(vals url.Values, name string) (models.Date, error) {
	v := vals.Get(name)
	if v == "" {
		return models.Date{}, nil
	}
	return models.ParseDate(v)
}
