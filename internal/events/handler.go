package events

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	v1 "github.com/eventdesk-lab/eventdesk/internal/api/v1"
	"github.com/eventdesk-lab/eventdesk/internal/auth"
	httperr "github.com/eventdesk-lab/eventdesk/internal/core/errors"
	"github.com/eventdesk-lab/eventdesk/internal/core/storage"
	"github.com/eventdesk-lab/eventdesk/internal/core/validation"
	"github.com/eventdesk-lab/eventdesk/internal/hal"
	"github.com/gin-gonic/gin"
)

const (
	msgReadBodyFailed = "Failed to read request body"
	msgInvalidJSON    = "Invalid JSON body"
	msgEventNotFound  = "Event not found"
	msgInternal       = "Internal server error"

	embeddedRel = "eventList"

	profileCreate = "/docs/index.html#resources-events-create"
	profileList   = "/docs/index.html#resources-events-list"
	profileGet    = "/docs/index.html#resources-events-get"
	profileUpdate = "/docs/index.html#resources-events-update"
)

// handlerError carries the structured HTTP error shape from a helper back to the handler.
type handlerError struct {
	statusCode int
	errorType  string
	message    string
	details    interface{}
}

func (e *handlerError) Error() string {
	return e.message
}

// Handler exposes the event use cases as a HAL+JSON API.
type Handler struct {
	service          *Service
	maxBodySizeBytes int
}

func NewHandler(service *Service, maxBodySizeMB int) *Handler {
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1
	}
	return &Handler{service: service, maxBodySizeBytes: maxBodySizeMB * 1024 * 1024}
}

// RegisterRoutes registers the API under r, which must already run
// auth.Authenticate. Reads are open; writes require an account.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	api := r.Group("/api")
	{
		api.GET("", h.IndexHandler)
		api.GET("/events", h.QueryEventsHandler)
		api.GET("/events/:id", h.GetEventHandler)
		api.POST("/events", auth.RequireAccount(), h.CreateEventHandler)
		api.PUT("/events/:id", auth.RequireAccount(), h.UpdateEventHandler)
	}
}

// IndexHandler serves the API entry point.
func (h *Handler) IndexHandler(c *gin.Context) {
	res := hal.NewResource(nil)
	res.Links.Add("events", eventsURL(c))
	writeHAL(c, http.StatusOK, res)
}

// CreateEventHandler handles POST /api/events.
func (h *Handler) CreateEventHandler(c *gin.Context) {
	req, herr := h.parseRequest(c)
	if herr != nil {
		writeError(c, herr)
		return
	}

	event, err := h.service.CreateEvent(c.Request.Context(), req, auth.CurrentAccount(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	self := eventURL(c, event.ID)
	res := eventResource(event, self)
	res.Links.
		Add("query-events", eventsURL(c)).
		Add("update-event", self).
		Add("profile", docsURL(c, profileCreate))

	c.Header("Location", self)
	writeHAL(c, http.StatusCreated, res)
}

// QueryEventsHandler handles GET /api/events?page=&size=&sort=.
func (h *Handler) QueryEventsHandler(c *gin.Context) {
	pageReq, rawSort, herr := parsePageRequest(c)
	if herr != nil {
		writeError(c, herr)
		return
	}

	page, err := h.service.QueryEvents(c.Request.Context(), pageReq)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	meta := hal.NewPageMetadata(page.Size, page.Number, page.TotalElements)
	out := &hal.PagedResource{Links: hal.Links{}, Page: meta}

	if len(page.Items) > 0 {
		items := make([]*hal.Resource, 0, len(page.Items))
		for _, e := range page.Items {
			items = append(items, eventResource(e, eventURL(c, e.ID)))
		}
		out.Embedded = map[string]interface{}{embeddedRel: items}
	}

	pageLink := func(n int) string {
		return pageURL(c, n, page.Size, rawSort)
	}
	out.Links.Add("self", pageLink(page.Number))
	if meta.TotalPages > 0 {
		out.Links.Add("first", pageLink(0))
		out.Links.Add("last", pageLink(meta.TotalPages-1))
	}
	if page.Number > 0 {
		out.Links.Add("prev", pageLink(page.Number-1))
	}
	if page.Number < meta.TotalPages-1 {
		out.Links.Add("next", pageLink(page.Number+1))
	}
	out.Links.Add("profile", docsURL(c, profileList))
	if auth.CurrentAccount(c) != nil {
		out.Links.Add("create-event", eventsURL(c))
	}

	writeHAL(c, http.StatusOK, out)
}

// GetEventHandler handles GET /api/events/:id.
func (h *Handler) GetEventHandler(c *gin.Context) {
	id, herr := parseID(c)
	if herr != nil {
		writeError(c, herr)
		return
	}

	event, err := h.service.GetEvent(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	self := eventURL(c, event.ID)
	res := eventResource(event, self)
	res.Links.Add("profile", docsURL(c, profileGet))
	if event.IsManagedBy(auth.CurrentAccount(c)) {
		res.Links.Add("update-event", self)
	}
	writeHAL(c, http.StatusOK, res)
}

// UpdateEventHandler handles PUT /api/events/:id.
func (h *Handler) UpdateEventHandler(c *gin.Context) {
	id, herr := parseID(c)
	if herr != nil {
		writeError(c, herr)
		return
	}

	req, herr := h.parseRequest(c)
	if herr != nil {
		writeError(c, herr)
		return
	}

	event, err := h.service.UpdateEvent(c.Request.Context(), id, req, auth.CurrentAccount(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	res := eventResource(event, eventURL(c, event.ID))
	res.Links.Add("profile", docsURL(c, profileUpdate))
	writeHAL(c, http.StatusOK, res)
}

// parseRequest reads a size-limited body and decodes it strictly: fields
// that are not part of v1.EventRequest (id, free, eventStatus, ...) are rejected.
func (h *Handler) parseRequest(c *gin.Context) (*v1.EventRequest, *handlerError) {
	maxBytes := int64(h.maxBodySizeBytes)
	limitedBody := io.LimitReader(c.Request.Body, maxBytes+1) // +1 to detect oversized requests

	bodyBytes, err := io.ReadAll(limitedBody)
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		return nil, &handlerError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgReadBodyFailed,
		}
	}

	if int64(len(bodyBytes)) > maxBytes {
		slog.Warn("Request body exceeds maximum size", "size", len(bodyBytes), "max", maxBytes)
		return nil, &handlerError{
			statusCode: http.StatusRequestEntityTooLarge,
			errorType:  httperr.HttpPayloadTooLarge,
			message:    "Request body exceeds maximum allowed size",
			details: map[string]interface{}{
				"max_size_mb": maxBytes / (1024 * 1024),
			},
		}
	}

	dec := json.NewDecoder(bytes.NewReader(bodyBytes))
	dec.DisallowUnknownFields()

	var req v1.EventRequest
	if err := dec.Decode(&req); err != nil {
		slog.Warn("Invalid JSON body received", "error", err, "payload_size", len(bodyBytes))
		return nil, &handlerError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidJsonError,
			message:    msgInvalidJSON,
			details:    err.Error(),
		}
	}
	return &req, nil
}

func parseID(c *gin.Context) (int64, *handlerError) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &handlerError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidIDError,
			message:    fmt.Sprintf("Invalid event id: %q", c.Param("id")),
		}
	}
	return id, nil
}

// parsePageRequest reads page, size and sort ("field" or "field,asc|desc").
// It also returns the raw sort value so paging links can repeat it.
func parsePageRequest(c *gin.Context) (PageRequest, string, *handlerError) {
	req := PageRequest{Size: DefaultPageSize}

	invalid := func(msg string) (PageRequest, string, *handlerError) {
		return PageRequest{}, "", &handlerError{
			statusCode: http.StatusBadRequest,
			errorType:  httperr.HttpInvalidPageError,
			message:    msg,
		}
	}

	if raw := c.Query("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return invalid("page must be a non-negative integer")
		}
		req.Page = n
	}
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return invalid("size must be a positive integer")
		}
		if n > MaxPageSize {
			n = MaxPageSize
		}
		req.Size = n
	}
	if req.Page > math.MaxInt/req.Size {
		return invalid("page is out of range")
	}

	rawSort := c.Query("sort")
	if rawSort != "" {
		sort, ok := parseSort(rawSort)
		if !ok {
			return invalid(fmt.Sprintf("unsupported sort: %q", rawSort))
		}
		req.Sort = sort
	}
	return req, rawSort, nil
}

func parseSort(raw string) (storage.Sort, bool) {
	field, dir, _ := strings.Cut(raw, ",")
	field = strings.TrimSpace(field)

	switch field {
	case storage.SortByID, storage.SortByName, storage.SortByBeginEventDateTime:
	default:
		return storage.Sort{}, false
	}

	switch strings.ToLower(strings.TrimSpace(dir)) {
	case "", "asc":
		return storage.Sort{Field: field}, true
	case "desc":
		return storage.Sort{Field: field, Desc: true}, true
	default:
		return storage.Sort{}, false
	}
}

// handleServiceError maps service errors onto HTTP responses.
func (h *Handler) handleServiceError(c *gin.Context, err error) {
	var verrs *validation.Errors
	switch {
	case errors.As(err, &verrs):
		slog.Info("Event input rejected", "error", verrs.Error())
		res := hal.NewResource(verrs)
		res.Links.Add("index", indexURL(c))
		writeHAL(c, http.StatusBadRequest, res)
	case errors.Is(err, storage.ErrNotFound):
		writeError(c, &handlerError{
			statusCode: http.StatusNotFound,
			errorType:  httperr.HttpEventNotFoundError,
			message:    msgEventNotFound,
		})
	case errors.Is(err, ErrNotManager):
		c.Status(http.StatusForbidden)
	default:
		slog.Error("Event request failed", "error", err, "path", c.Request.URL.Path)
		writeError(c, &handlerError{
			statusCode: http.StatusInternalServerError,
			errorType:  httperr.HttpInternalError,
			message:    msgInternal,
		})
	}
}

func eventResource(e *v1.Event, self string) *hal.Resource {
	res := hal.NewResource(e)
	res.Links.Add("self", self)
	return res
}

func indexURL(c *gin.Context) string {
	return hal.BaseURL(c.Request) + "/api"
}

func eventsURL(c *gin.Context) string {
	return indexURL(c) + "/events"
}

func eventURL(c *gin.Context, id int64) string {
	return eventsURL(c) + "/" + strconv.FormatInt(id, 10)
}

func docsURL(c *gin.Context, fragment string) string {
	return hal.BaseURL(c.Request) + fragment
}

func pageURL(c *gin.Context, page, size int, sort string) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	if sort != "" {
		q.Set("sort", sort)
	}
	return eventsURL(c) + "?" + q.Encode()
}

func writeHAL(c *gin.Context, status int, body interface{}) {
	c.Header("Content-Type", hal.ContentType)
	c.JSON(status, body)
}

// writeError serializes a handlerError as the JSON HTTP response.
func writeError(c *gin.Context, err *handlerError) {
	c.JSON(err.statusCode, httperr.ErrorResponse{
		ErrorType: err.errorType,
		Message:   err.message,
		Details:   err.details,
	})
}
