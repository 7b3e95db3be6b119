package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/eventdesk-lab/eventdesk/internal/accounts"
	v1 "github.com/eventdesk-lab/eventdesk/internal/api/v1"
	"github.com/eventdesk-lab/eventdesk/internal/auth"
	"github.com/eventdesk-lab/eventdesk/internal/core/storage/memory"
	"github.com/eventdesk-lab/eventdesk/internal/hal"
	"github.com/eventdesk-lab/eventdesk/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	router       *gin.Engine
	store        *memory.Store
	managerToken string
	otherToken   string
	manager      *v1.Account
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	accountService := accounts.NewService(store, accounts.NewPasswordEncoder(bcrypt.MinCost))

	mgr := &v1.Account{Email: "manager@email.com", Password: "manager", Roles: []v1.AccountRole{v1.RoleUser}}
	other := &v1.Account{Email: "other@email.com", Password: "other", Roles: []v1.AccountRole{v1.RoleUser}}
	require.NoError(t, accountService.SaveAccount(context.Background(), mgr))
	require.NoError(t, accountService.SaveAccount(context.Background(), other))

	tokens := auth.NewTokenService(auth.TokenConfig{
		SigningKey:      "test-key",
		ResourceID:      "event",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: time.Hour,
	})
	mgrPair, err := tokens.Issue(mgr)
	require.NoError(t, err)
	otherPair, err := tokens.Issue(other)
	require.NoError(t, err)

	r := gin.New()
	api := r.Group("", auth.Authenticate(tokens, accountService))
	NewHandler(NewService(store, NewValidator(), metrics.New()), 1).RegisterRoutes(api)

	return &testServer{
		router:       r,
		store:        store,
		managerToken: mgrPair.AccessToken,
		otherToken:   otherPair.AccessToken,
		manager:      mgr,
	}
}

func (s *testServer) do(t *testing.T, method, path, body, token string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w, out
}

func (s *testServer) seedEvents(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		req := validRequest()
		req.Name = fmt.Sprintf("event %02d", i)
		e := req.NewEvent()
		e.Update()
		e.SetManager(s.manager)
		require.NoError(t, s.store.CreateEvent(context.Background(), e))
	}
}

func requestBody(t *testing.T, overrides map[string]interface{}) string {
	t.Helper()

	body := map[string]interface{}{
		"name":                    "Gophers",
		"description":             "REST API Development with Go",
		"beginEnrollmentDateTime": "2018-11-23T14:21:00Z",
		"closeEnrollmentDateTime": "2018-11-24T14:21:00Z",
		"beginEventDateTime":      "2018-11-25T14:21:00Z",
		"endEventDateTime":        "2018-11-26T14:21:00Z",
		"basePrice":               100,
		"maxPrice":                200,
		"limitOfEnrollment":       100,
		"location":                "강남역 D2 스타텁 팩토리",
	}
	for k, v := range overrides {
		body[k] = v
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return string(raw)
}

func links(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	l, ok := body["_links"].(map[string]interface{})
	require.True(t, ok, "missing _links in %v", body)
	return l
}

func href(t *testing.T, body map[string]interface{}, rel string) string {
	t.Helper()
	link, ok := links(t, body)[rel].(map[string]interface{})
	require.True(t, ok, "missing link %q", rel)
	return link["href"].(string)
}

func TestIndex(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodGet, "/api", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, hal.ContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, "http://example.com/api/events", href(t, body, "events"))
}

func TestCreateEvent(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodPost, "/api/events", requestBody(t, nil), s.managerToken)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, hal.ContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, "http://example.com/api/events/1", w.Header().Get("Location"))

	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, false, body["free"])
	assert.Equal(t, true, body["offline"])
	assert.Equal(t, "DRAFT", body["eventStatus"])
	assert.EqualValues(t, s.manager.ID, body["manager"].(map[string]interface{})["id"])

	assert.Equal(t, "http://example.com/api/events/1", href(t, body, "self"))
	assert.Equal(t, "http://example.com/api/events", href(t, body, "query-events"))
	assert.Equal(t, "http://example.com/api/events/1", href(t, body, "update-event"))
	assert.Equal(t, "http://example.com/docs/index.html#resources-events-create", href(t, body, "profile"))
}

func TestCreateEvent_FreeOnline(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodPost, "/api/events", requestBody(t, map[string]interface{}{
		"basePrice": 0,
		"maxPrice":  0,
		"location":  "   ",
	}), s.managerToken)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["free"])
	assert.Equal(t, false, body["offline"])
}

func TestCreateEvent_UnknownFieldsRejected(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodPost, "/api/events", requestBody(t, map[string]interface{}{
		"id":          100,
		"free":        true,
		"offline":     false,
		"eventStatus": "PUBLISHED",
	}), s.managerToken)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_json", body["error_type"])
}

func TestCreateEvent_EmptyInput(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodPost, "/api/events", "{}", s.managerToken)

	require.Equal(t, http.StatusBadRequest, w.Code)
	content, ok := body["content"].([]interface{})
	require.True(t, ok)
	assert.Len(t, content, 6)
	first := content[0].(map[string]interface{})
	assert.Equal(t, "eventRequest", first["objectName"])
	assert.Equal(t, "required", first["code"])
	assert.Equal(t, "http://example.com/api", href(t, body, "index"))
}

func TestCreateEvent_WrongInput(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodPost, "/api/events", requestBody(t, map[string]interface{}{
		"basePrice":        10000,
		"maxPrice":         200,
		"endEventDateTime": "2018-11-22T14:21:00Z",
	}), s.managerToken)

	require.Equal(t, http.StatusBadRequest, w.Code)
	content := body["content"].([]interface{})
	require.Len(t, content, 2)

	fieldErr := content[0].(map[string]interface{})
	assert.Equal(t, "endEventDateTime", fieldErr["field"])
	assert.Equal(t, "wrongValue", fieldErr["code"])
	assert.Equal(t, "endEventDateTime is wrong", fieldErr["defaultMessage"])
	assert.Equal(t, "2018-11-22T14:21:00Z", fieldErr["rejectedValue"])

	globalErr := content[1].(map[string]interface{})
	assert.Equal(t, "wrongPrices", globalErr["code"])
	assert.NotContains(t, globalErr, "field")

	assert.Contains(t, links(t, body), "index")
}

func TestCreateEvent_RequiresAuthentication(t *testing.T) {
	s := newTestServer(t)

	w, _ := s.do(t, http.MethodPost, "/api/events", requestBody(t, nil), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = s.do(t, http.MethodPost, "/api/events", requestBody(t, nil), "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateEvent_BodyTooLarge(t *testing.T) {
	s := newTestServer(t)

	body := requestBody(t, map[string]interface{}{
		"description": strings.Repeat("a", 1024*1024),
	})
	w, out := s.do(t, http.MethodPost, "/api/events", body, s.managerToken)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "payload_too_large", out["error_type"])
}

func TestQueryEvents(t *testing.T) {
	s := newTestServer(t)
	s.seedEvents(t, 30)

	w, body := s.do(t, http.MethodGet, "/api/events?page=1&size=10&sort=name,DESC", "", "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, hal.ContentType, w.Header().Get("Content-Type"))

	embedded := body["_embedded"].(map[string]interface{})
	list := embedded["eventList"].([]interface{})
	require.Len(t, list, 10)
	first := list[0].(map[string]interface{})
	assert.Equal(t, "event 19", first["name"])
	assert.Contains(t, first["_links"], "self")

	page := body["page"].(map[string]interface{})
	assert.EqualValues(t, 10, page["size"])
	assert.EqualValues(t, 30, page["totalElements"])
	assert.EqualValues(t, 3, page["totalPages"])
	assert.EqualValues(t, 1, page["number"])

	for _, rel := range []string{"first", "prev", "self", "next", "last", "profile"} {
		assert.Contains(t, links(t, body), rel)
	}
	assert.Contains(t, href(t, body, "next"), "page=2")
	assert.Contains(t, href(t, body, "next"), "sort=name%2CDESC")
	assert.Equal(t, "http://example.com/docs/index.html#resources-events-list", href(t, body, "profile"))
	assert.NotContains(t, links(t, body), "create-event")
}

func TestQueryEvents_AuthenticatedGetsCreateLink(t *testing.T) {
	s := newTestServer(t)
	s.seedEvents(t, 3)

	w, body := s.do(t, http.MethodGet, "/api/events", "", s.otherToken)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://example.com/api/events", href(t, body, "create-event"))
	assert.NotContains(t, links(t, body), "prev")
	assert.NotContains(t, links(t, body), "next")
}

func TestQueryEvents_Empty(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodGet, "/api/events", "", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, body, "_embedded")
	assert.EqualValues(t, 0, body["page"].(map[string]interface{})["totalPages"])
}

func TestQueryEvents_BadParameters(t *testing.T) {
	s := newTestServer(t)

	for _, query := range []string{"page=-1", "page=x", "size=0", "sort=password", "sort=name,sideways"} {
		t.Run(query, func(t *testing.T) {
			w, body := s.do(t, http.MethodGet, "/api/events?"+query, "", "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "invalid_page", body["error_type"])
		})
	}
}

func TestQueryEvents_PageOverflow(t *testing.T) {
	s := newTestServer(t)
	s.seedEvents(t, 3)

	w, body := s.do(t, http.MethodGet, "/api/events?page=4611686018427387904&size=2", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_page", body["error_type"])

	w, body = s.do(t, http.MethodGet, "/api/events?page=9223372036854775807&size=1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, body, "_embedded")
	assert.NotContains(t, links(t, body), "next")
}

func TestGetEvent(t *testing.T) {
	s := newTestServer(t)
	s.seedEvents(t, 1)

	w, body := s.do(t, http.MethodGet, "/api/events/1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "event 00", body["name"])
	assert.Equal(t, "http://example.com/api/events/1", href(t, body, "self"))
	assert.Equal(t, "http://example.com/docs/index.html#resources-events-get", href(t, body, "profile"))
	assert.NotContains(t, links(t, body), "update-event")

	_, body = s.do(t, http.MethodGet, "/api/events/1", "", s.otherToken)
	assert.NotContains(t, links(t, body), "update-event")

	_, body = s.do(t, http.MethodGet, "/api/events/1", "", s.managerToken)
	assert.Equal(t, "http://example.com/api/events/1", href(t, body, "update-event"))
}

func TestGetEvent_NotFoundAndBadID(t *testing.T) {
	s := newTestServer(t)

	w, body := s.do(t, http.MethodGet, "/api/events/11883", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "event_not_found", body["error_type"])

	w, body = s.do(t, http.MethodGet, "/api/events/abc", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_id", body["error_type"])
}

func TestUpdateEvent(t *testing.T) {
	s := newTestServer(t)
	s.seedEvents(t, 1)

	w, body := s.do(t, http.MethodPut, "/api/events/1", requestBody(t, map[string]interface{}{
		"name":      "Updated Event",
		"basePrice": 0,
		"maxPrice":  0,
	}), s.managerToken)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Updated Event", body["name"])
	assert.Equal(t, true, body["free"])
	assert.Equal(t, "http://example.com/api/events/1", href(t, body, "self"))
	assert.Equal(t, "http://example.com/docs/index.html#resources-events-update", href(t, body, "profile"))

	stored, err := s.store.FindEvent(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Updated Event", stored.Name)
	assert.True(t, stored.Free)
}

func TestUpdateEvent_Refusals(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       func(t *testing.T) string
		token      func(s *testServer) string
		wantStatus int
	}{
		{
			name:       "not found",
			path:       "/api/events/123",
			body:       func(t *testing.T) string { return requestBody(t, nil) },
			token:      func(s *testServer) string { return s.managerToken },
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "empty input",
			path:       "/api/events/1",
			body:       func(t *testing.T) string { return "{}" },
			token:      func(s *testServer) string { return s.managerToken },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "wrong input",
			path: "/api/events/1",
			body: func(t *testing.T) string {
				return requestBody(t, map[string]interface{}{"basePrice": 20000, "maxPrice": 1000})
			},
			token:      func(s *testServer) string { return s.managerToken },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not the manager",
			path:       "/api/events/1",
			body:       func(t *testing.T) string { return requestBody(t, map[string]interface{}{"name": "hijacked"}) },
			token:      func(s *testServer) string { return s.otherToken },
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "anonymous",
			path:       "/api/events/1",
			body:       func(t *testing.T) string { return requestBody(t, map[string]interface{}{"name": "hijacked"}) },
			token:      func(s *testServer) string { return "" },
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			s.seedEvents(t, 1)

			w, _ := s.do(t, http.MethodPut, tc.path, tc.body(t), tc.token(s))
			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantStatus == http.StatusForbidden {
				assert.Zero(t, w.Body.Len())
			}

			stored, err := s.store.FindEvent(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, "event 00", stored.Name)
		})
	}
}
