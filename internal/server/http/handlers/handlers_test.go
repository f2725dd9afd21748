package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/gymkeeper/internal/domain/errors"
	"github.com/polkiloo/gymkeeper/internal/domain/model"
	"github.com/polkiloo/gymkeeper/internal/server/http/dto"
	"github.com/polkiloo/gymkeeper/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/gymkeeper/internal/test"
	facadestub "github.com/polkiloo/gymkeeper/internal/test/facade"
	"github.com/polkiloo/gymkeeper/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

// performRequest registers handler under pattern and serves a request to target.
func performRequest(t *testing.T, method, pattern, target string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, pattern, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(id int64) func(*gin.Context) {
	return func(c *gin.Context) { c.Set(middleware.UserIDContextKey, id) }
}

func decode[T any](t *testing.T, resp *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", resp.Body.String(), err)
	}
	return out
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domainErrors.ErrNotFound, http.StatusNotFound},
		{domainErrors.ErrAlreadyExists, http.StatusConflict},
		{domainErrors.ErrConfirmationRequired, http.StatusConflict},
		{domainErrors.ErrInvalidMember, http.StatusBadRequest},
		{domainErrors.ErrInvalidTrainer, http.StatusBadRequest},
		{domainErrors.ErrInvalidAdmin, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", domainErrors.ErrInvalidPhoto), http.StatusBadRequest},
		{domainErrors.ErrPhotoTooLarge, http.StatusRequestEntityTooLarge},
		{domainErrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{domainErrors.NewStoreError("list members", errors.New("down")), http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := statusFor(tc.err); got != tc.status {
			t.Errorf("statusFor(%v) = %d, want %d", tc.err, got, tc.status)
		}
	}
}

func TestWriteErrorHidesInternalDetails(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/", "/", func(c *gin.Context) {
		writeError(c, domainErrors.NewStoreError("list members", errors.New("password=hunter2")))
	}, nil, nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if body := decode[dto.ErrorResponse](t, resp); body.Error != "storage unavailable" {
		t.Fatalf("unexpected error body %+v", body)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Login: "owner@example.com", Password: "secret1"})
	resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(testhelpers.AuthFacadeStub{}).Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") == "" {
		t.Fatalf("expected auth header to be set")
	}
}

func TestAuthHandlerRegisterSetsCookie(t *testing.T) {
	login := testhelpers.RandomEmail()
	password := testhelpers.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.AuthRequest{Login: login, Password: password})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, gotLogin, gotPassword string) (string, error) {
		if gotLogin != login || gotPassword != password {
			t.Fatalf("unexpected credentials passed to facade: %q %q", gotLogin, gotPassword)
		}
		return "session-token", nil
	}})
	resp := performRequest(t, http.MethodPost, "/register", "/register", handler.Register, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Authorization"); got != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", got)
	}
	result := resp.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	found := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "gymkeeper_token" {
			if cookie.Value != "session-token" {
				t.Fatalf("unexpected token stored in cookie: %q", cookie.Value)
			}
			found = true
		}
	}
	if !found {
		t.Fatal("expected auth cookie named gymkeeper_token")
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "missing fields", body: []byte(`{"login":"","password":""}`), status: http.StatusBadRequest},
		{name: "invalid credentials", body: []byte(`{"login":"nope","password":"x"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusBadRequest},
		{name: "already exists", body: []byte(`{"login":"a@b.c","password":"secret1"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrAlreadyExists
		}}, status: http.StatusConflict},
		{name: "internal", body: []byte(`{"login":"a@b.c","password":"secret1"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", "/register", NewAuthHandler(tt.facade).Register, nil, tt.body, jsonHeaders)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Login: "owner@example.com", Password: "secret1"})
	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	failing := NewAuthHandler(testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
		return "", domainErrors.ErrInvalidCredentials
	}})
	resp = performRequest(t, http.MethodPost, "/login", "/login", failing.Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/login", "/login", failing.Login, nil, []byte("{"), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestAuthHandlerLogout(t *testing.T) {
	resp := performRequest(t, http.MethodPost, "/logout", "/logout", NewAuthHandler(testhelpers.AuthFacadeStub{}).Logout, nil, nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
	result := resp.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	cookies := result.Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected auth cookie to be expired, got %+v", cookies)
	}
}

func TestGymHandler(t *testing.T) {
	var gotUser int64
	facade := facadestub.GymProfileFacadeStub{CreateGymFn: func(_ context.Context, userID int64, in usecase.AdminInput) (*model.Admin, error) {
		gotUser = userID
		return &model.Admin{ID: uuid.New(), UserID: userID, Name: in.Name, GymName: in.GymName, GymAddress: in.GymAddress}, nil
	}}
	h := NewGymHandler(facade)
	body := []byte(`{"name":"Alex","gym_name":"Iron","gym_address":"Main st. 1"}`)

	resp := performRequest(t, http.MethodPost, "/gym", "/gym", h.Create, asUser(7), body, jsonHeaders)
	if resp.Code != http.StatusCreated || gotUser != 7 {
		t.Fatalf("expected 201 for user 7, got %d user=%d", resp.Code, gotUser)
	}
	if gym := decode[dto.GymResponse](t, resp); gym.GymName != "Iron" || gym.PhotoURL != nil {
		t.Fatalf("unexpected gym %+v", gym)
	}

	resp = performRequest(t, http.MethodPost, "/gym", "/gym", h.Create, asUser(7), []byte(`{"name":"Alex"}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/gym", "/gym", h.Get, asUser(7), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPut, "/gym", "/gym", h.Update, asUser(7), body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPut, "/gym/photo", "/gym/photo", h.UploadPhoto, asUser(7), []byte("img"), map[string]string{"Content-Type": "image/png"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gym := decode[dto.GymResponse](t, resp); gym.PhotoURL == nil || *gym.PhotoURL != "/api/photos/gym.png" {
		t.Fatalf("unexpected photo url %+v", gym.PhotoURL)
	}
}

func TestGymHandlerFailures(t *testing.T) {
	h := NewGymHandler(facadestub.GymProfileFacadeStub{
		GymFn: func(context.Context, int64) (*model.Admin, error) { return nil, domainErrors.ErrNotFound },
		CreateGymFn: func(context.Context, int64, usecase.AdminInput) (*model.Admin, error) {
			return nil, domainErrors.ErrAlreadyExists
		},
		UpdateGymFn: func(context.Context, int64, usecase.AdminInput) (*model.Admin, error) {
			return nil, domainErrors.ErrInvalidAdmin
		},
	})
	body := []byte(`{"name":"Alex","gym_name":"Iron","gym_address":"Main st. 1"}`)

	if resp := performRequest(t, http.MethodGet, "/gym", "/gym", h.Get, asUser(1), nil, nil); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if resp := performRequest(t, http.MethodPost, "/gym", "/gym", h.Create, asUser(1), body, jsonHeaders); resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
	if resp := performRequest(t, http.MethodPut, "/gym", "/gym", h.Update, asUser(1), body, jsonHeaders); resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestMemberHandlerList(t *testing.T) {
	var got usecase.MemberQuery
	photo := "a.png"
	h := NewMemberHandler(facadestub.MemberFacadeStub{MembersFn: func(_ context.Context, q usecase.MemberQuery) ([]model.Member, error) {
		got = q
		return []model.Member{{ID: uuid.New(), Name: "Dana", Tier: model.TierPremium, Paid: true, PhotoPath: &photo}}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/members", "/members?search=dan&filter=paid", h.List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got.Search != "dan" || got.Filter != model.PaymentFilterPaid {
		t.Fatalf("unexpected query passed to facade %+v", got)
	}
	members := decode[[]dto.MemberResponse](t, resp)
	if len(members) != 1 || !members[0].Paid || members[0].Tier != "Premium" || *members[0].PhotoURL != "/api/photos/a.png" {
		t.Fatalf("unexpected members %+v", members)
	}

	resp = performRequest(t, http.MethodGet, "/members", "/members?filter=overdue", h.List, nil, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown filter, got %d", resp.Code)
	}

	empty := NewMemberHandler(facadestub.MemberFacadeStub{MembersFn: func(context.Context, usecase.MemberQuery) ([]model.Member, error) {
		return nil, nil
	}})
	resp = performRequest(t, http.MethodGet, "/members", "/members", empty.List, nil, nil, nil)
	if resp.Code != http.StatusOK || resp.Body.String() != "[]" {
		t.Fatalf("expected empty JSON array, got %d %q", resp.Code, resp.Body.String())
	}
}

func TestMemberHandlerCRUD(t *testing.T) {
	h := NewMemberHandler(facadestub.MemberFacadeStub{})
	id := uuid.New()
	target := "/members/" + id.String()

	body := []byte(`{"name":"Dana","age":"31","phone":"555","tier":"Medium"}`)
	resp := performRequest(t, http.MethodPost, "/members", "/members", h.Create, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if m := decode[dto.MemberResponse](t, resp); m.Tier != "Medium" || m.Paid {
		t.Fatalf("unexpected member %+v", m)
	}

	resp = performRequest(t, http.MethodPost, "/members", "/members", h.Create, nil, []byte(`{"name":"Dana","phone":"555","tier":"Gold"}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown tier, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/members/:id", target, h.Get, nil, nil, nil)
	if resp.Code != http.StatusOK || decode[dto.MemberResponse](t, resp).ID != id.String() {
		t.Fatalf("unexpected get response %d %s", resp.Code, resp.Body.String())
	}

	resp = performRequest(t, http.MethodPut, "/members/:id", target, h.Update, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodDelete, "/members/:id", target, h.Delete, nil, nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	for _, handler := range []gin.HandlerFunc{h.Get, h.Update, h.Delete, h.UploadPhoto, h.TogglePayment} {
		resp = performRequest(t, http.MethodPost, "/members/:id", "/members/not-a-uuid", handler, nil, body, jsonHeaders)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for malformed id, got %d", resp.Code)
		}
	}
}

func TestMemberHandlerNotFound(t *testing.T) {
	notFound := func(context.Context, uuid.UUID) (*model.Member, error) { return nil, domainErrors.ErrNotFound }
	h := NewMemberHandler(facadestub.MemberFacadeStub{
		MemberFn:       notFound,
		DeleteMemberFn: func(context.Context, uuid.UUID) error { return domainErrors.ErrNotFound },
		UpdateMemberFn: func(context.Context, uuid.UUID, usecase.MemberInput) (*model.Member, error) {
			return nil, domainErrors.ErrNotFound
		},
	})
	target := "/members/" + uuid.NewString()

	if resp := performRequest(t, http.MethodGet, "/members/:id", target, h.Get, nil, nil, nil); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if resp := performRequest(t, http.MethodDelete, "/members/:id", target, h.Delete, nil, nil, nil); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	body := []byte(`{"name":"Dana","phone":"555"}`)
	if resp := performRequest(t, http.MethodPut, "/members/:id", target, h.Update, nil, body, jsonHeaders); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestMemberHandlerTogglePayment(t *testing.T) {
	id := uuid.New()
	target := "/members/" + id.String() + "/payment/toggle"
	pattern := "/members/:id/payment/toggle"

	var confirmed bool
	h := NewMemberHandler(facadestub.MemberFacadeStub{TogglePaidFn: func(_ context.Context, gotID uuid.UUID, confirm bool) (*model.Member, error) {
		confirmed = confirm
		if !confirm {
			return &model.Member{ID: gotID, Paid: true}, domainErrors.ErrConfirmationRequired
		}
		return &model.Member{ID: gotID, Paid: false}, nil
	}})

	resp := performRequest(t, http.MethodPost, pattern, target, h.TogglePayment, nil, nil, nil)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 without confirmation, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, pattern, target+"?confirm=true", h.TogglePayment, nil, nil, nil)
	if resp.Code != http.StatusOK || !confirmed {
		t.Fatalf("expected 200 with confirmation, got %d", resp.Code)
	}
	if m := decode[dto.MemberResponse](t, resp); m.Paid {
		t.Fatalf("expected member unpaid after confirmed toggle, got %+v", m)
	}

	resp = performRequest(t, http.MethodPost, pattern, target+"?confirm=maybe", h.TogglePayment, nil, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed confirm flag, got %d", resp.Code)
	}
}

func TestMemberHandlerToggleStoreFailureReturnsStoredMember(t *testing.T) {
	id := uuid.New()
	h := NewMemberHandler(facadestub.MemberFacadeStub{TogglePaidFn: func(context.Context, uuid.UUID, bool) (*model.Member, error) {
		return &model.Member{ID: id, Paid: false}, domainErrors.NewStoreError("save member", errors.New("down"))
	}})
	resp := performRequest(t, http.MethodPost, "/members/:id/payment/toggle", "/members/"+id.String()+"/payment/toggle", h.TogglePayment, nil, nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if m := decode[dto.MemberResponse](t, resp); m.ID != id.String() || m.Paid {
		t.Fatalf("expected stored member in body, got %+v", m)
	}
}

func TestMemberHandlerUploadPhoto(t *testing.T) {
	id := uuid.New()
	var received []byte
	h := NewMemberHandler(facadestub.MemberFacadeStub{MemberPhotoFn: func(_ context.Context, gotID uuid.UUID, r io.Reader) (*model.Member, error) {
		received, _ = io.ReadAll(r)
		name := "new.png"
		return &model.Member{ID: gotID, PhotoPath: &name}, nil
	}})
	target := "/members/" + id.String() + "/photo"
	pattern := "/members/:id/photo"

	resp := performRequest(t, http.MethodPut, pattern, target, h.UploadPhoto, nil, []byte("raw-bytes"), map[string]string{"Content-Type": "image/png"})
	if resp.Code != http.StatusOK || string(received) != "raw-bytes" {
		t.Fatalf("expected raw body upload, got %d %q", resp.Code, received)
	}

	var form bytes.Buffer
	writer := multipart.NewWriter(&form)
	part, _ := writer.CreateFormFile("photo", "me.png")
	_, _ = part.Write([]byte("form-bytes"))
	_ = writer.Close()
	resp = performRequest(t, http.MethodPut, pattern, target, h.UploadPhoto, nil, form.Bytes(), map[string]string{"Content-Type": writer.FormDataContentType()})
	if resp.Code != http.StatusOK || string(received) != "form-bytes" {
		t.Fatalf("expected multipart upload, got %d %q", resp.Code, received)
	}

	form.Reset()
	writer = multipart.NewWriter(&form)
	_ = writer.WriteField("other", "x")
	_ = writer.Close()
	resp = performRequest(t, http.MethodPut, pattern, target, h.UploadPhoto, nil, form.Bytes(), map[string]string{"Content-Type": writer.FormDataContentType()})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without photo part, got %d", resp.Code)
	}

	tooLarge := NewMemberHandler(facadestub.MemberFacadeStub{MemberPhotoFn: func(context.Context, uuid.UUID, io.Reader) (*model.Member, error) {
		return nil, domainErrors.ErrPhotoTooLarge
	}})
	resp = performRequest(t, http.MethodPut, pattern, target, tooLarge.UploadPhoto, nil, []byte("x"), nil)
	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", resp.Code)
	}
}

func TestTrainerHandler(t *testing.T) {
	h := NewTrainerHandler(facadestub.TrainerFacadeStub{})
	id := uuid.New()
	target := "/trainers/" + id.String()

	resp := performRequest(t, http.MethodGet, "/trainers", "/trainers", h.List, nil, nil, nil)
	if resp.Code != http.StatusOK || len(decode[[]dto.TrainerResponse](t, resp)) != 1 {
		t.Fatalf("unexpected list response %d %s", resp.Code, resp.Body.String())
	}

	body := []byte(`{"name":"Max","phone":"555","specialty":"Cardio"}`)
	resp = performRequest(t, http.MethodPost, "/trainers", "/trainers", h.Create, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated || decode[dto.TrainerResponse](t, resp).Specialty != "Cardio" {
		t.Fatalf("unexpected create response %d %s", resp.Code, resp.Body.String())
	}

	resp = performRequest(t, http.MethodPost, "/trainers", "/trainers", h.Create, nil, []byte(`{"name":"Max","phone":"555","specialty":"Yoga"}`), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown specialty, got %d", resp.Code)
	}

	if resp = performRequest(t, http.MethodGet, "/trainers/:id", target, h.Get, nil, nil, nil); resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp = performRequest(t, http.MethodPut, "/trainers/:id", target, h.Update, nil, body, jsonHeaders); resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp = performRequest(t, http.MethodPut, "/trainers/:id/photo", target+"/photo", h.UploadPhoto, nil, []byte("img"), nil); resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp = performRequest(t, http.MethodDelete, "/trainers/:id", target, h.Delete, nil, nil, nil); resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}

	failing := NewTrainerHandler(facadestub.TrainerFacadeStub{
		TrainersFn: func(context.Context, usecase.TrainerQuery) ([]model.Trainer, error) {
			return nil, errors.New("down")
		},
		DeleteTrainerFn: func(context.Context, uuid.UUID) error { return domainErrors.ErrNotFound },
	})
	if resp = performRequest(t, http.MethodGet, "/trainers", "/trainers", failing.List, nil, nil, nil); resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if resp = performRequest(t, http.MethodDelete, "/trainers/:id", target, failing.Delete, nil, nil, nil); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestTrainerHandlerListSearch(t *testing.T) {
	var got usecase.TrainerQuery
	h := NewTrainerHandler(facadestub.TrainerFacadeStub{TrainersFn: func(_ context.Context, q usecase.TrainerQuery) ([]model.Trainer, error) {
		got = q
		return []model.Trainer{{ID: uuid.New(), Name: "Ann", Specialty: model.SpecialtyCardio}}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/trainers", "/trainers?search=cardio", h.List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got.Search != "cardio" {
		t.Fatalf("expected search to reach the facade, got %+v", got)
	}
	if trainers := decode[[]dto.TrainerResponse](t, resp); len(trainers) != 1 || trainers[0].Specialty != "Cardio" {
		t.Fatalf("unexpected trainers %+v", trainers)
	}
}

func TestPaymentHandler(t *testing.T) {
	h := NewPaymentHandler(facadestub.PaymentFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/cycle", "/cycle", h.Cycle, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if cycle := decode[dto.CycleResponse](t, resp); cycle.Period != "2024-04" || cycle.Month != 4 {
		t.Fatalf("unexpected cycle %+v", cycle)
	}

	never := NewPaymentHandler(facadestub.PaymentFacadeStub{LastResetFn: func(context.Context) (model.CyclePeriod, error) {
		return model.CyclePeriod{}, nil
	}})
	resp = performRequest(t, http.MethodGet, "/cycle", "/cycle", never.Cycle, nil, nil, nil)
	if cycle := decode[dto.CycleResponse](t, resp); cycle.Period != "" {
		t.Fatalf("expected empty period before the first reset, got %+v", cycle)
	}

	resp = performRequest(t, http.MethodPost, "/check", "/check", h.Check, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if check := decode[dto.CycleCheckResponse](t, resp); check.Reset || check.Current != "2024-04" {
		t.Fatalf("unexpected check %+v", check)
	}

	failing := NewPaymentHandler(facadestub.PaymentFacadeStub{CheckCycleFn: func(context.Context) (usecase.CycleResult, error) {
		return usecase.CycleResult{}, domainErrors.NewStoreError("save member", errors.New("down"))
	}})
	if resp = performRequest(t, http.MethodPost, "/check", "/check", failing.Check, nil, nil, nil); resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}

func TestPhotoHandler(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.png"), []byte("png-bytes"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	h := NewPhotoHandler(facadestub.PhotoFacadeStub{PhotoPathFn: func(name string) (string, error) {
		if name != "a.png" {
			return "", domainErrors.ErrNotFound
		}
		return filepath.Join(dir, name), nil
	}})

	resp := performRequest(t, http.MethodGet, "/photos/:name", "/photos/a.png", h.Serve, nil, nil, nil)
	if resp.Code != http.StatusOK || resp.Body.String() != "png-bytes" {
		t.Fatalf("unexpected photo response %d %q", resp.Code, resp.Body.String())
	}

	resp = performRequest(t, http.MethodGet, "/photos/:name", "/photos/missing.png", h.Serve, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/healthz", "/healthz", NewHealthHandler(facadestub.HealthCheckerStub{}).Check, nil, nil, nil)
	if resp.Code != http.StatusOK || decode[dto.StatusResponse](t, resp).Status != "ok" {
		t.Fatalf("unexpected health response %d %s", resp.Code, resp.Body.String())
	}

	resp = performRequest(t, http.MethodGet, "/healthz", "/healthz", NewHealthHandler(facadestub.HealthCheckerStub{Err: errors.New("down")}).Check, nil, nil, nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}
