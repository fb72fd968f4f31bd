package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"
	"time"

	"appraisalapi/internal/model"
	"appraisalapi/internal/repository/memory"
	"appraisalapi/internal/service"
	serviceMocks "appraisalapi/internal/service/mocks"
	storageMocks "appraisalapi/internal/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

type formFile struct {
	name        string
	contentType string
	data        []byte
}

func multipartBody(t *testing.T, fields map[string]string, file *formFile) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+ProofImageField+`"; filename="`+file.name+`"`)
		if file.contentType != "" {
			h.Set("Content-Type", file.contentType)
		}
		part, err := writer.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func appraisalFields() map[string]string {
	return map[string]string{
		"uid":         "u1",
		"title":       "Paper",
		"category":    "Research",
		"description": "Published a paper",
		"date":        "2024-05-01",
	}
}

func TestHealthCheck(t *testing.T) {
	var failing error
	app := fiber.New()
	app.Get("/health", HealthCheck(
		Check{Name: "docstore", Ping: func(context.Context) error { return nil }},
		Check{Name: "objectstore", Ping: func(context.Context) error { return failing }},
	))

	t.Run("healthy", func(t *testing.T) {
		failing = nil
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		failing = errors.New("bucket unreachable")
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSaveProfile(t *testing.T) {
	mockSvc := new(serviceMocks.MockProfileService)
	app := fiber.New()
	app.Post("/saveProfile", SaveProfile(mockSvc))

	post := func(body string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/saveProfile", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)
		return resp
	}

	t.Run("success", func(t *testing.T) {
		in := service.SaveProfileInput{UID: "u1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.edu"}
		mockSvc.On("SaveProfile", mock.Anything, in).Return(nil).Once()

		resp := post(`{"uid":"u1","firstName":"Ada","lastName":"Lovelace","email":"ada@x.edu"}`)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Profile saved successfully", readBody(t, resp))
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing field", func(t *testing.T) {
		mockSvc.On("SaveProfile", mock.Anything, mock.Anything).
			Return(&service.ValidationError{Message: service.MsgMissingProfile, Fields: []string{"email"}}).Once()

		resp := post(`{"uid":"u1","firstName":"Ada","lastName":"Lovelace"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Missing profile information", readBody(t, resp))
		mockSvc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := post(`{"uid":`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Missing profile information", readBody(t, resp))
	})

	t.Run("store error", func(t *testing.T) {
		mockSvc.On("SaveProfile", mock.Anything, mock.Anything).
			Return(&service.StoreError{Op: "save profile", Err: errors.New("connection refused")}).Once()

		resp := post(`{"uid":"u1","firstName":"Ada","lastName":"Lovelace","email":"ada@x.edu"}`)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Error saving profile: connection refused", readBody(t, resp))
		mockSvc.AssertExpectations(t)
	})
}

func TestSubmitAppraisal(t *testing.T) {
	mockSvc := new(serviceMocks.MockAppraisalService)
	app := fiber.New()
	app.Post("/submitAppraisal", SubmitAppraisal(mockSvc))

	send := func(body *bytes.Buffer, contentType string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/submitAppraisal", body)
		req.Header.Set("Content-Type", contentType)
		resp, _ := app.Test(req)
		return resp
	}

	t.Run("without image", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.MatchedBy(func(in service.SubmitAppraisalInput) bool {
			return in.UID == "u1" && in.Date == "2024-05-01" && in.Image == nil
		})).Return(&model.Appraisal{ID: "a1"}, nil).Once()

		body, ct := multipartBody(t, appraisalFields(), nil)
		resp := send(body, ct)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Appraisal submitted successfully", readBody(t, resp))
		mockSvc.AssertExpectations(t)
	})

	t.Run("with image", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.MatchedBy(func(in service.SubmitAppraisalInput) bool {
			return in.Image != nil &&
				in.Image.Filename == "cert.png" &&
				in.Image.ContentType == "image/png" &&
				string(in.Image.Data) == "png-bytes"
		})).Return(&model.Appraisal{ID: "a2"}, nil).Once()

		body, ct := multipartBody(t, appraisalFields(), &formFile{name: "cert.png", contentType: "image/png", data: []byte("png-bytes")})
		resp := send(body, ct)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("query string cannot override body fields", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.MatchedBy(func(in service.SubmitAppraisalInput) bool {
			return in.UID == "u1" && in.Title == "Paper"
		})).Return(&model.Appraisal{ID: "a4"}, nil).Once()

		body, ct := multipartBody(t, appraisalFields(), nil)
		req := httptest.NewRequest(http.MethodPost, "/submitAppraisal?uid=intruder&title=Other", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("url-encoded body", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.MatchedBy(func(in service.SubmitAppraisalInput) bool {
			return in.UID == "u1" && in.Date == "2024-05-01" && in.Image == nil
		})).Return(&model.Appraisal{ID: "a5"}, nil).Once()

		form := url.Values{}
		for k, v := range appraisalFields() {
			form.Set(k, v)
		}
		req := httptest.NewRequest(http.MethodPost, "/submitAppraisal?uid=intruder", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("image without content type", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.MatchedBy(func(in service.SubmitAppraisalInput) bool {
			return in.Image != nil && in.Image.ContentType == "application/octet-stream"
		})).Return(&model.Appraisal{ID: "a3"}, nil).Once()

		body, ct := multipartBody(t, appraisalFields(), &formFile{name: "blob", data: []byte{0x01}})
		resp := send(body, ct)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing field", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.Anything).
			Return(nil, &service.ValidationError{Message: service.MsgMissingAppraisal}).Once()

		fields := appraisalFields()
		delete(fields, "category")
		body, ct := multipartBody(t, fields, nil)
		resp := send(body, ct)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Missing appraisal information", readBody(t, resp))
		mockSvc.AssertExpectations(t)
	})

	t.Run("upload error", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.Anything).
			Return(nil, &service.StoreError{Op: "upload proof image", Err: errors.New("bucket gone")}).Once()

		body, ct := multipartBody(t, appraisalFields(), &formFile{name: "cert.png", data: []byte("x")})
		resp := send(body, ct)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Submission failed: bucket gone", readBody(t, resp))
		mockSvc.AssertExpectations(t)
	})
}

func TestGetAppraisals(t *testing.T) {
	mockSvc := new(serviceMocks.MockAppraisalService)
	app := fiber.New()
	app.Get("/getAppraisals", GetAppraisals(mockSvc))

	get := func(query string) *http.Response {
		req := httptest.NewRequest(http.MethodGet, "/getAppraisals?"+query, nil)
		resp, _ := app.Test(req)
		return resp
	}

	t.Run("success", func(t *testing.T) {
		q := service.AppraisalQuery{UID: "u1", Year: "2024", Month: "06"}
		items := []model.Appraisal{{ID: "a1", UID: "u1", Date: "2024-05-01"}}
		mockSvc.On("List", mock.Anything, q).Return(items, nil).Once()

		resp := get("uid=u1&year=2024&month=06")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var result []model.Appraisal
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, items, result)
		mockSvc.AssertExpectations(t)
	})

	t.Run("empty result is an array", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, service.AppraisalQuery{UID: "nobody"}).Return([]model.Appraisal{}, nil).Once()

		resp := get("uid=nobody")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "[]", readBody(t, resp))
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing uid", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, service.AppraisalQuery{Year: "2024"}).
			Return(nil, &service.ValidationError{Message: service.MsgUIDRequired}).Once()

		resp := get("year=2024")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "User ID is required", readBody(t, resp))
		mockSvc.AssertExpectations(t)
	})

	t.Run("store error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, service.AppraisalQuery{UID: "u1"}).
			Return(nil, &service.StoreError{Op: "query appraisals", Err: errors.New("timeout")}).Once()

		resp := get("uid=u1")

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Error fetching data: timeout", readBody(t, resp))
		mockSvc.AssertExpectations(t)
	})
}

func TestRouting(t *testing.T) {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(),
	})

	RegisterRoutes(app, Dependencies{
		Profiles:   new(serviceMocks.MockProfileService),
		Appraisals: new(serviceMocks.MockAppraisalService),
	})

	t.Run("not found route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/non-existent", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/saveProfile", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "METHOD_NOT_ALLOWED", res.Error.Code)
	})
}

// TestAppraisalFlow drives the routes over the in-memory store with a stubbed object store.
func TestAppraisalFlow(t *testing.T) {
	store := memory.NewStore()
	objects := new(storageMocks.MockStorage)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	clock := service.WithClock(func() time.Time { return now })

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, Dependencies{
		Profiles:   service.NewProfileService(store, clock),
		Appraisals: service.NewAppraisalService(objects, store, clock),
	})

	req := httptest.NewRequest(http.MethodPost, "/saveProfile",
		strings.NewReader(`{"uid":"u1","firstName":"Ada","lastName":"Lovelace","email":"ada@x.edu"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	profile, ok := store.Profile("u1")
	require.True(t, ok)
	assert.Equal(t, "Ada", profile.FirstName)
	assert.Equal(t, now, profile.Timestamp)

	key := "proofs/1714557600000_cert.png"
	w := storageMocks.NewBufferWriter(nil)
	objects.On("NewWriter", mock.Anything, key, "image/png", int64(3)).Return(w).Once()
	objects.On("PresignGet", mock.Anything, key, service.DefaultSignedURLExpiry).
		Return("https://objects.local/"+key+"?sig=abc", nil).Once()

	body, ct := multipartBody(t, appraisalFields(), &formFile{name: "cert.png", contentType: "image/png", data: []byte("png")})
	req = httptest.NewRequest(http.MethodPost, "/submitAppraisal", body)
	req.Header.Set("Content-Type", ct)
	resp, _ = app.Test(req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "png", w.String())
	objects.AssertExpectations(t)

	fields := appraisalFields()
	fields["date"] = "2023-06-15"
	body, ct = multipartBody(t, fields, nil)
	req = httptest.NewRequest(http.MethodPost, "/submitAppraisal", body)
	req.Header.Set("Content-Type", ct)
	resp, _ = app.Test(req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	q := url.Values{"uid": {"u1"}, "year": {"2024"}, "month": {"06"}}
	req = httptest.NewRequest(http.MethodGet, "/getAppraisals?"+q.Encode(), nil)
	resp, _ = app.Test(req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []model.Appraisal
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "2024-05-01", got[0].Date)
	assert.Equal(t, "https://objects.local/"+key+"?sig=abc", got[0].ImageURL)
	assert.Equal(t, "2023-06-15", got[1].Date)
	assert.Empty(t, got[1].ImageURL)
}

// TestSubmitAppraisalStoredFieldsSurviveLaterRequests checks that stored
// records do not alias request buffers that fasthttp reuses.
func TestSubmitAppraisalStoredFieldsSurviveLaterRequests(t *testing.T) {
	store := memory.NewStore()
	app := fiber.New()
	app.Post("/submitAppraisal", SubmitAppraisal(service.NewAppraisalService(new(storageMocks.MockStorage), store)))

	submit := func(uid, title string, multipartForm bool) {
		fields := appraisalFields()
		fields["uid"], fields["title"] = uid, title

		var req *http.Request
		if multipartForm {
			body, ct := multipartBody(t, fields, nil)
			req = httptest.NewRequest(http.MethodPost, "/submitAppraisal", body)
			req.Header.Set("Content-Type", ct)
		} else {
			form := url.Values{}
			for k, v := range fields {
				form.Set(k, v)
			}
			req = httptest.NewRequest(http.MethodPost, "/submitAppraisal", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	submit("u1", "First", false)
	submit("u2", "Second", true)
	for i := 0; i < 20; i++ {
		submit("zz", "Filler", i%2 == 0)
	}

	first, err := store.ListByUID(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "First", first[0].Title)
	assert.Equal(t, "2024-05-01", first[0].Date)

	second, err := store.ListByUID(context.Background(), "u2")
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Second", second[0].Title)

	rest, err := store.ListByUID(context.Background(), "zz")
	require.NoError(t, err)
	assert.Len(t, rest, 20)
}
