package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"time"

	"github.com/yukikurage/worklog-api/internal/dto"
	"github.com/yukikurage/worklog-api/internal/middleware"
	"github.com/yukikurage/worklog-api/internal/models"
)

func (suite *HandlerTestSuite) TestSubmitFeedback() {
	w := suite.postForm("/submit_feedback", url.Values{
		"subject": {"Hi"}, "name": {"Ann"}, "message": {"Nice app"},
	})

	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/", w.Header().Get("Location"))

	var stored models.Feedback
	suite.Require().NoError(suite.db.First(&stored).Error)
	suite.Equal("Nice app", stored.Message)
	suite.True(testNow.Equal(stored.Timestamp))
}

func (suite *HandlerTestSuite) TestSubmitFeedback_MissingFields() {
	for _, form := range []url.Values{
		{"subject": {"Hi"}, "name": {"Ann"}, "message": {""}},
		{"subject": {"Hi"}, "name": {"Ann"}},
		{},
	} {
		w := suite.postForm("/submit_feedback", form)
		suite.Equal(http.StatusBadRequest, w.Code)
		suite.Equal("Будь ласка, заповніть усі поля", w.Body.String())
	}

	var count int64
	suite.db.Model(&models.Feedback{}).Count(&count)
	suite.Zero(count)
}

func (suite *HandlerTestSuite) TestFeedback_PublicWithoutSession() {
	w := suite.postForm("/submit_feedback", url.Values{
		"subject": {"s"}, "name": {"n"}, "message": {"m"},
	})
	suite.Equal(http.StatusFound, w.Code)
}

func (suite *HandlerTestSuite) TestIndex_NewestFirst() {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	suite.Require().NoError(suite.db.Create(&models.Feedback{Subject: "a", Name: "n", Message: "older", Timestamp: base}).Error)
	suite.Require().NoError(suite.db.Create(&models.Feedback{Subject: "b", Name: "n", Message: "newer", Timestamp: base.Add(time.Hour)}).Error)

	w := suite.get("/")
	suite.Require().Equal(http.StatusOK, w.Code)

	var got dto.IndexResponse
	suite.decode(w, &got)
	suite.Require().Len(got.Feedbacks, 2)
	suite.Equal("newer", got.Feedbacks[0].Message)
	suite.Equal("older", got.Feedbacks[1].Message)
}

func (suite *HandlerTestSuite) TestIndex_Empty() {
	w := suite.get("/")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"feedbacks":[]}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestErrorLogCarriesRequestID() {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(previous)

	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	suite.Require().NoError(sqlDB.Close())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-77")
	w := suite.do(req)
	suite.Equal(http.StatusInternalServerError, w.Code)

	line, _, _ := bytes.Cut(buf.Bytes(), []byte("\n"))
	var entry map[string]any
	suite.Require().NoError(json.Unmarshal(line, &entry), buf.String())
	suite.Equal("list feedback failed", entry["msg"])
	suite.Equal("req-77", entry["request_id"])
	suite.Equal("/", entry["path"])
}
