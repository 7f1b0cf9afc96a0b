package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/sashabaranov/go-openai"
	"github.com/yukikurage/worklog-api/internal/dto"
	"github.com/yukikurage/worklog-api/internal/services"
)

func (suite *HandlerTestSuite) seedTwoDays() *http.Cookie {
	suite.register("alice", "pw")
	cookie := suite.login("alice", "pw")
	suite.saveEvent(cookie, map[string]any{"date": "2024-01-01", "start": "08:00", "end": "16:00", "salary": 100})
	suite.saveEvent(cookie, map[string]any{"date": "2024-01-02", "start": "08:00", "end": "12:00", "salary": 50})
	return cookie
}

func (suite *HandlerTestSuite) TestStatistics_Custom() {
	cookie := suite.seedTwoDays()

	w := suite.postJSON("/statistics", map[string]string{
		"period": "custom", "start_date": "2024-01-01", "end_date": "2024-01-02",
	}, cookie)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.JSONEq(`{
		"total_hours": 12, "total_salary": 150,
		"max_hours": 8, "min_hours": 4,
		"max_salary": 100, "min_salary": 50,
		"details": [
			{"date": "01.01.2024", "duration": 8, "salary": 100},
			{"date": "02.01.2024", "duration": 4, "salary": 50}
		]
	}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestStatistics_EmptyPeriod() {
	cookie := suite.seedTwoDays()

	w := suite.postJSON("/statistics", map[string]string{"period": "month"}, cookie)

	suite.Require().Equal(http.StatusOK, w.Code)
	var got dto.StatisticsResponse
	suite.decode(w, &got)
	suite.Equal(dto.StatisticsResponse{Details: []dto.StatisticsDetailDTO{}}, got)
}

func (suite *HandlerTestSuite) TestStatistics_Errors() {
	cookie := suite.seedTwoDays()

	w := suite.postJSON("/statistics", map[string]string{"period": "fortnight"}, cookie)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Невідомий період")

	w = suite.postJSON("/statistics", map[string]string{"period": "custom", "start_date": "2024-01-01"}, cookie)
	suite.Equal(http.StatusInternalServerError, w.Code)

	suite.saveEvent(cookie, map[string]any{"date": "2024-10-19", "start": "8", "end": "12:00"})
	w = suite.postJSON("/statistics", map[string]string{"period": "week"}, cookie)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "2024-10-19")

	suite.Equal(http.StatusUnauthorized, suite.postJSON("/statistics", map[string]string{"period": "week"}).Code)
}

func (suite *HandlerTestSuite) TestDigest_NotConfigured() {
	cookie := suite.seedTwoDays()

	w := suite.postJSON("/statistics/digest", map[string]string{"period": "year"}, cookie)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *HandlerTestSuite) TestDigest() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "Two days, 12 hours."},
			}},
		})
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"
	suite.services.Digest = services.NewDigestServiceWithConfig(cfg, "gpt-4o-mini")
	suite.buildRouter(RouterOptions{})
	cookie := suite.seedTwoDays()

	w := suite.postJSON("/statistics/digest", map[string]string{
		"period": "custom", "start_date": "2024-01-01", "end_date": "2024-01-07",
	}, cookie)

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.JSONEq(`{"summary":"Two days, 12 hours."}`, w.Body.String())

	w = suite.postJSON("/statistics/digest", map[string]string{"period": "never"}, cookie)
	suite.Equal(http.StatusBadRequest, w.Code)
}
