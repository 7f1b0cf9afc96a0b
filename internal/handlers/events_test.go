package handlers

import (
	"net/http"
	"strconv"

	"github.com/yukikurage/worklog-api/internal/dto"
	"github.com/yukikurage/worklog-api/internal/models"
)

func (suite *HandlerTestSuite) saveEvent(cookie *http.Cookie, body map[string]any) {
	w := suite.postJSON("/event", body, cookie)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.JSONEq(`{"success":true}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestEvents_RequireSession() {
	suite.Equal(http.StatusUnauthorized, suite.get("/event/2024-01-01").Code)
	suite.Equal(http.StatusUnauthorized, suite.postJSON("/event", map[string]any{"date": "2024-01-01"}).Code)
	suite.Equal(http.StatusUnauthorized, suite.do(newPost("/event/delete/1")).Code)

	w := suite.get("/events")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())

	var count int64
	suite.db.Model(&models.Activity{}).Count(&count)
	suite.Zero(count)
}

func (suite *HandlerTestSuite) TestEvents_SaveAndGet() {
	suite.register("alice", "pw")
	cookie := suite.login("alice", "pw")

	suite.saveEvent(cookie, map[string]any{
		"date": "2024-03-05", "start": "09:00", "end": "17:30", "notes": "standup", "salary": 120.5,
	})

	w := suite.get("/event/2024-03-05", cookie)
	suite.Require().Equal(http.StatusOK, w.Code)
	var got dto.EventDetailDTO
	suite.decode(w, &got)
	suite.Equal("09:00", got.Start)
	suite.Equal("17:30", got.End)
	suite.Equal("standup", got.Notes)
	suite.Equal(120.5, got.Salary)
	suite.NotZero(got.ID)

	// Same date, flexible format, full overwrite.
	suite.saveEvent(cookie, map[string]any{
		"date": "2024/03/05", "start": "10:00", "end": "11:00", "notes": "", "salary": 0,
	})
	w = suite.get("/event/2024-03-05", cookie)
	var overwritten dto.EventDetailDTO
	suite.decode(w, &overwritten)
	suite.Equal(dto.EventDetailDTO{Start: "10:00", End: "11:00", ID: got.ID}, overwritten)
}

func (suite *HandlerTestSuite) TestEvents_GetMissingIsEmptyObject() {
	suite.register("alice", "pw")
	cookie := suite.login("alice", "pw")

	w := suite.get("/event/2024-03-05", cookie)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestEvents_BadInput() {
	suite.register("alice", "pw")
	cookie := suite.login("alice", "pw")

	w := suite.get("/event/not-a-date", cookie)
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "not-a-date")

	w = suite.postJSON("/event", map[string]any{"date": "garbage"}, cookie)
	suite.Equal(http.StatusInternalServerError, w.Code)

	req := newPost("/event")
	req.Header.Set("Content-Type", "application/json")
	w = suite.do(req, cookie)
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.get("/events?start=bogus&end=2024-01-31", cookie)
	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *HandlerTestSuite) TestEvents_ListWithRange() {
	suite.register("alice", "pw")
	cookie := suite.login("alice", "pw")
	suite.register("bob", "pw")
	other := suite.login("bob", "pw")

	suite.saveEvent(cookie, map[string]any{"date": "2024-01-31", "start": "08:00", "end": "09:00"})
	suite.saveEvent(cookie, map[string]any{"date": "2024-01-10", "start": "08:00", "end": "09:00"})
	suite.saveEvent(cookie, map[string]any{"date": "2024-02-01", "start": "08:00", "end": "09:00"})
	suite.saveEvent(other, map[string]any{"date": "2024-01-15", "start": "08:00", "end": "09:00"})

	w := suite.get("/events", cookie)
	var all []dto.EventListItemDTO
	suite.decode(w, &all)
	suite.Len(all, 3)

	w = suite.get("/events?start=2024-01-01T00:00:00Z&end=2024-01-31", cookie)
	suite.Require().Equal(http.StatusOK, w.Code)
	var ranged []dto.EventListItemDTO
	suite.decode(w, &ranged)
	suite.Require().Len(ranged, 2)
	suite.Equal("work", ranged[0].Title)
	suite.Equal("2024-01-31", ranged[0].Start)
	suite.Equal("2024-01-10", ranged[1].Start)

	// A single bound is ignored.
	w = suite.get("/events?start=2024-01-20", cookie)
	var unbounded []dto.EventListItemDTO
	suite.decode(w, &unbounded)
	suite.Len(unbounded, 3)
}

func (suite *HandlerTestSuite) TestEvents_Delete() {
	suite.register("alice", "pw")
	cookie := suite.login("alice", "pw")
	suite.register("mallory", "pw")
	intruder := suite.login("mallory", "pw")

	suite.saveEvent(cookie, map[string]any{"date": "2024-01-10", "start": "08:00", "end": "09:00"})
	var activity models.Activity
	suite.Require().NoError(suite.db.First(&activity).Error)
	path := "/event/delete/" + strconv.FormatUint(activity.ID, 10)

	suite.Equal(http.StatusNotFound, suite.do(newPost(path), intruder).Code)
	suite.Equal(http.StatusNotFound, suite.do(newPost("/event/delete/999"), cookie).Code)
	suite.Equal(http.StatusNotFound, suite.do(newPost("/event/delete/abc"), cookie).Code)

	w := suite.do(newPost(path), cookie)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"success":true}`, w.Body.String())

	suite.Equal(http.StatusNotFound, suite.do(newPost(path), cookie).Code)
}
