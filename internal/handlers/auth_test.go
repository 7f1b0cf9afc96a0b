package handlers

import (
	"net/http"
	"net/url"

	"github.com/yukikurage/worklog-api/internal/dto"
	"github.com/yukikurage/worklog-api/internal/models"
)

func (suite *HandlerTestSuite) TestRegister_RedirectsToLogin() {
	w := suite.postForm("/register", url.Values{"username": {"alice"}, "password": {"pw"}})

	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/login", w.Header().Get("Location"))

	var user models.User
	suite.Require().NoError(suite.db.Where("username = ?", "alice").First(&user).Error)
	suite.NotEqual("pw", user.PasswordHash)
}

func (suite *HandlerTestSuite) TestRegister_AcceptsJSON() {
	w := suite.postJSON("/register", map[string]string{"username": "bob", "password": "pw"})

	suite.Equal(http.StatusFound, w.Code)
}

func (suite *HandlerTestSuite) TestRegister_Duplicate() {
	suite.register("alice", "pw")

	w := suite.postForm("/register", url.Values{"username": {"alice"}, "password": {"other"}})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Equal("User already exists", w.Body.String())

	var count int64
	suite.db.Model(&models.User{}).Count(&count)
	suite.Equal(int64(1), count)
}

func (suite *HandlerTestSuite) TestLogin_Success() {
	suite.register("alice", "pw")

	w := suite.postForm("/login", url.Values{"username": {"alice"}, "password": {"pw"}})

	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/dashboard", w.Header().Get("Location"))
	suite.sessionCookie(w)
}

func (suite *HandlerTestSuite) TestLogin_Failures() {
	suite.register("alice", "pw")

	for _, form := range []url.Values{
		{"username": {"alice"}, "password": {"wrong"}},
		{"username": {"nobody"}, "password": {"pw"}},
		{"username": {"Alice"}, "password": {"pw"}},
	} {
		w := suite.postForm("/login", form)
		suite.Equal(http.StatusUnauthorized, w.Code)
		suite.Equal("Invalid credentials", w.Body.String())
		suite.Empty(w.Result().Cookies())
	}
}

func (suite *HandlerTestSuite) TestDashboard() {
	w := suite.get("/dashboard")
	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/login", w.Header().Get("Location"))

	suite.register("alice", "pw")
	cookie := suite.login("alice", "pw")

	w = suite.get("/dashboard", cookie)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"username":"alice"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestMe() {
	suite.Equal(http.StatusUnauthorized, suite.get("/me").Code)

	user := suite.register("alice", "pw")
	cookie := suite.login("alice", "pw")

	w := suite.get("/me", cookie)
	suite.Require().Equal(http.StatusOK, w.Code)
	var got dto.UserDTO
	suite.decode(w, &got)
	suite.Equal(dto.UserDTO{ID: user.ID, Username: "alice"}, got)
}

func (suite *HandlerTestSuite) TestStaleSessionIsCleared() {
	user := suite.register("alice", "pw")
	cookie := suite.login("alice", "pw")
	suite.Require().NoError(suite.db.Delete(&models.User{}, user.ID).Error)

	w := suite.get("/me", cookie)
	suite.Equal(http.StatusUnauthorized, w.Code)

	cleared := suite.sessionCookie(w)
	suite.Equal(http.StatusUnauthorized, suite.get("/event/2024-01-01", cleared).Code)
}

func (suite *HandlerTestSuite) TestDeletedUserCannotUseSession() {
	user := suite.register("alice", "pw")
	cookie := suite.login("alice", "pw")
	suite.saveEvent(cookie, map[string]any{"date": "2024-01-01", "start": "08:00", "end": "16:00", "salary": 100})
	suite.Require().NoError(suite.db.Delete(&models.User{}, user.ID).Error)

	w := suite.postJSON("/event", map[string]any{"date": "2024-01-02", "start": "08:00", "end": "12:00"}, cookie)
	suite.Equal(http.StatusUnauthorized, w.Code)

	// Only the activity saved before the delete exists.
	var count int64
	suite.db.Model(&models.Activity{}).Count(&count)
	suite.Equal(int64(1), count)

	w = suite.postJSON("/statistics", map[string]string{
		"period": "custom", "start_date": "2024-01-01", "end_date": "2024-01-31",
	}, cookie)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.get("/events", cookie)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())

	w = suite.get("/dashboard", cookie)
	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/login", w.Header().Get("Location"))
}

func (suite *HandlerTestSuite) TestLogout() {
	suite.register("alice", "pw")
	cookie := suite.login("alice", "pw")

	w := suite.get("/logout", cookie)
	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/", w.Header().Get("Location"))

	cleared := suite.sessionCookie(w)
	suite.Equal(http.StatusUnauthorized, suite.get("/me", cleared).Code)

	// Logging out without a session is fine too.
	suite.Equal(http.StatusFound, suite.get("/logout").Code)
}

func (suite *HandlerTestSuite) TestAuthPages() {
	suite.JSONEq(`{"page":"login"}`, suite.get("/login").Body.String())
	suite.JSONEq(`{"page":"register"}`, suite.get("/register").Body.String())
}
