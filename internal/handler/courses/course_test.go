package courses

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"courses-api/internal/database"
	"courses-api/internal/middleware"
	"courses-api/internal/model"
	"courses-api/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restore() {
	listCourses = store.ListCourses
	getCourseByID = store.GetCourseByID
	createCourse = store.CreateCourse
	updateCourse = store.UpdateCourse
	deleteCourse = store.DeleteCourse
}

func newCtx(e *echo.Echo, method, body string, user *model.User) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/courses", nil)
	} else {
		req = httptest.NewRequest(method, "/courses", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.ContextUserKey, user)
	}
	return c, rec
}

func newIDCtx(e *echo.Echo, method, id, body string, user *model.User) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newCtx(e, method, body, user)
	c.SetPath("/courses/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func ownedCourse(ownerID int) *model.Course {
	return &model.Course{
		ID:          1,
		Title:       "Build a Basic Bookcase",
		Description: "High-end furniture projects are great...",
		UserID:      ownerID,
		User:        &model.User{ID: ownerID, FirstName: "Joe", LastName: "Smith", EmailAddress: "joe@smith.com"},
	}
}

func stubGetCourse(course *model.Course, err error) {
	getCourseByID = func(_ context.Context, _ database.DB, _ int) (*model.Course, error) {
		return course, err
	}
}

func requireNotFound(t *testing.T, err error, message string) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, http.StatusNotFound, he.Code)
	require.Equal(t, message, he.Message)
}

func TestListCoursesHandler(t *testing.T) {
	e := echo.New()

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		listCourses = func(_ context.Context, _ database.DB) ([]model.Course, error) {
			return []model.Course{*ownedCourse(1)}, nil
		}
		ctx, rec := newCtx(e, http.MethodGet, "", nil)
		require.NoError(t, ListCoursesHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		require.Contains(t, body, `"courses"`)
		require.Contains(t, body, `"title":"Build a Basic Bookcase"`)
		require.Contains(t, body, `"User"`)
		require.NotContains(t, body, "createdAt")
		require.NotContains(t, body, "password")
	})

	t.Run("empty collection is an empty list", func(t *testing.T) {
		t.Cleanup(restore)
		listCourses = func(_ context.Context, _ database.DB) ([]model.Course, error) { return nil, nil }
		ctx, rec := newCtx(e, http.MethodGet, "", nil)
		require.NoError(t, ListCoursesHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"courses":[]}`, rec.Body.String())
	})

	t.Run("store error propagates", func(t *testing.T) {
		t.Cleanup(restore)
		listCourses = func(_ context.Context, _ database.DB) ([]model.Course, error) {
			return nil, errors.New("down")
		}
		ctx, _ := newCtx(e, http.MethodGet, "", nil)
		require.Error(t, ListCoursesHandler(&database.FakeDB{})(ctx))
	})
}

func TestGetCourseHandler(t *testing.T) {
	e := echo.New()

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		stubGetCourse(ownedCourse(1), nil)
		ctx, rec := newIDCtx(e, http.MethodGet, "1", "", nil)
		require.NoError(t, GetCourseHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		require.Contains(t, body, `"course"`)
		require.Contains(t, body, `"firstName":"Joe"`)
		require.NotContains(t, body, "updatedAt")
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		stubGetCourse(nil, fmt.Errorf("GetCourseByID: %w", pgx.ErrNoRows))
		ctx, _ := newIDCtx(e, http.MethodGet, "99", "", nil)
		err := GetCourseHandler(&database.FakeDB{})(ctx)
		requireNotFound(t, err, "Sorry, a course matching that ID was not found")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, _ := newIDCtx(e, http.MethodGet, "abc", "", nil)
		err := GetCourseHandler(&database.FakeDB{})(ctx)
		requireNotFound(t, err, "Sorry, a course matching that ID was not found")
	})

	t.Run("store error propagates", func(t *testing.T) {
		t.Cleanup(restore)
		stubGetCourse(nil, errors.New("down"))
		ctx, _ := newIDCtx(e, http.MethodGet, "1", "", nil)
		err := GetCourseHandler(&database.FakeDB{})(ctx)
		require.Error(t, err)
		var he *echo.HTTPError
		require.False(t, errors.As(err, &he))
	})
}

func TestCreateCourseHandler(t *testing.T) {
	e := echo.New()

	t.Run("no authenticated user", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, _ := newCtx(e, http.MethodPost, `{"title":"T","description":"D"}`, nil)
		err := CreateCourseHandler(&database.FakeDB{})(ctx)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		require.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newCtx(e, http.MethodPost, "{not json", &model.User{ID: 1})
		require.NoError(t, CreateCourseHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("owner forced to authenticated user", func(t *testing.T) {
		t.Cleanup(restore)
		var gotCourse *model.Course
		createCourse = func(_ context.Context, _ database.DB, c *model.Course) (*model.Course, error) {
			gotCourse = c
			c.ID = 7
			return c, nil
		}
		// body 內的 userId 必須被忽略
		ctx, rec := newCtx(e, http.MethodPost, `{"title":"T","description":"D","userId":42}`, &model.User{ID: 9})
		require.NoError(t, CreateCourseHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "/courses/7", rec.Header().Get(echo.HeaderLocation))
		require.Empty(t, rec.Body.String())
		require.Equal(t, 9, gotCourse.UserID)
	})

	t.Run("validation error propagates", func(t *testing.T) {
		t.Cleanup(restore)
		createCourse = func(_ context.Context, _ database.DB, _ *model.Course) (*model.Course, error) {
			return nil, &store.ValidationError{Messages: []string{"A title is required"}}
		}
		ctx, _ := newCtx(e, http.MethodPost, `{}`, &model.User{ID: 1})
		err := CreateCourseHandler(&database.FakeDB{})(ctx)
		var verr *store.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestUpdateCourseHandler(t *testing.T) {
	e := echo.New()
	owner := &model.User{ID: 1}
	intruder := &model.User{ID: 2}

	t.Run("not found before ownership", func(t *testing.T) {
		t.Cleanup(restore)
		stubGetCourse(nil, fmt.Errorf("GetCourseByID: %w", pgx.ErrNoRows))
		updateCalled := false
		updateCourse = func(_ context.Context, _ database.DB, _ *model.Course) error {
			updateCalled = true
			return nil
		}
		ctx, _ := newIDCtx(e, http.MethodPut, "99", `{"title":"T","description":"D"}`, intruder)
		err := UpdateCourseHandler(&database.FakeDB{})(ctx)
		requireNotFound(t, err, "A course matching that ID was not found")
		require.False(t, updateCalled)
	})

	t.Run("forbidden before validation", func(t *testing.T) {
		t.Cleanup(restore)
		stubGetCourse(ownedCourse(owner.ID), nil)
		updateCalled := false
		updateCourse = func(_ context.Context, _ database.DB, _ *model.Course) error {
			updateCalled = true
			return nil
		}
		// 空 body：若先做欄位檢查會回 400，擁有權檢查必須先發生
		ctx, rec := newIDCtx(e, http.MethodPut, "1", `{}`, intruder)
		require.NoError(t, UpdateCourseHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Empty(t, rec.Body.String())
		require.False(t, updateCalled)
	})

	t.Run("missing fields collects both messages", func(t *testing.T) {
		t.Cleanup(restore)
		stubGetCourse(ownedCourse(owner.ID), nil)
		ctx, _ := newIDCtx(e, http.MethodPut, "1", `{}`, owner)
		err := UpdateCourseHandler(&database.FakeDB{})(ctx)
		var verr *store.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, []string{
			"Please provide a title to update",
			"Please provide a description to update",
		}, verr.Messages)
	})

	t.Run("empty string counts as missing", func(t *testing.T) {
		t.Cleanup(restore)
		stubGetCourse(ownedCourse(owner.ID), nil)
		ctx, _ := newIDCtx(e, http.MethodPut, "1", `{"title":"","description":"D"}`, owner)
		err := UpdateCourseHandler(&database.FakeDB{})(ctx)
		var verr *store.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Equal(t, []string{"Please provide a title to update"}, verr.Messages)
	})

	t.Run("ok preserves optional fields", func(t *testing.T) {
		t.Cleanup(restore)
		course := ownedCourse(owner.ID)
		est := "12 hours"
		course.EstimatedTime = &est
		stubGetCourse(course, nil)

		var gotCourse *model.Course
		updateCourse = func(_ context.Context, _ database.DB, c *model.Course) error {
			gotCourse = c
			return nil
		}
		ctx, rec := newIDCtx(e, http.MethodPut, "1", `{"title":"New Title","description":"New Description"}`, owner)
		require.NoError(t, UpdateCourseHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Empty(t, rec.Body.String())
		require.Equal(t, "New Title", gotCourse.Title)
		require.Equal(t, "New Description", gotCourse.Description)
		require.Equal(t, &est, gotCourse.EstimatedTime)
	})

	t.Run("ok overwrites optional fields when provided", func(t *testing.T) {
		t.Cleanup(restore)
		stubGetCourse(ownedCourse(owner.ID), nil)
		var gotCourse *model.Course
		updateCourse = func(_ context.Context, _ database.DB, c *model.Course) error {
			gotCourse = c
			return nil
		}
		ctx, rec := newIDCtx(e, http.MethodPut, "1",
			`{"title":"T","description":"D","estimatedTime":"3 days","materialsNeeded":"wood"}`, owner)
		require.NoError(t, UpdateCourseHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "3 days", *gotCourse.EstimatedTime)
		require.Equal(t, "wood", *gotCourse.MaterialsNeeded)
	})

	t.Run("store error propagates", func(t *testing.T) {
		t.Cleanup(restore)
		stubGetCourse(ownedCourse(owner.ID), nil)
		updateCourse = func(_ context.Context, _ database.DB, _ *model.Course) error {
			return errors.New("down")
		}
		ctx, _ := newIDCtx(e, http.MethodPut, "1", `{"title":"T","description":"D"}`, owner)
		require.Error(t, UpdateCourseHandler(&database.FakeDB{})(ctx))
	})
}

func TestDeleteCourseHandler(t *testing.T) {
	e := echo.New()
	owner := &model.User{ID: 1}
	intruder := &model.User{ID: 2}

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		stubGetCourse(nil, fmt.Errorf("GetCourseByID: %w", pgx.ErrNoRows))
		ctx, _ := newIDCtx(e, http.MethodDelete, "99", "", owner)
		err := DeleteCourseHandler(&database.FakeDB{})(ctx)
		requireNotFound(t, err, "A course matching that ID was not found")
	})

	t.Run("forbidden for non-owner", func(t *testing.T) {
		t.Cleanup(restore)
		stubGetCourse(ownedCourse(owner.ID), nil)
		deleteCalled := false
		deleteCourse = func(_ context.Context, _ database.DB, _ int) error {
			deleteCalled = true
			return nil
		}
		ctx, rec := newIDCtx(e, http.MethodDelete, "1", "", intruder)
		require.NoError(t, DeleteCourseHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Empty(t, rec.Body.String())
		require.False(t, deleteCalled)
	})

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		stubGetCourse(ownedCourse(owner.ID), nil)
		var deletedID int
		deleteCourse = func(_ context.Context, _ database.DB, id int) error {
			deletedID = id
			return nil
		}
		ctx, rec := newIDCtx(e, http.MethodDelete, "1", "", owner)
		require.NoError(t, DeleteCourseHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, 1, deletedID)
	})

	t.Run("store error propagates", func(t *testing.T) {
		t.Cleanup(restore)
		stubGetCourse(ownedCourse(owner.ID), nil)
		deleteCourse = func(_ context.Context, _ database.DB, _ int) error {
			return errors.New("down")
		}
		ctx, _ := newIDCtx(e, http.MethodDelete, "1", "", owner)
		require.Error(t, DeleteCourseHandler(&database.FakeDB{})(ctx))
	})
}
