package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"socialbook/internal/common"
	"socialbook/internal/dbmysql"
)

// ---- Fake UserService for handler tests ----

type fakeUserSvc struct {
	RegisterFn  func(ctx context.Context, userID, userName string) (*dbmysql.User, string, error)
	ListUsersFn func(ctx context.Context) ([]*dbmysql.User, error)
}

func (f *fakeUserSvc) Register(ctx context.Context, userID, userName string) (*dbmysql.User, string, error) {
	return f.RegisterFn(ctx, userID, userName)
}

func (f *fakeUserSvc) ListUsers(ctx context.Context) ([]*dbmysql.User, error) {
	return f.ListUsersFn(ctx)
}

func newRouterWithFake(f *fakeUserSvc) *mux.Router {
	r := mux.NewRouter()
	NewHandler(f).RegisterRoutes(r)
	return r
}

// ---- Tests ----

func TestRegist_Success(t *testing.T) {
	created := time.Date(2016, 8, 4, 17, 11, 9, 0, time.UTC)
	r := newRouterWithFake(&fakeUserSvc{
		RegisterFn: func(ctx context.Context, userID, userName string) (*dbmysql.User, string, error) {
			require.Equal(t, "doragee", userID)
			require.Equal(t, "도라지", userName)
			return &dbmysql.User{UserID: userID, UserName: userName, CreatedAt: created}, "signed-token", nil
		},
	})

	body, _ := json.Marshal(map[string]string{"userId": "doragee", "userName": "도라지"})
	req := httptest.NewRequest(http.MethodPost, "/v1/regist", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp registResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "doragee", resp.UserID)
	require.Equal(t, "signed-token", resp.Token)
	require.Equal(t, "2016-08-04T17:11:09Z", resp.CreatedAt)
}

func TestRegist_RejectionStatuses(t *testing.T) {
	cases := []struct {
		name     string
		svcErr   error
		wantHTTP int
	}{
		{"malformed id", common.ErrMalformedIdentifier, http.StatusBadRequest},
		{"malformed name", common.ErrMalformedDisplayName, http.StatusBadRequest},
		{"duplicate user", common.ErrDuplicateUser, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newRouterWithFake(&fakeUserSvc{
				RegisterFn: func(ctx context.Context, userID, userName string) (*dbmysql.User, string, error) {
					return nil, "", tc.svcErr
				},
			})

			body, _ := json.Marshal(map[string]string{"userId": "tjc", "userName": "x"})
			req := httptest.NewRequest(http.MethodPost, "/v1/regist", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, tc.wantHTTP, rec.Code)

			var msg common.ErrorMessage
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&msg))
			require.Equal(t, tc.svcErr.Error(), msg.Message)
		})
	}
}

func TestRegist_BadBody(t *testing.T) {
	r := newRouterWithFake(&fakeUserSvc{})

	req := httptest.NewRequest(http.MethodPost, "/v1/regist", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUsers_ListsEveryAccount(t *testing.T) {
	r := newRouterWithFake(&fakeUserSvc{
		ListUsersFn: func(ctx context.Context) ([]*dbmysql.User, error) {
			return []*dbmysql.User{{UserID: "doragee"}, {UserID: "gosari"}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var users []dbmysql.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&users))
	require.Len(t, users, 2)
}
