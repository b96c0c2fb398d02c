package friend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"socialbook/internal/common"
	"socialbook/internal/dbmysql"
)

// ---- Fake FriendService for handler tests ----

type fakeFriendSvc struct {
	ApplyFn     func(ctx context.Context, applicantID, acceptorID string) (*dbmysql.Friend, error)
	AcceptFn    func(ctx context.Context, applicantID, acceptorID string) (*dbmysql.Friend, error)
	TerminateFn func(ctx context.Context, applicantID, acceptorID string) (*dbmysql.Friend, error)
	FollowFn    func(ctx context.Context, applicantID, acceptorID string, role FollowRole) (*dbmysql.Friend, error)
	UnfollowFn  func(ctx context.Context, applicantID, acceptorID string, role FollowRole) (*dbmysql.Friend, error)
}

func (f *fakeFriendSvc) Apply(ctx context.Context, a, b string) (*dbmysql.Friend, error) {
	return f.ApplyFn(ctx, a, b)
}
func (f *fakeFriendSvc) Accept(ctx context.Context, a, b string) (*dbmysql.Friend, error) {
	return f.AcceptFn(ctx, a, b)
}
func (f *fakeFriendSvc) Terminate(ctx context.Context, a, b string) (*dbmysql.Friend, error) {
	return f.TerminateFn(ctx, a, b)
}
func (f *fakeFriendSvc) Follow(ctx context.Context, a, b string, r FollowRole) (*dbmysql.Friend, error) {
	return f.FollowFn(ctx, a, b, r)
}
func (f *fakeFriendSvc) Unfollow(ctx context.Context, a, b string, r FollowRole) (*dbmysql.Friend, error) {
	return f.UnfollowFn(ctx, a, b, r)
}

func newRouterWithFake(f *fakeFriendSvc) *mux.Router {
	r := mux.NewRouter()
	NewHandler(f).RegisterRoutes(r)
	return r
}

func pairBody(t *testing.T, fields map[string]string) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(fields)
	require.NoError(t, err)
	return bytes.NewReader(body)
}

// ---- Tests ----

func TestFriendApply(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r := newRouterWithFake(&fakeFriendSvc{
			ApplyFn: func(ctx context.Context, a, b string) (*dbmysql.Friend, error) {
				require.Equal(t, "doragee", a)
				require.Equal(t, "gosari", b)
				return &dbmysql.Friend{ApplicantID: a, AcceptorID: b, Status: dbmysql.StatusPending}, nil
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/friend",
			pairBody(t, map[string]string{"applicantId": "doragee", "acceptorId": "gosari"}))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("duplicate relation is a client error", func(t *testing.T) {
		r := newRouterWithFake(&fakeFriendSvc{
			ApplyFn: func(ctx context.Context, a, b string) (*dbmysql.Friend, error) {
				return nil, common.ErrDuplicateRelationship
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/friend",
			pairBody(t, map[string]string{"applicantId": "doragee", "acceptorId": "gosari"}))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFriendAccept(t *testing.T) {
	r := newRouterWithFake(&fakeFriendSvc{
		AcceptFn: func(ctx context.Context, a, b string) (*dbmysql.Friend, error) {
			return &dbmysql.Friend{
				ApplicantID:      a,
				AcceptorID:       b,
				Status:           dbmysql.StatusActive,
				ApplicantFollows: true,
				AcceptorFollows:  true,
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/v1/friend",
		pairBody(t, map[string]string{"applicantId": "doragee", "acceptorId": "gosari"}))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var friend dbmysql.Friend
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&friend))
	require.Equal(t, dbmysql.StatusActive, friend.Status)
	require.True(t, friend.ApplicantFollows)
	require.True(t, friend.AcceptorFollows)
}

func TestFriendTerminate(t *testing.T) {
	r := newRouterWithFake(&fakeFriendSvc{
		TerminateFn: func(ctx context.Context, a, b string) (*dbmysql.Friend, error) {
			return nil, common.ErrNoActiveRelationship
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/v1/friend",
		pairBody(t, map[string]string{"applicantId": "doragee", "acceptorId": "gosari"}))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFollowRoutes(t *testing.T) {
	t.Run("follow passes the parsed role through", func(t *testing.T) {
		r := newRouterWithFake(&fakeFriendSvc{
			FollowFn: func(ctx context.Context, a, b string, role FollowRole) (*dbmysql.Friend, error) {
				require.Equal(t, AcceptorRole, role)
				return &dbmysql.Friend{ApplicantID: a, AcceptorID: b, Status: dbmysql.StatusActive, AcceptorFollows: true}, nil
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/follow",
			pairBody(t, map[string]string{"applicantId": "doragee", "acceptorId": "gosari", "follower": "acceptorId"}))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown follower token never reaches the service", func(t *testing.T) {
		r := newRouterWithFake(&fakeFriendSvc{})

		req := httptest.NewRequest(http.MethodPost, "/v1/follow",
			pairBody(t, map[string]string{"applicantId": "doragee", "acceptorId": "gosari", "follower": "ownerId"}))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unfollow uses its own verb", func(t *testing.T) {
		r := newRouterWithFake(&fakeFriendSvc{
			UnfollowFn: func(ctx context.Context, a, b string, role FollowRole) (*dbmysql.Friend, error) {
				require.Equal(t, ApplicantRole, role)
				return &dbmysql.Friend{ApplicantID: a, AcceptorID: b, Status: dbmysql.StatusActive}, nil
			},
		})

		req := httptest.NewRequest(http.MethodDelete, "/v1/follow",
			pairBody(t, map[string]string{"applicantId": "doragee", "acceptorId": "gosari", "follower": "applicantId"}))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})
}
