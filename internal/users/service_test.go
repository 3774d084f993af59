package users

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"reelops/internal/gateway"
	"reelops/pkg/apierrors"
)

// stubDoer records the last request and replies with a canned result.
type stubDoer struct {
	lastReq gateway.Request
	result  *gateway.Result
}

func (d *stubDoer) Do(_ context.Context, req gateway.Request) *gateway.Result {
	d.lastReq = req
	return d.result
}

type UsersServiceSuite struct {
	suite.Suite
	doer    *stubDoer
	service *Service
}

func (s *UsersServiceSuite) SetupTest() {
	s.doer = &stubDoer{}
	s.service = NewService(s.doer)
}

func (s *UsersServiceSuite) TestListUnwrapsCountersAndBuildsQuery() {
	s.doer.result = &gateway.Result{
		Status: http.StatusOK,
		Data: json.RawMessage(`{
			"users": [{"id": 3, "email": "b@reelops.dev", "accountStatus": "blocked"}],
			"totalUsers": 4, "activeUsers": 2, "inactiveUsers": 1, "blockedUsers": 1
		}`),
	}

	list, err := s.service.List(context.Background(), ListParams{Page: 1, Status: StatusBlocked})
	s.Require().NoError(err)
	s.Require().NotNil(list)

	s.Equal("get", s.doer.lastReq.Method)
	s.Equal("/api/users", s.doer.lastReq.Path)
	s.Equal("1", s.doer.lastReq.Params.Get("page"))
	s.Equal(StatusBlocked, s.doer.lastReq.Params.Get("status"))
	s.False(s.doer.lastReq.Params.Has("query"))

	s.Equal(4, list.TotalUsers)
	s.Equal(2, list.ActiveUsers)
	s.Equal(1, list.InactiveUsers)
	s.Equal(1, list.BlockedUsers)
	s.Len(list.Users, 1)
	s.Equal(StatusBlocked, list.Users[0].AccountStatus)
}

func (s *UsersServiceSuite) TestListForcedLogoutResolvesToNoResult() {
	s.doer.result = nil

	list, err := s.service.List(context.Background(), ListParams{Page: 1})
	s.NoError(err)
	s.Nil(list)
}

func (s *UsersServiceSuite) TestGetCancelledResolvesToNoResult() {
	s.doer.result = &gateway.Result{
		Status: http.StatusBadRequest,
		Err:    apierrors.Wrap(context.Canceled, apierrors.CodeCanceled, "canceled"),
	}

	user, err := s.service.Get(context.Background(), 7)
	s.NoError(err)
	s.Nil(user)
}

func (s *UsersServiceSuite) TestDeleteCarriesServerMessage() {
	s.doer.result = &gateway.Result{
		Status: http.StatusNotFound,
		Err:    apierrors.New(apierrors.CodeNotFound, "User not found"),
	}

	err := s.service.Delete(context.Background(), 42)
	s.Require().Error(err)
	s.Equal("User not found", apierrors.Message(err, ""))
	s.Equal("/api/users/42", s.doer.lastReq.Path)
	s.Equal("delete", s.doer.lastReq.Method)
}

func (s *UsersServiceSuite) TestCreateSendsPayload() {
	s.doer.result = &gateway.Result{
		Status: http.StatusCreated,
		Data:   json.RawMessage(`{"id": 9, "email": "new@reelops.dev"}`),
	}

	user, err := s.service.Create(context.Background(), CreateInput{Email: "new@reelops.dev", Password: "secret"})
	s.Require().NoError(err)
	s.Equal(int64(9), user.ID)
	s.Equal("post", s.doer.lastReq.Method)

	input, ok := s.doer.lastReq.Body.(CreateInput)
	s.Require().True(ok)
	s.Equal("new@reelops.dev", input.Email)
}

func (s *UsersServiceSuite) TestCurrentUserResolvesIdentity() {
	s.doer.result = &gateway.Result{
		Status: http.StatusOK,
		Data:   json.RawMessage(`{"id": 1, "email": "admin@reelops.dev", "token": "tok-1"}`),
	}

	identity, err := s.service.CurrentUser(context.Background())
	s.Require().NoError(err)
	s.Require().NotNil(identity)
	s.Equal("/api/users/me", s.doer.lastReq.Path)
	s.Equal(int64(1), identity.ID)
	s.Equal("tok-1", identity.Token)
	s.True(identity.Identified())
}

func TestUsersServiceSuite(t *testing.T) {
	suite.Run(t, new(UsersServiceSuite))
}
