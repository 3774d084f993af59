package gateway

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"reelops/internal/session"
	"reelops/internal/tokenstore"
	"reelops/pkg/apierrors"
)

type GatewaySuite struct {
	suite.Suite
	sessions *session.Store
	tokens   *tokenstore.Memory
	logouts  int
}

func (s *GatewaySuite) SetupTest() {
	s.sessions = session.NewStore()
	s.tokens = tokenstore.NewMemory()
	s.logouts = 0
}

func TestGatewaySuite(t *testing.T) {
	suite.Run(t, new(GatewaySuite))
}

func (s *GatewaySuite) newGateway(baseURL string) *Gateway {
	gw, err := New(Config{
		BaseURL:  baseURL,
		Tokens:   s.tokens,
		Sessions: s.sessions,
		Logout:   func(context.Context) { s.logouts++ },
	}, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.Require().NoError(err)
	return gw
}

func (s *GatewaySuite) TestNoTokenNoBearerHeader() {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	res := s.newGateway(srv.URL).Do(context.Background(), Request{Method: "get", Path: "/api/genres"})

	s.Require().NotNil(res)
	s.NoError(res.Err)
	s.Empty(gotAuth)
}

func (s *GatewaySuite) TestPersistedTokenAttachedAsBearer() {
	s.Require().NoError(s.tokens.Save(context.Background(), "tok-persisted"))

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	s.newGateway(srv.URL).Do(context.Background(), Request{Method: "get", Path: "/api/users"})

	s.Equal("Bearer tok-persisted", gotAuth)
}

func (s *GatewaySuite) TestSessionTokenFallback() {
	s.sessions.Set(session.TokenOnly("tok-session"))

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	s.newGateway(srv.URL).Do(context.Background(), Request{Method: "get", Path: "/api/users/me"})

	s.Equal("Bearer tok-session", gotAuth)
}

func (s *GatewaySuite) TestSuccessCarriesStatusAndBody() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":5}`))
	}))
	defer srv.Close()

	res := s.newGateway(srv.URL).Do(context.Background(), Request{
		Method: "post",
		Path:   "/api/genres",
		Body:   map[string]string{"name": "Drama"},
	})

	s.Require().NotNil(res)
	s.NoError(res.Err)
	s.Equal(http.StatusCreated, res.Status)
	s.JSONEq(`{"id":5}`, string(res.Data))
}

func (s *GatewaySuite) TestQueryParamsEncoded() {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	params := url.Values{}
	params.Set("page", "1")
	params.Set("status", "blocked")
	s.newGateway(srv.URL).Do(context.Background(), Request{Method: "get", Path: "/api/users", Params: params})

	s.Equal("1", gotQuery.Get("page"))
	s.Equal("blocked", gotQuery.Get("status"))
}

func (s *GatewaySuite) TestFailureCarriesServerMessage() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Movie not found"})
	}))
	defer srv.Close()

	res := s.newGateway(srv.URL).Do(context.Background(), Request{Method: "get", Path: "/api/movies/42"})

	s.Require().NotNil(res)
	s.Require().Error(res.Err)
	s.Equal(http.StatusNotFound, res.Status)
	s.True(apierrors.HasCode(res.Err, apierrors.CodeNotFound))
	s.Equal("Movie not found", apierrors.Message(res.Err, ""))
	s.Zero(s.logouts)
}

func (s *GatewaySuite) TestTransportFailureDefaultsStatus() {
	gw := s.newGateway("http://127.0.0.1:1") // nothing listens here

	res := gw.Do(context.Background(), Request{Method: "get", Path: "/api/users"})

	s.Require().NotNil(res)
	s.Require().Error(res.Err)
	s.Equal(http.StatusBadRequest, res.Status)
	s.False(apierrors.IsCanceled(res.Err))
}

func (s *GatewaySuite) TestAccessDeniedForcesLogoutAndNilResult() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": AccessDeniedMessage})
	}))
	defer srv.Close()

	res := s.newGateway(srv.URL).Do(context.Background(), Request{Method: "get", Path: "/api/users"})

	s.Nil(res)
	s.Equal(1, s.logouts)
}

func (s *GatewaySuite) TestCancellationReportedByType() {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	res := s.newGateway(srv.URL).Do(ctx, Request{Method: "get", Path: "/api/movies"})

	s.Require().NotNil(res)
	s.Require().Error(res.Err)
	s.True(apierrors.IsCanceled(res.Err))
	s.Zero(s.logouts)
}

func (s *GatewaySuite) TestSlowServerRespectsCallerDeadline() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	res := s.newGateway(srv.URL).Do(ctx, Request{Method: "get", Path: "/api/movies"})

	s.Require().NotNil(res)
	s.Error(res.Err)
}
