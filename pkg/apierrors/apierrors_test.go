package apierrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

// APIErrorsSuite tests the coded error primitives used at every service
// boundary. The cancellation detection in particular must stay type-based;
// services rely on it to turn cancelled calls into empty results.
type APIErrorsSuite struct {
	suite.Suite
}

func TestAPIErrorsSuite(t *testing.T) {
	suite.Run(t, new(APIErrorsSuite))
}

func (s *APIErrorsSuite) TestErrorInterface() {
	s.Run("returns message when present", func() {
		err := &Error{Code: CodeNotFound, Message: "movie not found"}
		s.Equal("movie not found", err.Error())
	})

	s.Run("returns code when message is empty", func() {
		err := &Error{Code: CodeAccessDenied}
		s.Equal("access_denied", err.Error())
	})
}

func (s *APIErrorsSuite) TestWrapPreservesCode() {
	inner := New(CodeNotFound, "genre not found")
	wrapped := Wrap(inner, CodeInternal, "lookup failed")

	s.True(HasCode(wrapped, CodeNotFound))
	s.Equal("lookup failed", wrapped.Error())
}

func (s *APIErrorsSuite) TestIsMatchesByCode() {
	err1 := &Error{Code: CodeRequestFailed, Message: "boom"}
	err2 := &Error{Code: CodeRequestFailed, Message: "other"}
	s.True(errors.Is(err1, err2))
	s.False(errors.Is(err1, &Error{Code: CodeCanceled}))
}

func (s *APIErrorsSuite) TestIsCanceled() {
	s.Run("detects coded cancellation", func() {
		s.True(IsCanceled(New(CodeCanceled, "")))
	})

	s.Run("detects context.Canceled through chain", func() {
		err := fmt.Errorf("request aborted: %w", context.Canceled)
		s.True(IsCanceled(err))
	})

	s.Run("ignores other failures", func() {
		s.False(IsCanceled(New(CodeRequestFailed, "boom")))
		s.False(IsCanceled(nil))
	})
}

func (s *APIErrorsSuite) TestMessage() {
	s.Run("prefers server message", func() {
		err := New(CodeRequestFailed, "Title already exists")
		s.Equal("Title already exists", Message(err, "something went wrong"))
	})

	s.Run("falls back for bare errors", func() {
		s.Equal("something went wrong", Message(errors.New("dial tcp"), "something went wrong"))
	})
}
