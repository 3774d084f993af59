package tokenstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MemorySuite struct {
	suite.Suite
	store *Memory
}

func (s *MemorySuite) SetupTest() {
	s.store = NewMemory()
}

func TestMemorySuite(t *testing.T) {
	suite.Run(t, new(MemorySuite))
}

func (s *MemorySuite) TestLoadEmpty() {
	_, err := s.store.Load(context.Background())
	s.ErrorIs(err, ErrNotFound)
}

func (s *MemorySuite) TestSaveLoadClear() {
	ctx := context.Background()

	s.Require().NoError(s.store.Save(ctx, "tok-abc"))

	token, err := s.store.Load(ctx)
	s.Require().NoError(err)
	s.Equal("tok-abc", token)

	s.Require().NoError(s.store.Clear(ctx))
	_, err = s.store.Load(ctx)
	s.ErrorIs(err, ErrNotFound)
}

type FileSuite struct {
	suite.Suite
	dir   string
	store *File
}

func (s *FileSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.store = NewFile(s.dir)
}

func TestFileSuite(t *testing.T) {
	suite.Run(t, new(FileSuite))
}

func (s *FileSuite) TestLoadMissing() {
	_, err := s.store.Load(context.Background())
	s.ErrorIs(err, ErrNotFound)
}

func (s *FileSuite) TestRoundTrip() {
	ctx := context.Background()

	s.Require().NoError(s.store.Save(ctx, "tok-file"))

	token, err := s.store.Load(ctx)
	s.Require().NoError(err)
	s.Equal("tok-file", token)
}

func (s *FileSuite) TestClearWipesWholeStateDir() {
	ctx := context.Background()
	s.Require().NoError(s.store.Save(ctx, "tok-file"))

	// Unrelated state in the same dir goes too; logout wipes everything.
	extra := filepath.Join(s.dir, "preferences.json")
	s.Require().NoError(os.WriteFile(extra, []byte("{}"), 0o600))

	s.Require().NoError(s.store.Clear(ctx))

	_, err := s.store.Load(ctx)
	s.ErrorIs(err, ErrNotFound)
	_, err = os.Stat(extra)
	s.True(os.IsNotExist(err))
}

func (s *FileSuite) TestClearMissingDirIsNoop() {
	store := NewFile(filepath.Join(s.dir, "never-created"))
	s.NoError(store.Clear(context.Background()))
}

func (s *FileSuite) TestLoadIgnoresWhitespace() {
	ctx := context.Background()
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "token"), []byte("tok-trim\n"), 0o600))

	token, err := s.store.Load(ctx)
	s.Require().NoError(err)
	s.Equal("tok-trim", token)
}
