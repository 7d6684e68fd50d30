package storage

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.SaveList("kept", []string{"one"}, ""); err != nil {
		t.Fatalf("SaveList() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	l, err := store.List("kept")
	if err != nil {
		t.Fatalf("List() after reopen failed: %v", err)
	}
	if len(l.Words) != 1 || l.Words[0] != "one" {
		t.Errorf("Words = %v, expected [one]", l.Words)
	}
}

type StoreSuite struct {
	suite.Suite
	store *Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	store, err := Open(filepath.Join(s.T().TempDir(), "test.db"))
	s.Require().NoError(err)
	s.store = store
}

func (s *StoreSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

// Word list tests

func (s *StoreSuite) TestSaveListKeepsOrder() {
	s.Require().NoError(s.store.SaveList("mine", []string{"zebra", " apple ", "", "mango"}, "secret"))

	l, err := s.store.List("mine")
	s.Require().NoError(err)
	s.Equal("mine", l.Name)
	s.Equal([]string{"zebra", "apple", "mango"}, l.Words)
	s.Equal("secret", l.SecretWord)
	s.False(l.UpdatedAt.IsZero())
}

func (s *StoreSuite) TestSaveListReplaces() {
	s.Require().NoError(s.store.SaveList("mine", []string{"a", "b", "c"}, "x"))
	s.Require().NoError(s.store.SaveList("mine", []string{"d"}, ""))

	l, err := s.store.List("mine")
	s.Require().NoError(err)
	s.Equal([]string{"d"}, l.Words)
	s.Empty(l.SecretWord)

	lists, err := s.store.Lists()
	s.Require().NoError(err)
	s.Len(lists, 1)
}

func (s *StoreSuite) TestSaveListRejectsEmptyName() {
	s.Error(s.store.SaveList("  ", []string{"a"}, ""))
}

func (s *StoreSuite) TestListNotFound() {
	_, err := s.store.List("missing")
	s.True(errors.Is(err, ErrListNotFound))
}

func (s *StoreSuite) TestLists() {
	s.Require().NoError(s.store.SaveList("beta", []string{"a", "b"}, ""))
	s.Require().NoError(s.store.SaveList("alpha", []string{"c"}, ""))
	s.Require().NoError(s.store.SaveList("empty", nil, ""))

	lists, err := s.store.Lists()
	s.Require().NoError(err)
	s.Require().Len(lists, 3)
	s.Equal("alpha", lists[0].Name)
	s.Equal(1, lists[0].Count)
	s.Equal("beta", lists[1].Name)
	s.Equal(2, lists[1].Count)
	s.Equal("empty", lists[2].Name)
	s.Equal(0, lists[2].Count)
}

func (s *StoreSuite) TestDeleteList() {
	s.Require().NoError(s.store.SaveList("gone", []string{"a"}, ""))
	s.Require().NoError(s.store.DeleteList("gone"))

	_, err := s.store.List("gone")
	s.True(errors.Is(err, ErrListNotFound))

	err = s.store.DeleteList("gone")
	s.True(errors.Is(err, ErrListNotFound))

	// A list saved again under the same name starts clean.
	s.Require().NoError(s.store.SaveList("gone", []string{"b"}, ""))
	l, err := s.store.List("gone")
	s.Require().NoError(err)
	s.Equal([]string{"b"}, l.Words)
}

func (s *StoreSuite) TestConcurrentSaves() {
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = s.store.SaveList("shared", []string{"a", "b"}, "")
				_, _ = s.store.List("shared")
			}
		}()
	}
	wg.Wait()

	l, err := s.store.List("shared")
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, l.Words)
}

// Result tests

func (s *StoreSuite) TestBestTimes() {
	results := []Result{
		{Source: "demo", Words: 10, Found: 10, Duration: 90 * time.Second},
		{Source: "demo", Words: 10, Found: 10, Duration: 45 * time.Second},
		{Source: "demo", Words: 10, Found: 4, Revealed: true, Duration: 10 * time.Second},
		{Source: "animals", Words: 10, Found: 10, Duration: 5 * time.Second},
	}
	for _, r := range results {
		_, err := s.store.RecordResult(r)
		s.Require().NoError(err)
	}

	best, err := s.store.BestTimes("demo", 10)
	s.Require().NoError(err)
	s.Require().Len(best, 2, "revealed results are excluded")
	s.Equal(45*time.Second, best[0].Duration)
	s.Equal(90*time.Second, best[1].Duration)
	s.Equal(10, best[0].Found)
	s.False(best[0].Revealed)

	limited, err := s.store.BestTimes("demo", 1)
	s.Require().NoError(err)
	s.Len(limited, 1)
}

func (s *StoreSuite) TestListResultsKeptApartFromPacks() {
	_, err := s.store.RecordResult(Result{Source: ListSource("demo"), Words: 2, Found: 2, Duration: time.Second})
	s.Require().NoError(err)

	best, err := s.store.BestTimes("demo", 10)
	s.Require().NoError(err)
	s.Empty(best)

	best, err = s.store.BestTimes(ListSource("demo"), 10)
	s.Require().NoError(err)
	s.Len(best, 1)

	name, ok := ListName(ListSource("demo"))
	s.True(ok)
	s.Equal("demo", name)
	_, ok = ListName("demo")
	s.False(ok)
}

func (s *StoreSuite) TestClearResults() {
	_, err := s.store.RecordResult(Result{Source: "demo", Words: 1, Found: 1, Duration: time.Second})
	s.Require().NoError(err)
	s.Require().NoError(s.store.ClearResults("demo"))

	best, err := s.store.BestTimes("demo", 10)
	s.Require().NoError(err)
	s.Empty(best)
}
