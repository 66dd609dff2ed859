package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type item struct {
	ID   string
	Code string
	Name string
}

var itemKeys = Keys[item]{
	Key:    func(i item) string { return i.ID },
	AltKey: func(i item) string { return i.Code },
}

type MemorySuite struct {
	suite.Suite
	repo *Memory[item]
	ctx  context.Context
}

func (s *MemorySuite) SetupTest() {
	s.repo = NewMemory(itemKeys)
	s.ctx = context.Background()
}

func TestMemorySuite(t *testing.T) {
	suite.Run(t, new(MemorySuite))
}

func (s *MemorySuite) TestInsertAndList() {
	s.Run("lists in insertion order", func() {
		s.Require().NoError(s.repo.Reset(s.ctx))
		for _, id := range []string{"c", "a", "b"} {
			s.Require().NoError(s.repo.Insert(s.ctx, item{ID: id, Code: "code-" + id}))
		}

		all, err := s.repo.List(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(all, 3)
		s.Equal("c", all[0].ID)
		s.Equal("a", all[1].ID)
		s.Equal("b", all[2].ID)
	})

	s.Run("empty collection lists nothing", func() {
		s.Require().NoError(s.repo.Reset(s.ctx))
		all, err := s.repo.List(s.ctx)
		s.Require().NoError(err)
		s.Empty(all)
	})
}

func (s *MemorySuite) TestUniqueness() {
	s.Require().NoError(s.repo.Insert(s.ctx, item{ID: "1", Code: "A", Name: "first"}))

	s.Run("duplicate key", func() {
		err := s.repo.Insert(s.ctx, item{ID: "1", Code: "B"})
		s.Require().ErrorIs(err, ErrKeyExists)
	})

	s.Run("key is checked before alternate key", func() {
		err := s.repo.Insert(s.ctx, item{ID: "1", Code: "A"})
		s.Require().ErrorIs(err, ErrKeyExists)
	})

	s.Run("duplicate alternate key", func() {
		err := s.repo.Insert(s.ctx, item{ID: "2", Code: "A"})
		s.Require().ErrorIs(err, ErrAltKeyExists)
	})

	s.Run("failed inserts leave the collection unchanged", func() {
		all, err := s.repo.List(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(all, 1)
		s.Equal("first", all[0].Name)
	})
}

func (s *MemorySuite) TestUpdate() {
	s.Require().NoError(s.repo.Insert(s.ctx, item{ID: "1", Code: "A", Name: "old"}))

	s.Run("applies fn and persists", func() {
		updated, err := s.repo.Update(s.ctx, "1", func(i item) item {
			i.Name = "new"
			return i
		})
		s.Require().NoError(err)
		s.Equal("new", updated.Name)

		got, err := s.repo.Get(s.ctx, "1")
		s.Require().NoError(err)
		s.Equal("new", got.Name)
	})

	s.Run("unknown key", func() {
		called := false
		_, err := s.repo.Update(s.ctx, "missing", func(i item) item {
			called = true
			return i
		})
		s.Require().ErrorIs(err, ErrNotFound)
		s.False(called)
	})

	s.Run("rejects a changed alternate key", func() {
		_, err := s.repo.Update(s.ctx, "1", func(i item) item {
			i.Code = "Z"
			return i
		})
		s.Require().ErrorIs(err, ErrKeyChanged)

		got, err := s.repo.Get(s.ctx, "1")
		s.Require().NoError(err)
		s.Equal("A", got.Code)
		s.Equal("new", got.Name)
		s.Require().ErrorIs(s.repo.Insert(s.ctx, item{ID: "2", Code: "A"}), ErrAltKeyExists)
		s.Require().NoError(s.repo.Insert(s.ctx, item{ID: "3", Code: "Z"}))
	})

	s.Run("rejects a changed natural key", func() {
		_, err := s.repo.Update(s.ctx, "1", func(i item) item {
			i.ID = "9"
			return i
		})
		s.Require().ErrorIs(err, ErrKeyChanged)

		_, err = s.repo.Get(s.ctx, "9")
		s.Require().ErrorIs(err, ErrNotFound)
	})
}

func (s *MemorySuite) TestDelete() {
	s.Require().NoError(s.repo.Insert(s.ctx, item{ID: "1", Code: "A"}))
	s.Require().NoError(s.repo.Insert(s.ctx, item{ID: "2", Code: "B"}))

	s.Require().NoError(s.repo.Delete(s.ctx, "1"))

	_, err := s.repo.Get(s.ctx, "1")
	s.Require().ErrorIs(err, ErrNotFound)
	s.Require().ErrorIs(s.repo.Delete(s.ctx, "1"), ErrNotFound)

	s.Run("frees the alternate key", func() {
		s.Require().NoError(s.repo.Insert(s.ctx, item{ID: "3", Code: "A"}))
	})

	s.Run("keeps the order of the rest", func() {
		all, err := s.repo.List(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(all, 2)
		s.Equal("2", all[0].ID)
		s.Equal("3", all[1].ID)
	})
}

func (s *MemorySuite) TestConcurrentInsertsSameKey() {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.repo.Insert(s.ctx, item{ID: "same", Code: fmt.Sprintf("code-%d", i)})
			if err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	s.Equal(1, success)
	all, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func TestMemoryWithoutAltKey(t *testing.T) {
	repo := NewMemory(Keys[item]{Key: func(i item) string { return i.ID }})
	ctx := context.Background()

	if err := repo.Insert(ctx, item{ID: "1", Code: "A"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Insert(ctx, item{ID: "2", Code: "A"}); err != nil {
		t.Fatalf("same code must be allowed without alternate key: %v", err)
	}
}
