package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/nationsim-go/internal/application/session"
	"github.com/andrescamacho/nationsim-go/internal/domain/world"
	"github.com/andrescamacho/nationsim-go/test/helpers"
)

func TestSession_SelectAndResolve(t *testing.T) {
	s := session.New(helpers.NewTestWorld(t), "test")

	n, err := s.Select("hungary")
	require.NoError(t, err)
	assert.Equal(t, "Hungary", n.Name())
	assert.Equal(t, 1, s.SelectedIndex())

	err = s.Read(func(w *world.World) error {
		selected, err := s.Resolve(w, "")
		require.NoError(t, err)
		assert.Equal(t, "Hungary", selected.Name())

		byIndex, err := s.Resolve(w, "0")
		require.NoError(t, err)
		assert.Equal(t, "Romania", byIndex.Name())
		return nil
	})
	require.NoError(t, err)

	_, err = s.Select("Atlantis")
	assert.Error(t, err)
	assert.Equal(t, 1, s.SelectedIndex())
}

func TestSession_Advance(t *testing.T) {
	s := session.New(helpers.NewTestWorld(t), "test")

	day, reports := s.Advance()

	assert.Equal(t, 1, day)
	assert.Len(t, reports, 2)
	assert.Equal(t, 1, s.Day())
}

func TestSession_ReadsShareTheLockWritesDoNot(t *testing.T) {
	s := session.New(helpers.NewTestWorld(t), "test")
	holding := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = s.Read(func(*world.World) error {
			close(holding)
			<-release
			return nil
		})
	}()
	<-holding

	// a second reader gets in while the first still holds the lock
	readDone := make(chan struct{})
	go func() {
		_ = s.Read(func(*world.World) error { return nil })
		close(readDone)
	}()
	select {
	case <-readDone:
	case <-time.After(time.Second):
		t.Fatal("concurrent Read blocked")
	}

	// a writer waits for the reader to finish
	writeDone := make(chan struct{})
	go func() {
		_ = s.Write(func(*world.World) error { return nil })
		close(writeDone)
	}()
	select {
	case <-writeDone:
		t.Fatal("Write ran while a Read held the lock")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-writeDone:
	case <-time.After(time.Second):
		t.Fatal("Write never acquired the lock")
	}
}
