package source

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingService struct {
	files     int
	playbooks int
	err       error
}

func (s *countingService) Root() string { return "/playbooks" }

func (s *countingService) Files(bool) ([]File, error) {
	s.files++
	return []File{NewFile(1, "a.txt")}, s.err
}

func (s *countingService) Playbook(name string, _ bool) ([]Line, error) {
	s.playbooks++
	return []Line{NewLine(1, name)}, s.err
}

func TestCachedService_ServesFromCache(t *testing.T) {
	inner := &countingService{}
	c := NewCachedService(inner, time.Minute)

	for i := 0; i < 3; i++ {
		files, err := c.Files(true)
		require.NoError(t, err)
		assert.Len(t, files, 1)
		_, err = c.Playbook("a.txt", true)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, inner.files)
	assert.Equal(t, 1, inner.playbooks)

	// Different arguments are cached separately.
	_, _ = c.Files(false)
	_, _ = c.Playbook("a.txt", false)
	assert.Equal(t, 2, inner.files)
	assert.Equal(t, 2, inner.playbooks)
}

func TestCachedService_Invalidate(t *testing.T) {
	inner := &countingService{}
	c := NewCachedService(inner, time.Minute)

	_, _ = c.Files(true)
	c.Invalidate()
	_, _ = c.Files(true)
	assert.Equal(t, 2, inner.files)
}

func TestCachedService_Expires(t *testing.T) {
	inner := &countingService{}
	c := NewCachedService(inner, time.Nanosecond)

	_, _ = c.Playbook("a.txt", true)
	time.Sleep(time.Millisecond)
	_, _ = c.Playbook("a.txt", true)
	assert.Equal(t, 2, inner.playbooks)
}

func TestCachedService_CachesErrors(t *testing.T) {
	boom := errors.New("boom")
	inner := &countingService{err: boom}
	c := NewCachedService(inner, time.Minute)

	_, err := c.Files(true)
	assert.ErrorIs(t, err, boom)
	_, err = c.Files(true)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, inner.files)
	assert.Equal(t, "/playbooks", c.Root())
}
