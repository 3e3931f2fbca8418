package mock

import "context"

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	StatusOut []byte
	EtagOut   string

	// errors
	GetStatusErr error
	GetEtagErr   error
	DelStatusErr error
	DelEtagErr   error

	// call flags
	GetStatusCalled bool
	GetEtagCalled   bool
	SetStatusCalled bool
	SetEtagCalled   bool
	DelStatusCalled bool
	DelEtagCalled   bool
}

func (c *Cache) GetJobStatus(ctx context.Context, videoID string) ([]byte, error) {
	c.GetStatusCalled = true
	if c.GetStatusErr != nil {
		return nil, c.GetStatusErr
	}
	return c.StatusOut, nil
}

func (c *Cache) GetEtagJobStatus(ctx context.Context, videoID string) (string, error) {
	c.GetEtagCalled = true
	if c.GetEtagErr != nil {
		return "", c.GetEtagErr
	}
	return c.EtagOut, nil
}

func (c *Cache) SetJobStatus(ctx context.Context, videoID string, data []byte) {
	c.SetStatusCalled = true
	c.StatusOut = data
}

func (c *Cache) SetEtagJobStatus(ctx context.Context, videoID string, etag string) {
	c.SetEtagCalled = true
	c.EtagOut = etag
}

func (c *Cache) DeleteJobStatus(ctx context.Context, videoID string) error {
	c.DelStatusCalled = true
	return c.DelStatusErr
}

func (c *Cache) DeleteEtagJobStatus(ctx context.Context, videoID string) error {
	c.DelEtagCalled = true
	return c.DelEtagErr
}
