package mock

import (
	"context"
	"io"
	"time"

	"github.com/mleroux/videogen-ms-go/internal/port"
)

// Storage implements file storage behaviour for tests.
type Storage struct {
	// stored values
	ExistsOut bool
	URLOut    string
	InfoOut   port.FileInfo

	// errors
	InitErr   error
	URLErr    error
	ExistsErr error
	StatErr   error
	SaveErr   error
	RemoveErr error

	// recorded inputs
	SavedKey  string
	SavedData []byte

	// call flags
	SaveCalled   bool
	ExistsCalled bool
	RemoveCalled bool
}

func (s *Storage) InitBucket(bucket string) error {
	return s.InitErr
}

func (s *Storage) GeneratePresignedDownloadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error) {
	if s.URLErr != nil {
		return "", s.URLErr
	}
	return s.URLOut, nil
}

func (s *Storage) FileExists(ctx context.Context, bucket, fileKey string) (bool, error) {
	s.ExistsCalled = true
	if s.ExistsErr != nil {
		return false, s.ExistsErr
	}
	return s.ExistsOut, nil
}

func (s *Storage) StatFile(ctx context.Context, bucket, fileKey string) (port.FileInfo, error) {
	if s.StatErr != nil {
		return port.FileInfo{}, s.StatErr
	}
	return s.InfoOut, nil
}

func (s *Storage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	s.SaveCalled = true
	s.SavedKey = fileKey
	if s.SaveErr != nil {
		return s.SaveErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.SavedData = data
	return nil
}

func (s *Storage) RemoveFile(ctx context.Context, bucket, fileKey string) error {
	s.RemoveCalled = true
	return s.RemoveErr
}
