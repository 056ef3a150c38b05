package quotes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"inkpress/models"
	"inkpress/storage"
	"inkpress/utils"

	"golang.org/x/sync/errgroup"
)

// ErrNoRecord marks an insert that reported success without a record.
var ErrNoRecord = errors.New("quote store returned no record")

// Backend is the write surface the quote flow needs from the backing store.
type Backend interface {
	Insert(ctx context.Context, quote models.Quote) error
}

// File is one attachment selected for a quote request. Open defers reading
// until the upload actually runs.
type File struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

type CreateInput struct {
	CustomerName       string
	CustomerEmail      string
	CustomerPhone      string
	Company            string
	ProjectDescription string
	Quantity           int // 0 means not provided
	Deadline           string
}

type Service struct {
	backend Backend
	storage storage.Uploader
}

func NewService(backend Backend, uploader storage.Uploader) *Service {
	return &Service{backend: backend, storage: uploader}
}

func NewMongoService(uploader storage.Uploader) *Service {
	return NewService(mongoBackend{}, uploader)
}

// attachmentFolder namespaces quote uploads in storage.
const attachmentFolder = "artwork"

// Create validates the attachments, uploads them, and persists the quote
// with status "pending". Validation runs before any storage call and
// short-circuits on the first offender. Uploads are all-or-nothing: any
// failure aborts the submission and no quote record is written.
func (s *Service) Create(ctx context.Context, in CreateInput, files []File) (models.Quote, error) {
	if in.CustomerName == "" || in.CustomerEmail == "" || in.ProjectDescription == "" {
		return models.Quote{}, fmt.Errorf("name, email and project description are required")
	}

	for _, f := range files {
		if err := ValidateFileName(f.Name); err != nil {
			return models.Quote{}, err
		}
		if err := ValidateFileSize(f.Name, f.Size); err != nil {
			return models.Quote{}, err
		}
	}

	urls, err := s.uploadAll(ctx, files)
	if err != nil {
		return models.Quote{}, err
	}

	quote := models.Quote{
		QuoteID:            utils.GetUUID(),
		CustomerName:       in.CustomerName,
		CustomerEmail:      in.CustomerEmail,
		CustomerPhone:      optString(in.CustomerPhone),
		Company:            optString(in.Company),
		ProjectDescription: in.ProjectDescription,
		Quantity:           optInt(in.Quantity),
		Deadline:           optString(in.Deadline),
		FileURLs:           urls,
		Status:             models.QuotePending,
		CreatedAt:          time.Now(),
	}

	if err := s.backend.Insert(ctx, quote); err != nil {
		return models.Quote{}, err
	}
	return quote, nil
}

// uploadAll runs every upload concurrently and waits for all of them. The
// returned URLs follow submission order, not completion order.
func (s *Service) uploadAll(ctx context.Context, files []File) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	urls := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f // capture per-iteration copies; go directive predates Go 1.22 loop semantics
		g.Go(func() error {
			rc, err := f.Open()
			if err != nil {
				return fmt.Errorf("open %s: %w", f.Name, err)
			}
			defer rc.Close()

			url, err := s.storage.Upload(ctx, rc, f.Name, attachmentFolder)
			if err != nil {
				return fmt.Errorf("upload %s: %w", f.Name, err)
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optInt(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}
