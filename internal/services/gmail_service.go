package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"inboxzero-be/config"
	"inboxzero-be/internal/ingest"
	"inboxzero-be/internal/models"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Metadata fetches run in groups of this size; each group is fully awaited
// before the next one is issued, to respect upstream rate limits.
const metadataBatchSize = 20

const listPageSize = 100

type GmailService struct {
	cfg *config.Config
}

func NewGmailService(cfg *config.Config) *GmailService {
	return &GmailService{
		cfg: cfg,
	}
}

// Enabled reports whether inbox sync is configured at all. When either
// credential is missing the sync entry point stays disabled and the user
// sees a status message instead of an error.
func (s *GmailService) Enabled() bool {
	return s.cfg.GoogleClientID != "" && s.cfg.GoogleAPIKey != ""
}

func (s *GmailService) client(ctx context.Context, accessToken string) (*gmail.Service, error) {
	if accessToken == "" {
		return nil, errors.New("no google access token provided")
	}

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})
	return gmail.NewService(ctx, option.WithTokenSource(tokenSource))
}

// FetchRecords reads message metadata from the authorized inbox: a paged
// listing filtered by the configured query, then per-message metadata
// fetches. Collection stops at the configured message cap or when the
// listing runs out of pages. A listing failure aborts the sync; a single
// message failure just drops that message.
func (s *GmailService) FetchRecords(ctx context.Context, accessToken string) ([]models.EmailRecord, error) {
	srv, err := s.client(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	maxMessages := s.cfg.GmailMaxMessages
	collected := make([]models.EmailRecord, 0, maxMessages)
	pageToken := ""

	for len(collected) < maxMessages {
		req := srv.Users.Messages.List("me").Q(s.cfg.GmailQuery).MaxResults(listPageSize)
		if pageToken != "" {
			req.PageToken(pageToken)
		}

		resp, err := req.Context(ctx).Do()
		if err != nil {
			return nil, err
		}
		if len(resp.Messages) == 0 {
			break
		}

		remaining := maxMessages - len(collected)
		ids := make([]string, 0, remaining)
		for _, msg := range resp.Messages {
			if len(ids) == remaining {
				break
			}
			ids = append(ids, msg.Id)
		}

		for start := 0; start < len(ids); start += metadataBatchSize {
			end := start + metadataBatchSize
			if end > len(ids) {
				end = len(ids)
			}
			collected = append(collected, s.fetchMetadataBatch(ctx, srv, ids[start:end])...)
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return collected, nil
}

// fetchMetadataBatch fetches one bounded group concurrently, preserving
// input order in the result. Failed or undatable messages contribute
// nothing.
func (s *GmailService) fetchMetadataBatch(ctx context.Context, srv *gmail.Service, ids []string) []models.EmailRecord {
	results := make([]*models.EmailRecord, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(idx int, messageID string) {
			defer wg.Done()

			msg, err := srv.Users.Messages.Get("me", messageID).
				Format("metadata").
				MetadataHeaders("Date", "From", "Subject").
				Context(ctx).Do()
			if err != nil {
				return
			}
			if rec, ok := mapMessage(msg); ok {
				results[idx] = &rec
			}
		}(i, id)
	}
	wg.Wait()

	out := make([]models.EmailRecord, 0, len(ids))
	for _, rec := range results {
		if rec != nil {
			out = append(out, *rec)
		}
	}
	return out
}

// mapMessage normalizes one message's metadata headers into a record using
// the same parser rules as CSV uploads. A malformed date drops the message.
func mapMessage(msg *gmail.Message) (models.EmailRecord, bool) {
	if msg == nil || msg.Payload == nil {
		return models.EmailRecord{}, false
	}

	date, err := ingest.ParseDate(header(msg.Payload.Headers, "date"))
	if err != nil {
		return models.EmailRecord{}, false
	}

	from := header(msg.Payload.Headers, "from")
	subject := header(msg.Payload.Headers, "subject")
	return ingest.NewRecord(date, from, subject), true
}

func header(headers []*gmail.MessagePartHeader, name string) string {
	for _, h := range headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}
