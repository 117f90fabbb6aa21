package gmail

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Candidate is an inbox message eligible for cleanup.
type Candidate struct {
	ID      string
	From    string
	Subject string
	Unread  bool
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Promotional and update mail is where newsletters land; the inbox filter
// keeps already-archived mail out of the candidate set.
const cleanupQuery = "in:inbox {category:promotions category:updates}"

// newGmailService builds a Gmail client around the provider-minted access
// token. The token is used as-is for this one request, never refreshed or
// stored here.
func (s *Service) newGmailService(ctx context.Context, accessToken string) (*gmail.Service, error) {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	})

	srv, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail service: %v", err)
	}

	return srv, nil
}

// ListCleanupCandidates returns inbox messages that look like newsletter or
// promotional mail, with enough metadata to filter on sender.
func (s *Service) ListCleanupCandidates(ctx context.Context, accessToken string, maxResults int64) ([]*Candidate, error) {
	srv, err := s.newGmailService(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	user := "me"
	listResp, err := srv.Users.Messages.List(user).Q(cleanupQuery).MaxResults(maxResults).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to list messages: %v", err)
	}

	candidates := make([]*Candidate, 0, len(listResp.Messages))
	for _, m := range listResp.Messages {
		msg, err := srv.Users.Messages.Get(user, m.Id).
			Format("metadata").
			MetadataHeaders("From", "Subject").
			Do()
		if err != nil {
			return nil, fmt.Errorf("unable to retrieve message %s: %v", m.Id, err)
		}

		candidate := &Candidate{ID: msg.Id}
		if msg.Payload != nil {
			for _, header := range msg.Payload.Headers {
				switch header.Name {
				case "From":
					candidate.From = header.Value
				case "Subject":
					candidate.Subject = header.Value
				}
			}
		}
		for _, label := range msg.LabelIds {
			if label == "UNREAD" {
				candidate.Unread = true
				break
			}
		}

		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

// Archive removes the messages from the inbox without deleting them.
func (s *Service) Archive(ctx context.Context, accessToken string, messageIDs []string) error {
	if len(messageIDs) == 0 {
		return nil
	}

	srv, err := s.newGmailService(ctx, accessToken)
	if err != nil {
		return err
	}

	err = srv.Users.Messages.BatchModify("me", &gmail.BatchModifyMessagesRequest{
		Ids:            messageIDs,
		RemoveLabelIds: []string{"INBOX"},
	}).Do()
	if err != nil {
		return fmt.Errorf("unable to archive messages: %v", err)
	}

	return nil
}

// Trash moves the messages to the trash.
func (s *Service) Trash(ctx context.Context, accessToken string, messageIDs []string) error {
	srv, err := s.newGmailService(ctx, accessToken)
	if err != nil {
		return err
	}

	var failed []string
	for _, id := range messageIDs {
		if _, err := srv.Users.Messages.Trash("me", id).Do(); err != nil {
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("unable to trash messages: %s", strings.Join(failed, ", "))
	}

	return nil
}
