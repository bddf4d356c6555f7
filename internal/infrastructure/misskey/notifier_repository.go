package misskey

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"rssNotifier/internal/domain/entity"
	"rssNotifier/internal/domain/repository"
)

type NoteVisibility string

const (
	VisibilityPublic    NoteVisibility = "public"
	VisibilityHome      NoteVisibility = "home"
	VisibilityFollowers NoteVisibility = "followers"
	VisibilitySpecified NoteVisibility = "specified"
)

func ParseVisibility(s string) (NoteVisibility, error) {
	switch v := NoteVisibility(s); v {
	case VisibilityPublic, VisibilityHome, VisibilityFollowers, VisibilitySpecified:
		return v, nil
	default:
		return "", fmt.Errorf("unknown note visibility: %q", s)
	}
}

type notifierRepository struct {
	host      string
	authToken string
	client    *http.Client
	localOnly bool
}

type Config struct {
	Host      string
	AuthToken string
	LocalOnly bool
	Timeout   time.Duration
}

func NewNotifierRepository(cfg Config) repository.NotifierRepository {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &notifierRepository{
		host:      cfg.Host,
		authToken: cfg.AuthToken,
		client:    &http.Client{Timeout: timeout},
		localOnly: cfg.LocalOnly,
	}
}

// Publish posts the notification as a single note. The destination is the
// note visibility.
func (r *notifierRepository) Publish(ctx context.Context, destination string, n *entity.Notification) error {
	visibility, err := ParseVisibility(destination)
	if err != nil {
		return err
	}

	notePayload := map[string]interface{}{
		"i":          r.authToken,
		"text":       n.Text(),
		"visibility": string(visibility),
		"localOnly":  r.localOnly,
	}

	payload, err := json.Marshal(notePayload)
	if err != nil {
		return fmt.Errorf("failed to serialize note: %w", err)
	}

	url := r.host
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}
	url = strings.TrimSuffix(url, "/") + "/api/notes/create"

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Misskey API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Misskey API returned non-OK status: %d", resp.StatusCode)
	}

	return nil
}
