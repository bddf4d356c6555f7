package console

import (
	"context"
	"fmt"
	"io"
	"os"

	"rssNotifier/internal/domain/entity"
	"rssNotifier/internal/domain/repository"
)

type notifierRepository struct {
	w io.Writer
}

// NewNotifierRepository writes notifications to w instead of delivering them.
// A nil writer means stdout.
func NewNotifierRepository(w io.Writer) repository.NotifierRepository {
	if w == nil {
		w = os.Stdout
	}
	return &notifierRepository{w: w}
}

func (r *notifierRepository) Publish(ctx context.Context, destination string, n *entity.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(r.w, "--- %s ---\n%s\n", destination, n.Text())
	if err != nil {
		return fmt.Errorf("failed to write notification: %w", err)
	}
	return nil
}
