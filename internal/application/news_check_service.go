package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"rssNotifier/internal/domain/apperror"
	"rssNotifier/internal/domain/entity"
	"rssNotifier/internal/domain/repository"
	"rssNotifier/internal/domain/service"
)

type Outcome string

const (
	OutcomeNoEntries          Outcome = "no_entries"
	OutcomeNoNewNews          Outcome = "no_new_news"
	OutcomeNotified           Outcome = "notified"
	OutcomeConfigurationError Outcome = "configuration_error"
	OutcomeProcessingError    Outcome = "processing_error"
)

type Result struct {
	StatusCode int     `json:"statusCode"`
	Message    string  `json:"message"`
	Outcome    Outcome `json:"outcome"`
	Notified   int     `json:"notified"`
	Err        error   `json:"-"`
}

// Settings are the per-run values the service checks before touching any
// collaborator.
type Settings struct {
	StoreName   string `validate:"required"`
	Destination string `validate:"required"`
	FeedURL     string `validate:"required,url"`
	SiteName    string
}

// NewsCheckService runs one poll of the feed: load the checkpoint, fetch,
// filter, advance the checkpoint, notify.
//
// The checkpoint read-modify-write is not locked. Two overlapping runs can
// both read the same checkpoint and both notify the same entries, so delivery
// is at-least-once unless the scheduler guarantees a single run at a time.
type NewsCheckService struct {
	settings      Settings
	feedRepo      repository.FeedRepository
	checkpoints   *CheckpointManager
	notifier      repository.NotifierRepository
	filter        *service.NewItemFilter
	timeFormatter entity.TimeFormatter
	validate      *validator.Validate
}

func NewNewsCheckService(
	settings Settings,
	feedRepo repository.FeedRepository,
	checkpointRepo repository.CheckpointRepository,
	notifier repository.NotifierRepository,
	filter *service.NewItemFilter,
	timeFormatter entity.TimeFormatter,
) (*NewsCheckService, error) {
	key, err := filter.Extractor.Strategy().CheckpointKey()
	if err != nil {
		return nil, err
	}
	if timeFormatter == nil {
		timeFormatter = entity.RawFormatter{}
	}

	return &NewsCheckService{
		settings:      settings,
		feedRepo:      feedRepo,
		checkpoints:   NewCheckpointManager(checkpointRepo, key),
		notifier:      notifier,
		filter:        filter,
		timeFormatter: timeFormatter,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

func (s *NewsCheckService) Checkpoints() *CheckpointManager {
	return s.checkpoints
}

// Run never panics and never returns nil; every failure is reported through
// the result's status code and message.
func (s *NewsCheckService) Run(ctx context.Context) (result *Result) {
	logger := log.New(log.Writer(), fmt.Sprintf("[run %s] ", RunIDFromContext(ctx)), log.Flags()|log.Lmsgprefix)

	defer func() {
		if r := recover(); r != nil {
			result = processingError(logger, fmt.Errorf("panic: %v", r))
		}
	}()

	if err := s.validate.Struct(s.settings); err != nil {
		logger.Printf("Invalid configuration (%s): %v", strings.Join(invalidFields(err), ", "), err)
		return &Result{
			StatusCode: http.StatusInternalServerError,
			Message:    "Configuration error: Missing environment variables.",
			Outcome:    OutcomeConfigurationError,
			Err:        fmt.Errorf("%w: %w", apperror.ErrConfiguration, err),
		}
	}

	lastSeen, err := s.checkpoints.Get(ctx)
	if err != nil {
		return processingError(logger, err)
	}
	logger.Printf("Last seen %s: %d", s.checkpoints.Key(), lastSeen)

	entries, err := s.feedRepo.Fetch(ctx, s.settings.FeedURL)
	if err != nil {
		return processingError(logger, fmt.Errorf("%w: %w", apperror.ErrFetch, err))
	}
	if len(entries) == 0 {
		logger.Printf("No entries found in feed: %s", s.settings.FeedURL)
		return &Result{
			StatusCode: http.StatusOK,
			Message:    "No entries found in feed.",
			Outcome:    OutcomeNoEntries,
		}
	}

	newEntries, err := s.filter.Filter(entries, lastSeen)
	if err != nil {
		return processingError(logger, err)
	}
	if len(newEntries) == 0 {
		logger.Printf("No new news found. Baseline %s remains %d.", s.checkpoints.Key(), lastSeen)
		return &Result{
			StatusCode: http.StatusOK,
			Message:    "No new news found.",
			Outcome:    OutcomeNoNewNews,
		}
	}

	// The checkpoint follows the newest fetched entry, and it is written
	// before publishing: a failed publish loses a notification rather than
	// repeating it on the next run.
	latest, err := s.filter.Extractor.Key(entries[0])
	if err != nil {
		return processingError(logger, err)
	}
	if err := s.checkpoints.Set(ctx, latest); err != nil {
		return processingError(logger, err)
	}
	logger.Printf("Updated %s to: %d", s.checkpoints.Key(), latest)

	notification := entity.NewDigestNotification(s.settings.SiteName, newEntries, s.timeFormatter)
	if err := s.notifier.Publish(ctx, s.settings.Destination, notification); err != nil {
		return processingError(logger, fmt.Errorf("%w: %w", apperror.ErrNotify, err))
	}
	logger.Printf("Published notification with %d new articles.", len(newEntries))

	return &Result{
		StatusCode: http.StatusOK,
		Message:    fmt.Sprintf("Found and notified about %d new articles.", len(newEntries)),
		Outcome:    OutcomeNotified,
		Notified:   len(newEntries),
	}
}

// invalidFields names the settings that failed validation, e.g. "StoreName (required)".
func invalidFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"unknown"}
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fields
}

func processingError(logger *log.Logger, err error) *Result {
	logger.Printf("Error processing news feed: %v", err)
	return &Result{
		StatusCode: http.StatusInternalServerError,
		Message:    fmt.Sprintf("Error: %v", err),
		Outcome:    OutcomeProcessingError,
		Err:        fmt.Errorf("%w: %w", apperror.ErrProcessing, err),
	}
}
