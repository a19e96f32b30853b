package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

const reportSubject = "ARTICLE VIOLATION ALERT"

// OutreachUsecase shares articles to other platforms and files moderation reports.
type OutreachUsecase struct {
	reportRepo contract.IReportRepository
	reader     *ArticleReader
	notifier   contract.INotificationSender
	config     usecasecontract.IConfigProvider
	uuidgen    contract.IUUIDGenerator
	logger     usecasecontract.IAppLogger
}

// NewOutreachUsecase creates and returns a new OutreachUsecase instance.
func NewOutreachUsecase(
	reportRepo contract.IReportRepository,
	reader *ArticleReader,
	notifier contract.INotificationSender,
	config usecasecontract.IConfigProvider,
	uuidgen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *OutreachUsecase {
	return &OutreachUsecase{
		reportRepo: reportRepo,
		reader:     reader,
		notifier:   notifier,
		config:     config,
		uuidgen:    uuidgen,
		logger:     logger,
	}
}

var _ usecasecontract.IOutreachUseCase = (*OutreachUsecase)(nil)

// ShareArticle emails the article link for gmail, otherwise returns the platform share link.
func (u *OutreachUsecase) ShareArticle(ctx context.Context, slug string, sharer entity.Identity, platform usecasecontract.SharePlatform, shareWith string) (string, error) {
	if sharer.UserID == "" {
		return "", fmt.Errorf("%w: user not authenticated", contract.ErrUnauthorized)
	}
	switch platform {
	case usecasecontract.SharePlatformGmail, usecasecontract.SharePlatformFacebook, usecasecontract.SharePlatformTwitter:
	default:
		return "", fmt.Errorf("%w: unsupported share platform %q", contract.ErrInvalidValue, platform)
	}
	article, err := u.reader.BySlug(ctx, slug)
	if err != nil {
		return "", err
	}
	link := u.articleLink(article.Slug)

	switch platform {
	case usecasecontract.SharePlatformFacebook:
		q := url.Values{}
		q.Set("app_id", u.config.GetFacebookAppID())
		q.Set("display", "page")
		q.Set("href", link)
		return "https://www.facebook.com/v2.9/dialog/share?" + q.Encode(), nil
	case usecasecontract.SharePlatformTwitter:
		q := url.Values{}
		q.Set("text", fmt.Sprintf("%s by %s %s", article.Title, article.AuthorUsername, link))
		return "https://twitter.com/intent/tweet?" + q.Encode(), nil
	}

	shareWith = strings.TrimSpace(shareWith)
	if shareWith == "" {
		return "", fmt.Errorf("%w: share_with is required for gmail", contract.ErrInvalidValue)
	}
	notification := entity.Notification{
		To:      shareWith,
		Subject: fmt.Sprintf("%s shared an article with you", sharer.Username),
		Body:    fmt.Sprintf("%s thought you would enjoy %q.\n\nRead it here: %s\n", sharer.Username, article.Title, link),
	}
	if err := u.notifier.Send(ctx, notification); err != nil {
		u.logger.Errorf("failed to share article %s with %s: %v", article.ID, shareWith, err)
		return "", fmt.Errorf("failed to share article: %w", err)
	}
	return "", nil
}

// ReportArticle persists a report and alerts the admin. A failed alert does not undo the report.
func (u *OutreachUsecase) ReportArticle(ctx context.Context, slug string, reporter entity.Identity, reason string) (*entity.ArticleReport, error) {
	if reporter.UserID == "" {
		return nil, fmt.Errorf("%w: user not authenticated", contract.ErrUnauthorized)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: reported_reason is required", contract.ErrInvalidValue)
	}
	article, err := u.reader.BySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	report := &entity.ArticleReport{
		ID:           u.uuidgen.NewUUID(),
		ArticleID:    article.ID,
		ArticleTitle: article.Title,
		ReporterID:   reporter.UserID,
		Reason:       reason,
		CreatedAt:    time.Now(),
	}
	if err := u.reportRepo.CreateReport(ctx, report); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, fmt.Errorf("%w: you have already reported this article", contract.ErrBadRequest)
		}
		return nil, fmt.Errorf("failed to report article: %w", err)
	}

	alert := entity.Notification{
		To:      u.config.GetAdminEmail(),
		Subject: reportSubject,
		Body: fmt.Sprintf("Article: %s\nTitle: %s\nReported by: %s\nReason: %s\n",
			article.ID, article.Title, reporter.Username, reason),
	}
	if alert.To == "" {
		u.logger.Warnf("no admin email configured, report %s not forwarded", report.ID)
	} else if err := u.notifier.Send(ctx, alert); err != nil {
		u.logger.Errorf("failed to notify admin about report %s: %v", report.ID, err)
	}
	return report, nil
}

func (u *OutreachUsecase) articleLink(slug string) string {
	return strings.TrimRight(u.config.GetAppBaseURL(), "/") + "/api/v1/articles/" + slug
}
