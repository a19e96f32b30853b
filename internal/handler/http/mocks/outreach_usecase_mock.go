package mocks

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/Inkwell/internal/domain/contract"
	"github.com/mikiasgoitom/Inkwell/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Inkwell/internal/usecase/contract"
)

type MockOutreachUsecase struct {
	Err           error
	ShareCalls    int
	LastShareWith string
	Reports       []*entity.ArticleReport
}

var _ usecasecontract.IOutreachUseCase = (*MockOutreachUsecase)(nil)

func NewMockOutreachUsecase() *MockOutreachUsecase {
	return &MockOutreachUsecase{}
}

func (m *MockOutreachUsecase) ShareArticle(ctx context.Context, slug string, sharer entity.Identity, platform usecasecontract.SharePlatform, shareWith string) (string, error) {
	m.ShareCalls++
	if m.Err != nil {
		return "", m.Err
	}
	switch platform {
	case usecasecontract.SharePlatformGmail:
		if shareWith == "" {
			return "", fmt.Errorf("%w: share_with is required", contract.ErrInvalidValue)
		}
		m.LastShareWith = shareWith
		return "", nil
	case usecasecontract.SharePlatformTwitter, usecasecontract.SharePlatformFacebook:
		return "https://share.test/" + string(platform) + "/" + slug, nil
	}
	return "", fmt.Errorf("%w: unsupported platform %s", contract.ErrInvalidValue, platform)
}

func (m *MockOutreachUsecase) ReportArticle(ctx context.Context, slug string, reporter entity.Identity, reason string) (*entity.ArticleReport, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, r := range m.Reports {
		if r.ReporterID == reporter.UserID {
			return nil, fmt.Errorf("%w: already reported", contract.ErrBadRequest)
		}
	}
	r := &entity.ArticleReport{ID: "report-1", ArticleID: "article-1", ArticleTitle: "Hello World", ReporterID: reporter.UserID, Reason: reason}
	m.Reports = append(m.Reports, r)
	return r, nil
}
