// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/portfolio/internal/export/internal/domain"
	"github.com/ecodeclub/portfolio/internal/export/internal/mapper"
	"github.com/ecodeclub/portfolio/internal/pkg/pdf"
	"github.com/ecodeclub/portfolio/internal/profile"
	pkgerrs "github.com/pkg/errors"
)

//go:generate mockgen -source=./export.go -package=exportmocks -destination=../../mocks/export.mock.go Service
type Service interface {
	JSONResume(ctx context.Context, uid int64) (domain.Document, error)
	// Markdown 日期格式由 acceptLanguage 协商
	Markdown(ctx context.Context, uid int64, acceptLanguage string) (domain.Document, error)
	DOCX(ctx context.Context, uid int64) (domain.Document, error)
	// PrintHTML 打印用的完整 HTML 文档
	PrintHTML(ctx context.Context, uid int64, theme string) (domain.Document, error)
	// PDF 设置了下载地址的时候只返回 RedirectURL
	PDF(ctx context.Context, uid int64, theme string) (domain.Document, error)
	// Aggregate 不检查 PersonalInfo 是否存在
	Aggregate(ctx context.Context, uid int64) (profile.Profile, error)
}

type service struct {
	profileSvc profile.ProfileService
	printer    pdf.Printer
}

func NewService(profileSvc profile.ProfileService, printer pdf.Printer) Service {
	return &service{
		profileSvc: profileSvc,
		printer:    printer,
	}
}

func (s *service) JSONResume(ctx context.Context, uid int64) (domain.Document, error) {
	p, err := s.snapshot(ctx, uid)
	if err != nil {
		return domain.Document{}, err
	}
	data, err := mapper.EncodeJSONResume(mapper.ToJSONResume(p))
	if err != nil {
		return domain.Document{}, err
	}
	return s.document(p, domain.FormatJSON, data), nil
}

func (s *service) Markdown(ctx context.Context, uid int64, acceptLanguage string) (domain.Document, error) {
	p, err := s.snapshot(ctx, uid)
	if err != nil {
		return domain.Document{}, err
	}
	md := mapper.ToMarkdown(p, mapper.DateLayout(acceptLanguage))
	return s.document(p, domain.FormatMarkdown, []byte(md)), nil
}

func (s *service) DOCX(ctx context.Context, uid int64) (domain.Document, error) {
	p, err := s.snapshot(ctx, uid)
	if err != nil {
		return domain.Document{}, err
	}
	data, err := mapper.AssembleDOCX(mapper.ToDocxPlaceholders(p))
	if err != nil {
		return domain.Document{}, err
	}
	return s.document(p, domain.FormatDOCX, data), nil
}

func (s *service) PrintHTML(ctx context.Context, uid int64, theme string) (domain.Document, error) {
	p, err := s.snapshot(ctx, uid)
	if err != nil {
		return domain.Document{}, err
	}
	doc, err := s.printDocument(p, theme)
	if err != nil {
		return domain.Document{}, err
	}
	return s.document(p, domain.FormatHTML, []byte(doc)), nil
}

func (s *service) PDF(ctx context.Context, uid int64, theme string) (domain.Document, error) {
	p, err := s.snapshot(ctx, uid)
	if err != nil {
		return domain.Document{}, err
	}
	if url := p.PersonalInfo.PDFDownloadURL; url != "" {
		return domain.Document{
			Format:      domain.FormatPDF,
			Filename:    domain.Filename(p.PersonalInfo.FullName, domain.FormatPDF),
			RedirectURL: url,
		}, nil
	}
	doc, err := s.printDocument(p, theme)
	if err != nil {
		return domain.Document{}, err
	}
	data, err := s.printer.Print(ctx, doc)
	if errors.Is(err, pdf.ErrUnavailable) {
		return domain.Document{}, pkgerrs.Wrap(domain.ErrPrinterUnavailable, err.Error())
	}
	if err != nil {
		return domain.Document{}, err
	}
	return s.document(p, domain.FormatPDF, data), nil
}

func (s *service) Aggregate(ctx context.Context, uid int64) (profile.Profile, error) {
	p, err := s.profileSvc.Snapshot(ctx, uid)
	return p, pkgerrs.Wrap(err, "读取导出数据失败")
}

// snapshot 导出前的检查，没有 PersonalInfo 就不生成任何文档
func (s *service) snapshot(ctx context.Context, uid int64) (profile.Profile, error) {
	p, err := s.profileSvc.Snapshot(ctx, uid)
	if err != nil {
		return profile.Profile{}, pkgerrs.Wrap(err, "读取导出数据失败")
	}
	if !p.HasPersonalInfo() {
		return profile.Profile{}, domain.ErrNoResumeData
	}
	return p, nil
}

func (s *service) printDocument(p profile.Profile, theme string) (string, error) {
	page, err := mapper.RenderPage(mapper.ToPrintPage(p, theme))
	if err != nil {
		return "", err
	}
	return mapper.AssemblePrint(page, p.PersonalInfo.FullName+" - Resume")
}

func (s *service) document(p profile.Profile, f domain.Format, data []byte) domain.Document {
	return domain.Document{
		Format:   f,
		Filename: domain.Filename(p.PersonalInfo.FullName, f),
		Data:     data,
	}
}
