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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/portfolio/internal/contact/internal/domain"
	"github.com/ecodeclub/portfolio/internal/contact/internal/repository/dao"
)

var ErrDuplicateRef = dao.ErrDuplicateRef

//go:generate mockgen -source=./submission.go -package=repomocks -destination=./mocks/submission.mock.go SubmissionRepository
type SubmissionRepository interface {
	Create(ctx context.Context, s domain.Submission) (int64, error)
	List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Submission, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, status domain.Status) (int64, error)
}

type submissionRepository struct {
	dao dao.SubmissionDAO
}

func NewSubmissionRepository(d dao.SubmissionDAO) SubmissionRepository {
	return &submissionRepository{
		dao: d,
	}
}

func (r *submissionRepository) Create(ctx context.Context, s domain.Submission) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(s))
}

func (r *submissionRepository) List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Submission, error) {
	res, err := r.dao.List(ctx, status.String(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.ContactSubmission) domain.Submission {
		return r.toDomain(src)
	}), nil
}

func (r *submissionRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, status.String())
}

func (r *submissionRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *submissionRepository) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	return r.dao.CountByStatus(ctx, status.String())
}

func (r *submissionRepository) toEntity(s domain.Submission) dao.ContactSubmission {
	return dao.ContactSubmission{
		Id:      s.Id,
		Ref:     s.Ref,
		Name:    s.Name,
		Email:   s.Email,
		Subject: s.Subject,
		Message: s.Message,
		Status:  s.Status.String(),
	}
}

func (r *submissionRepository) toDomain(s dao.ContactSubmission) domain.Submission {
	return domain.Submission{
		Id:      s.Id,
		Ref:     s.Ref,
		Name:    s.Name,
		Email:   s.Email,
		Subject: s.Subject,
		Message: s.Message,
		Status:  domain.Status(s.Status),
		Ctime:   time.UnixMilli(s.Ctime),
		Utime:   time.UnixMilli(s.Utime),
	}
}
