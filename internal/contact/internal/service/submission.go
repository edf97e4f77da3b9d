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

	"github.com/ecodeclub/portfolio/internal/contact/internal/domain"
	"github.com/ecodeclub/portfolio/internal/contact/internal/repository"
	"github.com/oklog/ulid/v2"
)

// ULID 冲突的时候换一个重新插入
const maxRefAttempts = 3

type Service interface {
	// Create 公开接口，新提交的消息都是未读状态
	Create(ctx context.Context, s domain.Submission) (domain.Submission, error)
	List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Submission, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Delete(ctx context.Context, id int64) error
	UnreadCount(ctx context.Context) (int64, error)
}

type service struct {
	repo   repository.SubmissionRepository
	newRef func() string
}

func NewService(repo repository.SubmissionRepository) Service {
	return &service{
		repo: repo,
		newRef: func() string {
			return ulid.Make().String()
		},
	}
}

func (s *service) Create(ctx context.Context, sub domain.Submission) (domain.Submission, error) {
	if err := sub.Validate(); err != nil {
		return domain.Submission{}, err
	}
	sub.Id = 0
	sub.Status = domain.StatusUnread
	for i := 0; i < maxRefAttempts; i++ {
		sub.Ref = s.newRef()
		id, err := s.repo.Create(ctx, sub)
		if errors.Is(err, repository.ErrDuplicateRef) {
			continue
		}
		if err != nil {
			return domain.Submission{}, err
		}
		sub.Id = id
		return sub, nil
	}
	return domain.Submission{}, repository.ErrDuplicateRef
}

func (s *service) List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Submission, error) {
	if status != "" && !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.List(ctx, status, offset, limit)
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	if !status.Valid() {
		return domain.ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.CountByStatus(ctx, domain.StatusUnread)
}
