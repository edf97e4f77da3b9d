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

	"github.com/ecodeclub/portfolio/internal/profile/internal/domain"
	"github.com/ecodeclub/portfolio/internal/profile/internal/repository"
)

// SectionService 一类有序记录的增删改查
type SectionService[D domain.Section] interface {
	// Save 创建或者更新，如果有 id 就是更新
	Save(ctx context.Context, s D) (int64, error)
	List(ctx context.Context, uid int64) ([]D, error)
	Delete(ctx context.Context, uid, id int64) error
}

type sectionService[D domain.Section] struct {
	repo repository.SectionRepository[D]
}

func newSectionService[D domain.Section](repo repository.SectionRepository[D]) SectionService[D] {
	return &sectionService[D]{repo: repo}
}

func NewExperienceService(repo repository.SectionRepository[domain.Experience]) SectionService[domain.Experience] {
	return newSectionService(repo)
}

func NewEducationService(repo repository.SectionRepository[domain.Education]) SectionService[domain.Education] {
	return newSectionService(repo)
}

func NewSkillService(repo repository.SectionRepository[domain.Skill]) SectionService[domain.Skill] {
	return newSectionService(repo)
}

func NewProjectService(repo repository.SectionRepository[domain.Project]) SectionService[domain.Project] {
	return newSectionService(repo)
}

func NewServiceService(repo repository.SectionRepository[domain.Service]) SectionService[domain.Service] {
	return newSectionService(repo)
}

func NewTestimonialService(repo repository.SectionRepository[domain.Testimonial]) SectionService[domain.Testimonial] {
	return newSectionService(repo)
}

func (s *sectionService[D]) Save(ctx context.Context, sec D) (int64, error) {
	if err := sec.Validate(); err != nil {
		return 0, err
	}
	return s.repo.Save(ctx, sec)
}

func (s *sectionService[D]) List(ctx context.Context, uid int64) ([]D, error) {
	return s.repo.List(ctx, uid)
}

func (s *sectionService[D]) Delete(ctx context.Context, uid, id int64) error {
	return s.repo.Delete(ctx, uid, id)
}
