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

var ErrRecordNotFound = repository.ErrRecordNotFound

//go:generate mockgen -source=./profile.go -package=profilemocks -destination=../../mocks/profile.mock.go Service
type Service interface {
	SavePersonalInfo(ctx context.Context, info domain.PersonalInfo) (int64, error)
	// PersonalInfo 没有的时候返回 ErrRecordNotFound
	PersonalInfo(ctx context.Context, uid int64) (domain.PersonalInfo, error)
	// Profile 公开页面使用的全部数据，可能来自缓存
	Profile(ctx context.Context, uid int64) (domain.Profile, error)
	// Snapshot 导出使用，总是读取最新的数据
	Snapshot(ctx context.Context, uid int64) (domain.Profile, error)
}

type service struct {
	personal repository.PersonalInfoRepository
	profile  repository.ProfileRepository
}

func NewService(personal repository.PersonalInfoRepository,
	profile repository.ProfileRepository) Service {
	return &service{
		personal: personal,
		profile:  profile,
	}
}

func (s *service) SavePersonalInfo(ctx context.Context, info domain.PersonalInfo) (int64, error) {
	if err := info.Validate(); err != nil {
		return 0, err
	}
	return s.personal.Save(ctx, info)
}

func (s *service) PersonalInfo(ctx context.Context, uid int64) (domain.PersonalInfo, error) {
	return s.personal.Find(ctx, uid)
}

func (s *service) Profile(ctx context.Context, uid int64) (domain.Profile, error) {
	return s.profile.Profile(ctx, uid)
}

func (s *service) Snapshot(ctx context.Context, uid int64) (domain.Profile, error) {
	return s.profile.Snapshot(ctx, uid)
}
