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

	"github.com/ecodeclub/portfolio/internal/profile/internal/domain"
	"github.com/ecodeclub/portfolio/internal/profile/internal/repository/cache"
	"github.com/ecodeclub/portfolio/internal/profile/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

type PersonalInfoRepository interface {
	Save(ctx context.Context, info domain.PersonalInfo) (int64, error)
	// Find 没有数据的时候返回 ErrRecordNotFound
	Find(ctx context.Context, uid int64) (domain.PersonalInfo, error)
}

type personalInfoRepository struct {
	dao    dao.PersonalInfoDAO
	cache  cache.ProfileCache
	logger *elog.Component
}

func NewPersonalInfoRepository(d dao.PersonalInfoDAO, c cache.ProfileCache) PersonalInfoRepository {
	return &personalInfoRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *personalInfoRepository) Save(ctx context.Context, info domain.PersonalInfo) (int64, error) {
	id, err := r.dao.Upsert(ctx, personalToEntity(info))
	if err != nil {
		return 0, err
	}
	if err = r.cache.Delete(ctx, info.Uid); err != nil {
		r.logger.Error("删除 profile 缓存失败",
			elog.FieldErr(err),
			elog.Int64("uid", info.Uid))
	}
	return id, nil
}

func (r *personalInfoRepository) Find(ctx context.Context, uid int64) (domain.PersonalInfo, error) {
	res, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return domain.PersonalInfo{}, err
	}
	return personalToDomain(res), nil
}
