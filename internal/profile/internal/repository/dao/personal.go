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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type PersonalInfoDAO interface {
	// Upsert 每个 owner 最多只有一条
	Upsert(ctx context.Context, info PersonalInfo) (int64, error)
	FindByUid(ctx context.Context, uid int64) (PersonalInfo, error)
}

type personalInfoDAO struct {
	db *egorm.Component
}

func NewPersonalInfoDAO(db *egorm.Component) PersonalInfoDAO {
	return &personalInfoDAO{
		db: db,
	}
}

func (d *personalInfoDAO) Upsert(ctx context.Context, info PersonalInfo) (int64, error) {
	now := time.Now().UnixMilli()
	info.Id = 0
	info.Ctime = now
	info.Utime = now
	err := d.db.WithContext(ctx).Model(&PersonalInfo{}).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "uid"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"full_name", "title", "email", "phone", "location", "bio",
				"website_url", "linkedin_url", "github_url", "avatar_url", "pdf_download_url",
				"client_satisfaction", "avg_response_time", "starting_rate", "utime",
			}),
		}).Create(&info).Error
	if err != nil {
		return 0, err
	}
	// 冲突更新的时候 MySQL 不一定会回填 ID
	res, err := d.FindByUid(ctx, info.Uid)
	return res.Id, err
}

func (d *personalInfoDAO) FindByUid(ctx context.Context, uid int64) (PersonalInfo, error) {
	var res PersonalInfo
	err := d.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	return res, err
}
