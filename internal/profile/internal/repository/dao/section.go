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
)

// record 约束了可以使用 SectionDAO 的实体，它们都内嵌了 Meta
type record[T any] interface {
	*T
	meta() *Meta
}

// SectionDAO 按照 owner 隔离的、有展示顺序的记录
type SectionDAO[T any] interface {
	// Save 没有 ID 的时候新建，否则更新 uid 和 id 都匹配的记录
	Save(ctx context.Context, r T) (int64, error)
	// Delete 删除不存在的记录也不会返回错误
	Delete(ctx context.Context, uid, id int64) error
	List(ctx context.Context, uid int64) ([]T, error)
}

type sectionDAO[T any, P record[T]] struct {
	db *egorm.Component
}

func newSectionDAO[T any, P record[T]](db *egorm.Component) SectionDAO[T] {
	return &sectionDAO[T, P]{db: db}
}

func NewExperienceDAO(db *egorm.Component) SectionDAO[Experience] {
	return newSectionDAO[Experience](db)
}

func NewEducationDAO(db *egorm.Component) SectionDAO[Education] {
	return newSectionDAO[Education](db)
}

func NewSkillDAO(db *egorm.Component) SectionDAO[Skill] {
	return newSectionDAO[Skill](db)
}

func NewProjectDAO(db *egorm.Component) SectionDAO[Project] {
	return newSectionDAO[Project](db)
}

func NewServiceDAO(db *egorm.Component) SectionDAO[Service] {
	return newSectionDAO[Service](db)
}

func NewTestimonialDAO(db *egorm.Component) SectionDAO[Testimonial] {
	return newSectionDAO[Testimonial](db)
}

func (d *sectionDAO[T, P]) Save(ctx context.Context, r T) (int64, error) {
	m := P(&r).meta()
	now := time.Now().UnixMilli()
	m.Utime = now
	if m.Id == 0 {
		m.Ctime = now
		err := d.db.WithContext(ctx).Create(&r).Error
		return m.Id, err
	}
	res := d.db.WithContext(ctx).Model(&r).
		Where("uid = ?", m.Uid).
		Select("*").
		Omit("id", "uid", "ctime").
		Updates(&r)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrRecordNotFound
	}
	return m.Id, nil
}

func (d *sectionDAO[T, P]) Delete(ctx context.Context, uid, id int64) error {
	return d.db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(P(new(T))).Error
}

func (d *sectionDAO[T, P]) List(ctx context.Context, uid int64) ([]T, error) {
	var res []T
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("display_order ASC, id ASC").
		Find(&res).Error
	return res, err
}
