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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

// ErrDuplicateRef ref 上有唯一索引
var ErrDuplicateRef = errors.New("contact ref 冲突")

type SubmissionDAO interface {
	Create(ctx context.Context, s ContactSubmission) (int64, error)
	// List status 为空的时候不过滤，最新的排在前面
	List(ctx context.Context, status string, offset, limit int) ([]ContactSubmission, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type submissionDAO struct {
	db *egorm.Component
}

func NewSubmissionDAO(db *egorm.Component) SubmissionDAO {
	return &submissionDAO{
		db: db,
	}
}

func (d *submissionDAO) Create(ctx context.Context, s ContactSubmission) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime = now
	s.Utime = now
	err := d.db.WithContext(ctx).Create(&s).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateRef
		}
	}
	return s.Id, err
}

func (d *submissionDAO) List(ctx context.Context, status string, offset, limit int) ([]ContactSubmission, error) {
	var res []ContactSubmission
	db := d.db.WithContext(ctx)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Order("ctime DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *submissionDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	return d.db.WithContext(ctx).Model(&ContactSubmission{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *submissionDAO) Delete(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&ContactSubmission{}).Error
}

func (d *submissionDAO) CountByStatus(ctx context.Context, status string) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&ContactSubmission{}).
		Where("status = ?", status).
		Count(&cnt).Error
	return cnt, err
}
