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
	"testing"

	"github.com/ecodeclub/ekit/sqlx"
	testioc "github.com/ecodeclub/portfolio/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SectionDAOTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao SectionDAO[Experience]
}

func (s *SectionDAOTestSuite) SetupTest() {
	s.db = testioc.NewSQLiteDB()
	require.NoError(s.T(), InitTables(s.db))
	s.dao = NewExperienceDAO(s.db)
}

func (s *SectionDAOTestSuite) TestSaveAndList() {
	t := s.T()
	ctx := context.Background()
	exp := Experience{
		Meta:         Meta{Uid: 1, DisplayOrder: 2},
		Title:        "Engineer",
		Company:      "ACME",
		StartTime:    1577836800000,
		EndTime:      1609459200000,
		Description:  "built things",
		Achievements: sqlx.JsonColumn[[]string]{Val: []string{"shipped", "scaled"}, Valid: true},
		Technologies: sqlx.JsonColumn[[]string]{Val: []string{"Go"}, Valid: true},
	}
	id, err := s.dao.Save(ctx, exp)
	require.NoError(t, err)
	assert.True(t, id > 0)

	list, err := s.dao.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	got := list[0]
	assert.True(t, got.Ctime > 0)
	assert.True(t, got.Utime > 0)
	got.Ctime, got.Utime = 0, 0
	exp.Id = id
	assert.Equal(t, exp, got)

	// 别人的数据读不到
	list, err = s.dao.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, list, 0)
}

func (s *SectionDAOTestSuite) TestUpdate() {
	t := s.T()
	ctx := context.Background()
	id, err := s.dao.Save(ctx, Experience{Meta: Meta{Uid: 1}, Title: "old", Company: "ACME"})
	require.NoError(t, err)

	newID, err := s.dao.Save(ctx, Experience{Meta: Meta{Id: id, Uid: 1}, Title: "new", Company: "ACME"})
	require.NoError(t, err)
	assert.Equal(t, id, newID)

	// 不能修改别人的数据
	_, err = s.dao.Save(ctx, Experience{Meta: Meta{Id: id, Uid: 2}, Title: "hacked", Company: "ACME"})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	// 不存在的记录
	_, err = s.dao.Save(ctx, Experience{Meta: Meta{Id: id + 100, Uid: 1}, Title: "ghost"})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	list, err := s.dao.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "new", list[0].Title)
}

func (s *SectionDAOTestSuite) TestListOrder() {
	t := s.T()
	ctx := context.Background()
	// display_order 可以有空洞，相同的时候按照 id 排序
	orders := []int{30, 10, 20, 10}
	for i, order := range orders {
		_, err := s.dao.Save(ctx, Experience{
			Meta:  Meta{Uid: 1, DisplayOrder: order},
			Title: string(rune('a' + i)),
		})
		require.NoError(t, err)
	}
	list, err := s.dao.List(ctx, 1)
	require.NoError(t, err)
	titles := make([]string, 0, len(list))
	for _, e := range list {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"b", "d", "c", "a"}, titles)
}

func (s *SectionDAOTestSuite) TestDelete() {
	t := s.T()
	ctx := context.Background()
	id1, err := s.dao.Save(ctx, Experience{Meta: Meta{Uid: 1}, Title: "a"})
	require.NoError(t, err)
	id2, err := s.dao.Save(ctx, Experience{Meta: Meta{Uid: 1}, Title: "b"})
	require.NoError(t, err)

	require.NoError(t, s.dao.Delete(ctx, 1, id1))
	// 删除不存在的记录不报错，也不影响其它数据
	require.NoError(t, s.dao.Delete(ctx, 1, id1+1000))
	// 不能删除别人的数据
	require.NoError(t, s.dao.Delete(ctx, 2, id2))

	list, err := s.dao.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id2, list[0].Id)
}

func TestSectionDAO(t *testing.T) {
	suite.Run(t, new(SectionDAOTestSuite))
}
