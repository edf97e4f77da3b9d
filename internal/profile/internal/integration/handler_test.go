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

//go:build e2e

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/portfolio/internal/profile/internal/errs"
	"github.com/ecodeclub/portfolio/internal/profile/internal/integration/startup"
	"github.com/ecodeclub/portfolio/internal/profile/internal/repository/dao"
	"github.com/ecodeclub/portfolio/internal/profile/internal/web"
	"github.com/ecodeclub/portfolio/internal/test"
	testioc "github.com/ecodeclub/portfolio/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 2051

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	rdb    redis.Cmdable
}

func (s *HandlerTestSuite) SetupSuite() {
	module := startup.InitModule(uid)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	module.Hdl.PublicRoutes(server.Engine)
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	module.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
	s.rdb = testioc.InitRedis()
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"personal_info", "experiences", "education",
		"skills", "projects", "services", "testimonials"} {
		require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `"+table+"`").Error)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(s.T(), s.rdb.Del(ctx, "portfolio:profile:public:2051").Err())
}

func (s *HandlerTestSuite) TestSavePersonalInfo() {
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		req      web.PersonalInfo
		after    func(t *testing.T)
		wantCode int
		wantResp test.Result[int64]
	}{
		{
			name:   "创建个人信息",
			before: func(t *testing.T) {},
			req: web.PersonalInfo{
				FullName: "Jane Doe",
				Title:    "Backend Engineer",
				Email:    "jane@example.com",
			},
			after: func(t *testing.T) {
				var info dao.PersonalInfo
				err := s.db.Where("uid = ?", uid).First(&info).Error
				require.NoError(t, err)
				assert.Equal(t, "Jane Doe", info.FullName)
				assert.Equal(t, "jane@example.com", info.Email)
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[int64]{Data: 1},
		},
		{
			name:   "缺少邮箱",
			before: func(t *testing.T) {},
			req: web.PersonalInfo{
				FullName: "Jane Doe",
			},
			after: func(t *testing.T) {
				var cnt int64
				require.NoError(t, s.db.Model(&dao.PersonalInfo{}).Count(&cnt).Error)
				assert.Equal(t, int64(0), cnt)
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[int64]{
				Code: errs.InvalidInput.Code,
				Msg:  "invalid input: email is required",
			},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost,
				"/profile/personal/save", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[int64]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
			tc.after(t)
			s.TearDownTest()
		})
	}
}

func (s *HandlerTestSuite) TestExperience() {
	t := s.T()
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	end := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	req, err := http.NewRequest(http.MethodPost, "/profile/experience/save",
		iox.NewJSONReader(web.Experience{
			Title:        "Engineer",
			Company:      "ACME",
			Start:        start,
			End:          end,
			IsCurrent:    true,
			Achievements: []string{"shipped"},
		}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	id := recorder.MustScan().Data
	assert.True(t, id > 0)

	var exp dao.Experience
	require.NoError(t, s.db.Where("id = ?", id).First(&exp).Error)
	assert.Equal(t, int64(uid), exp.Uid)
	// 在职的时候不保存结束时间
	assert.Equal(t, int64(0), exp.EndTime)
	assert.Equal(t, sqlx.JsonColumn[[]string]{Val: []string{"shipped"}, Valid: true}, exp.Achievements)

	// 缺少必填字段
	req, err = http.NewRequest(http.MethodPost, "/profile/experience/save",
		iox.NewJSONReader(web.Experience{Title: "Engineer"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, errs.InvalidInput.Code, recorder.MustScan().Code)

	// 删除之后列表为空
	req, err = http.NewRequest(http.MethodPost, "/profile/experience/delete",
		iox.NewJSONReader(web.IdReq{Id: id}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	req, err = http.NewRequest(http.MethodPost, "/profile/experience/list", bytes.NewReader(nil))
	require.NoError(t, err)
	listRecorder := test.NewJSONResponseRecorder[[]web.Experience]()
	s.server.ServeHTTP(listRecorder, req)
	require.Equal(t, http.StatusOK, listRecorder.Code)
	assert.Len(t, listRecorder.MustScan().Data, 0)
}

func (s *HandlerTestSuite) TestProfile() {
	t := s.T()
	now := time.Now().UnixMilli()
	require.NoError(t, s.db.Create(&dao.PersonalInfo{
		Uid: uid, FullName: "Jane Doe", Email: "jane@example.com", Ctime: now, Utime: now,
	}).Error)
	require.NoError(t, s.db.Create(&[]dao.Project{
		{Meta: dao.Meta{Uid: uid, DisplayOrder: 1}, Title: "Site"},
		{Meta: dao.Meta{Uid: uid, DisplayOrder: 0}, Title: "CLI"},
	}).Error)

	req, err := http.NewRequest(http.MethodGet, "/profile", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	p := recorder.MustScan().Data
	require.NotNil(t, p.PersonalInfo)
	assert.Equal(t, "Jane Doe", p.PersonalInfo.FullName)
	require.Len(t, p.Projects, 2)
	assert.Equal(t, "CLI", p.Projects[0].Title)
	assert.Equal(t, web.Stats{
		ProjectsCompleted:  "2+",
		ClientSatisfaction: "4.9/5",
		AvgResponseTime:    "< 2hrs",
		StartingRate:       "$75/hr",
	}, p.Stats)

	// 结果被缓存了
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	val, err := s.rdb.Get(ctx, "portfolio:profile:public:2051").Bytes()
	require.NoError(t, err)
	assert.True(t, json.Valid(val))
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
