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
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/portfolio/internal/export/internal/errs"
	"github.com/ecodeclub/portfolio/internal/export/internal/integration/startup"
	"github.com/ecodeclub/portfolio/internal/export/internal/mapper"
	"github.com/ecodeclub/portfolio/internal/profile"
	"github.com/ecodeclub/portfolio/internal/test"
	testioc "github.com/ecodeclub/portfolio/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 2052

// fakePrinter 记录调用次数，不依赖 Chrome
type fakePrinter struct {
	calls atomic.Int32
}

func (f *fakePrinter) Print(ctx context.Context, html string) ([]byte, error) {
	f.calls.Add(1)
	return []byte("%PDF-1.7 " + html[:15]), nil
}

type HandlerTestSuite struct {
	suite.Suite
	server  *egin.Component
	db      *egorm.Component
	printer *fakePrinter
}

func (s *HandlerTestSuite) SetupSuite() {
	pm := startup.InitProfileModule(uid)
	s.printer = &fakePrinter{}
	module := startup.InitModule(pm, s.printer, uid)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	module.Hdl.PublicRoutes(server.Engine)
	pm.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"personal_info", "experiences", "education",
		"skills", "projects", "services", "testimonials"} {
		require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `"+table+"`").Error)
	}
	s.printer.calls.Store(0)
}

func (s *HandlerTestSuite) TestNoResumeData() {
	for _, path := range []string{"/export/json", "/export/markdown", "/export/docx", "/export/pdf", "/export/print"} {
		s.T().Run(path, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, path, nil)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, test.Result[any]{
				Code: errs.NoResumeData.Code,
				Msg:  errs.NoResumeData.Msg,
			}, recorder.MustScan())
		})
	}
	assert.Equal(s.T(), int32(0), s.printer.calls.Load())
}

func (s *HandlerTestSuite) TestExport() {
	t := s.T()
	s.save(t, "/profile/personal/save", profile.PersonalInfoVO{
		FullName: "Jane Doe",
		Title:    "Backend Engineer",
		Email:    "jane@example.com",
	})
	s.save(t, "/profile/experience/save", profile.ExperienceVO{
		Title:     "Engineer",
		Company:   "ACME",
		Start:     time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
		End:       time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
		IsCurrent: true,
	})
	s.save(t, "/profile/skill/save", profile.SkillVO{Name: "Go", Category: "Languages", Level: 9})

	recorder := s.get(t, "/export/json")
	assert.Equal(t, "attachment; filename=Jane_Doe_resume.json", recorder.Header().Get("Content-Disposition"))
	var resume mapper.Resume
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resume))
	require.Len(t, resume.Work, 1)
	assert.Equal(t, "", resume.Work[0].EndDate)
	assert.Equal(t, "2021-01-01", resume.Work[0].StartDate)
	require.Len(t, resume.Skills, 1)
	assert.Equal(t, "Expert", resume.Skills[0].Level)
	assert.Len(t, resume.Education, 0)

	recorder = s.get(t, "/export/markdown")
	assert.Contains(t, recorder.Body.String(), "### Engineer at ACME\n*1/1/2021 - Present*")
	assert.Contains(t, recorder.Body.String(), "## Education\n\n## Skills")

	recorder = s.get(t, "/export/docx")
	assert.Equal(t, "attachment; filename=Jane_Doe_resume.docx", recorder.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK", recorder.Body.String()[:2])

	recorder = s.get(t, "/export/pdf")
	assert.Equal(t, "application/pdf", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.7 <!DOCTYPE html>", recorder.Body.String())
	assert.Equal(t, int32(1), s.printer.calls.Load())

	// 设置了下载地址之后不再渲染
	s.save(t, "/profile/personal/save", profile.PersonalInfoVO{
		FullName:       "Jane Doe",
		Title:          "Backend Engineer",
		Email:          "jane@example.com",
		PDFDownloadURL: "https://cdn.example.com/jane.pdf",
	})
	req, err := http.NewRequest(http.MethodGet, "/export/pdf", nil)
	require.NoError(t, err)
	recorder = httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, "https://cdn.example.com/jane.pdf", recorder.Header().Get("Location"))
	assert.Equal(t, int32(1), s.printer.calls.Load())
}

func (s *HandlerTestSuite) TestAggregate() {
	t := s.T()
	s.save(t, "/profile/project/save", profile.ProjectVO{Title: "portfolio", Description: "personal site", Highlights: []string{"Lighthouse 100"}})

	req, err := http.NewRequest(http.MethodPost, "/api/export/pdf", nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	var res struct {
		PersonalInfo *profile.PersonalInfoVO `json:"personalInfo"`
		Projects     []profile.ProjectVO     `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	assert.Nil(t, res.PersonalInfo)
	require.Len(t, res.Projects, 1)
	assert.Equal(t, "portfolio", res.Projects[0].Title)
}

func (s *HandlerTestSuite) save(t *testing.T, path string, body any) {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, 0, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) get(t *testing.T, path string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder
}

func TestExportHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
