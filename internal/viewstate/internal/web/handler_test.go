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

package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/portfolio/internal/profile"
	profilemocks "github.com/ecodeclub/portfolio/internal/profile/mocks"
	"github.com/ecodeclub/portfolio/internal/test"
	"github.com/ecodeclub/portfolio/internal/viewstate/internal/domain"
	"github.com/ecodeclub/portfolio/internal/viewstate/internal/errs"
	"github.com/ecodeclub/portfolio/internal/viewstate/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const owner = 7

func newServer(t *testing.T, svc profile.ProfileService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	NewHandler(svc, owner, repository.CookieConfig{MaxAge: 60}).PublicRoutes(server)
	return server
}

func TestHandler_SetTheme(t *testing.T) {
	testCases := []struct {
		name       string
		theme      string
		wantResp   test.Result[State]
		wantCookie string
	}{
		{
			name:  "切换主题",
			theme: "aurora",
			wantResp: test.Result[State]{
				Data: State{Theme: "aurora", Mode: "recruiter"},
			},
			wantCookie: "aurora",
		},
		{
			name:  "非法主题",
			theme: "neon",
			wantResp: test.Result[State]{
				Code: errs.InvalidTheme.Code,
				Msg:  errs.InvalidTheme.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(t, profilemocks.NewMockService(ctrl))
			req, err := http.NewRequest(http.MethodPost, "/view-state/theme", iox.NewJSONReader(ThemeReq{Theme: tc.theme}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			req.AddCookie(&http.Cookie{Name: repository.ModeCookie, Value: "recruiter"})
			recorder := test.NewJSONResponseRecorder[State]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())

			var theme string
			for _, c := range recorder.Result().Cookies() {
				if c.Name == repository.ThemeCookie {
					theme = c.Value
				}
			}
			assert.Equal(t, tc.wantCookie, theme)
		})
	}
}

func TestHandler_View(t *testing.T) {
	p := profile.Profile{
		PersonalInfo: profile.PersonalInfo{Id: 1, Uid: owner, FullName: "Jane Doe", Email: "jane@example.com"},
		Projects:     []profile.Project{{Id: 1, Uid: owner, Title: "a", IsFeatured: true}, {Id: 2, Uid: owner, Title: "b"}},
	}
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) profile.ProfileService
		url      string
		cookie   string
		wantCode int
		assert   func(t *testing.T, res test.Result[domain.ProfileView])
	}{
		{
			name: "使用参数指定的模式",
			mock: func(ctrl *gomock.Controller) profile.ProfileService {
				svc := profilemocks.NewMockService(ctrl)
				svc.EXPECT().Profile(gomock.Any(), int64(owner)).Return(p, nil)
				return svc
			},
			url:      "/profile/view?mode=recruiter",
			cookie:   "client",
			wantCode: http.StatusOK,
			assert: func(t *testing.T, res test.Result[domain.ProfileView]) {
				assert.Equal(t, "recruiter", res.Data.Mode)
				assert.Len(t, res.Data.Projects, 2)
			},
		},
		{
			name: "没有参数使用保存的模式",
			mock: func(ctrl *gomock.Controller) profile.ProfileService {
				svc := profilemocks.NewMockService(ctrl)
				svc.EXPECT().Profile(gomock.Any(), int64(owner)).Return(p, nil)
				return svc
			},
			url:      "/profile/view",
			cookie:   "client",
			wantCode: http.StatusOK,
			assert: func(t *testing.T, res test.Result[domain.ProfileView]) {
				assert.Equal(t, "client", res.Data.Mode)
				require.Len(t, res.Data.Projects, 1)
				assert.Equal(t, "a", res.Data.Projects[0].Title)
				require.NotNil(t, res.Data.Stats)
				assert.Equal(t, "2+", res.Data.Stats.ProjectsCompleted)
			},
		},
		{
			name: "非法模式",
			mock: func(ctrl *gomock.Controller) profile.ProfileService {
				return profilemocks.NewMockService(ctrl)
			},
			url:      "/profile/view?mode=grid",
			wantCode: http.StatusOK,
			assert: func(t *testing.T, res test.Result[domain.ProfileView]) {
				assert.Equal(t, errs.InvalidMode.Code, res.Code)
			},
		},
		{
			name: "读取失败",
			mock: func(ctrl *gomock.Controller) profile.ProfileService {
				svc := profilemocks.NewMockService(ctrl)
				svc.EXPECT().Profile(gomock.Any(), int64(owner)).Return(profile.Profile{}, errors.New("mock db error"))
				return svc
			},
			url:      "/profile/view?mode=story",
			wantCode: http.StatusInternalServerError,
			assert: func(t *testing.T, res test.Result[domain.ProfileView]) {
				assert.Equal(t, errs.SystemError.Code, res.Code)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(t, tc.mock(ctrl))
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: repository.ModeCookie, Value: tc.cookie})
			}
			recorder := test.NewJSONResponseRecorder[domain.ProfileView]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.assert(t, recorder.MustScan())
		})
	}
}
