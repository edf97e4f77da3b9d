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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/portfolio/internal/viewstate/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookiePersister_Load(t *testing.T) {
	testCases := []struct {
		name    string
		cookies []*http.Cookie
		want    domain.State
	}{
		{
			name: "没有 cookie",
			want: domain.DefaultState(),
		},
		{
			name: "合法的值",
			cookies: []*http.Cookie{
				{Name: ThemeCookie, Value: "glass"},
				{Name: ModeCookie, Value: "recruiter"},
			},
			want: domain.State{Theme: domain.ThemeGlass, Mode: domain.ModeRecruiter},
		},
		{
			name: "未知的值",
			cookies: []*http.Cookie{
				{Name: ThemeCookie, Value: "neon"},
				{Name: ModeCookie, Value: "story"},
			},
			want: domain.State{Theme: domain.ThemeMinimal, Mode: domain.ModeStory},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for _, c := range tc.cookies {
				req.AddCookie(c)
			}
			ctx.Request = req
			state, err := NewCookiePersister(ctx, CookieConfig{}).Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, state)
		})
	}
}

func TestCookiePersister_Save(t *testing.T) {
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	p := NewCookiePersister(ctx, CookieConfig{MaxAge: 3600})
	err := p.Save(context.Background(), domain.State{Theme: domain.ThemeDark, Mode: domain.ModeStory})
	require.NoError(t, err)

	cookies := map[string]string{}
	for _, c := range recorder.Result().Cookies() {
		cookies[c.Name] = c.Value
		assert.Equal(t, 3600, c.MaxAge)
		assert.Equal(t, "/", c.Path)
	}
	assert.Equal(t, map[string]string{
		ThemeCookie: "dark",
		ModeCookie:  "story",
	}, cookies)
}
